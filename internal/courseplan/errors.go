package courseplan

import (
	"errors"
	"net/http"

	"github.com/hsinghweb/eag-v2-s2/internal/config"
	"github.com/hsinghweb/eag-v2-s2/internal/normalize"
)

// respondError maps transport and normalization failures to a terminal error
// payload with a recovery hint for the popup.
func respondError(w http.ResponseWriter, err error) {
	var classified interface {
		HTTPStatus() int
		UserMessage() string
		RecoveryAction() string
	}
	if !errors.As(err, &classified) {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	body := map[string]string{
		"error":    classified.UserMessage(),
		"recovery": classified.RecoveryAction(),
	}
	var nvc *normalize.NoValidContentError
	if errors.As(err, &nvc) {
		body["raw"] = rawExcerpt(nvc.Raw)
	}
	config.JSON(w, classified.HTTPStatus(), body)
}

func rawExcerpt(raw string) string {
	const max = 500
	if len(raw) > max {
		return raw[:max] + "..."
	}
	return raw
}
