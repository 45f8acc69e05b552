package buzzword

import (
	"github.com/hsinghweb/eag-v2-s2/internal/gemini"
	"github.com/hsinghweb/eag-v2-s2/internal/session"
)

type BuzzwordContainer struct {
	Handler *Handler
}

func NewBuzzwordContainer(provider gemini.Provider, sessions *session.Manager) *BuzzwordContainer {
	service := NewService(provider, sessions)
	handler := NewHandler(service)

	return &BuzzwordContainer{
		Handler: handler,
	}
}
