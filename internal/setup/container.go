package setup

import (
	"github.com/hsinghweb/eag-v2-s2/internal/setting"
)

type SetupContainer struct {
	Service Service
	Handler *Handler
}

func NewSetupContainer(repo setting.Repository, validator Validator) *SetupContainer {
	service := NewService(repo, validator)
	handler := NewHandler(service)

	return &SetupContainer{
		Service: service,
		Handler: handler,
	}
}
