package courseplan

import (
	"gorm.io/gorm"

	"github.com/hsinghweb/eag-v2-s2/internal/gemini"
	"github.com/hsinghweb/eag-v2-s2/internal/session"
	"github.com/hsinghweb/eag-v2-s2/internal/setting"
)

type CoursePlanContainer struct {
	Handler *Handler
}

func NewCoursePlanContainer(db *gorm.DB, provider gemini.Provider, settings setting.Service, sessions *session.Manager) *CoursePlanContainer {
	repo := NewRepository(db)
	service := NewService(provider, settings, sessions, repo)
	handler := NewHandler(service)

	return &CoursePlanContainer{
		Handler: handler,
	}
}
