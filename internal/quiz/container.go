package quiz

import (
	"github.com/hsinghweb/eag-v2-s2/internal/gemini"
	"github.com/hsinghweb/eag-v2-s2/internal/progress"
	"github.com/hsinghweb/eag-v2-s2/internal/session"
	"github.com/hsinghweb/eag-v2-s2/internal/setting"
)

type QuizContainer struct {
	Handler *Handler
}

func NewQuizContainer(provider gemini.Provider, settings setting.Service, sessions *session.Manager, scores progress.Service, size int) *QuizContainer {
	service := NewService(provider, settings, sessions, scores, size)
	handler := NewHandler(service)

	return &QuizContainer{
		Handler: handler,
	}
}
