package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/hsinghweb/eag-v2-s2/internal/buzzword"
	"github.com/hsinghweb/eag-v2-s2/internal/courseplan"
	"github.com/hsinghweb/eag-v2-s2/internal/middlewares"
	"github.com/hsinghweb/eag-v2-s2/internal/progress"
	"github.com/hsinghweb/eag-v2-s2/internal/quiz"
	"github.com/hsinghweb/eag-v2-s2/internal/setting"
	"github.com/hsinghweb/eag-v2-s2/internal/setup"
)

type RouterConfig struct {
	SetupHandler      *setup.Handler
	SettingHandler    *setting.Handler
	CoursePlanHandler *courseplan.Handler
	BuzzwordHandler   *buzzword.Handler
	QuizHandler       *quiz.Handler
	ProgressHandler   *progress.Handler
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Mount("/setup", setup.Routes(cfg.SetupHandler))
	r.Mount("/settings", setting.Routes(cfg.SettingHandler))
	r.Mount("/course-plans", courseplan.Routes(cfg.CoursePlanHandler))
	r.Mount("/buzzwords", buzzword.Routes(cfg.BuzzwordHandler))
	r.Mount("/quizzes", quiz.Routes(cfg.QuizHandler))
	r.Mount("/progress", progress.Routes(cfg.ProgressHandler))

	return r
}
