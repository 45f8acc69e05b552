package container

import (
	"context"
	"log"

	"github.com/hsinghweb/eag-v2-s2/internal/buzzword"
	"github.com/hsinghweb/eag-v2-s2/internal/config"
	"github.com/hsinghweb/eag-v2-s2/internal/courseplan"
	"github.com/hsinghweb/eag-v2-s2/internal/gemini"
	"github.com/hsinghweb/eag-v2-s2/internal/progress"
	"github.com/hsinghweb/eag-v2-s2/internal/quiz"
	"github.com/hsinghweb/eag-v2-s2/internal/session"
	"github.com/hsinghweb/eag-v2-s2/internal/setting"
	"github.com/hsinghweb/eag-v2-s2/internal/setup"
)

type Container struct {
	Config              *config.Config
	Sessions            *session.Manager
	SetupContainer      *setup.SetupContainer
	SettingContainer    *setting.SettingContainer
	CoursePlanContainer *courseplan.CoursePlanContainer
	BuzzwordContainer   *buzzword.BuzzwordContainer
	QuizContainer       *quiz.QuizContainer
	ProgressContainer   *progress.ProgressContainer
}

func New() *Container {
	config.Init()
	config.InitCrypto()

	cfg := config.Load()

	if err := config.Connect(context.Background(), cfg.DatabaseDSN); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	if err := config.DB.AutoMigrate(
		&setting.Setting{},
		&progress.ScoreRecord{},
		&courseplan.TodoList{},
	); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	settingContainer := setting.NewSettingContainer(config.DB)

	// The client resolves the key through the setup service, and the setup
	// service validates candidate keys through the client. Break the loop by
	// wiring the key store after both exist.
	client := gemini.NewClient(nil, cfg.GeminiModel)
	setupContainer := setup.NewSetupContainer(settingContainer.Repo, client)
	client.Keys = setupContainer.Service

	sessions := session.NewManager(cfg.QuizDuration)

	progressContainer := progress.NewProgressContainer(config.DB)
	coursePlanContainer := courseplan.NewCoursePlanContainer(config.DB, client, settingContainer.Service, sessions)
	buzzwordContainer := buzzword.NewBuzzwordContainer(client, sessions)
	quizContainer := quiz.NewQuizContainer(client, settingContainer.Service, sessions, progressContainer.Service, cfg.QuizSize)

	return &Container{
		Config:              cfg,
		Sessions:            sessions,
		SetupContainer:      setupContainer,
		SettingContainer:    settingContainer,
		CoursePlanContainer: coursePlanContainer,
		BuzzwordContainer:   buzzwordContainer,
		QuizContainer:       quizContainer,
		ProgressContainer:   progressContainer,
	}
}
