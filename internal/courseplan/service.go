package courseplan

import (
	"context"
	"errors"

	"github.com/hsinghweb/eag-v2-s2/internal/config"
	"github.com/hsinghweb/eag-v2-s2/internal/gemini"
	"github.com/hsinghweb/eag-v2-s2/internal/markdown"
	"github.com/hsinghweb/eag-v2-s2/internal/normalize"
	"github.com/hsinghweb/eag-v2-s2/internal/session"
	"github.com/hsinghweb/eag-v2-s2/internal/setting"
)

var ErrTodoOutOfRange = errors.New("todo index out of range")

type Service interface {
	// Generate asks the model for a roadmap at the stored proficiency and
	// renders it to HTML. The raw text stays in the session for conversion.
	Generate(ctx context.Context) (*PlanView, error)
	// ConvertTodos turns the active plan into a persisted todo list,
	// replacing the previous list for this proficiency.
	ConvertTodos(ctx context.Context) ([]normalize.Todo, error)
	Todos(ctx context.Context) ([]normalize.Todo, error)
	ToggleTodo(ctx context.Context, index int, completed bool) ([]normalize.Todo, error)
}

type service struct {
	provider gemini.Provider
	settings setting.Service
	sessions *session.Manager
	repo     Repository
}

func NewService(provider gemini.Provider, settings setting.Service, sessions *session.Manager, repo Repository) Service {
	return &service{
		provider: provider,
		settings: settings,
		sessions: sessions,
		repo:     repo,
	}
}

func (s *service) Generate(ctx context.Context) (*PlanView, error) {
	log := config.WithContext(ctx)

	prof, err := s.settings.Proficiency(ctx)
	if err != nil {
		return nil, err
	}

	raw, err := s.provider.Call(ctx, gemini.CoursePlanPrompt(string(prof)))
	if err != nil {
		s.sessions.EndFlow()
		return nil, err
	}

	s.sessions.StartCoursePlan(raw)
	log.Infof("Generated course plan for %s level", prof)

	return &PlanView{
		Proficiency: string(prof),
		HTML:        markdown.Render(raw),
	}, nil
}

func (s *service) ConvertTodos(ctx context.Context) ([]normalize.Todo, error) {
	log := config.WithContext(ctx)

	plan, err := s.sessions.CoursePlanText()
	if err != nil {
		return nil, err
	}
	prof, err := s.settings.Proficiency(ctx)
	if err != nil {
		return nil, err
	}

	raw, err := s.provider.Call(ctx, gemini.TodoPrompt(plan))
	if err != nil {
		return nil, err
	}

	todos, err := normalize.Todos(raw)
	if err != nil {
		log.WithError(err).Warn("Todo conversion produced no parseable items")
		return nil, err
	}

	if err := s.repo.Save(ctx, string(prof), todos); err != nil {
		return nil, err
	}

	log.Infof("Saved %d todos for %s level", len(todos), prof)
	return todos, nil
}

func (s *service) Todos(ctx context.Context) ([]normalize.Todo, error) {
	prof, err := s.settings.Proficiency(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, string(prof))
}

func (s *service) ToggleTodo(ctx context.Context, index int, completed bool) ([]normalize.Todo, error) {
	prof, err := s.settings.Proficiency(ctx)
	if err != nil {
		return nil, err
	}

	todos, err := s.repo.Get(ctx, string(prof))
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(todos) {
		return nil, ErrTodoOutOfRange
	}

	todos[index].Completed = completed
	if err := s.repo.Save(ctx, string(prof), todos); err != nil {
		return nil, err
	}
	return todos, nil
}
