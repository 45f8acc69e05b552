package buzzword

import (
	"context"

	"github.com/hsinghweb/eag-v2-s2/internal/config"
	"github.com/hsinghweb/eag-v2-s2/internal/gemini"
	"github.com/hsinghweb/eag-v2-s2/internal/normalize"
	"github.com/hsinghweb/eag-v2-s2/internal/session"
)

const defaultCount = 10

type Service interface {
	// Start fetches a fresh set of buzzwords and resets the cursor.
	Start(ctx context.Context) (*View, error)
	Current(ctx context.Context) (*View, error)
	Move(ctx context.Context, delta int) (*View, error)
}

type service struct {
	provider gemini.Provider
	sessions *session.Manager
}

func NewService(provider gemini.Provider, sessions *session.Manager) Service {
	return &service{provider: provider, sessions: sessions}
}

func (s *service) Start(ctx context.Context) (*View, error) {
	log := config.WithContext(ctx)

	raw, err := s.provider.Call(ctx, gemini.BuzzwordsPrompt(defaultCount))
	if err != nil {
		s.sessions.EndFlow()
		return nil, err
	}

	entries, err := normalize.Buzzwords(raw)
	if err != nil {
		log.WithError(err).Warn("Buzzword response produced no parseable entries")
		s.sessions.EndFlow()
		return nil, err
	}

	s.sessions.StartBuzzwords(entries)
	log.Infof("Loaded %d buzzwords", len(entries))
	return s.Current(ctx)
}

func (s *service) Current(ctx context.Context) (*View, error) {
	entry, index, total, err := s.sessions.CurrentBuzzword()
	if err != nil {
		return nil, err
	}
	return view(entry, index, total), nil
}

func (s *service) Move(ctx context.Context, delta int) (*View, error) {
	entry, index, total, err := s.sessions.MoveBuzzword(delta)
	if err != nil {
		return nil, err
	}
	return view(entry, index, total), nil
}

func view(entry normalize.Buzzword, index, total int) *View {
	return &View{
		Buzzword:   entry.Buzzword,
		Definition: entry.Definition,
		Position:   index + 1,
		Total:      total,
	}
}
