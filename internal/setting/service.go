package setting

import (
	"context"
	"errors"

	"github.com/hsinghweb/eag-v2-s2/internal/config"
)

const proficiencyKey = "proficiency"

var ErrInvalidProficiency = errors.New("invalid proficiency level")

type Service interface {
	Proficiency(ctx context.Context) (Proficiency, error)
	SetProficiency(ctx context.Context, p Proficiency) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Proficiency returns the stored level. On first run the default is persisted
// before being returned, mirroring the popup bootstrap.
func (s *service) Proficiency(ctx context.Context) (Proficiency, error) {
	v, ok, err := s.repo.Get(ctx, proficiencyKey)
	if err != nil {
		return "", err
	}
	if !ok {
		log := config.WithContext(ctx)
		log.Infof("No proficiency stored yet, defaulting to %s", DefaultProficiency)
		if err := s.repo.Put(ctx, proficiencyKey, string(DefaultProficiency)); err != nil {
			return "", err
		}
		return DefaultProficiency, nil
	}
	return Proficiency(v), nil
}

func (s *service) SetProficiency(ctx context.Context, p Proficiency) error {
	if !p.Valid() {
		return ErrInvalidProficiency
	}
	return s.repo.Put(ctx, proficiencyKey, string(p))
}
