// Package setup implements the onboarding flow: validating a candidate
// Gemini API key against the live endpoint and persisting it, encrypted, in
// the settings store.
package setup

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/hsinghweb/eag-v2-s2/internal/config"
	"github.com/hsinghweb/eag-v2-s2/internal/gemini"
	"github.com/hsinghweb/eag-v2-s2/internal/setting"
)

const apiKeySetting = "gemini_api_key"

var keyFormatRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

var (
	ErrEmptyKey     = errors.New("api key is empty")
	ErrBadKeyFormat = errors.New("invalid api key format")
)

// Validator probes the live endpoint with a candidate key before it is saved.
type Validator interface {
	ValidateKey(ctx context.Context, key string) error
}

type Service interface {
	// APIKey returns the decrypted stored key, or "" when setup has not run.
	APIKey(ctx context.Context) (string, error)
	SaveKey(ctx context.Context, key string) error
	ClearKey(ctx context.Context) error
	Configured(ctx context.Context) (bool, error)
}

type service struct {
	repo      setting.Repository
	validator Validator
}

func NewService(repo setting.Repository, validator Validator) Service {
	return &service{repo: repo, validator: validator}
}

var _ gemini.KeyStore = (*service)(nil)

func (s *service) APIKey(ctx context.Context) (string, error) {
	v, ok, err := s.repo.Get(ctx, apiKeySetting)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}
	return config.Decrypt(v)
}

func (s *service) SaveKey(ctx context.Context, key string) error {
	log := config.WithContext(ctx)

	key = strings.TrimSpace(key)
	if key == "" {
		return ErrEmptyKey
	}
	if !keyFormatRe.MatchString(key) {
		return ErrBadKeyFormat
	}

	if err := s.validator.ValidateKey(ctx, key); err != nil {
		log.WithError(err).Warn("Candidate API key rejected by live validation")
		return err
	}

	enc, err := config.Encrypt(key)
	if err != nil {
		return err
	}
	if err := s.repo.Put(ctx, apiKeySetting, enc); err != nil {
		return err
	}

	log.Info("API key saved")
	return nil
}

func (s *service) ClearKey(ctx context.Context) error {
	return s.repo.Delete(ctx, apiKeySetting)
}

func (s *service) Configured(ctx context.Context) (bool, error) {
	_, ok, err := s.repo.Get(ctx, apiKeySetting)
	return ok, err
}
