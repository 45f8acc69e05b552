package progress

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/hsinghweb/eag-v2-s2/internal/config"
)

type Service interface {
	// Record appends a score unconditionally; zero is a valid, recorded
	// outcome.
	Record(ctx context.Context, score, total int, proficiency string, answers []Answer) (*ScoreRecord, error)
	History(ctx context.Context) ([]*ScoreRecord, error)
	Summary(ctx context.Context) (*Summary, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Record(ctx context.Context, score, total int, proficiency string, answers []Answer) (*ScoreRecord, error) {
	log := config.WithContext(ctx)

	rec := &ScoreRecord{
		ID:          uuid.New(),
		Date:        time.Now().UTC(),
		Score:       score,
		Total:       total,
		Proficiency: proficiency,
	}
	if len(answers) > 0 {
		payload, err := json.Marshal(answers)
		if err != nil {
			return nil, err
		}
		rec.Answers = datatypes.JSON(payload)
	}

	if err := s.repo.Append(ctx, rec); err != nil {
		log.WithError(err).Error("Failed to append score record")
		return nil, err
	}

	log.WithField("score", score).Infof("Recorded quiz score %d/%d at %s level", score, total, proficiency)
	return rec, nil
}

func (s *service) History(ctx context.Context) ([]*ScoreRecord, error) {
	return s.repo.List(ctx)
}

func (s *service) Summary(ctx context.Context) (*Summary, error) {
	return s.repo.Summary(ctx)
}
