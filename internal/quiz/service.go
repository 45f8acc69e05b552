package quiz

import (
	"context"
	"sync"

	"github.com/hsinghweb/eag-v2-s2/internal/config"
	"github.com/hsinghweb/eag-v2-s2/internal/gemini"
	"github.com/hsinghweb/eag-v2-s2/internal/normalize"
	"github.com/hsinghweb/eag-v2-s2/internal/progress"
	"github.com/hsinghweb/eag-v2-s2/internal/session"
	"github.com/hsinghweb/eag-v2-s2/internal/setting"
)

// ScoreRecorder persists a finished run. Satisfied by progress.Service.
type ScoreRecorder interface {
	Record(ctx context.Context, score, total int, proficiency string, answers []progress.Answer) (*progress.ScoreRecord, error)
}

type Service interface {
	// Start fetches questions at the stored proficiency, shuffles them and
	// arms the countdown. When the countdown fires the run is submitted and
	// recorded without the learner.
	Start(ctx context.Context) (*QuestionView, error)
	Current(ctx context.Context) (*QuestionView, error)
	Navigate(ctx context.Context, delta int) (*QuestionView, error)
	Answer(ctx context.Context, option string) (*QuestionView, error)
	Submit(ctx context.Context) (*ResultView, error)
}

type service struct {
	provider gemini.Provider
	settings setting.Service
	sessions *session.Manager
	scores   ScoreRecorder
	size     int

	mu          sync.Mutex
	proficiency string
}

func NewService(provider gemini.Provider, settings setting.Service, sessions *session.Manager, scores ScoreRecorder, size int) Service {
	return &service{
		provider: provider,
		settings: settings,
		sessions: sessions,
		scores:   scores,
		size:     size,
	}
}

func (s *service) Start(ctx context.Context) (*QuestionView, error) {
	log := config.WithContext(ctx)

	prof, err := s.settings.Proficiency(ctx)
	if err != nil {
		return nil, err
	}

	raw, err := s.provider.Call(ctx, gemini.QuizPrompt(string(prof), s.size))
	if err != nil {
		s.sessions.EndFlow()
		return nil, err
	}

	questions, err := normalize.Questions(raw)
	if err != nil {
		log.WithError(err).Warn("Quiz response produced no valid questions")
		s.sessions.EndFlow()
		return nil, err
	}
	if len(questions) > s.size {
		questions = questions[:s.size]
	}
	questions = Shuffle(questions)

	// Captured once per run so explicit submit and the countdown callback
	// record the same level even if the learner changes it mid-quiz, and so
	// submit cannot fail after the run is closed.
	proficiency := string(prof)
	s.mu.Lock()
	s.proficiency = proficiency
	s.mu.Unlock()

	// The countdown callback outlives the request, so it records with a
	// fresh context.
	s.sessions.StartQuiz(questions, func(run *session.QuizRun) {
		s.recordRun(context.Background(), run, proficiency)
	})

	log.Infof("Started quiz with %d questions at %s level", len(questions), prof)
	return s.Current(ctx)
}

func (s *service) Current(ctx context.Context) (*QuestionView, error) {
	q, index, total, err := s.sessions.CurrentQuestion()
	if err != nil {
		return nil, err
	}
	remaining, err := s.sessions.QuizTimeRemaining()
	if err != nil {
		return nil, err
	}
	return questionView(q, index, total, remaining), nil
}

func (s *service) Navigate(ctx context.Context, delta int) (*QuestionView, error) {
	if _, err := s.sessions.Navigate(delta); err != nil {
		return nil, err
	}
	return s.Current(ctx)
}

func (s *service) Answer(ctx context.Context, option string) (*QuestionView, error) {
	if err := s.sessions.SelectAnswer(option); err != nil {
		return nil, err
	}
	return s.Current(ctx)
}

func (s *service) Submit(ctx context.Context) (*ResultView, error) {
	log := config.WithContext(ctx)

	run, err := s.sessions.SubmitQuiz()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	proficiency := s.proficiency
	s.mu.Unlock()

	result := s.recordRun(ctx, run, proficiency)
	log.Infof("Quiz submitted with score %d/%d", result.Score, result.Total)
	return result, nil
}

// recordRun scores a submitted run and persists it. Shared by the explicit
// submit path and the countdown callback.
func (s *service) recordRun(ctx context.Context, run *session.QuizRun, proficiency string) *ResultView {
	log := config.WithContext(ctx)

	score := run.Score()
	total := len(run.Questions)

	answers := make([]progress.Answer, 0, total)
	for _, q := range run.Questions {
		answers = append(answers, progress.Answer{
			Question: q.Question,
			Selected: q.SelectedAnswer,
			Correct:  q.Correct,
		})
	}

	result := &ResultView{
		Score:     score,
		Total:     total,
		HighScore: total > 0 && score*10 >= total*8,
	}

	rec, err := s.scores.Record(ctx, score, total, proficiency, answers)
	if err != nil {
		log.WithError(err).Error("Failed to record quiz score")
		return result
	}
	result.RecordID = rec.ID.String()
	return result
}

func questionView(q normalize.Question, index, total, remaining int) *QuestionView {
	return &QuestionView{
		Number:        index + 1,
		Total:         total,
		Question:      q.Question,
		Options:       q.Options,
		Selected:      q.SelectedAnswer,
		TimeRemaining: remaining,
	}
}
