// Package session owns the transient state of the active flow: the quiz run
// with its countdown, the buzzword cursor, and the last generated course
// plan. Only one flow is live at a time; starting a new one replaces the
// previous session and stops its timer.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hsinghweb/eag-v2-s2/internal/normalize"
)

type Flow string

const (
	FlowNone       Flow = ""
	FlowCoursePlan Flow = "course_plan"
	FlowBuzzwords  Flow = "buzzwords"
	FlowQuiz       Flow = "quiz"
)

type Phase string

const (
	PhaseActive    Phase = "active"
	PhaseSubmitted Phase = "submitted"
)

var (
	ErrNoActiveQuiz      = errors.New("no active quiz")
	ErrNoActiveBuzzwords = errors.New("no active buzzword session")
	ErrNoActivePlan      = errors.New("no active course plan")
	ErrQuizSubmitted     = errors.New("quiz already submitted")
	ErrInvalidOption     = errors.New("invalid option letter")
)

// QuizRun is the live quiz session. Fields are only touched through Manager
// methods, under its lock.
type QuizRun struct {
	ID        uuid.UUID
	Questions []normalize.Question
	Index     int
	Deadline  time.Time
	Phase     Phase

	timer *time.Timer
}

// Score counts questions whose selected answer matches the correct letter.
func (r *QuizRun) Score() int {
	score := 0
	for _, q := range r.Questions {
		if q.SelectedAnswer != "" && q.SelectedAnswer == q.Correct {
			score++
		}
	}
	return score
}

// TimeRemaining is the countdown in whole seconds, clamped at zero.
func (r *QuizRun) TimeRemaining() int {
	if r.Phase != PhaseActive {
		return 0
	}
	left := int(time.Until(r.Deadline).Round(time.Second) / time.Second)
	if left < 0 {
		return 0
	}
	return left
}

type buzzwordRun struct {
	entries []normalize.Buzzword
	index   int
}

type planRun struct {
	raw string
}

// Manager is the single-active-flow guard: an explicit lock plus session
// replacement, so starting any flow cancels whatever was running.
type Manager struct {
	mu sync.Mutex

	flow Flow
	quiz *QuizRun
	buzz *buzzwordRun
	plan *planRun

	quizDuration time.Duration
}

func NewManager(quizDuration time.Duration) *Manager {
	return &Manager{quizDuration: quizDuration}
}

// reset clears any live session and stops a pending countdown. Callers hold
// the lock.
func (m *Manager) reset() {
	if m.quiz != nil && m.quiz.timer != nil {
		m.quiz.timer.Stop()
	}
	m.quiz = nil
	m.buzz = nil
	m.plan = nil
	m.flow = FlowNone
}

// StartQuiz replaces any live session with a new quiz run and arms the
// countdown. onExpire runs at most once, when the timer fires while the run
// is still active.
func (m *Manager) StartQuiz(questions []normalize.Question, onExpire func(*QuizRun)) *QuizRun {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.reset()
	run := &QuizRun{
		ID:        uuid.New(),
		Questions: questions,
		Deadline:  time.Now().Add(m.quizDuration),
		Phase:     PhaseActive,
	}
	run.timer = time.AfterFunc(m.quizDuration, func() {
		m.expireQuiz(run.ID, onExpire)
	})
	m.quiz = run
	m.flow = FlowQuiz
	return run
}

// expireQuiz is the forced submit. The run id check makes a stray timer from
// a replaced session a no-op, and the phase check makes expiry and explicit
// submit mutually exclusive.
func (m *Manager) expireQuiz(id uuid.UUID, onExpire func(*QuizRun)) {
	m.mu.Lock()
	run := m.quiz
	if run == nil || run.ID != id || run.Phase != PhaseActive {
		m.mu.Unlock()
		return
	}
	run.Phase = PhaseSubmitted
	m.mu.Unlock()

	if onExpire != nil {
		onExpire(run)
	}
}

func (m *Manager) activeQuiz() (*QuizRun, error) {
	if m.quiz == nil {
		return nil, ErrNoActiveQuiz
	}
	return m.quiz, nil
}

// CurrentQuestion returns a copy of the question at the cursor plus its
// position.
func (m *Manager) CurrentQuestion() (normalize.Question, int, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	run, err := m.activeQuiz()
	if err != nil {
		return normalize.Question{}, 0, 0, err
	}
	return run.Questions[run.Index], run.Index, len(run.Questions), nil
}

// QuizTimeRemaining returns the countdown of the live run in seconds.
func (m *Manager) QuizTimeRemaining() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	run, err := m.activeQuiz()
	if err != nil {
		return 0, err
	}
	return run.TimeRemaining(), nil
}

// SelectAnswer records the learner's choice on the current question.
func (m *Manager) SelectAnswer(option string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	run, err := m.activeQuiz()
	if err != nil {
		return err
	}
	if run.Phase != PhaseActive {
		return ErrQuizSubmitted
	}
	valid := false
	for _, l := range normalize.Letters {
		if option == l {
			valid = true
			break
		}
	}
	if !valid {
		return ErrInvalidOption
	}
	run.Questions[run.Index].SelectedAnswer = option
	return nil
}

// Navigate moves the question cursor by delta, clamped to the run bounds.
func (m *Manager) Navigate(delta int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	run, err := m.activeQuiz()
	if err != nil {
		return 0, err
	}
	if run.Phase != PhaseActive {
		return run.Index, ErrQuizSubmitted
	}
	next := run.Index + delta
	if next < 0 {
		next = 0
	}
	if next > len(run.Questions)-1 {
		next = len(run.Questions) - 1
	}
	run.Index = next
	return run.Index, nil
}

// SubmitQuiz ends the run explicitly. Returns the run so the caller can score
// and persist it; the countdown is stopped.
func (m *Manager) SubmitQuiz() (*QuizRun, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	run, err := m.activeQuiz()
	if err != nil {
		return nil, err
	}
	if run.Phase != PhaseActive {
		return nil, ErrQuizSubmitted
	}
	run.Phase = PhaseSubmitted
	if run.timer != nil {
		run.timer.Stop()
	}
	return run, nil
}

// StartBuzzwords replaces any live session with a buzzword browsing run.
func (m *Manager) StartBuzzwords(entries []normalize.Buzzword) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.reset()
	m.buzz = &buzzwordRun{entries: entries}
	m.flow = FlowBuzzwords
}

// CurrentBuzzword returns the entry at the cursor plus its position.
func (m *Manager) CurrentBuzzword() (normalize.Buzzword, int, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.buzz == nil {
		return normalize.Buzzword{}, 0, 0, ErrNoActiveBuzzwords
	}
	return m.buzz.entries[m.buzz.index], m.buzz.index, len(m.buzz.entries), nil
}

// MoveBuzzword moves the cursor by delta, clamped.
func (m *Manager) MoveBuzzword(delta int) (normalize.Buzzword, int, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.buzz == nil {
		return normalize.Buzzword{}, 0, 0, ErrNoActiveBuzzwords
	}
	next := m.buzz.index + delta
	if next < 0 {
		next = 0
	}
	if next > len(m.buzz.entries)-1 {
		next = len(m.buzz.entries) - 1
	}
	m.buzz.index = next
	return m.buzz.entries[m.buzz.index], m.buzz.index, len(m.buzz.entries), nil
}

// StartCoursePlan replaces any live session and keeps the raw plan text
// around for the todo conversion step.
func (m *Manager) StartCoursePlan(raw string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.reset()
	m.plan = &planRun{raw: raw}
	m.flow = FlowCoursePlan
}

// CoursePlanText returns the raw text of the active plan.
func (m *Manager) CoursePlanText() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.plan == nil {
		return "", ErrNoActivePlan
	}
	return m.plan.raw, nil
}

// EndFlow clears the live session, stopping any countdown.
func (m *Manager) EndFlow() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reset()
}

// ActiveFlow reports which flow currently owns the session state.
func (m *Manager) ActiveFlow() Flow {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.flow
}
