package session

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/hsinghweb/eag-v2-s2/internal/normalize"
)

func testQuestions(n int) []normalize.Question {
	qs := make([]normalize.Question, n)
	for i := range qs {
		qs[i] = normalize.Question{
			Question: "q",
			Options:  map[string]string{"A": "a", "B": "b", "C": "c", "D": "d"},
			Correct:  "B",
		}
	}
	return qs
}

func TestNavigateClamped(t *testing.T) {
	m := NewManager(time.Minute)
	m.StartQuiz(testQuestions(3), nil)

	if idx, _ := m.Navigate(-1); idx != 0 {
		t.Errorf("moved below zero: %d", idx)
	}
	if idx, _ := m.Navigate(1); idx != 1 {
		t.Errorf("got %d, want 1", idx)
	}
	if idx, _ := m.Navigate(5); idx != 2 {
		t.Errorf("moved past the end: %d", idx)
	}
}

func TestSelectAnswerAndScore(t *testing.T) {
	m := NewManager(time.Minute)
	m.StartQuiz(testQuestions(3), nil)

	if err := m.SelectAnswer("E"); err != ErrInvalidOption {
		t.Errorf("expected ErrInvalidOption, got %v", err)
	}
	if err := m.SelectAnswer("B"); err != nil {
		t.Fatalf("SelectAnswer failed: %v", err)
	}
	if _, err := m.Navigate(1); err != nil {
		t.Fatal(err)
	}
	if err := m.SelectAnswer("A"); err != nil {
		t.Fatal(err)
	}

	run, err := m.SubmitQuiz()
	if err != nil {
		t.Fatalf("SubmitQuiz failed: %v", err)
	}
	if got := run.Score(); got != 1 {
		t.Errorf("got score %d, want 1", got)
	}
}

func TestSubmitOnlyOnce(t *testing.T) {
	m := NewManager(time.Minute)
	m.StartQuiz(testQuestions(1), nil)

	if _, err := m.SubmitQuiz(); err != nil {
		t.Fatalf("first submit failed: %v", err)
	}
	if _, err := m.SubmitQuiz(); err != ErrQuizSubmitted {
		t.Errorf("second submit should fail, got %v", err)
	}
}

func TestTimerExpiryForcesSubmitExactlyOnce(t *testing.T) {
	var fired int32
	m := NewManager(20 * time.Millisecond)
	m.StartQuiz(testQuestions(1), func(run *QuizRun) {
		atomic.AddInt32(&fired, 1)
	})

	time.Sleep(80 * time.Millisecond)

	if n := atomic.LoadInt32(&fired); n != 1 {
		t.Fatalf("expiry callback fired %d times, want 1", n)
	}
	if _, err := m.SubmitQuiz(); err != ErrQuizSubmitted {
		t.Errorf("explicit submit after expiry should fail, got %v", err)
	}
}

func TestNewFlowCancelsTimer(t *testing.T) {
	var fired int32
	m := NewManager(30 * time.Millisecond)
	m.StartQuiz(testQuestions(1), func(run *QuizRun) {
		atomic.AddInt32(&fired, 1)
	})

	m.StartBuzzwords([]normalize.Buzzword{{Buzzword: "RAG", Definition: "def"}})
	time.Sleep(80 * time.Millisecond)

	if n := atomic.LoadInt32(&fired); n != 0 {
		t.Errorf("stray timer from a replaced session fired %d times", n)
	}
	if m.ActiveFlow() != FlowBuzzwords {
		t.Errorf("active flow = %q, want buzzwords", m.ActiveFlow())
	}
}

func TestExplicitSubmitBeatsTimer(t *testing.T) {
	var fired int32
	m := NewManager(30 * time.Millisecond)
	m.StartQuiz(testQuestions(1), func(run *QuizRun) {
		atomic.AddInt32(&fired, 1)
	})

	if _, err := m.SubmitQuiz(); err != nil {
		t.Fatalf("SubmitQuiz failed: %v", err)
	}
	time.Sleep(80 * time.Millisecond)

	if n := atomic.LoadInt32(&fired); n != 0 {
		t.Errorf("timer fired %d times after an explicit submit", n)
	}
}

func TestBuzzwordCursor(t *testing.T) {
	m := NewManager(time.Minute)
	m.StartBuzzwords([]normalize.Buzzword{
		{Buzzword: "one", Definition: "d1"},
		{Buzzword: "two", Definition: "d2"},
	})

	entry, idx, total, err := m.CurrentBuzzword()
	if err != nil || entry.Buzzword != "one" || idx != 0 || total != 2 {
		t.Fatalf("got %v %d/%d err=%v", entry, idx, total, err)
	}

	entry, _, _, _ = m.MoveBuzzword(1)
	if entry.Buzzword != "two" {
		t.Errorf("got %q, want two", entry.Buzzword)
	}
	entry, idx, _, _ = m.MoveBuzzword(1)
	if idx != 1 {
		t.Errorf("cursor moved past the end: %d", idx)
	}
	entry, idx, _, _ = m.MoveBuzzword(-5)
	if idx != 0 || entry.Buzzword != "one" {
		t.Errorf("cursor clamp failed: %d %q", idx, entry.Buzzword)
	}
}

func TestCoursePlanText(t *testing.T) {
	m := NewManager(time.Minute)
	if _, err := m.CoursePlanText(); err != ErrNoActivePlan {
		t.Errorf("expected ErrNoActivePlan, got %v", err)
	}
	m.StartCoursePlan("# Plan")
	text, err := m.CoursePlanText()
	if err != nil || text != "# Plan" {
		t.Errorf("got %q err=%v", text, err)
	}
}
