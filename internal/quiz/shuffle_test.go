package quiz

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/hsinghweb/eag-v2-s2/internal/normalize"
)

func sampleQuestions() []normalize.Question {
	return []normalize.Question{
		{
			Question: "What is a transformer?",
			Options:  map[string]string{"A": "A model architecture", "B": "A database", "C": "A browser", "D": "A compiler"},
			Correct:  "A",
		},
		{
			Question: "What does RAG stand for?",
			Options:  map[string]string{"A": "Random Access Gate", "B": "Retrieval Augmented Generation", "C": "Recursive AI Graph", "D": "Rapid Answer Generator"},
			Correct:  "B",
		},
		{
			Question: "Which is a vector database?",
			Options:  map[string]string{"A": "Postgres", "B": "Redis", "C": "Pinecone", "D": "SQLite"},
			Correct:  "C",
		},
	}
}

func TestShufflePreservesQuestionSet(t *testing.T) {
	original := sampleQuestions()
	shuffled := shuffleWith(original, rand.New(rand.NewSource(42)))

	if len(shuffled) != len(original) {
		t.Fatalf("expected %d questions, got %d", len(original), len(shuffled))
	}

	want := make([]string, 0, len(original))
	got := make([]string, 0, len(shuffled))
	for i := range original {
		want = append(want, original[i].Question)
		got = append(got, shuffled[i].Question)
	}
	sort.Strings(want)
	sort.Strings(got)
	for i := range want {
		if want[i] != got[i] {
			t.Fatalf("question set changed: want %v, got %v", want, got)
		}
	}
}

func TestShuffleKeepsCorrectAnswerText(t *testing.T) {
	original := sampleQuestions()
	correctByQuestion := make(map[string]string, len(original))
	for _, q := range original {
		correctByQuestion[q.Question] = q.Options[q.Correct]
	}

	for seed := int64(0); seed < 20; seed++ {
		shuffled := shuffleWith(sampleQuestions(), rand.New(rand.NewSource(seed)))
		for _, q := range shuffled {
			want := correctByQuestion[q.Question]
			if got := q.Options[q.Correct]; got != want {
				t.Fatalf("seed %d: correct option for %q is %q, want %q", seed, q.Question, got, want)
			}
			if len(q.Options) != 4 {
				t.Fatalf("seed %d: expected 4 options, got %d", seed, len(q.Options))
			}
		}
	}
}

func TestShuffleDoesNotMutateInput(t *testing.T) {
	original := sampleQuestions()
	shuffleWith(original, rand.New(rand.NewSource(7)))

	fresh := sampleQuestions()
	for i := range fresh {
		if original[i].Question != fresh[i].Question || original[i].Correct != fresh[i].Correct {
			t.Fatalf("input slice mutated at index %d", i)
		}
	}
}
