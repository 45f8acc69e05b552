package quiz

import (
	"math/rand"

	"github.com/hsinghweb/eag-v2-s2/internal/normalize"
)

// Shuffle randomizes question order and, per question, option order. The
// correct letter is recomputed so it keeps pointing at the same text.
func Shuffle(questions []normalize.Question) []normalize.Question {
	return shuffleWith(questions, nil)
}

func shuffleWith(questions []normalize.Question, r *rand.Rand) []normalize.Question {
	shuffled := make([]normalize.Question, len(questions))
	copy(shuffled, questions)

	swap := func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] }
	if r != nil {
		r.Shuffle(len(shuffled), swap)
	} else {
		rand.Shuffle(len(shuffled), swap)
	}

	for i := range shuffled {
		shuffled[i] = shuffleOptions(shuffled[i], r)
	}
	return shuffled
}

func shuffleOptions(q normalize.Question, r *rand.Rand) normalize.Question {
	texts := make([]string, 0, len(normalize.Letters))
	for _, l := range normalize.Letters {
		texts = append(texts, q.Options[l])
	}
	correctText := q.Options[q.Correct]

	swap := func(i, j int) { texts[i], texts[j] = texts[j], texts[i] }
	if r != nil {
		r.Shuffle(len(texts), swap)
	} else {
		rand.Shuffle(len(texts), swap)
	}

	options := make(map[string]string, len(texts))
	correct := q.Correct
	for i, l := range normalize.Letters {
		options[l] = texts[i]
		if texts[i] == correctText {
			correct = l
		}
	}

	q.Options = options
	q.Correct = correct
	return q
}
