// Package normalize coerces loosely-structured model output into the strict
// records the popup needs. Three strategies are tried per content type:
// strict JSON, JSON inside a fenced block, and a line-oriented heuristic
// rebuild. The functions are pure and keep no state.
package normalize

import "net/http"

// Letters are the positional option labels, in presentation order.
var Letters = []string{"A", "B", "C", "D"}

// Question is a canonical multiple-choice question: exactly the keys A-D in
// Options, Correct guaranteed to be one of them. SelectedAnswer is filled in
// by the learner during a quiz run.
type Question struct {
	Question       string            `json:"question"`
	Options        map[string]string `json:"options"`
	Correct        string            `json:"correct"`
	SelectedAnswer string            `json:"selectedAnswer,omitempty"`
}

// Valid reports whether the question survives the post-normalization filter:
// all four options non-empty and Correct one of A-D.
func (q Question) Valid() bool {
	if !letterRe.MatchString(q.Correct) {
		return false
	}
	for _, l := range Letters {
		if q.Options[l] == "" {
			return false
		}
	}
	return true
}

type Buzzword struct {
	Buzzword   string `json:"buzzword"`
	Definition string `json:"definition"`
}

type Todo struct {
	Task      string `json:"task"`
	Completed bool   `json:"completed"`
}

// NoValidContentError reports that every parsing strategy failed. Raw carries
// the unparsed model output so the popup can surface it for diagnosis.
type NoValidContentError struct {
	Raw string
}

func (e *NoValidContentError) Error() string {
	return "no valid content in model response"
}

func (e *NoValidContentError) HTTPStatus() int { return http.StatusBadGateway }

func (e *NoValidContentError) UserMessage() string {
	return "The model response could not be parsed. Please try again."
}

func (e *NoValidContentError) RecoveryAction() string { return "retry" }
