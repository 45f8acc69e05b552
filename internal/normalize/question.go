package normalize

import (
	"bytes"
	"encoding/json"
	"errors"
	"regexp"
	"strconv"
	"strings"
)

var letterRe = regexp.MustCompile(`^[A-D]$`)

// Questions turns raw model output into validated questions. Strategies in
// order: strict JSON, fenced-block JSON, line-heuristic rebuild. A strategy
// wins when it yields at least one question that survives validation.
func Questions(raw string) ([]Question, error) {
	for _, parse := range []func(string) ([]json.RawMessage, bool){jsonItems, fencedItems} {
		if items, ok := parse(raw); ok {
			if qs := normalizeItems(items); len(qs) > 0 {
				return qs, nil
			}
		}
	}
	if qs := questionsFromLines(raw); len(qs) > 0 {
		return qs, nil
	}
	return nil, &NoValidContentError{Raw: raw}
}

func normalizeItems(items []json.RawMessage) []Question {
	var out []Question
	for _, item := range items {
		if q, ok := NormalizeQuestion(item); ok {
			out = append(out, q)
		}
	}
	return out
}

// NormalizeQuestion canonicalizes one raw question record. Options may be an
// A-D keyed object (any case), an arbitrarily keyed object, an array, or flat
// fields on the record itself; the correct answer may be a letter, the answer
// text, or live under an alternate field name. The result has exactly the
// keys A-D; an unresolvable correct answer defaults to "A" rather than
// dropping the question.
func NormalizeQuestion(item json.RawMessage) (Question, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(item, &fields); err != nil {
		return Question{}, false
	}

	q := Question{
		Question: firstString(fields, "question", "text", "q"),
		Options:  map[string]string{},
	}

	pairs := optionPairs(fields)
	if letterKeyed(pairs) {
		for _, p := range pairs {
			q.Options[strings.ToUpper(strings.TrimSpace(p.Key))] = strings.TrimSpace(p.Value)
		}
	} else {
		for i, l := range Letters {
			if i < len(pairs) {
				q.Options[l] = strings.TrimSpace(pairs[i].Value)
			}
		}
	}
	for _, l := range Letters {
		if _, ok := q.Options[l]; !ok {
			q.Options[l] = ""
		}
	}

	rawCorrect := strings.TrimSpace(firstString(fields,
		"correct", "answer", "correct_answer", "correctAnswer", "correct_option"))
	if len(rawCorrect) == 1 && letterRe.MatchString(strings.ToUpper(rawCorrect)) {
		q.Correct = strings.ToUpper(rawCorrect)
	} else {
		for _, l := range Letters {
			if q.Options[l] != "" && strings.EqualFold(q.Options[l], rawCorrect) {
				q.Correct = l
				break
			}
		}
	}
	if q.Correct == "" {
		q.Correct = "A"
	}

	return q, q.Valid()
}

type pair struct {
	Key   string
	Value string
}

// optionPairs extracts option values preserving their encounter order, which
// a Go map would lose.
func optionPairs(fields map[string]json.RawMessage) []pair {
	if rawOpts, ok := fields["options"]; ok {
		if pairs, err := orderedPairs(rawOpts); err == nil {
			return pairs
		}
		var arr []json.RawMessage
		if err := json.Unmarshal(rawOpts, &arr); err == nil {
			pairs := make([]pair, 0, len(arr))
			for _, v := range arr {
				pairs = append(pairs, pair{Value: rawString(v)})
			}
			return pairs
		}
		return nil
	}

	// Flat A-D properties on the record itself.
	var pairs []pair
	for _, l := range Letters {
		for key, v := range fields {
			if strings.EqualFold(key, l) {
				pairs = append(pairs, pair{Key: l, Value: rawString(v)})
				break
			}
		}
	}
	return pairs
}

func letterKeyed(pairs []pair) bool {
	if len(pairs) != len(Letters) {
		return false
	}
	seen := map[string]bool{}
	for _, p := range pairs {
		k := strings.ToUpper(strings.TrimSpace(p.Key))
		if !letterRe.MatchString(k) || seen[k] {
			return false
		}
		seen[k] = true
	}
	return true
}

// orderedPairs walks a JSON object with a token decoder so key order is kept.
func orderedPairs(raw json.RawMessage) ([]pair, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errors.New("not a JSON object")
	}

	var pairs []pair
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := keyTok.(string)
		var val json.RawMessage
		if err := dec.Decode(&val); err != nil {
			return nil, err
		}
		pairs = append(pairs, pair{Key: key, Value: rawString(val)})
	}
	return pairs, nil
}

func firstString(fields map[string]json.RawMessage, names ...string) string {
	for _, name := range names {
		if v, ok := fields[name]; ok {
			if s := rawString(v); s != "" {
				return s
			}
		}
	}
	return ""
}

func rawString(raw json.RawMessage) string {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

var (
	optionLineRe  = regexp.MustCompile(`^\s*\(?([A-Da-d])[).:\-]\s+(.+)$`)
	correctLineRe = regexp.MustCompile(`(?i)\bcorrect\s+answer\b(?:\s+is)?\s*[:\-]?\s*\(?([A-Da-d])(?:[^A-Za-z]|$)`)
	numberedRe    = regexp.MustCompile(`^\s*(?:\*\*)?(?:Q(?:uestion)?\s*)?\d+[).:]\s*(.*)`)
)

type lineQuestion struct {
	text    []string
	options map[string]string
	correct string
}

// questionsFromLines rebuilds questions from loosely-labelled lines: "A."-"D."
// option lines and a "correct answer" line holding a single letter. Any other
// non-empty line is question text; question text after a block of options
// starts the next question.
func questionsFromLines(raw string) []Question {
	var out []Question
	cur := &lineQuestion{options: map[string]string{}}

	flush := func() {
		if q, ok := cur.build(); ok {
			out = append(out, q)
		}
		cur = &lineQuestion{options: map[string]string{}}
	}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if m := correctLineRe.FindStringSubmatch(line); m != nil {
			cur.correct = strings.ToUpper(m[1])
			continue
		}
		if m := optionLineRe.FindStringSubmatch(line); m != nil {
			cur.options[strings.ToUpper(m[1])] = strings.TrimSpace(m[2])
			continue
		}
		if len(cur.options) > 0 || cur.correct != "" {
			flush()
		}
		if m := numberedRe.FindStringSubmatch(line); m != nil {
			line = strings.TrimSpace(m[1])
		}
		if line != "" {
			cur.text = append(cur.text, line)
		}
	}
	flush()
	return out
}

func (lq *lineQuestion) build() (Question, bool) {
	if len(lq.text) == 0 || len(lq.options) == 0 {
		return Question{}, false
	}
	q := Question{
		Question: strings.Join(lq.text, " "),
		Options:  map[string]string{},
		Correct:  lq.correct,
	}
	for _, l := range Letters {
		q.Options[l] = lq.options[l]
	}
	if q.Correct == "" {
		q.Correct = "A"
	}
	return q, q.Valid()
}
