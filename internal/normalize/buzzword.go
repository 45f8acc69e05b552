package normalize

import (
	"encoding/json"
	"regexp"
	"strings"
)

type rawBuzzword struct {
	Buzzword   string `json:"buzzword"`
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// Buzzwords parses buzzword entries, unifying the {buzzword,definition} and
// {term,definition} field variants. Duplicates are not filtered; shaping the
// model output is the prompt's job.
func Buzzwords(raw string) ([]Buzzword, error) {
	for _, parse := range []func(string) ([]json.RawMessage, bool){jsonItems, fencedItems} {
		if items, ok := parse(raw); ok {
			if entries := normalizeBuzzwords(items); len(entries) > 0 {
				return entries, nil
			}
		}
	}
	if entries := buzzwordsFromLines(raw); len(entries) > 0 {
		return entries, nil
	}
	return nil, &NoValidContentError{Raw: raw}
}

func normalizeBuzzwords(items []json.RawMessage) []Buzzword {
	var out []Buzzword
	for _, item := range items {
		var rb rawBuzzword
		if err := json.Unmarshal(item, &rb); err != nil {
			continue
		}
		name := strings.TrimSpace(rb.Buzzword)
		if name == "" {
			name = strings.TrimSpace(rb.Term)
		}
		def := strings.TrimSpace(rb.Definition)
		if name == "" || def == "" {
			continue
		}
		out = append(out, Buzzword{Buzzword: name, Definition: def})
	}
	return out
}

var buzzwordLineRe = regexp.MustCompile(`^\s*(?:\d+[).:]\s*)?\**([^:*]+?)\**\s*[:\x{2013}\x{2014}-]\s+(.+)$`)

// buzzwordsFromLines rebuilds entries from "term: definition" style lines.
func buzzwordsFromLines(raw string) []Buzzword {
	var out []Buzzword
	for _, line := range strings.Split(raw, "\n") {
		m := buzzwordLineRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		def := strings.TrimSpace(m[2])
		// Long left-hand sides are prose with a colon in it, not a term.
		if name == "" || def == "" || len(name) > 60 {
			continue
		}
		out = append(out, Buzzword{Buzzword: name, Definition: def})
	}
	return out
}
