package normalize

import (
	"encoding/json"
	"regexp"
	"strings"
)

var fenceRe = regexp.MustCompile("(?s)```[a-zA-Z]*[ \t]*\n?(.*?)```")

// fencedBlock returns the interior of the first code-fenced region, which is
// where models tend to wrap JSON payloads.
func fencedBlock(raw string) (string, bool) {
	m := fenceRe.FindStringSubmatch(raw)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// jsonItems parses raw as a JSON array and returns its elements undecoded.
func jsonItems(raw string) ([]json.RawMessage, bool) {
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &items); err != nil {
		return nil, false
	}
	return items, true
}

// fencedItems applies jsonItems to the first fenced block, if any.
func fencedItems(raw string) ([]json.RawMessage, bool) {
	inner, ok := fencedBlock(raw)
	if !ok {
		return nil, false
	}
	return jsonItems(inner)
}
