package normalize

import (
	"encoding/json"
	"strings"
)

// Todos parses a JSON array of {task, completed} items, directly or from a
// fenced block. There is deliberately no line heuristic here: a todo list
// that cannot be parsed is reported as a failure to the caller.
func Todos(raw string) ([]Todo, error) {
	for _, parse := range []func(string) ([]json.RawMessage, bool){jsonItems, fencedItems} {
		if items, ok := parse(raw); ok {
			if todos := normalizeTodos(items); len(todos) > 0 {
				return todos, nil
			}
		}
	}
	return nil, &NoValidContentError{Raw: raw}
}

func normalizeTodos(items []json.RawMessage) []Todo {
	var out []Todo
	for _, item := range items {
		var td Todo
		if err := json.Unmarshal(item, &td); err != nil {
			continue
		}
		td.Task = strings.TrimSpace(td.Task)
		if td.Task == "" {
			continue
		}
		out = append(out, td)
	}
	return out
}
