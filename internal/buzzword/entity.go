package buzzword

// View is the card the popup shows: one entry plus its cursor position.
type View struct {
	Buzzword   string `json:"buzzword"`
	Definition string `json:"definition"`
	Position   int    `json:"position"`
	Total      int    `json:"total"`
}
