package quiz

// QuestionView is what the popup renders for one question. Correct is never
// exposed while the run is live.
type QuestionView struct {
	Number        int               `json:"number"`
	Total         int               `json:"total"`
	Question      string            `json:"question"`
	Options       map[string]string `json:"options"`
	Selected      string            `json:"selected,omitempty"`
	TimeRemaining int               `json:"time_remaining"`
}

// ResultView is the final score screen payload.
type ResultView struct {
	Score     int    `json:"score"`
	Total     int    `json:"total"`
	HighScore bool   `json:"high_score"`
	RecordID  string `json:"record_id,omitempty"`
}
