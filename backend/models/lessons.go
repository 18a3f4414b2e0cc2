package models

// Lesson mirrors the authored lesson documents (data/python.json,
// data/JS.json). The service never mutates lessons.
type Lesson struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Code        string   `json:"code"`
	Explanation string   `json:"explanation,omitempty"`
	Exercise    Exercise `json:"exercise"`
}

type Exercise struct {
	Question string `json:"question"`
	Template string `json:"template"`
	Answer   string `json:"answer"`
}
