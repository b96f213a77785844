package model

import "time"

// Question is the canonical representation of one multiple-choice
// question after normalization of the raw model payload. CorrectIndices
// always index into this question's own Options slice; out-of-range
// values never survive normalization.
type Question struct {
	Text           string   `json:"text"`
	Options        []string `json:"options"`
	CorrectIndices []int    `json:"correct_indices"`
	Explanation    string   `json:"explanation,omitempty"`

	// MultiSelect is frozen at normalization time and never re-derived
	// from the user's runtime selection.
	MultiSelect bool `json:"multi_select"`

	// Invalid marks a record that failed minimum-shape validation. The
	// question is kept in its set so siblings keep their positions and
	// the caller can render a per-question warning.
	Invalid       bool   `json:"invalid,omitempty"`
	InvalidReason string `json:"invalid_reason,omitempty"`

	// User interaction state.
	Selection []string `json:"selection,omitempty"`
	Checked   bool     `json:"checked"`
}

// QuestionSet is the ordered list of questions generated from one
// uploaded image, keyed by the image's content-derived identifier.
type QuestionSet struct {
	ImageID     string     `json:"image_id"`
	Questions   []Question `json:"questions"`
	GeneratedAt time.Time  `json:"generated_at"`
}
