package dto

import "time"

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type SessionResponse struct {
	SessionID string    `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ImageSummary describes one uploaded image. Duplicate is true when an
// upload resolved to an already-known image instead of creating a new
// entry.
type ImageSummary struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	MIMEType   string    `json:"mime_type"`
	Size       int       `json:"size"`
	UploadedAt time.Time `json:"uploaded_at"`
	Selected   bool      `json:"selected"`
	HasQuiz    bool      `json:"has_quiz"`
	Duplicate  bool      `json:"duplicate,omitempty"`
}

// QuestionView is a question as exposed to the presentation layer. The
// answer key is deliberately absent; correct options are only revealed
// by the check endpoint.
type QuestionView struct {
	Index         int      `json:"index"`
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	MultiSelect   bool     `json:"multi_select"`
	Invalid       bool     `json:"invalid,omitempty"`
	InvalidReason string   `json:"invalid_reason,omitempty"`
	Selection     []string `json:"selection,omitempty"`
	Checked       bool     `json:"checked"`
}

type QuizResponse struct {
	ImageID     string         `json:"image_id"`
	GeneratedAt time.Time      `json:"generated_at"`
	Questions   []QuestionView `json:"questions"`
	Warnings    []string       `json:"warnings,omitempty"`
}

// CheckResponse is the grading verdict for one question. When
// AnswerKnown is false the correct answer should be rendered as
// "unknown", not as an empty list of options.
type CheckResponse struct {
	Index          int      `json:"index"`
	Verdict        string   `json:"verdict"`
	AnswerKnown    bool     `json:"answer_known"`
	CorrectOptions []string `json:"correct_options,omitempty"`
	Explanation    string   `json:"explanation,omitempty"`
}
