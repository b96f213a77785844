package model

// Verdict is the outcome of grading one question.
type Verdict string

const (
	VerdictCorrect     Verdict = "correct"
	VerdictIncorrect   Verdict = "incorrect"
	VerdictNoSelection Verdict = "no_selection"
)

// GradeResult carries a verdict plus what the UI needs to render it.
// AnswerKnown is false when the model never supplied a usable answer
// key; the verdict is then Incorrect but should be shown as "correct
// answer: unknown" rather than as a normal wrong answer.
type GradeResult struct {
	Verdict        Verdict  `json:"verdict"`
	AnswerKnown    bool     `json:"answer_known"`
	CorrectOptions []string `json:"correct_options,omitempty"`
	Explanation    string   `json:"explanation,omitempty"`
}
