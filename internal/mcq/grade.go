package mcq

import "github.com/mhoudet/snapqcm/internal/model"

// Grade compares the selected option labels against the question's
// canonical answer key.
//
// Labels are resolved to indices by exact match against Options;
// labels that no longer exist are ignored, which tolerates stale
// widget state after options change. The verdict is Correct only when
// the key set is non-empty and exactly equals the resolved selection,
// order-independent. An empty key set always grades Incorrect with
// AnswerKnown=false.
func Grade(q model.Question, selected []string) model.GradeResult {
	result := model.GradeResult{
		AnswerKnown: len(q.CorrectIndices) > 0,
		Explanation: q.Explanation,
	}
	if len(selected) == 0 {
		result.Verdict = model.VerdictNoSelection
		return result
	}

	if result.AnswerKnown {
		result.CorrectOptions = make([]string, 0, len(q.CorrectIndices))
		for _, i := range q.CorrectIndices {
			result.CorrectOptions = append(result.CorrectOptions, q.Options[i])
		}
	}

	userSet := make(map[int]bool, len(selected))
	for _, label := range selected {
		for i, option := range q.Options {
			if option == label {
				userSet[i] = true
				break
			}
		}
	}

	result.Verdict = model.VerdictIncorrect
	if result.AnswerKnown && len(userSet) == len(q.CorrectIndices) {
		match := true
		for _, i := range q.CorrectIndices {
			if !userSet[i] {
				match = false
				break
			}
		}
		if match {
			result.Verdict = model.VerdictCorrect
		}
	}
	return result
}
