package mcq

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/mhoudet/snapqcm/internal/model"
)

// MinOptions is the smallest option count accepted at validation time.
// The prompt asks the model for 2 to 6 options but only the lower bound
// is enforced here.
const MinOptions = 2

// Normalize reshapes a decoded payload of unknown shape into canonical
// questions. A payload with a "questions" list yields one question per
// element; a payload that itself looks like a single question record is
// wrapped; anything else yields an empty slice.
//
// Records that fail minimum-shape validation are kept, flagged Invalid,
// so callers can warn about them individually instead of failing the
// whole set.
func Normalize(payload map[string]any) []model.Question {
	records := questionRecords(payload)
	questions := make([]model.Question, 0, len(records))
	for _, rec := range records {
		questions = append(questions, normalizeRecord(rec))
	}
	return questions
}

func questionRecords(payload map[string]any) []map[string]any {
	if list, ok := payload["questions"].([]any); ok {
		records := make([]map[string]any, 0, len(list))
		for _, item := range list {
			// Non-object elements become nil records and fail validation
			// downstream, keeping sibling positions intact.
			rec, _ := item.(map[string]any)
			records = append(records, rec)
		}
		return records
	}
	if _, ok := payload["question"]; ok {
		return []map[string]any{payload}
	}
	return nil
}

func normalizeRecord(rec map[string]any) model.Question {
	q := model.Question{
		Text:        strings.TrimSpace(stringValue(rec["question"])),
		Options:     optionList(rec["options"]),
		Explanation: strings.TrimSpace(stringValue(rec["explanation"])),
	}
	q.CorrectIndices = normalizeAnswerKey(answerKeyValue(rec), len(q.Options))
	q.MultiSelect = len(q.CorrectIndices) > 1

	switch {
	case q.Text == "":
		q.Invalid = true
		q.InvalidReason = "question text is empty"
	case len(q.Options) < MinOptions:
		q.Invalid = true
		q.InvalidReason = fmt.Sprintf("question needs at least %d options, got %d", MinOptions, len(q.Options))
	}
	return q
}

// answerKeyValue picks the raw answer key from a record. The plural
// "correct_indices" wins whenever the key is present, even with a null
// or malformed value; "correct_index" is consulted only when the plural
// key is absent.
func answerKeyValue(rec map[string]any) any {
	if v, ok := rec["correct_indices"]; ok {
		return v
	}
	return rec["correct_index"]
}

// normalizeAnswerKey coerces whatever the model sent as an answer key
// into a sorted, deduplicated set of valid option indices. A bare
// number or numeric string becomes a one-element set; a list is
// filtered to its integral entries; everything else yields an empty
// set. Out-of-range indices are discarded here so the canonical
// invariant holds from the moment a Question exists.
func normalizeAnswerKey(value any, optionCount int) []int {
	var raw []int
	switch v := value.(type) {
	case float64:
		if i, ok := asIndex(v); ok {
			raw = append(raw, i)
		}
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			raw = append(raw, i)
		}
	case []any:
		for _, item := range v {
			switch e := item.(type) {
			case float64:
				if i, ok := asIndex(e); ok {
					raw = append(raw, i)
				}
			case string:
				if i, err := strconv.Atoi(strings.TrimSpace(e)); err == nil {
					raw = append(raw, i)
				}
			}
		}
	}

	seen := make(map[int]bool, len(raw))
	indices := make([]int, 0, len(raw))
	for _, i := range raw {
		if i < 0 || i >= optionCount || seen[i] {
			continue
		}
		seen[i] = true
		indices = append(indices, i)
	}
	sort.Ints(indices)
	return indices
}

func asIndex(f float64) (int, bool) {
	i := int(f)
	if float64(i) != f {
		return 0, false
	}
	return i, true
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

// optionList keeps option positions stable: string elements pass
// through, anything else is rendered with fmt.Sprint rather than
// dropped, since dropping would shift sibling indices.
func optionList(v any) []string {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	options := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			options = append(options, s)
			continue
		}
		options = append(options, fmt.Sprint(item))
	}
	return options
}
