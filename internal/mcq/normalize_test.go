package mcq

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw string) map[string]any {
	t.Helper()
	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))
	return payload
}

func TestNormalize_SingleQuestionPayload(t *testing.T) {
	payload := decode(t, `{"question": "Q", "options": ["A", "B"], "correct_index": 0}`)

	questions := Normalize(payload)
	require.Len(t, questions, 1)

	q := questions[0]
	require.False(t, q.Invalid)
	require.Equal(t, "Q", q.Text)
	require.Equal(t, []string{"A", "B"}, q.Options)
	require.Equal(t, []int{0}, q.CorrectIndices)
	require.False(t, q.MultiSelect)
}

func TestNormalize_MultiQuestionPayload(t *testing.T) {
	payload := decode(t, `{"questions": [
		{"question": "Q1", "options": ["A", "B", "C"], "correct_indices": [0, 2]},
		{"question": "Q2", "options": ["A", "B"], "correct_index": 1, "explanation": "  because  "}
	]}`)

	questions := Normalize(payload)
	require.Len(t, questions, 2)

	require.Equal(t, []int{0, 2}, questions[0].CorrectIndices)
	require.True(t, questions[0].MultiSelect)

	require.Equal(t, []int{1}, questions[1].CorrectIndices)
	require.False(t, questions[1].MultiSelect)
	require.Equal(t, "because", questions[1].Explanation)
}

func TestNormalize_UnrecognizedPayload(t *testing.T) {
	require.Empty(t, Normalize(decode(t, `{"title": "not a quiz"}`)))
	require.Empty(t, Normalize(decode(t, `{"questions": "not a list"}`)))
}

func TestNormalize_InvalidRecordsKeptWithWarnings(t *testing.T) {
	payload := decode(t, `{"questions": [
		{"question": "Only one option", "options": ["A"], "correct_index": 0},
		{"question": "   ", "options": ["A", "B"]},
		{"question": "Fine", "options": ["A", "B"], "correct_index": 1},
		"not even an object"
	]}`)

	questions := Normalize(payload)
	require.Len(t, questions, 4)

	require.True(t, questions[0].Invalid)
	require.Contains(t, questions[0].InvalidReason, "at least 2 options")

	require.True(t, questions[1].Invalid)
	require.Contains(t, questions[1].InvalidReason, "empty")

	require.False(t, questions[2].Invalid)
	require.Equal(t, []int{1}, questions[2].CorrectIndices)

	require.True(t, questions[3].Invalid)
}

func TestNormalizeAnswerKey(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		optionCount int
		want        []int
	}{
		{name: "bare integer", raw: `1`, optionCount: 4, want: []int{1}},
		{name: "numeric string", raw: `"2"`, optionCount: 4, want: []int{2}},
		{name: "list of integers", raw: `[0, 2]`, optionCount: 4, want: []int{0, 2}},
		{name: "list with numeric strings", raw: `[0, "3"]`, optionCount: 4, want: []int{0, 3}},
		{name: "list drops non-numeric entries", raw: `["0", "B", null, true]`, optionCount: 4, want: []int{0}},
		{name: "list drops non-integral numbers", raw: `[1.5, 2]`, optionCount: 4, want: []int{2}},
		{name: "out of range discarded", raw: `[1, 7, -1]`, optionCount: 4, want: []int{1}},
		{name: "duplicates collapsed and sorted", raw: `[2, 0, 2]`, optionCount: 4, want: []int{0, 2}},
		{name: "null", raw: `null`, optionCount: 4, want: []int{}},
		{name: "non numeric string", raw: `"B"`, optionCount: 4, want: []int{}},
		{name: "object", raw: `{"a": 1}`, optionCount: 4, want: []int{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var value any
			require.NoError(t, json.Unmarshal([]byte(tc.raw), &value))
			got := normalizeAnswerKey(value, tc.optionCount)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestNormalize_PluralKeyTakesPrecedence(t *testing.T) {
	payload := decode(t, `{"question": "Q", "options": ["A", "B", "C"], "correct_indices": [2], "correct_index": 0}`)
	questions := Normalize(payload)
	require.Len(t, questions, 1)
	require.Equal(t, []int{2}, questions[0].CorrectIndices)

	// Plural key present but null: singular is NOT consulted.
	payload = decode(t, `{"question": "Q", "options": ["A", "B"], "correct_indices": null, "correct_index": 0}`)
	questions = Normalize(payload)
	require.Len(t, questions, 1)
	require.Empty(t, questions[0].CorrectIndices)
}

func TestNormalize_NonStringOptionsKeepPositions(t *testing.T) {
	payload := decode(t, `{"question": "Q", "options": ["A", 42, "C"], "correct_index": 2}`)
	questions := Normalize(payload)
	require.Len(t, questions, 1)
	require.Equal(t, []string{"A", "42", "C"}, questions[0].Options)
	require.Equal(t, []int{2}, questions[0].CorrectIndices)
}
