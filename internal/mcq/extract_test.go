package mcq

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractObject(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
		check   func(t *testing.T, payload map[string]any)
	}{
		{
			name: "bare JSON object",
			text: `{"question": "Q?", "options": ["A", "B"]}`,
			check: func(t *testing.T, payload map[string]any) {
				require.Equal(t, "Q?", payload["question"])
			},
		},
		{
			name: "object inside markdown fences",
			text: "Here is the quiz:\n```json\n{\"question\": \"Q?\"}\n```\nHope it helps!",
			check: func(t *testing.T, payload map[string]any) {
				require.Equal(t, "Q?", payload["question"])
			},
		},
		{
			name: "object with surrounding prose and newlines",
			text: "Sure!\n{\n  \"questions\": [\n    {\"question\": \"Q1\"}\n  ]\n}\nanything else?",
			check: func(t *testing.T, payload map[string]any) {
				require.Contains(t, payload, "questions")
			},
		},
		{
			name:    "no braces at all",
			text:    "I could not read the image, sorry.",
			wantErr: true,
		},
		{
			name:    "braces but not JSON",
			text:    "f(x) = {x | x > 0}",
			wantErr: true,
		},
		{
			name:    "empty input",
			text:    "",
			wantErr: true,
		},
		{
			name:    "JSON null",
			text:    "null",
			wantErr: true,
		},
		{
			name:    "JSON array is not an object",
			text:    `[1, 2, 3]`,
			wantErr: true,
		},
		{
			name:    "truncated object",
			text:    `{"question": "Q?", "options": ["A",`,
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			payload, err := ExtractObject(tc.text)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrNoJSON)
				require.Nil(t, payload)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, payload)
			if tc.check != nil {
				tc.check(t, payload)
			}
		})
	}
}

func TestExtractObject_GreedySpanOverCapture(t *testing.T) {
	// Two adjacent objects: the greedy span covers both and fails to
	// decode. Accepted limitation, must report failure, not panic.
	_, err := ExtractObject(`{"a": 1} {"b": 2}`)
	require.ErrorIs(t, err, ErrNoJSON)
}
