package mcq

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrNoJSON is returned when no decodable JSON object can be recovered
// from the model output.
var ErrNoJSON = errors.New("no decodable JSON object in model output")

// ExtractObject recovers a JSON object from raw model output. The text
// may be bare JSON, or JSON wrapped in prose and markdown fences.
//
// A strict decode of the whole text is tried first. On failure, the
// span from the first '{' to the last '}' is decoded instead. If the
// text contains several JSON objects the greedy span may over-capture;
// that is an accepted limitation.
func ExtractObject(text string) (map[string]any, error) {
	var payload map[string]any
	if err := json.Unmarshal([]byte(text), &payload); err == nil && payload != nil {
		return payload, nil
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return nil, ErrNoJSON
	}

	payload = nil
	if err := json.Unmarshal([]byte(text[start:end+1]), &payload); err != nil || payload == nil {
		return nil, ErrNoJSON
	}
	return payload, nil
}
