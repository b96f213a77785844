package model

import "time"

// UploadedImage holds one uploaded question image for the lifetime of
// its session. ID is the hex SHA-256 digest of Bytes, so re-uploading
// identical content always resolves to the same entry.
type UploadedImage struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	MIMEType   string    `json:"mime_type"`
	Size       int       `json:"size"`
	UploadedAt time.Time `json:"uploaded_at"`

	Bytes []byte `json:"-"`

	// Quiz is the question set generated from this image, nil until the
	// first successful generation. Regeneration replaces it wholesale.
	Quiz *QuestionSet `json:"-"`
}
