package store

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mhoudet/snapqcm/internal/model"
)

var (
	ErrSessionNotFound      = errors.New("session not found")
	ErrImageNotFound        = errors.New("image not found in session")
	ErrUnsupportedImageType = errors.New("unsupported image type, expected image/png or image/jpeg")
	ErrNoQuiz               = errors.New("no quiz has been generated for this image")
	ErrQuestionIndex        = errors.New("question index out of range")
)

// SessionStore holds all interactive sessions. Everything in it is
// process-local; nothing survives a restart.
type SessionStore interface {
	Create() *Session
	Get(id string) (*Session, error)
	Delete(id string) error
}

type sessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewSessionStore() SessionStore {
	return &sessionStore{sessions: make(map[string]*Session)}
}

func (s *sessionStore) Create() *Session {
	sess := &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
	}
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

func (s *sessionStore) Get(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (s *sessionStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

// Session maps image identifiers to uploaded images plus their quiz
// state. A single mutex serializes all writes within one session, so a
// regenerate replaces the prior question set atomically even under
// concurrent requests.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu         sync.RWMutex
	images     []*model.UploadedImage // insertion order
	selectedID string
}

var supportedMIMETypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
}

// ImageID derives the content identifier for a byte buffer. Identical
// bytes always produce the same identifier.
func ImageID(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// AddImage registers an uploaded image. Re-adding byte-identical
// content is a no-op returning the existing entry and created=false.
// The first image added becomes the selected image.
func (s *Session) AddImage(name, mimeType string, data []byte) (img *model.UploadedImage, created bool, err error) {
	if !supportedMIMETypes[mimeType] {
		return nil, false, ErrUnsupportedImageType
	}
	id := ImageID(data)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.images {
		if existing.ID == id {
			return existing, false, nil
		}
	}
	img = &model.UploadedImage{
		ID:         id,
		Name:       name,
		MIMEType:   mimeType,
		Size:       len(data),
		UploadedAt: time.Now(),
		Bytes:      data,
	}
	s.images = append(s.images, img)
	if s.selectedID == "" {
		s.selectedID = id
	}
	return img, true, nil
}

// Images returns the session's images in upload order.
func (s *Session) Images() []*model.UploadedImage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.UploadedImage, len(s.images))
	copy(out, s.images)
	return out
}

func (s *Session) Image(id string) (*model.UploadedImage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.imageLocked(id)
}

func (s *Session) imageLocked(id string) (*model.UploadedImage, error) {
	for _, img := range s.images {
		if img.ID == id {
			return img, nil
		}
	}
	return nil, ErrImageNotFound
}

// RemoveImage deletes an image and its quiz. When the removed image was
// the selected one, selection falls back to the first remaining image,
// or to nothing when the session is empty.
func (s *Session) RemoveImage(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, img := range s.images {
		if img.ID != id {
			continue
		}
		s.images = append(s.images[:i], s.images[i+1:]...)
		if s.selectedID == id {
			s.selectedID = ""
			if len(s.images) > 0 {
				s.selectedID = s.images[0].ID
			}
		}
		return nil
	}
	return ErrImageNotFound
}

func (s *Session) Select(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.imageLocked(id); err != nil {
		return err
	}
	s.selectedID = id
	return nil
}

func (s *Session) SelectedID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedID
}

// SetQuiz attaches a question set to an image, replacing any prior set.
func (s *Session) SetQuiz(imageID string, set *model.QuestionSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	img, err := s.imageLocked(imageID)
	if err != nil {
		return err
	}
	img.Quiz = set
	return nil
}

// Quiz returns a snapshot of the image's question set. Callers walk it
// without the session lock, so the questions are copied rather than
// aliased to the stored set that SetSelection and MarkChecked mutate.
func (s *Session) Quiz(imageID string) (*model.QuestionSet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	img, err := s.imageLocked(imageID)
	if err != nil {
		return nil, err
	}
	if img.Quiz == nil {
		return nil, ErrNoQuiz
	}
	snapshot := *img.Quiz
	snapshot.Questions = make([]model.Question, len(img.Quiz.Questions))
	copy(snapshot.Questions, img.Quiz.Questions)
	return &snapshot, nil
}

// HasQuiz reports whether a question set exists for the image. The
// Quiz field is the only mutable part of an UploadedImage, so reads of
// it must go through the lock.
func (s *Session) HasQuiz(imageID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	img, err := s.imageLocked(imageID)
	if err != nil {
		return false
	}
	return img.Quiz != nil
}

// Question returns a copy of one question; mutations go through
// SetSelection and MarkChecked so the answer key itself stays
// untouched by grading.
func (s *Session) Question(imageID string, index int) (model.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q, err := s.questionLocked(imageID, index)
	if err != nil {
		return model.Question{}, err
	}
	return *q, nil
}

func (s *Session) SetSelection(imageID string, index int, selection []string) (model.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, err := s.questionLocked(imageID, index)
	if err != nil {
		return model.Question{}, err
	}
	q.Selection = selection
	return *q, nil
}

func (s *Session) MarkChecked(imageID string, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, err := s.questionLocked(imageID, index)
	if err != nil {
		return err
	}
	q.Checked = true
	return nil
}

func (s *Session) questionLocked(imageID string, index int) (*model.Question, error) {
	img, err := s.imageLocked(imageID)
	if err != nil {
		return nil, err
	}
	if img.Quiz == nil {
		return nil, ErrNoQuiz
	}
	if index < 0 || index >= len(img.Quiz.Questions) {
		return nil, ErrQuestionIndex
	}
	return &img.Quiz.Questions[index], nil
}
