package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/mhoudet/snapqcm/internal/dto"
	"github.com/mhoudet/snapqcm/internal/mcq"
	"github.com/mhoudet/snapqcm/internal/model"
	"github.com/mhoudet/snapqcm/internal/store"
	"github.com/rs/zerolog/log"
)

// QuizService orchestrates the upload → generate → answer → check flow
// on top of the session store and the Gemini collaborator.
type QuizService interface {
	CreateSession() *dto.SessionResponse
	DeleteSession(sessionID string) error

	UploadImage(sessionID, name, mimeType string, data []byte) (*dto.ImageSummary, error)
	ListImages(sessionID string) ([]dto.ImageSummary, error)
	RemoveImage(sessionID, imageID string) error
	SelectImage(sessionID, imageID string) error

	GenerateQuiz(ctx context.Context, sessionID, imageID string) (*dto.QuizResponse, error)
	GetQuiz(sessionID, imageID string) (*dto.QuizResponse, error)
	SetSelection(sessionID, imageID string, index int, req dto.SelectionRequest) (*dto.QuestionView, error)
	CheckAnswer(sessionID, imageID string, index int) (*dto.CheckResponse, error)
}

type quizService struct {
	sessions store.SessionStore
	gemini   GeminiQuizService
}

func NewQuizService(sessions store.SessionStore, gemini GeminiQuizService) QuizService {
	return &quizService{sessions: sessions, gemini: gemini}
}

func (s *quizService) CreateSession() *dto.SessionResponse {
	sess := s.sessions.Create()
	log.Info().Str("sessionID", sess.ID).Msg("CreateSession: new interactive session")
	return &dto.SessionResponse{SessionID: sess.ID, CreatedAt: sess.CreatedAt}
}

func (s *quizService) DeleteSession(sessionID string) error {
	return s.sessions.Delete(sessionID)
}

func (s *quizService) UploadImage(sessionID, name, mimeType string, data []byte) (*dto.ImageSummary, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	img, created, err := sess.AddImage(name, mimeType, data)
	if err != nil {
		return nil, err
	}
	if !created {
		log.Info().Str("imageID", img.ID).Msg("UploadImage: byte-identical content re-uploaded, reusing existing entry")
	}
	summary := s.imageSummary(sess, img)
	summary.Duplicate = !created
	return summary, nil
}

func (s *quizService) ListImages(sessionID string) ([]dto.ImageSummary, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	images := sess.Images()
	summaries := make([]dto.ImageSummary, 0, len(images))
	for _, img := range images {
		summaries = append(summaries, *s.imageSummary(sess, img))
	}
	return summaries, nil
}

func (s *quizService) RemoveImage(sessionID, imageID string) error {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return err
	}
	return sess.RemoveImage(imageID)
}

func (s *quizService) SelectImage(sessionID, imageID string) error {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return err
	}
	return sess.Select(imageID)
}

// GenerateQuiz runs the full pipeline: model call, JSON extraction,
// normalization, then an atomic replace of the image's question set.
func (s *quizService) GenerateQuiz(ctx context.Context, sessionID, imageID string) (*dto.QuizResponse, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	img, err := sess.Image(imageID)
	if err != nil {
		return nil, err
	}

	raw, err := s.gemini.GenerateRaw(ctx, img.Bytes, img.MIMEType)
	if err != nil {
		return nil, err
	}

	payload, err := mcq.ExtractObject(raw)
	if err != nil {
		log.Warn().Str("imageID", imageID).Str("raw", truncate(raw, 400)).Msg("GenerateQuiz: model output contained no decodable JSON")
		return nil, fmt.Errorf("extracting quiz JSON: %w", err)
	}

	questions := mcq.Normalize(payload)
	if len(questions) == 0 {
		return nil, ErrEmptyQuestionSet
	}

	set := &model.QuestionSet{
		ImageID:     imageID,
		Questions:   questions,
		GeneratedAt: time.Now(),
	}
	// Build the response before publishing the set: once SetQuiz has
	// run, concurrent requests may mutate the stored questions.
	resp := quizResponse(set)
	if err := sess.SetQuiz(imageID, set); err != nil {
		return nil, err
	}
	log.Info().Str("imageID", imageID).Int("questions", len(questions)).Msg("GenerateQuiz: question set stored")
	return resp, nil
}

func (s *quizService) GetQuiz(sessionID, imageID string) (*dto.QuizResponse, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	set, err := sess.Quiz(imageID)
	if err != nil {
		return nil, err
	}
	return quizResponse(set), nil
}

func (s *quizService) SetSelection(sessionID, imageID string, index int, req dto.SelectionRequest) (*dto.QuestionView, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	q, err := sess.Question(imageID, index)
	if err != nil {
		return nil, err
	}
	if q.Invalid {
		return nil, ErrInvalidQuestion
	}
	if !q.MultiSelect && len(req.Selected) > 1 {
		return nil, fmt.Errorf("%w: single-select question accepts one option", ErrSelectionMode)
	}

	q, err = sess.SetSelection(imageID, index, req.Selected)
	if err != nil {
		return nil, err
	}
	view := questionView(q, index)
	return &view, nil
}

// CheckAnswer grades the question's stored selection. The checked flag
// is only set once a real verdict is produced; asking to check with no
// selection leaves the question untouched.
func (s *quizService) CheckAnswer(sessionID, imageID string, index int) (*dto.CheckResponse, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	q, err := sess.Question(imageID, index)
	if err != nil {
		return nil, err
	}
	if q.Invalid {
		return nil, ErrInvalidQuestion
	}

	result := mcq.Grade(q, q.Selection)
	if result.Verdict != model.VerdictNoSelection {
		if err := sess.MarkChecked(imageID, index); err != nil {
			return nil, err
		}
	}

	return &dto.CheckResponse{
		Index:          index,
		Verdict:        string(result.Verdict),
		AnswerKnown:    result.AnswerKnown,
		CorrectOptions: result.CorrectOptions,
		Explanation:    result.Explanation,
	}, nil
}

func (s *quizService) imageSummary(sess *store.Session, img *model.UploadedImage) *dto.ImageSummary {
	var summary dto.ImageSummary
	copier.Copy(&summary, img)
	summary.Selected = sess.SelectedID() == img.ID
	summary.HasQuiz = sess.HasQuiz(img.ID)
	return &summary
}

func quizResponse(set *model.QuestionSet) *dto.QuizResponse {
	resp := &dto.QuizResponse{
		ImageID:     set.ImageID,
		GeneratedAt: set.GeneratedAt,
		Questions:   make([]dto.QuestionView, 0, len(set.Questions)),
	}
	for i, q := range set.Questions {
		resp.Questions = append(resp.Questions, questionView(q, i))
		if q.Invalid {
			resp.Warnings = append(resp.Warnings, fmt.Sprintf("question %d: %s", i+1, q.InvalidReason))
		}
	}
	return resp
}

func questionView(q model.Question, index int) dto.QuestionView {
	var view dto.QuestionView
	copier.Copy(&view, &q)
	view.Index = index
	return view
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
