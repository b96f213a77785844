package store

import (
	"sync"
	"testing"
	"time"

	"github.com/mhoudet/snapqcm/internal/model"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	return NewSessionStore().Create()
}

func TestSessionStore_Lifecycle(t *testing.T) {
	s := NewSessionStore()

	sess := s.Create()
	require.NotEmpty(t, sess.ID)

	got, err := s.Get(sess.ID)
	require.NoError(t, err)
	require.Same(t, sess, got)

	require.NoError(t, s.Delete(sess.ID))
	_, err = s.Get(sess.ID)
	require.ErrorIs(t, err, ErrSessionNotFound)
	require.ErrorIs(t, s.Delete(sess.ID), ErrSessionNotFound)
}

func TestSession_AddImage_DeduplicatesIdenticalBytes(t *testing.T) {
	sess := newTestSession(t)

	img1, created, err := sess.AddImage("one.png", "image/png", []byte("same bytes"))
	require.NoError(t, err)
	require.True(t, created)

	// Same bytes under a different name resolve to the same entry.
	img2, created, err := sess.AddImage("two.png", "image/png", []byte("same bytes"))
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, img1.ID, img2.ID)
	require.Len(t, sess.Images(), 1)

	// Any byte change produces a distinct identifier.
	img3, created, err := sess.AddImage("three.png", "image/png", []byte("same bytes!"))
	require.NoError(t, err)
	require.True(t, created)
	require.NotEqual(t, img1.ID, img3.ID)
	require.Len(t, sess.Images(), 2)
}

func TestSession_AddImage_RejectsUnsupportedType(t *testing.T) {
	sess := newTestSession(t)
	_, _, err := sess.AddImage("doc.gif", "image/gif", []byte("gif"))
	require.ErrorIs(t, err, ErrUnsupportedImageType)
	_, _, err = sess.AddImage("doc.pdf", "application/pdf", []byte("pdf"))
	require.ErrorIs(t, err, ErrUnsupportedImageType)
}

func TestSession_SelectionFallbackOnRemove(t *testing.T) {
	sess := newTestSession(t)

	a, _, err := sess.AddImage("a.png", "image/png", []byte("a"))
	require.NoError(t, err)
	b, _, err := sess.AddImage("b.jpg", "image/jpeg", []byte("b"))
	require.NoError(t, err)

	// First upload is auto-selected.
	require.Equal(t, a.ID, sess.SelectedID())

	require.NoError(t, sess.Select(b.ID))
	require.Equal(t, b.ID, sess.SelectedID())

	// Removing the selected image falls back to the first remaining one.
	require.NoError(t, sess.RemoveImage(b.ID))
	require.Equal(t, a.ID, sess.SelectedID())

	// Removing the last image clears the selection.
	require.NoError(t, sess.RemoveImage(a.ID))
	require.Empty(t, sess.SelectedID())
	require.Empty(t, sess.Images())

	require.ErrorIs(t, sess.RemoveImage(a.ID), ErrImageNotFound)
	require.ErrorIs(t, sess.Select(a.ID), ErrImageNotFound)
}

func TestSession_RemovingUnselectedImageKeepsSelection(t *testing.T) {
	sess := newTestSession(t)

	a, _, err := sess.AddImage("a.png", "image/png", []byte("a"))
	require.NoError(t, err)
	b, _, err := sess.AddImage("b.png", "image/png", []byte("b"))
	require.NoError(t, err)

	require.NoError(t, sess.RemoveImage(b.ID))
	require.Equal(t, a.ID, sess.SelectedID())
}

func TestSession_QuizReplaceAndQuestionState(t *testing.T) {
	sess := newTestSession(t)
	img, _, err := sess.AddImage("a.png", "image/png", []byte("a"))
	require.NoError(t, err)

	_, err = sess.Quiz(img.ID)
	require.ErrorIs(t, err, ErrNoQuiz)

	first := &model.QuestionSet{
		ImageID:     img.ID,
		Questions:   []model.Question{{Text: "Q1", Options: []string{"A", "B"}, CorrectIndices: []int{0}}},
		GeneratedAt: time.Now(),
	}
	require.NoError(t, sess.SetQuiz(img.ID, first))

	q, err := sess.SetSelection(img.ID, 0, []string{"A"})
	require.NoError(t, err)
	require.Equal(t, []string{"A"}, q.Selection)
	require.NoError(t, sess.MarkChecked(img.ID, 0))

	q, err = sess.Question(img.ID, 0)
	require.NoError(t, err)
	require.True(t, q.Checked)

	// Regenerating replaces the set and drops prior interaction state.
	second := &model.QuestionSet{
		ImageID:     img.ID,
		Questions:   []model.Question{{Text: "Q2", Options: []string{"C", "D"}, CorrectIndices: []int{1}}},
		GeneratedAt: time.Now(),
	}
	require.NoError(t, sess.SetQuiz(img.ID, second))

	q, err = sess.Question(img.ID, 0)
	require.NoError(t, err)
	require.Equal(t, "Q2", q.Text)
	require.Empty(t, q.Selection)
	require.False(t, q.Checked)

	_, err = sess.Question(img.ID, 1)
	require.ErrorIs(t, err, ErrQuestionIndex)
	_, err = sess.Question(img.ID, -1)
	require.ErrorIs(t, err, ErrQuestionIndex)
	_, err = sess.Question("missing", 0)
	require.ErrorIs(t, err, ErrImageNotFound)
}

func TestSession_QuizSnapshotIsolatedFromLaterMutation(t *testing.T) {
	sess := newTestSession(t)
	img, _, err := sess.AddImage("a.png", "image/png", []byte("a"))
	require.NoError(t, err)

	set := &model.QuestionSet{
		ImageID:   img.ID,
		Questions: []model.Question{{Text: "Q", Options: []string{"A", "B"}, CorrectIndices: []int{0}}},
	}
	require.NoError(t, sess.SetQuiz(img.ID, set))

	snapshot, err := sess.Quiz(img.ID)
	require.NoError(t, err)

	_, err = sess.SetSelection(img.ID, 0, []string{"B"})
	require.NoError(t, err)
	require.NoError(t, sess.MarkChecked(img.ID, 0))

	// The snapshot keeps the state it was taken with.
	require.Empty(t, snapshot.Questions[0].Selection)
	require.False(t, snapshot.Questions[0].Checked)
}

// Exercises readers and writers on one session at the same time; run
// with -race this fails if any quiz-state access bypasses the lock.
func TestSession_ConcurrentQuizAccess(t *testing.T) {
	sess := newTestSession(t)
	img, _, err := sess.AddImage("a.png", "image/png", []byte("a"))
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			set := &model.QuestionSet{
				ImageID:   img.ID,
				Questions: []model.Question{{Text: "Q", Options: []string{"A", "B"}, CorrectIndices: []int{0}}},
			}
			if err := sess.SetQuiz(img.ID, set); err != nil {
				t.Errorf("SetQuiz: %v", err)
				return
			}
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			sess.HasQuiz(img.ID)
			if set, err := sess.Quiz(img.ID); err == nil {
				for _, q := range set.Questions {
					_ = q.Checked
				}
			}
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			if _, err := sess.SetSelection(img.ID, 0, []string{"A"}); err == nil {
				_ = sess.MarkChecked(img.ID, 0)
			}
		}
	}()
	wg.Wait()
}

func TestImageID_Deterministic(t *testing.T) {
	require.Equal(t, ImageID([]byte("x")), ImageID([]byte("x")))
	require.NotEqual(t, ImageID([]byte("x")), ImageID([]byte("y")))
	require.Len(t, ImageID([]byte("x")), 64)
}
