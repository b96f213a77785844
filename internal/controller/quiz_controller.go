package controller

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mhoudet/snapqcm/internal/dto"
	"github.com/rs/zerolog/log"
)

// maxImageSize caps uploads at 10 MiB, comfortably above what a photo
// of a printed question needs.
const maxImageSize = 10 << 20

// UploadImageHandler godoc
// @Summary Upload a question image
// @Description Uploads a PNG or JPEG image of a multiple-choice question. Re-uploading byte-identical content reuses the existing entry.
// @Tags Images
// @Accept multipart/form-data
// @Produce json
// @Param session_id path string true "Session ID"
// @Param image formData file true "PNG or JPEG image"
// @Success 201 {object} dto.ImageSummary
// @Failure 400 {object} dto.ErrorResponse "Missing file or unsupported image type"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{session_id}/images [post]
func (ctrl *Controller) UploadImageHandler(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Missing 'image' form file", Details: []string{err.Error()}})
		return
	}
	if fileHeader.Size > maxImageSize {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Image is too large (max 10 MiB)"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Could not open uploaded file", Details: []string{err.Error()}})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Could not read uploaded file", Details: []string{err.Error()}})
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}

	summary, err := ctrl.quizSvc.UploadImage(ctx.Param("session_id"), fileHeader.Filename, mimeType, data)
	if err != nil {
		respondError(ctx, err)
		return
	}
	status := http.StatusCreated
	if summary.Duplicate {
		status = http.StatusOK
	}
	ctx.JSON(status, summary)
}

// ListImagesHandler godoc
// @Summary List uploaded images
// @Tags Images
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {array} dto.ImageSummary
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{session_id}/images [get]
func (ctrl *Controller) ListImagesHandler(ctx *gin.Context) {
	summaries, err := ctrl.quizSvc.ListImages(ctx.Param("session_id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, summaries)
}

// RemoveImageHandler godoc
// @Summary Remove an uploaded image
// @Description Deletes the image and its quiz. If it was the selected image, selection falls back to the first remaining image.
// @Tags Images
// @Produce json
// @Param session_id path string true "Session ID"
// @Param image_id path string true "Image ID"
// @Success 204 "Image removed"
// @Failure 404 {object} dto.ErrorResponse "Session or image not found"
// @Router /sessions/{session_id}/images/{image_id} [delete]
func (ctrl *Controller) RemoveImageHandler(ctx *gin.Context) {
	if err := ctrl.quizSvc.RemoveImage(ctx.Param("session_id"), ctx.Param("image_id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// SelectImageHandler godoc
// @Summary Select the active image
// @Tags Images
// @Produce json
// @Param session_id path string true "Session ID"
// @Param image_id path string true "Image ID"
// @Success 204 "Image selected"
// @Failure 404 {object} dto.ErrorResponse "Session or image not found"
// @Router /sessions/{session_id}/images/{image_id}/select [put]
func (ctrl *Controller) SelectImageHandler(ctx *gin.Context) {
	if err := ctrl.quizSvc.SelectImage(ctx.Param("session_id"), ctx.Param("image_id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// GenerateQuizHandler godoc
// @Summary Generate (or regenerate) a quiz from an image
// @Description Sends the image to the vision model and stores the normalized question set, replacing any prior set for this image. Invalid records are reported as warnings, not dropped.
// @Tags Quiz
// @Produce json
// @Param session_id path string true "Session ID"
// @Param image_id path string true "Image ID"
// @Success 200 {object} dto.QuizResponse
// @Failure 404 {object} dto.ErrorResponse "Session or image not found"
// @Failure 422 {object} dto.ErrorResponse "No question detected"
// @Failure 429 {object} dto.ErrorResponse "Quota or rate limit exceeded"
// @Failure 502 {object} dto.ErrorResponse "Model returned no parseable JSON"
// @Failure 503 {object} dto.ErrorResponse "API credential missing"
// @Router /sessions/{session_id}/images/{image_id}/quiz [post]
func (ctrl *Controller) GenerateQuizHandler(ctx *gin.Context) {
	resp, err := ctrl.quizSvc.GenerateQuiz(ctx.Request.Context(), ctx.Param("session_id"), ctx.Param("image_id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	log.Info().Str("imageID", resp.ImageID).Int("questions", len(resp.Questions)).Msg("GenerateQuizHandler: quiz ready")
	ctx.JSON(http.StatusOK, resp)
}

// GetQuizHandler godoc
// @Summary Get the current quiz for an image
// @Tags Quiz
// @Produce json
// @Param session_id path string true "Session ID"
// @Param image_id path string true "Image ID"
// @Success 200 {object} dto.QuizResponse
// @Failure 404 {object} dto.ErrorResponse "Session, image or quiz not found"
// @Router /sessions/{session_id}/images/{image_id}/quiz [get]
func (ctrl *Controller) GetQuizHandler(ctx *gin.Context) {
	resp, err := ctrl.quizSvc.GetQuiz(ctx.Param("session_id"), ctx.Param("image_id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// SetSelectionHandler godoc
// @Summary Record the user's answer selection for a question
// @Description Stores the selected option labels. Single-select questions accept exactly one label.
// @Tags Quiz
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param image_id path string true "Image ID"
// @Param index path int true "Question index (0-based)"
// @Param selection body dto.SelectionRequest true "Selected option labels"
// @Success 200 {object} dto.QuestionView
// @Failure 400 {object} dto.ErrorResponse "Bad index, invalid question, or selection mode mismatch"
// @Failure 404 {object} dto.ErrorResponse "Session, image or quiz not found"
// @Router /sessions/{session_id}/images/{image_id}/quiz/questions/{index}/selection [put]
func (ctrl *Controller) SetSelectionHandler(ctx *gin.Context) {
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid question index"})
		return
	}
	var req dto.SelectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	view, err := ctrl.quizSvc.SetSelection(ctx.Param("session_id"), ctx.Param("image_id"), index, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// CheckAnswerHandler godoc
// @Summary Check the user's answer for a question
// @Description Grades the stored selection against the canonical answer set. When the model never supplied a usable answer, answer_known is false and the correct answer should be rendered as unknown.
// @Tags Quiz
// @Produce json
// @Param session_id path string true "Session ID"
// @Param image_id path string true "Image ID"
// @Param index path int true "Question index (0-based)"
// @Success 200 {object} dto.CheckResponse
// @Failure 400 {object} dto.ErrorResponse "Bad index or invalid question"
// @Failure 404 {object} dto.ErrorResponse "Session, image or quiz not found"
// @Router /sessions/{session_id}/images/{image_id}/quiz/questions/{index}/check [post]
func (ctrl *Controller) CheckAnswerHandler(ctx *gin.Context) {
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid question index"})
		return
	}
	resp, err := ctrl.quizSvc.CheckAnswer(ctx.Param("session_id"), ctx.Param("image_id"), index)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
