package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mhoudet/snapqcm/internal/dto"
	"github.com/mhoudet/snapqcm/internal/mcq"
	"github.com/mhoudet/snapqcm/internal/service"
	"github.com/mhoudet/snapqcm/internal/store"
	"github.com/rs/zerolog/log"
)

type Controller struct {
	quizSvc service.QuizService
}

func NewController(quizSvc service.QuizService) *Controller {
	return &Controller{quizSvc: quizSvc}
}

func (ctrl *Controller) RegisterRoutes(router *gin.Engine) {
	apiV1 := router.Group("/api/v1")
	{
		sessions := apiV1.Group("/sessions")
		sessions.POST("", ctrl.CreateSessionHandler)
		sessions.DELETE("/:session_id", ctrl.DeleteSessionHandler)

		images := sessions.Group("/:session_id/images")
		images.POST("", ctrl.UploadImageHandler)
		images.GET("", ctrl.ListImagesHandler)
		images.DELETE("/:image_id", ctrl.RemoveImageHandler)
		images.PUT("/:image_id/select", ctrl.SelectImageHandler)

		quiz := images.Group("/:image_id/quiz")
		quiz.POST("", ctrl.GenerateQuizHandler)
		quiz.GET("", ctrl.GetQuizHandler)
		quiz.PUT("/questions/:index/selection", ctrl.SetSelectionHandler)
		quiz.POST("/questions/:index/check", ctrl.CheckAnswerHandler)
	}
}

// respondError maps the service and store error taxonomy to HTTP once,
// at this boundary. Nothing below it touches status codes.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrSessionNotFound),
		errors.Is(err, store.ErrImageNotFound),
		errors.Is(err, store.ErrNoQuiz):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, store.ErrUnsupportedImageType),
		errors.Is(err, store.ErrQuestionIndex),
		errors.Is(err, service.ErrInvalidQuestion),
		errors.Is(err, service.ErrSelectionMode):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrCredentialMissing):
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Message: "API credential missing. Set GEMINI_API_KEY in the environment or .env file.",
		})
	case errors.Is(err, service.ErrQuotaExceeded):
		ctx.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
			Message: "Gemini quota exceeded or not enabled. Check that the Generative Language API is enabled, the key is valid, and the project has an active quota.",
			Details: []string{err.Error()},
		})
	case errors.Is(err, mcq.ErrNoJSON):
		ctx.JSON(http.StatusBadGateway, dto.ErrorResponse{
			Message: "The model returned an invalid response. Retry with a clearer image.",
		})
	case errors.Is(err, service.ErrEmptyQuestionSet):
		ctx.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Message: "No question detected. Retry with a clearer image.",
		})
	default:
		log.Error().Err(err).Msg("Unhandled service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error", Details: []string{err.Error()}})
	}
}

// CreateSessionHandler godoc
// @Summary Create an interactive session
// @Description Opens a new session. All uploaded images and generated quizzes live inside a session and are discarded with it.
// @Tags Sessions
// @Produce json
// @Success 201 {object} dto.SessionResponse
// @Router /sessions [post]
func (ctrl *Controller) CreateSessionHandler(ctx *gin.Context) {
	ctx.JSON(http.StatusCreated, ctrl.quizSvc.CreateSession())
}

// DeleteSessionHandler godoc
// @Summary End an interactive session
// @Description Discards the session and everything stored in it.
// @Tags Sessions
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 204 "Session deleted"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{session_id} [delete]
func (ctrl *Controller) DeleteSessionHandler(ctx *gin.Context) {
	if err := ctrl.quizSvc.DeleteSession(ctx.Param("session_id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
