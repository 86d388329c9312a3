package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"perawise/internal/catalog"
	apperrors "perawise/internal/errors"
	"perawise/internal/services"
)

// OnboardingHandler handles the questionnaire endpoints.
type OnboardingHandler struct {
	onboardingService services.OnboardingServicer
}

// NewOnboardingHandler creates a new OnboardingHandler.
func NewOnboardingHandler(onboardingService services.OnboardingServicer) *OnboardingHandler {
	return &OnboardingHandler{onboardingService: onboardingService}
}

// SubmitAnswerRequest represents the payload for answering a question.
type SubmitAnswerRequest struct {
	QuestionID    string          `json:"question_id" binding:"required,question_id"`
	ResponseValue json.RawMessage `json:"response_value" binding:"required"`
}

// AnswerResponse reports progress after an answer is saved.
type AnswerResponse struct {
	Success              bool    `json:"success"`
	CompletionPercentage int     `json:"completion_percentage"`
	NextQuestionID       *string `json:"next_question_id"`
}

// QuestionsResponse lists the catalog with the user's progress.
type QuestionsResponse struct {
	Questions            []catalog.Question `json:"questions"`
	AnsweredCount        int64              `json:"answered_count"`
	TotalCount           int                `json:"total_count"`
	CompletionPercentage int                `json:"completion_percentage"`
}

// SubmitAnswer saves or overwrites the user's answer to one question
// @Summary     Submit an onboarding answer
// @Description Save the authenticated user's answer to a catalog question
// @Tags        onboarding
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SubmitAnswerRequest true "Answer payload"
// @Success     200 {object} AnswerResponse "Answer saved"
// @Failure     400 {object} ErrorResponse "Unknown question or missing value"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /onboarding/answer [post]
func (h *OnboardingHandler) SubmitAnswer(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "question_id and response_value are required"))
		return
	}
	if bytes.Equal(bytes.TrimSpace(req.ResponseValue), []byte("null")) {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "response_value is required"))
		return
	}

	result, err := h.onboardingService.SaveAnswer(userID, req.QuestionID, req.ResponseValue)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, AnswerResponse{
		Success:              true,
		CompletionPercentage: result.CompletionPercentage,
		NextQuestionID:       result.NextQuestionID,
	})
}

// Complete marks the questionnaire as finished
// @Summary     Complete onboarding
// @Tags        onboarding
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} MessageResponse "Onboarding completed"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /onboarding/complete [post]
func (h *OnboardingHandler) Complete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.onboardingService.Complete(userID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Onboarding completed successfully"})
}

// Skip marks the questionnaire as skipped
// @Summary     Skip onboarding
// @Tags        onboarding
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} MessageResponse "Onboarding skipped"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /onboarding/skip [post]
func (h *OnboardingHandler) Skip(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.onboardingService.Skip(userID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Onboarding skipped successfully"})
}

// Reset clears the questionnaire state and deletes saved answers
// @Summary     Reset onboarding
// @Tags        onboarding
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} MessageResponse "Onboarding reset"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /onboarding/reset [post]
func (h *OnboardingHandler) Reset(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.onboardingService.Reset(userID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Onboarding reset successfully"})
}

// PrivacyConsent records the user's privacy consent timestamp
// @Summary     Record privacy consent
// @Tags        onboarding
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} MessageResponse "Consent recorded"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /onboarding/privacy-consent [post]
func (h *OnboardingHandler) PrivacyConsent(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.onboardingService.RecordPrivacyConsent(userID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Status reports the user's questionnaire progress
// @Summary     Get onboarding status
// @Tags        onboarding
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.OnboardingStatus "Current status"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /onboarding/status [get]
func (h *OnboardingHandler) Status(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	status, err := h.onboardingService.Status(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

// Questions returns the catalog together with the user's progress
// @Summary     List onboarding questions
// @Tags        onboarding
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} QuestionsResponse "Catalog and progress"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /onboarding/questions [get]
func (h *OnboardingHandler) Questions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	answered, err := h.onboardingService.AnsweredCount(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	total := catalog.TotalQuestions()
	percentage := 0
	if total > 0 {
		percentage = int(float64(answered)/float64(total)*100 + 0.5)
	}

	c.JSON(http.StatusOK, QuestionsResponse{
		Questions:            catalog.Questions(),
		AnsweredCount:        answered,
		TotalCount:           total,
		CompletionPercentage: percentage,
	})
}
