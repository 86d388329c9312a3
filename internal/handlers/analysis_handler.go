package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"perawise/internal/analysis"
	apperrors "perawise/internal/errors"
	"perawise/internal/services"
)

// FundAnalyzer is the strategy behind POST /analyze-fund. The mock
// implementation runs the deterministic scorer; the placeholder returns 501
// until the real AI integration lands. The strategy is chosen once at
// startup, so the handler never branches on mode.
type FundAnalyzer interface {
	AnalyzeFund(fundName string) (analysis.FundAnalysis, error)
}

type mockFundAnalyzer struct {
	scorer *analysis.FundScorer
}

// NewMockFundAnalyzer wraps the mock fund scorer as a FundAnalyzer.
func NewMockFundAnalyzer(scorer *analysis.FundScorer) FundAnalyzer {
	return &mockFundAnalyzer{scorer: scorer}
}

func (a *mockFundAnalyzer) AnalyzeFund(fundName string) (analysis.FundAnalysis, error) {
	return a.scorer.Analyze(fundName), nil
}

type unavailableFundAnalyzer struct{}

// NewUnavailableFundAnalyzer returns the 501 placeholder strategy.
func NewUnavailableFundAnalyzer() FundAnalyzer {
	return unavailableFundAnalyzer{}
}

func (unavailableFundAnalyzer) AnalyzeFund(string) (analysis.FundAnalysis, error) {
	return analysis.FundAnalysis{}, apperrors.ErrAINotImplemented
}

// AnalysisHandler handles the mock analysis endpoints.
type AnalysisHandler struct {
	fundAnalyzer   FundAnalyzer
	profileService services.ProfileServicer
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(fundAnalyzer FundAnalyzer, profileService services.ProfileServicer) *AnalysisHandler {
	return &AnalysisHandler{fundAnalyzer: fundAnalyzer, profileService: profileService}
}

// AnalyzeUserRequest carries the quiz answers. Field names match the quiz
// form's wire format.
type AnalyzeUserRequest struct {
	Occupation      string  `json:"occupation" binding:"required,max=100"`
	MonthlyIncome   float64 `json:"monthlyIncome" binding:"min=0"`
	MonthlyExpenses float64 `json:"monthlyExpenses" binding:"min=0"`
	HasBankAccount  bool    `json:"hasBankAccount"`
	EssayResponse   string  `json:"essayResponse" binding:"max=2000"`
}

// AnalyzeFundRequest names the fund to assess.
type AnalyzeFundRequest struct {
	FundName string `json:"fundName" binding:"required,max=120"`
}

// AnalyzeProfileRequest carries the raw onboarding answers keyed by question id.
type AnalyzeProfileRequest struct {
	Responses map[string]interface{} `json:"responses" binding:"required"`
}

// AnalyzeUser runs the mock quiz analysis
// @Summary     Analyze quiz answers
// @Description Classify the quiz taker and produce 3-5 recommendations
// @Tags        analysis
// @Accept      json
// @Produce     json
// @Param       request body AnalyzeUserRequest true "Quiz answers"
// @Success     200 {object} analysis.QuizResult "Analysis result"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /analyze-user [post]
func (h *AnalysisHandler) AnalyzeUser(c *gin.Context) {
	var req AnalyzeUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result := analysis.AnalyzeQuiz(analysis.QuizAnswers{
		Occupation:      req.Occupation,
		MonthlyIncome:   req.MonthlyIncome,
		MonthlyExpenses: req.MonthlyExpenses,
		HasBankAccount:  req.HasBankAccount,
		EssayResponse:   req.EssayResponse,
	})

	c.JSON(http.StatusOK, result)
}

// AnalyzeFund runs the configured fund analysis strategy
// @Summary     Analyze a fund
// @Description Produce a mock fund assessment, or 501 where the real AI backend is expected
// @Tags        analysis
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body AnalyzeFundRequest true "Fund name"
// @Success     200 {object} analysis.FundAnalysis "Fund assessment"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     501 {object} ErrorResponse "AI integration not implemented"
// @Router      /analyze-fund [post]
func (h *AnalysisHandler) AnalyzeFund(c *gin.Context) {
	var req AnalyzeFundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "fundName is required"))
		return
	}

	result, err := h.fundAnalyzer.AnalyzeFund(req.FundName)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// AnalyzeProfile generates and stores the personality profile
// @Summary     Generate personality profile
// @Description Derive a financial personality profile from onboarding answers and persist it
// @Tags        analysis
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body AnalyzeProfileRequest true "Onboarding answers"
// @Success     200 {object} map[string]interface{} "Generated profile"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analyze-profile [post]
func (h *AnalysisHandler) AnalyzeProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AnalyzeProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "responses are required"))
		return
	}

	// Only free-text answers participate in keyword matching.
	responses := make(map[string]string, len(req.Responses))
	for id, value := range req.Responses {
		if s, ok := value.(string); ok {
			responses[id] = s
		}
	}

	draft := analysis.GenerateProfile(responses)
	profile, err := h.profileService.SaveGeneratedProfile(userID, draft)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}
