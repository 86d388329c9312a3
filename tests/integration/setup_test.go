package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"perawise/internal/analysis"
	"perawise/internal/catalog"
	"perawise/internal/handlers"
	"perawise/internal/identity"
	"perawise/internal/logger"
	"perawise/internal/middleware"
	"perawise/internal/models"
	"perawise/internal/services"
	"perawise/internal/uuid"
	"perawise/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.Profile{},
		&models.OnboardingResponse{},
		&models.OnboardingProfile{},
		&models.ContentItem{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory
// SQLite, wired the way MOCK mode wires it: mock identity verifier and the
// mock fund analyzer.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	onboardingService := services.NewOnboardingService(db)
	profileService := services.NewProfileService(db)
	contentService := services.NewContentService(db)

	if err := contentService.EnsureSeeded(catalog.ContentSeed()); err != nil {
		t.Fatalf("failed to seed content: %v", err)
	}

	// Handlers
	onboardingHandler := handlers.NewOnboardingHandler(onboardingService)
	profileHandler := handlers.NewProfileHandler(profileService)
	analysisHandler := handlers.NewAnalysisHandler(
		handlers.NewMockFundAnalyzer(analysis.NewFundScorerWithSeed(1)), profileService)
	contentHandler := handlers.NewContentHandler(contentService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	v1.POST("/analyze-user", analysisHandler.AnalyzeUser)

	protected := v1.Group("/")
	protected.Use(middleware.AuthRequired(identity.NewMockVerifier()))

	onboarding := protected.Group("/onboarding")
	onboarding.POST("/answer", onboardingHandler.SubmitAnswer)
	onboarding.POST("/complete", onboardingHandler.Complete)
	onboarding.POST("/skip", onboardingHandler.Skip)
	onboarding.POST("/reset", onboardingHandler.Reset)
	onboarding.POST("/privacy-consent", onboardingHandler.PrivacyConsent)
	onboarding.GET("/status", onboardingHandler.Status)
	onboarding.GET("/questions", onboardingHandler.Questions)

	protected.GET("/profile", profileHandler.GetProfile)
	protected.DELETE("/profile", profileHandler.Delete)
	protected.GET("/profile/export", profileHandler.Export)

	protected.POST("/analyze-fund", analysisHandler.AnalyzeFund)
	protected.POST("/analyze-profile", analysisHandler.AnalyzeProfile)

	protected.GET("/content", contentHandler.ListContent)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// mockToken mints a MOCK-mode bearer token for a fresh user and returns the
// token together with the user id.
func mockToken(t *testing.T) (token, userID string) {
	t.Helper()
	userID = uuid.New()
	return fmt.Sprintf(`{"id":%q,"email":"user-%s@test.com"}`, userID, userID[:8]), userID
}

// answerQuestion submits one onboarding answer and fails the test on a
// non-200 response.
func (app *testApp) answerQuestion(t *testing.T, token, questionID, rawValue string) map[string]interface{} {
	t.Helper()
	body := fmt.Sprintf(`{"question_id":%q,"response_value":%s}`, questionID, rawValue)
	rec := app.request("POST", "/api/v1/onboarding/answer", body, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("answer %s failed: %d %s", questionID, rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)
}
