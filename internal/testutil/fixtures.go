package testutil

import (
	"encoding/json"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"perawise/internal/catalog"
	"perawise/internal/models"
	"perawise/internal/uuid"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// NewTestUserID returns a fresh identity-provider-style user ID.
func NewTestUserID() string {
	return uuid.New()
}

// CreateTestProfile creates a profile row for the given user.
func CreateTestProfile(t *testing.T, db *gorm.DB, userID string) *models.Profile {
	t.Helper()

	profile := &models.Profile{ID: userID}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("failed to create test profile: %v", err)
	}
	return profile
}

// CreateTestResponse saves an answer to the given catalog question.
func CreateTestResponse(t *testing.T, db *gorm.DB, userID, questionID string, value interface{}) *models.OnboardingResponse {
	t.Helper()

	question, ok := catalog.QuestionByID(questionID)
	if !ok {
		t.Fatalf("unknown catalog question %q", questionID)
	}

	raw, err := json.Marshal(value)
	if err != nil {
		t.Fatalf("failed to marshal response value: %v", err)
	}

	response := &models.OnboardingResponse{
		UserID:        userID,
		QuestionID:    questionID,
		QuestionText:  question.Text,
		ResponseType:  question.Type,
		ResponseValue: raw,
	}
	if err := db.Create(response).Error; err != nil {
		t.Fatalf("failed to create test response: %v", err)
	}
	return response
}

// CreateTestOnboardingProfile creates a generated personality profile.
func CreateTestOnboardingProfile(t *testing.T, db *gorm.DB, userID string) *models.OnboardingProfile {
	t.Helper()

	now := time.Now().UTC()
	profile := &models.OnboardingProfile{
		UserID:               userID,
		CompletionPercentage: 100,
		IsCompleted:          true,
		PersonalityType:      "The Balanced Builder",
		ProfileSummary:       fmt.Sprintf("Test summary %d", nextID()),
		Strengths:            []string{"Open to learning"},
		GrowthAreas:          []string{"Defining clear goals"},
		Recommendations:      []string{"Track your expenses for one month"},
		MoneyMindset:         "Growth-oriented",
		GeneratedAt:          &now,
	}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("failed to create test onboarding profile: %v", err)
	}
	return profile
}

// CreateTestContentItem creates a curated article in the given category.
func CreateTestContentItem(t *testing.T, db *gorm.DB, category string) *models.ContentItem {
	t.Helper()

	n := nextID()
	item := &models.ContentItem{
		Title:       fmt.Sprintf("Test Article %d", n),
		Description: fmt.Sprintf("Description %d", n),
		Body:        "Body text.",
		Category:    category,
		Tags:        []string{"test"},
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("failed to create test content item: %v", err)
	}
	return item
}
