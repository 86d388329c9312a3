package services

import (
	"encoding/json"
	"time"

	"perawise/internal/analysis"
	"perawise/internal/models"
	"perawise/internal/pagination"
)

// AnswerResult reports the questionnaire position after saving an answer.
// NextQuestionID is nil once every catalog question has been answered.
type AnswerResult struct {
	CompletionPercentage int
	NextQuestionID       *string
}

// OnboardingStatus summarizes a user's questionnaire progress.
type OnboardingStatus struct {
	Completed            bool `json:"completed"`
	Skipped              bool `json:"skipped"`
	CompletionPercentage int  `json:"completion_percentage"`
	ProfileExists        bool `json:"profile_exists"`
}

// OnboardingServicer defines the contract for questionnaire business logic.
type OnboardingServicer interface {
	SaveAnswer(userID, questionID string, value json.RawMessage) (*AnswerResult, error)
	Complete(userID string) error
	Skip(userID string) error
	Reset(userID string) error
	RecordPrivacyConsent(userID string) error
	Status(userID string) (*OnboardingStatus, error)
	AnsweredCount(userID string) (int64, error)
}

// ProfileExport bundles everything we store about a user for data export.
type ProfileExport struct {
	Responses  []models.OnboardingResponse `json:"responses"`
	Profile    *models.OnboardingProfile   `json:"profile"`
	ExportedAt time.Time                   `json:"exported_at"`
}

// ProfileServicer defines the contract for the derived personality profile.
type ProfileServicer interface {
	GetProfile(userID string) (*models.OnboardingProfile, error)
	SaveGeneratedProfile(userID string, draft analysis.ProfileDraft) (*models.OnboardingProfile, error)
	Export(userID string) (*ProfileExport, error)
	DeleteData(userID string) error
}

// ContentServicer defines the contract for the curated content library.
type ContentServicer interface {
	ListContent(page pagination.PageRequest, category string) (*pagination.PageResponse[models.ContentItem], error)
	EnsureSeeded(items []models.ContentItem) error
}
