package models

import (
	"encoding/json"
	"time"
)

// ResponseType describes how an onboarding answer was captured.
type ResponseType string

const (
	ResponseTypeText       ResponseType = "text"
	ResponseTypeNumber     ResponseType = "number"
	ResponseTypeChoice     ResponseType = "choice"
	ResponseTypeScale1To5  ResponseType = "scale_1_5"
	ResponseTypeScale1To10 ResponseType = "scale_1_10"
)

// OnboardingResponse is a single user's answer to a single catalog question.
// The question text is denormalized so exports stay readable even if the
// catalog wording changes later. One row per (user, question); saving the
// same question again overwrites the previous answer.
type OnboardingResponse struct {
	Base
	UserID        string          `gorm:"type:uuid;not null;uniqueIndex:idx_response_user_question" json:"user_id"`
	QuestionID    string          `gorm:"not null;uniqueIndex:idx_response_user_question" json:"question_id"`
	QuestionText  string          `gorm:"not null" json:"question_text"`
	ResponseType  ResponseType    `gorm:"not null" json:"response_type"`
	ResponseValue json.RawMessage `gorm:"serializer:json" json:"response_value"`
}

// OnboardingProfile is the derived "financial personality" record, created or
// replaced when the questionnaire completes and recomputed after every
// answer save.
type OnboardingProfile struct {
	Base
	UserID               string     `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	CompletionPercentage int        `gorm:"default:0" json:"completion_percentage"`
	IsCompleted          bool       `gorm:"default:false" json:"is_completed"`
	PersonalityType      string     `json:"personality_type,omitempty"`
	ProfileSummary       string     `gorm:"type:text" json:"profile_summary,omitempty"`
	Strengths            []string   `gorm:"serializer:json" json:"strengths,omitempty"`
	GrowthAreas          []string   `gorm:"serializer:json" json:"growth_areas,omitempty"`
	Recommendations      []string   `gorm:"serializer:json" json:"recommendations,omitempty"`
	MoneyMindset         string     `gorm:"type:text" json:"money_mindset,omitempty"`
	GeneratedAt          *time.Time `json:"generated_at,omitempty"`
}
