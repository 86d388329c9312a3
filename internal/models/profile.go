package models

import "time"

// Profile mirrors the identity service's user record on our side. Its primary
// key is the user id issued by the identity provider, not a generated UUID,
// so it does not embed Base.
type Profile struct {
	ID                  string     `gorm:"type:uuid;primaryKey" json:"id"`
	OnboardingCompleted bool       `gorm:"default:false" json:"onboarding_completed"`
	OnboardingSkipped   bool       `gorm:"default:false" json:"onboarding_skipped"`
	PrivacyConsentAt    *time.Time `json:"privacy_consent_at,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// TableName keeps the table name aligned with the Supabase convention.
func (Profile) TableName() string { return "profiles" }
