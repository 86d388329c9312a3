package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"perawise/internal/analysis"
	apperrors "perawise/internal/errors"
	"perawise/internal/models"
)

// profileService handles the derived personality profile.
type profileService struct {
	db *gorm.DB
}

// NewProfileService creates a new ProfileServicer.
func NewProfileService(db *gorm.DB) ProfileServicer {
	return &profileService{db: db}
}

// GetProfile fetches the user's onboarding profile.
func (s *profileService) GetProfile(userID string) (*models.OnboardingProfile, error) {
	var profile models.OnboardingProfile
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &profile, nil
}

// SaveGeneratedProfile stores a generated personality profile, replacing the
// user's existing one if present.
func (s *profileService) SaveGeneratedProfile(userID string, draft analysis.ProfileDraft) (*models.OnboardingProfile, error) {
	now := time.Now().UTC()

	var profile models.OnboardingProfile
	err := s.db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	profile.UserID = userID
	profile.CompletionPercentage = draft.CompletionPercentage
	profile.IsCompleted = draft.IsCompleted
	profile.PersonalityType = draft.PersonalityType
	profile.ProfileSummary = draft.ProfileSummary
	profile.Strengths = draft.Strengths
	profile.GrowthAreas = draft.GrowthAreas
	profile.Recommendations = draft.Recommendations
	profile.MoneyMindset = draft.MoneyMindset
	profile.GeneratedAt = &now

	if err := s.db.Save(&profile).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &profile, nil
}

// Export returns every onboarding record we hold for the user.
func (s *profileService) Export(userID string) (*ProfileExport, error) {
	var responses []models.OnboardingResponse
	err := s.db.Where("user_id = ?", userID).
		Order("created_at").
		Find(&responses).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	export := &ProfileExport{
		Responses:  responses,
		ExportedAt: time.Now().UTC(),
	}

	var profile models.OnboardingProfile
	err = s.db.Where("user_id = ?", userID).First(&profile).Error
	switch {
	case err == nil:
		export.Profile = &profile
	case errors.Is(err, gorm.ErrRecordNotFound):
		// Profile is optional in the export.
	default:
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return export, nil
}

// DeleteData erases the user's responses and onboarding profile and resets
// the profile flags. Deletes are hard deletes: this is privacy erasure, not
// archival.
func (s *profileService) DeleteData(userID string) error {
	err := s.db.Unscoped().
		Where("user_id = ?", userID).
		Delete(&models.OnboardingResponse{}).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	err = s.db.Unscoped().
		Where("user_id = ?", userID).
		Delete(&models.OnboardingProfile{}).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	err = s.db.Model(&models.Profile{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"onboarding_completed": false,
			"onboarding_skipped":   false,
		}).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
