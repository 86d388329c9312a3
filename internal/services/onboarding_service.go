package services

import (
	"encoding/json"
	"errors"
	"math"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"perawise/internal/catalog"
	apperrors "perawise/internal/errors"
	"perawise/internal/models"
)

// onboardingService handles questionnaire business logic.
type onboardingService struct {
	db *gorm.DB
}

// NewOnboardingService creates a new OnboardingServicer.
func NewOnboardingService(db *gorm.DB) OnboardingServicer {
	return &onboardingService{db: db}
}

// SaveAnswer upserts the user's answer to a catalog question, recomputes the
// completion percentage against the fixed catalog size, and reflects it on
// the onboarding profile row. Two concurrent saves for the same question are
// resolved by the store's last-write-wins upsert.
func (s *onboardingService) SaveAnswer(userID, questionID string, value json.RawMessage) (*AnswerResult, error) {
	question, ok := catalog.QuestionByID(questionID)
	if !ok {
		return nil, apperrors.ErrUnknownQuestion
	}

	response := &models.OnboardingResponse{
		UserID:        userID,
		QuestionID:    questionID,
		QuestionText:  question.Text,
		ResponseType:  question.Type,
		ResponseValue: value,
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "question_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"question_text", "response_type", "response_value", "updated_at",
		}),
	}).Create(response).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	answered, err := s.answeredQuestionIDs(userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	percentage := completionPercentage(len(answered))
	if err := s.updateProfileCompletion(userID, percentage); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := &AnswerResult{CompletionPercentage: percentage}
	if next := catalog.FirstUnanswered(answered); next != "" {
		result.NextQuestionID = &next
	}
	return result, nil
}

// Complete marks onboarding as finished on both the user profile and the
// onboarding profile.
func (s *onboardingService) Complete(userID string) error {
	if err := s.setProfileFlags(userID, true, false); err != nil {
		return err
	}
	if err := s.updateProfileCompletion(userID, 100); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// Skip marks onboarding as skipped without touching saved answers.
func (s *onboardingService) Skip(userID string) error {
	return s.setProfileFlags(userID, false, true)
}

// Reset clears the completion flags and deletes every saved answer. The two
// writes are independent; a failure between them can leave the flags reset
// with answers still present, which the next reset call repairs.
func (s *onboardingService) Reset(userID string) error {
	if err := s.setProfileFlags(userID, false, false); err != nil {
		return err
	}

	err := s.db.Unscoped().
		Where("user_id = ?", userID).
		Delete(&models.OnboardingResponse{}).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// RecordPrivacyConsent stamps the consent time on the user profile.
func (s *onboardingService) RecordPrivacyConsent(userID string) error {
	profile, err := s.ensureProfile(userID)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if err := s.db.Model(profile).Update("privacy_consent_at", &now).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// Status reports questionnaire progress for the user.
func (s *onboardingService) Status(userID string) (*OnboardingStatus, error) {
	status := &OnboardingStatus{}

	var onboarding models.OnboardingProfile
	err := s.db.Where("user_id = ?", userID).First(&onboarding).Error
	switch {
	case err == nil:
		status.CompletionPercentage = onboarding.CompletionPercentage
		status.Completed = onboarding.IsCompleted
		status.ProfileExists = true
	case errors.Is(err, gorm.ErrRecordNotFound):
		// No profile yet; everything stays at its zero value.
	default:
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var profile models.Profile
	err = s.db.Where("id = ?", userID).First(&profile).Error
	switch {
	case err == nil:
		status.Completed = status.Completed || profile.OnboardingCompleted
		status.Skipped = profile.OnboardingSkipped
	case errors.Is(err, gorm.ErrRecordNotFound):
	default:
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return status, nil
}

// AnsweredCount counts the user's saved answers.
func (s *onboardingService) AnsweredCount(userID string) (int64, error) {
	var count int64
	err := s.db.Model(&models.OnboardingResponse{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return count, nil
}

// ensureProfile fetches the user's profile row, creating it on first contact.
func (s *onboardingService) ensureProfile(userID string) (*models.Profile, error) {
	profile := &models.Profile{ID: userID}
	if err := s.db.FirstOrCreate(profile, models.Profile{ID: userID}).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return profile, nil
}

func (s *onboardingService) setProfileFlags(userID string, completed, skipped bool) error {
	profile, err := s.ensureProfile(userID)
	if err != nil {
		return err
	}

	updates := map[string]interface{}{
		"onboarding_completed": completed,
		"onboarding_skipped":   skipped,
	}
	if err := s.db.Model(profile).Updates(updates).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// updateProfileCompletion upserts the onboarding profile row with a new
// completion percentage. is_completed follows percentage == 100.
func (s *onboardingService) updateProfileCompletion(userID string, percentage int) error {
	var profile models.OnboardingProfile
	err := s.db.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = models.OnboardingProfile{
			UserID:               userID,
			CompletionPercentage: percentage,
			IsCompleted:          percentage == 100,
		}
		return s.db.Create(&profile).Error
	}
	if err != nil {
		return err
	}

	return s.db.Model(&profile).Updates(map[string]interface{}{
		"completion_percentage": percentage,
		"is_completed":          percentage == 100,
	}).Error
}

func (s *onboardingService) answeredQuestionIDs(userID string) (map[string]bool, error) {
	var ids []string
	err := s.db.Model(&models.OnboardingResponse{}).
		Where("user_id = ?", userID).
		Pluck("question_id", &ids).Error
	if err != nil {
		return nil, err
	}

	answered := make(map[string]bool, len(ids))
	for _, id := range ids {
		answered[id] = true
	}
	return answered, nil
}

// completionPercentage converts an answer count into a whole percentage of
// the fixed catalog size.
func completionPercentage(answered int) int {
	total := catalog.TotalQuestions()
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(answered) / float64(total) * 100))
}
