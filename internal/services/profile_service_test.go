package services

import (
	"testing"

	"perawise/internal/analysis"
	"perawise/internal/models"
	"perawise/internal/testutil"
)

func TestProfileService_GetProfile(t *testing.T) {
	t.Run("returns PROFILE_NOT_FOUND for unknown user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewProfileService(db)

		_, err := svc.GetProfile(testutil.NewTestUserID())
		testutil.AssertAppError(t, err, "PROFILE_NOT_FOUND")
	})

	t.Run("returns the stored profile", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewProfileService(db)
		userID := testutil.NewTestUserID()
		testutil.CreateTestOnboardingProfile(t, db, userID)

		profile, err := svc.GetProfile(userID)
		testutil.AssertNoError(t, err)
		if profile.PersonalityType != "The Balanced Builder" {
			t.Errorf("unexpected personality type %q", profile.PersonalityType)
		}
	})
}

func TestProfileService_SaveGeneratedProfile(t *testing.T) {
	t.Run("creates a profile from a draft", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewProfileService(db)
		userID := testutil.NewTestUserID()

		draft := analysis.GenerateProfile(map[string]string{"spending_100k": "save it"})
		profile, err := svc.SaveGeneratedProfile(userID, draft)
		testutil.AssertNoError(t, err)

		if profile.PersonalityType != analysis.PersonalityCautiousSaver {
			t.Errorf("expected %s, got %s", analysis.PersonalityCautiousSaver, profile.PersonalityType)
		}
		if profile.GeneratedAt == nil {
			t.Error("expected GeneratedAt to be set")
		}
		if len(profile.Strengths) == 0 || len(profile.Recommendations) == 0 {
			t.Error("expected draft lists to be persisted")
		}
	})

	t.Run("replaces an existing profile in place", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewProfileService(db)
		userID := testutil.NewTestUserID()

		first, err := svc.SaveGeneratedProfile(userID, analysis.GenerateProfile(map[string]string{"spending_100k": "save it"}))
		testutil.AssertNoError(t, err)
		second, err := svc.SaveGeneratedProfile(userID, analysis.GenerateProfile(map[string]string{"spending_100k": "invest it"}))
		testutil.AssertNoError(t, err)

		if first.ID != second.ID {
			t.Errorf("expected in-place update, got new row %s vs %s", first.ID, second.ID)
		}
		if second.PersonalityType != analysis.PersonalityGrowthInvestor {
			t.Errorf("expected %s, got %s", analysis.PersonalityGrowthInvestor, second.PersonalityType)
		}

		var count int64
		db.Model(&models.OnboardingProfile{}).Where("user_id = ?", userID).Count(&count)
		if count != 1 {
			t.Errorf("expected a single profile row, got %d", count)
		}
	})
}

func TestProfileService_Export(t *testing.T) {
	t.Run("bundles responses and profile", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewProfileService(db)
		userID := testutil.NewTestUserID()

		testutil.CreateTestResponse(t, db, userID, "spending_100k", "Save it")
		testutil.CreateTestResponse(t, db, userID, "monthly_income", 25000)
		testutil.CreateTestOnboardingProfile(t, db, userID)

		export, err := svc.Export(userID)
		testutil.AssertNoError(t, err)

		if len(export.Responses) != 2 {
			t.Errorf("expected 2 responses, got %d", len(export.Responses))
		}
		if export.Profile == nil {
			t.Error("expected profile in export")
		}
		if export.ExportedAt.IsZero() {
			t.Error("expected export timestamp")
		}
	})

	t.Run("omits profile when none exists", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewProfileService(db)
		userID := testutil.NewTestUserID()

		export, err := svc.Export(userID)
		testutil.AssertNoError(t, err)
		if export.Profile != nil {
			t.Error("expected nil profile")
		}
		if len(export.Responses) != 0 {
			t.Errorf("expected no responses, got %d", len(export.Responses))
		}
	})
}

func TestProfileService_DeleteData(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewProfileService(db)
	userID := testutil.NewTestUserID()

	profile := testutil.CreateTestProfile(t, db, userID)
	profile.OnboardingCompleted = true
	testutil.AssertNoError(t, db.Save(profile).Error)
	testutil.CreateTestResponse(t, db, userID, "spending_100k", "Save it")
	testutil.CreateTestOnboardingProfile(t, db, userID)

	testutil.AssertNoError(t, svc.DeleteData(userID))

	var responseCount int64
	db.Unscoped().Model(&models.OnboardingResponse{}).Where("user_id = ?", userID).Count(&responseCount)
	if responseCount != 0 {
		t.Errorf("expected responses hard-deleted, got %d", responseCount)
	}

	var profileCount int64
	db.Unscoped().Model(&models.OnboardingProfile{}).Where("user_id = ?", userID).Count(&profileCount)
	if profileCount != 0 {
		t.Errorf("expected onboarding profile hard-deleted, got %d", profileCount)
	}

	var reloaded models.Profile
	testutil.AssertNoError(t, db.Where("id = ?", userID).First(&reloaded).Error)
	if reloaded.OnboardingCompleted || reloaded.OnboardingSkipped {
		t.Errorf("expected cleared flags, got %+v", reloaded)
	}
}
