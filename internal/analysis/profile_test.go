package analysis

import (
	"strings"
	"testing"
)

func TestGenerateProfile_PersonalityType(t *testing.T) {
	cases := []struct {
		name      string
		responses map[string]string
		want      string
	}{
		{
			name:      "save keyword in spending answer",
			responses: map[string]string{"spending_100k": "I want to save for emergencies"},
			want:      PersonalityCautiousSaver,
		},
		{
			name:      "careful keyword in relationship answer",
			responses: map[string]string{"money_relationship": "I am very careful with money"},
			want:      PersonalityCautiousSaver,
		},
		{
			name:      "invest keyword in spending answer",
			responses: map[string]string{"spending_100k": "Invest it in index funds"},
			want:      PersonalityGrowthInvestor,
		},
		{
			name:      "growth keyword in relationship answer",
			responses: map[string]string{"money_relationship": "Money is a tool for growth"},
			want:      PersonalityGrowthInvestor,
		},
		{
			name:      "spend keyword in spending answer",
			responses: map[string]string{"spending_100k": "Spend it on a trip"},
			want:      PersonalityJoyfulSpender,
		},
		{
			name:      "enjoy keyword in relationship answer",
			responses: map[string]string{"money_relationship": "Money exists to enjoy life"},
			want:      PersonalityJoyfulSpender,
		},
		{
			name:      "no keywords falls back to balanced",
			responses: map[string]string{"spending_100k": "Pay off my tuition"},
			want:      PersonalityBalancedBuilder,
		},
		{
			name:      "empty responses fall back to balanced",
			responses: map[string]string{},
			want:      PersonalityBalancedBuilder,
		},
		{
			name: "save wins over invest",
			responses: map[string]string{
				"spending_100k":      "Save half and invest the rest",
				"money_relationship": "growth",
			},
			want: PersonalityCautiousSaver,
		},
		{
			name: "invest wins over spend",
			responses: map[string]string{
				"spending_100k": "Invest some, spend some",
			},
			want: PersonalityGrowthInvestor,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			draft := GenerateProfile(tc.responses)
			if draft.PersonalityType != tc.want {
				t.Errorf("expected %s, got %s", tc.want, draft.PersonalityType)
			}
		})
	}
}

func TestGenerateProfile_Matching(t *testing.T) {
	t.Run("matching is case-insensitive", func(t *testing.T) {
		draft := GenerateProfile(map[string]string{"spending_100k": "SAVE IT ALL"})
		if draft.PersonalityType != PersonalityCautiousSaver {
			t.Errorf("expected %s, got %s", PersonalityCautiousSaver, draft.PersonalityType)
		}
	})

	t.Run("other question answers are ignored", func(t *testing.T) {
		draft := GenerateProfile(map[string]string{"financial_goals": "save save save"})
		if draft.PersonalityType != PersonalityBalancedBuilder {
			t.Errorf("expected %s, got %s", PersonalityBalancedBuilder, draft.PersonalityType)
		}
	})
}

func TestGenerateProfile_Draft(t *testing.T) {
	draft := GenerateProfile(map[string]string{"spending_100k": "invest"})

	if !draft.IsCompleted {
		t.Error("expected IsCompleted to be true")
	}
	if draft.CompletionPercentage != 100 {
		t.Errorf("expected 100, got %d", draft.CompletionPercentage)
	}
	if !strings.Contains(draft.ProfileSummary, draft.PersonalityType) {
		t.Errorf("expected summary to mention %q, got %q", draft.PersonalityType, draft.ProfileSummary)
	}
	if len(draft.Strengths) == 0 || len(draft.GrowthAreas) == 0 || len(draft.Recommendations) == 0 {
		t.Error("expected non-empty strengths, growth areas, and recommendations")
	}
	if draft.MoneyMindset == "" {
		t.Error("expected a money mindset")
	}
}
