package analysis

import (
	"fmt"
	"strings"
)

// Personality types produced by the onboarding profile generator.
const (
	PersonalityCautiousSaver   = "The Cautious Saver"
	PersonalityGrowthInvestor  = "The Growth-Focused Investor"
	PersonalityJoyfulSpender   = "The Joyful Spender"
	PersonalityBalancedBuilder = "The Balanced Builder"
)

// ProfileDraft is a generated financial personality profile, ready to be
// stored as an OnboardingProfile row.
type ProfileDraft struct {
	CompletionPercentage int
	IsCompleted          bool
	PersonalityType      string
	ProfileSummary       string
	Strengths            []string
	GrowthAreas          []string
	Recommendations      []string
	MoneyMindset         string
}

// GenerateProfile derives a personality profile from onboarding answers.
// Only the free-text answers to spending_100k and money_relationship drive
// the personality type; the rest of the profile is fixed boilerplate with
// the type interpolated into the summary. Deterministic and total.
func GenerateProfile(responses map[string]string) ProfileDraft {
	spending := strings.ToLower(responses["spending_100k"])
	relationship := strings.ToLower(responses["money_relationship"])

	// Checked in priority order; first match wins.
	personality := PersonalityBalancedBuilder
	switch {
	case strings.Contains(spending, "save") || strings.Contains(relationship, "careful"):
		personality = PersonalityCautiousSaver
	case strings.Contains(spending, "invest") || strings.Contains(relationship, "growth"):
		personality = PersonalityGrowthInvestor
	case strings.Contains(spending, "spend") || strings.Contains(relationship, "enjoy"):
		personality = PersonalityJoyfulSpender
	}

	return ProfileDraft{
		CompletionPercentage: 100,
		IsCompleted:          true,
		PersonalityType:      personality,
		ProfileSummary: fmt.Sprintf(
			"You are %s. Based on your responses, you have a thoughtful approach to personal finance. "+
				"Your answers reveal a consistent philosophy about money and financial decision-making. "+
				"This profile reflects your current perspective and can evolve as your circumstances and priorities change.",
			personality),
		Strengths: []string{
			"Self-aware about financial habits",
			"Clear perspective on money and value",
			"Willing to reflect on financial behavior",
			"Open to financial growth",
			"Honest about current financial situation",
		},
		GrowthAreas: []string{
			"Consider developing a more structured savings plan",
			"Explore investment options aligned with your goals",
			"Build an emergency fund if not already present",
			"Track spending habits regularly",
			"Review and adjust financial goals quarterly",
		},
		Recommendations: []string{
			"Set up automatic transfers to a savings account",
			"Review your current investment portfolio quarterly",
			"Create a budget aligned with your monthly income",
			"Explore additional income streams if interested",
			"Continue learning about financial literacy",
			"Build relationships with trusted financial advisors",
			"Celebrate small financial wins along the way",
		},
		MoneyMindset: "Your relationship with money is pragmatic and thoughtful. " +
			"You value both security and growth, and you understand the importance of intentional financial decisions.",
	}
}
