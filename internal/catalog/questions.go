// Package catalog holds the static onboarding question catalog and the
// curated educational content seed. Both are defined once at process start
// and never mutated.
package catalog

import (
	"sort"

	"perawise/internal/models"
)

// QuestionCategory groups onboarding questions by theme.
type QuestionCategory string

const (
	CategoryMindset  QuestionCategory = "mindset"
	CategoryNumbers  QuestionCategory = "numbers"
	CategoryBehavior QuestionCategory = "behavior"
	CategoryGoals    QuestionCategory = "goals"
)

// Question is an immutable onboarding catalog entry.
type Question struct {
	ID       string              `json:"id"`
	Text     string              `json:"text"`
	Type     models.ResponseType `json:"type"`
	Category QuestionCategory    `json:"category"`
	Required bool                `json:"required"`
	Order    int                 `json:"order"`
	Options  []string            `json:"options,omitempty"`
}

var questions = []Question{
	// Mindset (1-4)
	{
		ID:       "spending_100k",
		Text:     "If you had 100,000 pesos, what would you do with it?",
		Type:     models.ResponseTypeText,
		Category: CategoryMindset,
		Required: true,
		Order:    1,
	},
	{
		ID:       "investment_meaning",
		Text:     `What does the word "investment" mean to you?`,
		Type:     models.ResponseTypeText,
		Category: CategoryMindset,
		Required: true,
		Order:    2,
	},
	{
		ID:       "money_meaning",
		Text:     `What does "money" mean to you?`,
		Type:     models.ResponseTypeText,
		Category: CategoryMindset,
		Required: true,
		Order:    3,
	},
	{
		ID:       "money_relationship",
		Text:     "How would you describe your relationship with money?",
		Type:     models.ResponseTypeText,
		Category: CategoryMindset,
		Required: true,
		Order:    4,
	},

	// Numbers (5-7)
	{
		ID:       "monthly_income",
		Text:     "What is your estimated monthly income?",
		Type:     models.ResponseTypeNumber,
		Category: CategoryNumbers,
		Required: true,
		Order:    5,
	},
	{
		ID:       "monthly_savings_amount",
		Text:     "How much do you set aside per month for savings/investments?",
		Type:     models.ResponseTypeNumber,
		Category: CategoryNumbers,
		Required: false,
		Order:    6,
	},
	{
		ID:       "family_monthly_spending",
		Text:     "How much money do you spend on your family monthly?",
		Type:     models.ResponseTypeNumber,
		Category: CategoryNumbers,
		Required: false,
		Order:    7,
	},

	// Behavior (8-11)
	{
		ID:       "paycheck_to_paycheck",
		Text:     "Do you live paycheck to paycheck?",
		Type:     models.ResponseTypeChoice,
		Options:  []string{"Yes", "Sometimes", "No"},
		Category: CategoryBehavior,
		Required: true,
		Order:    8,
	},
	{
		ID:       "liquid_savings",
		Text:     "How much do you have saved in a liquid bank account?",
		Type:     models.ResponseTypeChoice,
		Options:  []string{"<10k", "10k-50k", "50k-100k", "100k-500k", "500k+", "Prefer not to say"},
		Category: CategoryBehavior,
		Required: true,
		Order:    9,
	},
	{
		ID:       "invested_assets",
		Text:     "How much do you have invested in different assets?",
		Type:     models.ResponseTypeChoice,
		Options:  []string{"<10k", "10k-50k", "50k-100k", "100k-500k", "500k+", "Prefer not to say"},
		Category: CategoryBehavior,
		Required: true,
		Order:    10,
	},
	{
		ID:       "estimated_net_worth",
		Text:     "What would you say is your estimated net worth?",
		Type:     models.ResponseTypeChoice,
		Options:  []string{"<10k", "10k-50k", "50k-100k", "100k-500k", "500k+", "Prefer not to say"},
		Category: CategoryBehavior,
		Required: true,
		Order:    11,
	},

	// Goals (12-14)
	{
		ID:       "savings_rate",
		Text:     "What is your estimated monthly savings rate?",
		Type:     models.ResponseTypeChoice,
		Options:  []string{"0-10%", "10-20%", "20-30%", "30%+", "I don't save regularly"},
		Category: CategoryGoals,
		Required: true,
		Order:    12,
	},
	{
		ID:       "loan_others",
		Text:     "Do you loan money to others often?",
		Type:     models.ResponseTypeScale1To5,
		Options:  []string{"Never", "Rarely", "Sometimes", "Often", "Very Often"},
		Category: CategoryGoals,
		Required: true,
		Order:    13,
	},
	{
		ID:       "borrow_money",
		Text:     "Do you borrow money often?",
		Type:     models.ResponseTypeScale1To5,
		Options:  []string{"Never", "Rarely", "Sometimes", "Often", "Very Often"},
		Category: CategoryGoals,
		Required: true,
		Order:    14,
	},
}

var questionsByID = func() map[string]Question {
	m := make(map[string]Question, len(questions))
	for _, q := range questions {
		m[q.ID] = q
	}
	return m
}()

// Questions returns the full catalog in question order.
func Questions() []Question {
	out := make([]Question, len(questions))
	copy(out, questions)
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// QuestionByID looks up a catalog question.
func QuestionByID(id string) (Question, bool) {
	q, ok := questionsByID[id]
	return q, ok
}

// TotalQuestions returns the catalog size; completion percentages are always
// computed against this number.
func TotalQuestions() int {
	return len(questions)
}

// FirstUnanswered returns the id of the first question in order that is not
// in answered, or "" when every question has been answered.
func FirstUnanswered(answered map[string]bool) string {
	for _, q := range Questions() {
		if !answered[q.ID] {
			return q.ID
		}
	}
	return ""
}
