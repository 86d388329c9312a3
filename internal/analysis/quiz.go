// Package analysis contains the mock financial-analysis generators. They are
// deterministic stand-ins for a not-yet-integrated AI service: the quiz
// analyzer and the profile generator are pure functions, the fund scorer
// mixes a small random element into a name-derived seed.
package analysis

import "strings"

// UserType classifies the quiz taker.
type UserType string

const (
	UserTypeStudent       UserType = "Student"
	UserTypeProfessional  UserType = "Professional"
	UserTypeBusinessOwner UserType = "Business Owner"
)

// FinancialHealth grades the quiz taker's savings position.
type FinancialHealth string

const (
	FinancialHealthBeginner FinancialHealth = "Beginner"
	FinancialHealthGrowing  FinancialHealth = "Growing"
	FinancialHealthStable   FinancialHealth = "Stable"
)

// RiskProfile classifies investment risk appetite.
type RiskProfile string

const (
	RiskProfileConservative RiskProfile = "Conservative"
	RiskProfileModerate     RiskProfile = "Moderate"
	RiskProfileAggressive   RiskProfile = "Aggressive"
)

// QuizAnswers is the input collected by the three-step quiz form.
type QuizAnswers struct {
	Occupation      string  `json:"occupation"`
	MonthlyIncome   float64 `json:"monthlyIncome"`
	MonthlyExpenses float64 `json:"monthlyExpenses"`
	HasBankAccount  bool    `json:"hasBankAccount"`
	EssayResponse   string  `json:"essayResponse"`
}

// QuizResult is the derived classification plus 3-5 recommendations.
type QuizResult struct {
	UserType        UserType        `json:"userType"`
	FinancialHealth FinancialHealth `json:"financialHealth"`
	RiskProfile     RiskProfile     `json:"riskProfile"`
	Recommendations []string        `json:"recommendations"`
}

var investmentKeywords = []string{"invest", "stock", "business", "crypto"}
var savingsKeywords = []string{"save", "bank", "emergency"}

// SavingsRate returns the savings rate as a percentage of income.
// Zero or negative income yields 0.
func SavingsRate(income, expenses float64) float64 {
	if income <= 0 {
		return 0
	}
	return (income - expenses) / income * 100
}

// AnalyzeQuiz maps quiz answers to a classification and recommendation list.
// It is total: every well-typed input produces all four fields, and the
// recommendation list always has between 3 and 5 entries.
func AnalyzeQuiz(answers QuizAnswers) QuizResult {
	var userType UserType
	switch answers.Occupation {
	case "Student":
		userType = UserTypeStudent
	case "Self-employed":
		userType = UserTypeBusinessOwner
	default:
		userType = UserTypeProfessional
	}

	savingsRate := SavingsRate(answers.MonthlyIncome, answers.MonthlyExpenses)

	var health FinancialHealth
	switch {
	case savingsRate < 10:
		health = FinancialHealthBeginner
	case savingsRate < 30:
		health = FinancialHealthGrowing
	default:
		health = FinancialHealthStable
	}

	essay := strings.ToLower(answers.EssayResponse)
	risk := RiskProfileModerate
	if health == FinancialHealthBeginner {
		risk = RiskProfileConservative
	} else if containsAny(essay, investmentKeywords) && health == FinancialHealthStable {
		risk = RiskProfileAggressive
	}

	recs := buildRecommendations(answers, userType, health, savingsRate)

	return QuizResult{
		UserType:        userType,
		FinancialHealth: health,
		RiskProfile:     risk,
		Recommendations: recs,
	}
}

func buildRecommendations(answers QuizAnswers, userType UserType, health FinancialHealth, savingsRate float64) []string {
	var recs []string

	if !answers.HasBankAccount {
		recs = append(recs, "Open a bank account to start managing your finances securely")
	}

	if health == FinancialHealthBeginner {
		recs = append(recs,
			"Focus on building an emergency fund covering 3-6 months of expenses",
			"Track your spending habits to identify areas where you can save more",
		)
	}

	if savingsRate < 20 && answers.MonthlyIncome > 0 {
		recs = append(recs, "Try to save at least 20% of your monthly income for long-term goals")
	}

	switch userType {
	case UserTypeStudent:
		recs = append(recs,
			"Consider part-time opportunities or freelancing to increase income",
			"Learn about personal finance basics through free online resources",
		)
	case UserTypeBusinessOwner:
		recs = append(recs,
			"Separate personal and business finances for better money management",
			"Consider diversifying income streams to reduce financial risk",
		)
	default:
		recs = append(recs, "Explore employer benefits like retirement contributions or health savings")
	}

	if health == FinancialHealthStable || health == FinancialHealthGrowing {
		recs = append(recs, "Consider investing in low-risk funds to grow your wealth over time")
	}

	if len(recs) < 3 {
		recs = append(recs,
			"Set clear financial goals and review them quarterly",
			"Educate yourself on different investment vehicles available in the Philippines",
		)
	}

	if len(recs) > 5 {
		recs = recs[:5]
	}
	return recs
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
