package catalog

import "perawise/internal/models"

// Content categories exposed by the educational library.
const (
	ContentCategoryBasics     = "basics"
	ContentCategorySaving     = "saving"
	ContentCategoryInvesting  = "investing"
	ContentCategoryDebt       = "debt"
	ContentCategoryProtection = "protection"
)

var contentCategories = map[string]bool{
	ContentCategoryBasics:     true,
	ContentCategorySaving:     true,
	ContentCategoryInvesting:  true,
	ContentCategoryDebt:       true,
	ContentCategoryProtection: true,
}

// ValidContentCategory reports whether s is a known content category.
func ValidContentCategory(s string) bool {
	return contentCategories[s]
}

// ContentSeed returns the curated articles inserted at startup when missing.
func ContentSeed() []models.ContentItem {
	return []models.ContentItem{
		{
			Title:       "Budgeting 101: Know Where Your Money Goes",
			Description: "A practical introduction to tracking income and expenses.",
			Body:        "Budgeting starts with visibility. List your monthly income, then every recurring expense: rent, food, transport, utilities, and family support. The difference is what you can save or invest. Review the list weekly for the first month; most people find at least one expense they can trim without feeling it.",
			Category:    ContentCategoryBasics,
			Tags:        []string{"budgeting", "beginner"},
		},
		{
			Title:       "Building Your First Emergency Fund",
			Description: "Why three to six months of expenses is the first savings goal.",
			Body:        "Before investing a single peso, set aside an emergency fund in a liquid bank account. Aim for three to six months of essential expenses. It turns a job loss or a hospital bill from a crisis into an inconvenience, and it keeps you from selling investments at the worst possible time.",
			Category:    ContentCategorySaving,
			Tags:        []string{"savings", "emergency-fund"},
		},
		{
			Title:       "The 20% Savings Rate Habit",
			Description: "Pay yourself first with automatic transfers.",
			Body:        "A savings rate of 20% of monthly income is a strong long-term target. Automate it: schedule a transfer to a separate account on payday so saving happens before spending. If 20% is out of reach today, start at 5% and raise it by one point each month.",
			Category:    ContentCategorySaving,
			Tags:        []string{"savings", "habits"},
		},
		{
			Title:       "Mutual Funds and UITFs Explained",
			Description: "How pooled funds work and what the fees mean.",
			Body:        "Pooled funds let many small investors share one professionally managed portfolio. Before buying, read the fund fact sheet: the management fee, the benchmark, and the historical volatility. A low expense ratio compounds in your favor over decades, and past returns are not a promise of future ones.",
			Category:    ContentCategoryInvesting,
			Tags:        []string{"funds", "investing", "fees"},
		},
		{
			Title:       "Good Debt, Bad Debt",
			Description: "Not all borrowing is equal.",
			Body:        "Debt that buys an appreciating asset or increases your earning power can be reasonable; debt that finances consumption at high interest rarely is. List every loan with its interest rate and pay the highest rate first while keeping minimums on the rest.",
			Category:    ContentCategoryDebt,
			Tags:        []string{"debt", "loans"},
		},
		{
			Title:       "Insurance Before Investment",
			Description: "Protecting your income is part of a financial plan.",
			Body:        "If people depend on your income, basic term life and health coverage come before aggressive investing. Insurance converts a catastrophic, unpredictable cost into a small, predictable one. Buy protection and investments separately rather than bundled products you do not fully understand.",
			Category:    ContentCategoryProtection,
			Tags:        []string{"insurance", "planning"},
		},
	}
}
