package models

// PortfolioItem is a completed job shown on the portfolio page.
type PortfolioItem struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Details     string  `json:"details"`
	ImageURL    *string `json:"imageUrl"`
	Date        string  `json:"date"`
}

// CategoryAll disables category filtering.
const CategoryAll = "all"
