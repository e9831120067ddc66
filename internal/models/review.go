package models

// DateLayout is the display format for every server-assigned date.
const DateLayout = "2006.01.02"

type Review struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Date    string `json:"date"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Service string `json:"service"`
}

// ReviewSubmission is the body of POST /api/reviews. Id and date are
// assigned by the server.
type ReviewSubmission struct {
	Name    string `json:"name"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Service string `json:"service"`
}

type ReviewPage struct {
	Reviews []Review `json:"reviews"`
	Total   int      `json:"total"`
	Page    int      `json:"page"`
	PerPage int      `json:"per_page"`
	Pages   int      `json:"pages"`
}

type ReviewCreateResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Review  Review `json:"review"`
}
