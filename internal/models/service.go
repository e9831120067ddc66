package models

// Service is an entry of the service catalog. Price is a display string
// such as "50,000원~".
type Service struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Category    string   `json:"category"`
	Features    []string `json:"features"`
	Icon        string   `json:"icon"`
}
