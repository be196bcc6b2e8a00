package gallery

type CreatePayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	City        string `json:"city"`
	CoverURL    string `json:"cover_url"`
}

type RequestHomepagePayload struct {
	ID string `json:"id"`
}
