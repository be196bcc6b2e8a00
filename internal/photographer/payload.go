package photographer

type RegisterPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string `json:"token"`
}

type UpdateProfilePayload struct {
	Name       string `json:"name"`
	Bio        string `json:"bio"`
	City       string `json:"city"`
	Categories string `json:"categories"`
}
