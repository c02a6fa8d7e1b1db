package types

type UserResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}
