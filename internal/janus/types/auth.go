package types

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	OK       bool   `json:"ok"`
	Username string `json:"username"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	OK       bool   `json:"ok"`
	Username string `json:"username"`
	Token    string `json:"token"`
}
