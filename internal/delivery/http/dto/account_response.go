package dto

type RegisterResponse struct {
	AccountID int64 `json:"account_id"`
}

type LoginResponse struct {
	AccountID int64  `json:"account_id"`
	Login     string `json:"login"`
	IsAdmin   bool   `json:"is_admin"`
}
