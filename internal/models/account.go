package models

type Account struct {
	ID           int    `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	Bio          string `json:"bio"`
	PasswordHash string `json:"-"`
	IsVerified   bool   `json:"is_verified"`
}

// PendingVerification is the one code currently awaiting confirmation.
// An account has at most one; every re-registration replaces it.
type PendingVerification struct {
	AccountID int    `json:"account_id"`
	Code      string `json:"-"`
}

// Credentials is the login-path projection of an account.
type Credentials struct {
	AccountID    int
	PasswordHash string
}

// Profile is what the public user endpoints expose.
type Profile struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Bio      string `json:"bio"`
}
