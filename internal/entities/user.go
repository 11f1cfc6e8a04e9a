package entities

// User is an account that owns characters.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    int64
	UpdatedAt    int64
}
