package credential

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// User is an operator account. Credentials are decoupled from the person
// registry; an operator is not a Persoane row.
type User struct {
	IDUser       int    `json:"-"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

// AuthRequest carries an operator's username and password, for both
// registration and login.
type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r AuthRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// Repository defines data access for operator accounts.
type Repository interface {
	// Insert creates an account. A duplicate username surfaces as a
	// conflict.
	Insert(ctx context.Context, username, passwordHash string) error

	// FindByUsername returns the account, if any.
	FindByUsername(ctx context.Context, username string) (user *User, found bool, err error)
}

// Service defines the credential operations.
type Service interface {
	// Register creates an operator account with a hashed password.
	Register(ctx context.Context, req AuthRequest) error

	// Login verifies the credentials and returns an access token. The
	// failure is identical whether the username or the password is wrong.
	Login(ctx context.Context, req AuthRequest) (token string, err error)
}
