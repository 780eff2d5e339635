package errors

var (
	ErrInvalidCredentials = Unauthorized("invalid credentials")
	ErrMissingToken       = Unauthorized("missing or invalid authorization header")
	ErrInvalidToken       = Unauthorized("invalid or expired token")
)
