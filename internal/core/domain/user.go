package domain

// User is the identity record returned by the remote API on login and
// registration. Admins and regular users share the same shape; the account
// kind is carried separately as the session's admin flag.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
