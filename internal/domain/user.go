package domain

// User is the authenticated account. The verification flag flips
// exactly once, server-side, when the email verification link is
// followed; the client never mutates it.
type User struct {
	ID         int64  `json:"id"`
	Email      string `json:"email"`
	IsActive   bool   `json:"is_active"`
	IsVerified bool   `json:"is_verified"`
}
