package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/foreskyapp/foresky-cli/internal/domain"
)

// tokenResponse is the login success payload.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// registerRequest is the registration payload.
type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// resendRequest asks for a fresh verification email.
type resendRequest struct {
	Email string `json:"email"`
}

// messageResponse is the generic {message} success envelope.
type messageResponse struct {
	Message string `json:"message"`
}

// Login exchanges credentials for an access token. The endpoint is
// OAuth2 form-encoded: the email travels in the username field.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	var out tokenResponse
	if err := c.do(ctx, "login", http.MethodPost, "/auth/login", nil, form, &out); err != nil {
		return "", err
	}
	return out.AccessToken, nil
}

// Register creates a new account. The account stays unverified until
// the emailed link is followed.
func (c *Client) Register(ctx context.Context, email, password string) (*domain.User, error) {
	var out domain.User
	err := c.do(ctx, "register", http.MethodPost, "/auth/register", nil,
		registerRequest{Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ResendVerification asks the server to send a fresh verification email.
func (c *Client) ResendVerification(ctx context.Context, email string) error {
	return c.do(ctx, "resend", http.MethodPost, "/auth/resend", nil,
		resendRequest{Email: email}, nil)
}

// Verify exchanges an emailed verification token for a confirmation
// message. Verification happens entirely server-side.
func (c *Client) Verify(ctx context.Context, token string) (string, error) {
	query := url.Values{}
	query.Set("token", token)

	var out messageResponse
	if err := c.do(ctx, "verify", http.MethodGet, "/auth/verify", query, nil, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}
