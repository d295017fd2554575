// Package auth integrates the external identity provider.
//
// The rest of the application never inspects credentials: it hands them to
// the provider and keeps only the opaque session token. Everything works
// without a session; commands that mutate stock merely warn when none is
// active.
package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Client talks to the identity provider's REST surface.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a client for the provider at baseURL, authenticated
// with the project API key.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Session is the opaque result of a successful sign-in or sign-up.
type Session struct {
	// ID identifies this local session (not the provider's user id).
	ID string `json:"id"`

	// Email is the account the session belongs to.
	Email string `json:"email"`

	// Token is the provider-issued bearer token. Opaque to this app.
	Token string `json:"token"`

	// ExpiresAt is when the token stops being valid.
	ExpiresAt time.Time `json:"expires_at"`
}

// Active reports whether the session token is still within its lifetime.
func (s Session) Active(now time.Time) bool {
	return s.Token != "" && now.Before(s.ExpiresAt)
}

// AuthError is a provider-reported failure (wrong password, email in use).
type AuthError struct {
	// Code is the provider's error identifier, e.g. "INVALID_PASSWORD".
	Code string

	// Status is the HTTP status the provider answered with.
	Status int
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	return fmt.Sprintf("identity provider rejected request: %s (http %d)", e.Code, e.Status)
}

// IsAuthError returns true if the error is a provider rejection, as
// opposed to a transport failure. Uses errors.As to handle wrapped errors.
func IsAuthError(err error) bool {
	var ae *AuthError
	return errors.As(err, &ae)
}

// SignIn exchanges credentials for a session.
func (c *Client) SignIn(ctx context.Context, email, password string) (Session, error) {
	return c.credentialRequest(ctx, "accounts:signInWithPassword", email, password)
}

// SignUp registers a new account and returns its first session.
func (c *Client) SignUp(ctx context.Context, email, password string) (Session, error) {
	return c.credentialRequest(ctx, "accounts:signUp", email, password)
}

type credentialPayload struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type credentialResponse struct {
	IDToken   string `json:"idToken"`
	Email     string `json:"email"`
	ExpiresIn string `json:"expiresIn"`
	Error     *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) credentialRequest(ctx context.Context, endpoint, email, password string) (Session, error) {
	body, err := json.Marshal(credentialPayload{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	})
	if err != nil {
		return Session{}, fmt.Errorf("%s: encode request: %w", endpoint, err)
	}

	url := fmt.Sprintf("%s/v1/%s?key=%s", c.baseURL, endpoint, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Session{}, fmt.Errorf("%s: build request: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Session{}, fmt.Errorf("%s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	var parsed credentialResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return Session{}, fmt.Errorf("%s: decode response: %w", endpoint, err)
	}

	if resp.StatusCode != http.StatusOK {
		code := "UNKNOWN"
		if parsed.Error != nil && parsed.Error.Message != "" {
			code = parsed.Error.Message
		}
		return Session{}, &AuthError{Code: code, Status: resp.StatusCode}
	}

	expiresAt := time.Now().Add(time.Hour)
	if d, err := time.ParseDuration(parsed.ExpiresIn + "s"); err == nil {
		expiresAt = time.Now().Add(d)
	}

	return Session{
		ID:        uuid.NewString(),
		Email:     parsed.Email,
		Token:     parsed.IDToken,
		ExpiresAt: expiresAt,
	}, nil
}
