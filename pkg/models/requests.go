package models

import "errors"

var (
	// ErrMissingCredentials is returned when a login or registration payload
	// lacks required fields.
	ErrMissingCredentials = errors.New("username and password are required")

	// ErrMissingRegistrationFields is returned when a registration payload is
	// incomplete.
	ErrMissingRegistrationFields = errors.New("username, email and password are required")

	// ErrMissingURL is returned when a monitor creation payload has no target URL.
	ErrMissingURL = errors.New("url is required")

	// ErrEmptyUpdate is returned when a profile update carries no fields.
	ErrEmptyUpdate = errors.New("no updates provided")
)

// RegisterRequest is the account creation payload forwarded to the user service.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *RegisterRequest) Validate() error {
	if r.Username == "" || r.Email == "" || r.Password == "" {
		return ErrMissingRegistrationFields
	}
	return nil
}

// LoginRequest is the credential payload forwarded to the user service.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	if r.Username == "" || r.Password == "" {
		return ErrMissingCredentials
	}
	return nil
}

// ProfileUpdate carries optional account settings changes. Pointer fields
// distinguish "not sent" from "set to empty" so partial updates forward only
// what the client supplied.
type ProfileUpdate struct {
	Email             *string `json:"email,omitempty"`
	NotificationEmail *string `json:"notification_email,omitempty"`
	SlackWebhookURL   *string `json:"slack_webhook_url,omitempty"`
	Password          *string `json:"password,omitempty"`
}

func (r *ProfileUpdate) Validate() error {
	if r.Email == nil && r.NotificationEmail == nil && r.SlackWebhookURL == nil && r.Password == nil {
		return ErrEmptyUpdate
	}
	return nil
}

// CreateMonitorRequest registers a new monitoring target. IntervalSeconds is
// optional; the user service applies its default and range checks.
type CreateMonitorRequest struct {
	URL             string `json:"url"`
	IntervalSeconds int    `json:"interval_seconds,omitempty"`
}

func (r *CreateMonitorRequest) Validate() error {
	if r.URL == "" {
		return ErrMissingURL
	}
	return nil
}
