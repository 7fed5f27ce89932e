package domain

import "time"

// Session is an admin back-office session, created only after a successful
// PIN verification. The email is the stable identity; there are no user rows.
type Session struct {
	SessionID        string    `json:"id" dynamodbav:"session_id"`
	Email            string    `json:"email" dynamodbav:"email"`
	Enable           bool      `json:"enable" dynamodbav:"enable"`
	RefreshToken     string    `json:"-" dynamodbav:"refresh_token"`
	RefreshExpiresAt int64     `json:"refresh_expires_at" dynamodbav:"refresh_expires_at"`
	CreatedAt        time.Time `json:"created" dynamodbav:"created_at"`
	UpdatedAt        time.Time `json:"updated" dynamodbav:"updated_at"`
}
