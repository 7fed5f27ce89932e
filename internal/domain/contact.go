package domain

import "time"

// ContactMessage is an inbound message from the public contact form.
type ContactMessage struct {
	MessageID string    `json:"id" dynamodbav:"message_id"`
	Name      string    `json:"name" dynamodbav:"name"`
	Email     string    `json:"email" dynamodbav:"email"`
	Subject   string    `json:"subject" dynamodbav:"subject"`
	Body      string    `json:"body" dynamodbav:"body"`
	Read      bool      `json:"read" dynamodbav:"read"`
	CreatedAt time.Time `json:"created" dynamodbav:"created_at"`
}

type CreateContactRequest struct {
	Name    string `json:"name" validate:"required,max=120"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=200"`
	Body    string `json:"body" validate:"required,max=5000"`
}
