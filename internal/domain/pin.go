package domain

import "time"

// PinRecord is a one-time login PIN issued to an allow-listed email.
// PK: email — the key schema itself guarantees at most one live PIN per
// address, so issuing a new PIN atomically supersedes the previous one.
// Only the bcrypt hash is stored; the plaintext PIN exists in memory just
// long enough to be delivered.
// ExpiresAt is a Unix timestamp used as DynamoDB TTL.
type PinRecord struct {
	Email     string    `json:"email" dynamodbav:"email"`
	PinID     string    `json:"id" dynamodbav:"pin_id"`
	PinHash   string    `json:"-" dynamodbav:"pin_hash"`
	CreatedAt time.Time `json:"created" dynamodbav:"created_at"`
	ExpiresAt int64     `json:"expires_at" dynamodbav:"expires_at"` // TTL (Unix seconds)
}

// Active reports whether the record is still within its TTL window.
func (p *PinRecord) Active(now time.Time) bool {
	return p.ExpiresAt > now.Unix()
}
