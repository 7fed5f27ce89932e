package domain

import "time"

// Setting is a key/value site setting (hero text, social links, SEO bits).
// Keys prefixed "public." are exposed on the public settings endpoint;
// everything else is admin-only.
type Setting struct {
	Key       string    `json:"key" dynamodbav:"setting_key"`
	Value     string    `json:"value" dynamodbav:"setting_value"`
	UpdatedAt time.Time `json:"updated" dynamodbav:"updated_at"`
}

type UpsertSettingRequest struct {
	Value string `json:"value" validate:"required"`
}

// PublicSettingPrefix marks settings readable without authentication.
const PublicSettingPrefix = "public."
