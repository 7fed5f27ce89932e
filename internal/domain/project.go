package domain

import "time"

// Project is a portfolio entry shown on the public site and managed from the
// admin back-office.
type Project struct {
	ProjectID   string     `json:"id" dynamodbav:"project_id"`
	Title       string     `json:"title" dynamodbav:"title"`
	Slug        string     `json:"slug" dynamodbav:"slug"`
	Summary     string     `json:"summary" dynamodbav:"summary"`
	Description string     `json:"description" dynamodbav:"description"`
	Tags        []string   `json:"tags,omitempty" dynamodbav:"tags"`
	Link        string     `json:"link,omitempty" dynamodbav:"link"`
	Featured    bool       `json:"featured" dynamodbav:"featured"`
	SortOrder   int        `json:"sort_order" dynamodbav:"sort_order"`
	Enable      bool       `json:"enable" dynamodbav:"enable"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty" dynamodbav:"deleted_at"`
	CreatedAt   time.Time  `json:"created" dynamodbav:"created_at"`
	UpdatedAt   time.Time  `json:"updated" dynamodbav:"updated_at"`
}

type CreateProjectRequest struct {
	Title       string   `json:"title" validate:"required"`
	Slug        string   `json:"slug" validate:"required,lowercase"`
	Summary     string   `json:"summary" validate:"required"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Link        string   `json:"link" validate:"omitempty,url"`
	Featured    bool     `json:"featured"`
	SortOrder   int      `json:"sort_order"`
}

type UpdateProjectRequest struct {
	Title       *string   `json:"title"`
	Slug        *string   `json:"slug" validate:"omitempty,lowercase"`
	Summary     *string   `json:"summary"`
	Description *string   `json:"description"`
	Tags        *[]string `json:"tags"`
	Link        *string   `json:"link" validate:"omitempty,url"`
	Featured    *bool     `json:"featured"`
	SortOrder   *int      `json:"sort_order"`
	Enable      *bool     `json:"enable"`
}
