package http

import (
	"github.com/portfolio-api/internal/infrastructure/dynamo"
	jwtinfra "github.com/portfolio-api/internal/infrastructure/jwt"
	"github.com/portfolio-api/internal/infrastructure/smtp"
	"github.com/portfolio-api/internal/infrastructure/sns"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	PinRepo     *dynamo.PinRepo
	SessionRepo *dynamo.SessionRepo
	ProjectRepo *dynamo.ProjectRepo
	ContactRepo *dynamo.ContactRepo
	SettingRepo *dynamo.SettingRepo
	Mailer      smtp.Mailer
	Alerts      sns.AlertPublisher // nil disables operator alerts
	JWTProvider *jwtinfra.Provider
}
