// Package v1 implements the resource endpoints of the API.
//
// Category, transaction and budget handlers use models.DB directly.
// Authentication and reports need collaborators and are methods of
// Controller.
package v1

import (
	"github.com/fintrack-api/backend/internal/auth"
	"github.com/fintrack-api/backend/internal/report"
)

type Controller struct {
	issuer  *auth.Issuer
	google  auth.Provider
	reports *report.Service
}

func NewController(issuer *auth.Issuer, google auth.Provider, reports *report.Service) Controller {
	return Controller{
		issuer:  issuer,
		google:  google,
		reports: reports,
	}
}
