package root

import (
	"net/http"

	"github.com/fintrack-api/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Links Links `json:"links"`
}

type Links struct {
	Docs         string `json:"docs" example:"https://example.com/api/docs/index.html"`      // Swagger API documentation
	Healthz      string `json:"healthz" example:"https://example.com/api/healthz"`           // Healthz endpoint
	Version      string `json:"version" example:"https://example.com/api/version"`           // Endpoint returning the version of the backend
	Metrics      string `json:"metrics" example:"https://example.com/api/metrics"`           // Endpoint returning Prometheus metrics
	Auth         string `json:"auth" example:"https://example.com/api/auth"`                 // Authentication endpoints
	Categories   string `json:"categories" example:"https://example.com/api/categories"`     // Category list endpoint
	Transactions string `json:"transactions" example:"https://example.com/api/transactions"` // Transaction list endpoint
	Budgets      string `json:"budgets" example:"https://example.com/api/budgets"`           // Budget list endpoint
	Reports      string `json:"reports" example:"https://example.com/api/reports/monthly"`   // Monthly report endpoint
}

func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

// @Summary		API root
// @Description	Entrypoint for the API, listing all endpoints
// @Tags			General
// @Success		200	{object}	Response
// @Router			/ [get]
func Get(c *gin.Context) {
	url := c.GetString(httputil.ContextURL)

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Docs:         url + "/docs/index.html",
			Healthz:      url + "/healthz",
			Version:      url + "/version",
			Metrics:      url + "/metrics",
			Auth:         url + "/auth",
			Categories:   url + "/categories",
			Transactions: url + "/transactions",
			Budgets:      url + "/budgets",
			Reports:      url + "/reports/monthly",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
