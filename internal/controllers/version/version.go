package version

import (
	"net/http"
	"runtime"

	"github.com/fintrack-api/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Data Info `json:"data"`
}

// Info describes the running build.
type Info struct {
	Version   string `json:"version" example:"1.4.0"`    // Release of the FinTrack backend
	GoVersion string `json:"goVersion" example:"go1.24"` // Go toolchain the binary was built with
}

// RegisterRoutes serves the build information for the given release
// on the RouterGroup.
func RegisterRoutes(r *gin.RouterGroup, release string) {
	info := Info{
		Version:   release,
		GoVersion: runtime.Version(),
	}

	r.GET("", get(info))
	r.OPTIONS("", Options)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		API version
// @Description	Returns the release and Go version of the running backend
// @Tags			General
// @Success		200	{object}	Response
// @Router			/version [get]
func get(info Info) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, Response{Data: info})
	}
}
