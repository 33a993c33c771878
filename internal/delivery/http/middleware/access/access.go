package http_access_middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/wordchain/internal/delivery/http/common"
)

const ModeReadOnly = "RO"

// ReadOnly rejects every non-GET request while the instance runs in RO mode.
func ReadOnly(mode string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if mode != ModeReadOnly {
			c.Next()
			return
		}

		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead {
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusBadGateway, http_common.ErrorResponse{
			Message: "write operations are not allowed on a read-only instance",
		})
	}
}
