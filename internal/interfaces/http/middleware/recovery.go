package middleware

import (
	"errors"
	"net"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vistream-io/vistream/internal/shared/logger"
	"github.com/vistream-io/vistream/internal/shared/utils"
)

// Recovery converts panics into 500 responses. Broken client
// connections are logged and aborted without a response since the peer
// is already gone.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		if checkBrokenConnection(recovered) {
			logger.Error("connection broken during request",
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"error", recovered)
			c.Abort()
			return
		}

		logger.Error("panic recovered",
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"error", recovered)

		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error occurred")
		c.Abort()
	})
}

func checkBrokenConnection(recovered interface{}) bool {
	ne, ok := recovered.(*net.OpError)
	if !ok {
		return false
	}

	var se *os.SyscallError
	if !errors.As(ne.Err, &se) {
		return false
	}

	msg := strings.ToLower(se.Error())
	return strings.Contains(msg, "broken pipe") || strings.Contains(msg, "connection reset by peer")
}
