package middleware

import (
	"net/http"

	"github.com/Aaron629/today-go-where-bot/utils"
	"github.com/gin-gonic/gin"
)

// ErrorHandlerMiddleware maps errors attached to the gin context onto the
// standard error envelope so controllers can just c.Error() and return.
func ErrorHandlerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err

			if customErr, ok := err.(*utils.CustomError); ok {
				utils.ErrorResponse(c, customErr.StatusCode, customErr.Message)
				return
			}

			utils.ErrorResponse(c, http.StatusInternalServerError, "Internal Server Error")
		}
	}
}
