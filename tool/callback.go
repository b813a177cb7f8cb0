package tool

import (
	"github.com/gin-gonic/gin"
)

// FastReturnError wraps msg as a JSON error body.
func FastReturnError(msg string) gin.H {
	return gin.H{
		"error": msg,
	}
}

// FastReturnSuccessWithData wraps data as a JSON success body.
func FastReturnSuccessWithData(data any) gin.H {
	return gin.H{
		"data": data,
	}
}

// FastReturnAccepted is the reply for requests handed to the event loop without waiting for the outcome.
func FastReturnAccepted(what string) gin.H {
	return gin.H{
		"status":   "accepted",
		"accepted": what,
	}
}
