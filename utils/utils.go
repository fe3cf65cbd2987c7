package utils

import (
	"fmt"
	"log"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
)

// SendJSONError sends a standardized JSON error response and logs the
// internal error. For 5xx responses the public message stays generic;
// the real error only goes to the server log.
func SendJSONError(c *gin.Context, statusCode int, publicMsg string, internalError error, details ...string) {
	errorDetails := ""
	if len(details) > 0 {
		errorDetails = details[0]
	}

	response := gin.H{"error": publicMsg}
	if errorDetails != "" {
		response["details"] = errorDetails
	}

	if internalError != nil {
		log.Printf("ERROR: Handler error: status_code=%d, public_message='%s', internal_error='%v', path='%s'",
			statusCode, publicMsg, internalError, c.Request.URL.Path)
	} else {
		log.Printf("INFO: Handler response: status_code=%d, public_message='%s', path='%s'",
			statusCode, publicMsg, c.Request.URL.Path)
	}

	if statusCode >= http.StatusInternalServerError && publicMsg == "" {
		response["error"] = "An unexpected error occurred. Please try again later."
	}

	c.AbortWithStatusJSON(statusCode, response)
}

// DateLayout is the canonical ImpactStory date form (ISO, YYYY-MM-DD).
const DateLayout = "2006-01-02"

// Today returns the current date in the canonical layout.
func Today() string {
	return time.Now().Format(DateLayout)
}

// PlaceholderImage returns a placeholder image URL for submissions
// without a photo. The current timestamp keeps repeated submissions
// from all resolving to the same cached picture.
func PlaceholderImage() string {
	return fmt.Sprintf("https://picsum.photos/seed/%d/600/400", time.Now().UnixMilli())
}

// Excerpt returns s truncated to max runes with an ellipsis, for
// deriving article excerpts from full content.
func Excerpt(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max]) + "..."
}
