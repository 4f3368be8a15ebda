package utils

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MostafaKhidr/QCHAT/models"
)

// sessionTokenBytes is the entropy of a session token before encoding.
const sessionTokenBytes = 32

// GenerateSessionToken returns a cryptographically random, URL-safe
// session token. The token is the sole key for session lookup, so it must
// be unguessable.
func GenerateSessionToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// SendJSONError sends a standardized JSON error response and logs the
// internal error. For 5xx errors the client always receives a generic
// message; the actual cause only goes to the logs.
func SendJSONError(c *gin.Context, statusCode int, publicMsg string, internalError error) {
	if internalError != nil {
		log.Printf("ERROR: Handler error: status_code=%d, public_message='%s', internal_error='%v', path='%s'",
			statusCode, publicMsg, internalError, c.Request.URL.Path)
	} else {
		log.Printf("INFO: Handler response: status_code=%d, public_message='%s', path='%s'",
			statusCode, publicMsg, c.Request.URL.Path)
	}

	if statusCode >= http.StatusInternalServerError {
		publicMsg = "An unexpected error occurred. Please try again later."
	}

	c.AbortWithStatusJSON(statusCode, gin.H{"error": publicMsg})
}

// SendAppError maps a typed engine failure onto an HTTP response.
func SendAppError(c *gin.Context, err error) {
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		SendJSONError(c, http.StatusInternalServerError, "", err)
		return
	}

	switch appErr.Kind {
	case models.ErrorKindValidation:
		SendJSONError(c, http.StatusBadRequest, appErr.Message, appErr.Err)
	case models.ErrorKindNotFound:
		SendJSONError(c, http.StatusNotFound, appErr.Message, appErr.Err)
	case models.ErrorKindState, models.ErrorKindConflict:
		SendJSONError(c, http.StatusConflict, appErr.Message, appErr.Err)
	default:
		SendJSONError(c, http.StatusInternalServerError, "", err)
	}
}

// FormatTime renders timestamps the way the API has always shown them.
func FormatTime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}
