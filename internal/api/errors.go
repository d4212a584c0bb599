package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-forum-api/internal/apperr"
	"github.com/news-forum-api/internal/database"
	"github.com/rs/zerolog"
)

const msgEndpointNotFound = "Endpoint Invalid/Not Found"

// errorStage inspects an error and, if it recognises it, returns the status
// and client message to render.
type errorStage func(err error) (status int, msg string, ok bool)

// errorStages run in order; the last one always matches.
var errorStages = []errorStage{
	formatStage,
	domainStage,
	fallbackStage,
}

// formatStage catches identifiers the database could not cast, e.g. "abc"
// where an integer id is expected.
func formatStage(err error) (int, string, bool) {
	if database.IsFormatViolation(err) || apperr.IsKind(err, apperr.KindFormat) {
		return http.StatusBadRequest, apperr.FormatMessage, true
	}
	return 0, "", false
}

// domainStage renders errors raised deliberately by services and handlers.
func domainStage(err error) (int, string, bool) {
	appErr, ok := apperr.As(err)
	if !ok || appErr.Kind == apperr.KindInternal {
		return 0, "", false
	}
	return appErr.Status(), appErr.ClientMessage(), true
}

func fallbackStage(err error) (int, string, bool) {
	return http.StatusInternalServerError, apperr.InternalMessage, true
}

// classifyError maps any error to a status and a client-safe message.
func classifyError(err error) (int, string) {
	for _, stage := range errorStages {
		if status, msg, ok := stage(err); ok {
			return status, msg
		}
	}
	return http.StatusInternalServerError, apperr.InternalMessage
}

// errorMiddleware renders the last error recorded by a handler.
// Handlers report failures with c.Error and return without writing.
func errorMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status, msg := classifyError(err)
		if status >= http.StatusInternalServerError {
			log.Error().
				Err(err).
				Str("request_id", requestID(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Msg("Unhandled error")
		}

		c.JSON(status, gin.H{"msg": msg})
	}
}

// notFoundHandler answers any route without a registered handler
func notFoundHandler(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"msg": msgEndpointNotFound})
}
