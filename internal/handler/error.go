package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"buyer-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	notFoundMessage    = "The resource you are requesting does not exist"
	serverErrorMessage = "A server problem has occurred"
)

// errNotFound marks a documented-route lookup miss
var errNotFound = echo.NewHTTPError(http.StatusNotFound, notFoundMessage)

// HTTPErrorHandler maps escaped errors onto the API error envelope
// {"status": code, "message": msg}. A 404 outside the documented /api routes
// redirects to the API documentation instead.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := serverErrorMessage

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Code == http.StatusNotFound && !strings.HasPrefix(c.Request().URL.Path, "/api/") {
			_ = c.Redirect(http.StatusFound, "/api/doc")
			return
		}
		status = httpErr.Code
		message = fmt.Sprintf("%v", httpErr.Message)
		if status == http.StatusNotFound {
			message = notFoundMessage
		}
	} else {
		logger.FromContext(c).Error("Unhandled error", zap.Error(err))
	}

	_ = c.JSON(status, echo.Map{
		"status":  status,
		"message": message,
	})
}
