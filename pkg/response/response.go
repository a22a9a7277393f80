package response

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	pkgErrors "localization-srv/pkg/errors"
)

// Reporter receives unexpected failures. pkg/discord satisfies it.
type Reporter interface {
	ReportBug(ctx context.Context, message string) error
}

// OK writes a 200 response wrapping data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: CodeSuccess,
		Message:   MessageSuccess,
		Data:      data,
	})
}

// Error writes err as a JSON error response. HTTPErrors keep their status and code,
// binding errors become 400 with field details, and anything else is a 500 that is reported.
func Error(c *gin.Context, err error, reporter Reporter) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
		return
	}

	if fields, ok := pkgErrors.ValidationFields(err); ok {
		c.JSON(http.StatusBadRequest, Resp{
			ErrorCode: CodeValidation,
			Message:   MessageValidation,
			Errors:    fields,
		})
		return
	}

	report(c, reporter, fmt.Sprintf("%s %s: %v", c.Request.Method, c.FullPath(), err))
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: CodeInternalError,
		Message:   MessageInternalError,
	})
}

// PanicError answers a recovered panic with a 500 and reports the stack.
func PanicError(c *gin.Context, recovered any, reporter Reporter) {
	report(c, reporter, fmt.Sprintf("panic on %s %s: %v\n%s", c.Request.Method, c.FullPath(), recovered, debug.Stack()))
	c.AbortWithStatusJSON(http.StatusInternalServerError, Resp{
		ErrorCode: CodeInternalError,
		Message:   MessageInternalError,
	})
}

func report(c *gin.Context, reporter Reporter, message string) {
	if reporter == nil {
		return
	}
	// The webhook call must not hold up the response.
	ctx := context.WithoutCancel(c.Request.Context())
	go func() {
		_ = reporter.ReportBug(ctx, message)
	}()
}
