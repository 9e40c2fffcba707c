package web

import (
	"errors"
	"net/http"

	"gitee.com/flycash/campaign-platform/internal/errs"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// Result is the JSON envelope of every API response.
type Result struct {
	Msg  string `json:"msg,omitempty"`
	Data any    `json:"data,omitempty"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Result{Data: data})
}

// Error maps err to an HTTP status. Unknown errors are logged and reported as 500.
func Error(c *gin.Context, err error) {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		elog.DefaultLogger.Error("request failed",
			elog.String("path", c.FullPath()),
			elog.FieldErr(err))
	}
	c.AbortWithStatusJSON(status, Result{Msg: err.Error()})
}

func StatusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrRejected), errors.Is(err, errs.ErrInvalidParameter):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrJobNotFound),
		errors.Is(err, errs.ErrContactNotFound),
		errors.Is(err, errs.ErrTemplateNotFound),
		errors.Is(err, errs.ErrDraftNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrJobFiring):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
