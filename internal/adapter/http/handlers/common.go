package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"fieldops/internal/adapter/http/middleware"
	"fieldops/internal/domain/access"
	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase"
	"fieldops/internal/usecase/interfaces"
	"fieldops/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const dateLayout = "2006-01-02"

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_INPUT", "Invalid request payload", http.StatusBadRequest)
	errInvalidUpload  = pkg.NewDomainErrorSimple("INVALID_UPLOAD", "Could not read the uploaded files", http.StatusBadRequest)
	errInvalidDate    = pkg.NewDomainErrorSimple("INVALID_DATE", "Dates must use YYYY-MM-DD or RFC 3339", http.StatusBadRequest)
)

// mapError classifies use-case and domain errors into HTTP errors.
func mapError(err error) *pkg.AppError {
	var denial *access.Denial
	switch {
	case errors.As(err, &denial):
		return pkg.NewDomainError("FORBIDDEN", denial.Reason, err, http.StatusForbidden)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainError("FORBIDDEN", "You do not have permission to perform this action", err, http.StatusForbidden)
	case errors.Is(err, usecase.ErrNotFound):
		return pkg.NewDomainError("NOT_FOUND", err.Error(), err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrUnauthorized):
		return pkg.NewDomainError("UNAUTHORIZED", err.Error(), err, http.StatusUnauthorized)
	case errors.Is(err, entities.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_TRANSITION", "The requested status change is not allowed", err, http.StatusConflict)
	case errors.Is(err, entities.ErrEntityLocked):
		return pkg.NewDomainError("LOCKED", "This record can no longer be modified", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrDuplicateIdentifier):
		return pkg.NewDomainError("DUPLICATE_IDENTIFIER", err.Error(), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrConcurrentStatusChange):
		return pkg.NewDomainError("CONCURRENT_UPDATE", err.Error(), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrConflict):
		return pkg.NewDomainError("CONFLICT", err.Error(), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrValidation),
		errors.Is(err, entities.ErrRejectionIncomplete),
		errors.Is(err, entities.ErrInvalidExpense),
		errors.Is(err, entities.ErrInvalidWorkTimeRange),
		errors.Is(err, entities.ErrMissingActor):
		return pkg.NewDomainError("VALIDATION_ERROR", err.Error(), err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func respondError(c *gin.Context, err error) {
	appErr := mapError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.WithError(err).WithField("path", c.FullPath()).Error("[http][handler] unexpected error")
		_ = c.Error(err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func respondAppError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// invalidInput reports a binding failure with the validator message when it is safe to show.
func invalidInput(c *gin.Context, err error) {
	msg := errInvalidPayload.Message
	if err != nil {
		msg = msg + ": " + err.Error()
	}
	respondAppError(c, pkg.NewDomainError(errInvalidPayload.Code, msg, err, http.StatusBadRequest))
}

func actor(c *gin.Context) access.Subject {
	return middleware.Subject(c)
}

func pageQuery(c *gin.Context) interfaces.PageQuery {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	return interfaces.PageQuery{Page: page, Limit: limit}.Normalize(interfaces.DefaultLimit)
}

func boolQuery(c *gin.Context, key string) *bool {
	raw, ok := c.GetQuery(key)
	if !ok {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}

// parseDate accepts a calendar day or a full timestamp. endOfDay moves a bare day to its last
// nanosecond so ranges are inclusive.
func parseDate(raw string, endOfDay bool) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(dateLayout, raw); err == nil {
		if endOfDay {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func dateRange(c *gin.Context) (usecase.DateRange, error) {
	from, err := parseDate(c.Query("start_date"), false)
	if err != nil {
		return usecase.DateRange{}, err
	}
	to, err := parseDate(c.Query("end_date"), true)
	if err != nil {
		return usecase.DateRange{}, err
	}
	var r usecase.DateRange
	if from != nil {
		r.From = *from
	}
	if to != nil {
		r.To = *to
	}
	return r, nil
}

// formFiles opens every file sent under the given multipart fields. The returned func closes
// them and must be called once the use case returns. Non-multipart requests yield no files.
func formFiles(c *gin.Context, fields ...string) ([]usecase.Upload, func(), error) {
	var opened []multipart.File
	closeAll := func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}
	if !strings.HasPrefix(c.ContentType(), "multipart/") {
		return nil, closeAll, nil
	}
	form, err := c.MultipartForm()
	if err != nil {
		return nil, closeAll, err
	}

	var uploads []usecase.Upload
	for _, field := range fields {
		for _, fh := range form.File[field] {
			f, err := fh.Open()
			if err != nil {
				closeAll()
				return nil, func() {}, err
			}
			opened = append(opened, f)
			uploads = append(uploads, usecase.Upload{
				Name:        fh.Filename,
				ContentType: fh.Header.Get("Content-Type"),
				Size:        fh.Size,
				Body:        f,
			})
		}
	}
	return uploads, closeAll, nil
}
