package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/espacionido/nido-backend/internal/app/service/announcement"
	clientsvc "github.com/espacionido/nido-backend/internal/app/service/client"
	"github.com/espacionido/nido-backend/internal/app/service/payment"
	"github.com/espacionido/nido-backend/internal/app/service/printing"
	"github.com/espacionido/nido-backend/internal/app/service/report"
	"github.com/espacionido/nido-backend/pkg/response"
)

// failFromErr maps service sentinel errors to the response taxonomy; anything
// unmatched is an internal error.
func failFromErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, payment.ErrMissingFields),
		errors.Is(err, printing.ErrInvalidSheets),
		errors.Is(err, printing.ErrInvalidPrice),
		errors.Is(err, report.ErrInvalidReport),
		errors.Is(err, report.ErrInvalidImage),
		errors.Is(err, report.ErrInvalidStatus),
		errors.Is(err, clientsvc.ErrInvalidStatus),
		errors.Is(err, announcement.ErrInvalidAnnouncement):
		response.Fail(c, response.APIResponseCodeBadRequest, err.Error())
	case errors.Is(err, payment.ErrRequestNotFound),
		errors.Is(err, printing.ErrRecordNotFound),
		errors.Is(err, report.ErrReportNotFound),
		errors.Is(err, clientsvc.ErrClientNotFound),
		errors.Is(err, clientsvc.ErrPlanNotFound),
		errors.Is(err, announcement.ErrAnnouncementNotFound):
		response.Fail(c, response.APIResponseCodeNotFound, err.Error())
	case errors.Is(err, payment.ErrRequestAlreadyProcessed),
		errors.Is(err, payment.ErrDuplicatePending),
		errors.Is(err, printing.ErrRecordAlreadyPaid):
		response.Fail(c, response.APIResponseCodeConflict, err.Error())
	default:
		response.Fail(c, response.APIResponseCodeError, err.Error())
	}
}
