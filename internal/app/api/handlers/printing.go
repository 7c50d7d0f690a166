package handlers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"

	mw "github.com/espacionido/nido-backend/internal/app/api/middleware"
	"github.com/espacionido/nido-backend/internal/app/service/printing"
	"github.com/espacionido/nido-backend/internal/models"
	"github.com/espacionido/nido-backend/pkg/response"
	"github.com/espacionido/nido-backend/pkg/types"
)

type createPrintRecordBody struct {
	// Sheets is bound as a float so a fractional value can be rejected
	// instead of silently truncated.
	Sheets float64 `json:"sheets"`
}

// @Summary      Record Print Usage
// @Description  Meters a print job at the configured price per sheet.
// @Tags         Printing
// @Accept       json
// @Produce      json
// @Param        request body createPrintRecordBody true "Sheets printed (integer 1-100)"
// @Success      200  {object}  response.APIResponse[models.PrintRecord]
// @Router       /api/v1/client/printing/records [post]
func ApiCreatePrintRecord(svc *printing.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body createPrintRecordBody
		if err := c.ShouldBindJSON(&body); err != nil {
			response.Fail(c, response.APIResponseCodeBadRequest, err.Error())
			return
		}
		if body.Sheets != math.Trunc(body.Sheets) {
			response.Fail(c, response.APIResponseCodeBadRequest, printing.ErrInvalidSheets.Error())
			return
		}

		claims := mw.ClaimsFrom(c)
		rec, err := svc.CreateRecord(c.Request.Context(), claims.ClientID, claims.UserID, int(body.Sheets))
		if err != nil {
			failFromErr(c, err)
			return
		}
		response.OK(c, rec)
	}
}

type listPrintRecordsResp struct {
	Records []*models.PrintRecord `json:"records"`
	Total   int64                 `json:"total,omitempty"`
}

// @Summary      List Own Print Records
// @Tags         Printing
// @Produce      json
// @Success      200  {object}  response.APIResponse[listPrintRecordsResp]
// @Router       /api/v1/client/printing/records [get]
func ApiListOwnPrintRecords(svc *printing.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := mw.ClaimsFrom(c)
		rows, err := svc.ListByClient(c.Request.Context(), claims.ClientID)
		if err != nil {
			failFromErr(c, err)
			return
		}
		response.OK(c, listPrintRecordsResp{Records: rows})
	}
}

// @Summary      List Print Records (Admin)
// @Tags         Admin
// @Produce      json
// @Param        status  query  string  false  "Filter by status (pending|paid)"
// @Param        from    query  int     false  "Pagination offset"
// @Param        size    query  int     false  "Page size"
// @Success      200  {object}  response.APIResponse[listPrintRecordsResp]
// @Router       /api/v1/admin/printing/records [get]
func ApiListPrintRecords(svc *printing.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		from, _ := strconv.Atoi(c.Query("from"))
		size, _ := strconv.Atoi(c.Query("size"))
		req := &printing.ListRecordsRequest{
			Status: types.PrintRecordStatus(c.Query("status")),
			From:   from,
			Size:   size,
		}
		res, err := svc.ListAll(c.Request.Context(), req)
		if err != nil {
			failFromErr(c, err)
			return
		}
		response.OK(c, listPrintRecordsResp{Records: res.Items, Total: res.Total})
	}
}

// @Summary      Mark Print Record Paid (Admin)
// @Tags         Admin
// @Produce      json
// @Param        id  path  string  true  "Record id"
// @Success      200  {object}  response.APIResponse[models.PrintRecord]
// @Router       /api/v1/admin/printing/records/{id}/pay [put]
func ApiPayPrintRecord(svc *printing.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := mw.ClaimsFrom(c)
		rec, err := svc.PayRecord(c.Request.Context(), c.Param("id"), claims.UserID)
		if err != nil {
			failFromErr(c, err)
			return
		}
		response.OK(c, rec)
	}
}

// @Summary      Get Printing Settings
// @Description  Public read; falls back to the default price when unset.
// @Tags         Printing
// @Produce      json
// @Success      200  {object}  response.APIResponse[models.PrintingSettings]
// @Router       /api/v1/printing/settings [get]
func ApiGetPrintingSettings(svc *printing.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, err := svc.GetSettings(c.Request.Context())
		if err != nil {
			failFromErr(c, err)
			return
		}
		response.OK(c, settings)
	}
}

type updateSettingsBody struct {
	PricePerSheet float64 `json:"price_per_sheet"`
}

// @Summary      Update Printing Settings (Admin)
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body updateSettingsBody true "New price per sheet (0 < p <= 1000)"
// @Success      200  {object}  response.APIResponse[models.PrintingSettings]
// @Router       /api/v1/admin/printing/settings [put]
func ApiUpdatePrintingSettings(svc *printing.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body updateSettingsBody
		if err := c.ShouldBindJSON(&body); err != nil {
			response.Fail(c, response.APIResponseCodeBadRequest, err.Error())
			return
		}
		claims := mw.ClaimsFrom(c)
		settings, err := svc.UpdateSettings(c.Request.Context(), body.PricePerSheet, claims.UserID)
		if err != nil {
			failFromErr(c, err)
			return
		}
		response.OK(c, settings)
	}
}

func RegisterClientPrintingRoutes(r gin.IRouter, svc *printing.Service) {
	r.POST("/printing/records", ApiCreatePrintRecord(svc))
	r.GET("/printing/records", ApiListOwnPrintRecords(svc))
}

func RegisterAdminPrintingRoutes(r gin.IRouter, svc *printing.Service) {
	r.GET("/printing/records", ApiListPrintRecords(svc))
	r.PUT("/printing/records/:id/pay", ApiPayPrintRecord(svc))
	r.PUT("/printing/settings", ApiUpdatePrintingSettings(svc))
}

func RegisterPublicPrintingRoutes(r gin.IRouter, svc *printing.Service) {
	r.GET("/printing/settings", ApiGetPrintingSettings(svc))
}
