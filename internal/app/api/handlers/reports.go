package handlers

import (
	"github.com/gin-gonic/gin"

	mw "github.com/espacionido/nido-backend/internal/app/api/middleware"
	"github.com/espacionido/nido-backend/internal/app/service/report"
	"github.com/espacionido/nido-backend/internal/models"
	"github.com/espacionido/nido-backend/pkg/response"
	"github.com/espacionido/nido-backend/pkg/types"
)

type createReportResp struct {
	ReportID string `json:"report_id"`
}

// @Summary      Create Incident Report
// @Tags         Reports
// @Accept       json
// @Produce      json
// @Param        request body report.CreateRequest true "Report"
// @Success      200  {object}  response.APIResponse[createReportResp]
// @Router       /api/v1/client/reports [post]
func ApiCreateReport(svc *report.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req report.CreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Fail(c, response.APIResponseCodeBadRequest, err.Error())
			return
		}
		claims := mw.ClaimsFrom(c)
		r, err := svc.Create(c.Request.Context(), claims.ClientID, claims.UserID, &req)
		if err != nil {
			failFromErr(c, err)
			return
		}
		response.OK(c, createReportResp{ReportID: r.ID})
	}
}

type listReportsResp struct {
	Reports []*models.Report `json:"reports"`
}

// @Summary      List Own Reports
// @Tags         Reports
// @Produce      json
// @Success      200  {object}  response.APIResponse[listReportsResp]
// @Router       /api/v1/client/reports [get]
func ApiListOwnReports(svc *report.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := mw.ClaimsFrom(c)
		rows, err := svc.ListByClient(c.Request.Context(), claims.ClientID)
		if err != nil {
			failFromErr(c, err)
			return
		}
		response.OK(c, listReportsResp{Reports: rows})
	}
}

// @Summary      List Reports (Admin)
// @Tags         Admin
// @Produce      json
// @Param        status  query  string  false  "Filter by status"
// @Success      200  {object}  response.APIResponse[listReportsResp]
// @Router       /api/v1/admin/reports [get]
func ApiListReports(svc *report.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := svc.List(c.Request.Context(), types.ReportStatus(c.Query("status")))
		if err != nil {
			failFromErr(c, err)
			return
		}
		response.OK(c, listReportsResp{Reports: rows})
	}
}

type updateReportBody struct {
	Status types.ReportStatus `json:"status"`
}

// @Summary      Update Report Status (Admin)
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        id      path  string            true  "Report id"
// @Param        request body  updateReportBody  true  "New status"
// @Success      200  {object}  response.APIResponse[any]
// @Router       /api/v1/admin/reports/{id} [patch]
func ApiUpdateReportStatus(svc *report.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body updateReportBody
		if err := c.ShouldBindJSON(&body); err != nil {
			response.Fail(c, response.APIResponseCodeBadRequest, err.Error())
			return
		}
		claims := mw.ClaimsFrom(c)
		if err := svc.UpdateStatus(c.Request.Context(), c.Param("id"), body.Status, claims.UserID); err != nil {
			failFromErr(c, err)
			return
		}
		response.OK[any](c, nil)
	}
}

func RegisterClientReportRoutes(r gin.IRouter, svc *report.Service) {
	r.POST("/reports", ApiCreateReport(svc))
	r.GET("/reports", ApiListOwnReports(svc))
}

func RegisterAdminReportRoutes(r gin.IRouter, svc *report.Service) {
	r.GET("/reports", ApiListReports(svc))
	r.PATCH("/reports/:id", ApiUpdateReportStatus(svc))
}
