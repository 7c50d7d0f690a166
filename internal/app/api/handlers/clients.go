package handlers

import (
	"github.com/gin-gonic/gin"

	mw "github.com/espacionido/nido-backend/internal/app/api/middleware"
	clientsvc "github.com/espacionido/nido-backend/internal/app/service/client"
	"github.com/espacionido/nido-backend/internal/models"
	"github.com/espacionido/nido-backend/pkg/response"
	"github.com/espacionido/nido-backend/pkg/types"
)

type listClientsResp struct {
	Clients []*models.Client `json:"clients"`
}

// @Summary      List Clients (Admin)
// @Tags         Admin
// @Produce      json
// @Success      200  {object}  response.APIResponse[listClientsResp]
// @Router       /api/v1/admin/clients [get]
func ApiListClients(svc *clientsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := svc.List(c.Request.Context())
		if err != nil {
			failFromErr(c, err)
			return
		}
		response.OK(c, listClientsResp{Clients: rows})
	}
}

type updateClientStatusBody struct {
	Status types.ClientStatus `json:"status"`
}

// @Summary      Update Client Status (Admin)
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        id      path  string                  true  "Client id"
// @Param        request body  updateClientStatusBody  true  "New status"
// @Success      200  {object}  response.APIResponse[any]
// @Router       /api/v1/admin/clients/{id}/status [put]
func ApiUpdateClientStatus(svc *clientsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body updateClientStatusBody
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

type changeClientPlanBody struct {
	PlanID string `json:"plan_id"`
}

type changeClientPlanResp struct {
	Plan *models.MembershipPlan `json:"plan"`
}

// @Summary      Change Client Plan (Admin)
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        id      path  string                true  "Client id"
// @Param        request body  changeClientPlanBody  true  "New plan"
// @Success      200  {object}  response.APIResponse[changeClientPlanResp]
// @Router       /api/v1/admin/clients/{id}/plan [put]
func ApiChangeClientPlan(svc *clientsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body changeClientPlanBody
		if err := c.ShouldBindJSON(&body); err != nil {
			response.Fail(c, response.APIResponseCodeBadRequest, err.Error())
			return
		}
		if body.PlanID == "" {
			response.Fail(c, response.APIResponseCodeBadRequest, "plan_id is required")
			return
		}
		claims := mw.ClaimsFrom(c)
		plan, err := svc.ChangePlan(c.Request.Context(), c.Param("id"), body.PlanID, claims.UserID)
		if err != nil {
			failFromErr(c, err)
			return
		}
		response.OK(c, changeClientPlanResp{Plan: plan})
	}
}

func RegisterAdminClientRoutes(r gin.IRouter, svc *clientsvc.Service) {
	r.GET("/clients", ApiListClients(svc))
	r.PUT("/clients/:id/status", ApiUpdateClientStatus(svc))
	r.PUT("/clients/:id/plan", ApiChangeClientPlan(svc))
}
