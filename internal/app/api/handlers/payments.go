package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	mw "github.com/espacionido/nido-backend/internal/app/api/middleware"
	"github.com/espacionido/nido-backend/internal/app/service/payment"
	"github.com/espacionido/nido-backend/internal/models"
	"github.com/espacionido/nido-backend/pkg/response"
	"github.com/espacionido/nido-backend/pkg/types"
)

type createPaymentRequestResp struct {
	RequestID string `json:"request_id"`
}

// @Summary      Create Payment Request
// @Description  Submits a membership/printing payment request for admin review.
// @Tags         Payments
// @Accept       json
// @Produce      json
// @Param        request body payment.CreateRequest true "Payment request"
// @Success      200  {object}  response.APIResponse[createPaymentRequestResp]
// @Router       /api/v1/client/payment-requests [post]
func ApiCreatePaymentRequest(svc *payment.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req payment.CreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Fail(c, response.APIResponseCodeBadRequest, err.Error())
			return
		}

		// The token is authoritative for identity fields.
		claims := mw.ClaimsFrom(c)
		if claims != nil {
			if claims.ClientID != "" {
				req.ClientID = claims.ClientID
			}
			req.UserID = claims.UserID
			if req.UserEmail == "" {
				req.UserEmail = claims.Email
			}
			if req.UserName == "" {
				req.UserName = claims.Name
			}
		}

		pr, err := svc.Create(c.Request.Context(), &req)
		if err != nil {
			failFromErr(c, err)
			return
		}
		response.OK(c, createPaymentRequestResp{RequestID: pr.ID})
	}
}

type listPaymentRequestsResp struct {
	Requests []*models.PaymentRequest `json:"requests"`
}

// @Summary      List Own Payment Requests
// @Tags         Payments
// @Produce      json
// @Success      200  {object}  response.APIResponse[listPaymentRequestsResp]
// @Router       /api/v1/client/payment-requests [get]
func ApiListOwnPaymentRequests(svc *payment.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := mw.ClaimsFrom(c)
		reqs, err := svc.ListByClient(c.Request.Context(), claims.ClientID)
		if err != nil {
			failFromErr(c, err)
			return
		}
		response.OK(c, listPaymentRequestsResp{Requests: reqs})
	}
}

// @Summary      List Pending Payment Requests (Admin)
// @Tags         Admin
// @Produce      json
// @Success      200  {object}  response.APIResponse[listPaymentRequestsResp]
// @Router       /api/v1/admin/payment-requests [get]
func ApiListPendingPaymentRequests(svc *payment.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqs, err := svc.ListPending(c.Request.Context())
		if err != nil {
			failFromErr(c, err)
			return
		}
		response.OK(c, listPaymentRequestsResp{Requests: reqs})
	}
}

type decidePaymentRequestBody struct {
	Action string `json:"action"`
	Reason string `json:"reason"`
}

type decidePaymentRequestResp struct {
	Request         *models.PaymentRequest `json:"request"`
	NextPeriodLabel string                 `json:"next_period_label,omitempty"`
	EmailOutcome    types.SendOutcome      `json:"email_outcome"`
}

// @Summary      Approve or Reject Payment Request (Admin)
// @Description  Runs the pending→approved/rejected transition with its side effects.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        id      path  string                    true  "Request id"
// @Param        request body  decidePaymentRequestBody  true  "Decision"
// @Success      200  {object}  response.APIResponse[decidePaymentRequestResp]
// @Router       /api/v1/admin/payment-requests/{id} [patch]
func ApiDecidePaymentRequest(svc *payment.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body decidePaymentRequestBody
		if err := c.ShouldBindJSON(&body); err != nil {
			response.Fail(c, response.APIResponseCodeBadRequest, err.Error())
			return
		}
		id := c.Param("id")
		claims := mw.ClaimsFrom(c)

		switch body.Action {
		case "approve":
			res, err := svc.Approve(c.Request.Context(), id, claims.UserID)
			if err != nil {
				failFromErr(c, err)
				return
			}
			response.OK(c, decidePaymentRequestResp{
				Request:         res.Request,
				NextPeriodLabel: res.NextPeriodLabel,
				EmailOutcome:    res.EmailOutcome,
			})
		case "reject":
			res, err := svc.Reject(c.Request.Context(), id, claims.UserID, body.Reason)
			if err != nil {
				failFromErr(c, err)
				return
			}
			response.OK(c, decidePaymentRequestResp{
				Request:      res.Request,
				EmailOutcome: res.EmailOutcome,
			})
		default:
			response.Fail(c, response.APIResponseCodeBadRequest, "action must be approve or reject")
		}
	}
}

type historyItem struct {
	ID          string  `json:"id"`
	Amount      float64 `json:"amount"`
	PlanName    string  `json:"plan_name"`
	Period      string  `json:"period"`
	Status      string  `json:"status"`
	PaymentDate string  `json:"payment_date"`
}

// @Summary      List Own Payment History
// @Tags         Payments
// @Produce      json
// @Success      200  {object}  response.APIResponse[[]historyItem]
// @Router       /api/v1/client/payment-history [get]
func ApiListOwnPaymentHistory(svc *payment.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := mw.ClaimsFrom(c)
		rows, err := svc.HistoryByClient(c.Request.Context(), claims.ClientID)
		if err != nil {
			failFromErr(c, err)
			return
		}
		items := lo.Map(rows, func(h *models.PaymentHistory, _ int) historyItem {
			return historyItem{
				ID:          h.ID,
				Amount:      h.Amount,
				PlanName:    h.PlanName,
				Period:      h.Period,
				Status:      h.Status,
				PaymentDate: h.PaymentDate.Format("2006-01-02"),
			}
		})
		response.OK(c, items)
	}
}

type createPreferenceBody struct {
	PlanName string  `json:"plan_name"`
	Period   string  `json:"period"`
	Amount   float64 `json:"amount"`
}

// @Summary      Create Checkout Preference
// @Description  Opens a hosted-checkout preference at the payment gateway.
// @Tags         Payments
// @Accept       json
// @Produce      json
// @Param        request body createPreferenceBody true "Preference"
// @Success      200  {object}  response.APIResponse[gateway.Preference]
// @Router       /api/v1/client/payments/preference [post]
func ApiCreatePreference(svc *payment.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body createPreferenceBody
		if err := c.ShouldBindJSON(&body); err != nil {
			response.Fail(c, response.APIResponseCodeBadRequest, err.Error())
			return
		}
		claims := mw.ClaimsFrom(c)
		pref, err := svc.CreatePreference(c.Request.Context(),
			claims.ClientID, claims.Email, body.PlanName, body.Period, body.Amount)
		if err != nil {
			failFromErr(c, err)
			return
		}
		response.OK(c, pref)
	}
}

func RegisterClientPaymentRoutes(r gin.IRouter, svc *payment.Service) {
	r.POST("/payment-requests", ApiCreatePaymentRequest(svc))
	r.GET("/payment-requests", ApiListOwnPaymentRequests(svc))
	r.GET("/payment-history", ApiListOwnPaymentHistory(svc))
	r.POST("/payments/preference", ApiCreatePreference(svc))
}

func RegisterAdminPaymentRoutes(r gin.IRouter, svc *payment.Service) {
	r.GET("/payment-requests", ApiListPendingPaymentRequests(svc))
	r.PATCH("/payment-requests/:id", ApiDecidePaymentRequest(svc))
}
