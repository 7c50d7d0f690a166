package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/espacionido/nido-backend/internal/app/service/payment"
	"github.com/espacionido/nido-backend/internal/platform/gateway"
	"github.com/espacionido/nido-backend/pkg/logctx"
	"github.com/espacionido/nido-backend/pkg/response"
	"go.uber.org/zap"
)

type mercadoPagoNotification struct {
	Type string `json:"type"`
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

type webhookResp struct {
	Received bool `json:"received"`
}

// @Summary      MercadoPago Webhook
// @Description  Handles payment notifications. The delivery is authenticated by the x-signature HMAC, not a bearer token.
// @Tags         Webhook
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.APIResponse[webhookResp]
// @Router       /api/v1/webhooks/mercadopago [post]
func ApiMercadoPagoWebhook(svc *payment.Service, gw *gateway.Client, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var n mercadoPagoNotification
		if err := c.ShouldBindJSON(&n); err != nil {
			response.Fail(c, response.APIResponseCodeBadRequest, err.Error())
			return
		}

		if err := gw.VerifyWebhookSignature(
			c.GetHeader("x-signature"),
			c.GetHeader("x-request-id"),
			n.Data.ID,
		); err != nil {
			logctx.FromGin(c, log).Warnw("webhook signature rejected", "err", err)
			response.Fail(c, response.APIResponseCodeUnauthorized, "invalid signature")
			return
		}

		if n.Type != "payment" {
			// Other topics are acknowledged without side effects.
			response.OK(c, webhookResp{Received: true})
			return
		}

		if err := svc.ProcessGatewayPayment(c.Request.Context(), n.Data.ID); err != nil {
			logctx.FromGin(c, log).Errorw("webhook processing failed", "payment_id", n.Data.ID, "err", err)
			response.Fail(c, response.APIResponseCodeError, err.Error())
			return
		}
		response.OK(c, webhookResp{Received: true})
	}
}

func RegisterWebhookRoutes(r gin.IRouter, svc *payment.Service, gw *gateway.Client, log *zap.SugaredLogger) {
	r.POST("/mercadopago", ApiMercadoPagoWebhook(svc, gw, log))
}
