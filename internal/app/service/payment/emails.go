package payment

import (
	"fmt"

	"github.com/espacionido/nido-backend/internal/models"
	"github.com/espacionido/nido-backend/internal/platform/mailer"
)

func operatorNewRequestEmail(operator string, req *models.PaymentRequest) mailer.Message {
	return mailer.Message{
		To:      operator,
		Subject: fmt.Sprintf("Nueva solicitud de pago - %s", req.UserName),
		TextContent: fmt.Sprintf(
			"Solicitud de pago recibida.\n\nCliente: %s (%s)\nPlan: %s\nPeríodo: %s\nMonto: $%.2f\n\nRevisala desde el panel de administración.",
			req.UserName, req.UserEmail, req.PlanName, req.Period, req.Amount),
	}
}

func approvalEmail(req *models.PaymentRequest, nextPeriodLabel string) mailer.Message {
	return mailer.Message{
		To:      req.UserEmail,
		ToName:  req.UserName,
		Subject: fmt.Sprintf("Pago aprobado - %s", req.Period),
		HTMLContent: fmt.Sprintf(
			`<p>Hola %s,</p><p>Tu pago de <b>$%.2f</b> por el período <b>%s</b> fue aprobado.</p><p>Tu próximo período de pago es <b>%s</b>.</p><p>¡Gracias!</p>`,
			req.UserName, req.Amount, req.Period, nextPeriodLabel),
		TextContent: fmt.Sprintf(
			"Hola %s,\n\nTu pago de $%.2f por el período %s fue aprobado.\nTu próximo período de pago es %s.\n\n¡Gracias!",
			req.UserName, req.Amount, req.Period, nextPeriodLabel),
	}
}

func rejectionEmail(req *models.PaymentRequest) mailer.Message {
	return mailer.Message{
		To:      req.UserEmail,
		ToName:  req.UserName,
		Subject: fmt.Sprintf("Pago rechazado - %s", req.Period),
		TextContent: fmt.Sprintf(
			"Hola %s,\n\nTu pago por el período %s fue rechazado.\nMotivo: %s\n\nPodés volver a enviar la solicitud desde tu panel.",
			req.UserName, req.Period, req.RejectionReason),
	}
}
