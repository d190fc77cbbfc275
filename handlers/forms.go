package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"solbridge/models"
	"solbridge/services/intake"
	"solbridge/utils"
)

// MandatoryFormHandler is the legacy form-notification endpoint. It only
// validates the request and acknowledges it; no call leaves the service.
// The client is addressed either by IntakeQ client id or by name and email.
func MandatoryFormHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.MandatoryFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	var missing []string
	if req.PaymentType == "" {
		missing = append(missing, "payment_type")
	}
	if req.ClientID == "" {
		if req.ClientName == "" {
			missing = append(missing, "client_id or client_name")
		}
		if req.ClientEmail == "" {
			missing = append(missing, "client_email")
		}
	}
	if len(missing) > 0 {
		utils.JSONError(c, http.StatusBadRequest, "missing required fields", strings.Join(missing, ", "))
		return
	}

	if _, err := intake.ResolvePaymentType(req.PaymentType); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "unknown payment type", req.PaymentType)
		return
	}

	ack := models.MandatoryFormResponse{
		IntakeID: uuid.New().String(),
		ClientID: req.ClientID,
		Status:   "sent",
	}
	if req.ClientID != "" {
		ack.IntakeURL = fmt.Sprintf("https://intakeq.com/new/%s", req.ClientID)
	}

	logger.Info("mandatory form acknowledged",
		zap.String("intakeId", ack.IntakeID),
		zap.String("clientId", req.ClientID),
		zap.String("paymentType", req.PaymentType),
	)

	c.JSON(http.StatusOK, ack)
}
