package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"solbridge/models"
	"solbridge/services/intake"
	"solbridge/utils"
)

// IntakeHandler exposes the client-creation and lookup endpoints.
type IntakeHandler struct {
	Service intake.IntakeService
}

func NewIntakeHandler(svc intake.IntakeService) *IntakeHandler {
	return &IntakeHandler{Service: svc}
}

// CreateClientHandler accepts a client-intake submission and forwards it to
// IntakeQ.
func (h *IntakeHandler) CreateClientHandler(c *gin.Context) {
	logger := getLogger(c)

	var rec models.ClientRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	logger.Info("client intake submission received",
		zap.String("responseId", rec.ResponseID),
		zap.String("paymentType", rec.PaymentType),
		zap.Bool("hasPhq9", len(rec.PHQ9Scores) > 0),
		zap.Bool("hasGad7", len(rec.GAD7Scores) > 0),
		zap.Bool("hasInsurance", rec.InsuranceProvider != ""),
	)

	result, err := h.Service.CreateClient(c.Request.Context(), rec)
	if err != nil {
		respondIntakeError(c, logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"client_id":        result.ClientID,
		"intake_url":       result.IntakeURL,
		"intakeq_response": json.RawMessage(result.Raw),
	})
}

// GetClientHandler looks up IntakeQ clients by email.
func (h *IntakeHandler) GetClientHandler(c *gin.Context) {
	logger := getLogger(c)

	email := c.Query("email")
	paymentType := c.Query("payment_type")

	clients, err := h.Service.FindClientByEmail(c.Request.Context(), email, paymentType)
	if err != nil {
		respondIntakeError(c, logger, err)
		return
	}

	c.Data(http.StatusOK, "application/json", clients)
}

// respondIntakeError is the single place service errors become caller-visible
// status codes.
func respondIntakeError(c *gin.Context, logger *zap.Logger, err error) {
	status := intake.HTTPStatus(err)

	var e *intake.Error
	if errors.As(err, &e) {
		logger.Warn("intake request failed",
			zap.String("kind", e.Kind.String()),
			zap.Int("providerStatus", e.ProviderStatus),
			zap.String("detail", e.Detail),
		)
		utils.JSONError(c, status, e.Message, e.Detail)
		return
	}

	logger.Error("intake request failed", zap.Error(err))
	utils.JSONError(c, status, "internal error", err.Error())
}
