package intake

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"solbridge/models"
)

// DefaultIntakeService wires the payload builder to the gateway.
type DefaultIntakeService struct {
	Gateway ClientGateway
	Logger  *zap.Logger
}

func (s *DefaultIntakeService) CreateClient(ctx context.Context, rec models.ClientRecord) (*CreateResult, error) {
	paymentType, err := ResolvePaymentType(rec.PaymentType)
	if err != nil {
		return nil, err
	}

	if err := validateRecord(rec); err != nil {
		return nil, err
	}

	profile := BuildProfile(rec, paymentType)

	s.Logger.Info("submitting client profile to IntakeQ",
		zap.String("responseId", rec.ResponseID),
		zap.String("paymentType", string(paymentType)),
		zap.Int("customFields", len(profile.CustomFields)),
		zap.Int("additionalInfoLength", len(profile.AdditionalInformation)),
	)

	return s.Gateway.CreateClient(ctx, profile, paymentType)
}

func (s *DefaultIntakeService) FindClientByEmail(ctx context.Context, email, rawPaymentType string) (json.RawMessage, error) {
	if strings.TrimSpace(email) == "" {
		return nil, newError(KindValidation, "email parameter is required")
	}
	paymentType, err := ResolvePaymentType(rawPaymentType)
	if err != nil {
		return nil, err
	}
	return s.Gateway.FindClients(ctx, email, paymentType)
}

// validateRecord enforces the presence precondition: an effective first
// name, a last name and an email. Anything else may be absent.
func validateRecord(rec models.ClientRecord) error {
	var missing []string
	if effectiveFirstName(rec) == "" {
		missing = append(missing, "first_name/preferred_name")
	}
	if strings.TrimSpace(rec.LastName) == "" {
		missing = append(missing, "last_name")
	}
	if strings.TrimSpace(rec.Email) == "" {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		return newError(KindValidation, "missing required fields: "+strings.Join(missing, ", "))
	}
	return nil
}
