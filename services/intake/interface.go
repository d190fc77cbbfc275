package intake

import (
	"context"
	"encoding/json"

	"solbridge/models"
)

// IntakeService is the inbound surface the handlers talk to.
type IntakeService interface {
	// CreateClient validates a submission, builds the IntakeQ profile and
	// forwards it. Validation failures never reach the provider.
	CreateClient(ctx context.Context, rec models.ClientRecord) (*CreateResult, error)
	// FindClientByEmail looks up existing IntakeQ clients for an email.
	FindClientByEmail(ctx context.Context, email, paymentType string) (json.RawMessage, error)
}

// ClientGateway is the outbound IntakeQ surface, satisfied by *Gateway and
// stubbed in handler tests.
type ClientGateway interface {
	CreateClient(ctx context.Context, profile models.ClientProfile, paymentType PaymentType) (*CreateResult, error)
	FindClients(ctx context.Context, email string, paymentType PaymentType) (json.RawMessage, error)
}
