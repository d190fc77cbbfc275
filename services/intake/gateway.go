package intake

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"solbridge/models"
)

const (
	// DefaultBaseURL is IntakeQ's production API root.
	DefaultBaseURL = "https://intakeq.com/api/v1"

	// Client creation is noticeably slower than a lookup on IntakeQ's side,
	// so the two operations get separate budgets.
	DefaultCreateTimeout = 60 * time.Second
	DefaultSearchTimeout = 30 * time.Second

	intakeURLFormat = "https://intakeq.com/new/%s"
)

// Credentials holds the per-practice API keys. Cash-pay and insurance
// clients live in separate IntakeQ practices, each with its own key.
type Credentials struct {
	CashPayKey   string
	InsuranceKey string
}

// GatewayConfig is injected into the gateway; the gateway never reads
// process environment itself.
type GatewayConfig struct {
	BaseURL       string
	Credentials   Credentials
	CreateTimeout time.Duration
	SearchTimeout time.Duration
}

// Gateway issues the outbound IntakeQ calls and classifies failures into the
// service error taxonomy. It holds no per-call state.
type Gateway struct {
	cfg          GatewayConfig
	logger       *zap.Logger
	createClient *http.Client
	searchClient *http.Client
}

func NewGateway(cfg GatewayConfig, logger *zap.Logger) *Gateway {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.CreateTimeout <= 0 {
		cfg.CreateTimeout = DefaultCreateTimeout
	}
	if cfg.SearchTimeout <= 0 {
		cfg.SearchTimeout = DefaultSearchTimeout
	}
	return &Gateway{
		cfg:          cfg,
		logger:       logger,
		createClient: &http.Client{Timeout: cfg.CreateTimeout},
		searchClient: &http.Client{Timeout: cfg.SearchTimeout},
	}
}

// CreateResult is the outcome of a successful client creation.
type CreateResult struct {
	ClientID  string
	IntakeURL string
	Raw       json.RawMessage
}

// apiKeyFor selects the credential for a payment category. A missing key is
// a configuration failure for this request, not something to retry.
func (g *Gateway) apiKeyFor(paymentType PaymentType) (string, error) {
	var key string
	switch paymentType {
	case PaymentInsurance:
		key = g.cfg.Credentials.InsuranceKey
	default:
		key = g.cfg.Credentials.CashPayKey
	}
	if key == "" {
		return "", &Error{
			Kind:    KindConfig,
			Message: fmt.Sprintf("missing IntakeQ API key for payment type: %s", paymentType),
		}
	}
	return key, nil
}

// CreateClient submits a client profile to IntakeQ. Any 2xx answer counts as
// created; the client id is taken from whichever id key the response carries.
func (g *Gateway) CreateClient(ctx context.Context, profile models.ClientProfile, paymentType PaymentType) (*CreateResult, error) {
	apiKey, err := g.apiKeyFor(paymentType)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(profile)
	if err != nil {
		return nil, &Error{Kind: KindValidation, Message: "failed to encode client profile", Detail: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.BaseURL+"/clients", bytes.NewReader(body))
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Message: "failed to build IntakeQ request", Detail: err.Error()}
	}
	req.Header.Set("X-API-KEY", apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.createClient.Do(req)
	if err != nil {
		return nil, classifyTransport("create client", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Message: "failed to read IntakeQ response", Detail: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apiError(resp.StatusCode, raw)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, &Error{
			Kind:    KindResponseFormat,
			Message: "IntakeQ returned an unparseable response",
			Detail:  string(raw),
		}
	}

	clientID := firstPresent(decoded, "ClientId", "ClientNumber", "Id", "id")
	intakeURL := valueString(decoded["IntakeUrl"])
	if intakeURL == "" && clientID != "" {
		intakeURL = fmt.Sprintf(intakeURLFormat, clientID)
	}

	g.logger.Info("IntakeQ client created",
		zap.String("clientId", clientID),
		zap.String("paymentType", string(paymentType)),
		zap.Int("status", resp.StatusCode),
	)

	return &CreateResult{ClientID: clientID, IntakeURL: intakeURL, Raw: raw}, nil
}

// FindClients looks clients up by email and returns the provider's raw
// result list.
func (g *Gateway) FindClients(ctx context.Context, email string, paymentType PaymentType) (json.RawMessage, error) {
	apiKey, err := g.apiKeyFor(paymentType)
	if err != nil {
		return nil, err
	}

	endpoint := g.cfg.BaseURL + "/clients?" + url.Values{"email": {email}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Message: "failed to build IntakeQ request", Detail: err.Error()}
	}
	req.Header.Set("X-API-KEY", apiKey)

	resp, err := g.searchClient.Do(req)
	if err != nil {
		return nil, classifyTransport("find clients", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Message: "failed to read IntakeQ response", Detail: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apiError(resp.StatusCode, raw)
	}

	g.logger.Info("IntakeQ client search completed",
		zap.String("email", email),
		zap.String("paymentType", string(paymentType)),
	)
	return json.RawMessage(raw), nil
}

// classifyTransport orders transport failures: timeout first, then
// unreachable host, then everything else.
func classifyTransport(op string, err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Kind: KindTimeout, Message: "IntakeQ API request timed out", Detail: op}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &Error{Kind: KindTimeout, Message: "IntakeQ API request timed out", Detail: op}
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return &Error{Kind: KindConnection, Message: "failed to connect to IntakeQ", Detail: err.Error()}
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &Error{Kind: KindConnection, Message: "failed to connect to IntakeQ", Detail: err.Error()}
	}
	return &Error{Kind: KindNetwork, Message: "IntakeQ API request failed", Detail: err.Error()}
}

// apiError extracts IntakeQ's structured message when the body parses,
// otherwise carries the raw text.
func apiError(status int, body []byte) *Error {
	detail := strings.TrimSpace(string(body))
	var structured struct {
		Message string `json:"Message"`
	}
	if err := json.Unmarshal(body, &structured); err == nil && structured.Message != "" {
		detail = structured.Message
	}
	return &Error{
		Kind:           KindAPI,
		Message:        fmt.Sprintf("IntakeQ API error: %d", status),
		ProviderStatus: status,
		Detail:         detail,
	}
}

func firstPresent(decoded map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		if s := valueString(decoded[k]); s != "" {
			return s
		}
	}
	return ""
}
