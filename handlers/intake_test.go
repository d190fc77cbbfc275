package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solbridge/models"
	"solbridge/services/intake"
)

// stubIntakeService returns canned results for handler tests.
type stubIntakeService struct {
	createResult *intake.CreateResult
	createErr    error
	findResult   json.RawMessage
	findErr      error
}

func (s *stubIntakeService) CreateClient(_ context.Context, _ models.ClientRecord) (*intake.CreateResult, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.createResult, nil
}

func (s *stubIntakeService) FindClientByEmail(_ context.Context, _, _ string) (json.RawMessage, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.findResult, nil
}

func newTestRouter(svc intake.IntakeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ih := NewIntakeHandler(svc)
	r.POST("/intakeq/create-client", ih.CreateClientHandler)
	r.GET("/intakeq/client", ih.GetClientHandler)
	r.POST("/intakeq_forms/mandatory_form", MandatoryFormHandler)
	return r
}

func TestCreateClientHandlerSuccess(t *testing.T) {
	svc := &stubIntakeService{createResult: &intake.CreateResult{
		ClientID:  "c1",
		IntakeURL: "https://intakeq.com/new/c1",
		Raw:       json.RawMessage(`{"ClientId": "c1"}`),
	}}
	router := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/intakeq/create-client",
		strings.NewReader(`{"first_name": "Jo", "last_name": "Lee", "email": "jo@x.com"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "c1", body["client_id"])
	assert.Equal(t, "https://intakeq.com/new/c1", body["intake_url"])
	assert.Contains(t, body, "intakeq_response")
}

func TestCreateClientHandlerValidationError(t *testing.T) {
	svc := &stubIntakeService{createErr: &intake.Error{
		Kind:    intake.KindValidation,
		Message: "missing required fields: email",
	}}
	router := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/intakeq/create-client", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "missing required fields")
}

func TestCreateClientHandlerErrorMapping(t *testing.T) {
	cases := []struct {
		err  *intake.Error
		want int
	}{
		{&intake.Error{Kind: intake.KindTimeout, Message: "IntakeQ API request timed out"}, http.StatusGatewayTimeout},
		{&intake.Error{Kind: intake.KindConnection, Message: "failed to connect to IntakeQ"}, http.StatusBadGateway},
		{&intake.Error{Kind: intake.KindConfig, Message: "missing IntakeQ API key for payment type: insurance"}, http.StatusInternalServerError},
		{&intake.Error{Kind: intake.KindAPI, Message: "IntakeQ API error: 503", ProviderStatus: 503, Detail: "overloaded"}, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		router := newTestRouter(&stubIntakeService{createErr: tc.err})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/intakeq/create-client", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, tc.want, w.Code, "kind %s", tc.err.Kind)
		assert.Contains(t, w.Body.String(), tc.err.Message, "kind %s", tc.err.Kind)
	}
}

func TestCreateClientHandlerProviderMessageEmbedded(t *testing.T) {
	router := newTestRouter(&stubIntakeService{createErr: &intake.Error{
		Kind:           intake.KindAPI,
		Message:        "IntakeQ API error: 503",
		ProviderStatus: 503,
		Detail:         "Service Unavailable",
	}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/intakeq/create-client", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Service Unavailable")
}

func TestCreateClientHandlerRejectsBadJSON(t *testing.T) {
	router := newTestRouter(&stubIntakeService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/intakeq/create-client", strings.NewReader(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetClientHandler(t *testing.T) {
	router := newTestRouter(&stubIntakeService{findResult: json.RawMessage(`[{"ClientId": "c1"}]`)})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/intakeq/client?email=jo@x.com&payment_type=insurance", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"ClientId": "c1"}]`, w.Body.String())
}

func TestGetClientHandlerMissingEmail(t *testing.T) {
	router := newTestRouter(&stubIntakeService{findErr: &intake.Error{
		Kind:    intake.KindValidation,
		Message: "email parameter is required",
	}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/intakeq/client", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
