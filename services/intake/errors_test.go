package intake

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		kind ErrorKind
		want int
	}{
		{KindConfig, http.StatusInternalServerError},
		{KindValidation, http.StatusBadRequest},
		{KindTimeout, http.StatusGatewayTimeout},
		{KindConnection, http.StatusBadGateway},
		{KindNetwork, http.StatusInternalServerError},
		{KindAPI, http.StatusInternalServerError},
		{KindResponseFormat, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, HTTPStatus(&Error{Kind: tc.kind}), "kind %s", tc.kind)
	}
}

func TestHTTPStatusUnknownError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("boom")))
}

func TestErrorMessage(t *testing.T) {
	e := &Error{Kind: KindAPI, Message: "IntakeQ API error: 503", Detail: "Service Unavailable"}
	assert.Equal(t, "IntakeQ API error: 503: Service Unavailable", e.Error())

	e = &Error{Kind: KindValidation, Message: "missing required fields: email"}
	assert.Equal(t, "missing required fields: email", e.Error())
}

func TestResolvePaymentType(t *testing.T) {
	pt, err := ResolvePaymentType("")
	require.NoError(t, err)
	assert.Equal(t, PaymentCashPay, pt)

	pt, err = ResolvePaymentType("cash_pay")
	require.NoError(t, err)
	assert.Equal(t, PaymentCashPay, pt)

	pt, err = ResolvePaymentType("insurance")
	require.NoError(t, err)
	assert.Equal(t, PaymentInsurance, pt)

	_, err = ResolvePaymentType("bitcoin")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}
