package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sports-academy/backend/internal/handlers"
	"github.com/sports-academy/backend/internal/payments"
)

type fakeIntents struct {
	gotPrice float64
	secret   string
	err      error
}

func (f *fakeIntents) CreateIntent(ctx context.Context, price float64) (string, error) {
	f.gotPrice = price
	return f.secret, f.err
}

func TestCreatePaymentIntent(t *testing.T) {
	intents := &fakeIntents{secret: "pi_123_secret_456"}
	h := handlers.NewPaymentHandler(intents)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/create_payment_intent", strings.NewReader(`{"price":20.00}`))

	h.CreatePaymentIntent(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 20.00, intents.gotPrice)
	assert.Equal(t, int64(2000), payments.MinorUnits(intents.gotPrice))

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "pi_123_secret_456", body["clientSecret"])
}

func TestCreatePaymentIntent_UpstreamFailure(t *testing.T) {
	intents := &fakeIntents{err: errors.New("stripe is down")}
	h := handlers.NewPaymentHandler(intents)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/create_payment_intent", strings.NewReader(`{"price":20.00}`))

	h.CreatePaymentIntent(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCreatePaymentIntent_BadPayload(t *testing.T) {
	h := handlers.NewPaymentHandler(&fakeIntents{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/create_payment_intent", strings.NewReader(`{"price":`))

	h.CreatePaymentIntent(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
