package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, handler http.HandlerFunc) (*ZiinaService, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	svc := NewZiinaService(ZiinaConfig{
		BaseURL: server.URL,
		APIKey:  "test-key",
	})
	return svc, server
}

func TestCreateIntent(t *testing.T) {
	var gotBody map[string]string
	var gotAuth string

	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]string{
			"id":          "pi_123",
			"payment_url": "https://pay.example/pi_123",
		})
	})

	intent, err := svc.CreateIntent(context.Background(), "yearly")
	require.NoError(t, err)

	assert.Equal(t, "pi_123", intent.ID)
	assert.Equal(t, "https://pay.example/pi_123", intent.PaymentURL)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "create-intent", gotBody["mode"])
	assert.Equal(t, "yearly", gotBody["planType"])
}

func TestCreateIntentMissingURL(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"id": "pi_123"})
	})

	_, err := svc.CreateIntent(context.Background(), "yearly")
	assert.ErrorIs(t, err, ErrNoPaymentURL)
}

func TestCreateIntentGatewayError(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	})

	_, err := svc.CreateIntent(context.Background(), "lifetime")
	assert.ErrorIs(t, err, ErrCreateIntent)
}

func TestConfirmPayment(t *testing.T) {
	var gotBody map[string]string

	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]bool{"ok": true, "success": true})
	})

	confirmation, err := svc.ConfirmPayment(context.Background(), "pi_123")
	require.NoError(t, err)

	assert.True(t, confirmation.OK)
	assert.True(t, confirmation.Success)
	assert.Equal(t, "confirm-payment", gotBody["mode"])
	assert.Equal(t, "pi_123", gotBody["paymentIntentId"])
}

func TestConfirmPaymentDeclined(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]bool{"ok": true, "success": false})
	})

	confirmation, err := svc.ConfirmPayment(context.Background(), "pi_123")
	require.NoError(t, err)
	assert.False(t, confirmation.Success)
}

func TestNotConfigured(t *testing.T) {
	svc := NewZiinaService(ZiinaConfig{})

	_, err := svc.CreateIntent(context.Background(), "yearly")
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = svc.ConfirmPayment(context.Background(), "pi_123")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
