package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var (
	ErrNotConfigured  = errors.New("payment gateway is not configured")
	ErrCreateIntent   = errors.New("failed to create payment intent")
	ErrNoPaymentURL   = errors.New("payment gateway returned no payment URL")
	ErrConfirmPayment = errors.New("failed to confirm payment")
)

// PaymentIntent is the result of a checkout session creation.
type PaymentIntent struct {
	ID         string `json:"id"`
	PaymentURL string `json:"payment_url"`
}

// PaymentConfirmation is the gateway's verdict on a payment intent.
type PaymentConfirmation struct {
	OK      bool `json:"ok"`
	Success bool `json:"success"`
}

// ZiinaConfig holds the configuration for the Ziina payment gateway
type ZiinaConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// ZiinaService handles payment operations against the Ziina API
type ZiinaService struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewZiinaService creates a new Ziina payment service
func NewZiinaService(cfg ZiinaConfig) *ZiinaService {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &ZiinaService{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: timeout},
	}
}

// IsConfigured checks if the payment gateway is properly configured
func (s *ZiinaService) IsConfigured() bool {
	return s.baseURL != "" && s.apiKey != ""
}

// CreateIntent creates a payment intent for the given plan and returns the
// hosted payment page URL.
func (s *ZiinaService) CreateIntent(ctx context.Context, planType string) (*PaymentIntent, error) {
	if !s.IsConfigured() {
		return nil, ErrNotConfigured
	}

	body := map[string]string{
		"mode":     "create-intent",
		"planType": planType,
	}

	var intent PaymentIntent
	if err := s.post(ctx, body, &intent); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCreateIntent, err)
	}
	if intent.PaymentURL == "" {
		return nil, ErrNoPaymentURL
	}
	return &intent, nil
}

// ConfirmPayment asks the gateway whether a payment intent completed
// successfully.
func (s *ZiinaService) ConfirmPayment(ctx context.Context, intentID string) (*PaymentConfirmation, error) {
	if !s.IsConfigured() {
		return nil, ErrNotConfigured
	}

	body := map[string]string{
		"mode":            "confirm-payment",
		"paymentIntentId": intentID,
	}

	var confirmation PaymentConfirmation
	if err := s.post(ctx, body, &confirmation); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfirmPayment, err)
	}
	return &confirmation, nil
}

func (s *ZiinaService) post(ctx context.Context, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("status %d, body: %s", resp.StatusCode, string(respBody))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
