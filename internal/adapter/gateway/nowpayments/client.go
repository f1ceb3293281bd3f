package nowpayments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"wager-arena/config"
	"wager-arena/internal/core/ports"
	"wager-arena/pkg/apperror"
)

// Client is the REST client for the NOWPayments API.
// It implements ports.PaymentGateway.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a NOWPayments client from gateway configuration.
// baseURL is the API root, e.g. "https://api.nowpayments.io/v1".
func NewClient(cfg config.GatewayConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// createPaymentBody is the provider's payment creation payload.
// Amounts are priced in fiat; the provider quotes the crypto pay_amount.
type createPaymentBody struct {
	PriceAmount   float64 `json:"price_amount"`
	PriceCurrency string  `json:"price_currency"`
	PayCurrency   string  `json:"pay_currency"`
	OrderID       string  `json:"order_id"`
}

type paymentEnvelope struct {
	PaymentID     json.Number `json:"payment_id"`
	PaymentStatus string      `json:"payment_status"`
	PayAddress    string      `json:"pay_address"`
	PayAmount     json.Number `json:"pay_amount"`
	PayCurrency   string      `json:"pay_currency"`
	Message       string      `json:"message"`
}

// CreatePayment registers a new payment with the provider.
func (c *Client) CreatePayment(ctx context.Context, req ports.CreatePaymentRequest) (*ports.CreatePaymentResponse, error) {
	body := createPaymentBody{
		PriceAmount:   float64(req.Amount) / 100,
		PriceCurrency: "usd",
		PayCurrency:   req.Currency,
		OrderID:       req.OrderID,
	}

	env, err := c.do(ctx, http.MethodPost, "/payment", body)
	if err != nil {
		return nil, err
	}

	return &ports.CreatePaymentResponse{
		PaymentID:   env.PaymentID.String(),
		PayAddress:  env.PayAddress,
		PayAmount:   env.PayAmount.String(),
		PayCurrency: env.PayCurrency,
		Status:      env.PaymentStatus,
	}, nil
}

// GetPaymentStatus polls the provider for a payment's current status.
func (c *Client) GetPaymentStatus(ctx context.Context, paymentID string) (*ports.PaymentStatusResponse, error) {
	path := "/payment/" + url.PathEscape(paymentID)

	env, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	return &ports.PaymentStatusResponse{
		PaymentID: env.PaymentID.String(),
		Status:    env.PaymentStatus,
	}, nil
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}) (*paymentEnvelope, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("nowpayments: encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("nowpayments: build request: %w", err)
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperror.ErrGatewayUnavailable(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperror.ErrGatewayUnavailable(err)
	}

	var env paymentEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, apperror.ErrGatewayUnavailable(fmt.Errorf("decode response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := env.Message
		if msg == "" {
			msg = resp.Status
		}
		return nil, apperror.ErrGatewayUnavailable(fmt.Errorf("%s %s: %s", method, path, msg))
	}

	return &env, nil
}
