package payment

//go:generate go run go.uber.org/mock/mockgen -source=./payment.go -destination=./mocks/payment_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"pousada/config"
	"pousada/infras/otel"
	"pousada/shared/constant"
	"pousada/shared/money"
)

const (
	defaultTimeoutSeconds = 10

	sessionsPath = "/v1/checkout/sessions"
)

// Session is the provider's checkout session. ClientSecret is the opaque
// handle the booking front end uses to complete checkout; the backend never
// interprets it.
type Session struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

type Payment interface {
	InitSession(ctx context.Context, reservationID string, amount money.Cents, currency string) (Session, error)
}

type paymentImpl struct {
	client *http.Client
	config *config.Config
	otel   otel.Otel
}

func New(config *config.Config, otel otel.Otel) Payment {
	timeout := config.External.Payment.TimeoutSeconds
	if timeout <= 0 {
		timeout = defaultTimeoutSeconds
	}

	return &paymentImpl{
		client: &http.Client{Timeout: time.Duration(timeout) * time.Second},
		config: config,
		otel:   otel,
	}
}

type initSessionRequest struct {
	ReservationID string `json:"reservation_id"`
	AmountMinor   int64  `json:"amount_minor"`
	Currency      string `json:"currency"`
}

func (svc *paymentImpl) InitSession(ctx context.Context, reservationID string, amount money.Cents, currency string) (res Session, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelPaymentScopeName, constant.OtelPaymentScopeName+".InitSession")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttributes(map[string]any{
		"payment.reservation_id": reservationID,
		"payment.currency":       currency,
	})

	body, err := json.Marshal(initSessionRequest{
		ReservationID: reservationID,
		AmountMinor:   int64(amount),
		Currency:      currency,
	})
	if err != nil {
		return res, fmt.Errorf("failed to marshal payment session request: %w", err)
	}

	url := svc.config.External.Payment.BaseURL + sessionsPath

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return res, fmt.Errorf("failed to build payment session request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	req.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+svc.config.External.Payment.APIKey)

	resp, err := svc.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("reservationID", reservationID).Msg("payment session request failed")

		return res, fmt.Errorf("failed to reach payment provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.Error().Int("status", resp.StatusCode).Str("reservationID", reservationID).Msg("payment provider rejected session request")

		return res, fmt.Errorf("payment provider returned status %d", resp.StatusCode)
	}

	if err = json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return res, fmt.Errorf("failed to decode payment session response: %w", err)
	}

	return res, nil
}
