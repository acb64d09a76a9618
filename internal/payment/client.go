package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SergeyBogomolovv/perfume-shop/internal/config"
	"github.com/SergeyBogomolovv/perfume-shop/internal/entities"
)

const c2bPath = "/ipg/v1x/c2bPayment/singleStage/"

type c2bRequest struct {
	TransactionReference string `json:"input_TransactionReference"`
	CustomerMSISDN       string `json:"input_CustomerMSISDN"`
	Amount               string `json:"input_Amount"`
	ThirdPartyReference  string `json:"input_ThirdPartyReference"`
	ServiceProviderCode  string `json:"input_ServiceProviderCode"`
}

type c2bResponse struct {
	ConversationID      string `json:"output_ConversationID"`
	TransactionID       string `json:"output_TransactionID"`
	ResponseCode        string `json:"output_ResponseCode"`
	ResponseDesc        string `json:"output_ResponseDesc"`
	ThirdPartyReference string `json:"output_ThirdPartyReference"`
}

// Client initiates customer-to-business mobile-money payments over the provider's HTTP API.
type Client struct {
	logger       *slog.Logger
	http         *http.Client
	baseURL      string
	apiKey       string
	providerCode string
}

func NewClient(logger *slog.Logger, cfg config.Payment) *Client {
	return &Client{
		logger:       logger.With(slog.String("client", "payment")),
		http:         &http.Client{Timeout: cfg.Timeout},
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:       cfg.APIKey,
		providerCode: cfg.ServiceProviderCode,
	}
}

func (c *Client) Initiate(ctx context.Context, req entities.PaymentRequest) (entities.PaymentAck, error) {
	body, err := json.Marshal(c2bRequest{
		TransactionReference: req.Reference,
		CustomerMSISDN:       req.Phone,
		Amount:               req.Amount.String(),
		ThirdPartyReference:  req.Reference,
		ServiceProviderCode:  c.providerCode,
	})
	if err != nil {
		return entities.PaymentAck{}, fmt.Errorf("failed to marshal payment request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+c2bPath, bytes.NewReader(body))
	if err != nil {
		return entities.PaymentAck{}, fmt.Errorf("failed to build payment request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Origin", "*")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return entities.PaymentAck{}, fmt.Errorf("%w: %w", entities.ErrProviderCommunication, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return entities.PaymentAck{}, fmt.Errorf("%w: failed to read response: %w", entities.ErrProviderCommunication, err)
	}

	var out c2bResponse
	decodeErr := json.Unmarshal(data, &out)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		perr := &entities.ProviderError{StatusCode: resp.StatusCode}
		if decodeErr == nil {
			perr.Code = out.ResponseCode
			perr.Description = out.ResponseDesc
		}
		c.logger.WarnContext(ctx, "payment initiation rejected",
			slog.String("reference", req.Reference),
			slog.Int("status", resp.StatusCode),
			slog.String("code", perr.Code),
		)
		return entities.PaymentAck{}, perr
	}
	if decodeErr != nil {
		return entities.PaymentAck{}, fmt.Errorf("%w: failed to decode response: %w", entities.ErrProviderCommunication, decodeErr)
	}

	return entities.PaymentAck{
		ConversationID:      out.ConversationID,
		ResponseCode:        out.ResponseCode,
		ResponseDescription: out.ResponseDesc,
	}, nil
}
