// Package msg91 wraps the MSG91 transactional SMS API.
package msg91

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/nirbani/dairy/internal/config"
)

// Client exposes the SMS operations used by the application.
type Client interface {
	SendSMS(ctx context.Context, req SendSMSRequest) error
}

// APIClient is a resty-backed implementation of Client.
type APIClient struct {
	httpClient *resty.Client
	authKey    string
	senderID   string
	route      string
	templateID string
}

// NewClient builds an MSG91 client from configuration.
func NewClient(cfg config.SMSConfig) *APIClient {
	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetHeader("authkey", cfg.AuthKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	return &APIClient{
		httpClient: restyClient,
		authKey:    cfg.AuthKey,
		senderID:   cfg.SenderID,
		route:      cfg.Route,
		templateID: cfg.TemplateID,
	}
}

// SendSMSRequest is one outbound transactional SMS.
type SendSMSRequest struct {
	Phone   string
	Message string
}

type apiError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// SendSMS posts the message to the MSG91 flow endpoint. Ten-digit numbers get
// the Indian country prefix.
func (c *APIClient) SendSMS(ctx context.Context, req SendSMSRequest) error {
	phone := strings.TrimPrefix(strings.ReplaceAll(req.Phone, " ", ""), "+91")
	if len(phone) == 10 {
		phone = "91" + phone
	}

	payload := map[string]any{
		"sender":  c.senderID,
		"route":   c.route,
		"country": "91",
		"sms": []map[string]any{
			{
				"message": req.Message,
				"to":      []string{phone},
			},
		},
	}
	if c.templateID != "" {
		payload["template_id"] = c.templateID
	}

	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(payload).
		SetError(apiErr).
		Post("/api/v5/flow")
	if err != nil {
		return fmt.Errorf("send sms: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return fmt.Errorf("msg91 api error: status=%d, message=%s", resp.StatusCode(), apiErr.Message)
	}

	return nil
}
