package ticketapi

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/popsorte/draw-backend/pkg/transport"
)

// Client submits created tickets to the remote ticket API. The wire
// contract is fixed upstream: chosen numbers go comma-joined and
// zero-padded, dates as YYYY-MM-DD.
type Client struct {
	baseURL string
	apiKey  string
	mockAPI bool
	http    *resty.Client
}

// TicketRequest is the ticket-creation payload.
type TicketRequest struct {
	Platform          string `json:"platform"`
	GameID            string `json:"gameId"`
	WhatsappNumber    string `json:"whatsappNumber,omitempty"`
	NumerosEscolhidos string `json:"numerosEscolhidos"`
	DrawDate          string `json:"drawDate"`
	Concurso          int    `json:"concurso"`
}

// TicketResponse is the ticket API's answer.
type TicketResponse struct {
	Success       bool   `json:"success"`
	BilheteNumber string `json:"bilheteNumber"`
	Error         string `json:"error,omitempty"`
}

// NewClient creates a ticket API client. With mockAPI set, tickets are
// acknowledged locally without any network call.
func NewClient(baseURL, apiKey string, mockAPI bool, policy transport.RetryPolicy) *Client {
	httpClient := resty.New().SetTimeout(10 * time.Second)
	policy.Apply(httpClient)
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		mockAPI: mockAPI,
		http:    httpClient,
	}
}

// CreateTicket registers the ticket remotely and returns the assigned
// bilhete number.
func (c *Client) CreateTicket(ctx context.Context, req TicketRequest) (*TicketResponse, error) {
	if c.mockAPI {
		return c.mockCreateTicket(req)
	}

	var out TicketResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("X-API-Key", c.apiKey).
		SetBody(req).
		SetResult(&out).
		Post(c.baseURL + "/api/bilhetes")
	if err != nil {
		return nil, fmt.Errorf("creating ticket: %w", err)
	}
	if resp.StatusCode() != http.StatusOK && resp.StatusCode() != http.StatusCreated {
		return nil, fmt.Errorf("ticket API returned status %d: %s", resp.StatusCode(), resp.String())
	}
	if !out.Success {
		return nil, fmt.Errorf("ticket API rejected entry: %s", out.Error)
	}
	return &out, nil
}

// mockCreateTicket acknowledges a ticket locally for development runs.
func (c *Client) mockCreateTicket(req TicketRequest) (*TicketResponse, error) {
	bilhete := fmt.Sprintf("BLT%010d", rand.Int63n(1e10))
	return &TicketResponse{Success: true, BilheteNumber: bilhete}, nil
}
