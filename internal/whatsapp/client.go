package whatsapp

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/viamex/rumbo/internal/metrics"
)

const defaultAPIURL = "https://graph.facebook.com/v21.0"

const verifyProbeText = "🔍 Verificando conexión..."

// Client sends messages through the WhatsApp Cloud API. It is the only
// component that performs outbound network I/O.
type Client struct {
	baseURL       string
	phoneNumberID string
	accessToken   string
	http          *http.Client
	log           zerolog.Logger
}

func NewClient(phoneNumberID, accessToken string, logger *zerolog.Logger) *Client {
	l := zerolog.Nop()
	if logger != nil {
		l = *logger
	}
	return &Client{
		baseURL:       defaultAPIURL,
		phoneNumberID: phoneNumberID,
		accessToken:   accessToken,
		http:          &http.Client{Timeout: 15 * time.Second},
		log:           l,
	}
}

func (c *Client) SendText(to, body string) error {
	msg := SendMessageRequest{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               to,
		Type:             "text",
		Text:             &SendText{Body: body},
	}
	return c.send("text", msg)
}

func (c *Client) SendList(to, header, body, footer, button string, sections []Section) error {
	msg := SendMessageRequest{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               to,
		Type:             "interactive",
		Interactive: &Interactive{
			Type:   "list",
			Header: &InteractiveHeader{Type: "text", Text: header},
			Body:   InteractiveBody{Text: body},
			Footer: &InteractiveFooter{Text: footer},
			Action: InteractiveAction{
				Button:   button,
				Sections: sections,
			},
		},
	}
	return c.send("list", msg)
}

// Verify checks whether the API will deliver to a number by sending a probe
// text. A rejection from the API (for example a number missing from the test
// allow list) yields (false, nil); transport and provider 5xx faults yield an
// error.
func (c *Client) Verify(to string) (bool, error) {
	err := c.SendText(to, verifyProbeText)
	if err == nil {
		return true, nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status < http.StatusInternalServerError {
		if apiErr.Code == codeRecipientNotAllowed {
			c.log.Warn().Str("to", to).Msg(
				"recipient not in the allowed test list; add it under " +
					"WhatsApp > Configuration > Test phone numbers at " +
					"https://developers.facebook.com/apps, then verify +" + to)
		} else {
			c.log.Warn().Str("to", to).Int("code", apiErr.Code).Str("error", apiErr.Message).
				Msg("whatsapp: delivery rejected")
		}
		return false, nil
	}
	return false, err
}

func (c *Client) send(kind string, msg SendMessageRequest) error {
	err := c.doSend(msg)
	if err != nil {
		metrics.IncOutbound(kind, "error")
		return err
	}
	metrics.IncOutbound(kind, "ok")
	return nil
}

func (c *Client) doSend(msg SendMessageRequest) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshaling message: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", c.baseURL, c.phoneNumberID)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("sending message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(resp.Body)
		var envelope apiErrorResponse
		if jsonErr := json.Unmarshal(respBody, &envelope); jsonErr == nil && envelope.Error != nil {
			envelope.Error.Status = resp.StatusCode
			return fmt.Errorf("whatsapp API status %d: %w", resp.StatusCode, envelope.Error)
		}
		return fmt.Errorf("whatsapp API status %d: %s", resp.StatusCode, respBody)
	}
	return nil
}
