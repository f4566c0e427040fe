package whatsapp

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const verifyToken = "secret-token"

func newTestWebhook(onMessage MessageHandler) *WebhookHandler {
	if onMessage == nil {
		onMessage = func(Message) error { return nil }
	}
	return NewWebhookHandler(verifyToken, onMessage, nil)
}

func TestHandleVerify(t *testing.T) {
	tests := []struct {
		name       string
		mode       string
		token      string
		challenge  string
		wantStatus int
		wantBody   string
	}{
		{"valid handshake", "subscribe", verifyToken, "12345", http.StatusOK, "12345"},
		{"wrong token", "subscribe", "nope", "12345", http.StatusForbidden, ""},
		{"missing mode", "", verifyToken, "12345", http.StatusForbidden, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestWebhook(nil)

			q := url.Values{}
			q.Set("hub.mode", tt.mode)
			q.Set("hub.verify_token", tt.token)
			q.Set("hub.challenge", tt.challenge)
			r := httptest.NewRequest(http.MethodGet, "/webhook?"+q.Encode(), nil)
			w := httptest.NewRecorder()

			h.HandleVerify(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, w.Body.String())
			}
		})
	}
}

func postWebhook(h *WebhookHandler, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.HandleIncoming(w, r)
	return w
}

func textEventBody(from, text string) string {
	return `{
		"object": "whatsapp_business_account",
		"entry": [{"id": "1", "changes": [{"field": "messages", "value": {
			"messages": [{"from": "` + from + `", "id": "wamid.1", "type": "text", "text": {"body": "` + text + `"}}]
		}}]}]
	}`
}

func TestHandleIncomingTextMessage(t *testing.T) {
	var got []Message
	h := newTestWebhook(func(m Message) error {
		got = append(got, m)
		return nil
	})

	w := postWebhook(h, textEventBody("5215512345678", "menu"))

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, got, 1)
	assert.Equal(t, "5215512345678", got[0].From)
	require.NotNil(t, got[0].Text)
	assert.Equal(t, "menu", got[0].Text.Body)
}

func TestHandleIncomingListReply(t *testing.T) {
	var got []Message
	h := newTestWebhook(func(m Message) error {
		got = append(got, m)
		return nil
	})

	w := postWebhook(h, `{
		"object": "whatsapp_business_account",
		"entry": [{"changes": [{"value": {
			"messages": [{"from": "525512345678", "type": "interactive",
				"interactive": {"type": "list_reply", "list_reply": {"id": "cancun_hotels", "title": "Hoteles"}}}]
		}}]}]
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, got, 1)
	require.NotNil(t, got[0].Interactive)
	assert.Equal(t, "cancun_hotels", got[0].Interactive.ListReply.ID)
}

func TestHandleIncomingMissingObject(t *testing.T) {
	h := newTestWebhook(nil)
	w := postWebhook(h, `{"entry": [{"changes": []}]}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleIncomingUnrecognizedObject(t *testing.T) {
	h := newTestWebhook(nil)
	w := postWebhook(h, `{"object": "instagram", "entry": [{}]}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleIncomingEmptyEntry(t *testing.T) {
	h := newTestWebhook(nil)
	w := postWebhook(h, `{"object": "whatsapp_business_account", "entry": []}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleIncomingMalformedJSON(t *testing.T) {
	h := newTestWebhook(nil)
	w := postWebhook(h, `{not json`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleIncomingStatusUpdateIsAcknowledged(t *testing.T) {
	called := false
	h := newTestWebhook(func(Message) error {
		called = true
		return nil
	})

	w := postWebhook(h, `{
		"object": "whatsapp_business_account",
		"entry": [{"changes": [{"value": {
			"statuses": [{"id": "wamid.1", "status": "delivered", "recipient_id": "525512345678"}]
		}}]}]
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, called, "status updates must not reach the engine")
}

func TestHandleIncomingUnhandledTypeIsIgnored(t *testing.T) {
	called := false
	h := newTestWebhook(func(Message) error {
		called = true
		return nil
	})

	w := postWebhook(h, `{
		"object": "whatsapp_business_account",
		"entry": [{"changes": [{"value": {
			"messages": [{"from": "525512345678", "type": "sticker"}]
		}}]}]
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, called)
}

func TestHandleIncomingButtonReplyIsIgnored(t *testing.T) {
	called := false
	h := newTestWebhook(func(Message) error {
		called = true
		return nil
	})

	w := postWebhook(h, `{
		"object": "whatsapp_business_account",
		"entry": [{"changes": [{"value": {
			"messages": [{"from": "525512345678", "type": "interactive",
				"interactive": {"type": "button_reply"}}]
		}}]}]
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, called)
}

func TestHandleIncomingHandlerErrorIs500(t *testing.T) {
	h := newTestWebhook(func(Message) error {
		return errors.New("send failed")
	})

	w := postWebhook(h, textEventBody("525512345678", "menu"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandleTest(t *testing.T) {
	h := newTestWebhook(nil)

	for _, body := range []string{`{"anything": true}`, "not json at all", ""} {
		r := httptest.NewRequest(http.MethodPost, "/test-webhook", strings.NewReader(body))
		w := httptest.NewRecorder()
		h.HandleTest(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
