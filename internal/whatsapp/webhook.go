package whatsapp

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/viamex/rumbo/internal/metrics"
)

// MessageHandler is called for each conversational message (text or list
// reply). A returned error marks the webhook delivery as failed.
type MessageHandler func(msg Message) error

type WebhookHandler struct {
	verifyToken string
	onMessage   MessageHandler
	log         zerolog.Logger
}

func NewWebhookHandler(verifyToken string, onMessage MessageHandler, logger *zerolog.Logger) *WebhookHandler {
	l := zerolog.Nop()
	if logger != nil {
		l = *logger
	}
	return &WebhookHandler{
		verifyToken: verifyToken,
		onMessage:   onMessage,
		log:         l,
	}
}

// HandleVerify handles the GET webhook verification from Meta.
// Reference: https://developers.facebook.com/docs/whatsapp/cloud-api/get-started#webhook-verification
func (h *WebhookHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	mode := r.URL.Query().Get("hub.mode")
	token := r.URL.Query().Get("hub.verify_token")
	challenge := r.URL.Query().Get("hub.challenge")

	if mode == "subscribe" && token == h.verifyToken {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(challenge))
		return
	}

	http.Error(w, "Forbidden", http.StatusForbidden)
}

// HandleIncoming processes incoming webhook POST notifications. Meta expects
// 200 for anything delivered and handled (including benign events we ignore),
// 404 when the envelope is not one of ours, and retries on 5xx.
func (h *WebhookHandler) HandleIncoming(w http.ResponseWriter, r *http.Request) {
	var payload WebhookPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.log.Warn().Err(err).Msg("webhook: failed to decode payload")
		w.WriteHeader(http.StatusNotFound)
		return
	}

	if payload.Object != BusinessAccountObject {
		h.log.Warn().Str("object", payload.Object).Msg("webhook: unrecognized object")
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if len(payload.Entry) == 0 {
		h.log.Warn().Msg("webhook: no entries in payload")
		w.WriteHeader(http.StatusNotFound)
		return
	}

	for _, entry := range payload.Entry {
		for _, change := range entry.Changes {
			if err := h.handleChange(change); err != nil {
				h.log.Error().Err(err).Msg("webhook: processing change")
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
		}
	}

	w.WriteHeader(http.StatusOK)
}

func (h *WebhookHandler) handleChange(change Change) error {
	for _, status := range change.Value.Statuses {
		metrics.IncInbound("status")
		h.log.Debug().Str("status", status.Status).Str("recipient", status.RecipientID).
			Msg("webhook: status update")
	}

	for _, msg := range change.Value.Messages {
		switch msg.Type {
		case "text":
			if msg.Text == nil {
				continue
			}
			metrics.IncInbound("text")
			if err := h.onMessage(msg); err != nil {
				return err
			}
		case "interactive":
			if msg.Interactive == nil || msg.Interactive.Type != "list_reply" || msg.Interactive.ListReply == nil {
				metrics.IncInbound("other")
				h.log.Info().Str("from", msg.From).Msg("webhook: ignoring non-list interactive reply")
				continue
			}
			metrics.IncInbound("interactive")
			if err := h.onMessage(msg); err != nil {
				return err
			}
		default:
			metrics.IncInbound("other")
			h.log.Info().Str("type", msg.Type).Str("from", msg.From).
				Msg("webhook: ignoring unhandled message type")
		}
	}
	return nil
}

// HandleTest accepts and logs any body; it exists so a webhook URL can be
// exercised without a real provider event.
func (h *WebhookHandler) HandleTest(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.log.Warn().Err(err).Msg("test-webhook: reading body")
	}
	h.log.Info().RawJSON("body", normalizeJSON(body)).Msg("test-webhook: received")
	w.WriteHeader(http.StatusOK)
}

// normalizeJSON keeps RawJSON from corrupting the log line when the test body
// is not valid JSON.
func normalizeJSON(b []byte) []byte {
	if json.Valid(b) {
		return b
	}
	quoted, err := json.Marshal(string(b))
	if err != nil {
		return []byte(`""`)
	}
	return quoted
}
