package bot

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/viamex/rumbo/internal/phone"
)

// Verifier checks delivery eligibility for a number.
type Verifier interface {
	Verify(to string) (bool, error)
}

// DiagHandler exposes the operator-facing diagnostic routes: trigger a
// greeting plus root menu, or check whether a number can receive messages.
type DiagHandler struct {
	bot      *Handler
	verifier Verifier
	log      zerolog.Logger
}

func NewDiagHandler(bot *Handler, v Verifier, logger *zerolog.Logger) *DiagHandler {
	l := zerolog.Nop()
	if logger != nil {
		l = *logger
	}
	return &DiagHandler{bot: bot, verifier: v, log: l}
}

// HandleSendTest sends the greeting and the root menu to the number in the
// URL.
func (d *DiagHandler) HandleSendTest(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "phoneNumber")

	if err := d.bot.SendWelcome(number); err != nil {
		d.log.Error().Err(err).Str("phone", number).Msg("diag: send-test failed")
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "error al enviar mensajes",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "mensajes enviados correctamente",
	})
}

// HandleVerify normalizes the number in the URL and checks whether the API
// will deliver to it.
func (d *DiagHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	number := phone.Normalize(chi.URLParam(r, "phoneNumber"))

	ok, err := d.verifier.Verify(number)
	if err != nil {
		d.log.Error().Err(err).Str("phone", number).Msg("diag: verify failed")
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	msg := "número verificado correctamente"
	if !ok {
		msg = "el número no está autorizado"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": ok,
		"message": msg,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
