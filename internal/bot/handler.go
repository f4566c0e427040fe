// Package bot holds the conversation engine: it classifies each inbound
// message, combines it with the user's stored position and decides the reply
// and the next position.
package bot

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/viamex/rumbo/internal/menu"
	"github.com/viamex/rumbo/internal/phone"
	"github.com/viamex/rumbo/internal/session"
	"github.com/viamex/rumbo/internal/store"
	"github.com/viamex/rumbo/internal/whatsapp"
)

// Sender is the outbound surface the engine needs from the transport.
type Sender interface {
	SendText(to, body string) error
	SendList(to, header, body, footer, button string, sections []whatsapp.Section) error
}

var _ Sender = (*whatsapp.Client)(nil)

type Handler struct {
	wa     Sender
	states store.Store
	locks  *session.Locks
	log    zerolog.Logger
}

func NewHandler(wa Sender, states store.Store, locks *session.Locks, logger *zerolog.Logger) *Handler {
	l := zerolog.Nop()
	if logger != nil {
		l = *logger
	}
	return &Handler{wa: wa, states: states, locks: locks, log: l}
}

// HandleMessage runs one conversation turn. The whole read-decide-write cycle
// holds the per-user lock so concurrent deliveries for the same user cannot
// interleave.
func (h *Handler) HandleMessage(msg whatsapp.Message) error {
	userID := phone.Normalize(msg.From)

	return h.locks.Do(userID, func() error {
		switch msg.Type {
		case "text":
			if msg.Text == nil {
				return nil
			}
			return h.handleText(userID, msg.Text.Body)
		case "interactive":
			if msg.Interactive == nil || msg.Interactive.ListReply == nil {
				return nil
			}
			return h.handleListReply(userID, msg.Interactive.ListReply.ID)
		}
		return nil
	})
}

// SendWelcome greets a user and puts them at the root menu. Used by the
// diagnostic send-test route. Both sends happen under the per-user lock so a
// concurrent turn cannot slip between the greeting and the menu.
func (h *Handler) SendWelcome(to string) error {
	userID := phone.Normalize(to)
	return h.locks.Do(userID, func() error {
		if err := h.wa.SendText(userID, menu.GreetingText); err != nil {
			return err
		}
		return h.sendTopLevel(userID)
	})
}

func (h *Handler) handleText(userID, body string) error {
	text := strings.ToLower(strings.TrimSpace(body))
	st := h.states.Get(userID)

	h.log.Debug().Str("user", userID).Str("text", text).
		Str("last_option", st.LastOption).Str("destination", st.Destination).
		Msg("bot: text message")

	// "menu" wins over any state-dependent parsing.
	if text == "menu" {
		return h.sendTopLevel(userID)
	}

	switch {
	case st.LastOption == menu.OptionDestinations && st.Destination == "":
		return h.handleDestinationChoice(userID, st, text)
	case st.Destination != "":
		return h.handleDestinationFollowUp(userID, st, text)
	default:
		return h.wa.SendText(userID, menu.NotUnderstoodText)
	}
}

// handleDestinationChoice maps the digit a user answered after picking the
// destinations option.
func (h *Handler) handleDestinationChoice(userID string, st store.State, text string) error {
	dest, ok := menu.DestinationForDigit(text)
	if !ok {
		return h.wa.SendText(userID, menu.InvalidOptionText)
	}

	reply, err := menu.DestinationText(dest)
	if err != nil {
		return h.fallback(userID, err)
	}

	st.Destination = string(dest)
	h.states.Set(userID, st)
	return h.wa.SendText(userID, reply)
}

// handleDestinationFollowUp maps the digits offered by the destination detail
// text: hotels, tours, quote, back to the root menu.
func (h *Handler) handleDestinationFollowUp(userID string, st store.State, text string) error {
	dest := menu.Destination(st.Destination)

	var (
		reply string
		err   error
	)
	switch text {
	case "1":
		reply, err = menu.HotelsText(dest)
	case "2":
		reply, err = menu.ToursText(dest)
	case "3":
		reply, err = menu.QuoteText(dest)
	case "4":
		return h.sendTopLevel(userID)
	default:
		return h.wa.SendText(userID, menu.NotUnderstoodText)
	}

	if err != nil {
		return h.fallback(userID, err)
	}
	return h.wa.SendText(userID, reply)
}

func (h *Handler) handleListReply(userID, id string) error {
	ref := menu.ParseRowID(id)
	st := h.states.Get(userID)

	h.log.Debug().Str("user", userID).Str("row", id).
		Str("last_option", st.LastOption).Str("destination", st.Destination).
		Msg("bot: list reply")

	switch ref.Kind {
	case menu.RowMainMenu:
		return h.sendTopLevel(userID)

	case menu.RowTopOption:
		reply, ok := menu.OptionText(ref.Option)
		if !ok {
			return h.wa.SendText(userID, menu.NotUnderstoodSelectionText)
		}
		h.states.Set(userID, store.State{LastOption: ref.Option})
		return h.wa.SendText(userID, reply)

	case menu.RowDestAction:
		return h.handleDestAction(userID, st, ref)

	default:
		return h.wa.SendText(userID, menu.NotUnderstoodSelectionText)
	}
}

// handleDestAction answers destination-scoped rows. The destination always
// comes from the row id itself, so a stale stored state cannot misroute the
// reply.
func (h *Handler) handleDestAction(userID string, st store.State, ref menu.RowRef) error {
	switch ref.Action {
	case menu.ActionHotels:
		list, err := menu.Hotels(ref.Dest)
		if err != nil {
			return h.fallback(userID, err)
		}
		h.setDestination(userID, st, ref.Dest)
		return h.sendList(userID, list)

	case menu.ActionTours:
		list, err := menu.Tours(ref.Dest)
		if err != nil {
			return h.fallback(userID, err)
		}
		h.setDestination(userID, st, ref.Dest)
		return h.sendList(userID, list)

	case menu.ActionBack:
		list, err := menu.DestinationDetail(ref.Dest)
		if err != nil {
			return h.fallback(userID, err)
		}
		h.setDestination(userID, st, ref.Dest)
		return h.sendList(userID, list)

	case menu.ActionQuote:
		reply, err := menu.QuoteText(ref.Dest)
		if err != nil {
			return h.fallback(userID, err)
		}
		h.setDestination(userID, st, ref.Dest)
		return h.wa.SendText(userID, reply)

	case menu.ActionHotelDetail:
		reply, err := menu.HotelDetailText(ref.Dest, ref.Detail)
		if err != nil {
			return h.fallback(userID, err)
		}
		h.setDestination(userID, st, ref.Dest)
		return h.wa.SendText(userID, reply)

	case menu.ActionTourDetail:
		reply, err := menu.TourDetailText(ref.Dest, ref.Detail)
		if err != nil {
			return h.fallback(userID, err)
		}
		h.setDestination(userID, st, ref.Dest)
		return h.wa.SendText(userID, reply)
	}

	return h.wa.SendText(userID, menu.NotUnderstoodSelectionText)
}

func (h *Handler) setDestination(userID string, st store.State, dest menu.Destination) {
	st.Destination = string(dest)
	h.states.Set(userID, st)
}

// sendTopLevel resets the user to the root position and sends the root menu.
func (h *Handler) sendTopLevel(userID string) error {
	h.states.Reset(userID)
	return h.sendList(userID, menu.TopLevel())
}

// fallback answers a turn whose catalog lookup failed. The state is left
// untouched; a bad row id must not derail the conversation.
func (h *Handler) fallback(userID string, err error) error {
	h.log.Warn().Err(err).Str("user", userID).Msg("bot: catalog lookup failed")
	return h.wa.SendText(userID, menu.NotUnderstoodSelectionText)
}

func (h *Handler) sendList(userID string, l menu.List) error {
	rows := make([]whatsapp.SectionRow, len(l.Rows))
	for i, r := range l.Rows {
		rows[i] = whatsapp.SectionRow{ID: r.ID, Title: r.Title, Description: r.Description}
	}
	sections := []whatsapp.Section{{Title: l.Section, Rows: rows}}
	return h.wa.SendList(userID, l.Header, l.Body, l.Footer, l.Button, sections)
}
