package menu

import "strings"

// RowKind classifies an interactive list-reply id.
type RowKind int

const (
	RowUnknown RowKind = iota
	RowMainMenu
	RowTopOption
	RowDestAction
)

// Action is what a destination-scoped row asks for.
type Action string

const (
	ActionHotels      Action = "hotels"
	ActionTours       Action = "tours"
	ActionQuote       Action = "quote"
	ActionBack        Action = "back"
	ActionHotelDetail Action = "hotel"
	ActionTourDetail  Action = "tour"
)

// RowRef is the decomposed form of a list-reply id. For RowDestAction rows
// Dest and Action are set; Detail carries the hotel tier or tour kind for the
// detail actions.
type RowRef struct {
	Kind   RowKind
	Option string
	Dest   Destination
	Action Action
	Detail string
}

// ParseRowID decomposes an interactive row id. Ids with an unknown
// destination prefix or action classify as RowUnknown; callers fall back to
// the default reply rather than guessing.
func ParseRowID(id string) RowRef {
	if id == MainMenuID {
		return RowRef{Kind: RowMainMenu}
	}
	if IsTopOption(id) {
		return RowRef{Kind: RowTopOption, Option: id}
	}

	prefix, rest, found := strings.Cut(id, "_")
	if !found || rest == "" {
		return RowRef{Kind: RowUnknown}
	}

	dest := Destination(prefix)
	if _, err := destinationByID(dest); err != nil {
		return RowRef{Kind: RowUnknown}
	}

	switch rest {
	case "hotels":
		return RowRef{Kind: RowDestAction, Dest: dest, Action: ActionHotels}
	case "tours":
		return RowRef{Kind: RowDestAction, Dest: dest, Action: ActionTours}
	case "quote":
		return RowRef{Kind: RowDestAction, Dest: dest, Action: ActionQuote}
	case "back":
		return RowRef{Kind: RowDestAction, Dest: dest, Action: ActionBack}
	}

	if tier, ok := strings.CutPrefix(rest, "hotel_"); ok {
		if _, found := hotelTierByID(tier); found {
			return RowRef{Kind: RowDestAction, Dest: dest, Action: ActionHotelDetail, Detail: tier}
		}
	}
	if kind, ok := strings.CutPrefix(rest, "tour_"); ok {
		if _, found := tourKindByID(kind); found {
			return RowRef{Kind: RowDestAction, Dest: dest, Action: ActionTourDetail, Detail: kind}
		}
	}

	return RowRef{Kind: RowUnknown}
}
