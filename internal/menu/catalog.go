// Package menu is the static conversation catalog: the destinations and
// top-level options the bot offers, plus the builders that turn them into
// outbound list and text content. Everything here is immutable data and pure
// functions; sending is the transport's job.
package menu

import (
	"errors"
	"fmt"
)

type Destination string

const (
	DestCancun   Destination = "cancun"
	DestCDMX     Destination = "cdmx"
	DestLosCabos Destination = "loscabos"
	DestVallarta Destination = "vallarta"
)

// Top-level option ids as they travel in interactive list replies, plus the
// sentinel row that returns to the root menu.
const (
	OptionDestinations = "opcion_1"
	OptionTransport    = "opcion_2"
	OptionPricing      = "opcion_3"
	OptionAgent        = "opcion_4"
	MainMenuID         = "menu_principal"
)

var ErrUnknownDestination = errors.New("unknown destination")

// Row is one selectable entry of an interactive list.
type Row struct {
	ID          string
	Title       string
	Description string
}

// List is a provider-agnostic interactive list message.
type List struct {
	Header  string
	Body    string
	Footer  string
	Button  string
	Section string
	Rows    []Row
}

type destinationInfo struct {
	Name      string
	Emoji     string
	Tagline   string
	Bullets   []string
	PriceFrom string
}

var destinations = map[Destination]destinationInfo{
	DestCancun: {
		Name:      "Cancún",
		Emoji:     "🌴",
		Tagline:   "Descubre el paraíso en el Caribe mexicano:",
		Bullets:   []string{"Playas de arena blanca", "Aguas turquesas", "Vida nocturna vibrante"},
		PriceFrom: "$5,000 MXN",
	},
	DestCDMX: {
		Name:      "Ciudad de México",
		Emoji:     "🏛️",
		Tagline:   "La capital cultural de México:",
		Bullets:   []string{"Centro histórico", "Museos y galerías", "Gastronomía única"},
		PriceFrom: "$3,000 MXN",
	},
	DestLosCabos: {
		Name:      "Los Cabos",
		Emoji:     "🌊",
		Tagline:   "Lujo y aventura en el Pacífico:",
		Bullets:   []string{"Arco natural", "Resorts de lujo", "Pesca deportiva"},
		PriceFrom: "$7,000 MXN",
	},
	DestVallarta: {
		Name:      "Puerto Vallarta",
		Emoji:     "🏖️",
		Tagline:   "El encanto del Pacífico mexicano:",
		Bullets:   []string{"Playas hermosas", "Malecón pintoresco", "Cultura local"},
		PriceFrom: "$4,500 MXN",
	},
}

// destinationDigits maps the digits of the text flow (after the user picked
// the destinations option) to destinations.
var destinationDigits = map[string]Destination{
	"1": DestCancun,
	"2": DestCDMX,
	"3": DestLosCabos,
	"4": DestVallarta,
}

// DestinationForDigit resolves a text-flow digit to a destination.
func DestinationForDigit(digit string) (Destination, bool) {
	d, ok := destinationDigits[digit]
	return d, ok
}

type hotelTier struct {
	Tier        string
	Title       string
	Description string
	PerNight    string
}

var hotelTiers = []hotelTier{
	{Tier: "5", Title: "Hotel 5 estrellas", Description: "Lujo y confort - Desde $3,000/noche", PerNight: "$3,000"},
	{Tier: "4", Title: "Hotel 4 estrellas", Description: "Calidad superior - Desde $2,000/noche", PerNight: "$2,000"},
	{Tier: "3", Title: "Hotel 3 estrellas", Description: "Buena relación - Desde $1,000/noche", PerNight: "$1,000"},
}

type tourKind struct {
	Kind        string
	Title       string
	Description string
	Price       string
}

var tourKinds = []tourKind{
	{Kind: "cultural", Title: "Tour Cultural", Description: "Historia y tradiciones - $500", Price: "$500"},
	{Kind: "aventura", Title: "Aventura Extrema", Description: "Adrenalina pura - $800", Price: "$800"},
	{Kind: "gastro", Title: "Tour Gastronómico", Description: "Sabores locales - $600", Price: "$600"},
}

func hotelTierByID(tier string) (hotelTier, bool) {
	for _, h := range hotelTiers {
		if h.Tier == tier {
			return h, true
		}
	}
	return hotelTier{}, false
}

func tourKindByID(kind string) (tourKind, bool) {
	for _, t := range tourKinds {
		if t.Kind == kind {
			return t, true
		}
	}
	return tourKind{}, false
}

func destinationByID(dest Destination) (destinationInfo, error) {
	info, ok := destinations[dest]
	if !ok {
		return destinationInfo{}, fmt.Errorf("%w: %q", ErrUnknownDestination, dest)
	}
	return info, nil
}
