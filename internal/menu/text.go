package menu

import (
	"fmt"
	"strings"
)

// Canned replies shared by several flows.
const (
	GreetingText = "¡Hola! Bienvenido a nuestra agencia de viajes."

	NotUnderstoodText = "Lo siento, no entendí tu mensaje. Escribe \"menu\" para ver las opciones disponibles."

	NotUnderstoodSelectionText = "Lo siento, no entendí tu selección. Por favor, escribe \"menu\" para ver las opciones disponibles."

	InvalidOptionText = "❌ Opción no válida. Por favor, selecciona un número del 1 al 4 o escribe \"menu\" para volver al inicio."
)

var optionTexts = map[string]string{
	OptionDestinations: "🌎 *Nuestros Destinos Turísticos*\n\n" +
		"Selecciona un destino para más información:\n\n" +
		"1️⃣ Cancún - Playas paradisíacas\n" +
		"2️⃣ Ciudad de México - Historia y cultura\n" +
		"3️⃣ Los Cabos - Aventura y lujo\n" +
		"4️⃣ Puerto Vallarta - Belleza natural\n\n" +
		"Responde con el número del destino o escribe \"menu\" para ver más opciones.",

	OptionTransport: "🚗 *Opciones de Transporte*\n\n" +
		"¿Qué tipo de transporte te interesa?\n\n" +
		"1️⃣ Vuelos\n" +
		"2️⃣ Autobuses\n" +
		"3️⃣ Renta de autos\n" +
		"4️⃣ Traslados aeropuerto-hotel\n\n" +
		"Responde con el número de la opción o escribe \"menu\" para volver al menú principal.",

	OptionPricing: "💰 *Precios y Paquetes*\n\n" +
		"Tenemos diferentes opciones para tu presupuesto:\n\n" +
		"1️⃣ Paquetes económicos\n" +
		"2️⃣ Paquetes estándar\n" +
		"3️⃣ Paquetes premium\n" +
		"4️⃣ Paquetes todo incluido\n\n" +
		"¿Cuál te interesa conocer? Responde con el número o escribe \"menu\" para más opciones.",

	OptionAgent: "👋 *Atención Personalizada*\n\n" +
		"Un agente se pondrá en contacto contigo pronto.\n" +
		"Mientras tanto, ¿podrías decirnos?\n\n" +
		"1️⃣ ¿Para cuándo planeas tu viaje?\n" +
		"2️⃣ ¿Cuántas personas viajarán?\n" +
		"3️⃣ ¿Tienes un destino en mente?\n\n" +
		"Responde con el número de la pregunta que quieras contestar primero.",
}

// OptionText returns the canned reply for a top-level option id.
func OptionText(optionID string) (string, bool) {
	text, ok := optionTexts[optionID]
	return text, ok
}

// IsTopOption reports whether id is one of the four root menu entries.
func IsTopOption(id string) bool {
	_, ok := optionTexts[id]
	return ok
}

// DestinationText is the text-flow detail for a destination: highlights,
// price-from and the four numbered follow-up choices.
func DestinationText(dest Destination) (string, error) {
	info, err := destinationByID(dest)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s *%s*\n\n%s\n\n", info.Emoji, info.Name, info.Tagline)
	for _, h := range info.Bullets {
		fmt.Fprintf(&b, "✨ %s\n", h)
	}
	fmt.Fprintf(&b, "\n*Paquetes desde %s*\n\n", info.PriceFrom)
	b.WriteString("¿Qué te gustaría conocer?\n\n" +
		"1️⃣ Hoteles disponibles\n" +
		"2️⃣ Actividades y tours\n" +
		"3️⃣ Solicitar cotización\n" +
		"4️⃣ Volver al menú principal")
	return b.String(), nil
}

// HotelsText is the text-flow lodging overview for a destination.
func HotelsText(dest Destination) (string, error) {
	info, err := destinationByID(dest)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🏨 *Hoteles disponibles en %s*\n\n", info.Name)
	b.WriteString("Aquí tienes nuestras mejores opciones:\n\n")
	for i, h := range hotelTiers {
		fmt.Fprintf(&b, "%d. Hotel %s⭐ - %s/noche\n", i+1, h.Tier, h.PerNight)
	}
	b.WriteString("\nResponde con el número para más detalles o \"menu\" para volver al inicio.")
	return b.String(), nil
}

// ToursText is the text-flow activities overview for a destination.
func ToursText(dest Destination) (string, error) {
	info, err := destinationByID(dest)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🎯 *Actividades y tours en %s*\n\n", info.Name)
	b.WriteString("Descubre nuestras experiencias:\n\n")
	for i, t := range tourKinds {
		fmt.Fprintf(&b, "%d. %s - %s\n", i+1, t.Title, t.Price)
	}
	b.WriteString("\nResponde con el número para más detalles o \"menu\" para volver al inicio.")
	return b.String(), nil
}

// QuoteText asks for the details an advisor needs to build a quote. The bot
// does not parse the answers; an advisor follows up.
func QuoteText(dest Destination) (string, error) {
	info, err := destinationByID(dest)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("💰 *Cotización para %s*\n\n", info.Name) +
		"Para brindarte la mejor cotización, necesitamos:\n\n" +
		"1. ¿Cuántas personas viajan?\n" +
		"2. ¿Cuántas noches?\n" +
		"3. ¿Fecha aproximada?\n\n" +
		"Responde estas preguntas y un asesor te contactará pronto.", nil
}

// HotelDetailText answers a hotel-tier row selection.
func HotelDetailText(dest Destination, tier string) (string, error) {
	info, err := destinationByID(dest)
	if err != nil {
		return "", err
	}
	h, ok := hotelTierByID(tier)
	if !ok {
		return "", fmt.Errorf("unknown hotel tier %q", tier)
	}

	return fmt.Sprintf("🏨 *%s en %s*\n\n", h.Title, info.Name) +
		fmt.Sprintf("Tarifa desde %s por noche.\n\n", h.PerNight) +
		"Para reservar, solicita una cotización desde el menú del destino " +
		"o escribe \"menu\" para volver al inicio.", nil
}

// TourDetailText answers a tour-kind row selection.
func TourDetailText(dest Destination, kind string) (string, error) {
	info, err := destinationByID(dest)
	if err != nil {
		return "", err
	}
	t, ok := tourKindByID(kind)
	if !ok {
		return "", fmt.Errorf("unknown tour %q", kind)
	}

	return fmt.Sprintf("🎯 *%s en %s*\n\n", t.Title, info.Name) +
		fmt.Sprintf("Precio por persona: %s.\n\n", t.Price) +
		"Para reservar, solicita una cotización desde el menú del destino " +
		"o escribe \"menu\" para volver al inicio.", nil
}
