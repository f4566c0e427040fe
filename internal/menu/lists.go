package menu

import (
	"fmt"
	"strings"
)

// TopLevel builds the root menu: the four services offered to every user.
func TopLevel() List {
	return List{
		Header:  "¡Bienvenido a nuestra agencia de viajes! 🌎",
		Body:    "Por favor, selecciona una opción para ayudarte:",
		Footer:  "Gracias por contactarnos",
		Button:  "Ver opciones",
		Section: "Servicios disponibles",
		Rows: []Row{
			{ID: OptionDestinations, Title: "Destinos turísticos", Description: "Conoce nuestros destinos disponibles"},
			{ID: OptionTransport, Title: "Reservar transporte", Description: "Opciones de transporte y reservas"},
			{ID: OptionPricing, Title: "Precios y paquetes", Description: "Información sobre precios"},
			{ID: OptionAgent, Title: "Hablar con un agente", Description: "Contacta a un agente en vivo"},
		},
	}
}

// DestinationDetail builds the per-destination menu with the hotels, tours
// and quote actions plus the return-to-root row.
func DestinationDetail(dest Destination) (List, error) {
	info, err := destinationByID(dest)
	if err != nil {
		return List{}, err
	}

	var body strings.Builder
	body.WriteString(info.Tagline + "\n\n")
	for _, b := range info.Bullets {
		fmt.Fprintf(&body, "✨ %s\n", b)
	}
	fmt.Fprintf(&body, "\n*Paquetes desde %s*", info.PriceFrom)

	return List{
		Header:  info.Emoji + " " + info.Name,
		Body:    body.String(),
		Footer:  "Selecciona una opción para más información",
		Button:  "Ver opciones",
		Section: "Opciones disponibles",
		Rows: []Row{
			{ID: string(dest) + "_hotels", Title: "🏨 Hoteles disponibles", Description: "Ver opciones de hospedaje"},
			{ID: string(dest) + "_tours", Title: "🎯 Tours y actividades", Description: "Conoce nuestras experiencias"},
			{ID: string(dest) + "_quote", Title: "💰 Solicitar cotización", Description: "Obtén un presupuesto personalizado"},
			{ID: MainMenuID, Title: "🏠 Menú principal", Description: "Volver al inicio"},
		},
	}, nil
}

// Hotels builds the lodging list for a destination: three priced tiers and a
// back row.
func Hotels(dest Destination) (List, error) {
	info, err := destinationByID(dest)
	if err != nil {
		return List{}, err
	}

	rows := make([]Row, 0, len(hotelTiers)+1)
	for _, h := range hotelTiers {
		rows = append(rows, Row{
			ID:          fmt.Sprintf("%s_hotel_%s", dest, h.Tier),
			Title:       h.Title,
			Description: h.Description,
		})
	}
	rows = append(rows, backRow(dest))

	return List{
		Header:  "🏨 Hoteles Disponibles",
		Body:    "Opciones de hospedaje en " + info.Name,
		Footer:  "Selecciona un hotel para más detalles",
		Button:  "Ver opciones",
		Section: "Opciones disponibles",
		Rows:    rows,
	}, nil
}

// Tours builds the activities list for a destination: three priced tours and
// a back row.
func Tours(dest Destination) (List, error) {
	info, err := destinationByID(dest)
	if err != nil {
		return List{}, err
	}

	rows := make([]Row, 0, len(tourKinds)+1)
	for _, t := range tourKinds {
		rows = append(rows, Row{
			ID:          fmt.Sprintf("%s_tour_%s", dest, t.Kind),
			Title:       t.Title,
			Description: t.Description,
		})
	}
	rows = append(rows, backRow(dest))

	return List{
		Header:  "🎯 Tours y Actividades",
		Body:    "Experiencias disponibles en " + info.Name,
		Footer:  "Selecciona un tour para más detalles",
		Button:  "Ver opciones",
		Section: "Opciones disponibles",
		Rows:    rows,
	}, nil
}

func backRow(dest Destination) Row {
	return Row{
		ID:          string(dest) + "_back",
		Title:       "↩️ Regresar",
		Description: "Volver al menú anterior",
	}
}
