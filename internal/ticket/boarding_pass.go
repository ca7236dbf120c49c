// Package ticket renders printable documents for bookings.
package ticket

import (
	"context"
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"skyvoyager/internal/models"
)

// Renderer produces boarding pass PDFs.
type Renderer struct{}

// NewRenderer creates a Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// BoardingPass renders a one-page boarding pass for booking.
func (r *Renderer) BoardingPass(ctx context.Context, booking models.Booking) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := config.NewBuilder().
		WithTitle("Boarding Pass "+booking.PNR, true).
		WithAuthor("SkyVoyager", true).
		Build()

	m := maroto.New(cfg)
	f := booking.Flight

	m.AddRow(20,
		text.NewCol(8, f.Airline.Name, props.Text{
			Size:  18,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
		text.NewCol(4, "BOARDING PASS", props.Text{
			Size:  12,
			Style: fontstyle.Bold,
			Align: align.Right,
			Top:   3,
		}),
	)
	m.AddRow(4, line.NewCol(12))

	m.AddRow(25,
		col.New(5).Add(
			text.New(f.DepartureAirport, props.Text{Size: 22, Style: fontstyle.Bold}),
			text.New(f.DepartureCity, props.Text{Top: 11, Size: 9}),
		),
		text.NewCol(2, "to", props.Text{Top: 5, Align: align.Center}),
		col.New(5).Add(
			text.New(f.ArrivalAirport, props.Text{Size: 22, Style: fontstyle.Bold, Align: align.Right}),
			text.New(f.ArrivalCity, props.Text{Top: 11, Size: 9, Align: align.Right}),
		),
	)

	m.AddRow(18,
		field(3, "Passenger", booking.PassengerName),
		field(3, "Flight", f.ID),
		field(3, "Seat", booking.SeatNumber),
		field(3, "PNR", booking.PNR),
	)
	m.AddRow(18,
		field(3, "Departs", f.DepartureDate+" "+f.DepartureTime),
		field(3, "Arrives", f.ArrivalDate+" "+f.ArrivalTime),
		field(3, "Duration", f.Duration),
		field(3, "Stops", stopsLabel(f.Stops)),
	)
	m.AddRow(18,
		field(3, "Booking", booking.ID),
		field(3, "Fare", fmt.Sprintf("INR %d", f.CurrentPrice)),
		field(3, "Status", strings.ToUpper(string(booking.Status))),
		field(3, "Email", booking.PassengerEmail),
	)

	m.AddRow(4, line.NewCol(12))
	m.AddRow(10,
		text.NewCol(12, "Please arrive at the gate at least 45 minutes before departure.", props.Text{
			Size:  8,
			Align: align.Center,
			Top:   3,
		}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("render boarding pass %s: %w", booking.ID, err)
	}
	return doc.GetBytes(), nil
}

func field(size int, label, value string) core.Col {
	return col.New(size).Add(
		text.New(label, props.Text{Size: 8, Style: fontstyle.Bold}),
		text.New(value, props.Text{Top: 5, Size: 10}),
	)
}

func stopsLabel(stops int) string {
	if stops == 0 {
		return "Non-stop"
	}
	return fmt.Sprintf("%d stop", stops)
}
