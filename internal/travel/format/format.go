// Package format renders flight offers as a text report and as compact
// machine-readable summaries.
package format

import (
	"fmt"
	"strings"

	"github.com/ozkangu/travel-mcp/internal/travel/entity"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const width = 48

var (
	heavyRule  = strings.Repeat("━", width)
	thinRule   = strings.Repeat("─", width)
	bannerRule = strings.Repeat("=", width)
)

// amountLocale is the locale fares are grouped in; they are quoted in TRY.
var amountLocale = language.Turkish

// Amount groups an integer amount with the locale's thousands separator.
func Amount(amount int) string {
	return message.NewPrinter(amountLocale).Sprintf("%d", amount)
}

// Price renders an amount followed by its currency code.
func Price(p entity.Price) string {
	return Amount(p.Amount) + " " + p.Currency
}

// NotFound is the report for a route with no offers. It names the raw
// inputs because they did not resolve to airports.
func NotFound(from, to, date string) string {
	return fmt.Sprintf("No flights found from %q to %q on %s.\n\n"+
		"Please check the airport codes (IST, ESB, ADB, AYT, etc.) or use a city name (Istanbul, Ankara, London).",
		from, to, date)
}

// FlightResults renders offers as a report with a header, one card per
// offer and a footer naming the cheapest fare. offers must already be
// sorted by ascending price.
func FlightResults(offers []entity.FlightOffer, from, to, date string) string {
	if len(offers) == 0 {
		return NotFound(from, to, date)
	}

	first := offers[0]
	var b strings.Builder

	noun := "flights"
	if len(offers) == 1 {
		noun = "flight"
	}
	fmt.Fprintf(&b, "\n%s\n", bannerRule)
	b.WriteString("  FLIGHT RESULTS\n")
	fmt.Fprintf(&b, "  %s (%s)  ->  %s (%s)\n",
		first.Departure.City, first.Departure.AirportCode, first.Arrival.City, first.Arrival.AirportCode)
	fmt.Fprintf(&b, "  Date: %s\n", date)
	fmt.Fprintf(&b, "  %d %s found\n", len(offers), noun)
	b.WriteString(bannerRule)
	b.WriteString("\n")

	for _, offer := range offers {
		writeCard(&b, offer)
	}

	fmt.Fprintf(&b, "\n%s\n", thinRule)
	fmt.Fprintf(&b, "  Lowest fare: %s\n", Price(first.Price))
	fmt.Fprintf(&b, "  (%s %s - %s)\n", first.Airline, first.FlightNumber, first.Departure.Time)
	b.WriteString(thinRule)

	return b.String()
}

func writeCard(b *strings.Builder, f entity.FlightOffer) {
	fmt.Fprintf(b, "\n%s\n", heavyRule)
	b.WriteString(spread(f.Airline, f.FlightNumber))
	fmt.Fprintf(b, "%s\n\n", thinRule)

	b.WriteString(spread(f.Departure.AirportCode, f.Arrival.AirportCode))
	b.WriteString(spread(f.Departure.City, f.Arrival.City))
	fmt.Fprintf(b, "\n  %s  ────────  %s  ────────  %s\n\n", f.Departure.Time, f.Duration, f.Arrival.Time)

	fmt.Fprintf(b, "  %s\n", f.Aircraft)
	fmt.Fprintf(b, "  Cabin: %s  %s\n", f.Cabin, stopBadge(f.Stops))
	if f.StopInfo != "" {
		fmt.Fprintf(b, "  Stop: %s\n", f.StopInfo)
	}

	fmt.Fprintf(b, "%s\n", thinRule)
	fmt.Fprintf(b, "  %s\n", Price(f.Price))
	if f.SeatsLeft != nil {
		fmt.Fprintf(b, "  Only %d seats left!\n", *f.SeatsLeft)
	}
	b.WriteString(heavyRule)
	b.WriteString("\n")
}

// spread puts left and right on one indented line, right aligned to width.
func spread(left, right string) string {
	gap := width - 2 - len([]rune(left)) - len([]rune(right))
	if gap < 2 {
		gap = 2
	}
	return "  " + left + strings.Repeat(" ", gap) + right + "\n"
}

func stopBadge(stops int) string {
	switch stops {
	case 0:
		return "Direct"
	case 1:
		return "1 stop"
	default:
		return fmt.Sprintf("%d stops", stops)
	}
}
