// Package format renders routing results for people: plain-text reports of
// routes, tours and the network itself, and SVG maps of the network with a
// highlighted route.
//
// Nothing here computes routes. Inputs are the results of the dijkstra and
// tsp packages plus a *core.Graph for listings.
package format

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/citynav/core"
	"github.com/katalvlaran/citynav/dijkstra"
	"github.com/katalvlaran/citynav/tsp"
)

// DefaultSpeed is the assumed average driving speed in km/h.
const DefaultSpeed = 60.0

const (
	arrow = " → "
	rule  = "========================================"
)

// TravelTime converts a distance in km to a driving duration at speedKmh.
// A non-positive or non-finite speed falls back to DefaultSpeed.
func TravelTime(distance, speedKmh float64) time.Duration {
	return time.Duration(hours(distance, speedKmh) * float64(time.Hour))
}

func hours(distance, speedKmh float64) float64 {
	if !(speedKmh > 0) || math.IsInf(speedKmh, 1) {
		speedKmh = DefaultSpeed
	}

	return distance / speedKmh
}

// Distance formats km with thousands separators, e.g. "1,234.5 km".
func Distance(km float64) string {
	return humanize.Commaf(km) + " km"
}

// Route writes a shortest-route report, or a not-found message when found
// is false.
func Route(w io.Writer, from, to string, route dijkstra.Route, found bool, speedKmh float64) error {
	if !found {
		_, err := fmt.Fprintf(w, "No route found from %s to %s.\n", from, to)
		return err
	}
	_, err := fmt.Fprintf(w, "%s\nROUTE: %s%s%s\n%s\nRoute: %s\n%s",
		rule, from, arrow, to, rule,
		strings.Join(route.Path, arrow),
		summary(route.Distance, speedKmh))

	return err
}

// Tour writes an optimal-tour report with the return to the start spelled
// out, or an infeasible message when found is false.
func Tour(w io.Writer, tour tsp.Tour, found bool, speedKmh float64) error {
	if !found || len(tour.Path) == 0 {
		_, err := fmt.Fprintln(w, "No valid tour: there is no closed route through every city.")
		return err
	}
	_, err := fmt.Fprintf(w, "Optimal tour: %s%s%s\n%s",
		strings.Join(tour.Path, arrow), arrow, tour.Path[0],
		summary(tour.Distance, speedKmh))

	return err
}

func summary(distance, speedKmh float64) string {
	return fmt.Sprintf("Distance: %s\nTime: %.1f h (%s)\n",
		Distance(distance), hours(distance, speedKmh),
		TravelTime(distance, speedKmh).Round(time.Minute))
}

// CityList writes the cities sorted by name and numbered from 1, the
// numbering the interactive menu selects by.
func CityList(w io.Writer, g *core.Graph) error {
	for i, c := range g.SortedCities() {
		if _, err := fmt.Fprintf(w, "%d. %s\n", i+1, c); err != nil {
			return err
		}
	}

	return nil
}

// Graph writes the network totals followed by each connected city and its
// neighbors, both sorted by name.
func Graph(w io.Writer, g *core.Graph) error {
	var b strings.Builder
	fmt.Fprintf(&b, "=== ROAD NETWORK ===\nCities: %d\nRoads: %d\n\n", g.CityCount(), g.EdgeCount())
	for _, c := range g.SortedCities() {
		ids, _ := g.NeighborIDs(c)
		if len(ids) == 0 {
			continue
		}
		fmt.Fprintf(&b, "%s:\n", c)
		for _, n := range ids {
			km, _ := g.Weight(c, n)
			fmt.Fprintf(&b, "  → %s: %s\n", n, Distance(km))
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())

	return err
}

// RouteTitle is the map title for a shortest route.
func RouteTitle(from, to string, distance float64) string {
	return fmt.Sprintf("Route: %s%s%s (%s)", from, arrow, to, Distance(distance))
}

// TourTitle is the map title for an optimal tour.
func TourTitle(distance float64) string {
	return fmt.Sprintf("Optimal tour (%s)", Distance(distance))
}
