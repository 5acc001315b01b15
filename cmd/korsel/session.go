package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/citynav/config"
	"github.com/katalvlaran/citynav/core"
	"github.com/katalvlaran/citynav/format"
	"github.com/katalvlaran/citynav/router"
	"github.com/katalvlaran/citynav/tsp"
)

const banner = "========================================"

// errQuit ends the session when input runs out.
var errQuit = errors.New("input closed")

// session is one interactive menu loop over a router.
type session struct {
	in      *bufio.Scanner
	out     io.Writer
	log     *slog.Logger
	r       *router.Router
	layout  format.Layout
	plotter format.Plotter
	speed   float64
	limit   int // largest network for the tour search, 0 = none
	mapDir  string
	title   string
}

func newSession(in io.Reader, out io.Writer, r *router.Router, layout format.Layout, cfg config.Config, log *slog.Logger) *session {
	return &session{
		in:     bufio.NewScanner(in),
		out:    out,
		log:    log,
		r:      r,
		layout: layout,
		plotter: &format.SVGPlotter{
			Width:  cfg.Map.Width,
			Height: cfg.Map.Height,
			Margin: 60,
		},
		speed:  cfg.Routing.Speed,
		limit:  cfg.Routing.MaxCities,
		mapDir: cfg.Map.Dir,
	}
}

// loop shows the menu until the user exits, input ends or ctx is done.
// Query failures are reported and the menu continues.
func (s *session) loop(ctx context.Context) error {
	g := s.r.Graph()
	s.printf("NAVIGATION: %s\nNetwork loaded: %d cities, %d roads.\n", s.name(), g.CityCount(), g.EdgeCount())

	for {
		if ctx.Err() != nil {
			s.printf("\nProgram stopped.\n")
			return nil
		}
		s.printf("\n%s\n%s\n%s\n", banner, strings.ToUpper(s.name()), banner)
		s.printf("1. City list\n2. Graph structure\n3. Shortest path\n4. Draw map\n5. Optimal tour\n6. Exit\n%s\n", banner)

		choice, err := s.prompt("Choice: ")
		if err != nil {
			s.printf("\nProgram stopped.\n")
			return nil
		}

		switch choice {
		case "1":
			s.printf("\nCITIES:\n")
			err = format.CityList(s.out, g)
		case "2":
			err = format.Graph(s.out, g)
		case "3":
			err = s.shortestPath(ctx)
		case "4":
			err = s.drawMap("network.svg", nil, s.name())
		case "5":
			err = s.optimalTour(ctx)
		case "6":
			s.printf("\nGoodbye.\n")
			return nil
		default:
			s.printf("Invalid choice!\n")
			continue
		}
		switch {
		case errors.Is(err, errQuit):
			s.printf("\nProgram stopped.\n")
			return nil
		case err != nil:
			s.log.Error("query failed", slog.Any("error", err))
			s.printf("Error: %v\n", err)
		}
	}
}

func (s *session) shortestPath(ctx context.Context) error {
	from, err := s.pickCity("Start city")
	if err != nil {
		return err
	}
	to, err := s.pickCity("Destination city")
	if err != nil {
		return err
	}

	route, found, err := s.r.ShortestPath(ctx, from, to)
	if err != nil {
		return err
	}
	s.printf("\n")
	if err = format.Route(s.out, from, to, route, found, s.speed); err != nil || !found {
		return err
	}

	return s.offerMap(fmt.Sprintf("route-%s-%s.svg", from, to), route.Path,
		format.RouteTitle(from, to, route.Distance))
}

func (s *session) optimalTour(ctx context.Context) error {
	n := s.r.Graph().CityCount()
	if s.limit > 0 && n > s.limit {
		s.printf("The network has %d cities; the optimal tour is limited to %d.\n"+
			"Raise routing.maxCities or -max-cities to search anyway.\n", n, s.limit)
		return nil
	}
	s.printf("Computing the optimal tour over %d cities (%d candidates)...\n", n, tsp.Candidates(n))

	tour, found, err := s.r.OptimalTour(ctx)
	if err != nil {
		return err
	}
	if err = format.Tour(s.out, tour, found, s.speed); err != nil || !found {
		return err
	}

	return s.offerMap("tour.svg", tour.Path, format.TourTitle(tour.Distance))
}

func (s *session) offerMap(file string, highlight core.Path, title string) error {
	answer, err := s.prompt("\nDraw map? (y/n): ")
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") {
		return nil
	}

	return s.drawMap(file, highlight, title)
}

// drawMap writes an SVG map into the map directory.
func (s *session) drawMap(file string, highlight core.Path, title string) error {
	path := filepath.Join(s.mapDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("map: %w", err)
	}
	if err = s.plotter.Plot(f, s.r.Graph(), s.layout, highlight, title); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("map: %w", err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("map: %w", err)
	}
	s.printf("Map written to %s\n", path)

	return nil
}

// pickCity lists the cities by number and re-prompts until a valid number
// is entered.
func (s *session) pickCity(label string) (string, error) {
	cities := s.r.Graph().SortedCities()
	s.printf("\n%s:\n", label)
	if err := format.CityList(s.out, s.r.Graph()); err != nil {
		return "", err
	}

	for {
		line, err := s.prompt(fmt.Sprintf("Number (1-%d): ", len(cities)))
		if err != nil {
			return "", err
		}
		n, err := strconv.Atoi(line)
		switch {
		case err != nil:
			s.printf("Enter a number!\n")
		case n < 1 || n > len(cities):
			s.printf("Invalid number!\n")
		default:
			return cities[n-1], nil
		}
	}
}

// prompt prints p and reads one trimmed line; errQuit when input is exhausted.
func (s *session) prompt(p string) (string, error) {
	s.printf("%s", p)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", errQuit
	}

	return strings.TrimSpace(s.in.Text()), nil
}

func (s *session) printf(msg string, args ...any) {
	fmt.Fprintf(s.out, msg, args...)
}

func (s *session) name() string {
	if s.title == "" {
		return "road network"
	}

	return s.title
}
