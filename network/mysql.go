package network

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/go-sql-driver/mysql"
)

// Queries used by MySQL. Row order defines city insertion order.
const (
	selectCities = `SELECT name, pos_x, pos_y FROM cities ORDER BY id`
	selectRoads  = `SELECT city_a, city_b, distance_km FROM roads ORDER BY id`
)

// MySQL is a Source backed by two tables:
//
//	cities(id, name, pos_x NULL, pos_y NULL)
//	roads(id, city_a, city_b, distance_km)
type MySQL struct {
	DB *sql.DB
}

// OpenMySQL parses dsn with the MySQL driver and opens a connection pool.
// The pool is lazy; the first query dials the server.
func OpenMySQL(dsn string) (*MySQL, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("network: mysql dsn: %w", err)
	}
	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, fmt.Errorf("network: mysql connector: %w", err)
	}

	return &MySQL{DB: sql.OpenDB(connector)}, nil
}

// Close releases the connection pool.
func (s *MySQL) Close() error { return s.DB.Close() }

// Load implements Source.
func (s *MySQL) Load(ctx context.Context) (Network, error) {
	var n Network

	cities, err := s.DB.QueryContext(ctx, selectCities)
	if err != nil {
		return Network{}, fmt.Errorf("network: query cities: %w", err)
	}
	defer cities.Close()

	for cities.Next() {
		var (
			name string
			x, y sql.NullFloat64
		)
		if err = cities.Scan(&name, &x, &y); err != nil {
			return Network{}, fmt.Errorf("network: scan city: %w", err)
		}
		c := City{Name: name}
		if x.Valid && y.Valid {
			c.Pos = &Point{X: x.Float64, Y: y.Float64}
		}
		n.Cities = append(n.Cities, c)
	}
	if err = cities.Err(); err != nil {
		return Network{}, fmt.Errorf("network: read cities: %w", err)
	}

	roads, err := s.DB.QueryContext(ctx, selectRoads)
	if err != nil {
		return Network{}, fmt.Errorf("network: query roads: %w", err)
	}
	defer roads.Close()

	for roads.Next() {
		var r Road
		if err = roads.Scan(&r.From, &r.To, &r.Distance); err != nil {
			return Network{}, fmt.Errorf("network: scan road: %w", err)
		}
		n.Roads = append(n.Roads, r)
	}
	if err = roads.Err(); err != nil {
		return Network{}, fmt.Errorf("network: read roads: %w", err)
	}
	if len(n.Cities) == 0 {
		return Network{}, ErrEmptyNetwork
	}

	return n, nil
}
