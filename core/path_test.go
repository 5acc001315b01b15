package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citynav/core"
)

func TestPathCost(t *testing.T) {
	g := newTriangle(t)

	c, err := core.PathCost(g, []string{Seoul})
	require.NoError(t, err)
	require.Zero(t, c, "one-city path costs nothing")

	c, err = core.PathCost(g, []string{Incheon, Seoul, Suwon})
	require.NoError(t, err)
	require.Equal(t, WSeoulIncheon+WSeoulSuwon, c)

	_, err = core.PathCost(g, nil)
	require.ErrorIs(t, err, core.ErrInvalidPath)

	_, err = core.PathCost(g, []string{Seoul, "Jeju"})
	require.ErrorIs(t, err, core.ErrUnknownCity)
}

func TestPathCost_MissingEdge(t *testing.T) {
	g := newTwoIslands(t)
	_, err := core.PathCost(g, []string{Seoul, Busan})
	require.ErrorIs(t, err, core.ErrMissingEdge)
	require.Contains(t, err.Error(), "Seoul→Busan")
}

func TestPathCost_Overflow(t *testing.T) {
	g := newTriangle(t)
	require.NoError(t, g.AddEdge(Seoul, Incheon, math.MaxFloat64))
	require.NoError(t, g.AddEdge(Incheon, Suwon, math.MaxFloat64))

	_, err := core.PathCost(g, []string{Seoul, Incheon, Suwon})
	require.ErrorIs(t, err, core.ErrDistanceOverflow)

	_, err = core.TourCost(g, []string{Seoul, Suwon, Incheon})
	require.ErrorIs(t, err, core.ErrDistanceOverflow)
	require.Contains(t, err.Error(), "closing")
}

func TestTourCost(t *testing.T) {
	g := newTriangle(t)

	c, err := core.TourCost(g, []string{Seoul, Incheon, Suwon})
	require.NoError(t, err)
	require.Equal(t, WSeoulIncheon+WIncheonSuwon+WSeoulSuwon, c)

	// Two-city tour goes out and back on the same road.
	c, err = core.TourCost(g, []string{Seoul, Suwon})
	require.NoError(t, err)
	require.Equal(t, 2*WSeoulSuwon, c)

	_, err = core.TourCost(g, []string{Seoul})
	require.ErrorIs(t, err, core.ErrInvalidPath)
}

func TestTourCost_MissingClosingRoad(t *testing.T) {
	g := newTwoIslands(t)
	require.NoError(t, g.AddEdge(Suwon, Busan, 200))

	_, err := core.TourCost(g, []string{Seoul, Suwon, Busan})
	require.ErrorIs(t, err, core.ErrMissingEdge)
	require.Contains(t, err.Error(), "closing")
}

func TestValidatePath(t *testing.T) {
	g := newTriangle(t)
	require.NoError(t, core.ValidatePath(g, []string{Incheon, Suwon}))
	require.ErrorIs(t, core.ValidatePath(g, []string{Incheon, Incheon}), core.ErrInvalidPath)
	require.ErrorIs(t, core.ValidatePath(g, []string{}), core.ErrInvalidPath)
}

func TestValidateTour(t *testing.T) {
	g := newTriangle(t)
	require.NoError(t, core.ValidateTour(g, []string{Suwon, Seoul, Incheon}))
	require.ErrorIs(t, core.ValidateTour(g, []string{Suwon, Seoul}), core.ErrInvalidPath)
	require.ErrorIs(t, core.ValidateTour(g, []string{Suwon, Seoul, Suwon}), core.ErrInvalidPath)
}

func TestPathClone(t *testing.T) {
	p := core.Path{Seoul, Suwon}
	q := p.Clone()
	q[0] = Incheon
	require.Equal(t, Seoul, p[0])
	require.Nil(t, core.Path(nil).Clone())
}
