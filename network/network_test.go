package network_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citynav/bfs"
	"github.com/katalvlaran/citynav/core"
	"github.com/katalvlaran/citynav/network"
)

func TestKorea_Build(t *testing.T) {
	g, layout, err := network.Build(network.Korea())
	require.NoError(t, err)
	require.Equal(t, 10, g.CityCount())
	require.Equal(t, 30, g.EdgeCount())
	require.Equal(t, "Seoul", g.Cities()[0], "Seoul is the first city, hence the tour start")
	require.Len(t, layout, 10)

	w, ok := g.Weight("Suwon", "Incheon")
	require.True(t, ok)
	require.Equal(t, 35.0, w)

	x, y, ok := layout.Position("Cheonan")
	require.True(t, ok)
	require.Equal(t, 4.5, x)
	require.Equal(t, 7.0, y)
	require.True(t, bfs.Connected(g))
}

func TestBuild_Errors(t *testing.T) {
	_, _, err := network.Build(network.Network{})
	require.ErrorIs(t, err, network.ErrEmptyNetwork)

	dup := network.Network{Cities: []network.City{{Name: "A"}, {Name: "A"}}}
	_, _, err = network.Build(dup)
	require.ErrorIs(t, err, core.ErrDuplicateCity)
	require.Contains(t, err.Error(), "city #2")

	unknown := network.Network{
		Cities: []network.City{{Name: "A"}},
		Roads:  []network.Road{{From: "A", To: "B", Distance: 3}},
	}
	_, _, err = network.Build(unknown)
	require.ErrorIs(t, err, core.ErrUnknownCity)
	require.Contains(t, err.Error(), "road #1 (A—B)")

	zero := network.Network{
		Cities: []network.City{{Name: "A"}, {Name: "B"}},
		Roads:  []network.Road{{From: "A", To: "B"}},
	}
	_, _, err = network.Build(zero)
	require.ErrorIs(t, err, core.ErrInvalidWeight)
}

func TestBuild_LayoutOnlyForPositionedCities(t *testing.T) {
	n := network.Network{Cities: []network.City{
		{Name: "A", Pos: &network.Point{X: 1, Y: 2}},
		{Name: "B"},
	}}
	_, layout, err := network.Build(n)
	require.NoError(t, err)
	_, _, ok := layout.Position("B")
	require.False(t, ok)
	require.Len(t, layout, 1)
}

func TestYAML_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, network.Encode(&buf, network.Korea()))

	back, err := network.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, network.Korea(), back)
}

func TestDecode_RejectsUnknownFields(t *testing.T) {
	doc := `
cities:
  - name: A
  - name: B
roads:
  - {from: A, to: B, kms: 4}
`
	_, err := network.Decode(strings.NewReader(doc))
	require.Error(t, err)
	require.Contains(t, err.Error(), "kms")
}

func TestDecode_Empty(t *testing.T) {
	_, err := network.Decode(strings.NewReader(""))
	require.ErrorIs(t, err, network.ErrEmptyNetwork)
}

func TestFile_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "net.yaml")
	doc := "name: tiny\ncities:\n  - name: A\n  - name: B\nroads:\n  - {from: A, to: B, km: 7}\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	var src network.Source = network.File{Path: path}
	n, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, "tiny", n.Name)
	require.Equal(t, []network.Road{{From: "A", To: "B", Distance: 7}}, n.Roads)

	_, err = network.File{Path: filepath.Join(t.TempDir(), "missing.yaml")}.Load(context.Background())
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestBuiltin_Load(t *testing.T) {
	n, err := network.Builtin{Network: network.Korea()}.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, n.Cities, 10)
}
