package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func runArgs(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestBearing(t *testing.T) {
	code, out, _ := runArgs(t, "bearing", "0", "0", "0", "1")
	require.Equal(t, 0, code)

	var r bearingResult
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.InDelta(t, 90, r.Initial, 1e-9)
	assert.InDelta(t, 90, r.Final, 1e-9)
}

func TestDistanceUnits(t *testing.T) {
	tests := []struct {
		unit string
		want float64
	}{
		{"nm", 60.10771641105484},
		{"m", 111319.49079327357},
		{"km", 111.31949079327356},
	}
	for _, tt := range tests {
		t.Run(tt.unit, func(t *testing.T) {
			code, out, _ := runArgs(t, "--format", "json", "--unit", tt.unit, "distance", "0", "0", "0", "1")
			require.Equal(t, 0, code)

			var r distanceResult
			require.NoError(t, json.Unmarshal([]byte(out), &r))
			assert.InDelta(t, tt.want, r.Distance, 1e-6)
			assert.Equal(t, tt.unit, r.Unit)
		})
	}
}

func TestProject(t *testing.T) {
	code, out, _ := runArgs(t, "-u", "km", "project", "0", "0", "90", "111.31949079327356")
	require.Equal(t, 0, code)

	var r projectResult
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.InDelta(t, 0, r.Lat, 1e-9)
	assert.InDelta(t, 1, r.Long, 1e-9)
	assert.InDelta(t, 90, r.FinalBearing, 1e-9)
}

func TestBounds(t *testing.T) {
	code, out, _ := runArgs(t, "bounds", "0", "10", "60")
	require.Equal(t, 0, code)
	var r boundsResult
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.False(t, r.Wraps)
	assert.Less(t, r.SouthWest.Long, 10.0)
	assert.Greater(t, r.NorthEast.Long, 10.0)

	code, out, _ = runArgs(t, "bounds", "0", "179.5", "60")
	require.Equal(t, 0, code)
	r = boundsResult{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.True(t, r.Wraps)
}

func TestIntersect(t *testing.T) {
	code, out, _ := runArgs(t, "-f", "json", "intersect", "--",
		"39.778889", "-104.9825", "0", "43.778889", "-102.9825", "0")
	require.Equal(t, 0, code)

	var r intersectResult
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.InDelta(t, 90, r.First.Lat, 1e-6)
	assert.InDelta(t, -90, r.Second.Lat, 1e-6)
}

func TestSmall(t *testing.T) {
	code, out, _ := runArgs(t, "small", "40", "10", "120", "35", "11", "0")
	require.Equal(t, 0, code)
	var r smallResult
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	require.True(t, r.Intersects)
	require.Len(t, r.Points, 2)
	assert.InDelta(t, 41.84806595377503, r.Points[0].Lat, 1e-6)
	assert.InDelta(t, 38.16052866510105, r.Points[1].Lat, 1e-6)

	for _, policy := range []string{"first", "closest"} {
		t.Run(policy, func(t *testing.T) {
			code, out, _ := runArgs(t, "small", "--policy", policy, "--", "40", "10", "120", "35", "11", "0")
			require.Equal(t, 0, code)
			var r smallResult
			require.NoError(t, yaml.Unmarshal([]byte(out), &r))
			require.Len(t, r.Points, 1)
			assert.InDelta(t, 38.16052866510105, r.Points[0].Lat, 1e-6)
			assert.InDelta(t, 11, r.Points[0].Long, 1e-6)
		})
	}

	code, out, _ = runArgs(t, "small", "0", "0", "59", "0", "1", "0")
	require.Equal(t, 0, code)
	r = smallResult{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.False(t, r.Intersects)
	assert.Empty(t, r.Points)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "navgeo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  format: json\n  unit: m\n"), 0o600))

	code, out, _ := runArgs(t, "--config", path, "distance", "0", "0", "0", "1")
	require.Equal(t, 0, code)
	var r distanceResult
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, "m", r.Unit)

	// flags override the file
	code, out, _ = runArgs(t, "--config", path, "--unit", "km", "distance", "0", "0", "0", "1")
	require.Equal(t, 0, code)
	r = distanceResult{}
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, "km", r.Unit)
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"no command", nil, 2},
		{"unknown flag", []string{"--bogus", "bearing"}, 2},
		{"bad unit", []string{"--unit", "mi", "distance", "0", "0", "0", "1"}, 2},
		{"missing config", []string{"--config", "/nonexistent/navgeo.yaml", "bearing", "0", "0", "0", "1"}, 1},
		{"unknown command", []string{"azimuth", "0", "0"}, 1},
		{"argument count", []string{"bearing", "0", "0", "0"}, 1},
		{"not a number", []string{"bearing", "0", "0", "north", "1"}, 1},
		{"unknown policy", []string{"small", "--policy", "last", "40", "10", "120", "35", "11", "0"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, _ := runArgs(t, tt.args...)
			assert.Equal(t, tt.code, code)
			assert.Empty(t, out)
		})
	}
}

func TestHelp(t *testing.T) {
	code, _, stderr := runArgs(t, "--help")
	assert.Equal(t, 0, code)
	assert.Contains(t, stderr, "intersect")
	assert.Contains(t, stderr, "clat clon radius lat lon bearing")
}
