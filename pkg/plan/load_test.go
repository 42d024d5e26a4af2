package plan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpapenbr/diveplanner-go/pkg/gases"
	"github.com/mpapenbr/diveplanner-go/pkg/options"
)

const singleJSON = `{
  "name": "reef",
  "options": {"gfLow": 0.3, "safetyStop": 0},
  "tanks": [
    {"id": 1, "size": 15, "startPressure": 200, "gas": {"fO2": 0.209, "fHe": 0}},
    {"id": 2, "size": 11.1, "startPressure": 200, "gas": {"fO2": 0.5, "fHe": 0}}
  ],
  "plan": [
    {"startDepth": 0, "endDepth": 30, "duration": 100, "tankId": 1},
    {"startDepth": 30, "endDepth": 30, "duration": 1100, "tankId": 1}
  ]
}`

const listYAML = `
dives:
  - name: first
    tanks:
      - {id: 1, size: 12, startPressure: 200, gas: {fO2: 0.32, fHe: 0}}
    plan:
      - {startDepth: 0, endDepth: 20, duration: 120, tankId: 1}
  - name: second
    isComplex: true
    maxDensity: 6.2
    diver: {rmv: 15, stressRmv: 45}
    tanks:
      - {id: 3, size: 24, startPressure: 230, gas: {fO2: 0.18, fHe: 0.45}}
    plan:
      - {startDepth: 0, endDepth: 60, duration: 180, gas: {fO2: 0.18, fHe: 0.45}}
`

func TestParseJSON(t *testing.T) {
	d, err := Parse([]byte(singleJSON), FormatJSON, 0)
	require.NoError(t, err)

	assert.Equal(t, "reef", d.Name)
	assert.InDelta(t, 0.3, d.Options.GfLow, 1e-9)
	assert.Equal(t, options.SafetyStopNever, d.Options.SafetyStop)
	// defaults stay for missing values
	assert.InDelta(t, 0.85, d.Options.GfHigh, 1e-9)
	assert.Equal(t, options.DefaultDiver(), d.Diver)
	assert.InDelta(t, DefaultMaxDensity, d.MaxDensity, 1e-9)

	tankList := d.CoreTanks()
	require.Len(t, tankList, 2)
	assert.Equal(t, 2, tankList[1].ID)
	assert.InDelta(t, 11.1, tankList[1].Size, 1e-9)
	assert.True(t, tankList[1].Gas.CompositionEquals(gases.New(0.5, 0)))

	plan := d.CoreSegments()
	require.Equal(t, 2, plan.Len())
	assert.Equal(t, 1, plan.At(0).Tank)
	assert.True(t, plan.At(0).Gas.CompositionEquals(gases.Air))
	assert.InDelta(t, 1200, plan.Duration(), 1e-9)
}

func TestParseYAMLList(t *testing.T) {
	d, err := Parse([]byte(listYAML), FormatYAML, 1)
	require.NoError(t, err)

	assert.Equal(t, "second", d.Name)
	assert.True(t, d.IsComplex)
	assert.InDelta(t, 6.2, d.MaxDensity, 1e-9)
	assert.Equal(t, &options.Diver{RMV: 15, StressRMV: 45}, d.Diver)
	segment := d.CoreSegments().At(0)
	assert.Equal(t, 0, segment.Tank)
	assert.True(t, segment.Gas.CompositionEquals(gases.New(0.18, 0.45)))

	first, err := Parse([]byte(listYAML), FormatYAML, 0)
	require.NoError(t, err)
	assert.Equal(t, "first", first.Name)

	_, err = Parse([]byte(listYAML), FormatYAML, 2)
	assert.ErrorIs(t, err, ErrDiveNotFound)
	_, err = Parse([]byte(singleJSON), FormatJSON, 1)
	assert.ErrorIs(t, err, ErrDiveNotFound)
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", `{"name": `},
		{"noTanks", `{"plan": [{"startDepth": 0, "endDepth": 10, "duration": 60, "gas": {"fO2": 0.21}}]}`},
		{"noPlan", `{"tanks": [{"id": 1, "size": 12, "startPressure": 200, "gas": {"fO2": 0.21}}]}`},
		{"gasSum", `{"tanks": [{"id": 1, "size": 12, "startPressure": 200, "gas": {"fO2": 0.5, "fHe": 0.6}}],
			"plan": [{"startDepth": 0, "endDepth": 10, "duration": 60, "tankId": 1}]}`},
		{"duplicateTank", `{"tanks": [{"id": 1, "size": 12, "startPressure": 200, "gas": {"fO2": 0.21}},
			{"id": 1, "size": 12, "startPressure": 200, "gas": {"fO2": 0.21}}],
			"plan": [{"startDepth": 0, "endDepth": 10, "duration": 60, "tankId": 1}]}`},
		{"unknownTank", `{"tanks": [{"id": 1, "size": 12, "startPressure": 200, "gas": {"fO2": 0.21}}],
			"plan": [{"startDepth": 0, "endDepth": 10, "duration": 60, "tankId": 2}]}`},
		{"noGas", `{"tanks": [{"id": 1, "size": 12, "startPressure": 200, "gas": {"fO2": 0.21}}],
			"plan": [{"startDepth": 0, "endDepth": 10, "duration": 60}]}`},
		{"badOptions", `{"options": {"gfLow": 0.9, "gfHigh": 0.5},
			"tanks": [{"id": 1, "size": 12, "startPressure": 200, "gas": {"fO2": 0.21}}],
			"plan": [{"startDepth": 0, "endDepth": 10, "duration": 60, "tankId": 1}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), FormatJSON, 0)
			assert.ErrorIs(t, err, ErrInvalidPlan)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "dives.yaml")
	require.NoError(t, os.WriteFile(file, []byte(listYAML), 0o600))

	d, err := LoadFile(file, 1)
	require.NoError(t, err)
	assert.Equal(t, "second", d.Name)

	_, err = LoadFile(filepath.Join(dir, "missing.json"), 0)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFormatOf(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatOf("a/b.YML"))
	assert.Equal(t, FormatYAML, FormatOf("plan.yaml"))
	assert.Equal(t, FormatJSON, FormatOf("plan.json"))
	assert.Equal(t, FormatJSON, FormatOf("plan"))
}
