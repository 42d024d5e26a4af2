package chart

import (
	"os"
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/mpapenbr/diveplanner-go/pkg/gases"
	"github.com/mpapenbr/diveplanner-go/pkg/profile"
	"github.com/mpapenbr/diveplanner-go/testsupport/basedata"
)

func sampleProfile() *profile.CalculatedProfile {
	s := basedata.SampleDive(gases.Air, 30, 20)
	s.Add(0, gases.Air, 180)
	return &profile.CalculatedProfile{
		Segments: s,
		Ceilings: []profile.Ceiling{{Time: 0, Depth: 0}, {Time: 60, Depth: 0}},
	}
}

func TestDepthPoints(t *testing.T) {
	got := depthPoints(sampleProfile())
	assert.Equal(t, len(got), 4)
	assert.Equal(t, got[0].Y, 0.0)
	assert.Equal(t, got[1].X, 1.5)
	assert.Equal(t, got[1].Y, -30.0)
	assert.Equal(t, got[3].X, 24.5)
	assert.Equal(t, got[3].Y, 0.0)
}

func TestSave(t *testing.T) {
	file := filepath.Join(t.TempDir(), "profile.png")
	assert.NilError(t, Save(sampleProfile(), "air 30 m", file))
	info, err := os.Stat(file)
	assert.NilError(t, err)
	assert.Assert(t, info.Size() > 0)
}

func TestNew_empty(t *testing.T) {
	_, err := New(nil, "")
	assert.ErrorIs(t, err, ErrEmptyProfile)
	_, err = New(&profile.CalculatedProfile{Segments: nil}, "")
	assert.ErrorIs(t, err, ErrEmptyProfile)
}
