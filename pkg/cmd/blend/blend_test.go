package blend

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpapenbr/diveplanner-go/pkg/blender"
	"github.com/mpapenbr/diveplanner-go/pkg/gases"
)

func TestNitroxCmd(t *testing.T) {
	cmd := NewNitroxCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetArgs([]string{"--target-gas", "EAN32", "--target-pressure", "200"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Start with 0.0 bar of Air.")
	assert.Contains(t, out.String(), "Top up with Oxygen")
	assert.Contains(t, out.String(), "Finally, top up with Air up to 200.0 bar and end up with EAN32.")
}

func TestTrimixCmd(t *testing.T) {
	cmd := NewTrimixCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetArgs([]string{"--target-gas", "21/35"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Top up with 0/100")
	assert.Contains(t, out.String(), "end up with 21/35.")
}

func TestBlendArgs_errors(t *testing.T) {
	out := &bytes.Buffer{}
	tests := []struct {
		name    string
		args    blendArgs
		count   int
		wantErr error
	}{
		{"unknown gas", blendArgs{startGas: "Air", targetGas: "foo", targetPressure: 200,
			topUps: []string{"Oxygen", "Air"}}, 2, gases.ErrUnknownGas},
		{"identical", blendArgs{startGas: "Air", targetGas: "EAN32", targetPressure: 200,
			topUps: []string{"Air", "Air"}}, 2, blender.ErrIdenticalGases},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.args.run(out, tt.count)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	wrongCount := blendArgs{startGas: "Air", targetGas: "EAN32", topUps: []string{"Oxygen"}}
	assert.Error(t, wrongCount.run(out, 2))
}
