package segments

import (
	"github.com/mpapenbr/diveplanner-go/pkg/gases"
)

const (
	MsgNoSegment         = "There needs to be at least one segment at depth."
	MsgNotBreathableMod  = "Gas is not breathable at bottom segment depth."
	MsgNotBreathableCeil = "Gas is not breathable at segment ceiling."
)

// Validate returns messages for segments where the gas can't be breathed
func Validate(s *Segments, maxPpO2 float64, c gases.DepthConverter) []string {
	messages := []string{}
	if !s.Any() {
		messages = append(messages, MsgNoSegment)
	}

	s.ForEach(func(segment Segment) {
		gasMod := segment.Gas.MODDepth(maxPpO2, c)
		if segment.MaxDepth() > gasMod {
			messages = append(messages, MsgNotBreathableMod)
		}
		gasCeiling := segment.Gas.CeilingDepth(c)
		if gasCeiling > segment.MinDepth() {
			messages = append(messages, MsgNotBreathableCeil)
		}
	})
	return messages
}
