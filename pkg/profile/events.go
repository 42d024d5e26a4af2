package profile

import (
	"fmt"
	"slices"

	"github.com/samber/lo"

	"github.com/mpapenbr/diveplanner-go/pkg/gases"
)

type EventType int

const (
	EventLowPpO2 EventType = iota + 1
	EventHighPpO2
	EventHighAscentSpeed
	EventHighDescentSpeed
	EventBrokenCeiling
	EventSwitchToHigherN2
	EventMaxEndExceeded
	EventHighGasDensity
	EventGasSwitch
	EventError
)

var eventTypeNames = map[EventType]string{
	EventLowPpO2:          "low-ppO2",
	EventHighPpO2:         "high-ppO2",
	EventHighAscentSpeed:  "high-ascent-speed",
	EventHighDescentSpeed: "high-descent-speed",
	EventBrokenCeiling:    "broken-ceiling",
	EventSwitchToHigherN2: "switch-to-higher-N2",
	EventMaxEndExceeded:   "max-END-exceeded",
	EventHighGasDensity:   "high-gas-density",
	EventGasSwitch:        "gas-switch",
	EventError:            "error",
}

func (t EventType) String() string {
	if name, ok := eventTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("EventType(%d)", int(t))
}

// Event is something the diver should be aware of.
// Timestamp is in seconds from start of the dive, depth in meters.
type Event struct {
	Timestamp float64    `json:"timeStamp" yaml:"timeStamp"`
	Depth     float64    `json:"depth" yaml:"depth"`
	Type      EventType  `json:"type" yaml:"type"`
	Message   string     `json:"message,omitempty" yaml:"message,omitempty"`
	Gas       *gases.Gas `json:"gas,omitempty" yaml:"gas,omitempty"`
}

func (e Event) String() string {
	ret := fmt.Sprintf("%.0fs %.1fm %s", e.Timestamp, e.Depth, e.Type)
	if e.Gas != nil {
		ret += " " + e.Gas.Name()
	}
	if e.Message != "" {
		ret += ": " + e.Message
	}
	return ret
}

func NewEvent(timestamp, depth float64, t EventType) Event {
	return Event{Timestamp: timestamp, Depth: depth, Type: t}
}

func NewGasEvent(timestamp, depth float64, t EventType, gas gases.Gas) Event {
	return Event{Timestamp: timestamp, Depth: depth, Type: t, Gas: &gas}
}

func NewError(message string) Event {
	return Event{Type: EventError, Message: message}
}

// Events is the append only event log of one profile
type Events struct {
	items []Event
}

func (e *Events) Add(event Event) {
	e.items = append(e.items, event)
}

func (e *Events) Items() []Event {
	return slices.Clone(e.items)
}

func (e *Events) Len() int {
	return len(e.items)
}

// OfType returns all events of type t in insertion order
func (e *Events) OfType(t EventType) []Event {
	return lo.Filter(e.items, func(item Event, _ int) bool { return item.Type == t })
}
