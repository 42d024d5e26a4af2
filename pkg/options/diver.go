package options

// stress consumption is this multiple of the normal one
const stressFactor = 3

// Diver holds the respiratory minute volumes in liters/minute
type Diver struct {
	RMV       float64 `json:"rmv" yaml:"rmv" validate:"gt=0,lte=90"`
	StressRMV float64 `json:"stressRmv" yaml:"stressRmv" validate:"gte=0,lte=200"`
}

func NewDiver(rmv float64) *Diver {
	return &Diver{RMV: rmv, StressRMV: rmv * stressFactor}
}

func DefaultDiver() *Diver {
	return NewDiver(20)
}
