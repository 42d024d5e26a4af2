package physics

// durations are handled in seconds
const (
	OneMinute = 60.0
	OneHour   = 60 * OneMinute
	OneDay    = 24 * OneHour
)

func ToMinutes(seconds float64) float64 {
	return seconds / OneMinute
}

func ToSeconds(minutes float64) float64 {
	return minutes * OneMinute
}

// PerMinute converts a rate per second (e.g. m/s) to a rate per minute
func PerMinute(perSecond float64) float64 {
	return perSecond * OneMinute
}

// PerSecond converts a rate per minute (e.g. l/min) to a rate per second
func PerSecond(perMinute float64) float64 {
	return perMinute / OneMinute
}
