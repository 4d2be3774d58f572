package forecast

// Icon identifiers produced by IconForCode.
const (
	IconClear        = "clear"
	IconPartlyCloudy = "partly-cloudy"
	IconOvercast     = "overcast"
	IconFog          = "fog"
	IconDrizzle      = "drizzle"
	IconRain         = "rain"
	IconSnow         = "snow"
	IconStorm        = "storm"
)

// IconForCode maps a WMO weather code to an icon identifier. Total over
// all integers; unknown codes fall back to clear.
func IconForCode(code int) string {
	switch {
	case code == 0:
		return IconClear
	case code == 1 || code == 2:
		return IconPartlyCloudy
	case code == 3:
		return IconOvercast
	case code == 45 || code == 48:
		return IconFog
	case code >= 51 && code <= 55:
		return IconDrizzle
	case code >= 61 && code <= 67:
		return IconRain
	case code >= 71 && code <= 77:
		return IconSnow
	case code >= 80 && code <= 82:
		return IconRain
	case code >= 95 && code <= 99:
		return IconStorm
	default:
		return IconClear
	}
}
