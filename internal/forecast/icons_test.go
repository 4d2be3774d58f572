package forecast

import "testing"

func TestIconForCode(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{0, IconClear},
		{1, IconPartlyCloudy},
		{2, IconPartlyCloudy},
		{3, IconOvercast},
		{45, IconFog},
		{48, IconFog},
		{51, IconDrizzle},
		{53, IconDrizzle},
		{55, IconDrizzle},
		{61, IconRain},
		{65, IconRain},
		{67, IconRain},
		{71, IconSnow},
		{75, IconSnow},
		{77, IconSnow},
		{80, IconRain},
		{82, IconRain},
		{95, IconStorm},
		{99, IconStorm},
		{999, IconClear},
		{-1, IconClear},
		{4, IconClear},
		{50, IconClear},
	}

	for _, tt := range tests {
		if got := IconForCode(tt.code); got != tt.want {
			t.Errorf("IconForCode(%d) = %s, want %s", tt.code, got, tt.want)
		}
	}
}

// TestIconForCode_Total verifies the mapper returns a known identifier
// for every code in a wide range.
func TestIconForCode_Total(t *testing.T) {
	known := map[string]bool{
		IconClear:        true,
		IconPartlyCloudy: true,
		IconOvercast:     true,
		IconFog:          true,
		IconDrizzle:      true,
		IconRain:         true,
		IconSnow:         true,
		IconStorm:        true,
	}

	for code := -200; code <= 200; code++ {
		if got := IconForCode(code); !known[got] {
			t.Fatalf("IconForCode(%d) = %q, not a known identifier", code, got)
		}
	}
}
