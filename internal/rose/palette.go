package rose

import "fmt"

// Anchor points of the viridis sequential colormap at t = 0, 0.25, 0.5,
// 0.75, 1. Intermediate values are linearly interpolated per channel.
var viridisAnchors = [][3]float64{
	{0x44, 0x01, 0x54},
	{0x3b, 0x52, 0x8b},
	{0x21, 0x91, 0x8c},
	{0x5e, 0xc9, 0x62},
	{0xfd, 0xe7, 0x25},
}

// Viridis maps t in [0, 1] to a hex RGB color on the viridis ramp. Values
// outside [0, 1] are clamped.
func Viridis(t float64) string {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	segments := float64(len(viridisAnchors) - 1)
	pos := t * segments
	i := int(pos)
	if i >= len(viridisAnchors)-1 {
		i = len(viridisAnchors) - 2
	}
	frac := pos - float64(i)

	lo, hi := viridisAnchors[i], viridisAnchors[i+1]
	r := int(lo[0] + (hi[0]-lo[0])*frac + 0.5)
	g := int(lo[1] + (hi[1]-lo[1])*frac + 0.5)
	b := int(lo[2] + (hi[2]-lo[2])*frac + 0.5)

	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
