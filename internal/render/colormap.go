package render

import "image/color"

// diverging is a blue-yellow-red scale (RdYlBu reversed) sampled at five
// anchors and linearly interpolated between them.
var diverging = []color.RGBA{
	{49, 54, 149, 255},
	{116, 173, 209, 255},
	{255, 255, 191, 255},
	{253, 174, 97, 255},
	{165, 0, 38, 255},
}

// Colormap maps t in [0,1] onto the diverging scale. Values outside the
// range clamp to the endpoints.
func Colormap(t float64) color.RGBA {
	if t <= 0 {
		return diverging[0]
	}
	if t >= 1 {
		return diverging[len(diverging)-1]
	}

	pos := t * float64(len(diverging)-1)
	i := int(pos)
	frac := pos - float64(i)

	a, b := diverging[i], diverging[i+1]
	return color.RGBA{
		R: lerp(a.R, b.R, frac),
		G: lerp(a.G, b.G, frac),
		B: lerp(a.B, b.B, frac),
		A: 255,
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}
