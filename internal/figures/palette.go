package figures

import "image/color"

// Palette is an ordered list of fill colors, cycled when exhausted.
type Palette []color.Color

// At returns the i-th color, wrapping around.
func (p Palette) At(i int) color.Color {
	if len(p) == 0 {
		return color.Gray{Y: 0xcc}
	}
	if i < 0 {
		i = -i
	}
	return p[i%len(p)]
}

func hex(v uint32) color.Color {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

// Set2 is the ColorBrewer qualitative Set2 palette.
var Set2 = Palette{
	hex(0x66c2a5), hex(0xfc8d62), hex(0x8da0cb), hex(0xe78ac3),
	hex(0xa6d854), hex(0xffd92f), hex(0xe5c494), hex(0xb3b3b3),
}

// Set1 is the ColorBrewer qualitative Set1 palette.
var Set1 = Palette{
	hex(0xe41a1c), hex(0x377eb8), hex(0x4daf4a), hex(0x984ea3),
	hex(0xff7f00), hex(0xffff33), hex(0xa65628), hex(0xf781bf), hex(0x999999),
}

// Pastel is a soft ten-color palette.
var Pastel = Palette{
	hex(0xa1c9f4), hex(0xffb482), hex(0x8de5a1), hex(0xff9f9b), hex(0xd0bbff),
	hex(0xdebb9b), hex(0xfab0e4), hex(0xcfcfcf), hex(0xfffea3), hex(0xb9f2f0),
}
