package chart

// PaletteColor names a series color for the external engine and carries
// its RGB value for the native backend.
type PaletteColor struct {
	// Name is the color name understood by the external plotting engine.
	Name string

	R, G, B uint8
}

// Palette is the fixed cyclic series palette. Series index i always
// receives Palette[i % len(Palette)].
var Palette = [7]PaletteColor{
	{Name: "black", R: 0x00, G: 0x00, B: 0x00},
	{Name: "red", R: 0xff, G: 0x00, B: 0x00},
	{Name: "green3", R: 0x00, G: 0xcd, B: 0x00},
	{Name: "blue", R: 0x00, G: 0x00, B: 0xff},
	{Name: "cyan", R: 0x00, G: 0xff, B: 0xff},
	{Name: "magenta", R: 0xff, G: 0x00, B: 0xff},
	{Name: "darkorange", R: 0xff, G: 0x8c, B: 0x00},
}

// ColorAt returns the palette color for a series index, cycling.
func ColorAt(index int) PaletteColor {
	return Palette[index%len(Palette)]
}
