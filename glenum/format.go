package glenum

// formatSizes is the closed set of pixel formats SizeofFormat recognizes,
// mapped to bytes per pixel for GL_UNSIGNED_BYTE data.
var formatSizes = map[int]int{
	Alpha:          1,
	Luminance:      1,
	LuminanceAlpha: 2,
	RGB:            3,
	RGBA:           4,
}

// FormatSizes returns a copy of the recognized pixel formats and their
// per-pixel byte counts.
func FormatSizes() map[int]int {
	out := make(map[int]int, len(formatSizes))
	for format, size := range formatSizes {
		out[format] = size
	}
	return out
}
