package image

// Format represents a pixel storage format.
type Format uint8

const (
	// FormatRGBAPremul is 32-bit RGBA with premultiplied alpha (4 bytes per pixel).
	// Every compositing buffer uses this format.
	FormatRGBAPremul Format = iota

	// formatCount is the number of formats (for internal use).
	formatCount
)

// formatInfo contains metadata about a pixel format.
type formatInfo struct {
	bytesPerPixel int
	name          string
}

var formatInfoTable = [formatCount]formatInfo{
	FormatRGBAPremul: {bytesPerPixel: 4, name: "RGBAPremul"},
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// BytesPerPixel returns the number of bytes per pixel for this format.
func (f Format) BytesPerPixel() int {
	if !f.IsValid() {
		return 0
	}
	return formatInfoTable[f].bytesPerPixel
}

// RowBytes calculates the number of bytes needed for a row of the given width.
func (f Format) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}

// String returns a string representation of the format.
func (f Format) String() string {
	if !f.IsValid() {
		return "Unknown"
	}
	return formatInfoTable[f].name
}
