package mockup

import (
	"errors"
	"fmt"
)

// Sentinel errors for mockup.
var (
	// ErrAssetLoad is returned when a template asset or the user photo
	// cannot be read or decoded. Use errors.As with *AssetError for details.
	ErrAssetLoad = errors.New("mockup: asset load failed")

	// ErrUnsupportedImage is returned when uploaded data is not a raster
	// image in a supported format.
	ErrUnsupportedImage = errors.New("mockup: unsupported image")

	// ErrComposition is returned when the final composition fails.
	ErrComposition = errors.New("mockup: composition failed")

	// ErrInvalidScale is returned for a zoom scale that is not positive.
	ErrInvalidScale = errors.New("mockup: scale must be positive")

	// ErrInvalidColor is returned when a color string cannot be parsed.
	ErrInvalidColor = errors.New("mockup: invalid color")

	// ErrNoAssets is returned when a session is created without assets.
	ErrNoAssets = errors.New("mockup: no assets")

	// ErrNoResult is returned when exporting before a successful Compose.
	ErrNoResult = errors.New("mockup: nothing composed yet")
)

// AssetError reports which asset failed to load.
type AssetError struct {
	Name string // logical asset name, e.g. "base" or "photo"
	Path string // template path; empty for the uploaded photo
	Err  error
}

func (e *AssetError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("mockup: load %s: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("mockup: load %s (%s): %v", e.Name, e.Path, e.Err)
}

// Unwrap returns both ErrAssetLoad and the underlying cause, so
// errors.Is matches either.
func (e *AssetError) Unwrap() []error {
	return []error{ErrAssetLoad, e.Err}
}
