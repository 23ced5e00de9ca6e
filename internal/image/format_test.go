package image

import "testing"

func TestFormatInfo(t *testing.T) {
	tests := []struct {
		format  Format
		bpp     int
		name    string
		isValid bool
	}{
		{FormatRGBAPremul, 4, "RGBAPremul", true},
		{Format(200), 0, "Unknown", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.format.BytesPerPixel(); got != tt.bpp {
				t.Errorf("BytesPerPixel() = %d, want %d", got, tt.bpp)
			}
			if got := tt.format.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.format.IsValid(); got != tt.isValid {
				t.Errorf("IsValid() = %v, want %v", got, tt.isValid)
			}
		})
	}
}

func TestFormatRowBytes(t *testing.T) {
	if got := FormatRGBAPremul.RowBytes(10); got != 40 {
		t.Errorf("RowBytes(10) = %d, want 40", got)
	}
}
