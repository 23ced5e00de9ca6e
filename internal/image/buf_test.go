package image

import (
	"bytes"
	"errors"
	"testing"
)

func TestNewImageBuf(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		format  Format
		wantErr error
	}{
		{"valid premul", 10, 20, FormatRGBAPremul, nil},
		{"single pixel", 1, 1, FormatRGBAPremul, nil},
		{"zero width", 0, 10, FormatRGBAPremul, ErrInvalidDimensions},
		{"negative height", 10, -1, FormatRGBAPremul, ErrInvalidDimensions},
		{"bad format", 10, 10, Format(99), ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := NewImageBuf(tt.width, tt.height, tt.format)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewImageBuf() error = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if buf.Width() != tt.width || buf.Height() != tt.height {
				t.Errorf("dimensions = %dx%d, want %dx%d", buf.Width(), buf.Height(), tt.width, tt.height)
			}
			if buf.Stride() != tt.width*4 {
				t.Errorf("Stride() = %d, want %d", buf.Stride(), tt.width*4)
			}
			if n := len(buf.RGBA().Pix); n != tt.width*tt.height*4 {
				t.Errorf("pixel bytes = %d, want %d", n, tt.width*tt.height*4)
			}
		})
	}
}

func TestImageBuf_SetGetRGBA(t *testing.T) {
	buf, _ := NewImageBuf(4, 3, FormatRGBAPremul)

	buf.SetRGBA(2, 1, 10, 20, 30, 40)
	r, g, b, a := buf.GetRGBA(2, 1)
	if r != 10 || g != 20 || b != 30 || a != 40 {
		t.Errorf("GetRGBA() = (%d,%d,%d,%d), want (10,20,30,40)", r, g, b, a)
	}

	before := bytes.Clone(buf.RGBA().Pix)
	buf.SetRGBA(4, 0, 1, 1, 1, 1)
	buf.SetRGBA(0, -1, 1, 1, 1, 1)
	if !bytes.Equal(before, buf.RGBA().Pix) {
		t.Error("SetRGBA outside the buffer modified pixels")
	}
	if r, g, b, a := buf.GetRGBA(-1, 0); r|g|b|a != 0 {
		t.Errorf("GetRGBA out of bounds = (%d,%d,%d,%d), want zeros", r, g, b, a)
	}
}

func TestImageBuf_Clear(t *testing.T) {
	buf, _ := NewImageBuf(3, 3, FormatRGBAPremul)
	fill(buf, 1, 2, 3, 4)

	buf.Clear()
	for i, v := range buf.RGBA().Pix {
		if v != 0 {
			t.Fatalf("byte %d = %d after Clear, want 0", i, v)
		}
	}
}

func TestImageBuf_CloneIsIndependent(t *testing.T) {
	buf, _ := NewImageBuf(2, 2, FormatRGBAPremul)
	fill(buf, 9, 9, 9, 9)

	clone := buf.Clone()
	clone.SetRGBA(0, 0, 0, 0, 0, 0)

	if _, _, _, a := buf.GetRGBA(0, 0); a != 9 {
		t.Errorf("original modified through clone: alpha = %d, want 9", a)
	}
}

func TestImageBuf_SameSize(t *testing.T) {
	a, _ := NewImageBuf(2, 2, FormatRGBAPremul)
	b, _ := NewImageBuf(2, 2, FormatRGBAPremul)
	c, _ := NewImageBuf(3, 2, FormatRGBAPremul)

	if !a.SameSize(b) {
		t.Error("SameSize() = false for matching buffers")
	}
	if a.SameSize(c) {
		t.Error("SameSize() = true for mismatched sizes")
	}
	if a.SameSize(nil) {
		t.Error("SameSize(nil) = true")
	}
}
