package blend

import (
	"github.com/gogpu/mockup/internal/image"
)

// Layer represents an isolated drawing surface with blend mode and opacity.
//
// A layer carries the state a canvas keeps in save()/restore(): drawing
// into it never sees the parent's blend mode or opacity, and popping it
// applies both exactly once.
//
// Thread safety: Layer is not safe for concurrent access.
type Layer struct {
	buffer    *image.ImageBuf
	blendMode BlendMode
	opacity   float64
}

// NewLayer creates a full-size layer for a width x height target.
// The buffer comes from pool. Opacity is clamped to [0.0, 1.0].
func NewLayer(blendMode BlendMode, opacity float64, width, height int, pool *image.Pool) (*Layer, error) {
	buf := pool.Get(width, height, image.FormatRGBAPremul)
	if buf == nil {
		return nil, image.ErrInvalidDimensions
	}

	l := &Layer{
		buffer:    buf,
		blendMode: blendMode,
	}
	l.SetOpacity(opacity)
	return l, nil
}

// Buffer returns the layer's image buffer.
func (l *Layer) Buffer() *image.ImageBuf {
	return l.buffer
}

// SetOpacity sets the layer's opacity, clamped to [0.0, 1.0].
func (l *Layer) SetOpacity(opacity float64) {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	l.opacity = opacity
}

// LayerStack manages a stack of layers for nested compositing operations.
//
// The base buffer is the final output surface; it is never replaced, only
// drawn onto when the bottom layer pops.
//
// Thread safety: LayerStack is not safe for concurrent access.
type LayerStack struct {
	layers []*Layer
	base   *image.ImageBuf
	pool   *image.Pool
}

// NewLayerStack creates a new layer stack with the given base image buffer.
// If pool is nil, the package default pool is used.
func NewLayerStack(base *image.ImageBuf, pool *image.Pool) *LayerStack {
	if pool == nil {
		pool = image.Default()
	}

	return &LayerStack{
		layers: make([]*Layer, 0, 4),
		base:   base,
		pool:   pool,
	}
}

// Push creates a new base-sized layer with the given blend mode and
// opacity and pushes it onto the stack.
func (s *LayerStack) Push(blendMode BlendMode, opacity float64) (*Layer, error) {
	w, h := s.base.Bounds()
	layer, err := NewLayer(blendMode, opacity, w, h, s.pool)
	if err != nil {
		return nil, err
	}

	s.layers = append(s.layers, layer)
	return layer, nil
}

// Pop removes the top layer, composites it onto the parent layer or base
// and returns that destination. Returns nil if the stack is empty.
func (s *LayerStack) Pop() *image.ImageBuf {
	if len(s.layers) == 0 {
		return nil
	}

	layer := s.layers[len(s.layers)-1]
	s.layers = s.layers[:len(s.layers)-1]

	dst := s.Current()
	Composite(dst, layer.buffer, layer.blendMode, layer.opacity)
	s.pool.Put(layer.buffer)

	return dst
}

// Current returns the current drawing target (top layer or base).
func (s *LayerStack) Current() *image.ImageBuf {
	if len(s.layers) == 0 {
		return s.base
	}
	return s.layers[len(s.layers)-1].buffer
}
