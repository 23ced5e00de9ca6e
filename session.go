package mockup

import (
	"context"
	"errors"
	"fmt"
	stdimage "image"
	"io"
	"io/fs"
	"path/filepath"

	"golang.org/x/text/message"
)

// Session is one editing session: the loaded assets, the placement of
// the user photo and the tint colors. A new upload starts a new session.
//
// Session is not safe for concurrent use. Every method renders
// synchronously before returning.
type Session struct {
	assets   *Assets
	composer *Composer
	ctrl     *Controller
	colors   ColorState

	preview *Raster
	result  *Raster

	outputName string
	notifier   Notifier
	printer    *message.Printer
}

// Open loads the template assets from fsys together with the photo and
// starts a session. Load failures are reported to the notifier from opts
// before being returned.
func Open(ctx context.Context, fsys fs.FS, tmpl *Template, photo io.Reader, opts ...Option) (*Session, error) {
	opts = append([]Option{WithTemplate(tmpl)}, opts...)
	assets, err := LoadAssets(ctx, fsys, tmpl, photo)
	if err != nil {
		o := applyOptions(opts)
		kind := NoticeTemplateLoad
		var aerr *AssetError
		if errors.As(err, &aerr) && aerr.Name == "photo" {
			kind = NoticePhotoLoad
		}
		o.notifier.Notify(notice(newPrinter(o.lang), kind, err))
		return nil, err
	}
	return NewSession(assets, opts...)
}

// NewSession starts a session for assets. The photo is fitted to cover
// the base template and the preview is rendered once.
func NewSession(assets *Assets, opts ...Option) (*Session, error) {
	composer, err := NewComposer(assets, opts...)
	if err != nil {
		return nil, err
	}
	o := applyOptions(opts)

	preview, err := composer.NewOutput()
	if err != nil {
		return nil, err
	}

	s := &Session{
		assets:     assets,
		composer:   composer,
		colors:     ColorState{Alpha: o.alpha},
		preview:    preview,
		outputName: o.outputName,
		notifier:   o.notifier,
		printer:    newPrinter(o.lang),
	}

	bw, bh := assets.Base.Bounds()
	uw, uh := assets.User.Bounds()
	initial := TransformState{Placement: CoverPlacement(uw, uh, bw, bh)}
	s.ctrl = NewController(initial, stdimage.Rect(0, 0, bw, bh), uw, uh, func(TransformState) error {
		return s.RenderPreview()
	})

	Logger().Info("session started",
		"base", fmt.Sprintf("%dx%d", bw, bh),
		"photo", fmt.Sprintf("%dx%d", uw, uh),
		"scale", initial.Scale)

	if err := s.RenderPreview(); err != nil {
		return nil, err
	}
	return s, nil
}

// Assets returns the session's assets.
func (s *Session) Assets() *Assets { return s.assets }

// Transform returns the current placement and drag state.
func (s *Session) Transform() TransformState { return s.ctrl.State() }

// Colors returns the current tint state.
func (s *Session) Colors() ColorState { return s.colors }

// Preview returns the editor preview raster. It is repainted in place.
func (s *Session) Preview() *Raster { return s.preview }

// Result returns the last successful composition, or nil.
func (s *Session) Result() *Raster { return s.result }

// OutputName returns the file name used by ExportFile.
func (s *Session) OutputName() string { return s.outputName }

// HandleEvent feeds a pointer or touch event to the drag controller.
// The error is the preview repaint failure, if any; the placement has
// moved regardless.
func (s *Session) HandleEvent(ev Event) (Effect, error) {
	return s.ctrl.Handle(ev)
}

// Zoom sets the photo scale, keeping its center fixed. It fails with
// ErrInvalidScale, or with the preview repaint error.
func (s *Session) Zoom(scale float64) error {
	return s.ctrl.Zoom(scale)
}

// SetColorA sets tint A from a color-picker value; "" clears it.
// An invalid value leaves the tint unchanged.
func (s *Session) SetColorA(value string) error {
	return s.setTint(&s.colors.A, "A", value)
}

// SetColorB sets tint B from a color-picker value; "" clears it.
// An invalid value leaves the tint unchanged.
func (s *Session) SetColorB(value string) error {
	return s.setTint(&s.colors.B, "B", value)
}

func (s *Session) setTint(slot *Tint, name, value string) error {
	t, err := ParseTint(value)
	if err != nil {
		Logger().Warn("rejected tint color", "slot", name, "err", err)
		return err
	}
	*slot = t
	return s.RenderPreview()
}

// SetAlpha sets the tint opacity, clamped to [0, 1].
func (s *Session) SetAlpha(alpha float64) error {
	s.colors.Alpha = clampUnit(alpha)
	return s.RenderPreview()
}

// SetAlphaPercent sets the tint opacity from a 0-100 slider value.
func (s *Session) SetAlphaPercent(p int) error {
	return s.SetAlpha(AlphaFromPercent(p))
}

// RenderPreview repaints the preview with the current state. A failure
// is reported to the notifier.
func (s *Session) RenderPreview() error {
	if err := s.composer.Compose(s.preview, s.ctrl.State().Placement, s.colors); err != nil {
		Logger().Error("preview render failed", "err", err)
		s.notifier.Notify(notice(s.printer, NoticeComposition, err))
		return err
	}
	return nil
}

// Compose renders the final result into a new raster. On failure the
// user is notified and the previous result is kept.
func (s *Session) Compose() (*Raster, error) {
	out, err := s.compose()
	if err != nil {
		Logger().Error("composition failed", "err", err)
		s.notifier.Notify(notice(s.printer, NoticeComposition, err))
		return nil, err
	}
	s.result = out
	Logger().Info("result composed")
	return out, nil
}

func (s *Session) compose() (out *Raster, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("%w: %v", ErrComposition, r)
		}
	}()

	out, err = s.composer.NewOutput()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrComposition, err)
	}
	if err := s.composer.Compose(out, s.ctrl.State().Placement, s.colors); err != nil {
		return nil, err
	}
	return out, nil
}

// Export writes the last result as PNG to w.
func (s *Session) Export(w io.Writer) error {
	if s.result == nil {
		return ErrNoResult
	}
	if err := s.result.EncodePNG(w); err != nil {
		s.exportFailed(err)
		return err
	}
	return nil
}

// ExportFile writes the last result as PNG into dir under the output
// file name and returns the path written.
func (s *Session) ExportFile(dir string) (string, error) {
	if s.result == nil {
		return "", ErrNoResult
	}
	path := filepath.Join(dir, s.outputName)
	if err := s.result.SavePNG(path); err != nil {
		s.exportFailed(err)
		return "", err
	}
	Logger().Info("result exported", "path", path)
	return path, nil
}

func (s *Session) exportFailed(err error) {
	Logger().Error("export failed", "err", err)
	s.notifier.Notify(notice(s.printer, NoticeExport, err, s.outputName))
}
