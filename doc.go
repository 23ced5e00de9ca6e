// Package mockup composites a user photo into a product template.
//
// # Overview
//
// A template is a base image plus four alpha masks: an exterior and an
// interior mask through which the photo is shown, and two color masks
// marking regions the user may tint. The photo is drawn twice, once per
// photo mask, at two related placements; the interior copy is a smaller
// version centered on the exterior one.
//
// # Quick Start
//
//	tmpl, err := mockup.LoadTemplate(os.DirFS("template"), mockup.TemplateFile)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	photo, _ := os.Open("me.jpg")
//	s, err := mockup.Open(ctx, os.DirFS("template"), tmpl, photo)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = s.SetColorA("#FF0000")
//	_ = s.SetAlphaPercent(50)
//	if _, err := s.Compose(); err == nil {
//	    _, _ = s.ExportFile(".")
//	}
//
// # Layers
//
// Compose paints, bottom to top: the base template, tint A, tint B, and
// the masked photo layer. Tints are blended with multiply by default so
// the template's shading shows through, and they never cover the photo.
//
// # Interaction
//
// Step and Zoom are pure functions over TransformState. Controller and
// Session apply them to input events and repaint the preview after every
// event that moves the photo.
//
// # Logging
//
// mockup is silent by default. Use SetLogger to route its slog output.
package mockup
