// Command mockup composites a photo into a product template.
//
//	mockup -template ./mug -photo me.jpg -color-a "#c0392b" -alpha 40 -out .
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/mockup"
	"golang.org/x/text/language"
)

func main() {
	var (
		templateDir = flag.String("template", ".", "template directory")
		photoPath   = flag.String("photo", "", "photo to place (required)")
		outDir      = flag.String("out", ".", "output directory")
		colorA      = flag.String("color-a", "", "tint for color region A (hex or CSS name)")
		colorB      = flag.String("color-b", "", "tint for color region B (hex or CSS name)")
		alpha       = flag.Int("alpha", -1, "tint opacity in percent (default from template)")
		zoom        = flag.Float64("zoom", 0, "photo scale (default: cover the template)")
		drag        = flag.String("drag", "", "move the photo by dx,dy pixels")
		lang        = flag.String("lang", "es", "language of user messages")
		verbose     = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *photoPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	mockup.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	tag, err := language.Parse(*lang)
	if err != nil {
		log.Fatalf("Invalid -lang: %v", err)
	}

	fsys := os.DirFS(*templateDir)
	tmpl, err := mockup.LoadTemplate(fsys, mockup.TemplateFile)
	if err != nil {
		log.Fatalf("Failed to load template: %v", err)
	}

	photo, err := os.Open(*photoPath)
	if err != nil {
		log.Fatalf("Failed to open photo: %v", err)
	}
	defer func() { _ = photo.Close() }()

	s, err := mockup.Open(context.Background(), fsys, tmpl, photo,
		mockup.WithLanguage(tag),
		mockup.WithNotifier(mockup.NotifierFunc(func(n mockup.Notification) {
			fmt.Fprintln(os.Stderr, n.Message)
		})),
	)
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}

	if err := s.SetColorA(*colorA); err != nil {
		log.Fatalf("Invalid -color-a: %v", err)
	}
	if err := s.SetColorB(*colorB); err != nil {
		log.Fatalf("Invalid -color-b: %v", err)
	}
	if *alpha >= 0 {
		if err := s.SetAlphaPercent(*alpha); err != nil {
			log.Fatalf("Failed to set alpha: %v", err)
		}
	}
	if *zoom != 0 {
		if err := s.Zoom(*zoom); err != nil {
			log.Fatalf("Invalid -zoom: %v", err)
		}
	}
	if *drag != "" {
		dx, dy, err := parseDrag(*drag)
		if err != nil {
			log.Fatalf("Invalid -drag: %v", err)
		}
		if err := dragBy(s, dx, dy); err != nil {
			log.Fatalf("Failed to drag: %v", err)
		}
	}

	if _, err := s.Compose(); err != nil {
		log.Fatalf("Failed to compose: %v", err)
	}
	path, err := s.ExportFile(*outDir)
	if err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	w, h := s.Result().Bounds()
	log.Printf("Result saved to %s (%dx%d)\n", path, w, h)
}

// parseDrag parses "dx,dy".
func parseDrag(s string) (float64, float64, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("want dx,dy, got %q", s)
	}
	dx, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return 0, 0, err
	}
	dy, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return 0, 0, err
	}
	return dx, dy, nil
}

// dragBy replays a pointer drag from the center of the canvas.
func dragBy(s *mockup.Session, dx, dy float64) error {
	w, h := s.Preview().Bounds()
	x, y := float64(w)/2, float64(h)/2
	for _, ev := range []mockup.Event{
		{Kind: mockup.PointerDown, X: x, Y: y},
		{Kind: mockup.PointerMove, X: x + dx, Y: y + dy},
		{Kind: mockup.PointerUp, X: x + dx, Y: y + dy},
	} {
		if _, err := s.HandleEvent(ev); err != nil {
			return err
		}
	}
	return nil
}
