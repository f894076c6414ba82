package imagesvc

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/kopkit/storefront/internal/infra/logging"
	"github.com/kopkit/storefront/internal/repo/imagecache"
)

var (
	// ErrUnknownInterpolator is returned when an unsupported interpolation method is specified.
	ErrUnknownInterpolator = errors.New("unknown interpolator")

	// ErrInvalidWidth is returned when a rendering is requested at a non-positive width.
	ErrInvalidWidth = errors.New("invalid width")
)

// baseSize is the edge length the artwork is composed at before scaling.
// Matches the 400x400 placeholders the catalog seed data was designed for.
const baseSize = 400

//nolint:gochecknoglobals
var (
	// interpolMap maps interpolator names to their implementations.
	// Supported values: "nearestneighbor", "catmullrom", "bilinear", "approxbilinear".
	interpolMap = map[string]draw.Interpolator{
		"nearestneighbor": draw.NearestNeighbor,
		"catmullrom":      draw.CatmullRom,
		"bilinear":        draw.BiLinear,
		"approxbilinear":  draw.ApproxBiLinear,
	}

	// categoryColors maps catalog categories to their placeholder background.
	categoryColors = map[string]color.RGBA{
		"Makanan": {R: 0xE8, G: 0x7C, B: 0x1E, A: 0xFF}, // orange
		"Minuman": {R: 0x6F, G: 0x4E, B: 0x37, A: 0xFF}, // brown
		"ATK":     {R: 0x2B, G: 0x5F, B: 0xA8, A: 0xFF}, // blue
		"Seragam": {R: 0x6A, G: 0x3D, B: 0x9A, A: 0xFF}, // purple
	}

	fallbackColor = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF} // gray
)

func getInterpolatorByName(name string) (draw.Interpolator, error) {
	interpol, ok := interpolMap[strings.ToLower(name)]
	if !ok {
		return nil, ErrUnknownInterpolator
	}

	return interpol, nil
}

// PlaceholderRenderer renders product-card artwork locally: a solid
// category-colored square with the product name, scaled to the requested
// width. It replaces the hosted placeholder images the catalog seed data
// referred to; rendered frames are cached when a cache repository is given.
type PlaceholderRenderer struct {
	Config PlaceholderConfig
	Cache  imagecache.Repository
	Log    logging.Logger
}

// NewPlaceholderRenderer creates a PlaceholderRenderer. The cache may be nil,
// in which case every request renders from scratch.
func NewPlaceholderRenderer(cfg PlaceholderConfig, cache imagecache.Repository) *PlaceholderRenderer {
	return &PlaceholderRenderer{
		Config: cfg,
		Cache:  cache,
		Log:    logging.GetLogger("svc.imagesvc.placeholder_renderer"),
	}
}

// Render produces PNG artwork for the given product name and category at the
// requested width. Returns ErrInvalidWidth for non-positive widths and
// ErrUnknownInterpolator if the configured interpolator is unsupported.
func (r *PlaceholderRenderer) Render(ctx context.Context, name, category string, width int) (data []byte, err error) {
	log := r.Log.With(logging.Group("placeholder",
		"name", name,
		"category", category,
		"width", width,
	))

	defer func() {
		if err != nil {
			log.ErrorContext(ctx, "render failed", "error", err)
		} else {
			log.DebugContext(ctx, "placeholder rendered", "size", len(data))
		}
	}()

	if width <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWidth, width)
	}

	cacheKey := fmt.Sprintf("%s|%s|%d", name, category, width)

	if r.Cache != nil {
		if cached, ok, err := r.Cache.Fetch(ctx, cacheKey); err != nil {
			log.WarnContext(ctx, "cache fetch failed", "error", err)
		} else if ok {
			return cached, nil
		}
	}

	data, err = r.compose(name, category, width)
	if err != nil {
		return nil, err
	}

	if r.Cache != nil {
		if err := r.Cache.Store(ctx, cacheKey, data); err != nil {
			log.WarnContext(ctx, "cache store failed", "error", err)
		}
	}

	return data, nil
}

// DataURI renders the artwork and wraps it in a base64 PNG data URI, ready
// to be stored in a product's image field.
func (r *PlaceholderRenderer) DataURI(ctx context.Context, name, category string, width int) (string, error) {
	data, err := r.Render(ctx, name, category, width)
	if err != nil {
		return "", err
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(data), nil
}

func (r *PlaceholderRenderer) compose(name, category string, width int) ([]byte, error) {
	background, ok := categoryColors[category]
	if !ok {
		background = fallbackColor
	}

	base := image.NewRGBA(image.Rect(0, 0, baseSize, baseSize))
	draw.Draw(base, base.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	drawLabel(base, name)

	bitmap := base

	if width != baseSize {
		interpol, err := getInterpolatorByName(r.Config.Interpolator)
		if err != nil {
			return nil, fmt.Errorf("get interpolator: %w", err)
		}

		bitmap = image.NewRGBA(image.Rect(0, 0, width, width))
		interpol.Scale(bitmap, bitmap.Bounds(), base, base.Bounds(), draw.Over, nil)
	}

	var buffer bytes.Buffer

	if err := png.Encode(&buffer, bitmap); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}

	return buffer.Bytes(), nil
}

// drawLabel draws the text centered on the bitmap.
func drawLabel(bitmap *image.RGBA, label string) {
	face := basicfont.Face7x13

	drawer := font.Drawer{
		Dst:  bitmap,
		Src:  image.NewUniform(color.White),
		Face: face,
	}

	labelWidth := drawer.MeasureString(label).Ceil()

	drawer.Dot = fixed.P(
		(baseSize-labelWidth)/2,
		(baseSize+face.Ascent)/2,
	)

	drawer.DrawString(label)
}
