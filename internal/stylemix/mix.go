// Package stylemix blends extracted style features from multiple references
// into one synthetic feature set and applies it to generation prompts.
package stylemix

import (
	"fmt"
	"math"
	"strings"

	"github.com/melbazpeach-source/luxe-vision-mobile/internal/errs"
	"github.com/melbazpeach-source/luxe-vision-mobile/internal/model"
)

// maxPaletteColors caps the blended color palette.
const maxPaletteColors = 5

// dominanceThreshold is the normalized ratio above which a style's art style
// participates in the blended art-style string.
const dominanceThreshold = 0.2

// Mix blends N style references by normalized ratio.
//
// Palette: each style contributes round(len(palette)*ratio) colors from the
// front of its palette, concatenated in input order and truncated to five.
// Lighting, composition and mood come verbatim from the highest-ratio style
// (first-found wins ties). Art style joins every input above the dominance
// threshold with " mixed with ", preserving input order.
func Mix(styles []model.StyleReference, ratios []float64) (model.StyleFeatures, error) {
	if len(styles) != len(ratios) {
		return model.StyleFeatures{}, fmt.Errorf("styles/ratios length mismatch (%d != %d): %w",
			len(styles), len(ratios), errs.ErrInvalidArgument)
	}
	if len(styles) == 0 {
		return model.StyleFeatures{}, fmt.Errorf("no styles: %w", errs.ErrInvalidArgument)
	}
	var sum float64
	for _, r := range ratios {
		sum += r
	}
	if sum <= 0 {
		return model.StyleFeatures{}, fmt.Errorf("ratio sum must be positive: %w", errs.ErrInvalidArgument)
	}

	norm := make([]float64, len(ratios))
	for i, r := range ratios {
		norm[i] = r / sum
	}

	out := model.StyleFeatures{ColorPalette: []string{}}

	for i, s := range styles {
		take := int(math.Round(float64(len(s.Features.ColorPalette)) * norm[i]))
		if take > len(s.Features.ColorPalette) {
			take = len(s.Features.ColorPalette)
		}
		out.ColorPalette = append(out.ColorPalette, s.Features.ColorPalette[:take]...)
	}
	if len(out.ColorPalette) > maxPaletteColors {
		out.ColorPalette = out.ColorPalette[:maxPaletteColors]
	}

	dominant := 0
	for i := 1; i < len(norm); i++ {
		if norm[i] > norm[dominant] {
			dominant = i
		}
	}
	out.Lighting = styles[dominant].Features.Lighting
	out.Composition = styles[dominant].Features.Composition
	out.Mood = styles[dominant].Features.Mood

	var arts []string
	for i, s := range styles {
		if norm[i] > dominanceThreshold && s.Features.ArtStyle != "" {
			arts = append(arts, s.Features.ArtStyle)
		}
	}
	out.ArtStyle = strings.Join(arts, " mixed with ")

	return out, nil
}

// Intensity thresholds for ApplyToPrompt.
const (
	intensityLighting   = 30
	intensityAtmosphere = 50
	intensityFull       = 70
)

// ApplyToPrompt appends blended features to a base prompt, gated by
// intensity (0..100): lighting above 30, mood and composition above 50,
// art style and the literal color palette above 70. Fields join with commas.
func ApplyToPrompt(basePrompt string, f model.StyleFeatures, intensity int) string {
	parts := []string{basePrompt}
	if intensity > intensityLighting && f.Lighting != "" {
		parts = append(parts, f.Lighting)
	}
	if intensity > intensityAtmosphere {
		if f.Mood != "" {
			parts = append(parts, f.Mood)
		}
		if f.Composition != "" {
			parts = append(parts, f.Composition)
		}
	}
	if intensity > intensityFull {
		if f.ArtStyle != "" {
			parts = append(parts, f.ArtStyle)
		}
		if len(f.ColorPalette) > 0 {
			parts = append(parts, "color palette: "+strings.Join(f.ColorPalette, " "))
		}
	}
	return strings.Join(parts, ", ")
}
