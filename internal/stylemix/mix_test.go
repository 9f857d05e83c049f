package stylemix

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/melbazpeach-source/luxe-vision-mobile/internal/errs"
	"github.com/melbazpeach-source/luxe-vision-mobile/internal/model"
)

func styleRef(name string, f model.StyleFeatures) model.StyleReference {
	return model.StyleReference{Name: name, Features: f}
}

func twoStyles() []model.StyleReference {
	return []model.StyleReference{
		styleRef("warm", model.StyleFeatures{
			ColorPalette: []string{"w1", "w2", "w3", "w4", "w5"},
			Lighting:     "golden hour glow",
			Composition:  "rule of thirds",
			Mood:         "serene",
			ArtStyle:     "impressionist painting",
		}),
		styleRef("cold", model.StyleFeatures{
			ColorPalette: []string{"c1", "c2", "c3", "c4", "c5"},
			Lighting:     "neon backlight",
			Composition:  "centered symmetry",
			Mood:         "moody",
			ArtStyle:     "cyberpunk illustration",
		}),
	}
}

func TestMix_LengthMismatch(t *testing.T) {
	_, err := Mix(twoStyles(), []float64{1})
	require.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = Mix(nil, nil)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = Mix(twoStyles(), []float64{0, 0})
	require.ErrorIs(t, err, errs.ErrInvalidArgument, "non-positive ratio sum")
}

func TestMix_SeventyThirty(t *testing.T) {
	out, err := Mix(twoStyles(), []float64{70, 30})
	require.NoError(t, err)

	// dominant style wins the verbatim fields
	require.Equal(t, "golden hour glow", out.Lighting)
	require.Equal(t, "rule of thirds", out.Composition)
	require.Equal(t, "serene", out.Mood)

	// both ratios exceed the dominance threshold
	require.Equal(t, "impressionist painting mixed with cyberpunk illustration", out.ArtStyle)

	require.LessOrEqual(t, len(out.ColorPalette), 5)
}

func TestMix_PaletteContribution(t *testing.T) {
	// round(5*0.9)=5 and round(5*0.1)=1, truncated to 5 on output
	out, err := Mix(twoStyles(), []float64{0.9, 0.1})
	require.NoError(t, err)
	require.Equal(t, []string{"w1", "w2", "w3", "w4", "w5"}, out.ColorPalette)

	// only the first style passes the 0.2 art-style threshold
	require.Equal(t, "impressionist painting", out.ArtStyle)
}

func TestMix_TieGoesToFirst(t *testing.T) {
	out, err := Mix(twoStyles(), []float64{50, 50})
	require.NoError(t, err)
	require.Equal(t, "golden hour glow", out.Lighting)
	require.Equal(t, "serene", out.Mood)
}

func TestMix_RatiosNormalized(t *testing.T) {
	// any positive scale normalizes the same way
	a, err := Mix(twoStyles(), []float64{70, 30})
	require.NoError(t, err)
	b, err := Mix(twoStyles(), []float64{0.7, 0.3})
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestApplyToPrompt_Thresholds(t *testing.T) {
	f := model.StyleFeatures{
		ColorPalette: []string{"#111", "#222"},
		Lighting:     "soft light",
		Composition:  "leading lines",
		Mood:         "playful",
		ArtStyle:     "watercolor sketch",
	}

	require.Equal(t, "a cat", ApplyToPrompt("a cat", f, 30), "30 is not above the threshold")
	require.Equal(t, "a cat, soft light", ApplyToPrompt("a cat", f, 31))
	require.Equal(t, "a cat, soft light, playful, leading lines", ApplyToPrompt("a cat", f, 60))
	require.Equal(t,
		"a cat, soft light, playful, leading lines, watercolor sketch, color palette: #111 #222",
		ApplyToPrompt("a cat", f, 90))
}

func TestApplyToPrompt_SkipsEmptyFields(t *testing.T) {
	f := model.StyleFeatures{Mood: "calm"}
	require.Equal(t, "a cat, calm", ApplyToPrompt("a cat", f, 100))
}

func TestExtractFeatures_Deterministic(t *testing.T) {
	a := ExtractFeatures("https://example.com/ref.jpg")
	b := ExtractFeatures("https://example.com/ref.jpg")
	require.Equal(t, a, b)

	require.NotEmpty(t, a.ColorPalette)
	require.NotEmpty(t, a.Lighting)
	require.NotEmpty(t, a.Mood)
	require.NotEmpty(t, a.ArtStyle)
}
