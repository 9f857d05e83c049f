package stylemix

import (
	"hash/fnv"

	"github.com/melbazpeach-source/luxe-vision-mobile/internal/model"
)

// Canned feature tables for the mock extractor. A real extractor would run
// vision analysis on the reference image; only the output shape is the
// contract.
var (
	extractPalettes = [][]string{
		{"#1A1A2E", "#16213E", "#0F3460", "#E94560", "#F5F5F5"},
		{"#F9ED69", "#F08A5D", "#B83B5E", "#6A2C70", "#FFFFFF"},
		{"#2D4059", "#EA5455", "#F07B3F", "#FFD460", "#222831"},
		{"#A8E6CF", "#DCEDC1", "#FFD3B6", "#FFAAA5", "#FF8B94"},
	}
	extractLighting = []string{
		"soft diffused light", "dramatic rim lighting", "golden hour glow", "neon backlight",
	}
	extractComposition = []string{
		"rule of thirds", "centered symmetry", "leading lines", "dutch angle",
	}
	extractMoods = []string{
		"serene and contemplative", "bold and energetic", "moody and cinematic", "playful and bright",
	}
	extractArtStyles = []string{
		"impressionist painting", "cyberpunk illustration", "film noir photography", "watercolor sketch",
	}
)

// ExtractFeatures is the mocked style-extraction step. It derives a stable
// feature set from the image URL so repeated extraction of the same image
// produces the same reference.
func ExtractFeatures(imageURL string) model.StyleFeatures {
	h := fnv.New32a()
	_, _ = h.Write([]byte(imageURL))
	seed := int(h.Sum32())

	pick := func(n int) int {
		if n <= 0 {
			return 0
		}
		v := seed % n
		seed /= n
		if v < 0 {
			v = -v
		}
		return v
	}

	palette := extractPalettes[pick(len(extractPalettes))]
	return model.StyleFeatures{
		ColorPalette: append([]string(nil), palette...),
		Lighting:     extractLighting[pick(len(extractLighting))],
		Composition:  extractComposition[pick(len(extractComposition))],
		Mood:         extractMoods[pick(len(extractMoods))],
		ArtStyle:     extractArtStyles[pick(len(extractArtStyles))],
	}
}
