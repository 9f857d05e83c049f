// Package timeline derives display segments and per-frame prompts from a
// project's keyframe ordering. Everything here is a pure function of the
// project passed in.
package timeline

import (
	"github.com/melbazpeach-source/luxe-vision-mobile/internal/model"
)

// Segment is one visual span of the timeline strip between adjacent keyframes.
type Segment struct {
	Start  float64 `json:"start"`
	End    float64 `json:"end"`
	Prompt string  `json:"prompt"`
	Color  string  `json:"color"`
}

// previewPalette is cycled per segment index for the timeline strip.
var previewPalette = [...]string{
	"#FF6B9D", "#C44FE2", "#6C5CE7", "#00B8D4", "#00C48C", "#FFB800",
}

// Preview emits one segment per adjacent keyframe pair: [k[i].Time,
// k[i+1].Time) carrying k[i].Prompt, colored by index modulo the palette.
func Preview(p *model.TimelineProject) []Segment {
	if len(p.Keyframes) < 2 {
		return nil
	}
	segs := make([]Segment, 0, len(p.Keyframes)-1)
	for i := 0; i+1 < len(p.Keyframes); i++ {
		segs = append(segs, Segment{
			Start:  p.Keyframes[i].Time,
			End:    p.Keyframes[i+1].Time,
			Prompt: p.Keyframes[i].Prompt,
			Color:  previewPalette[i%len(previewPalette)],
		})
	}
	return segs
}
