package timeline

import (
	"math"

	"github.com/melbazpeach-source/luxe-vision-mobile/internal/model"
)

// FrameExport carries one prompt per output frame, meant to drive an
// external per-frame generation pipeline.
type FrameExport struct {
	Frames []string  `json:"frames"`
	FPS    model.FPS `json:"fps"`
}

// ExportFrames assigns every frame the prompt of its bracketing keyframe
// pair: the earlier keyframe's prompt for the first half of the interval,
// the later one's for the second. A hard cut, not a blend; transition types
// on the keyframes do not influence the output.
func ExportFrames(p *model.TimelineProject) FrameExport {
	total := int(math.Floor(p.Duration * float64(p.FPS)))
	if total < 0 {
		total = 0
	}
	frames := make([]string, 0, total)
	for i := 0; i < total; i++ {
		t := float64(i) / float64(p.FPS)
		frames = append(frames, promptAt(p.Keyframes, t))
	}
	return FrameExport{Frames: frames, FPS: p.FPS}
}

// promptAt locates the bracketing pair by linear scan and applies the 50%
// cut. Frame times outside every pair fall back to the first or last
// keyframe's prompt.
func promptAt(kfs []model.Keyframe, t float64) string {
	if len(kfs) == 0 {
		return ""
	}
	for i := 0; i+1 < len(kfs); i++ {
		start, end := kfs[i].Time, kfs[i+1].Time
		if start <= t && t < end {
			if t < start+(end-start)/2 {
				return kfs[i].Prompt
			}
			return kfs[i+1].Prompt
		}
	}
	if t < kfs[0].Time {
		return kfs[0].Prompt
	}
	return kfs[len(kfs)-1].Prompt
}
