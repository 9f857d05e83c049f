package timeline

import (
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/melbazpeach-source/luxe-vision-mobile/internal/model"
)

func kf(t float64, prompt string) model.Keyframe {
	return model.Keyframe{ID: uuid.Must(uuid.NewV4()), Time: t, Prompt: prompt}
}

func TestPreview_SegmentsAndColors(t *testing.T) {
	p := &model.TimelineProject{
		Duration: 10,
		Keyframes: []model.Keyframe{
			kf(0, "a"), kf(3, "b"), kf(7, "c"), kf(10, "d"),
		},
	}

	segs := Preview(p)
	require.Len(t, segs, 3)

	require.Equal(t, 0.0, segs[0].Start)
	require.Equal(t, 3.0, segs[0].End)
	require.Equal(t, "a", segs[0].Prompt)

	require.Equal(t, 3.0, segs[1].Start)
	require.Equal(t, 7.0, segs[1].End)
	require.Equal(t, "b", segs[1].Prompt)

	require.Equal(t, 7.0, segs[2].Start)
	require.Equal(t, 10.0, segs[2].End)
	require.Equal(t, "c", segs[2].Prompt)

	// colors cycle through the palette in index order
	require.Equal(t, previewPalette[0], segs[0].Color)
	require.Equal(t, previewPalette[1], segs[1].Color)
	require.Equal(t, previewPalette[2], segs[2].Color)
}

func TestPreview_PaletteWrapsAtSix(t *testing.T) {
	kfs := make([]model.Keyframe, 0, 8)
	for i := 0; i < 8; i++ {
		kfs = append(kfs, kf(float64(i), "p"))
	}
	segs := Preview(&model.TimelineProject{Duration: 8, Keyframes: kfs})
	require.Len(t, segs, 7)
	require.Equal(t, segs[0].Color, segs[6].Color, "index 6 wraps to palette slot 0")
}

func TestPreview_NeedsTwoKeyframes(t *testing.T) {
	require.Nil(t, Preview(&model.TimelineProject{Keyframes: []model.Keyframe{kf(0, "a")}}))
}

func TestExportFrames_CountAndHalfCut(t *testing.T) {
	p := &model.TimelineProject{
		Duration:  2,
		FPS:       model.FPS30,
		Keyframes: []model.Keyframe{kf(0, "first"), kf(2, "second")},
	}

	out := ExportFrames(p)
	require.Equal(t, model.FPS30, out.FPS)
	require.Len(t, out.Frames, 60)

	// interval [0,2), midpoint 1.0
	require.Equal(t, "first", out.Frames[27], "t=0.9 is before the midpoint")
	require.Equal(t, "second", out.Frames[33], "t=1.1 is past the midpoint")
	require.Equal(t, "second", out.Frames[30], "t=1.0 sits exactly on the midpoint")
}

func TestExportFrames_FallbackOutsideKeyframes(t *testing.T) {
	// keyframes cover [1,2) only; duration extends past the last keyframe
	p := &model.TimelineProject{
		Duration:  4,
		FPS:       model.FPS24,
		Keyframes: []model.Keyframe{kf(1, "first"), kf(2, "last")},
	}
	out := ExportFrames(p)
	require.Len(t, out.Frames, 96)

	require.Equal(t, "first", out.Frames[0], "before the first keyframe")
	require.Equal(t, "last", out.Frames[95], "beyond the last keyframe")
}

func TestExportFrames_Degenerate(t *testing.T) {
	out := ExportFrames(&model.TimelineProject{Duration: 1, FPS: model.FPS24})
	require.Len(t, out.Frames, 24)
	for _, f := range out.Frames {
		require.Equal(t, "", f)
	}

	single := ExportFrames(&model.TimelineProject{
		Duration:  1,
		FPS:       model.FPS24,
		Keyframes: []model.Keyframe{kf(0, "only")},
	})
	require.Equal(t, "only", single.Frames[0])
	require.Equal(t, "only", single.Frames[23])
}
