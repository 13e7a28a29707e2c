// SPDX-License-Identifier: EPL-2.0

package stats

import (
	"math"

	"github.com/ik5/audadapt/audio"
	"github.com/ik5/audadapt/sample"
)

// ChannelRMS returns the root mean square of one channel over all frames.
func ChannelRMS[T sample.Number](a audio.Indirect[T], channel int) float64 {
	frames := a.Frames()
	if frames == 0 {
		return 0
	}

	var sumSq float64
	for frame := range frames {
		v, _ := a.Read(channel, frame)
		sumSq += float64(v) * float64(v)
	}

	return math.Sqrt(sumSq / float64(frames))
}

// FrameRMS returns the root mean square of one frame over all channels.
func FrameRMS[T sample.Number](a audio.Indirect[T], frame int) float64 {
	channels := a.Channels()
	if channels == 0 {
		return 0
	}

	var sumSq float64
	for channel := range channels {
		v, _ := a.Read(channel, frame)
		sumSq += float64(v) * float64(v)
	}

	return math.Sqrt(sumSq / float64(channels))
}

// ChannelMinMax returns the smallest and largest sample of a channel.
func ChannelMinMax[T sample.Number](a audio.Indirect[T], channel int) (lo, hi T) {
	frames := a.Frames()
	if frames == 0 {
		return lo, hi
	}

	lo, _ = a.Read(channel, 0)
	hi = lo
	for frame := 1; frame < frames; frame++ {
		v, _ := a.Read(channel, frame)
		lo = min(lo, v)
		hi = max(hi, v)
	}

	return lo, hi
}

// FrameMinMax returns the smallest and largest sample of a frame.
func FrameMinMax[T sample.Number](a audio.Indirect[T], frame int) (lo, hi T) {
	channels := a.Channels()
	if channels == 0 {
		return lo, hi
	}

	lo, _ = a.Read(0, frame)
	hi = lo
	for channel := 1; channel < channels; channel++ {
		v, _ := a.Read(channel, frame)
		lo = min(lo, v)
		hi = max(hi, v)
	}

	return lo, hi
}

// ChannelPeakToPeak returns max - min of a channel. The difference is taken
// in float64 so it cannot overflow T.
func ChannelPeakToPeak[T sample.Number](a audio.Indirect[T], channel int) float64 {
	lo, hi := ChannelMinMax(a, channel)
	return float64(hi) - float64(lo)
}

// FramePeakToPeak returns max - min of a frame.
func FramePeakToPeak[T sample.Number](a audio.Indirect[T], frame int) float64 {
	lo, hi := FrameMinMax(a, frame)
	return float64(hi) - float64(lo)
}

// Level summarises one channel.
type Level struct {
	RMS        float64
	Min        float64
	Max        float64
	PeakToPeak float64
}

// ChannelLevel collects all channel statistics in one value.
func ChannelLevel[T sample.Number](a audio.Indirect[T], channel int) Level {
	lo, hi := ChannelMinMax(a, channel)
	return Level{
		RMS:        ChannelRMS(a, channel),
		Min:        float64(lo),
		Max:        float64(hi),
		PeakToPeak: float64(hi) - float64(lo),
	}
}
