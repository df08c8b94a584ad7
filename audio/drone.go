package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// droneStreamer synthesizes the ambient space pad: three detuned low sine
// layers under a slow amplitude swell. Runs forever, Err is always nil.
type droneStreamer struct {
	sr    beep.SampleRate
	pos   int
	freqs [3]float64
	gains [3]float64
}

// NewDrone creates the ambient pad streamer
func NewDrone(sr beep.SampleRate) beep.Streamer {
	return &droneStreamer{
		sr:    sr,
		freqs: [3]float64{55.0, 82.5, 110.3},
		gains: [3]float64{0.5, 0.3, 0.2},
	}
}

func (d *droneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	srF := float64(d.sr)
	for i := range samples {
		t := float64(d.pos) / srF

		// Swell period ~11s, never fully silent
		swell := 0.6 + 0.4*math.Sin(2*math.Pi*t/11.0)

		var v float64
		for k := 0; k < 3; k++ {
			v += d.gains[k] * math.Sin(2*math.Pi*d.freqs[k]*t)
		}
		v *= 0.25 * swell

		samples[i][0] = v
		samples[i][1] = v
		d.pos++
	}
	return len(samples), true
}

func (d *droneStreamer) Err() error {
	return nil
}
