package audio

import (
	"testing"

	"github.com/gopxl/beep"
)

func TestDroneStreamsFullBuffers(t *testing.T) {
	d := NewDrone(beep.SampleRate(48000))
	buf := make([][2]float64, 512)

	for i := 0; i < 20; i++ {
		n, ok := d.Stream(buf)
		if !ok || n != len(buf) {
			t.Fatalf("stream %d: n=%d ok=%v", i, n, ok)
		}
	}
	if d.Err() != nil {
		t.Errorf("Err = %v", d.Err())
	}
}

func TestDroneSamplesInRange(t *testing.T) {
	d := NewDrone(beep.SampleRate(48000))
	buf := make([][2]float64, 4096)

	for i := 0; i < 50; i++ {
		d.Stream(buf)
		for j, s := range buf {
			if s[0] < -1 || s[0] > 1 || s[1] < -1 || s[1] > 1 {
				t.Fatalf("sample %d/%d out of range: %v", i, j, s)
			}
			if s[0] != s[1] {
				t.Fatalf("pad is not centered: %v", s)
			}
		}
	}
}

func TestDroneIsAudible(t *testing.T) {
	// A second of output must not be silence
	d := NewDrone(beep.SampleRate(48000))
	buf := make([][2]float64, 48000)
	d.Stream(buf)

	peak := 0.0
	for _, s := range buf {
		if v := s[0]; v > peak {
			peak = v
		}
	}
	if peak < 0.01 {
		t.Errorf("peak amplitude %v, pad effectively silent", peak)
	}
}
