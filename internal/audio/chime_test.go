package audio

import (
	"testing"
)

func TestPitchRisesWithRadius(t *testing.T) {
	if Pitch(0) != baseFreq || Pitch(1) != baseFreq {
		t.Fatalf("Pitch(0)=%v Pitch(1)=%v, want %v", Pitch(0), Pitch(1), baseFreq)
	}
	prev := Pitch(1)
	for _, r := range []float64{2, 5, 20, 150} {
		p := Pitch(r)
		if p <= prev {
			t.Fatalf("Pitch(%v) = %v, not above %v", r, p, prev)
		}
		prev = p
	}
	if got, want := Pitch(16), 2*baseFreq; got != want {
		t.Fatalf("Pitch(16) = %v, want %v", got, want)
	}
}

func TestToneLengthAndRange(t *testing.T) {
	tone, err := Tone(440, 0.5)
	if err != nil {
		t.Fatalf("Tone: %v", err)
	}
	want := sampleRate.N(toneLength)
	total := 0
	buf := make([][2]float64, 512)
	for {
		n, ok := tone.Stream(buf)
		for i := 0; i < n; i++ {
			if buf[i][0] < -0.5 || buf[i][0] > 0.5 {
				t.Fatalf("sample %d = %v exceeds the volume", total+i, buf[i][0])
			}
		}
		total += n
		if !ok {
			break
		}
	}
	if total != want {
		t.Fatalf("streamed %d samples, want %d", total, want)
	}
	if tone.Err() != nil {
		t.Fatalf("Err = %v", tone.Err())
	}
}

func TestPlayBeforeInitializeIsSilent(t *testing.T) {
	c := NewChime(2)
	if c.volume != 0.5 {
		t.Fatalf("volume = %v, want default 0.5", c.volume)
	}
	c.Play(10)
	c.Close()
}
