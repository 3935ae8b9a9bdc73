package chime

import (
	"encoding/binary"
	"math"
	"time"
)

// Tone synthesizes a mono 16-bit sine wave at SampleRate. The first and last
// few milliseconds are ramped to avoid clicks.
func Tone(freq float64, d time.Duration, volume float64) []byte {
	n := int(float64(SampleRate) * d.Seconds())
	ramp := SampleRate / 200 // 5ms
	pcm := make([]byte, 2*n)
	for i := 0; i < n; i++ {
		gain := volume
		if i < ramp {
			gain *= float64(i) / float64(ramp)
		} else if n-i < ramp {
			gain *= float64(n-i) / float64(ramp)
		}
		v := math.Sin(2*math.Pi*freq*float64(i)/SampleRate) * gain * math.MaxInt16
		binary.LittleEndian.PutUint16(pcm[2*i:], uint16(int16(v)))
	}
	return pcm
}

// Silence returns d worth of zero samples.
func Silence(d time.Duration) []byte {
	return make([]byte, 2*int(float64(SampleRate)*d.Seconds()))
}

// Beeps returns count short 880 Hz beeps separated by gaps.
func Beeps(count int) []byte {
	beep := Tone(880, 150*time.Millisecond, 0.4)
	gap := Silence(100 * time.Millisecond)
	var out []byte
	for i := 0; i < count; i++ {
		if i > 0 {
			out = append(out, gap...)
		}
		out = append(out, beep...)
	}
	return out
}
