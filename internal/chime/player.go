// Package chime plays the completion sound: a few synthesized beeps, or a
// WAV file supplied by the user.
package chime

import (
	"bytes"
	"context"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/hammamikhairi/cdown/internal/logger"
)

// Audio parameters of the output device and the synthesized tone.
const (
	SampleRate   = 44100
	ChannelCount = 1
	BitDepth     = 16
)

// Player handles audio playback of raw PCM via oto.
type Player struct {
	ctx *oto.Context
	log *logger.Logger
}

// NewPlayer creates an audio player. Initializes the system audio context.
// Returns an error if the audio device is unavailable. oto allows a single
// context per process, so create one Player and share it.
func NewPlayer(log *logger.Logger) (*Player, error) {
	op := &oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: ChannelCount,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-readyChan

	log.Debug("audio player initialized (rate=%d, channels=%d)", SampleRate, ChannelCount)
	return &Player{ctx: ctx, log: log}, nil
}

// Play plays 16-bit little-endian PCM synchronously. Blocks until playback
// finishes or ctx ends.
func (p *Player) Play(ctx context.Context, pcm []byte) error {
	player := p.ctx.NewPlayer(bytes.NewReader(pcm))
	player.Play()
	p.log.Debug("audio player: playing %d bytes of PCM", len(pcm))

	for player.IsPlaying() {
		select {
		case <-ctx.Done():
			player.Pause()
		case <-time.After(10 * time.Millisecond):
		}
	}

	return player.Close()
}
