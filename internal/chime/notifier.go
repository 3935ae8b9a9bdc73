package chime

import (
	"context"
	"fmt"
	"os"

	"github.com/hammamikhairi/cdown/internal/domain"
	"github.com/hammamikhairi/cdown/internal/logger"
)

// Compile-time interface checks.
var (
	_ domain.Notifier = (*Notifier)(nil)
	_ domain.Notifier = (*NoOp)(nil)
)

// Notifier plays a sound when the countdown completes.
type Notifier struct {
	player *Player
	sound  []byte
	log    *logger.Logger
}

// NewNotifier creates a notifier playing three beeps through player.
func NewNotifier(player *Player, log *logger.Logger) *Notifier {
	return &Notifier{player: player, sound: Beeps(3), log: log}
}

// LoadSound replaces the beeps with the PCM data of a WAV file. The file
// must match the device format.
func (n *Notifier) LoadSound(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading sound file: %w", err)
	}
	pcm, f, err := DecodeWAV(data)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	if f != deviceFormat {
		return fmt.Errorf("%s is %d Hz/%d ch/%d bit, want %d Hz/%d ch/%d bit", path,
			f.SampleRate, f.ChannelCount, f.BitDepth,
			deviceFormat.SampleRate, deviceFormat.ChannelCount, deviceFormat.BitDepth)
	}
	n.sound = pcm
	n.log.Debug("chime: loaded %s (%d bytes)", path, len(pcm))
	return nil
}

// Notify plays the sound and blocks until it ends.
func (n *Notifier) Notify(ctx context.Context, message string) error {
	n.log.Debug("chime: %s", message)
	return n.player.Play(ctx, n.sound)
}

// NoOp is a notifier that does nothing. Used when sound is disabled or no
// audio device is available.
type NoOp struct {
	log *logger.Logger
}

// NewNoOp creates a no-op notifier.
func NewNoOp(log *logger.Logger) *NoOp {
	return &NoOp{log: log}
}

// Notify logs the message and returns.
func (n *NoOp) Notify(ctx context.Context, message string) error {
	n.log.Debug("chime no-op: would ring for %q", message)
	return nil
}
