package chime

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Format describes a PCM stream.
type Format struct {
	SampleRate   int
	ChannelCount int
	BitDepth     int
}

var deviceFormat = Format{SampleRate: SampleRate, ChannelCount: ChannelCount, BitDepth: BitDepth}

// DecodeWAV walks the RIFF chunks of a WAV file and returns the PCM data
// together with the format from its fmt chunk.
func DecodeWAV(wav []byte) ([]byte, Format, error) {
	var f Format
	if len(wav) < 44 {
		return nil, f, errors.New("wav data too short")
	}
	if string(wav[0:4]) != "RIFF" || string(wav[8:12]) != "WAVE" {
		return nil, f, errors.New("not a valid WAV file")
	}

	haveFmt := false
	pos := 12
	for pos <= len(wav)-8 {
		chunkID := string(wav[pos : pos+4])
		chunkSize := int(binary.LittleEndian.Uint32(wav[pos+4 : pos+8]))
		start := pos + 8

		switch chunkID {
		case "fmt ":
			if chunkSize < 16 || start+16 > len(wav) {
				return nil, f, errors.New("fmt chunk too short")
			}
			if tag := binary.LittleEndian.Uint16(wav[start:]); tag != 1 {
				return nil, f, fmt.Errorf("unsupported wav encoding %d (want PCM)", tag)
			}
			f.ChannelCount = int(binary.LittleEndian.Uint16(wav[start+2:]))
			f.SampleRate = int(binary.LittleEndian.Uint32(wav[start+4:]))
			f.BitDepth = int(binary.LittleEndian.Uint16(wav[start+14:]))
			haveFmt = true

		case "data":
			if !haveFmt {
				return nil, f, errors.New("data chunk before fmt chunk")
			}
			end := start + chunkSize
			if end > len(wav) {
				end = len(wav)
			}
			return wav[start:end], f, nil
		}

		pos = start + chunkSize
		// Chunks are word-aligned.
		if chunkSize%2 != 0 {
			pos++
		}
	}

	return nil, f, errors.New("data chunk not found in WAV")
}

// EncodeWAV wraps PCM in a minimal RIFF/WAVE container.
func EncodeWAV(pcm []byte, f Format) []byte {
	blockAlign := f.ChannelCount * f.BitDepth / 8
	out := make([]byte, 44+len(pcm))
	copy(out[0:], "RIFF")
	binary.LittleEndian.PutUint32(out[4:], uint32(36+len(pcm)))
	copy(out[8:], "WAVE")
	copy(out[12:], "fmt ")
	binary.LittleEndian.PutUint32(out[16:], 16)
	binary.LittleEndian.PutUint16(out[20:], 1)
	binary.LittleEndian.PutUint16(out[22:], uint16(f.ChannelCount))
	binary.LittleEndian.PutUint32(out[24:], uint32(f.SampleRate))
	binary.LittleEndian.PutUint32(out[28:], uint32(f.SampleRate*blockAlign))
	binary.LittleEndian.PutUint16(out[32:], uint16(blockAlign))
	binary.LittleEndian.PutUint16(out[34:], uint16(f.BitDepth))
	copy(out[36:], "data")
	binary.LittleEndian.PutUint32(out[40:], uint32(len(pcm)))
	copy(out[44:], pcm)
	return out
}
