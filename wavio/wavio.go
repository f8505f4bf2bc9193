// Package wavio loads and stores signal captures as PCM WAV files.
//
// Samples are held planar and normalized to [-1, 1], the form the phasediff
// functions take. A Period slice of one channel can be passed straight to
// phasediff.PhaseDiff.
package wavio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Errors returned by this package.
var (
	ErrInvalidWAV          = errors.New("invalid WAV data")
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")
	ErrChannelOutOfRange   = errors.New("channel index out of range")
	ErrPeriodOutOfRange    = errors.New("period out of range")
	ErrInvalidCapture      = errors.New("invalid capture")
)

// Capture is a multichannel recording with planar, normalized samples.
type Capture struct {
	SampleRate int
	BitDepth   int

	// Channels holds one slice per channel. All slices have the same length.
	Channels [][]float64
}

// NumFrames returns the number of samples per channel.
func (c *Capture) NumFrames() int {
	if len(c.Channels) == 0 {
		return 0
	}
	return len(c.Channels[0])
}

// Channel returns the samples of channel i. The slice aliases the capture.
func (c *Capture) Channel(i int) ([]float64, error) {
	if i < 0 || i >= len(c.Channels) {
		return nil, fmt.Errorf("%w: %d (capture has %d channels)", ErrChannelOutOfRange, i, len(c.Channels))
	}
	return c.Channels[i], nil
}

// Period returns a copy of length samples of channel starting at start.
func (c *Capture) Period(channel, start, length int) ([]float64, error) {
	samples, err := c.Channel(channel)
	if err != nil {
		return nil, err
	}
	if length <= 0 || start < 0 || start > len(samples)-length {
		return nil, fmt.Errorf("%w: start=%d length=%d frames=%d", ErrPeriodOutOfRange, start, length, len(samples))
	}
	out := make([]float64, length)
	copy(out, samples[start:start+length])
	return out, nil
}

func (c *Capture) validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidCapture, c.SampleRate)
	}
	if _, err := maxValue(c.BitDepth); err != nil {
		return err
	}
	if len(c.Channels) == 0 {
		return fmt.Errorf("%w: no channels", ErrInvalidCapture)
	}
	frames := len(c.Channels[0])
	if frames == 0 {
		return fmt.Errorf("%w: no samples", ErrInvalidCapture)
	}
	for ch, samples := range c.Channels {
		if len(samples) != frames {
			return fmt.Errorf("%w: channel %d has %d samples, channel 0 has %d",
				ErrInvalidCapture, ch, len(samples), frames)
		}
	}
	return nil
}

// Read loads a WAV file.
func Read(path string) (*Capture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	c, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Decode reads a complete PCM WAV stream.
func Decode(r io.ReadSeeker) (*Capture, error) {
	decoder := wav.NewDecoder(r)
	if !decoder.IsValidFile() {
		return nil, ErrInvalidWAV
	}

	if decoder.WavAudioFormat != wavFormatPCM {
		return nil, fmt.Errorf("%w: format tag %d is not integer PCM", ErrInvalidWAV, decoder.WavAudioFormat)
	}

	bitDepth := int(decoder.BitDepth)
	maxVal, err := maxValue(bitDepth)
	if err != nil {
		return nil, err
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidWAV, err)
	}

	channels := int(decoder.NumChans)
	if channels <= 0 {
		return nil, fmt.Errorf("%w: zero channels", ErrInvalidWAV)
	}

	return &Capture{
		SampleRate: int(decoder.SampleRate),
		BitDepth:   bitDepth,
		Channels:   deinterleave(buf.Data, channels, 1.0/maxVal),
	}, nil
}

// Write stores c as a PCM WAV file, replacing any existing file.
func Write(path string, c *Capture) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return Encode(f, c)
}

// Encode writes c as a PCM WAV stream. Samples outside [-1, 1] are clamped.
func Encode(w io.WriteSeeker, c *Capture) error {
	if c == nil {
		return fmt.Errorf("%w: nil capture", ErrInvalidCapture)
	}
	if err := c.validate(); err != nil {
		return err
	}
	maxVal, _ := maxValue(c.BitDepth)

	numChannels := len(c.Channels)
	buf := &audio.IntBuffer{
		Data: interleave(c.Channels, maxVal),
		Format: &audio.Format{
			NumChannels: numChannels,
			SampleRate:  c.SampleRate,
		},
		SourceBitDepth: c.BitDepth,
	}

	encoder := wav.NewEncoder(w, c.SampleRate, c.BitDepth, numChannels, wavFormatPCM)
	if err := encoder.Write(buf); err != nil {
		return fmt.Errorf("failed to write samples: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV header: %w", err)
	}
	return nil
}

// maxValue returns the full-scale sample value for the given bit depth.
func maxValue(bitDepth int) (float64, error) {
	switch bitDepth {
	case bitsPerSample16:
		return maxInt16, nil
	case bitsPerSample24:
		return maxInt24, nil
	case bitsPerSample32:
		return maxInt32, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
}

// deinterleave converts interleaved int samples to per-channel normalized slices.
// A trailing partial frame is dropped.
func deinterleave(data []int, numChannels int, invMaxVal float64) [][]float64 {
	frames := len(data) / numChannels
	result := make([][]float64, numChannels)
	for ch := range numChannels {
		result[ch] = make([]float64, frames)
	}

	for i := range frames {
		base := i * numChannels
		for ch := range numChannels {
			result[ch][i] = float64(data[base+ch]) * invMaxVal
		}
	}
	return result
}

// interleave converts per-channel normalized slices to interleaved int samples.
func interleave(channels [][]float64, maxVal float64) []int {
	numChannels := len(channels)
	frames := len(channels[0])
	result := make([]int, frames*numChannels)

	for i := range frames {
		for ch := range numChannels {
			sample := channels[ch][i]
			switch {
			case math.IsNaN(sample):
				sample = 0
			case sample > 1.0:
				sample = 1.0
			case sample < -1.0:
				sample = -1.0
			}
			result[i*numChannels+ch] = int(math.Round(sample * maxVal))
		}
	}
	return result
}
