package wavio

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-phasediff"
	"github.com/tphakala/go-phasediff/internal/testutil"
)

func stereoCapture(bitDepth int) *Capture {
	return &Capture{
		SampleRate: 1000,
		BitDepth:   bitDepth,
		Channels: [][]float64{
			testutil.SinePeriod(10, 1000, 0),
			testutil.SinePeriod(10, 1000, 0.1),
		},
	}
}

func TestRoundTrip(t *testing.T) {
	for _, bitDepth := range []int{16, 24, 32} {
		t.Run(fmt.Sprintf("%d-bit", bitDepth), func(t *testing.T) {
			in := stereoCapture(bitDepth)
			path := filepath.Join(t.TempDir(), "capture.wav")
			require.NoError(t, Write(path, in))

			out, err := Read(path)
			require.NoError(t, err)

			assert.Equal(t, in.SampleRate, out.SampleRate)
			assert.Equal(t, bitDepth, out.BitDepth)
			require.Len(t, out.Channels, 2)
			assert.Equal(t, in.NumFrames(), out.NumFrames())

			maxVal, err := maxValue(bitDepth)
			require.NoError(t, err)
			for ch := range in.Channels {
				testutil.AssertSlicesInDelta(t, in.Channels[ch], out.Channels[ch], 1/maxVal,
					"channel %d", ch)
			}
		})
	}
}

func TestRoundTrip_PreservesPhase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capture.wav")
	require.NoError(t, Write(path, stereoCapture(16)))

	c, err := Read(path)
	require.NoError(t, err)

	ref, err := c.Period(0, 0, 100)
	require.NoError(t, err)
	sig, err := c.Period(1, 0, 100)
	require.NoError(t, err)

	phase, err := phasediff.PhaseDiff(ref, sig)
	require.NoError(t, err)
	assert.InDelta(t, 10.0/100.0/math.Pi*360, phase, 1e-9)
}

func TestEncode_Clamps(t *testing.T) {
	c := &Capture{
		SampleRate: 8000,
		BitDepth:   16,
		Channels:   [][]float64{{2.0, -3.0, 0.5, math.NaN()}},
	}
	path := filepath.Join(t.TempDir(), "clamp.wav")
	require.NoError(t, Write(path, c))

	out, err := Read(path)
	require.NoError(t, err)
	samples, err := out.Channel(0)
	require.NoError(t, err)
	require.Len(t, samples, 4)
	assert.InDelta(t, 1.0, samples[0], 1e-12)
	assert.InDelta(t, -1.0, samples[1], 1e-12)
	assert.InDelta(t, 0.5, samples[2], 1/maxInt16)
	assert.InDelta(t, 0.0, samples[3], 1e-12)
}

func TestRead_FileNotFound(t *testing.T) {
	_, err := Read("/nonexistent/file.wav")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open input file")
}

func TestRead_InvalidWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.wav")
	require.NoError(t, os.WriteFile(path, []byte("not a wav file"), 0o644))

	_, err := Read(path)
	require.ErrorIs(t, err, ErrInvalidWAV)
	assert.Contains(t, err.Error(), path)
}

func TestDecode_InvalidWAV(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("RIFF garbage")))
	assert.ErrorIs(t, err, ErrInvalidWAV)
}

func TestEncode_InvalidCapture(t *testing.T) {
	tests := []struct {
		name    string
		capture *Capture
		wantErr error
	}{
		{"nil capture", nil, ErrInvalidCapture},
		{"zero sample rate", &Capture{BitDepth: 16, Channels: [][]float64{{0}}}, ErrInvalidCapture},
		{"8-bit", &Capture{SampleRate: 8000, BitDepth: 8, Channels: [][]float64{{0}}}, ErrUnsupportedBitDepth},
		{"no channels", &Capture{SampleRate: 8000, BitDepth: 16}, ErrInvalidCapture},
		{"no samples", &Capture{SampleRate: 8000, BitDepth: 16, Channels: [][]float64{{}}}, ErrInvalidCapture},
		{
			"ragged channels",
			&Capture{SampleRate: 8000, BitDepth: 16, Channels: [][]float64{{0, 0}, {0}}},
			ErrInvalidCapture,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out.wav")
			err := Write(path, tt.capture)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCapture_Channel(t *testing.T) {
	c := stereoCapture(16)

	got, err := c.Channel(1)
	require.NoError(t, err)
	assert.Equal(t, c.Channels[1], got)

	for _, idx := range []int{-1, 2} {
		_, err := c.Channel(idx)
		assert.ErrorIs(t, err, ErrChannelOutOfRange, "index %d", idx)
	}
}

func TestCapture_Period(t *testing.T) {
	c := &Capture{SampleRate: 8000, BitDepth: 16, Channels: [][]float64{{0, 1, 2, 3, 4, 5}}}

	got, err := c.Period(0, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3, 4}, got)

	got[0] = 99
	assert.InDelta(t, 2.0, c.Channels[0][2], 0, "period must be a copy")

	got, err = c.Period(0, 0, 6)
	require.NoError(t, err)
	assert.Len(t, got, 6)

	tests := []struct {
		name                   string
		channel, start, length int
		wantErr                error
	}{
		{"past end", 0, 4, 3, ErrPeriodOutOfRange},
		{"negative start", 0, -1, 2, ErrPeriodOutOfRange},
		{"zero length", 0, 0, 0, ErrPeriodOutOfRange},
		{"bad channel", 1, 0, 2, ErrChannelOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Period(tt.channel, tt.start, tt.length)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCapture_NumFrames(t *testing.T) {
	assert.Equal(t, 0, (&Capture{}).NumFrames())
	assert.Equal(t, 100, stereoCapture(16).NumFrames())
}
