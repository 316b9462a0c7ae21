// Package audio plays the short chime heard when a displayed countdown
// reaches its target.
package audio

import (
	"bytes"
	"log"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

const (
	sampleRate = 44100
	channels   = 1
)

// Global audio context singleton; oto allows only one per process.
var (
	globalCtx     *oto.Context
	globalCtxOnce sync.Once
	ctxReady      bool
)

func initContext() {
	globalCtxOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: channels,
			Format:       oto.FormatSignedInt16LE,
		}

		ctx, readyChan, err := oto.NewContext(op)
		if err != nil {
			log.Printf("Failed to initialize audio context: %v", err)
			return
		}

		// Wait for the hardware audio devices to be ready
		<-readyChan

		globalCtx = ctx
		ctxReady = true
	})
}

// PlayChime plays a short two-tone chime without blocking. On systems
// without a usable audio device it logs once and does nothing.
func PlayChime() {
	initContext()
	if !ctxReady || globalCtx == nil {
		return
	}

	pcm := chimeSamples()
	player := globalCtx.NewPlayer(bytes.NewReader(pcm))
	player.Play()

	go func() {
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			log.Printf("Failed to close audio player: %v", err)
		}
	}()
}

// chimeSamples synthesizes the chime: two sine tones with a linear fade-out,
// 16-bit little-endian mono PCM.
func chimeSamples() []byte {
	tones := []struct {
		freq     float64
		duration time.Duration
	}{
		{880, 180 * time.Millisecond},
		{1174.66, 320 * time.Millisecond},
	}

	var buf bytes.Buffer
	for _, tone := range tones {
		n := int(float64(sampleRate) * tone.duration.Seconds())
		for i := 0; i < n; i++ {
			fade := 1 - float64(i)/float64(n)
			v := math.Sin(2*math.Pi*tone.freq*float64(i)/sampleRate) * fade * 0.4
			s := int16(v * math.MaxInt16)
			buf.WriteByte(byte(s))
			buf.WriteByte(byte(s >> 8))
		}
	}
	return buf.Bytes()
}
