//go:build !headless

package main

import (
	"sync"

	"github.com/ebitengine/oto/v3"
)

// otoPlayer adapts the driver's sample ring buffer to oto's pull-based
// Reader interface, the same shape the teacher's own oto backend uses.
type otoPlayer struct {
	ctx     *oto.Context
	player  *oto.Player
	drv     *driver
	started bool
	mu      sync.Mutex
}

func newAudioPlayer(drv *driver) (*otoPlayer, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   audioSampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   0, // oto default, generally ~20ms
	})
	if err != nil {
		return nil, err
	}
	<-ready

	op := &otoPlayer{ctx: ctx, drv: drv}
	op.player = ctx.NewPlayer(op)
	return op, nil
}

// Read implements io.Reader for oto: it drains the driver's ring buffer,
// filling with silence whenever the emulation thread hasn't produced
// enough samples yet rather than blocking the audio callback.
func (op *otoPlayer) Read(p []byte) (int, error) {
	n := len(p) / 2
	for i := 0; i < n; i++ {
		s, ok := op.drv.popSample()
		if !ok {
			s = 0
		}
		p[i*2] = byte(s)
		p[i*2+1] = byte(s >> 8)
	}
	return n * 2, nil
}

func (op *otoPlayer) Start() {
	op.mu.Lock()
	defer op.mu.Unlock()
	if !op.started {
		op.player.Play()
		op.started = true
	}
}

func (op *otoPlayer) Close() {
	op.mu.Lock()
	defer op.mu.Unlock()
	if op.started {
		op.player.Close()
		op.started = false
	}
}
