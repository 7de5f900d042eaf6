package main

import (
	"sync"
	"time"

	"github.com/retrosilicon/c64core"
)

// palMasterClockHz is the C64's PAL dot-clock rate that the core's
// Arbiter ticks at once per CPU bus cycle.
const palMasterClockHz = 985248

// audioSampleRate is the PCM rate c64run resamples the SID's continuous
// output down to for the host audio device.
const audioSampleRate = 44100

// ringSize is sized generously so a momentary scheduling hiccup on either
// side never drops a sample instead of just adding latency.
const ringSize = audioSampleRate / 2

// driver owns the emulation thread: it steps the CPU in real time, skims
// off PCM samples into a ring buffer for the audio backend, and snapshots
// the framebuffer for the video backend to present. Splitting state this
// way means the emulation goroutine never blocks on either backend.
type driver struct {
	sys *c64core.System

	fbMu        sync.Mutex
	framebuffer []uint32

	ringMu    sync.Mutex
	ring      [ringSize]int16
	ringHead  int
	ringTail  int
	ringCount int

	stop chan struct{}
}

func newDriver(sys *c64core.System) *driver {
	return &driver{
		sys:         sys,
		framebuffer: make([]uint32, len(sys.Framebuffer())),
		stop:        make(chan struct{}),
	}
}

// run steps the core at the PAL master-clock rate, pacing itself against
// wall-clock time in fixed-size bursts so it neither busy-loops nor drifts
// across long sessions. It skims PCM samples off at audioSampleRate and
// copies the framebuffer out once per burst for the video backend.
func (d *driver) run() {
	const tickInterval = 5 * time.Millisecond
	burstCycles := int(float64(palMasterClockHz) * tickInterval.Seconds())
	cyclesPerSample := float64(palMasterClockHz) / float64(audioSampleRate)
	sampleAccum := 0.0

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-d.stop:
			return
		case <-ticker.C:
			spent := 0
			for spent < burstCycles {
				stepCycles := d.sys.Step()
				spent += stepCycles
				sampleAccum += float64(stepCycles)
				for sampleAccum >= cyclesPerSample {
					sampleAccum -= cyclesPerSample
					d.pushSample(d.sys.AudioSample())
				}
			}
			d.fbMu.Lock()
			copy(d.framebuffer, d.sys.Framebuffer())
			d.fbMu.Unlock()
		}
	}
}

func (d *driver) Close() {
	close(d.stop)
}

func (d *driver) snapshotFramebuffer(dst []uint32) {
	d.fbMu.Lock()
	copy(dst, d.framebuffer)
	d.fbMu.Unlock()
}

func (d *driver) pushSample(s int16) {
	d.ringMu.Lock()
	defer d.ringMu.Unlock()
	if d.ringCount == ringSize {
		// Backend fell behind: drop the oldest sample rather than stall
		// the emulation thread.
		d.ringTail = (d.ringTail + 1) % ringSize
		d.ringCount--
	}
	d.ring[d.ringHead] = s
	d.ringHead = (d.ringHead + 1) % ringSize
	d.ringCount++
}

// popSample reports false when the ring is empty; callers (the audio
// backend's Read) fill with silence in that case.
func (d *driver) popSample() (int16, bool) {
	d.ringMu.Lock()
	defer d.ringMu.Unlock()
	if d.ringCount == 0 {
		return 0, false
	}
	s := d.ring[d.ringTail]
	d.ringTail = (d.ringTail + 1) % ringSize
	d.ringCount--
	return s, true
}
