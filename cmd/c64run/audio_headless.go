//go:build headless

package main

import "time"

// headlessPlayer drains the driver's ring buffer on its own so it never
// fills up and starts dropping samples, without touching any real audio
// device. Useful for CI and for the trace-only console mode.
type headlessPlayer struct {
	drv  *driver
	stop chan struct{}
}

func newAudioPlayer(drv *driver) (*headlessPlayer, error) {
	return &headlessPlayer{drv: drv, stop: make(chan struct{})}, nil
}

func (p *headlessPlayer) Start() {
	go func() {
		ticker := time.NewTicker(10 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-p.stop:
				return
			case <-ticker.C:
				for {
					if _, ok := p.drv.popSample(); !ok {
						break
					}
				}
			}
		}
	}()
}

func (p *headlessPlayer) Close() {
	close(p.stop)
}
