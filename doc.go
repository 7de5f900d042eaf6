// Package c64core implements a cycle-accurate emulation core for the
// Commodore 64: a 6510 CPU, two 6526 CIA interface chips, a 6569 VIC-II
// video chip, a 6581/8580 SID sound chip, and the PLA-governed banked
// memory map, all advanced in lockstep on a shared master clock.
//
// The core never touches a file, an audio device, or a window — it takes
// ROM images and host events in, and produces a framebuffer and PCM
// samples out. Wiring those to the outside world is cmd/c64run's job.
package c64core
