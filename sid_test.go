package c64core

import "testing"

func newTestSID(model SIDModel) *SID {
	s := newSID(&System{}, model)
	s.reset()
	return s
}

func TestSIDSyncAndRingChainWiring(t *testing.T) {
	s := newTestSID(SIDModel6581)
	if s.voices[0].syncSource != &s.voices[2] {
		t.Fatalf("expected voice 0 to sync from voice 2")
	}
	if s.voices[1].syncSource != &s.voices[0] {
		t.Fatalf("expected voice 1 to sync from voice 0")
	}
	if s.voices[2].syncSource != &s.voices[1] {
		t.Fatalf("expected voice 2 to sync from voice 1")
	}
}

func TestSIDSawtoothRampsWithAccumulator(t *testing.T) {
	s := newTestSID(SIDModel6581)
	s.voices[0].ctrl = sidSaw
	s.voices[0].freq = 0x1000
	first := s.voices[0].waveform()
	s.voices[0].clock()
	second := s.voices[0].waveform()
	if second <= first {
		t.Fatalf("expected sawtooth output to increase as the accumulator advances, got %d then %d", first, second)
	}
}

func TestSIDNoiseLFSRTapsAdvance(t *testing.T) {
	s := newTestSID(SIDModel6581)
	s.voices[0].ctrl = sidNoise
	s.voices[0].freq = 0xFFFFFF // first clock wraps the accumulator from 0 to $FFFFFF: a rising edge on bit 19
	before := s.voices[0].noiseLFSR
	for i := 0; i < 4; i++ {
		s.voices[0].clock()
	}
	if s.voices[0].noiseLFSR == before {
		t.Fatalf("expected the noise LFSR to have advanced after bit-19 accumulator edges")
	}
}

func TestSIDEnvelopeAttackReachesFullLevel(t *testing.T) {
	s := newTestSID(SIDModel6581)
	v := &s.voices[0]
	v.attack = 0 // fastest attack rate (table index 0)
	v.sustain = 0x0F // sustain level $FF, so the decay phase holds the peak
	v.ctrl = sidGate
	// Attack rate 0 steps every sidRates[0]=9 cycles; run enough cycles to
	// walk the envelope from 0 to 255.
	for i := 0; i < 9*260; i++ {
		v.clockEnvelope()
	}
	if v.envLevel != 0xFF {
		t.Fatalf("expected envelope to reach full level $FF under a held gate, got $%02X", v.envLevel)
	}
	if v.envState != envDecay && v.envState != envSustain {
		t.Fatalf("expected envelope to move into decay/sustain after reaching full level")
	}
}

func TestSIDEnvelopeReleaseDecaysToZero(t *testing.T) {
	s := newTestSID(SIDModel6581)
	v := &s.voices[0]
	v.envLevel = 0xFF
	v.prevGate = true
	v.release = 0
	v.ctrl = 0 // gate low: release edge on first clockEnvelope call
	for i := 0; i < 9*260; i++ {
		v.clockEnvelope()
	}
	if v.envLevel != 0 {
		t.Fatalf("expected envelope to release fully to 0, got $%02X", v.envLevel)
	}
}

func TestSIDRegisterWriteReadMirrorsVoiceStride(t *testing.T) {
	s := newTestSID(SIDModel6581)
	s.write(sidV1FreqLo, 0x34)
	s.write(sidV1FreqHi, 0x12)
	if s.voices[0].freq != 0x1234 {
		t.Fatalf("expected voice 0 frequency $1234, got $%04X", s.voices[0].freq)
	}
	s.write(sidV1FreqLo+sidVoiceStride, 0x78)
	s.write(sidV1FreqHi+sidVoiceStride, 0x56)
	if s.voices[1].freq != 0x5678 {
		t.Fatalf("expected voice 1 frequency $5678 via the second register block, got $%04X", s.voices[1].freq)
	}
}

func TestSIDWriteOnlyRegisterReadsBackOpenBusConstant(t *testing.T) {
	s := newTestSID(SIDModel6581)
	s.write(sidV1Ctrl, 0x41)
	if got := s.read(sidV1Ctrl); got != 0xD4 {
		t.Fatalf("expected write-only control register to read back the open-bus constant $D4, got $%02X", got)
	}
}

func TestSIDOsc3AndEnv3AreReadable(t *testing.T) {
	s := newTestSID(SIDModel6581)
	s.voices[2].envLevel = 0x55
	if got := s.read(sidEnv3); got != 0x55 {
		t.Fatalf("expected ENV3 readback of $55, got $%02X", got)
	}
	s.voices[2].accumulator = 0xAB1234
	if got := s.read(sidOsc3); got != 0xAB {
		t.Fatalf("expected OSC3 readback of the accumulator's upper byte $AB, got $%02X", got)
	}
}

func TestSIDFilterCutoffCurveDiffersByModel(t *testing.T) {
	sid6581 := newTestSID(SIDModel6581)
	sid8580 := newTestSID(SIDModel8580)
	sid6581.filterCutoff = 1024
	sid8580.filterCutoff = 1024
	sid6581.modeVol = 0x10 // lowpass
	sid8580.modeVol = 0x10

	out6581 := sid6581.runFilter(1.0)
	out8580 := sid8580.runFilter(1.0)
	if out6581 == out8580 {
		t.Fatalf("expected the 6581's nonlinear cutoff curve to diverge from the 8580's linear one")
	}
}
