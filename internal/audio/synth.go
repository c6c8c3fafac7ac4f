package audio

import (
	"math"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 2 // 16-bit signed little endian
	frameBytes   = ChannelCount * BitDepth
)

// generate renders a sound to interleaved stereo PCM.
func generate(s Sound) []byte {
	switch s {
	case SoundFlap:
		return genFlap()
	case SoundScore:
		return genScore()
	case SoundHit:
		return genHit()
	case SoundMove:
		return genMove()
	case SoundEat:
		return genEat()
	case SoundGameOver:
		return genGameOver()
	default:
		return nil
	}
}

func makeBuf(n int) []byte { return make([]byte, n*frameBytes) }

// putStereo16 writes a [-1,1] sample to both channels of frame i.
func putStereo16(buf []byte, i int, sample float64) {
	v := uint16(int16(math.Round(max(-1, min(1, sample)) * math.MaxInt16)))
	buf[i*4] = byte(v)
	buf[i*4+1] = byte(v >> 8)
	buf[i*4+2] = byte(v)
	buf[i*4+3] = byte(v >> 8)
}

// softSat applies gentle saturation without hard clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

// genFlap: short upward chirp.
func genFlap() []byte {
	n := int(0.08 * SampleRate)
	buf := makeBuf(n)
	for i := range n {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.02, 0.4, 0.2, 0.3)
		freq := 320 + 540*p
		putStereo16(buf, i, softSat(fm(t, freq, 1.5, 1.8*env)*env*0.45))
	}
	return buf
}

// genScore: two-note bell.
func genScore() []byte {
	n := int(0.22 * SampleRate)
	buf := makeBuf(n)
	for i := range n {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		freq := 880.0 // A5
		if p > 0.35 {
			freq = 1318.51 // E6
		}
		env := math.Exp(-p * 5)
		s := fm(t, freq, 3.5, 1.4*env) * env * 0.35
		putStereo16(buf, i, softSat(s))
	}
	return buf
}

// genHit: low thump over filtered noise.
func genHit() []byte {
	n := int(0.25 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(424242)
	lp := 0.0
	for i := range n {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := math.Exp(-p * 8)
		lp = lp*0.85 + lcg(&seed)*0.15
		thump := fm(t, 90*(1-p*0.5), 0.5, 1.5) * math.Exp(-p*14)
		putStereo16(buf, i, softSat((lp*0.5+thump*0.7)*env))
	}
	return buf
}

// genMove: faint tick.
func genMove() []byte {
	n := int(0.02 * SampleRate)
	buf := makeBuf(n)
	for i := range n {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := math.Exp(-p * 12)
		putStereo16(buf, i, math.Sin(2*math.Pi*1200*t)*env*0.08)
	}
	return buf
}

// genEat: bright rising blip with a thin harmonic layer.
func genEat() []byte {
	n := int(0.09 * SampleRate)
	buf := makeBuf(n)
	for i := range n {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.5, 0.0, 0.1)
		freq := 480 + 720*p
		s := fm(t, freq, 2.0, 3.5*env) * env * 0.5
		s += math.Sin(2*math.Pi*freq*3*t) * env * 0.06
		putStereo16(buf, i, softSat(s))
	}
	return buf
}

// genGameOver: descending minor triad.
func genGameOver() []byte {
	dur := 0.75
	n := int(dur * SampleRate)
	notes := []struct{ freq, onset float64 }{
		{329.63, 0.00}, // E4
		{261.63, 0.14}, // C4
		{220.00, 0.28}, // A3
	}
	mix := make([]float64, n)
	for _, note := range notes {
		start := int(note.onset * SampleRate)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.008, 0.25, 0.3, 0.45)
			freq := note.freq * (1 - np*0.025)
			s := fm(t, freq, 2.0, 2.0*env) * env * 0.32
			s += math.Sin(2*math.Pi*freq*0.5*t) * env * 0.1
			mix[i] += s
		}
	}
	buf := makeBuf(n)
	for i, s := range mix {
		putStereo16(buf, i, softSat(s))
	}
	return buf
}
