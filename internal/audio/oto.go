package audio

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/oto/v2"
)

// maxVoices caps simultaneous sounds to avoid clipping.
const maxVoices = 4

// defaultVolume is the player volume for every effect.
const defaultVolume = 0.55

// OtoSink plays sounds on the system audio device.
type OtoSink struct {
	ctx    *oto.Context
	ready  chan struct{}
	clips  map[Sound][]byte
	voices atomic.Int32
	volume float64
}

// NewOtoSink opens the audio device and renders every clip up front.
func NewOtoSink() (*OtoSink, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, fmt.Errorf("audio: open device: %w", err)
	}
	clips := make(map[Sound][]byte, len(Sounds()))
	for _, s := range Sounds() {
		clips[s] = generate(s)
	}
	return &OtoSink{ctx: ctx, ready: ready, clips: clips, volume: defaultVolume}, nil
}

// Play implements Sink. Sounds triggered before the device is ready or
// while every voice is busy are dropped.
func (o *OtoSink) Play(s Sound) {
	select {
	case <-o.ready:
	default:
		return
	}
	samples := o.clips[s]
	if len(samples) == 0 {
		return
	}
	if o.voices.Add(1) > maxVoices {
		o.voices.Add(-1)
		return
	}
	go func() {
		defer o.voices.Add(-1)
		player := o.ctx.NewPlayer(&soundReader{data: samples})
		player.SetVolume(o.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		//nolint:errcheck // Best-effort close, the clip has finished
		player.Close()
	}()
}

// Open returns a mixer on the system device, or a silent mixer when the
// device cannot be opened. muted sets the initial mute switch.
func Open(logger *log.Logger, muted bool) *Mixer {
	var sink Sink = NopSink{}
	if o, err := NewOtoSink(); err != nil {
		logger.Warn("audio disabled", "error", err)
	} else {
		sink = o
	}
	m := NewMixer(sink)
	m.SetMuted(muted)
	return m
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}
