// Package audio plays short synthesized cues for editor actions.
package audio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

const SampleRate = 44100

// Cue is a sound tied to one kind of edit.
type Cue int

const (
	CueAdd Cue = iota
	CueDelete
	CueUndo
	CueRedo
)

type note struct {
	freq float64
	dur  time.Duration
}

var cueNotes = map[Cue][]note{
	CueAdd:    {{660, 40 * time.Millisecond}, {880, 60 * time.Millisecond}},
	CueDelete: {{440, 40 * time.Millisecond}, {330, 70 * time.Millisecond}},
	CueUndo:   {{520, 50 * time.Millisecond}},
	CueRedo:   {{620, 50 * time.Millisecond}},
}

// fade is the attack and release of each note, so notes do not click.
const fade = 5 * time.Millisecond

// Synth renders c as mono float32 little-endian PCM at SampleRate.
func Synth(c Cue, volume float32) []byte {
	var buf bytes.Buffer
	fadeN := int(fade.Seconds() * SampleRate)
	for _, n := range cueNotes[c] {
		count := int(n.dur.Seconds() * SampleRate)
		for i := range count {
			env := float32(1)
			if i < fadeN {
				env = float32(i) / float32(fadeN)
			} else if rem := count - i; rem < fadeN {
				env = float32(rem) / float32(fadeN)
			}
			s := float32(math.Sin(2*math.Pi*n.freq*float64(i)/SampleRate)) * env * volume
			binary.Write(&buf, binary.LittleEndian, s)
		}
	}
	return buf.Bytes()
}

// Cues owns the output device. Rendered cues are cached.
type Cues struct {
	ctx    *oto.Context
	log    *slog.Logger
	volume float32

	mu      sync.Mutex
	pcm     map[Cue][]byte
	playing []*oto.Player
}

// Open starts the audio device and blocks until it is ready.
func Open(volume float32, log *slog.Logger) (*Cues, error) {
	if log == nil {
		log = slog.Default()
	}
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return nil, fmt.Errorf("open audio device: %w", err)
	}
	<-ready
	log.Debug("audio cues ready", "sample_rate", SampleRate)
	return &Cues{
		ctx:    ctx,
		log:    log,
		volume: volume,
		pcm:    make(map[Cue][]byte),
	}, nil
}

// SetVolume changes the volume of cues played from now on.
func (c *Cues) SetVolume(volume float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if volume != c.volume {
		c.volume = volume
		clear(c.pcm)
	}
}

// Play starts c without waiting for it to finish.
func (c *Cues) Play(cue Cue) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.reap()
	pcm, ok := c.pcm[cue]
	if !ok {
		pcm = Synth(cue, c.volume)
		c.pcm[cue] = pcm
	}
	p := c.ctx.NewPlayer(bytes.NewReader(pcm))
	p.Play()
	c.playing = append(c.playing, p)
}

// reap closes players that have finished. Callers hold mu.
func (c *Cues) reap() {
	live := c.playing[:0]
	for _, p := range c.playing {
		if p.IsPlaying() {
			live = append(live, p)
			continue
		}
		if err := p.Close(); err != nil {
			c.log.Debug("close audio player", "err", err)
		}
	}
	c.playing = live
}

// Close stops every cue and suspends the device.
func (c *Cues) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range c.playing {
		p.Close()
	}
	c.playing = nil
	if err := c.ctx.Suspend(); err != nil {
		c.log.Debug("suspend audio", "err", err)
	}
}
