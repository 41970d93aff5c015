package audio

import (
	"io"

	"github.com/vovakirdan/survivors-oath/internal/config"
	"github.com/vovakirdan/survivors-oath/internal/core"
)

// Device performs playback. Implementations never see the Missing handle.
type Device interface {
	Play(h Handle)
	SetVolume(h Handle, volume float64)
}

// NopDevice discards every request.
type NopDevice struct{}

func (NopDevice) Play(Handle)               {}
func (NopDevice) SetVolume(Handle, float64) {}

// BellDevice rings the terminal bell for effects. Music volume is ignored.
type BellDevice struct {
	W io.Writer
}

func (d BellDevice) Play(Handle) {
	if d.W != nil {
		_, _ = d.W.Write([]byte{'\a'})
	}
}

func (BellDevice) SetVolume(Handle, float64) {}

// Recorder keeps every request it receives.
type Recorder struct {
	Played  []Handle
	Volumes map[Handle]float64
}

func (r *Recorder) Play(h Handle) {
	r.Played = append(r.Played, h)
}

func (r *Recorder) SetVolume(h Handle, volume float64) {
	if r.Volumes == nil {
		r.Volumes = make(map[Handle]float64)
	}
	r.Volumes[h] = volume
}

// Output resolves requests against a bank and forwards them to a device.
// The zero value and a nil *Output are silent.
type Output struct {
	bank   *Bank
	device Device
}

// NewOutput creates an output. A nil bank or device makes it silent.
func NewOutput(bank *Bank, device Device) *Output {
	return &Output{bank: bank, device: device}
}

// Play requests a one-shot effect. Missing assets are ignored.
func (o *Output) Play(s Sound) {
	if o == nil || o.bank == nil || o.device == nil {
		return
	}
	if h := o.bank.Sound(s); h != Missing {
		o.device.Play(h)
	}
}

// TrackAvailable reports whether the track resolved to a real asset.
func (o *Output) TrackAvailable(t Track) bool {
	return o != nil && o.bank != nil && o.bank.Track(t) != Missing
}

// SetTrackVolume sets a track volume. Missing tracks are ignored.
func (o *Output) SetTrackVolume(t Track, volume float64) {
	if !o.TrackAvailable(t) || o.device == nil {
		return
	}
	o.device.SetVolume(o.bank.Track(t), volume)
}

// Mixer cross-fades the day and night tracks.
type Mixer struct {
	Day   float64
	Night float64
	cfg   config.AudioConfig
}

// NewMixer creates a mixer settled for the given night factor (0 or 1).
func NewMixer(cfg config.AudioConfig, night float64) *Mixer {
	m := &Mixer{cfg: cfg}
	m.Reset(night)
	return m
}

// Reset jumps straight to the target volumes for night.
func (m *Mixer) Reset(night float64) {
	m.Day = (1 - night) * m.cfg.DayVolume
	m.Night = night * m.cfg.NightVolume
}

// Apply pushes the current volumes to out.
func (m *Mixer) Apply(out *Output) {
	out.SetTrackVolume(TrackDay, m.Day)
	out.SetTrackVolume(TrackNight, m.Night)
}

// Update eases volumes toward the targets for night and applies them.
func (m *Mixer) Update(dt, night float64, out *Output) {
	t := core.ClampF(dt*m.cfg.MixRate, 0, 1)
	m.Day = core.Lerp(m.Day, (1-night)*m.cfg.DayVolume, t)
	m.Night = core.Lerp(m.Night, night*m.cfg.NightVolume, t)
	m.Apply(out)
}
