// Package audio resolves sound and music assets to opaque handles and
// forwards playback requests to a device. A missing asset resolves to the
// Missing handle, which every call accepts and ignores.
package audio

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Sound is a one-shot effect requested by the simulation.
type Sound int

const (
	SoundFood Sound = iota
	SoundStick
	SoundDrink
	SoundClue
	SoundCraft
	SoundHit
	SoundKill
)

var soundFiles = map[Sound]string{
	SoundFood:  "pickup_food",
	SoundStick: "pickup_stick",
	SoundDrink: "drink",
	SoundClue:  "clue",
	SoundCraft: "craft",
	SoundHit:   "hit",
	SoundKill:  "kill",
}

func (s Sound) String() string {
	if name, ok := soundFiles[s]; ok {
		return name
	}
	return "unknown"
}

// Track is a looping background music stream.
type Track int

const (
	TrackDay Track = iota
	TrackNight
)

var trackFiles = map[Track]string{
	TrackDay:   "bg_day",
	TrackNight: "bg_night",
}

func (t Track) String() string {
	if name, ok := trackFiles[t]; ok {
		return name
	}
	return "unknown"
}

// trackExts are probed in order for music.
var trackExts = []string{".ogg", ".mp3", ".wav"}

// Handle identifies a loaded asset.
type Handle int

// Missing is the handle of an asset that could not be found.
const Missing Handle = 0

// Bank maps sounds and tracks to handles.
type Bank struct {
	sounds map[Sound]Handle
	tracks map[Track]Handle
	paths  map[Handle]string
	next   Handle
}

// NewBank creates an empty bank where everything is Missing.
func NewBank() *Bank {
	return &Bank{
		sounds: make(map[Sound]Handle),
		tracks: make(map[Track]Handle),
		paths:  make(map[Handle]string),
		next:   Missing + 1,
	}
}

// LoadBank probes dir for <name>.wav effects and <name>.(ogg|mp3|wav) tracks.
// Absent files are logged at debug level and left Missing. A nil logger discards.
func LoadBank(dir string, logger *log.Logger) *Bank {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	b := NewBank()
	if dir == "" {
		return b
	}

	for s, name := range soundFiles {
		path := filepath.Join(dir, name+".wav")
		if fileExists(path) {
			b.sounds[s] = b.register(path)
		} else {
			logger.Debug("sound missing", "sound", s, "path", path)
		}
	}

	for t, name := range trackFiles {
		found := false
		for _, ext := range trackExts {
			path := filepath.Join(dir, name+ext)
			if fileExists(path) {
				b.tracks[t] = b.register(path)
				found = true
				break
			}
		}
		if !found {
			logger.Debug("track missing", "track", t, "dir", dir)
		}
	}

	logger.Info("audio bank loaded", "dir", dir, "sounds", len(b.sounds), "tracks", len(b.tracks))
	return b
}

func (b *Bank) register(path string) Handle {
	h := b.next
	b.next++
	b.paths[h] = path
	return h
}

// SetSound binds a sound to a file path and returns its handle.
func (b *Bank) SetSound(s Sound, path string) Handle {
	h := b.register(path)
	b.sounds[s] = h
	return h
}

// SetTrack binds a track to a file path and returns its handle.
func (b *Bank) SetTrack(t Track, path string) Handle {
	h := b.register(path)
	b.tracks[t] = h
	return h
}

// Sound returns the handle for s, or Missing.
func (b *Bank) Sound(s Sound) Handle {
	return b.sounds[s]
}

// Track returns the handle for t, or Missing.
func (b *Bank) Track(t Track) Handle {
	return b.tracks[t]
}

// Path returns the file behind a handle, or "" for Missing.
func (b *Bank) Path(h Handle) string {
	return b.paths[h]
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
