package config

import (
	_ "embed"
)

//go:embed defaults/oath.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It mirrors defaults/oath.yaml
// and is the last fallback when no YAML can be parsed.
func Default() Config {
	return Config{
		World: WorldConfig{
			Width:        4000,
			Height:       3000,
			ScatterInset: 100,
			NodeCapacity: 256,
			NodeScale:    1.8,
			Nodes: NodeCounts{
				Food:     22,
				Water:    6,
				Material: 18,
				Clue:     4,
			},
			GatherRadius: GatherRadius{
				Food:     24,
				Water:    48,
				Material: 24,
				Clue:     36,
			},
		},
		Player: PlayerConfig{
			Scale:            1.8,
			BaseRadius:       8,
			MaxHealth:        3,
			Accel:            1400,
			Friction:         9,
			MaxSpeed:         300,
			SprintMultiplier: 1.5,
			StartFood:        1,
			StartWater:       1,
			StartSticks:      0,
			StartHunger:      80,
			StartThirst:      80,
			CraftCost:        2,
			AttackCooldown:   0.5,
			AimEpsilon:       0.001,
		},
		Needs: NeedsConfig{
			Max:               100,
			HungerRate:        2,
			ThirstRate:        3,
			ThirstDayFactor:   0.9,
			ThirstNightFactor: 1.1,
			EatRestore:        35,
			DrinkRestore:      45,
		},
		Rival: RivalConfig{
			SpawnX:        300,
			SpawnY:        300,
			Scale:         1.8,
			BaseSpeed:     120,
			NightBonus:    80,
			ContactRadius: 18,
			MeleeRange:    42,
			HitCooldown:   1.0,
			SeekEpsilon:   1,
		},
		Camera: CameraConfig{
			Smoothing:      8,
			VerticalOffset: 12,
			MinZoom:        0.35,
			MaxZoom:        2.0,
			ShakeAmplitude: 4,
			ShakeDecay:     4,
			ShakeDuration:  0.25,
		},
		DayNight: DayNightConfig{
			StartPhase:     0.20,
			Rate:           0.002,
			NightStart:     0.45,
			NightEnd:       0.85,
			ForceAtClues:   3,
			ForceBefore:    0.65,
			ForceTarget:    0.70,
			ForceRate:      3,
			BlendRate:      0.9,
			ForceTolerance: 0.01,
		},
		Feedback: FeedbackConfig{
			Capacity: 64,
			Lifetime: 0.9,
			LabelMax: 15,
		},
		Audio: AudioConfig{
			DayVolume:   0.8,
			NightVolume: 0.6,
			MixRate:     2,
		},
		Session: SessionConfig{
			CluesRequired: 4,
			StoryLines:    4,
			StoryDebounce: 0.20,
			MenuItems:     3,
			IntroFadeRate: 2,
			HitFlash:      0.6,
			HitFlashDecay: 2,
			LightRadius:   180,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultYAML
}
