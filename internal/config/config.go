// Package config provides YAML-based tuning configuration for the game:
// world size and scatter, player physics, needs drain, rival behavior,
// camera, day/night timing and session rules.
package config

// Config is the full tuning configuration.
type Config struct {
	World    WorldConfig    `yaml:"world"`
	Player   PlayerConfig   `yaml:"player"`
	Needs    NeedsConfig    `yaml:"needs"`
	Rival    RivalConfig    `yaml:"rival"`
	Camera   CameraConfig   `yaml:"camera"`
	DayNight DayNightConfig `yaml:"daynight"`
	Feedback FeedbackConfig `yaml:"feedback"`
	Audio    AudioConfig    `yaml:"audio"`
	Session  SessionConfig  `yaml:"session"`
}

// WorldConfig defines world bounds and resource scatter.
type WorldConfig struct {
	Width        float64      `yaml:"width"`
	Height       float64      `yaml:"height"`
	ScatterInset float64      `yaml:"scatter_inset"` // Keep nodes this far from the edges
	NodeCapacity int          `yaml:"node_capacity"`
	NodeScale    float64      `yaml:"node_scale"` // Visual scale shared with player/rival
	Nodes        NodeCounts   `yaml:"nodes"`
	GatherRadius GatherRadius `yaml:"gather_radius"` // Before NodeScale
}

// NodeCounts is how many nodes of each type are scattered per session.
type NodeCounts struct {
	Food     int `yaml:"food"`
	Water    int `yaml:"water"`
	Material int `yaml:"material"`
	Clue     int `yaml:"clue"`
}

// GatherRadius is the unscaled interaction radius per node type.
type GatherRadius struct {
	Food     float64 `yaml:"food"`
	Water    float64 `yaml:"water"`
	Material float64 `yaml:"material"`
	Clue     float64 `yaml:"clue"`
}

// PlayerConfig defines player physics and starting state.
type PlayerConfig struct {
	Scale            float64 `yaml:"scale"`
	BaseRadius       float64 `yaml:"base_radius"`
	MaxHealth        int     `yaml:"max_health"`
	Accel            float64 `yaml:"accel"`
	Friction         float64 `yaml:"friction"`
	MaxSpeed         float64 `yaml:"max_speed"`
	SprintMultiplier float64 `yaml:"sprint_multiplier"`
	StartFood        int     `yaml:"start_food"`
	StartWater       int     `yaml:"start_water"`
	StartSticks      int     `yaml:"start_sticks"`
	StartHunger      float64 `yaml:"start_hunger"`
	StartThirst      float64 `yaml:"start_thirst"`
	CraftCost        int     `yaml:"craft_cost"` // Sticks per spear
	AttackCooldown   float64 `yaml:"attack_cooldown"`
	AimEpsilon       float64 `yaml:"aim_epsilon"` // Squared distance below which aim is kept
}

// NeedsConfig defines hunger/thirst drain and restore amounts.
type NeedsConfig struct {
	Max               float64 `yaml:"max"`
	HungerRate        float64 `yaml:"hunger_rate"` // Per second
	ThirstRate        float64 `yaml:"thirst_rate"` // Per second, before day/night factor
	ThirstDayFactor   float64 `yaml:"thirst_day_factor"`
	ThirstNightFactor float64 `yaml:"thirst_night_factor"`
	EatRestore        float64 `yaml:"eat_restore"`
	DrinkRestore      float64 `yaml:"drink_restore"`
}

// RivalConfig defines the pursuer.
type RivalConfig struct {
	SpawnX        float64 `yaml:"spawn_x"`
	SpawnY        float64 `yaml:"spawn_y"`
	Scale         float64 `yaml:"scale"`
	BaseSpeed     float64 `yaml:"base_speed"`
	NightBonus    float64 `yaml:"night_bonus"`
	ContactRadius float64 `yaml:"contact_radius"` // Before scale
	MeleeRange    float64 `yaml:"melee_range"`    // Before scale
	HitCooldown   float64 `yaml:"hit_cooldown"`
	SeekEpsilon   float64 `yaml:"seek_epsilon"`
}

// CameraConfig defines follow smoothing, zoom and shake.
type CameraConfig struct {
	Smoothing      float64 `yaml:"smoothing"`       // k in 1 - e^(-k*dt)
	VerticalOffset float64 `yaml:"vertical_offset"` // Multiplied by player scale
	MinZoom        float64 `yaml:"min_zoom"`
	MaxZoom        float64 `yaml:"max_zoom"`
	ShakeAmplitude float64 `yaml:"shake_amplitude"` // Per second of remaining shake
	ShakeDecay     float64 `yaml:"shake_decay"`     // Shake seconds removed per second
	ShakeDuration  float64 `yaml:"shake_duration"`
}

// DayNightConfig defines the phase clock and the forced-night event.
type DayNightConfig struct {
	StartPhase     float64 `yaml:"start_phase"`
	Rate           float64 `yaml:"rate"` // Phase per second
	NightStart     float64 `yaml:"night_start"`
	NightEnd       float64 `yaml:"night_end"`
	ForceAtClues   int     `yaml:"force_at_clues"`
	ForceBefore    float64 `yaml:"force_before"` // Trigger only while phase is below this
	ForceTarget    float64 `yaml:"force_target"`
	ForceRate      float64 `yaml:"force_rate"`
	BlendRate      float64 `yaml:"blend_rate"`
	ForceTolerance float64 `yaml:"force_tolerance"`
}

// FeedbackConfig defines the popup queue.
type FeedbackConfig struct {
	Capacity int     `yaml:"capacity"`
	Lifetime float64 `yaml:"lifetime"`
	LabelMax int     `yaml:"label_max"`
}

// AudioConfig defines the day/night music mix.
type AudioConfig struct {
	DayVolume   float64 `yaml:"day_volume"`
	NightVolume float64 `yaml:"night_volume"`
	MixRate     float64 `yaml:"mix_rate"`
}

// SessionConfig defines progression and screen-flow rules.
type SessionConfig struct {
	CluesRequired int     `yaml:"clues_required"`
	StoryLines    int     `yaml:"story_lines"`
	StoryDebounce float64 `yaml:"story_debounce"`
	MenuItems     int     `yaml:"menu_items"`
	IntroFadeRate float64 `yaml:"intro_fade_rate"`
	HitFlash      float64 `yaml:"hit_flash"`
	HitFlashDecay float64 `yaml:"hit_flash_decay"`
	LightRadius   float64 `yaml:"light_radius"`
}
