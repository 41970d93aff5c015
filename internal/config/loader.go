package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name looked up in the search directories.
const FileName = "oath.yaml"

// Load loads the tuning configuration.
// Search order: customPath -> ~/.oath/configs/oath.yaml -> ./configs/oath.yaml -> embedded default.
// Files are overlaid on the defaults, so a partial file only changes the keys it names.
// A custom path that cannot be read or parsed is an error; the other locations are best-effort.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if p := userConfigPath(FileName); p != "" {
		if data, err := os.ReadFile(p); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse overlays a YAML document on the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal renders the configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot marshal: %w", err)
	}
	return data, nil
}

// Validate reports every value that would break the simulation.
func (c Config) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	nonNegative := func(name string, v float64) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %v", name, v))
		}
	}
	unit := func(name string, v float64) {
		if v < 0 || v >= 1 {
			errs = append(errs, fmt.Errorf("%s must be in [0, 1), got %v", name, v))
		}
	}

	positive("world.width", c.World.Width)
	positive("world.height", c.World.Height)
	nonNegative("world.scatter_inset", c.World.ScatterInset)
	if 2*c.World.ScatterInset >= c.World.Width || 2*c.World.ScatterInset >= c.World.Height {
		errs = append(errs, fmt.Errorf("world.scatter_inset %v leaves no room in a %vx%v world",
			c.World.ScatterInset, c.World.Width, c.World.Height))
	}
	positive("world.node_capacity", float64(c.World.NodeCapacity))
	positive("world.node_scale", c.World.NodeScale)
	n := c.World.Nodes
	for name, v := range map[string]int{"food": n.Food, "water": n.Water, "material": n.Material, "clue": n.Clue} {
		nonNegative("world.nodes."+name, float64(v))
	}

	positive("player.scale", c.Player.Scale)
	positive("player.max_health", float64(c.Player.MaxHealth))
	positive("player.max_speed", c.Player.MaxSpeed)
	nonNegative("player.friction", c.Player.Friction)
	positive("player.craft_cost", float64(c.Player.CraftCost))
	nonNegative("player.start_food", float64(c.Player.StartFood))
	nonNegative("player.start_water", float64(c.Player.StartWater))
	nonNegative("player.start_sticks", float64(c.Player.StartSticks))

	positive("needs.max", c.Needs.Max)
	if c.Player.StartHunger > c.Needs.Max || c.Player.StartThirst > c.Needs.Max {
		errs = append(errs, fmt.Errorf("player start needs exceed needs.max %v", c.Needs.Max))
	}

	positive("rival.scale", c.Rival.Scale)
	nonNegative("rival.hit_cooldown", c.Rival.HitCooldown)

	positive("camera.min_zoom", c.Camera.MinZoom)
	if c.Camera.MaxZoom < c.Camera.MinZoom {
		errs = append(errs, fmt.Errorf("camera.max_zoom %v is below camera.min_zoom %v", c.Camera.MaxZoom, c.Camera.MinZoom))
	}

	unit("daynight.start_phase", c.DayNight.StartPhase)
	unit("daynight.force_target", c.DayNight.ForceTarget)
	if c.DayNight.NightStart >= c.DayNight.NightEnd {
		errs = append(errs, fmt.Errorf("daynight.night_start %v must be before night_end %v", c.DayNight.NightStart, c.DayNight.NightEnd))
	}
	positive("daynight.force_tolerance", c.DayNight.ForceTolerance)

	positive("feedback.capacity", float64(c.Feedback.Capacity))
	positive("feedback.lifetime", c.Feedback.Lifetime)
	positive("feedback.label_max", float64(c.Feedback.LabelMax))

	positive("session.clues_required", float64(c.Session.CluesRequired))
	positive("session.story_lines", float64(c.Session.StoryLines))
	positive("session.menu_items", float64(c.Session.MenuItems))

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".oath", "configs", filename)
}
