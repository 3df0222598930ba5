package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/lixenwraith/sandfall/parameter"
)

// EnvPrefix namespaces environment overrides, e.g. SANDFALL_FRACTURE_OVERPOWER
const EnvPrefix = "SANDFALL"

// Config is the process configuration: runtime options plus simulation tuning
type Config struct {
	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`
	Level    string `mapstructure:"level"`
	AppName  string `mapstructure:"app_name"`

	Tuning parameter.Tuning `mapstructure:",squash"`
}

// Load overlays an optional config file (any viper format) and SANDFALL_* environment
// variables on the compiled-in defaults, then validates the result
// An empty path loads defaults and environment only
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Tuning.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning: %w", err)
	}
	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("invalid log_level %q: %w", cfg.LogLevel, err)
	}
	return &cfg, nil
}

// ZerologLevel returns the parsed log level, info when unset
func (c *Config) ZerologLevel() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

func setDefaults(v *viper.Viper) {
	d := parameter.DefaultTuning()

	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", parameter.DefaultAppName+".log")
	v.SetDefault("level", "")
	v.SetDefault("app_name", parameter.DefaultAppName)

	v.SetDefault("world.gravity", d.World.Gravity)
	v.SetDefault("world.step_seconds", d.World.StepSeconds)
	v.SetDefault("world.cell_size", d.World.CellSize)
	v.SetDefault("world.rock_half_extent", d.World.RockHalfExtent)
	v.SetDefault("world.rock_mass", d.World.RockMass)
	v.SetDefault("world.despawn_fallen_y", d.World.DespawnFallenY)
	v.SetDefault("world.rest_speed_sq", d.World.RestSpeedSq)
	v.SetDefault("world.max_contacts", d.World.MaxContacts)

	v.SetDefault("fracture.overpower", d.Fracture.Overpower)
	v.SetDefault("fracture.velocity_threshold", d.Fracture.VelocityThreshold)
	v.SetDefault("fracture.knockback_multiplier", d.Fracture.KnockbackMultiplier)

	v.SetDefault("ground.velocity", d.Ground.Velocity)
	v.SetDefault("ground.break", d.Ground.Break)
	v.SetDefault("ground.break_radius", d.Ground.BreakRadius)
	v.SetDefault("ground.velocity_vs_external", d.Ground.VelocityVsExternal)

	v.SetDefault("carry.spring", d.Carry.Spring)
	v.SetDefault("carry.fallback_mass", d.Carry.FallbackMass)
	v.SetDefault("carry.mass_epsilon", d.Carry.MassEpsilon)
	v.SetDefault("carry.toss", d.Carry.Toss)

	v.SetDefault("player.health", d.Player.Health)
	v.SetDefault("player.mass", d.Player.Mass)
	v.SetDefault("player.radius", d.Player.Radius)
	v.SetDefault("player.reach", d.Player.Reach)
	v.SetDefault("player.carve_min", d.Player.CarveMin)
	v.SetDefault("player.carve_max", d.Player.CarveMax)
	v.SetDefault("player.carve_speed", d.Player.CarveSpeed)
	v.SetDefault("player.walk_speed", d.Player.WalkSpeed)
	v.SetDefault("player.walk_accel", d.Player.WalkAccel)
	v.SetDefault("player.jump_height", d.Player.JumpHeight)
	v.SetDefault("player.extra_jumps", d.Player.ExtraJumps)
	v.SetDefault("player.ground_probe", d.Player.GroundProbe)

	v.SetDefault("parry.radius_max", d.Parry.RadiusMax)
	v.SetDefault("parry.radius_min", d.Parry.RadiusMin)
	v.SetDefault("parry.duration", d.Parry.Duration)
	v.SetDefault("parry.regen", d.Parry.Regen)
	v.SetDefault("parry.falloff", d.Parry.Falloff)
}
