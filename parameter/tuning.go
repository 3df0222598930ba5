package parameter

import (
	"fmt"
	"math"
)

// Tuning is the runtime-overridable view of the constants in this package
// Loaded by config.Load; systems read it from engine.Resources
type Tuning struct {
	World    WorldTuning    `mapstructure:"world"`
	Fracture FractureTuning `mapstructure:"fracture"`
	Ground   GroundTuning   `mapstructure:"ground"`
	Carry    CarryTuning    `mapstructure:"carry"`
	Player   PlayerTuning   `mapstructure:"player"`
	Parry    ParryTuning    `mapstructure:"parry"`
}

type WorldTuning struct {
	Gravity        float64 `mapstructure:"gravity"`
	StepSeconds    float64 `mapstructure:"step_seconds"`
	CellSize       float64 `mapstructure:"cell_size"`
	RockHalfExtent float64 `mapstructure:"rock_half_extent"`
	RockMass       float64 `mapstructure:"rock_mass"`
	DespawnFallenY float64 `mapstructure:"despawn_fallen_y"`
	RestSpeedSq    float64 `mapstructure:"rest_speed_sq"`
	MaxContacts    int     `mapstructure:"max_contacts"`
}

type FractureTuning struct {
	Overpower           float64 `mapstructure:"overpower"`
	VelocityThreshold   float64 `mapstructure:"velocity_threshold"`
	KnockbackMultiplier float64 `mapstructure:"knockback_multiplier"`
}

type GroundTuning struct {
	Velocity           float64 `mapstructure:"velocity"`
	Break              float64 `mapstructure:"break"`
	BreakRadius        int     `mapstructure:"break_radius"`
	VelocityVsExternal float64 `mapstructure:"velocity_vs_external"`
}

type CarryTuning struct {
	Spring       float64 `mapstructure:"spring"`
	FallbackMass float64 `mapstructure:"fallback_mass"`
	MassEpsilon  float64 `mapstructure:"mass_epsilon"`
	Toss         float64 `mapstructure:"toss"`
}

type PlayerTuning struct {
	Health      float64 `mapstructure:"health"`
	Mass        float64 `mapstructure:"mass"`
	Radius      float64 `mapstructure:"radius"`
	Reach       float64 `mapstructure:"reach"`
	CarveMin    float64 `mapstructure:"carve_min"`
	CarveMax    float64 `mapstructure:"carve_max"`
	CarveSpeed  float64 `mapstructure:"carve_speed"`
	WalkSpeed   float64 `mapstructure:"walk_speed"`
	WalkAccel   float64 `mapstructure:"walk_accel"`
	JumpHeight  float64 `mapstructure:"jump_height"`
	ExtraJumps  int     `mapstructure:"extra_jumps"`
	GroundProbe float64 `mapstructure:"ground_probe"`
}

type ParryTuning struct {
	RadiusMax float64 `mapstructure:"radius_max"`
	RadiusMin float64 `mapstructure:"radius_min"`
	Duration  float64 `mapstructure:"duration"`
	Regen     float64 `mapstructure:"regen"`
	Falloff   float64 `mapstructure:"falloff"`
}

// DefaultTuning returns the compiled-in constants
func DefaultTuning() Tuning {
	return Tuning{
		World: WorldTuning{
			Gravity:        GravityY,
			StepSeconds:    StepSeconds,
			CellSize:       CellSize,
			RockHalfExtent: RockHalfExtent,
			RockMass:       RockMass,
			DespawnFallenY: DespawnFallenY,
			RestSpeedSq:    RestSpeedSq,
			MaxContacts:    MaxContactsPerStep,
		},
		Fracture: FractureTuning{
			Overpower:           Overpower,
			VelocityThreshold:   VelocityThreshold,
			KnockbackMultiplier: KnockbackMultiplier,
		},
		Ground: GroundTuning{
			Velocity:           GroundVelocity,
			Break:              BreakGround,
			BreakRadius:        BreakRadius,
			VelocityVsExternal: VelocityVsExternal,
		},
		Carry: CarryTuning{
			Spring:       CarrySpring,
			FallbackMass: CarryFallbackMass,
			MassEpsilon:  CarryMassEpsilon,
			Toss:         TossMultiplier,
		},
		Player: PlayerTuning{
			Health:      PlayerHealth,
			Mass:        PlayerMass,
			Radius:      PlayerRadius,
			Reach:       PlayerReach,
			CarveMin:    CarveRadiusMin,
			CarveMax:    CarveRadiusMax,
			CarveSpeed:  CarveRadiusSpeed,
			WalkSpeed:   WalkSpeed,
			WalkAccel:   WalkAccel,
			JumpHeight:  JumpHeight,
			ExtraJumps:  ExtraJumps,
			GroundProbe: GroundProbe,
		},
		Parry: ParryTuning{
			RadiusMax: ParryRadiusMax,
			RadiusMin: ParryRadiusMin,
			Duration:  ParryDuration,
			Regen:     ParryRegen,
			Falloff:   ParryFalloff,
		},
	}
}

// JumpSpeed is the launch velocity reaching JumpHeight under the configured gravity
func (t *Tuning) JumpSpeed() float64 {
	return math.Sqrt(2 * math.Abs(t.World.Gravity) * t.Player.JumpHeight)
}

// Validate rejects values that would break the step math
func (t *Tuning) Validate() error {
	switch {
	case t.World.StepSeconds <= 0:
		return fmt.Errorf("world.step_seconds must be positive, got %v", t.World.StepSeconds)
	case t.World.CellSize <= 0:
		return fmt.Errorf("world.cell_size must be positive, got %v", t.World.CellSize)
	case t.World.RockMass <= 0:
		return fmt.Errorf("world.rock_mass must be positive, got %v", t.World.RockMass)
	case t.World.MaxContacts <= 0:
		return fmt.Errorf("world.max_contacts must be positive, got %d", t.World.MaxContacts)
	case t.Carry.FallbackMass <= 0:
		return fmt.Errorf("carry.fallback_mass must be positive, got %v", t.Carry.FallbackMass)
	case t.Ground.BreakRadius < 0:
		return fmt.Errorf("ground.break_radius must not be negative, got %d", t.Ground.BreakRadius)
	case t.Player.CarveMin <= 0 || t.Player.CarveMax < t.Player.CarveMin:
		return fmt.Errorf("player carve radius range invalid: min %v max %v", t.Player.CarveMin, t.Player.CarveMax)
	case t.Parry.RadiusMin < 0 || t.Parry.RadiusMax < t.Parry.RadiusMin:
		return fmt.Errorf("parry radius range invalid: min %v max %v", t.Parry.RadiusMin, t.Parry.RadiusMax)
	case t.Parry.Duration <= 0:
		return fmt.Errorf("parry.duration must be positive, got %v", t.Parry.Duration)
	}
	return nil
}
