package systems

import (
	"math"
	"testing"

	"rivermarsh-server/internal/domain"
	"rivermarsh-server/internal/env"
)

func TestIntegrate(t *testing.T) {
	t.Run("Moves toward target at effective speed", func(t *testing.T) {
		e := newTestCombatant("runner")
		e.Movement.CurrentMode = domain.LocomotionRun // 6 м/с
		dest := domain.Vec3{Z: 60}
		e.Movement.TargetPosition = &dest

		Integrate(e, 1.0)

		if math.Abs(e.Movement.Position.Z-6) > 1e-9 {
			t.Errorf("expected 6m of progress, got %v", e.Movement.Position.Z)
		}
		if e.Movement.Velocity.Length() == 0 {
			t.Error("velocity must be set while moving")
		}
	})

	t.Run("Arrival clears the target", func(t *testing.T) {
		e := newTestCombatant("walker")
		dest := domain.Vec3{Z: 0.05}
		e.Movement.TargetPosition = &dest

		Integrate(e, 1.0)

		if e.Movement.TargetPosition != nil {
			t.Error("target within arrival radius must be consumed")
		}
	})

	t.Run("Waypoints consumed in order", func(t *testing.T) {
		e := newTestCombatant("patroller")
		e.Movement.PathToTarget = []domain.Vec3{{Z: 0.05}, {Z: 10}}

		Integrate(e, 1.0)
		if len(e.Movement.PathToTarget) != 1 {
			t.Fatalf("first waypoint must be consumed, %d left", len(e.Movement.PathToTarget))
		}

		Integrate(e, 1.0)
		if e.Movement.Position.Z <= 0 {
			t.Error("movement must continue toward the next waypoint")
		}
	})

	t.Run("Stunned entities stand still", func(t *testing.T) {
		e := newTestCombatant("stunned")
		e.Combat.StunRemaining = 1.0
		dest := domain.Vec3{Z: 10}
		e.Movement.TargetPosition = &dest

		Integrate(e, 1.0)

		if e.Movement.Position.Z != 0 {
			t.Error("stunned entity must not move")
		}
		if e.Movement.Velocity.Length() != 0 {
			t.Error("stunned entity must have zero velocity")
		}
	})

	t.Run("Water forces swimming", func(t *testing.T) {
		e := newTestCombatant("swimmer")
		e.Movement.IsInWater = true
		e.Movement.SwimSpeed = 4
		dest := domain.Vec3{Z: 40}
		e.Movement.TargetPosition = &dest

		Integrate(e, 1.0)

		if e.Movement.CurrentMode != domain.LocomotionSwim {
			t.Errorf("expected swim mode in water, got %v", e.Movement.CurrentMode)
		}
		if math.Abs(e.Movement.Position.Z-4) > 1e-9 {
			t.Errorf("expected swim speed 4, got progress %v", e.Movement.Position.Z)
		}
	})

	t.Run("Rotation faces travel direction", func(t *testing.T) {
		e := newTestCombatant("turner")
		dest := domain.Vec3{X: 10}
		e.Movement.TargetPosition = &dest

		Integrate(e, 0.1)

		forward := e.Movement.Rotation.Forward()
		if forward.X < 0.99 {
			t.Errorf("expected forward along +X, got %+v", forward)
		}
	})
}

func TestUpdateSpeedMultiplier(t *testing.T) {
	e := newTestCombatant("geared")
	ws := env.DefaultState() // болото: скорость 0.85

	t.Run("Biome modifier applies", func(t *testing.T) {
		UpdateSpeedMultiplier(e, ws)
		if math.Abs(e.Movement.SpeedMultiplier-0.85) > 1e-9 {
			t.Errorf("expected marsh 0.85, got %v", e.Movement.SpeedMultiplier)
		}
	})

	t.Run("Equipment speed stacks multiplicatively", func(t *testing.T) {
		if err := Equip(e, &domain.EquipmentItem{ID: "anklet", Slot: domain.SlotAnkletLeft, SpeedBonus: 0.2}); err != nil {
			t.Fatal(err)
		}
		UpdateSpeedMultiplier(e, ws)
		if math.Abs(e.Movement.SpeedMultiplier-0.85*1.2) > 1e-9 {
			t.Errorf("expected 1.02, got %v", e.Movement.SpeedMultiplier)
		}
	})
}
