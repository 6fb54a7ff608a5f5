package systems

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"rivermarsh-server/internal/domain"
	"rivermarsh-server/internal/env"
)

func testAttack() domain.Attack {
	return domain.Attack{
		Name: "Claw Swipe", Category: domain.AttackClawSwipe,
		Damage: 20, Range: 2.0, StaminaCost: 10, Cooldown: 1.0,
		Knockback: 0.5, AnimationID: 4,
	}
}

func TestResolveAttack(t *testing.T) {
	ws := env.DefaultState()

	setup := func() (*domain.Entity, *domain.Entity) {
		attacker := newTestCombatant("attacker")
		defender := newTestCombatant("defender")
		defender.Movement.Position = domain.Vec3{Z: 1.5}
		return attacker, defender
	}

	t.Run("End to end with equipment and armor", func(t *testing.T) {
		attacker, defender := setup()
		if err := Equip(attacker, &domain.EquipmentItem{ID: "claw_bracers", Slot: domain.SlotBracerLeft, DamageBonus: 1.3}); err != nil {
			t.Fatal(err)
		}
		defender.Combat.Armor = 0.15
		if err := Equip(defender, &domain.EquipmentItem{ID: "collar", Slot: domain.SlotCollar, ArmorBonus: 0.05}); err != nil {
			t.Fatal(err)
		}

		atk := testAttack()
		out, err := ResolveAttack(attacker, defender, &atk, ws, rand.New(rand.NewSource(1)), 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 20 * 1.3 = 26; 26 * (1 - 0.20) = 20.8; 100 - 20.8 = 79.2
		if math.Abs(out.Damage-20.8) > 1e-9 {
			t.Errorf("expected damage 20.8, got %v", out.Damage)
		}
		if math.Abs(defender.Combat.Health-79.2) > 1e-9 {
			t.Errorf("expected health 79.2, got %v", defender.Combat.Health)
		}
		if out.DefenderDied {
			t.Error("defender must survive")
		}
		if !attacker.Combat.IsInCombat || !defender.Combat.IsInCombat {
			t.Error("both combatants must be marked in combat")
		}
	})

	t.Run("Insufficient stamina fails loudly", func(t *testing.T) {
		attacker, defender := setup()
		attacker.Combat.Stamina = 5
		atk := testAttack()
		_, err := ResolveAttack(attacker, defender, &atk, ws, rand.New(rand.NewSource(1)), 0)
		if !errors.Is(err, domain.ErrInsufficientStamina) {
			t.Errorf("expected ErrInsufficientStamina, got %v", err)
		}
		if defender.Combat.Health != 100 {
			t.Error("failed attack must not touch defender")
		}
	})

	t.Run("Out of range fails loudly", func(t *testing.T) {
		attacker, defender := setup()
		defender.Movement.Position = domain.Vec3{Z: 10}
		atk := testAttack()
		_, err := ResolveAttack(attacker, defender, &atk, ws, rand.New(rand.NewSource(1)), 0)
		if !errors.Is(err, domain.ErrOutOfRange) {
			t.Errorf("expected ErrOutOfRange, got %v", err)
		}
	})

	t.Run("Dodge costs attacker stamina but deals nothing", func(t *testing.T) {
		attacker, defender := setup()
		defender.Combat.DodgeChance = 1.0
		atk := testAttack()
		out, err := ResolveAttack(attacker, defender, &atk, ws, rand.New(rand.NewSource(1)), 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Dodged {
			t.Fatal("dodge chance 1.0 must always dodge")
		}
		if defender.Combat.Health != 100 {
			t.Error("dodged attack must not damage")
		}
		if attacker.Combat.Stamina != 90 {
			t.Errorf("attacker must still pay stamina, got %v", attacker.Combat.Stamina)
		}
	})

	t.Run("Armor over one clamps, damage never negative", func(t *testing.T) {
		attacker, defender := setup()
		defender.Combat.Armor = 2.0 // багованная экипировка
		atk := testAttack()
		out, err := ResolveAttack(attacker, defender, &atk, ws, rand.New(rand.NewSource(1)), 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Damage < 0 {
			t.Errorf("damage must never be negative: %v", out.Damage)
		}
		if math.Abs(out.Damage-20*0.05) > 1e-9 {
			t.Errorf("armor must clamp at 0.95: expected 1.0, got %v", out.Damage)
		}
	})

	t.Run("Negative armor does not amplify", func(t *testing.T) {
		attacker, defender := setup()
		defender.Combat.Armor = -0.5
		atk := testAttack()
		out, err := ResolveAttack(attacker, defender, &atk, ws, rand.New(rand.NewSource(1)), 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Damage > 20 {
			t.Errorf("damage must never exceed raw: %v", out.Damage)
		}
	})

	t.Run("Knockback and stun ignore armor", func(t *testing.T) {
		attacker, defender := setup()
		defender.Combat.Armor = 0.9
		atk := testAttack()
		atk.Knockback = 2.0
		atk.StunDur = 1.5
		before := defender.Position()
		out, err := ResolveAttack(attacker, defender, &atk, ws, rand.New(rand.NewSource(1)), 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		pushed := defender.Position().DistanceTo(before)
		if math.Abs(pushed-2.0) > 1e-9 {
			t.Errorf("expected 2m knockback, got %v", pushed)
		}
		if defender.Combat.StunRemaining != 1.5 || out.StunApplied != 1.5 {
			t.Errorf("stun must apply unmitigated: %v", defender.Combat.StunRemaining)
		}
	})

	t.Run("Fire attack weakened by rain", func(t *testing.T) {
		attacker, defender := setup()
		rain := ws
		rain.Weather, _ = env.SetWeather(env.WeatherRain)
		atk := testAttack()
		atk.Elemental = "fire"
		out, err := ResolveAttack(attacker, defender, &atk, rain, rand.New(rand.NewSource(1)), 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 20 * 0.5 (дождь) = 10
		if math.Abs(out.Damage-10) > 1e-9 {
			t.Errorf("expected rain-halved fire damage 10, got %v", out.Damage)
		}
	})

	t.Run("Stamina cost reduction applies", func(t *testing.T) {
		attacker, defender := setup()
		attacker.Combat.StaminaCostReduction = 0.5
		atk := testAttack()
		if _, err := ResolveAttack(attacker, defender, &atk, ws, rand.New(rand.NewSource(1)), 0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if attacker.Combat.Stamina != 95 {
			t.Errorf("expected half cost (5), stamina 95, got %v", attacker.Combat.Stamina)
		}
	})

	t.Run("Repeated attacks stop at the stamina floor", func(t *testing.T) {
		attacker, defender := setup()
		atk := testAttack()
		atk.StaminaCost = 30
		for i := 0; i < 3; i++ {
			if _, err := ResolveAttack(attacker, defender, &atk, ws, rand.New(rand.NewSource(1)), float64(i)); err != nil {
				t.Fatalf("attack %d: %v", i, err)
			}
		}
		if attacker.Combat.Stamina != 10 {
			t.Errorf("expected stamina 10 after three attacks, got %v", attacker.Combat.Stamina)
		}
		_, err := ResolveAttack(attacker, defender, &atk, ws, rand.New(rand.NewSource(1)), 3)
		if !errors.Is(err, domain.ErrInsufficientStamina) {
			t.Errorf("fourth attack must fail, got %v", err)
		}
		if attacker.Combat.Stamina < 0 {
			t.Error("stamina must never go below zero")
		}
	})

	t.Run("Lethal damage floors health at zero", func(t *testing.T) {
		attacker, defender := setup()
		defender.Combat.Health = 5
		atk := testAttack()
		out, err := ResolveAttack(attacker, defender, &atk, ws, rand.New(rand.NewSource(1)), 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.DefenderDied {
			t.Error("defender must die")
		}
		if defender.Combat.Health != 0 {
			t.Errorf("health must floor at 0, got %v", defender.Combat.Health)
		}
	})
}
