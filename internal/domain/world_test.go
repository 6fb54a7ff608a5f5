package domain

import (
	"errors"
	"testing"
)

func makeCreature(id string) *Entity {
	return &Entity{
		ID:   id,
		Type: EntityTypePredator,
		Combat: &CombatComponent{
			Health: 100, MaxHealth: 100,
			Stamina: 100, MaxStamina: 100,
		},
		Movement: &MovementComponent{SpeedMultiplier: 1.0},
		AI:       &AIComponent{CurrentState: AIStateIdle},
	}
}

func TestWorldAddDuplicate(t *testing.T) {
	w := NewWorld()

	if err := w.Add(makeCreature("a")); err != nil {
		t.Fatalf("first Add failed: %v", err)
	}

	err := w.Add(makeCreature("a"))
	if !errors.Is(err, ErrDuplicateID) {
		t.Errorf("expected ErrDuplicateID, got %v", err)
	}
}

func TestWorldRemoveIsNoOpSafe(t *testing.T) {
	w := NewWorld()
	w.Add(makeCreature("a"))

	w.Remove("missing") // не должно паниковать и ломать итерацию
	w.Remove("a")
	w.Remove("a")

	if w.Len() != 0 {
		t.Errorf("expected empty world, got %d entities", w.Len())
	}
}

func TestWorldQueryIsSnapshot(t *testing.T) {
	w := NewWorld()
	w.Add(makeCreature("a"))
	w.Add(makeCreature("b"))

	snap := w.AICreatures()
	if len(snap) != 2 {
		t.Fatalf("expected 2 AI creatures, got %d", len(snap))
	}

	// Removal after the query must not shrink the snapshot
	w.Remove("a")
	if len(snap) != 2 {
		t.Errorf("snapshot changed after Remove: %d", len(snap))
	}
	if got := len(w.AICreatures()); got != 1 {
		t.Errorf("fresh query should see 1 creature, got %d", got)
	}
}

func TestWorldQueryOrderIsInsertionOrder(t *testing.T) {
	w := NewWorld()
	for _, id := range []string{"c", "a", "d", "b"} {
		w.Add(makeCreature(id))
	}
	w.Remove("d")
	w.Add(makeCreature("e"))

	want := []string{"c", "a", "b", "e"}
	got := w.All()
	if len(got) != len(want) {
		t.Fatalf("expected %d entities, got %d", len(want), len(got))
	}
	for i, e := range got {
		if e.ID != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], e.ID)
		}
	}
}

func TestWorldQueryByComponentPresence(t *testing.T) {
	w := NewWorld()
	w.Add(makeCreature("hunter"))
	w.Add(&Entity{ID: "bush", Type: EntityTypeResource, Resource: &BiomeResourceComponent{Type: "berries"}})

	if got := len(w.Resources()); got != 1 {
		t.Errorf("expected 1 resource, got %d", got)
	}

	// "все без компонента X"
	noAI := w.Query(func(e *Entity) bool { return e.AI == nil })
	if len(noAI) != 1 || noAI[0].ID != "bush" {
		t.Errorf("expected only the bush without AI, got %d entities", len(noAI))
	}
}

func TestWorldClear(t *testing.T) {
	w := NewWorld()
	w.Add(makeCreature("a"))
	w.Clear()
	if w.Len() != 0 || w.Get("a") != nil {
		t.Error("Clear must empty the registry")
	}
}

func TestCombatComponentClamps(t *testing.T) {
	c := &CombatComponent{Health: 10, MaxHealth: 100, Stamina: 5, MaxStamina: 100}

	if died := c.TakeDamage(50); !died {
		t.Error("lethal damage must report death")
	}
	if c.Health != 0 {
		t.Errorf("health must floor at 0, got %f", c.Health)
	}

	c.SpendStamina(100)
	if c.Stamina != 0 {
		t.Errorf("stamina must floor at 0, got %f", c.Stamina)
	}

	c.RestoreStamina(500)
	if c.Stamina != c.MaxStamina {
		t.Errorf("stamina must cap at max, got %f", c.Stamina)
	}
}

func TestBestAttackInRange(t *testing.T) {
	c := &CombatComponent{Attacks: []Attack{
		{Name: "Bite", Category: AttackBite, Damage: 15, Range: 1.5},
		{Name: "Pounce", Category: AttackPounce, Damage: 20, Range: 3.0},
	}}

	if a := c.BestAttackInRange(2.5); a == nil || a.Name != "Pounce" {
		t.Errorf("expected Pounce at range 2.5, got %+v", a)
	}
	if a := c.BestAttackInRange(1.0); a == nil || a.Name != "Pounce" {
		// обе достают, Pounce сильнее
		t.Errorf("expected strongest attack in range, got %+v", a)
	}
	if a := c.BestAttackInRange(5.0); a != nil {
		t.Errorf("expected no attack at range 5.0, got %+v", a)
	}
}
