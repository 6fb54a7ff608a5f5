package engine

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"rivermarsh-server/internal/domain"
	"rivermarsh-server/internal/env"
	"rivermarsh-server/pkg/api"
)

func testConfig(biome env.BiomeType) Config {
	return Config{
		Seed:            42,
		Biome:           biome,
		StartHour:       12,
		MoonPhase:       0.5,
		TimeScale:       60,
		WeatherInterval: 0, // без перебросов погоды, тесты стабильнее
	}
}

func newTestSim(t *testing.T, biome env.BiomeType) *Simulation {
	t.Helper()
	s, err := NewSimulation(testConfig(biome))
	if err != nil {
		t.Fatalf("NewSimulation failed: %v", err)
	}
	// Фиксируем ясную погоду: стартовый бросок зависит от сида
	s.Env.Weather, err = env.SetWeather(env.WeatherClear)
	if err != nil {
		t.Fatalf("SetWeather failed: %v", err)
	}
	return s
}

func TestNewSimulation(t *testing.T) {
	t.Run("unknown biome is fatal", func(t *testing.T) {
		cfg := testConfig("lava")
		if _, err := NewSimulation(cfg); err == nil {
			t.Fatal("Expected error for unknown biome")
		}
	})

	t.Run("same seed same world", func(t *testing.T) {
		a := newTestSim(t, env.BiomeForest)
		b := newTestSim(t, env.BiomeForest)

		wa, err := a.SpawnPredator("wolf", domain.Vec3{}, 1)
		if err != nil {
			t.Fatalf("SpawnPredator failed: %v", err)
		}
		wb, err := b.SpawnPredator("wolf", domain.Vec3{}, 1)
		if err != nil {
			t.Fatalf("SpawnPredator failed: %v", err)
		}
		if wa.ID != wb.ID {
			t.Errorf("Expected identical IDs for identical seeds, got %s vs %s", wa.ID, wb.ID)
		}
	})

	t.Run("spawned creature enters decision queue", func(t *testing.T) {
		s := newTestSim(t, env.BiomeMarsh)
		w, err := s.SpawnPredator("otter", domain.Vec3{}, 1)
		if err != nil {
			t.Fatalf("SpawnPredator failed: %v", err)
		}
		if _, ok := s.items[w.ID]; !ok {
			t.Error("Expected creature to be tracked in decision queue")
		}
	})

	t.Run("resource stays out of decision queue", func(t *testing.T) {
		s := newTestSim(t, env.BiomeMarsh)
		r, err := s.SpawnResource("cattails", domain.Vec3{X: 3})
		if err != nil {
			t.Fatalf("SpawnResource failed: %v", err)
		}
		if _, ok := s.items[r.ID]; ok {
			t.Error("Resources must not enter the decision queue")
		}
	})
}

// worldFingerprint сворачивает состояние мира в строку для сравнения прогонов.
func worldFingerprint(s *Simulation) string {
	out := ""
	for _, e := range s.World.All() {
		pos := e.Position()
		out += fmt.Sprintf("%s:%.4f,%.4f,%.4f", e.ID, pos.X, pos.Y, pos.Z)
		if e.Combat != nil {
			out += fmt.Sprintf(":h=%.4f:st=%.4f", e.Combat.Health, e.Combat.Stamina)
		}
		if e.AI != nil {
			out += ":" + string(e.AI.CurrentState)
		}
		out += ";"
	}
	return out
}

func TestSameSeedSameHistory(t *testing.T) {
	// Несколько охотников и уворотливая добыча: исход каждого тика
	// зависит от порядка потребления бросков общего генератора
	build := func() *Simulation {
		s := newTestSim(t, env.BiomeForest)
		for i := 0; i < 4; i++ {
			w, err := s.SpawnPredator("wolf", domain.Vec3{X: float64(i) * 2}, 1)
			if err != nil {
				t.Fatalf("SpawnPredator failed: %v", err)
			}
			w.AI.AggressionLevel = 1.0
			r, err := s.SpawnPrey("rabbit", domain.Vec3{X: float64(i)*2 + 1}, 1)
			if err != nil {
				t.Fatalf("SpawnPrey failed: %v", err)
			}
			r.Combat.DodgeChance = 0.9
		}
		return s
	}

	a := build()
	b := build()
	for tick := 0; tick < 20; tick++ {
		a.Tick(0.5)
		b.Tick(0.5)
		fa, fb := worldFingerprint(a), worldFingerprint(b)
		if fa != fb {
			t.Fatalf("Same-seed runs diverged at tick %d:\n%s\nvs\n%s", tick, fa, fb)
		}
	}
}

func TestTickClock(t *testing.T) {
	s := newTestSim(t, env.BiomeMarsh)

	s.Tick(1.0)
	if s.Now != 1.0 {
		t.Errorf("Expected Now 1.0, got %f", s.Now)
	}
	// TimeScale 60: реальная секунда - минута игрового времени
	wantHour := 12 + 60.0/3600
	if math.Abs(s.Env.Time.Hour-wantHour) > 1e-9 {
		t.Errorf("Expected hour %f, got %f", wantHour, s.Env.Time.Hour)
	}
}

func TestTickTimers(t *testing.T) {
	t.Run("stamina regen slowed by biome drain", func(t *testing.T) {
		s := newTestSim(t, env.BiomeMarsh) // StaminaDrainMod 1.1
		w, err := s.SpawnPredator("wolf", domain.Vec3{}, 1)
		if err != nil {
			t.Fatalf("SpawnPredator failed: %v", err)
		}
		w.Combat.Stamina = 50

		s.Tick(1.0)

		want := 50 + w.Combat.StamRegen*1.0/1.1
		if math.Abs(w.Combat.Stamina-want) > 1e-9 {
			t.Errorf("Expected stamina %f, got %f", want, w.Combat.Stamina)
		}
	})

	t.Run("stamina never exceeds max", func(t *testing.T) {
		s := newTestSim(t, env.BiomeMarsh)
		w, err := s.SpawnPredator("wolf", domain.Vec3{}, 1)
		if err != nil {
			t.Fatalf("SpawnPredator failed: %v", err)
		}

		s.Tick(10.0)

		if w.Combat.Stamina > w.Combat.MaxStamina {
			t.Errorf("Stamina %f above max %f", w.Combat.Stamina, w.Combat.MaxStamina)
		}
	})

	t.Run("stun ticks down to zero", func(t *testing.T) {
		s := newTestSim(t, env.BiomeMarsh)
		w, err := s.SpawnPredator("wolf", domain.Vec3{}, 1)
		if err != nil {
			t.Fatalf("SpawnPredator failed: %v", err)
		}
		w.Combat.StunRemaining = 0.3

		s.Tick(0.25)
		if math.Abs(w.Combat.StunRemaining-0.05) > 1e-9 {
			t.Errorf("Expected stun 0.05, got %f", w.Combat.StunRemaining)
		}

		s.Tick(0.25)
		if w.Combat.StunRemaining != 0 {
			t.Errorf("Expected stun 0, got %f", w.Combat.StunRemaining)
		}
	})
}

// Хищник против неподвижной жертвы: полный цикл решение-бой-смерть-уборка.
func TestPredatorKillsPrey(t *testing.T) {
	s := newTestSim(t, env.BiomeForest)

	wolf, err := s.SpawnPredator("wolf", domain.Vec3{}, 1)
	if err != nil {
		t.Fatalf("SpawnPredator failed: %v", err)
	}
	// Лесной бонус скрытности поднимает порог охоты выше единицы:
	// бросок агрессии всегда проходит
	wolf.AI.AggressionLevel = 1.0

	rabbit, err := s.SpawnPrey("rabbit", domain.Vec3{X: 1}, 1)
	if err != nil {
		t.Fatalf("SpawnPrey failed: %v", err)
	}
	rabbit.Combat.DodgeChance = 0
	// Вселяемся в кролика и не шлем ввод: жертва стоит на месте
	if err := s.Possess(rabbit.ID, "victim-session"); err != nil {
		t.Fatalf("Possess failed: %v", err)
	}

	var events []api.GameEvent
	for i := 0; i < 20; i++ {
		s.Tick(0.5)
		events = append(events, s.DrainEvents()...)
		if s.World.Get(rabbit.ID) == nil {
			break
		}
	}

	if s.World.Get(rabbit.ID) != nil {
		t.Fatalf("Expected rabbit to be dead and removed, health %f", rabbit.Combat.Health)
	}

	var sawAttack, sawDeath bool
	for _, ev := range events {
		if ev.Kind == "attack" && ev.EntityID == wolf.ID && ev.TargetID == rabbit.ID {
			sawAttack = true
		}
		if ev.Kind == "death" && ev.EntityID == rabbit.ID {
			sawDeath = true
		}
	}
	if !sawAttack {
		t.Error("Expected an attack event from the wolf")
	}
	if !sawDeath {
		t.Error("Expected a death event for the rabbit")
	}

	// Труп вычищен из очереди решений и из таблицы кулдаунов
	if _, ok := s.items[rabbit.ID]; ok {
		t.Error("Dead entity still tracked in decision queue")
	}
	if _, ok := s.cooldowns[wolf.ID+"/Lunge"]; !ok {
		t.Error("Expected wolf attack cooldown to be recorded")
	}
}

func TestAttackCooldown(t *testing.T) {
	s := newTestSim(t, env.BiomeForest)

	wolf, err := s.SpawnPredator("wolf", domain.Vec3{}, 1)
	if err != nil {
		t.Fatalf("SpawnPredator failed: %v", err)
	}
	// Выносливый противник, который переживет несколько укусов
	bear, err := s.SpawnPredator("honey_badger", domain.Vec3{X: 1}, 1)
	if err != nil {
		t.Fatalf("SpawnPredator failed: %v", err)
	}
	bear.Combat.DodgeChance = 0
	if err := s.Possess(bear.ID, "victim-session"); err != nil {
		t.Fatalf("Possess failed: %v", err)
	}

	if _, ok := s.tryAttack(wolf, bear); !ok {
		t.Fatal("Expected first attack to land")
	}
	healthAfterFirst := bear.Combat.Health

	// Кулдаун не истек: удар молча не проходит
	if _, ok := s.tryAttack(wolf, bear); ok {
		t.Error("Expected second immediate attack to be blocked by cooldown")
	}
	if bear.Combat.Health != healthAfterFirst {
		t.Error("Cooldown-blocked attack must not deal damage")
	}

	// Lunge перезаряжается 3 секунды
	s.Now += 3.0
	if _, ok := s.tryAttack(wolf, bear); !ok {
		t.Error("Expected attack to land after cooldown expiry")
	}
}

func TestWeatherReroll(t *testing.T) {
	cfg := testConfig(env.BiomeMarsh)
	cfg.WeatherInterval = 5
	s, err := NewSimulation(cfg)
	if err != nil {
		t.Fatalf("NewSimulation failed: %v", err)
	}

	for i := 0; i < 6; i++ {
		s.Tick(1.0)
	}

	if s.nextWeatherRoll != 10 {
		t.Errorf("Expected next roll at 10, got %f", s.nextWeatherRoll)
	}
	allowed := env.AllowedWeather(env.BiomeMarsh)
	found := false
	for _, w := range allowed {
		if s.Env.Weather.Current == w {
			found = true
		}
	}
	if !found {
		t.Errorf("Weather %s not allowed in marsh", s.Env.Weather.Current)
	}
}

func TestPossession(t *testing.T) {
	s := newTestSim(t, env.BiomeMarsh)
	w, err := s.SpawnPredator("otter", domain.Vec3{}, 1)
	if err != nil {
		t.Fatalf("SpawnPredator failed: %v", err)
	}

	t.Run("possess unknown entity", func(t *testing.T) {
		err := s.Possess("ghost", "session-1")
		if !errors.Is(err, domain.ErrEntityNotFound) {
			t.Errorf("Expected ErrEntityNotFound, got %v", err)
		}
	})

	t.Run("possess and contested takeover", func(t *testing.T) {
		if err := s.Possess(w.ID, "session-1"); err != nil {
			t.Fatalf("Possess failed: %v", err)
		}
		if !w.IsPlayerControlled() {
			t.Error("Expected entity to be player controlled")
		}
		if err := s.Possess(w.ID, "session-2"); err == nil {
			t.Error("Expected takeover by another session to fail")
		}
		// Повторный захват той же сессией идемпотентен
		if err := s.Possess(w.ID, "session-1"); err != nil {
			t.Errorf("Re-possess by owner failed: %v", err)
		}
	})

	t.Run("release returns entity to AI", func(t *testing.T) {
		s.Now = 33
		s.Release(w.ID)
		if w.IsPlayerControlled() {
			t.Error("Expected entity to be AI controlled after release")
		}
		if w.AI.NextDecisionTime != 33 {
			t.Errorf("Expected immediate re-decision, got %f", w.AI.NextDecisionTime)
		}
	})
}

func TestApplyIntent(t *testing.T) {
	s := newTestSim(t, env.BiomeMarsh)
	w, err := s.SpawnPredator("wolf", domain.Vec3{}, 1)
	if err != nil {
		t.Fatalf("SpawnPredator failed: %v", err)
	}

	t.Run("intent without possession is rejected", func(t *testing.T) {
		err := s.ApplyIntent(w.ID, &api.Intent{Move: [3]float64{1, 0, 0}})
		if err == nil {
			t.Error("Expected error for intent on AI-controlled entity")
		}
	})

	if err := s.Possess(w.ID, "session-1"); err != nil {
		t.Fatalf("Possess failed: %v", err)
	}

	t.Run("move intent drives the entity", func(t *testing.T) {
		err := s.ApplyIntent(w.ID, &api.Intent{Move: [3]float64{1, 0, 0}, Sprint: true})
		if err != nil {
			t.Fatalf("ApplyIntent failed: %v", err)
		}
		if w.Movement.TargetPosition == nil {
			t.Fatal("Expected a movement target")
		}
		if w.Movement.CurrentMode != domain.LocomotionRun {
			t.Errorf("Expected run mode, got %s", w.Movement.CurrentMode)
		}

		// Бег 10 м/с на болоте (x0.85) за полсекунды покрывает шаг в 2 м
		s.Tick(0.5)
		if math.Abs(w.Movement.Position.X-intentStride) > 1e-9 {
			t.Errorf("Expected X %f, got %f", intentStride, w.Movement.Position.X)
		}
		if w.Movement.TargetPosition != nil {
			t.Error("Expected target to be consumed on arrival")
		}
	})

	t.Run("zero move stops the entity", func(t *testing.T) {
		if err := s.ApplyIntent(w.ID, &api.Intent{}); err != nil {
			t.Fatalf("ApplyIntent failed: %v", err)
		}
		if w.Movement.TargetPosition != nil {
			t.Error("Expected no movement target")
		}
		if w.Movement.Velocity.Length() != 0 {
			t.Error("Expected zero velocity")
		}
	})
}

func TestGatherFrom(t *testing.T) {
	s := newTestSim(t, env.BiomeMarsh)
	w, err := s.SpawnPredator("otter", domain.Vec3{}, 1)
	if err != nil {
		t.Fatalf("SpawnPredator failed: %v", err)
	}
	near, err := s.SpawnResource("cattails", domain.Vec3{X: 2})
	if err != nil {
		t.Fatalf("SpawnResource failed: %v", err)
	}
	far, err := s.SpawnResource("cattails", domain.Vec3{X: 50})
	if err != nil {
		t.Fatalf("SpawnResource failed: %v", err)
	}

	t.Run("gather within reach", func(t *testing.T) {
		before := near.Resource.CurrentQuantity
		drops, err := s.GatherFrom(w.ID, near.ID)
		if err != nil {
			t.Fatalf("GatherFrom failed: %v", err)
		}
		if len(drops) == 0 {
			t.Error("Expected at least the guaranteed drop")
		}
		if near.Resource.CurrentQuantity != before-1 {
			t.Errorf("Expected quantity %d, got %d", before-1, near.Resource.CurrentQuantity)
		}

		events := s.DrainEvents()
		found := false
		for _, ev := range events {
			if ev.Kind == "gather" && ev.TargetID == near.ID {
				found = true
			}
		}
		if !found {
			t.Error("Expected a gather event")
		}
	})

	t.Run("gather out of reach", func(t *testing.T) {
		_, err := s.GatherFrom(w.ID, far.ID)
		if !errors.Is(err, domain.ErrOutOfRange) {
			t.Errorf("Expected ErrOutOfRange, got %v", err)
		}
	})

	t.Run("gather from a creature", func(t *testing.T) {
		prey, err := s.SpawnPrey("rabbit", domain.Vec3{X: 1}, 1)
		if err != nil {
			t.Fatalf("SpawnPrey failed: %v", err)
		}
		if _, err := s.GatherFrom(w.ID, prey.ID); !errors.Is(err, domain.ErrEntityNotFound) {
			t.Errorf("Expected ErrEntityNotFound, got %v", err)
		}
	})
}

func TestFormPack(t *testing.T) {
	s := newTestSim(t, env.BiomeForest)

	leader, err := s.SpawnPredator("wolf", domain.Vec3{}, 1)
	if err != nil {
		t.Fatalf("SpawnPredator failed: %v", err)
	}
	m1, err := s.SpawnPredator("wolf", domain.Vec3{X: 3}, 1)
	if err != nil {
		t.Fatalf("SpawnPredator failed: %v", err)
	}
	m2, err := s.SpawnPredator("wolf", domain.Vec3{X: -3}, 1)
	if err != nil {
		t.Fatalf("SpawnPredator failed: %v", err)
	}

	if err := s.FormPack("timberline", leader.ID, m1.ID, m2.ID); err != nil {
		t.Fatalf("FormPack failed: %v", err)
	}

	if leader.AI.PackRole != domain.PackRoleLeader || leader.AI.PackID != "timberline" {
		t.Errorf("Unexpected leader pack state: %s/%s", leader.AI.PackID, leader.AI.PackRole)
	}
	for _, m := range []*domain.Entity{m1, m2} {
		if m.AI.PackRole != domain.PackRoleMember || m.AI.PackID != "timberline" {
			t.Errorf("Unexpected member pack state: %s/%s", m.AI.PackID, m.AI.PackRole)
		}
	}

	t.Run("unknown member aborts", func(t *testing.T) {
		err := s.FormPack("ghost-pack", leader.ID, "nobody")
		if !errors.Is(err, domain.ErrEntityNotFound) {
			t.Errorf("Expected ErrEntityNotFound, got %v", err)
		}
	})
}

func TestSnapshot(t *testing.T) {
	s := newTestSim(t, env.BiomeMarsh)
	w, err := s.SpawnPredator("wolf", domain.Vec3{X: 5}, 1)
	if err != nil {
		t.Fatalf("SpawnPredator failed: %v", err)
	}
	if _, err := s.SpawnResource("cattails", domain.Vec3{X: 3}); err != nil {
		t.Fatalf("SpawnResource failed: %v", err)
	}

	snap := s.Snapshot()
	if len(snap.Entities) != s.World.Len() {
		t.Fatalf("Expected %d entities, got %d", s.World.Len(), len(snap.Entities))
	}
	if snap.Biome != "marsh" || snap.Weather != "clear" {
		t.Errorf("Unexpected environment: %s/%s", snap.Biome, snap.Weather)
	}

	var wolfView *api.EntityView
	for i := range snap.Entities {
		if snap.Entities[i].ID == w.ID {
			wolfView = &snap.Entities[i]
		}
	}
	if wolfView == nil {
		t.Fatal("Wolf missing from snapshot")
	}
	if wolfView.Species != "wolf" || wolfView.MaxHealth != 120 {
		t.Errorf("Unexpected wolf view: %+v", wolfView)
	}
	if wolfView.Pos[0] != 5 {
		t.Errorf("Expected X 5, got %f", wolfView.Pos[0])
	}
}
