package engine

import (
	"container/heap"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/sirupsen/logrus"

	"rivermarsh-server/internal/domain"
	"rivermarsh-server/internal/env"
	"rivermarsh-server/internal/systems"
	"rivermarsh-server/pkg/api"
	"rivermarsh-server/pkg/bestiary"
	"rivermarsh-server/pkg/logger"
)

// Пересмотр решения для управляемой игроком сущности. AI для нее
// пропускается, но в очереди она остается: контроллер может отвалиться.
const playerRequeueDelay = 0.5

// Simulation - явный контекст мира. Все состояние тика живет здесь:
// глобальных синглтонов нет, два мира в одном процессе не мешают
// друг другу. Снаружи вызывают Tick с фиксированным dt; внутри тика
// порядок фаз детерминирован, конфликт записей решается в пользу
// первой системы.
type Simulation struct {
	Cfg     Config
	World   *domain.World
	Catalog *bestiary.Catalog
	Factory *bestiary.Factory
	Env     env.State
	Rng     *rand.Rand

	// Now - часы симуляции, секунды с запуска. Единственный источник
	// времени для AI, кулдаунов и респауна.
	Now float64

	queue DecisionQueue
	items map[string]*DecisionItem

	// Кулдауны атак, ключ "entityID/attackName" -> время последнего удара
	cooldowns map[string]float64

	nextWeatherRoll float64

	events []api.GameEvent
	log    *logrus.Entry
}

// NewSimulation собирает мир из конфига. Ошибка каталога фатальна:
// без валидного бестиария симуляция не стартует.
func NewSimulation(cfg Config) (*Simulation, error) {
	catalog, err := bestiary.NewCatalog()
	if err != nil {
		return nil, err
	}

	biome, err := env.SelectBiome(cfg.Biome)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	world := domain.NewWorld()

	tod := env.TimeModifiers(cfg.StartHour, cfg.MoonPhase)
	tod.TimeScale = cfg.TimeScale

	s := &Simulation{
		Cfg:     cfg,
		World:   world,
		Catalog: catalog,
		Factory: bestiary.NewFactory(catalog, world, rng),
		Env: env.State{
			Biome:   biome,
			Weather: env.RollWeather(biome.Type, rng),
			Time:    tod,
		},
		Rng:             rng,
		queue:           make(DecisionQueue, 0),
		items:           make(map[string]*DecisionItem),
		cooldowns:       make(map[string]float64),
		nextWeatherRoll: cfg.WeatherInterval,
	}
	heap.Init(&s.queue)
	s.log = logger.System("engine").WithField("seed", cfg.Seed)
	s.log.WithFields(logrus.Fields{
		"biome":   biome.Type,
		"weather": s.Env.Weather.Current,
		"hour":    cfg.StartHour,
	}).Info("Simulation created")
	return s, nil
}

// SpawnPredator создает хищника и ставит его в очередь решений.
func (s *Simulation) SpawnPredator(speciesID string, pos domain.Vec3, level int) (*domain.Entity, error) {
	e, err := s.Factory.CreatePredator(speciesID, pos, level)
	if err != nil {
		return nil, err
	}
	s.track(e)
	return e, nil
}

// SpawnPrey создает добычу и ставит ее в очередь решений.
func (s *Simulation) SpawnPrey(speciesID string, pos domain.Vec3, level int) (*domain.Entity, error) {
	e, err := s.Factory.CreatePrey(speciesID, pos, level)
	if err != nil {
		return nil, err
	}
	s.track(e)
	return e, nil
}

// SpawnResource создает собираемый ресурс. В очередь решений он не
// попадает: ресурсы тикают отдельной фазой.
func (s *Simulation) SpawnResource(resourceID string, pos domain.Vec3) (*domain.Entity, error) {
	return s.Factory.CreateBiomeResource(resourceID, pos)
}

// track регистрирует существо в очереди переоценки.
func (s *Simulation) track(e *domain.Entity) {
	if !e.IsAICapable() {
		return
	}
	item := &DecisionItem{Value: e, Priority: e.AI.NextDecisionTime}
	heap.Push(&s.queue, item)
	s.items[e.ID] = item
}

// Tick продвигает симуляцию на dt секунд. Фазы идут в фиксированном
// порядке: окружение, таймеры, решения AI, бой, движение, ресурсы,
// уборка погибших. Система, записавшая поле раньше, побеждает.
func (s *Simulation) Tick(dt float64) {
	s.Now += dt

	s.advanceEnvironment(dt)
	s.tickTimers(dt)
	s.runDecisions()
	s.runCombat()
	s.moveCreatures(dt)
	s.tickResources(dt)
	s.sweepDead()
}

// advanceEnvironment сдвигает часы и периодически перебрасывает погоду.
func (s *Simulation) advanceEnvironment(dt float64) {
	s.Env.Time = s.Env.Time.Advance(dt)
	if s.Cfg.WeatherInterval <= 0 || s.Now < s.nextWeatherRoll {
		return
	}
	s.nextWeatherRoll += s.Cfg.WeatherInterval
	prev := s.Env.Weather.Current
	s.Env.Weather = env.RollWeather(s.Env.Biome.Type, s.Rng)
	if s.Env.Weather.Current != prev {
		s.log.WithFields(logrus.Fields{
			"from": prev,
			"to":   s.Env.Weather.Current,
		}).Info("Weather changed")
		s.pushEvent(api.GameEvent{Kind: "weather"})
	}
}

// tickTimers гасит оглушение и восстанавливает выносливость.
// Реген делится на StaminaDrainMod биома: в пустыне дыхание
// восстанавливается медленнее.
func (s *Simulation) tickTimers(dt float64) {
	drain := s.Env.Biome.StaminaDrainMod
	if drain <= 0 {
		drain = 1
	}
	for _, e := range s.World.Combatants() {
		c := e.Combat
		if c.StunRemaining > 0 {
			c.StunRemaining -= dt
			if c.StunRemaining < 0 {
				c.StunRemaining = 0
			}
		}
		if e.IsAlive() {
			c.RestoreStamina(c.StamRegen * dt / drain)
		}
	}
}

// runDecisions снимает с вершины очереди существ, которым пора думать.
// Снятые вне расписания не трогаются: перебора всего мира нет.
func (s *Simulation) runDecisions() {
	for len(s.queue) > 0 && s.queue[0].Priority <= s.Now {
		item := heap.Pop(&s.queue).(*DecisionItem)
		e := item.Value

		// Ленивое удаление: сущность убрана из мира, элемент протух
		if s.items[e.ID] != item || s.World.Get(e.ID) == nil {
			continue
		}

		if e.IsPlayerControlled() || !e.IsAlive() {
			item.Priority = s.Now + playerRequeueDelay
			heap.Push(&s.queue, item)
			continue
		}

		systems.Decide(e, s.World, s.Env, s.Rng, s.Now)
		item.Priority = e.AI.NextDecisionTime
		heap.Push(&s.queue, item)
	}
}

// runCombat исполняет атаки существ в состоянии attack. Решение
// атаковать принял AI; здесь только кулдауны и резолвер.
func (s *Simulation) runCombat() {
	for _, e := range s.World.AICreatures() {
		if e.IsPlayerControlled() || e.AI.CurrentState != domain.AIStateAttack {
			continue
		}
		target := s.World.Get(e.AI.Target)
		if target == nil || !target.IsCombatant() || !target.IsAlive() {
			continue
		}
		s.tryAttack(e, target)
	}
}

// tryAttack бьет лучшей доступной атакой с учетом кулдауна. Промах по
// предусловиям (кулдаун, выносливость) - не ошибка: существо просто
// ждет следующего тика.
func (s *Simulation) tryAttack(attacker, target *domain.Entity) (*systems.AttackOutcome, bool) {
	dist := attacker.Position().DistanceTo(target.Position())
	atk := attacker.Combat.BestAttackInRange(dist)
	if atk == nil {
		return nil, false
	}

	key := attacker.ID + "/" + atk.Name
	if last, ok := s.cooldowns[key]; ok && s.Now-last < atk.Cooldown {
		return nil, false
	}

	out, err := systems.ResolveAttack(attacker, target, atk, s.Env, s.Rng, s.Now)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientStamina) || errors.Is(err, domain.ErrOutOfRange) {
			return nil, false
		}
		s.log.WithError(err).WithField("attacker", attacker.ID).Warn("Attack failed")
		return nil, false
	}

	s.cooldowns[key] = s.Now
	s.pushEvent(api.GameEvent{
		Kind:     "attack",
		EntityID: attacker.ID,
		TargetID: target.ID,
		Value:    out.Damage,
	})
	return &out, true
}

// moveCreatures пересчитывает множитель скорости и интегрирует движение.
func (s *Simulation) moveCreatures(dt float64) {
	for _, e := range s.World.AICreatures() {
		systems.UpdateSpeedMultiplier(e, s.Env)
		systems.Integrate(e, dt)
		systems.SyncAnimation(e, dt)
	}
}

// FormPack объединяет существ в стаю. Первый в списке - вожак,
// остальные - члены; сигналы тревоги расходятся внутри PackID.
func (s *Simulation) FormPack(packID, leaderID string, memberIDs ...string) error {
	leader := s.World.Get(leaderID)
	if leader == nil || !leader.IsAICapable() {
		return fmt.Errorf("pack leader %s: %w", leaderID, domain.ErrEntityNotFound)
	}
	members := make([]*domain.Entity, 0, len(memberIDs))
	for _, id := range memberIDs {
		m := s.World.Get(id)
		if m == nil || !m.IsAICapable() {
			return fmt.Errorf("pack member %s: %w", id, domain.ErrEntityNotFound)
		}
		members = append(members, m)
	}

	leader.AI.PackID = packID
	leader.AI.PackRole = domain.PackRoleLeader
	for _, m := range members {
		m.AI.PackID = packID
		m.AI.PackRole = domain.PackRoleMember
	}
	s.log.WithFields(logrus.Fields{
		"pack":    packID,
		"leader":  leaderID,
		"members": len(members),
	}).Info("Pack formed")
	return nil
}

// tickResources тикает респаун истощенных ресурсов.
func (s *Simulation) tickResources(dt float64) {
	for _, e := range s.World.Resources() {
		systems.TickRespawn(e, dt, s.Rng)
	}
}

// sweepDead убирает погибших из мира в конце тика. До уборки труп
// еще виден системам: урон в том же тике его не воскресит.
func (s *Simulation) sweepDead() {
	for _, e := range s.World.Combatants() {
		if e.IsAlive() {
			continue
		}
		pos := e.Position()
		s.pushEvent(api.GameEvent{
			Kind:     "death",
			EntityID: e.ID,
			Pos:      [3]float64{pos.X, pos.Y, pos.Z},
		})
		s.log.WithFields(logrus.Fields{
			"entity": e.ID,
			"name":   e.Name,
		}).Info("Entity died")
		s.forget(e.ID)
	}
}

// forget удаляет сущность из мира, очереди и таблицы кулдаунов.
func (s *Simulation) forget(id string) {
	s.World.Remove(id)
	delete(s.items, id)
	for key := range s.cooldowns {
		if strings.HasPrefix(key, id+"/") {
			delete(s.cooldowns, key)
		}
	}
}

// pushEvent копит событие тика для рассылки клиентам.
func (s *Simulation) pushEvent(ev api.GameEvent) {
	s.events = append(s.events, ev)
}

// DrainEvents отдает накопленные события и очищает буфер.
func (s *Simulation) DrainEvents() []api.GameEvent {
	evs := s.events
	s.events = nil
	return evs
}
