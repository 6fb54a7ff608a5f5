package engine

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"rivermarsh-server/internal/domain"
	"rivermarsh-server/internal/network"
	"rivermarsh-server/pkg/api"
	"rivermarsh-server/pkg/logger"
)

// Частота тиков симуляции. Реальное время: клетки думают каждые
// полсекунды, десяти кадров физики в секунду им хватает.
const (
	tickRate = 10
	tickDt   = 1.0 / tickRate
)

// Радиус стартового расселения вокруг центра мира, метры.
const seedScatter = 40.0

// Численность стартовой популяции на подходящий вид.
const (
	seedPredators = 1
	seedPrey      = 2
	seedResources = 3
)

type sessionCommand struct {
	SessionID string
	Cmd       *api.ClientCommand
}

// Service - слой между шлюзом и симуляцией. Владеет циклом тиков;
// все команды сессий сериализуются через канал в горутину цикла,
// поэтому Simulation не нуждается в своих замках.
type Service struct {
	Sim *Simulation
	Hub *network.Broadcaster

	commands    chan sessionCommand
	disconnects chan string
	stop        chan struct{}

	// sessionID -> entityID. Читается только горутиной цикла.
	sessions map[string]string

	log *logrus.Entry
}

// NewService собирает симуляцию по конфигу и заселяет стартовый мир.
func NewService(cfg Config) (*Service, error) {
	sim, err := NewSimulation(cfg)
	if err != nil {
		return nil, err
	}

	s := &Service{
		Sim:         sim,
		Hub:         network.NewBroadcaster(),
		commands:    make(chan sessionCommand, 100),
		disconnects: make(chan string, 16),
		stop:        make(chan struct{}),
		sessions:    make(map[string]string),
		log:         logger.System("service"),
	}
	s.seedWorld()
	return s, nil
}

// seedWorld расселяет виды, родные для биома, и раскладывает его ресурсы.
func (s *Service) seedWorld() {
	sim := s.Sim
	biome := string(sim.Env.Biome.Type)

	for _, id := range sim.Catalog.SpeciesIDs() {
		sp, err := sim.Catalog.Species(id)
		if err != nil {
			continue
		}
		if !contains(sp.Template.NativeBiomes, biome) {
			continue
		}

		count := seedPrey
		spawn := sim.SpawnPrey
		if sp.Template.Category == domain.CategoryPredator {
			count = seedPredators
			spawn = sim.SpawnPredator
		}
		for i := 0; i < count; i++ {
			if _, err := spawn(id, s.scatterPos(), 1); err != nil {
				s.log.WithError(err).WithField("species", id).Warn("Seed spawn failed")
			}
		}
	}

	for _, id := range sim.Env.Biome.Resources {
		for i := 0; i < seedResources; i++ {
			if _, err := sim.SpawnResource(id, s.scatterPos()); err != nil {
				// В списках биомов есть флора без шаблона сбора, пропускаем
				if errors.Is(err, domain.ErrSpeciesNotFound) {
					break
				}
				s.log.WithError(err).WithField("resource", id).Warn("Seed resource failed")
			}
		}
	}

	s.log.WithField("entities", sim.World.Len()).Info("World seeded")
}

func (s *Service) scatterPos() domain.Vec3 {
	return domain.Vec3{
		X: (s.Sim.Rng.Float64()*2 - 1) * seedScatter,
		Z: (s.Sim.Rng.Float64()*2 - 1) * seedScatter,
	}
}

func contains(xs []string, x string) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

// Start запускает цикл тиков в фоне.
func (s *Service) Start() {
	go s.runLoop()
}

// Stop останавливает цикл тиков.
func (s *Service) Stop() {
	close(s.stop)
}

// ProcessCommand принимает команду от шлюза. Неблокирующая: при
// переполненном канале команда теряется, клиент пришлет следующую.
func (s *Service) ProcessCommand(sessionID string, cmd *api.ClientCommand) {
	select {
	case s.commands <- sessionCommand{SessionID: sessionID, Cmd: cmd}:
	default:
		s.log.WithField("session", sessionID).Warn("Command channel full, dropping")
	}
}

// Disconnect сообщает циклу, что сессия ушла: ее существо вернется AI.
func (s *Service) Disconnect(sessionID string) {
	select {
	case s.disconnects <- sessionID:
	default:
	}
}

func (s *Service) runLoop() {
	s.log.Info("Game loop started")
	ticker := time.NewTicker(time.Second / tickRate)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			s.log.Info("Game loop stopped")
			return
		case <-ticker.C:
			s.drainCommands()
			s.Sim.Tick(tickDt)
			s.publish()
		}
	}
}

// drainCommands исполняет все команды, накопившиеся между тиками.
func (s *Service) drainCommands() {
	for {
		select {
		case sid := <-s.disconnects:
			if entityID, ok := s.sessions[sid]; ok {
				s.Sim.Release(entityID)
				delete(s.sessions, sid)
			}
		case sc := <-s.commands:
			s.execute(sc)
		default:
			return
		}
	}
}

func (s *Service) execute(sc sessionCommand) {
	sid := sc.SessionID
	switch sc.Cmd.Action {
	case api.ActionInit:
		s.Hub.SendTo(sid, api.ServerMessage{Type: api.MessageInit, Snapshot: s.Sim.Snapshot()})

	case api.ActionSpawn:
		s.executeSpawn(sid, sc.Cmd)

	case api.ActionIntent:
		in, err := api.DecodeIntent(sc.Cmd.Payload)
		if err != nil {
			s.sendError(sid, err)
			return
		}
		if entityID, ok := s.sessions[sid]; ok {
			if err := s.Sim.ApplyIntent(entityID, in); err != nil {
				s.sendError(sid, err)
			}
		}

	case api.ActionEquip:
		eq, err := api.DecodeEquip(sc.Cmd.Payload)
		if err != nil || eq.Item == nil {
			s.sendError(sid, errors.New("equip requires an item"))
			return
		}
		if entityID, ok := s.sessions[sid]; ok {
			if err := s.Sim.EquipItem(entityID, itemFromView(eq.Item)); err != nil {
				s.sendError(sid, err)
			}
		}

	case api.ActionUnequip:
		eq, err := api.DecodeEquip(sc.Cmd.Payload)
		if err != nil {
			s.sendError(sid, err)
			return
		}
		if entityID, ok := s.sessions[sid]; ok {
			if _, err := s.Sim.UnequipItem(entityID, domain.EquipSlot(eq.Slot)); err != nil {
				s.sendError(sid, err)
			}
		}

	case api.ActionGather:
		g, err := api.DecodeGather(sc.Cmd.Payload)
		if err != nil {
			s.sendError(sid, err)
			return
		}
		if entityID, ok := s.sessions[sid]; ok {
			if _, err := s.Sim.GatherFrom(entityID, g.ResourceID); err != nil {
				s.sendError(sid, err)
			}
		}
	}
}

// executeSpawn создает существо запрошенного вида и отдает его сессии.
func (s *Service) executeSpawn(sid string, cmd *api.ClientCommand) {
	sp, err := api.DecodeSpawn(cmd.Payload)
	if err != nil {
		s.sendError(sid, err)
		return
	}
	species, err := s.Sim.Catalog.Species(sp.Species)
	if err != nil {
		s.sendError(sid, err)
		return
	}

	pos := domain.Vec3{X: sp.Pos[0], Y: sp.Pos[1], Z: sp.Pos[2]}
	level := sp.Level
	if level < 1 {
		level = 1
	}

	spawn := s.Sim.SpawnPrey
	if species.Template.Category == domain.CategoryPredator {
		spawn = s.Sim.SpawnPredator
	}
	e, err := spawn(sp.Species, pos, level)
	if err != nil {
		s.sendError(sid, err)
		return
	}
	if err := s.Sim.Possess(e.ID, sid); err != nil {
		s.sendError(sid, err)
		return
	}
	s.sessions[sid] = e.ID

	s.log.WithFields(logrus.Fields{
		"session": sid,
		"entity":  e.ID,
		"species": sp.Species,
	}).Info("Player spawned")
	s.Hub.SendTo(sid, api.ServerMessage{Type: api.MessageInit, Snapshot: s.Sim.Snapshot()})
}

// publish рассылает события тика и свежий снимок мира.
func (s *Service) publish() {
	events := s.Sim.DrainEvents()
	if s.Hub.SubscriberCount() == 0 {
		return
	}
	for _, ev := range events {
		e := ev
		s.Hub.Broadcast(api.ServerMessage{Type: api.MessageEvent, Event: &e})
	}
	s.Hub.Broadcast(api.ServerMessage{Type: api.MessageSnapshot, Snapshot: s.Sim.Snapshot()})
}

func (s *Service) sendError(sid string, err error) {
	s.Hub.SendTo(sid, api.ServerMessage{Type: api.MessageError, Error: err.Error()})
}

func itemFromView(v *api.EquipmentView) *domain.EquipmentItem {
	return &domain.EquipmentItem{
		ID:     v.ID,
		Name:   v.Name,
		Slot:   domain.EquipSlot(v.Slot),
		Rarity: v.Rarity,

		HealthBonus:          v.HealthBonus,
		StaminaBonus:         v.StaminaBonus,
		DamageBonus:          v.DamageBonus,
		ArmorBonus:           v.ArmorBonus,
		SpeedBonus:           v.SpeedBonus,
		StaminaCostReduction: v.StaminaCostReduction,
	}
}
