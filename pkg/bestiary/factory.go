package bestiary

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"rivermarsh-server/internal/domain"
	"rivermarsh-server/pkg/logger"
	"rivermarsh-server/pkg/utils"
)

// preyAggression - добыча не охотится. Даже виды с атаками бьют
// только в обороне, поэтому агрессия принудительно занижена.
const preyAggression = 0.1

// levelDamageStep - прирост урона за уровень (10%).
const levelDamageStep = 0.1

// Factory создает сущности из каталога и кладет их в мир.
// Все случайное идет через внедренный генератор: один сид -
// один и тот же мир.
type Factory struct {
	catalog *Catalog
	world   *domain.World
	rng     *rand.Rand
	log     *logrus.Entry
}

// NewFactory собирает фабрику. rng обязателен: фабрика не трогает
// глобальный генератор.
func NewFactory(catalog *Catalog, world *domain.World, rng *rand.Rand) *Factory {
	return &Factory{
		catalog: catalog,
		world:   world,
		rng:     rng,
		log:     logger.System("factory"),
	}
}

// CreatePredator создает хищника указанного вида и уровня.
func (f *Factory) CreatePredator(speciesID string, pos domain.Vec3, level int) (*domain.Entity, error) {
	return f.createCreature(speciesID, domain.CategoryPredator, pos, level)
}

// CreatePrey создает добычу указанного вида и уровня.
func (f *Factory) CreatePrey(speciesID string, pos domain.Vec3, level int) (*domain.Entity, error) {
	return f.createCreature(speciesID, domain.CategoryPrey, pos, level)
}

func (f *Factory) createCreature(speciesID string, category domain.SpeciesCategory, pos domain.Vec3, level int) (*domain.Entity, error) {
	sp, err := f.catalog.Species(speciesID)
	if err != nil {
		return nil, err
	}
	if sp.Template.Category != category {
		return nil, fmt.Errorf("species %q is %s, not %s: %w",
			speciesID, sp.Template.Category, category, domain.ErrSpeciesNotFound)
	}
	if level < 1 {
		level = 1
	}

	tpl := sp.Template

	aggression := tpl.AggressionLevel
	entityType := domain.EntityTypePredator
	if category == domain.CategoryPrey {
		aggression = preyAggression
		entityType = domain.EntityTypePrey
	}

	e := &domain.Entity{
		ID:   utils.GenerateDeterministicID(f.rng, speciesID+"-"),
		Type: entityType,
		Name: tpl.Name,

		Species:   newSpeciesComponent(speciesID, tpl),
		Combat:    newCombatComponent(tpl.BaseHealth, scaleAttacks(sp.Attacks, level)),
		Equipment: newEquipmentComponent(),
		Movement:  newMovementComponent(tpl, pos),
		AI:        newAIComponent(normalizeTemperament(tpl.Temperament), aggression, tpl.AwarenessRadius, pos, tpl.FleeThreshold),
		Animation: newAnimationComponent(speciesID),
	}

	if err := f.world.Add(e); err != nil {
		return nil, err
	}

	f.log.WithFields(logrus.Fields{
		"id":      e.ID,
		"species": speciesID,
		"level":   level,
		"pos":     pos,
	}).Debug("Creature created")

	return e, nil
}

// scaleAttacks копирует атаки каталога с масштабом урона по уровню.
// Каталог остается нетронутым.
func scaleAttacks(attacks []domain.Attack, level int) []domain.Attack {
	scaled := make([]domain.Attack, len(attacks))
	copy(scaled, attacks)
	mult := 1 + float64(level-1)*levelDamageStep
	for i := range scaled {
		scaled[i].Damage *= mult
	}
	return scaled
}

// CreateBiomeResource создает собираемый ресурс. Стартовое количество
// случайно в пределах [Min, Max] шаблона.
func (f *Factory) CreateBiomeResource(resourceID string, pos domain.Vec3) (*domain.Entity, error) {
	tpl, err := f.catalog.Resource(resourceID)
	if err != nil {
		return nil, err
	}

	quantity := tpl.MinQuantity
	if tpl.MaxQuantity > tpl.MinQuantity {
		quantity += f.rng.Intn(tpl.MaxQuantity - tpl.MinQuantity + 1)
	}

	e := &domain.Entity{
		ID:   utils.GenerateDeterministicID(f.rng, resourceID+"-"),
		Type: domain.EntityTypeResource,
		Name: tpl.Name,

		Resource: &domain.BiomeResourceComponent{
			Type:        resourceID,
			Name:        tpl.Name,
			VisualModel: tpl.VisualModel,
			Biomes:      append([]string(nil), tpl.Biomes...),

			GatherSkillRequired: tpl.GatherSkillRequired,
			GatherTime:          tpl.GatherTime,

			MinQuantity:     tpl.MinQuantity,
			MaxQuantity:     tpl.MaxQuantity,
			CurrentQuantity: quantity,

			RespawnTime: tpl.RespawnTime,

			DropItems: append([]domain.DropItem(nil), tpl.DropItems...),
		},

		Movement: &domain.MovementComponent{
			Position:        pos,
			Rotation:        domain.IdentityQuat(),
			CurrentMode:     domain.LocomotionWalk,
			IsGrounded:      true,
			SpeedMultiplier: 1.0,
			Mass:            1,
			Drag:            defaultDrag,
			Gravity:         defaultGravity,
		},
	}

	if err := f.world.Add(e); err != nil {
		return nil, err
	}

	f.log.WithFields(logrus.Fields{
		"id":       e.ID,
		"resource": resourceID,
		"quantity": quantity,
	}).Debug("Resource created")

	return e, nil
}
