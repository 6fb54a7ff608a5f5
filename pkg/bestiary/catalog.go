package bestiary

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"rivermarsh-server/internal/domain"
	"rivermarsh-server/pkg/logger"
)

// Species - вид после нормализации: авторский шаблон плюс полные
// боевые записи атак. Выдается каталогом только на чтение.
type Species struct {
	ID       string
	Template SpeciesTemplate
	Attacks  []domain.Attack
}

// Catalog - реестр видов и ресурсов. Строится один раз при старте;
// ошибка в авторских данных валит загрузку, а не игровую сессию.
type Catalog struct {
	species   map[string]*Species
	resources map[string]ResourceTemplate
}

// NewCatalog собирает каталог из встроенных таблиц, нормализуя
// атаки каждого вида. Любая невыводимая атака - ошибка загрузки.
func NewCatalog() (*Catalog, error) {
	c := &Catalog{
		species:   make(map[string]*Species, len(predatorTemplates)+len(preyTemplates)),
		resources: make(map[string]ResourceTemplate, len(resourceTemplates)),
	}

	for _, table := range []map[string]SpeciesTemplate{predatorTemplates, preyTemplates} {
		for id, tpl := range table {
			sp, err := normalizeSpecies(id, tpl)
			if err != nil {
				return nil, err
			}
			c.species[id] = sp
		}
	}

	for id, tpl := range resourceTemplates {
		c.resources[id] = tpl
	}

	logger.System("bestiary").WithFields(logrus.Fields{
		"species":   len(c.species),
		"resources": len(c.resources),
	}).Info("Catalog loaded")

	return c, nil
}

func normalizeSpecies(id string, tpl SpeciesTemplate) (*Species, error) {
	attacks := make([]domain.Attack, 0, len(tpl.Attacks))
	for _, spec := range tpl.Attacks {
		atk, err := NormalizeAttack(spec)
		if err != nil {
			return nil, fmt.Errorf("species %q: %w", id, err)
		}
		attacks = append(attacks, atk)
	}
	return &Species{ID: id, Template: tpl, Attacks: attacks}, nil
}

// AddSpecies нормализует и регистрирует внешний вид (манифест).
// Переопределение встроенного вида разрешено: манифест правит баланс.
func (c *Catalog) AddSpecies(id string, tpl SpeciesTemplate) error {
	if id == "" {
		return fmt.Errorf("species with empty id")
	}
	if tpl.BaseHealth <= 0 {
		return fmt.Errorf("species %q: base health must be positive", id)
	}
	sp, err := normalizeSpecies(id, tpl)
	if err != nil {
		return err
	}
	c.species[id] = sp
	return nil
}

// AddResource регистрирует внешний шаблон ресурса (манифест).
func (c *Catalog) AddResource(id string, tpl ResourceTemplate) error {
	if id == "" {
		return fmt.Errorf("resource with empty id")
	}
	if tpl.MinQuantity < 0 || tpl.MaxQuantity < tpl.MinQuantity {
		return fmt.Errorf("resource %q: quantity range [%d,%d] invalid", id, tpl.MinQuantity, tpl.MaxQuantity)
	}
	if tpl.RespawnTime <= 0 {
		return fmt.Errorf("resource %q: respawn time must be positive", id)
	}
	c.resources[id] = tpl
	return nil
}

// Species возвращает вид по ID каталога.
func (c *Catalog) Species(id string) (*Species, error) {
	sp, ok := c.species[id]
	if !ok {
		return nil, fmt.Errorf("species %q: %w", id, domain.ErrSpeciesNotFound)
	}
	return sp, nil
}

// Resource возвращает шаблон ресурса по ID каталога.
func (c *Catalog) Resource(id string) (ResourceTemplate, error) {
	tpl, ok := c.resources[id]
	if !ok {
		return ResourceTemplate{}, fmt.Errorf("resource %q: %w", id, domain.ErrSpeciesNotFound)
	}
	return tpl, nil
}

// SpeciesIDs - отсортированный список ID видов.
func (c *Catalog) SpeciesIDs() []string {
	ids := make([]string, 0, len(c.species))
	for id := range c.species {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ResourceIDs - отсортированный список ID ресурсов.
func (c *Catalog) ResourceIDs() []string {
	ids := make([]string, 0, len(c.resources))
	for id := range c.resources {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
