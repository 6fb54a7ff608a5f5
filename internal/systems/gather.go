package systems

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"rivermarsh-server/internal/domain"
	"rivermarsh-server/pkg/logger"
)

// Сбор и респавн ресурсов. Таймер респавна - обычное поле-счетчик,
// который тикает вызывающий; никаких отложенных колбэков.

// Harvest снимает одну единицу с ресурса и разыгрывает дроп.
// Пустой ресурс - ErrResourceDepleted: вызывающий ждет респавна.
func Harvest(resource *domain.Entity, harvesterID string, rng *rand.Rand) ([]domain.DropItem, error) {
	rc := resource.Resource
	if rc == nil {
		return nil, domain.ErrResourceDepleted
	}
	if rc.CurrentQuantity <= 0 || rc.IsRespawning {
		return nil, domain.ErrResourceDepleted
	}

	rc.CurrentQuantity--

	var drops []domain.DropItem
	for _, d := range rc.DropItems {
		if rng.Float64() < d.Chance {
			drops = append(drops, d)
		}
	}

	if rc.CurrentQuantity == 0 {
		rc.IsRespawning = true
		rc.RespawnTimer = rc.RespawnTime
		logger.System("gather").WithFields(logrus.Fields{
			"resource":  resource.ID,
			"harvester": harvesterID,
		}).Debug("Resource depleted, respawn started")
	}

	return drops, nil
}

// TickRespawn продвигает таймер респавна на dt. По истечении количество
// заново случайно в [Min, Max] - не обязательно максимум.
func TickRespawn(resource *domain.Entity, dt float64, rng *rand.Rand) {
	rc := resource.Resource
	if rc == nil || !rc.IsRespawning {
		return
	}

	rc.RespawnTimer -= dt
	if rc.RespawnTimer > 0 {
		return
	}

	quantity := rc.MinQuantity
	if rc.MaxQuantity > rc.MinQuantity {
		quantity += rng.Intn(rc.MaxQuantity - rc.MinQuantity + 1)
	}
	rc.CurrentQuantity = quantity
	rc.IsRespawning = false
	rc.RespawnTimer = 0

	logger.System("gather").WithFields(logrus.Fields{
		"resource": resource.ID,
		"quantity": quantity,
	}).Debug("Resource respawned")
}

// BeginHarvest регистрирует сборщика у ресурса (для анимаций и
// конкуренции за узел). Повторная регистрация - no-op.
func BeginHarvest(resource *domain.Entity, harvesterID string) {
	rc := resource.Resource
	if rc == nil {
		return
	}
	for _, id := range rc.Harvesters {
		if id == harvesterID {
			return
		}
	}
	rc.Harvesters = append(rc.Harvesters, harvesterID)
}

// EndHarvest снимает регистрацию сборщика.
func EndHarvest(resource *domain.Entity, harvesterID string) {
	rc := resource.Resource
	if rc == nil {
		return
	}
	for i, id := range rc.Harvesters {
		if id == harvesterID {
			rc.Harvesters = append(rc.Harvesters[:i], rc.Harvesters[i+1:]...)
			return
		}
	}
}
