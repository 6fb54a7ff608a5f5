package engine

import (
	"rivermarsh-server/internal/domain"
	"rivermarsh-server/pkg/api"
)

// Snapshot снимает проекцию мира для рассылки клиентам. Снимок -
// копия: мутировать его после возврата безопасно, в симуляцию это
// не протечет.
func (s *Simulation) Snapshot() *api.WorldSnapshot {
	all := s.World.All()
	views := make([]api.EntityView, 0, len(all))
	for _, e := range all {
		views = append(views, entityView(e))
	}
	return &api.WorldSnapshot{
		Time:     s.Now,
		Hour:     s.Env.Time.Hour,
		Phase:    string(s.Env.Time.Phase),
		Biome:    string(s.Env.Biome.Type),
		Weather:  string(s.Env.Weather.Current),
		Entities: views,
	}
}

func entityView(e *domain.Entity) api.EntityView {
	v := api.EntityView{
		ID:   e.ID,
		Type: string(e.Type),
		Name: e.Name,
	}
	if e.Movement != nil {
		p, vel, r := e.Movement.Position, e.Movement.Velocity, e.Movement.Rotation
		v.Pos = [3]float64{p.X, p.Y, p.Z}
		v.Velocity = [3]float64{vel.X, vel.Y, vel.Z}
		v.Rot = [4]float64{r.X, r.Y, r.Z, r.W}
	}
	if e.Combat != nil {
		v.Health = e.Combat.Health
		v.MaxHealth = e.Combat.MaxHealth
		v.Stamina = e.Combat.Stamina
	}
	if e.AI != nil {
		v.State = string(e.AI.CurrentState)
	}
	if e.Animation != nil {
		v.AnimationID = e.Animation.CurrentAnimation
	}
	if e.Species != nil {
		v.Species = e.Species.ID
		v.PrimaryColor = e.Species.PrimaryColor
		v.Size = string(e.Species.Size)
	}
	if e.Resource != nil {
		v.Quantity = e.Resource.CurrentQuantity
		v.IsRespawning = e.Resource.IsRespawning
	}
	return v
}
