package api

import (
	"encoding/json"
	"fmt"
	"math"
)

// Валидация клиентских команд до того, как они коснутся симуляции.
// Шлюз отвергает мусор на границе, ядро доверяет входу.

var validActions = map[string]bool{
	ActionInit:    true,
	ActionSpawn:   true,
	ActionIntent:  true,
	ActionEquip:   true,
	ActionUnequip: true,
	ActionGather:  true,
}

// ParseCommand разбирает и валидирует конверт команды.
func ParseCommand(data []byte) (*ClientCommand, error) {
	var cmd ClientCommand
	if err := json.Unmarshal(data, &cmd); err != nil {
		return nil, fmt.Errorf("malformed command: %w", err)
	}
	if !validActions[cmd.Action] {
		return nil, fmt.Errorf("unknown action %q", cmd.Action)
	}
	return &cmd, nil
}

// DecodeIntent разбирает полезную нагрузку INTENT и нормализует
// вектор движения: клиент обязан слать направление, не позицию.
func DecodeIntent(payload json.RawMessage) (*Intent, error) {
	var in Intent
	if err := json.Unmarshal(payload, &in); err != nil {
		return nil, fmt.Errorf("malformed intent: %w", err)
	}
	for _, c := range in.Move {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, fmt.Errorf("intent move vector is not finite")
		}
	}
	// Длина больше единицы - читерский ввод, зажимаем
	l := math.Sqrt(in.Move[0]*in.Move[0] + in.Move[1]*in.Move[1] + in.Move[2]*in.Move[2])
	if l > 1 {
		in.Move[0] /= l
		in.Move[1] /= l
		in.Move[2] /= l
	}
	return &in, nil
}

// DecodeSpawn разбирает полезную нагрузку SPAWN.
func DecodeSpawn(payload json.RawMessage) (*SpawnPayload, error) {
	var sp SpawnPayload
	if err := json.Unmarshal(payload, &sp); err != nil {
		return nil, fmt.Errorf("malformed spawn: %w", err)
	}
	if sp.Species == "" {
		return nil, fmt.Errorf("spawn requires a species")
	}
	if sp.Level < 0 {
		return nil, fmt.Errorf("spawn level must not be negative")
	}
	return &sp, nil
}

// DecodeEquip разбирает полезную нагрузку EQUIP/UNEQUIP.
func DecodeEquip(payload json.RawMessage) (*EquipPayload, error) {
	var eq EquipPayload
	if err := json.Unmarshal(payload, &eq); err != nil {
		return nil, fmt.Errorf("malformed equip: %w", err)
	}
	if eq.Slot == "" {
		return nil, fmt.Errorf("equip requires a slot")
	}
	return &eq, nil
}

// DecodeGather разбирает полезную нагрузку GATHER.
func DecodeGather(payload json.RawMessage) (*GatherPayload, error) {
	var g GatherPayload
	if err := json.Unmarshal(payload, &g); err != nil {
		return nil, fmt.Errorf("malformed gather: %w", err)
	}
	if g.ResourceID == "" {
		return nil, fmt.Errorf("gather requires a resource id")
	}
	return &g, nil
}
