package bestiary

import (
	"fmt"
	"strings"

	"rivermarsh-server/internal/domain"
)

// UnknownAttackError - имя атаки не подошло ни под одно правило вывода.
// Это преднамеренная строгость: опечатки в авторских данных должны
// всплывать при загрузке, а не во время игры.
type UnknownAttackError struct {
	Name string
}

func (e *UnknownAttackError) Error() string {
	return fmt.Sprintf("unknown attack category for attack %q: add an explicit category or extend the inference rules", e.Name)
}

// AttackSpec - авторская запись атаки из данных вида. Категория и
// поля отброса/стана/анимации опциональны: нормализатор их доведет.
type AttackSpec struct {
	Name        string  `json:"name"`
	Category    string  `json:"category,omitempty"`
	Damage      float64 `json:"damage"`
	Range       float64 `json:"range"`
	StaminaCost float64 `json:"staminaCost"`
	Cooldown    float64 `json:"cooldown"`

	Knockback   *float64 `json:"knockback,omitempty"`
	StunDur     *float64 `json:"stunDuration,omitempty"`
	AnimationID *int     `json:"animationId,omitempty"`
	Elemental   string   `json:"elemental,omitempty"`
}

// Дефолты по категориям. Числа согласованы с библиотекой анимаций:
// 4 = Attack, 17 = Skill_01, 18 = Skill_02.
var defaultKnockback = map[domain.AttackCategory]float64{
	domain.AttackBite:      1,
	domain.AttackClawSwipe: 0.5,
	domain.AttackTailWhip:  2,
	domain.AttackHeadbutt:  3,
	domain.AttackPounce:    2.5,
	domain.AttackRollCrush: 4,
}

var defaultStun = map[domain.AttackCategory]float64{
	domain.AttackBite:      0,
	domain.AttackClawSwipe: 0,
	domain.AttackTailWhip:  0,
	domain.AttackHeadbutt:  1.5,
	domain.AttackPounce:    0.5,
	domain.AttackRollCrush: 1.0,
}

var defaultAnimation = map[domain.AttackCategory]int{
	domain.AttackBite:      4,
	domain.AttackClawSwipe: 4,
	domain.AttackTailWhip:  17,
	domain.AttackHeadbutt:  17,
	domain.AttackPounce:    18,
	domain.AttackRollCrush: 17,
}

// NormalizeAttack доводит авторскую запись до полной боевой записи.
// Чистая функция: один вход - всегда один и тот же выход.
func NormalizeAttack(spec AttackSpec) (domain.Attack, error) {
	var category domain.AttackCategory
	if spec.Category != "" {
		parsed, ok := domain.ParseAttackCategory(spec.Category)
		if !ok {
			return domain.Attack{}, &UnknownAttackError{Name: spec.Name}
		}
		category = parsed
	} else {
		inferred, err := inferAttackCategory(spec.Name)
		if err != nil {
			return domain.Attack{}, err
		}
		category = inferred
	}

	atk := domain.Attack{
		Name:        spec.Name,
		Category:    category,
		Damage:      spec.Damage,
		Range:       spec.Range,
		StaminaCost: spec.StaminaCost,
		Cooldown:    spec.Cooldown,
		Knockback:   defaultKnockback[category],
		StunDur:     defaultStun[category],
		AnimationID: defaultAnimation[category],
		Elemental:   spec.Elemental,
	}
	if spec.Knockback != nil {
		atk.Knockback = *spec.Knockback
	}
	if spec.StunDur != nil {
		atk.StunDur = *spec.StunDur
	}
	if spec.AnimationID != nil {
		atk.AnimationID = *spec.AnimationID
	}
	return atk, nil
}

// inferAttackCategory выводит категорию из имени по упорядоченным
// правилам подстрок. Порядок важен: первое совпадение побеждает.
func inferAttackCategory(name string) (domain.AttackCategory, error) {
	n := strings.ToLower(name)

	switch {
	case strings.Contains(n, "bite"):
		return domain.AttackBite, nil
	case strings.Contains(n, "claw"), strings.Contains(n, "swipe"), strings.Contains(n, "scratch"):
		return domain.AttackClawSwipe, nil
	case strings.Contains(n, "tail"), strings.Contains(n, "whip"), strings.Contains(n, "slap"):
		return domain.AttackTailWhip, nil
	case strings.Contains(n, "head"), strings.Contains(n, "butt"):
		return domain.AttackHeadbutt, nil
	case strings.Contains(n, "pounce"), strings.Contains(n, "lunge"), strings.Contains(n, "leap"):
		return domain.AttackPounce, nil
	case strings.Contains(n, "roll"), strings.Contains(n, "crush"):
		return domain.AttackRollCrush, nil

	// Защитные атаки добычи
	case strings.Contains(n, "kick"), strings.Contains(n, "stomp"):
		return domain.AttackBite, nil
	case strings.Contains(n, "antler"), strings.Contains(n, "horn"), strings.Contains(n, "gore"):
		return domain.AttackHeadbutt, nil
	case strings.Contains(n, "charge"), strings.Contains(n, "ram"):
		return domain.AttackPounce, nil
	}

	return "", &UnknownAttackError{Name: name}
}
