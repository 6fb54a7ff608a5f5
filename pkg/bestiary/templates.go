package bestiary

import (
	"rivermarsh-server/internal/domain"
)

// SpeciesTemplate - авторское описание вида. Шаблоны неизменяемы после
// загрузки каталога: фабрика копирует их в компоненты сущностей.
type SpeciesTemplate struct {
	Name         string                 `json:"name"`
	Category     domain.SpeciesCategory `json:"category"`
	Size         domain.SizeClass       `json:"size"`
	PrimaryColor string                 `json:"primaryColor"`
	Markings     []string               `json:"markings,omitempty"`
	NativeBiomes []string               `json:"nativeBiomes"`

	BaseHealth float64      `json:"baseHealth"`
	Mass       float64      `json:"mass"` // кг
	Attacks    []AttackSpec `json:"attacks,omitempty"`

	WalkSpeed  float64 `json:"walkSpeed"`
	RunSpeed   float64 `json:"runSpeed"`
	SwimSpeed  float64 `json:"swimSpeed"`
	ClimbSpeed float64 `json:"climbSpeed"`
	JumpHeight float64 `json:"jumpHeight"`

	// Авторская строка темперамента, нормализуется в один из
	// шести архетипов Personality при создании существа.
	Temperament string `json:"temperament"`

	// Радиус обнаружения вида. 0 - берется из архетипа Personality.
	AwarenessRadius float64 `json:"awarenessRadius"`

	// Только для хищников: добыче агрессия принудительно занижается.
	AggressionLevel float64 `json:"aggressionLevel,omitempty"`

	// Переопределение порога бегства (иначе берется из архетипа).
	FleeThreshold *float64 `json:"fleeThreshold,omitempty"`

	DropItems []domain.DropItem `json:"dropItems,omitempty"`
}

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

// predatorTemplates - таблица видов-хищников. Числа авторские,
// баланс правится здесь, а не в коде систем.
var predatorTemplates = map[string]SpeciesTemplate{
	"otter": {
		Name:         "River Otter",
		Category:     domain.CategoryPredator,
		Size:         domain.SizeMedium,
		PrimaryColor: "#5a4a3a",
		Markings:     []string{"white_chest", "white_throat"},
		NativeBiomes: []string{"marsh", "forest"},
		BaseHealth:   100,
		Mass:         8,
		Attacks: []AttackSpec{
			{Name: "Bite", Category: "bite", Damage: 15, StaminaCost: 10, Cooldown: 1.0, Range: 1.5, Knockback: fptr(1), StunDur: fptr(0), AnimationID: iptr(4)},
			{Name: "Tail Slap", Category: "tail_whip", Damage: 10, StaminaCost: 8, Cooldown: 0.8, Range: 2.0, Knockback: fptr(2), StunDur: fptr(0), AnimationID: iptr(17)},
			{Name: "Pounce", Category: "pounce", Damage: 20, StaminaCost: 20, Cooldown: 3.0, Range: 3.0, Knockback: fptr(3), StunDur: fptr(0.5), AnimationID: iptr(18)},
		},
		WalkSpeed: 2.5, RunSpeed: 6.0, SwimSpeed: 8.0, ClimbSpeed: 1.0, JumpHeight: 1.2,
		Temperament: "playful", AwarenessRadius: 15, AggressionLevel: 0.6,
		DropItems: []domain.DropItem{
			{Item: "otter_fur", Quantity: 1, Chance: 1.0},
			{Item: "fish", Quantity: 1, Chance: 0.5},
		},
	},
	"fox": {
		Name:         "Red Fox",
		Category:     domain.CategoryPredator,
		Size:         domain.SizeSmall,
		PrimaryColor: "#d4664a",
		Markings:     []string{"white_chest", "black_legs", "white_tail_tip"},
		NativeBiomes: []string{"forest", "scrubland"},
		BaseHealth:   80,
		Mass:         6,
		Attacks: []AttackSpec{
			{Name: "Bite", Damage: 12, StaminaCost: 8, Cooldown: 0.9, Range: 1.2},
			{Name: "Pounce", Damage: 18, StaminaCost: 15, Cooldown: 2.5, Range: 3.5},
		},
		WalkSpeed: 3.0, RunSpeed: 8.0, SwimSpeed: 3.0, ClimbSpeed: 0.5, JumpHeight: 1.5,
		Temperament: "cunning", AwarenessRadius: 18, AggressionLevel: 0.5,
		DropItems: []domain.DropItem{
			{Item: "fox_pelt", Quantity: 1, Chance: 1.0},
		},
	},
	"badger": {
		Name:         "European Badger",
		Category:     domain.CategoryPredator,
		Size:         domain.SizeMedium,
		PrimaryColor: "#4a4a4a",
		Markings:     []string{"white_face_stripes", "black_stripes"},
		NativeBiomes: []string{"forest", "scrubland"},
		BaseHealth:   150,
		Mass:         12,
		Attacks: []AttackSpec{
			{Name: "Bite", Damage: 18, StaminaCost: 12, Cooldown: 1.2, Range: 1.3},
			{Name: "Claw Swipe", Damage: 15, StaminaCost: 10, Cooldown: 1.0, Range: 1.8},
		},
		WalkSpeed: 1.8, RunSpeed: 4.0, SwimSpeed: 2.0, ClimbSpeed: 0.3, JumpHeight: 0.8,
		Temperament: "aggressive", AwarenessRadius: 12, AggressionLevel: 0.8,
		DropItems: []domain.DropItem{
			{Item: "badger_hide", Quantity: 1, Chance: 1.0},
		},
	},
	"wolf": {
		Name:         "Gray Wolf",
		Category:     domain.CategoryPredator,
		Size:         domain.SizeLarge,
		PrimaryColor: "#6a6a5a",
		Markings:     []string{"darker_back", "lighter_belly"},
		NativeBiomes: []string{"forest", "tundra", "mountain"},
		BaseHealth:   120,
		Mass:         35,
		Attacks: []AttackSpec{
			{Name: "Bite", Damage: 25, StaminaCost: 15, Cooldown: 1.5, Range: 1.8},
			{Name: "Lunge", Damage: 30, StaminaCost: 25, Cooldown: 3.0, Range: 4.0},
		},
		WalkSpeed: 2.8, RunSpeed: 10.0, SwimSpeed: 4.0, ClimbSpeed: 0, JumpHeight: 1.5,
		Temperament: "pack_hunter", AwarenessRadius: 25, AggressionLevel: 0.7,
		DropItems: []domain.DropItem{
			{Item: "wolf_pelt", Quantity: 1, Chance: 1.0},
			{Item: "wolf_fang", Quantity: 1, Chance: 0.4},
		},
	},
	"raccoon": {
		Name:         "Raccoon",
		Category:     domain.CategoryPredator,
		Size:         domain.SizeSmall,
		PrimaryColor: "#7a7a6a",
		Markings:     []string{"black_eye_mask", "ringed_tail"},
		NativeBiomes: []string{"forest", "marsh"},
		BaseHealth:   70,
		Mass:         5,
		Attacks: []AttackSpec{
			{Name: "Scratch", Damage: 10, StaminaCost: 6, Cooldown: 0.7, Range: 1.0},
			{Name: "Bite", Damage: 12, StaminaCost: 8, Cooldown: 1.0, Range: 1.2},
		},
		WalkSpeed: 2.2, RunSpeed: 5.5, SwimSpeed: 3.5, ClimbSpeed: 3.0, JumpHeight: 1.3,
		Temperament: "curious", AwarenessRadius: 14, AggressionLevel: 0.4,
		DropItems: []domain.DropItem{
			{Item: "raccoon_fur", Quantity: 1, Chance: 1.0},
		},
	},
	"pangolin": {
		Name:         "Pangolin",
		Category:     domain.CategoryPredator,
		Size:         domain.SizeMedium,
		PrimaryColor: "#8a7a5a",
		Markings:     []string{"scale_pattern"},
		NativeBiomes: []string{"savanna", "forest"},
		BaseHealth:   140,
		Mass:         15,
		Attacks: []AttackSpec{
			{Name: "Tail Slam", Damage: 22, StaminaCost: 18, Cooldown: 2.0, Range: 2.5},
			{Name: "Roll Attack", Damage: 28, StaminaCost: 30, Cooldown: 4.0, Range: 3.0},
		},
		WalkSpeed: 1.5, RunSpeed: 3.5, SwimSpeed: 2.5, ClimbSpeed: 1.5, JumpHeight: 0.6,
		Temperament: "defensive", AwarenessRadius: 10, AggressionLevel: 0.3,
		DropItems: []domain.DropItem{
			{Item: "pangolin_scale", Quantity: 2, Chance: 1.0},
		},
	},
	"mongoose": {
		Name:         "Mongoose",
		Category:     domain.CategoryPredator,
		Size:         domain.SizeSmall,
		PrimaryColor: "#9a8a6a",
		Markings:     []string{"darker_tail_tip"},
		NativeBiomes: []string{"savanna", "scrubland"},
		BaseHealth:   60,
		Mass:         3,
		Attacks: []AttackSpec{
			{Name: "Lightning Bite", Damage: 14, StaminaCost: 8, Cooldown: 0.5, Range: 1.0},
			// Имя не выводится правилами: категория задана явно.
			{Name: "Quick Strike", Category: "claw_swipe", Damage: 18, StaminaCost: 12, Cooldown: 1.0, Range: 1.5},
		},
		WalkSpeed: 3.5, RunSpeed: 9.0, SwimSpeed: 2.0, ClimbSpeed: 2.0, JumpHeight: 1.4,
		Temperament: "aggressive", AwarenessRadius: 16, AggressionLevel: 0.75,
		DropItems: []domain.DropItem{
			{Item: "mongoose_fur", Quantity: 1, Chance: 1.0},
		},
	},
	"coati": {
		Name:         "Coati",
		Category:     domain.CategoryPredator,
		Size:         domain.SizeMedium,
		PrimaryColor: "#7a5a4a",
		Markings:     []string{"ringed_tail", "white_snout"},
		NativeBiomes: []string{"forest", "jungle"},
		BaseHealth:   90,
		Mass:         7,
		Attacks: []AttackSpec{
			{Name: "Bite", Damage: 13, StaminaCost: 9, Cooldown: 1.0, Range: 1.3},
			{Name: "Claw", Damage: 11, StaminaCost: 7, Cooldown: 0.8, Range: 1.5},
		},
		WalkSpeed: 2.6, RunSpeed: 6.5, SwimSpeed: 3.0, ClimbSpeed: 4.0, JumpHeight: 1.6,
		Temperament: "playful", AwarenessRadius: 14, AggressionLevel: 0.5,
		DropItems: []domain.DropItem{
			{Item: "coati_fur", Quantity: 1, Chance: 1.0},
		},
	},
	"meerkat": {
		Name:         "Meerkat",
		Category:     domain.CategoryPredator,
		Size:         domain.SizeSmall,
		PrimaryColor: "#aa9a7a",
		Markings:     []string{"dark_eye_patches", "striped_back"},
		NativeBiomes: []string{"desert", "savanna"},
		BaseHealth:   50,
		Mass:         1,
		Attacks: []AttackSpec{
			{Name: "Quick Bite", Damage: 8, StaminaCost: 5, Cooldown: 0.6, Range: 0.8},
		},
		WalkSpeed: 2.8, RunSpeed: 7.0, SwimSpeed: 1.5, ClimbSpeed: 0.5, JumpHeight: 1.0,
		Temperament: "pack_hunter", AwarenessRadius: 20, AggressionLevel: 0.4,
		DropItems: []domain.DropItem{
			{Item: "meerkat_fur", Quantity: 1, Chance: 1.0},
		},
	},
	"honey_badger": {
		Name:         "Honey Badger",
		Category:     domain.CategoryPredator,
		Size:         domain.SizeMedium,
		PrimaryColor: "#3a3a3a",
		Markings:     []string{"white_back_stripe"},
		NativeBiomes: []string{"desert", "savanna", "scrubland"},
		BaseHealth:   160,
		Mass:         10,
		Attacks: []AttackSpec{
			{Name: "Ferocious Bite", Damage: 24, StaminaCost: 14, Cooldown: 1.3, Range: 1.4},
			{Name: "Berserk Claw", Damage: 20, StaminaCost: 12, Cooldown: 1.0, Range: 1.6},
		},
		WalkSpeed: 1.8, RunSpeed: 4.5, SwimSpeed: 2.5, ClimbSpeed: 1.0, JumpHeight: 0.9,
		Temperament: "aggressive", AwarenessRadius: 15, AggressionLevel: 0.95,
		DropItems: []domain.DropItem{
			{Item: "honey_badger_hide", Quantity: 1, Chance: 1.0},
		},
	},
	"red_panda": {
		Name:         "Red Panda",
		Category:     domain.CategoryPredator,
		Size:         domain.SizeMedium,
		PrimaryColor: "#c47a5a",
		Markings:     []string{"ringed_tail", "white_face_markings", "darker_legs"},
		NativeBiomes: []string{"mountain", "forest"},
		BaseHealth:   70,
		Mass:         5,
		Attacks: []AttackSpec{
			{Name: "Swat", Category: "claw_swipe", Damage: 10, StaminaCost: 7, Cooldown: 0.8, Range: 1.2},
			{Name: "Bite", Damage: 12, StaminaCost: 9, Cooldown: 1.1, Range: 1.0},
		},
		WalkSpeed: 2.0, RunSpeed: 5.0, SwimSpeed: 2.0, ClimbSpeed: 5.0, JumpHeight: 2.0,
		Temperament: "timid", AwarenessRadius: 12, AggressionLevel: 0.3,
		DropItems: []domain.DropItem{
			{Item: "red_panda_fur", Quantity: 1, Chance: 1.0},
		},
	},
	"wombat": {
		Name:         "Wombat",
		Category:     domain.CategoryPredator,
		Size:         domain.SizeMedium,
		PrimaryColor: "#6a5a4a",
		Markings:     []string{"darker_nose"},
		NativeBiomes: []string{"scrubland", "forest"},
		BaseHealth:   130,
		Mass:         25,
		Attacks: []AttackSpec{
			{Name: "Headbutt", Damage: 26, StaminaCost: 16, Cooldown: 2.0, Range: 1.5},
			{Name: "Body Slam", Category: "headbutt", Damage: 22, StaminaCost: 18, Cooldown: 2.5, Range: 2.0},
		},
		WalkSpeed: 1.5, RunSpeed: 3.0, SwimSpeed: 1.5, ClimbSpeed: 0, JumpHeight: 0.5,
		Temperament: "defensive", AwarenessRadius: 10, AggressionLevel: 0.5,
		DropItems: []domain.DropItem{
			{Item: "wombat_fur", Quantity: 1, Chance: 1.0},
		},
	},
	"tasmanian_devil": {
		Name:         "Tasmanian Devil",
		Category:     domain.CategoryPredator,
		Size:         domain.SizeMedium,
		PrimaryColor: "#2a2a2a",
		Markings:     []string{"white_chest_patch", "white_rump"},
		NativeBiomes: []string{"scrubland", "forest"},
		BaseHealth:   110,
		Mass:         9,
		Attacks: []AttackSpec{
			{Name: "Devastating Bite", Damage: 30, StaminaCost: 20, Cooldown: 1.8, Range: 1.4},
			{Name: "Frenzy", Category: "bite", Damage: 35, StaminaCost: 35, Cooldown: 5.0, Range: 1.5},
		},
		WalkSpeed: 2.3, RunSpeed: 6.0, SwimSpeed: 2.5, ClimbSpeed: 0.8, JumpHeight: 1.0,
		Temperament: "aggressive", AwarenessRadius: 16, AggressionLevel: 0.9,
		DropItems: []domain.DropItem{
			{Item: "devil_hide", Quantity: 1, Chance: 1.0},
		},
	},
}

// preyTemplates - таблица видов-добычи. Агрессия в таблице не задается:
// фабрика принудительно ставит добыче 0.1.
var preyTemplates = map[string]SpeciesTemplate{
	"rabbit": {
		Name:         "Rabbit",
		Category:     domain.CategoryPrey,
		Size:         domain.SizeTiny,
		PrimaryColor: "#9a8a7a",
		Markings:     []string{"white_tail"},
		NativeBiomes: []string{"forest", "scrubland"},
		BaseHealth:   30,
		Mass:         2,
		Attacks: []AttackSpec{
			{Name: "Kick", Damage: 3, StaminaCost: 5, Cooldown: 1.5, Range: 0.8},
		},
		WalkSpeed: 2.0, RunSpeed: 9.0, SwimSpeed: 2.0, ClimbSpeed: 0, JumpHeight: 1.5,
		Temperament: "timid", AwarenessRadius: 18, FleeThreshold: fptr(0.95),
		DropItems: []domain.DropItem{
			{Item: "rabbit_meat", Quantity: 1, Chance: 1.0},
			{Item: "rabbit_pelt", Quantity: 1, Chance: 0.7},
		},
	},
	"deer": {
		Name:         "Deer",
		Category:     domain.CategoryPrey,
		Size:         domain.SizeLarge,
		PrimaryColor: "#aa8a6a",
		Markings:     []string{"white_spots", "white_tail"},
		NativeBiomes: []string{"forest", "scrubland"},
		BaseHealth:   80,
		Mass:         40,
		Attacks: []AttackSpec{
			{Name: "Antler Strike", Damage: 12, StaminaCost: 15, Cooldown: 2.0, Range: 1.5},
		},
		WalkSpeed: 2.5, RunSpeed: 11.0, SwimSpeed: 4.0, ClimbSpeed: 0, JumpHeight: 2.0,
		Temperament: "timid", AwarenessRadius: 22, FleeThreshold: fptr(0.9),
		DropItems: []domain.DropItem{
			{Item: "venison", Quantity: 3, Chance: 1.0},
			{Item: "deer_hide", Quantity: 1, Chance: 1.0},
			{Item: "antler_fragment", Quantity: 1, Chance: 0.4},
		},
	},
	"grouse": {
		Name:         "Grouse",
		Category:     domain.CategoryPrey,
		Size:         domain.SizeTiny,
		PrimaryColor: "#7a6a5a",
		Markings:     []string{"speckled_pattern"},
		NativeBiomes: []string{"forest", "scrubland"},
		BaseHealth:   20,
		Mass:         0.5,
		WalkSpeed:   1.5, RunSpeed: 3.0, SwimSpeed: 0, ClimbSpeed: 0, JumpHeight: 3.0,
		Temperament: "timid", AwarenessRadius: 14, FleeThreshold: fptr(1.0),
		DropItems: []domain.DropItem{
			{Item: "bird_meat", Quantity: 1, Chance: 1.0},
			{Item: "feathers", Quantity: 2, Chance: 1.0},
		},
	},
	"vole": {
		Name:         "Vole",
		Category:     domain.CategoryPrey,
		Size:         domain.SizeTiny,
		PrimaryColor: "#6a5a4a",
		NativeBiomes: []string{"marsh", "forest", "scrubland"},
		BaseHealth:   15,
		Mass:         0.3,
		WalkSpeed:   1.8, RunSpeed: 5.0, SwimSpeed: 2.0, ClimbSpeed: 0.5, JumpHeight: 0.5,
		Temperament: "timid", AwarenessRadius: 10, FleeThreshold: fptr(1.0),
		DropItems: []domain.DropItem{
			{Item: "small_meat", Quantity: 1, Chance: 0.8},
		},
	},
	"capybara": {
		Name:         "Capybara",
		Category:     domain.CategoryPrey,
		Size:         domain.SizeLarge,
		PrimaryColor: "#aa9a7a",
		NativeBiomes: []string{"marsh", "jungle"},
		BaseHealth:   90,
		Mass:         50,
		Attacks: []AttackSpec{
			{Name: "Bite", Damage: 8, StaminaCost: 10, Cooldown: 1.8, Range: 1.2},
		},
		WalkSpeed: 2.0, RunSpeed: 4.0, SwimSpeed: 6.0, ClimbSpeed: 0, JumpHeight: 0.6,
		Temperament: "docile", AwarenessRadius: 12, FleeThreshold: fptr(0.7),
		DropItems: []domain.DropItem{
			{Item: "capybara_meat", Quantity: 4, Chance: 1.0},
			{Item: "thick_hide", Quantity: 1, Chance: 0.8},
		},
	},
	"wallaby": {
		Name:         "Wallaby",
		Category:     domain.CategoryPrey,
		Size:         domain.SizeMedium,
		PrimaryColor: "#9a8a6a",
		Markings:     []string{"white_chest"},
		NativeBiomes: []string{"scrubland", "forest"},
		BaseHealth:   60,
		Mass:         20,
		Attacks: []AttackSpec{
			{Name: "Kick", Damage: 15, StaminaCost: 12, Cooldown: 1.5, Range: 1.4},
		},
		WalkSpeed: 2.5, RunSpeed: 10.0, SwimSpeed: 3.0, ClimbSpeed: 0, JumpHeight: 2.5,
		Temperament: "timid", AwarenessRadius: 20, FleeThreshold: fptr(0.85),
		DropItems: []domain.DropItem{
			{Item: "wallaby_meat", Quantity: 2, Chance: 1.0},
			{Item: "wallaby_hide", Quantity: 1, Chance: 0.9},
		},
	},
	"fish_bass": {
		Name:         "Bass",
		Category:     domain.CategoryPrey,
		Size:         domain.SizeSmall,
		PrimaryColor: "#5a6a4a",
		Markings:     []string{"darker_stripes"},
		NativeBiomes: []string{"marsh"},
		BaseHealth:   25,
		Mass:         1.5,
		WalkSpeed:   0, RunSpeed: 0, SwimSpeed: 7.0, ClimbSpeed: 0, JumpHeight: 0,
		Temperament: "docile", AwarenessRadius: 8, FleeThreshold: fptr(1.0),
		DropItems: []domain.DropItem{
			{Item: "fish_meat", Quantity: 1, Chance: 1.0},
			{Item: "fish_scales", Quantity: 1, Chance: 0.5},
		},
	},
	"fish_trout": {
		Name:         "Trout",
		Category:     domain.CategoryPrey,
		Size:         domain.SizeSmall,
		PrimaryColor: "#6a7a8a",
		Markings:     []string{"black_spots", "red_stripe"},
		NativeBiomes: []string{"marsh", "mountain"},
		BaseHealth:   20,
		Mass:         1.0,
		WalkSpeed:   0, RunSpeed: 0, SwimSpeed: 8.0, ClimbSpeed: 0, JumpHeight: 0.5,
		Temperament: "timid", AwarenessRadius: 10, FleeThreshold: fptr(1.0),
		DropItems: []domain.DropItem{
			{Item: "trout_meat", Quantity: 1, Chance: 1.0},
		},
	},
	"crayfish": {
		Name:         "Crayfish",
		Category:     domain.CategoryPrey,
		Size:         domain.SizeTiny,
		PrimaryColor: "#7a4a3a",
		NativeBiomes: []string{"marsh"},
		BaseHealth:   10,
		Mass:         0.2,
		Attacks: []AttackSpec{
			{Name: "Pinch", Category: "claw_swipe", Damage: 2, StaminaCost: 3, Cooldown: 1.0, Range: 0.5},
		},
		WalkSpeed: 0.8, RunSpeed: 1.5, SwimSpeed: 4.0, ClimbSpeed: 0, JumpHeight: 0,
		Temperament: "defensive", AwarenessRadius: 6, FleeThreshold: fptr(0.9),
		DropItems: []domain.DropItem{
			{Item: "crayfish_meat", Quantity: 1, Chance: 1.0},
			{Item: "crayfish_shell", Quantity: 1, Chance: 0.6},
		},
	},
	"frog": {
		Name:         "Frog",
		Category:     domain.CategoryPrey,
		Size:         domain.SizeTiny,
		PrimaryColor: "#5a7a4a",
		Markings:     []string{"spotted_pattern"},
		NativeBiomes: []string{"marsh", "jungle"},
		BaseHealth:   12,
		Mass:         0.15,
		WalkSpeed:   1.0, RunSpeed: 2.0, SwimSpeed: 5.0, ClimbSpeed: 1.0, JumpHeight: 2.0,
		Temperament: "timid", AwarenessRadius: 8, FleeThreshold: fptr(1.0),
		DropItems: []domain.DropItem{
			{Item: "frog_legs", Quantity: 1, Chance: 0.8},
		},
	},
	"beetle": {
		Name:         "Beetle",
		Category:     domain.CategoryPrey,
		Size:         domain.SizeTiny,
		PrimaryColor: "#3a2a1a",
		Markings:     []string{"shiny_shell"},
		NativeBiomes: []string{"forest", "jungle", "scrubland"},
		BaseHealth:   5,
		Mass:         0.05,
		WalkSpeed:   0.5, RunSpeed: 1.0, SwimSpeed: 0, ClimbSpeed: 0.8, JumpHeight: 0.3,
		Temperament: "docile", AwarenessRadius: 4, FleeThreshold: fptr(1.0),
		DropItems: []domain.DropItem{
			{Item: "insect_parts", Quantity: 1, Chance: 0.5},
		},
	},
}

// normalizeTemperament сводит авторскую строку темперамента к одному
// из шести архетипов. Неизвестные строки считаются осторожными.
func normalizeTemperament(temperament string) domain.Personality {
	switch temperament {
	case "timid", "docile":
		return domain.PersonalityTimid
	case "playful", "cunning", "curious":
		return domain.PersonalityCautious
	case "aggressive":
		return domain.PersonalityAggressive
	case "fearless":
		return domain.PersonalityFearless
	case "pack_hunter":
		return domain.PersonalityPack
	case "defensive":
		return domain.PersonalityTerritorial
	default:
		return domain.PersonalityCautious
	}
}
