package domain

// SpeciesCategory - хищник или добыча.
type SpeciesCategory string

const (
	CategoryPredator SpeciesCategory = "predator"
	CategoryPrey     SpeciesCategory = "prey"
)

// SizeClass - размерный класс вида (определяет пресет движения).
type SizeClass string

const (
	SizeTiny   SizeClass = "tiny"
	SizeSmall  SizeClass = "small"
	SizeMedium SizeClass = "medium"
	SizeLarge  SizeClass = "large"
)

// DropItem - запись таблицы лута.
type DropItem struct {
	Item     string  `json:"item"`
	Quantity int     `json:"quantity"`
	Chance   float64 `json:"chance"` // 0..1
}

// SpeciesComponent - копия данных вида внутри сущности.
// Все слайсы скопированы из шаблона при создании: мутация
// одной сущности не трогает ни шаблон, ни соседей.
type SpeciesComponent struct {
	ID       string          `json:"id"` // ключ в каталоге
	Name     string          `json:"name"`
	Category SpeciesCategory `json:"category"`

	// Визуальные свойства (читает рендер)
	Size         SizeClass `json:"size"`
	PrimaryColor string    `json:"primaryColor"`
	Markings     []string  `json:"markings"`

	NativeBiomes []string   `json:"nativeBiomes"`
	DropItems    []DropItem `json:"dropItems"`
}
