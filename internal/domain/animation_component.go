package domain

// AnimationSet - ID анимаций по состояниям (библиотека анимаций ассетов).
type AnimationSet struct {
	Idle   []int `json:"idle"` // случайные вариации простоя
	Walk   int   `json:"walk"`
	Run    int   `json:"run"`
	Swim   int   `json:"swim"`
	Jump   int   `json:"jump"`
	Fall   int   `json:"fall"`
	Attack []int `json:"attack"`
	Hit    int   `json:"hit"`
	Death  int   `json:"death"`
	Eat    int   `json:"eat"`
	Drink  int   `json:"drink"`
	Sleep  int   `json:"sleep"`
}

// AnimationComponent - состояние проигрывания анимаций.
// Симуляция только выставляет CurrentAnimation, проигрывает рендер.
type AnimationComponent struct {
	CurrentAnimation  int     `json:"currentAnimation"`
	AnimationTime     float64 `json:"animationTime"`
	AnimationSpeed    float64 `json:"animationSpeed"`
	PreviousAnimation int     `json:"previousAnimation"`
	BlendProgress     float64 `json:"blendProgress"`
	BlendDuration     float64 `json:"blendDuration"`

	Animations AnimationSet `json:"animations"`

	IsLooping bool `json:"isLooping"`
	IsPaused  bool `json:"isPaused"`
}

// Play переключает текущую анимацию с блендингом.
func (a *AnimationComponent) Play(id int) {
	if a.CurrentAnimation == id {
		return
	}
	a.PreviousAnimation = a.CurrentAnimation
	a.CurrentAnimation = id
	a.BlendProgress = 0
	a.AnimationTime = 0
}
