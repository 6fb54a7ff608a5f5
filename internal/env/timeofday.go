package env

import "math"

// TimePhase - фаза суток.
type TimePhase string

const (
	PhaseDawn  TimePhase = "dawn"
	PhaseDay   TimePhase = "day"
	PhaseDusk  TimePhase = "dusk"
	PhaseNight TimePhase = "night"
)

// Границы фаз (часы). Ночь - все, что вне dawn/day/dusk.
const (
	dawnStart = 5.0
	dawnEnd   = 7.0
	dayEnd    = 17.0
	duskEnd   = 19.0
)

// TimeOfDay - мировой синглтон суточного цикла. Все производные поля -
// чистые функции от Hour и MoonPhase, пересчитываются при каждом сдвиге
// часа и никогда не кэшируются устаревшими.
type TimeOfDay struct {
	Hour  float64   `json:"hour"` // 0..24, дробный
	Phase TimePhase `json:"phase"`

	// Освещение (для рендера)
	SunIntensity float64 `json:"sunIntensity"` // 0..1
	SunAngle     float64 `json:"sunAngle"`     // градусы
	AmbientLight float64 `json:"ambientLight"` // 0..1

	// Модификаторы поведения существ
	NocturnalBonus float64 `json:"nocturnalBonus"` // ночные хищники сильнее ночью
	PreyAlertness  float64 `json:"preyAlertness"`  // добыча насторожена на рассвете/закате
	StealthBonus   float64 `json:"stealthBonus"`   // в темноте проще красться

	// Атмосфера
	FogDensity     float64 `json:"fogDensity"`
	StarVisibility float64 `json:"starVisibility"`
	MoonPhase      float64 `json:"moonPhase"` // 0..1, влияет на яркость ночи

	// Течение времени
	TimeScale float64 `json:"timeScale"` // 60 = игровой час за реальную минуту
}

// PhaseFromHour определяет фазу суток по часу.
func PhaseFromHour(hour float64) TimePhase {
	h := math.Mod(hour, 24)
	if h < 0 {
		h += 24
	}
	switch {
	case h >= dawnStart && h < dawnEnd:
		return PhaseDawn
	case h >= dawnEnd && h < dayEnd:
		return PhaseDay
	case h >= dayEnd && h < duskEnd:
		return PhaseDusk
	default:
		return PhaseNight
	}
}

// TimeModifiers - чистая функция: час + фаза луны -> полный набор
// производных полей. Hour и MoonPhase в результате уже проставлены.
func TimeModifiers(hour, moonPhase float64) TimeOfDay {
	phase := PhaseFromHour(hour)

	// Угол солнца: 6:00 = 0°, 12:00 = 90°, 18:00 = 180°
	sunAngle := ((hour - 6) / 12) * 180

	// Интенсивность солнца пикует в полдень
	sunIntensity := 0.0
	if phase == PhaseDay {
		sunIntensity = math.Sin(((hour - 6) / 12) * math.Pi)
	}

	// Эмбиент ниже ночью, луна немного подсвечивает
	var ambient float64
	switch phase {
	case PhaseNight:
		ambient = 0.2 + moonPhase*0.3
	case PhaseDay:
		ambient = 1.0
	default:
		ambient = 0.6 // рассвет/закат
	}

	nocturnal := 1.0
	if phase == PhaseNight {
		nocturnal = 1.3
	}

	alertness := 1.0
	if phase == PhaseDawn || phase == PhaseDusk {
		alertness = 1.4
	}

	var stealth float64
	switch phase {
	case PhaseNight:
		stealth = 0.4
	case PhaseDawn, PhaseDusk:
		stealth = 0.2
	}

	fog := 0.0
	if phase == PhaseDawn || phase == PhaseDusk {
		fog = 0.3
	}

	stars := 0.0
	if phase == PhaseNight {
		stars = 1.0
	}

	return TimeOfDay{
		Hour:           math.Mod(hour, 24),
		Phase:          phase,
		SunIntensity:   sunIntensity,
		SunAngle:       sunAngle,
		AmbientLight:   ambient,
		NocturnalBonus: nocturnal,
		PreyAlertness:  alertness,
		StealthBonus:   stealth,
		FogDensity:     fog,
		StarVisibility: stars,
		MoonPhase:      moonPhase,
		TimeScale:      1.0,
	}
}

// Advance сдвигает часы на dt секунд с учетом TimeScale и
// пересчитывает все производные поля.
func (t TimeOfDay) Advance(dt float64) TimeOfDay {
	scale := t.TimeScale
	if scale <= 0 {
		scale = 1.0
	}
	hour := math.Mod(t.Hour+dt*scale/3600, 24)
	next := TimeModifiers(hour, t.MoonPhase)
	next.TimeScale = scale
	return next
}
