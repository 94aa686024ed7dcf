package domain

// Measurement holds combine-style physical measurements for one player.
// Every field is independently nullable; absent values stay absent.
type Measurement struct {
	PlayerID       int      `json:"playerId"`
	HeightNoShoes  *float64 `json:"heightNoShoes,omitempty"`
	HeightShoes    *float64 `json:"heightShoes,omitempty"`
	Wingspan       *float64 `json:"wingspan,omitempty"`
	Reach          *float64 `json:"reach,omitempty"`
	MaxVertical    *float64 `json:"maxVertical,omitempty"`
	NoStepVertical *float64 `json:"noStepVertical,omitempty"`
	Weight         *float64 `json:"weight,omitempty"`
	BodyFat        *float64 `json:"bodyFat,omitempty"`
	HandLength     *float64 `json:"handLength,omitempty"`
	HandWidth      *float64 `json:"handWidth,omitempty"`
	Agility        *float64 `json:"agility,omitempty"`
	Sprint         *float64 `json:"sprint,omitempty"`
	ShuttleLeft    *float64 `json:"shuttleLeft,omitempty"`
	ShuttleRight   *float64 `json:"shuttleRight,omitempty"`
	ShuttleBest    *float64 `json:"shuttleBest,omitempty"`
}
