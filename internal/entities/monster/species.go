package monster

// GrowthRate selects a species' experience curve
type GrowthRate int

// Growth rates
const (
	GrowthMediumFast GrowthRate = iota
	GrowthFast
)

var growthKeys = []string{"medium_fast", "fast"}

// String returns the growth rate key
func (g GrowthRate) String() string {
	return enumKey(growthKeys, g)
}

// MarshalText implements encoding.TextMarshaler
func (g GrowthRate) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (g *GrowthRate) UnmarshalText(text []byte) error {
	v, err := parseEnum[GrowthRate]("growth rate", growthKeys, string(text))
	if err != nil {
		return err
	}
	*g = v
	return nil
}

// LearnableMove is a move a species learns on reaching Level
type LearnableMove struct {
	MoveID string `yaml:"move" json:"move"`
	Level  int    `yaml:"level" json:"level"`
}

// Species is an immutable species definition
type Species struct {
	Name           string          `yaml:"name" json:"name"`
	Description    string          `yaml:"description,omitempty" json:"description,omitempty"`
	Type1          Type            `yaml:"type1" json:"type1"`
	Type2          Type            `yaml:"type2,omitempty" json:"type2,omitempty"`
	BaseStats      BaseStats       `yaml:"base_stats" json:"base_stats"`
	Ability        AbilityID       `yaml:"ability" json:"ability"`
	GrowthRate     GrowthRate      `yaml:"growth_rate" json:"growth_rate"`
	ExpYield       int             `yaml:"exp_yield" json:"exp_yield"`
	CatchRate      int             `yaml:"catch_rate" json:"catch_rate"`
	LearnableMoves []LearnableMove `yaml:"learnable_moves" json:"learnable_moves"`
}

// ExpForLevel returns the total experience needed to reach level
func (s *Species) ExpForLevel(level int) int {
	n := level * level * level
	if s.GrowthRate == GrowthFast {
		return 4 * n / 5
	}
	return n
}
