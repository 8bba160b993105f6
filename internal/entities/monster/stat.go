package monster

// Stat identifies a stat that carries a stage.
type Stat int

// Stats in stage order. Only the first five have base values.
const (
	StatAttack Stat = iota
	StatDefense
	StatSpAttack
	StatSpDefense
	StatSpeed
	StatAccuracy
	StatEvasion
)

// StageStats lists every stat that carries a stage, in application order
var StageStats = []Stat{
	StatAttack, StatDefense, StatSpAttack, StatSpDefense, StatSpeed, StatAccuracy, StatEvasion,
}

var statKeys = []string{"attack", "defense", "sp_attack", "sp_defense", "speed", "accuracy", "evasion"}

var statNames = []string{"Attack", "Defense", "SpAttack", "SpDefense", "Speed", "Accuracy", "Evasion"}

// String returns the display name used in narration
func (s Stat) String() string {
	return enumKey(statNames, s)
}

// MarshalText implements encoding.TextMarshaler
func (s Stat) MarshalText() ([]byte, error) {
	return []byte(enumKey(statKeys, s)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *Stat) UnmarshalText(text []byte) error {
	v, err := parseEnum[Stat]("stat", statKeys, string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// BaseStats are a species' base values. Max HP is derived, not stored.
type BaseStats struct {
	Attack    int `yaml:"attack" json:"attack"`
	Defense   int `yaml:"defense" json:"defense"`
	SpAttack  int `yaml:"sp_attack" json:"sp_attack"`
	SpDefense int `yaml:"sp_defense" json:"sp_defense"`
	Speed     int `yaml:"speed" json:"speed"`
}

// Get returns the base value for one of the five base stats, 0 otherwise
func (b BaseStats) Get(stat Stat) int {
	switch stat {
	case StatAttack:
		return b.Attack
	case StatDefense:
		return b.Defense
	case StatSpAttack:
		return b.SpAttack
	case StatSpDefense:
		return b.SpDefense
	case StatSpeed:
		return b.Speed
	default:
		return 0
	}
}
