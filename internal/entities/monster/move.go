package monster

// MaxNumOfMoves is the number of moves a monster can know at once
const MaxNumOfMoves = 4

// MoveCategory selects which stats a move uses
type MoveCategory int

// Categories
const (
	CategoryPhysical MoveCategory = iota
	CategorySpecial
	CategoryStatus
)

var categoryKeys = []string{"physical", "special", "status"}

// String returns the category key
func (c MoveCategory) String() string {
	return enumKey(categoryKeys, c)
}

// MarshalText implements encoding.TextMarshaler
func (c MoveCategory) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *MoveCategory) UnmarshalText(text []byte) error {
	v, err := parseEnum[MoveCategory]("move category", categoryKeys, string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// MoveTarget selects who an effect lands on
type MoveTarget int

// Targets
const (
	TargetFoe MoveTarget = iota
	TargetSelf
)

var targetKeys = []string{"foe", "self"}

// String returns the target key
func (t MoveTarget) String() string {
	return enumKey(targetKeys, t)
}

// MarshalText implements encoding.TextMarshaler
func (t MoveTarget) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *MoveTarget) UnmarshalText(text []byte) error {
	v, err := parseEnum[MoveTarget]("move target", targetKeys, string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// MoveFlag marks move properties that abilities react to
type MoveFlag int

// Flags
const (
	FlagContact MoveFlag = iota
	FlagPunch
	FlagBite
	FlagPulse
	FlagSound
)

var flagKeys = []string{"contact", "punch", "bite", "pulse", "sound"}

// String returns the flag key
func (f MoveFlag) String() string {
	return enumKey(flagKeys, f)
}

// MarshalText implements encoding.TextMarshaler
func (f MoveFlag) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (f *MoveFlag) UnmarshalText(text []byte) error {
	v, err := parseEnum[MoveFlag]("move flag", flagKeys, string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// StatBoost is a stage delta for one stat
type StatBoost struct {
	Stat  Stat `yaml:"stat" json:"stat"`
	Boost int  `yaml:"boost" json:"boost"`
}

// MoveEffects is the non-damage payload of a move
type MoveEffects struct {
	Boosts         []StatBoost `yaml:"boosts,omitempty" json:"boosts,omitempty"`
	Status         ConditionID `yaml:"status,omitempty" json:"status,omitempty"`
	VolatileStatus ConditionID `yaml:"volatile_status,omitempty" json:"volatile_status,omitempty"`
	Weather        ConditionID `yaml:"weather,omitempty" json:"weather,omitempty"`
}

// IsEmpty reports whether the payload does nothing
func (e MoveEffects) IsEmpty() bool {
	return len(e.Boosts) == 0 &&
		e.Status == ConditionNone &&
		e.VolatileStatus == ConditionNone &&
		e.Weather == ConditionNone
}

// SecondaryEffect is an independently rolled extra payload
type SecondaryEffect struct {
	MoveEffects `yaml:",inline"`
	Chance      int        `yaml:"chance" json:"chance"`
	Target      MoveTarget `yaml:"target" json:"target"`
}

// HitRange is the number of hits of a multi-hit move. {0,0} is a single hit,
// {n,0} is exactly n hits, {min,max} is a roll in that inclusive range.
type HitRange struct {
	Min int `yaml:"min" json:"min"`
	Max int `yaml:"max" json:"max"`
}

// Ranger draws an inclusive integer range
type Ranger interface {
	Range(minValue, maxValue int) int
}

// Move is an immutable move definition
type Move struct {
	ID          string            `yaml:"id" json:"id"`
	Number      int               `yaml:"number" json:"number"`
	Name        string            `yaml:"name" json:"name"`
	Description string            `yaml:"description,omitempty" json:"description,omitempty"`
	Type        Type              `yaml:"type" json:"type"`
	Category    MoveCategory      `yaml:"category" json:"category"`
	Power       int               `yaml:"power" json:"power"`
	Accuracy    int               `yaml:"accuracy" json:"accuracy"`
	AlwaysHits  bool              `yaml:"always_hits,omitempty" json:"always_hits,omitempty"`
	PP          int               `yaml:"pp" json:"pp"`
	Priority    int               `yaml:"priority,omitempty" json:"priority,omitempty"`
	Target      MoveTarget        `yaml:"target" json:"target"`
	Effects     MoveEffects       `yaml:"effects,omitempty" json:"effects,omitempty"`
	Secondaries []SecondaryEffect `yaml:"secondaries,omitempty" json:"secondaries,omitempty"`
	Flags       []MoveFlag        `yaml:"flags,omitempty" json:"flags,omitempty"`
	HitRange    HitRange          `yaml:"hit_range,omitempty" json:"hit_range,omitempty"`
}

// Source tags effects produced by this move
func (m *Move) Source() SourceTag {
	return SourceTag{Kind: SourceMove, ID: m.Number}
}

// HasFlag reports whether the move carries flag
func (m *Move) HasFlag(flag MoveFlag) bool {
	for _, f := range m.Flags {
		if f == flag {
			return true
		}
	}
	return false
}

// IsDamaging reports whether the move goes through the damage formula
func (m *Move) IsDamaging() bool {
	return m.Category != CategoryStatus
}

// HitTimes returns how many times the move strikes this use
func (m *Move) HitTimes(r Ranger) int {
	switch {
	case m.HitRange.Min == 0 && m.HitRange.Max == 0:
		return 1
	case m.HitRange.Max == 0:
		return m.HitRange.Min
	default:
		return r.Range(m.HitRange.Min, m.HitRange.Max)
	}
}
