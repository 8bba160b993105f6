package monster

// AbilityID identifies an ability definition
type AbilityID int

// Abilities
const (
	AbilityNone AbilityID = iota
	AbilityOvergrow
	AbilityBlaze
	AbilityTorrent
	AbilitySwarm
	AbilityCompoundEyes
	AbilityKeenEye
	AbilityHyperCutter
	AbilityClearBody
	AbilityLimber
	AbilityVitalSpirit
	AbilityImmunity
	AbilityWaterVeil
	AbilityInsomnia
	AbilityOwnTempo
	AbilityIronFist
	AbilityStrongJaw
	AbilityToughClaws
	AbilityMegaLauncher
	AbilityStatic
	AbilityPoisonPoint
	AbilityFlameBody
)

var abilityKeys = []string{
	"none", "overgrow", "blaze", "torrent", "swarm", "compoundeyes", "keeneye", "hypercutter",
	"clearbody", "limber", "vitalspirit", "immunity", "waterveil", "insomnia", "owntempo",
	"ironfist", "strongjaw", "toughclaws", "megalauncher", "static", "poisonpoint", "flamebody",
}

// AllAbilities lists every ability that must have a definition
func AllAbilities() []AbilityID {
	ids := make([]AbilityID, 0, len(abilityKeys)-1)
	for i := AbilityOvergrow; int(i) < len(abilityKeys); i++ {
		ids = append(ids, i)
	}
	return ids
}

// String returns the ability key
func (a AbilityID) String() string {
	return enumKey(abilityKeys, a)
}

// MarshalText implements encoding.TextMarshaler
func (a AbilityID) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (a *AbilityID) UnmarshalText(text []byte) error {
	v, err := parseEnum[AbilityID]("ability", abilityKeys, string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// ConditionID identifies a status, volatile status or weather definition
type ConditionID int

// Conditions
const (
	ConditionNone ConditionID = iota
	ConditionPoison
	ConditionBurn
	ConditionSleep
	ConditionParalysis
	ConditionFreeze
	ConditionConfusion
	ConditionSunny
	ConditionRain
	ConditionSandstorm
)

var conditionKeys = []string{"none", "psn", "brn", "slp", "par", "frz", "confusion", "sunny", "rain", "sandstorm"}

// AllConditions lists every condition that must have a definition
func AllConditions() []ConditionID {
	ids := make([]ConditionID, 0, len(conditionKeys)-1)
	for i := ConditionPoison; int(i) < len(conditionKeys); i++ {
		ids = append(ids, i)
	}
	return ids
}

// String returns the condition key
func (c ConditionID) String() string {
	return enumKey(conditionKeys, c)
}

// MarshalText implements encoding.TextMarshaler
func (c ConditionID) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *ConditionID) UnmarshalText(text []byte) error {
	v, err := parseEnum[ConditionID]("condition", conditionKeys, string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// IsPrimary reports whether c is a persistent status that occupies the
// primary slot
func (c ConditionID) IsPrimary() bool {
	return c >= ConditionPoison && c <= ConditionFreeze
}

// IsVolatile reports whether c is a battle-scoped status
func (c ConditionID) IsVolatile() bool {
	return c == ConditionConfusion
}

// IsWeather reports whether c is a field weather
func (c ConditionID) IsWeather() bool {
	return c >= ConditionSunny && c <= ConditionSandstorm
}

// EffectSource is the kind of thing that produced an effect
type EffectSource int

// Effect sources. SourceNone means the effect has no attributable source.
const (
	SourceNone EffectSource = iota
	SourceAbility
	SourceItem
	SourceMove
	SourceCondition
)

var effectSourceKeys = []string{"none", "ability", "item", "move", "condition"}

// String returns the source key
func (e EffectSource) String() string {
	return enumKey(effectSourceKeys, e)
}

// SourceTag attributes an effect to a move, ability, item or condition.
// The zero value is an unattributed effect.
type SourceTag struct {
	Kind EffectSource
	ID   int
}

// IsMove reports whether the effect came from a move
func (t SourceTag) IsMove() bool {
	return t.Kind == SourceMove
}

// AbilitySource tags an effect produced by an ability
func AbilitySource(id AbilityID) SourceTag {
	return SourceTag{Kind: SourceAbility, ID: int(id)}
}

// ConditionSource tags an effect produced by a condition
func ConditionSource(id ConditionID) SourceTag {
	return SourceTag{Kind: SourceCondition, ID: int(id)}
}
