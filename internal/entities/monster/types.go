package monster

// Type is an elemental type
type Type int

// Elemental types
const (
	TypeNone Type = iota
	TypeNormal
	TypeFire
	TypeWater
	TypeElectric
	TypeGrass
	TypeIce
	TypeFighting
	TypePoison
	TypeGround
	TypeFlying
	TypePsychic
	TypeBug
	TypeRock
	TypeGhost
	TypeDragon
	TypeDark
	TypeSteel
	TypeFairy
)

var typeKeys = []string{
	"none", "normal", "fire", "water", "electric", "grass", "ice", "fighting", "poison",
	"ground", "flying", "psychic", "bug", "rock", "ghost", "dragon", "dark", "steel", "fairy",
}

// String returns the type key
func (t Type) String() string {
	return enumKey(typeKeys, t)
}

// MarshalText implements encoding.TextMarshaler
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *Type) UnmarshalText(text []byte) error {
	v, err := parseEnum[Type]("type", typeKeys, string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
