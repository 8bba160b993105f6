package battle

import (
	"sort"

	"github.com/KirkDiggler/monster-battle/internal/entities/monster"
	"github.com/KirkDiggler/monster-battle/internal/errors"
)

//go:generate mockgen -destination=mock/mock_catalog.go -package=battlemock github.com/KirkDiggler/monster-battle/internal/battle Catalog

// Catalog is the read-only species and move data combatants are built from.
// A missing entry is a configuration error.
type Catalog interface {
	GetSpecies(name string) (*monster.Species, error)
	GetMoveDefinition(id string) (*monster.Move, error)
}

// RegistryConfig holds the definitions a Registry is built from
type RegistryConfig struct {
	Catalog    Catalog
	Abilities  map[monster.AbilityID]Ability
	Conditions map[monster.ConditionID]Condition
}

// Validate ensures the config is usable
func (c *RegistryConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if len(c.Abilities) == 0 {
		vb.RequiredField("Abilities")
	}
	if len(c.Conditions) == 0 {
		vb.RequiredField("Conditions")
	}

	return vb.Build()
}

// Registry is the immutable set of ability and condition definitions plus the
// catalog. Build it once at startup and share it across sessions.
type Registry struct {
	catalog    Catalog
	abilities  map[monster.AbilityID]*Ability
	conditions map[monster.ConditionID]*Condition
}

// NewRegistry copies the definitions, fills in their IDs and checks that
// every known ability and condition has an entry. AbilityNone always maps to
// an ability without hooks.
func NewRegistry(cfg *RegistryConfig) (*Registry, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid registry config")
	}

	r := &Registry{
		catalog:    cfg.Catalog,
		abilities:  make(map[monster.AbilityID]*Ability, len(cfg.Abilities)),
		conditions: make(map[monster.ConditionID]*Condition, len(cfg.Conditions)),
	}

	r.abilities[monster.AbilityNone] = &Ability{ID: monster.AbilityNone, Name: "None"}
	for id, def := range cfg.Abilities {
		def.ID = id
		r.abilities[id] = &def
	}
	for id, def := range cfg.Conditions {
		def.ID = id
		r.conditions[id] = &def
	}

	var missing []string
	for _, id := range monster.AllAbilities() {
		if _, ok := r.abilities[id]; !ok {
			missing = append(missing, "ability:"+id.String())
		}
	}
	for _, id := range monster.AllConditions() {
		if _, ok := r.conditions[id]; !ok {
			missing = append(missing, "condition:"+id.String())
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, errors.FailedPrecondition("registry is missing definitions").
			WithMeta("missing", missing)
	}

	return r, nil
}

// NewDefaultRegistry builds a registry from the built-in abilities and conditions
func NewDefaultRegistry(catalog Catalog) (*Registry, error) {
	return NewRegistry(&RegistryConfig{
		Catalog:    catalog,
		Abilities:  DefaultAbilities(),
		Conditions: DefaultConditions(),
	})
}

// Catalog returns the species and move data source
func (r *Registry) Catalog() Catalog {
	return r.catalog
}

// Ability looks up an ability definition
func (r *Registry) Ability(id monster.AbilityID) (*Ability, error) {
	a, ok := r.abilities[id]
	if !ok {
		return nil, errors.NotFoundf("ability %s not registered", id)
	}
	return a, nil
}

// Condition looks up a condition definition
func (r *Registry) Condition(id monster.ConditionID) (*Condition, error) {
	c, ok := r.conditions[id]
	if !ok {
		return nil, errors.NotFoundf("condition %s not registered", id)
	}
	return c, nil
}

// mustCondition is used inside hooks where the id is a compile-time constant or
// came from validated data. A miss means corrupted static data.
func (r *Registry) mustCondition(id monster.ConditionID) *Condition {
	c, err := r.Condition(id)
	if err != nil {
		panic(errors.WrapWithCode(err, errors.CodeFailedPrecondition, "condition registry is incomplete"))
	}
	return c
}
