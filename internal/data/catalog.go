// Package data loads the static species and move definitions a battle is
// built from. Definitions are read once and never mutated.
package data

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/monster-battle/internal/entities/monster"
	"github.com/KirkDiggler/monster-battle/internal/errors"
)

// File names inside a catalog directory
const (
	MovesFile   = "moves.yaml"
	SpeciesFile = "species.yaml"
)

//go:embed catalog/*.yaml
var embedded embed.FS

type movesDocument struct {
	Moves []monster.Move `yaml:"moves"`
}

type speciesDocument struct {
	Species []monster.Species `yaml:"species"`
}

// Catalog is an immutable, case-insensitive lookup of species and moves.
type Catalog struct {
	species map[string]*monster.Species
	moves   map[string]*monster.Move
	names   []string
}

// NewCatalog indexes and validates definitions. Every learnable move must
// exist, and names, ids and move numbers must be unique.
func NewCatalog(species []monster.Species, moves []monster.Move) (*Catalog, error) {
	c := &Catalog{
		species: make(map[string]*monster.Species, len(species)),
		moves:   make(map[string]*monster.Move, len(moves)),
	}

	numbers := make(map[int]string, len(moves))
	for i := range moves {
		m := moves[i]
		vb := errors.NewValidationBuilder()
		errors.ValidateRequired("id", m.ID, vb)
		errors.ValidateRequired("name", m.Name, vb)
		errors.ValidateNonNegative("power", m.Power, vb)
		errors.ValidateRange("accuracy", m.Accuracy, 0, 100, vb)
		if m.PP < 1 {
			vb.Field("pp", "must be at least 1")
		}
		validateEffects("effects", m.Effects, vb)
		for j, sec := range m.Secondaries {
			errors.ValidateRange("secondaries.chance", sec.Chance, 0, 100, vb)
			validateEffects(fmt.Sprintf("secondaries[%d]", j), sec.MoveEffects, vb)
		}
		if m.HitRange != (monster.HitRange{}) {
			if m.HitRange.Min < 1 {
				vb.Field("hit_range.min", "must be at least 1")
			}
			if m.HitRange.Max > 0 && m.HitRange.Max < m.HitRange.Min {
				vb.Field("hit_range.max", "must not be below min")
			}
		}
		if err := vb.Build(); err != nil {
			return nil, errors.Wrapf(err, "invalid move %q", m.ID)
		}

		key := monster.NormalizeKey(m.ID)
		if _, ok := c.moves[key]; ok {
			return nil, errors.AlreadyExistsf("duplicate move %q", m.ID)
		}
		if other, ok := numbers[m.Number]; ok {
			return nil, errors.AlreadyExistsf("moves %q and %q share number %d", other, m.ID, m.Number)
		}
		numbers[m.Number] = m.ID
		c.moves[key] = &m
	}

	for i := range species {
		s := species[i]
		vb := errors.NewValidationBuilder()
		errors.ValidateRequired("name", s.Name, vb)
		if s.Type1 == monster.TypeNone {
			vb.RequiredField("type1")
		}
		for _, lm := range s.LearnableMoves {
			if _, ok := c.moves[monster.NormalizeKey(lm.MoveID)]; !ok {
				vb.Fieldf("learnable_moves", "unknown move %q", lm.MoveID)
			}
		}
		if err := vb.Build(); err != nil {
			return nil, errors.Wrapf(err, "invalid species %q", s.Name)
		}

		key := monster.NormalizeKey(s.Name)
		if _, ok := c.species[key]; ok {
			return nil, errors.AlreadyExistsf("duplicate species %q", s.Name)
		}
		c.species[key] = &s
		c.names = append(c.names, s.Name)
	}
	sort.Strings(c.names)

	return c, nil
}

// Load reads moves.yaml and species.yaml from fsys
func Load(fsys fs.FS) (*Catalog, error) {
	var movesDoc movesDocument
	if err := decodeFile(fsys, MovesFile, &movesDoc); err != nil {
		return nil, err
	}

	var speciesDoc speciesDocument
	if err := decodeFile(fsys, SpeciesFile, &speciesDoc); err != nil {
		return nil, err
	}

	c, err := NewCatalog(speciesDoc.Species, movesDoc.Moves)
	if err != nil {
		return nil, err
	}

	slog.Info("Catalog loaded", "species", len(c.species), "moves", len(c.moves))
	return c, nil
}

// LoadDir reads a catalog from a directory on disk
func LoadDir(dir string) (*Catalog, error) {
	return Load(os.DirFS(dir))
}

// LoadDefault reads the catalog built into the binary
func LoadDefault() (*Catalog, error) {
	sub, err := fs.Sub(embedded, "catalog")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open embedded catalog")
	}
	return Load(sub)
}

func decodeFile(fsys fs.FS, name string, out any) error {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeFailedPrecondition, "failed to read "+name)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return errors.WrapWithCode(err, errors.CodeFailedPrecondition, "failed to parse "+name)
	}
	return nil
}

// GetSpecies looks up a species by name, ignoring case
func (c *Catalog) GetSpecies(name string) (*monster.Species, error) {
	s, ok := c.species[monster.NormalizeKey(name)]
	if !ok {
		return nil, errors.NotFoundf("species %q not found", name).WithMeta("species", name)
	}
	return s, nil
}

// GetMoveDefinition looks up a move by id, ignoring case
func (c *Catalog) GetMoveDefinition(id string) (*monster.Move, error) {
	m, ok := c.moves[monster.NormalizeKey(id)]
	if !ok {
		return nil, errors.NotFoundf("move %q not found", id).WithMeta("move_id", id)
	}
	return m, nil
}

// SpeciesNames lists species display names in sorted order
func (c *Catalog) SpeciesNames() []string {
	return append([]string(nil), c.names...)
}

// validateEffects checks that each condition slot names a condition of the
// matching kind.
func validateEffects(prefix string, e monster.MoveEffects, vb *errors.ValidationBuilder) {
	if e.Status != monster.ConditionNone && !e.Status.IsPrimary() {
		vb.Fieldf(prefix+".status", "%s is not a primary status", e.Status)
	}
	if e.VolatileStatus != monster.ConditionNone && !e.VolatileStatus.IsVolatile() {
		vb.Fieldf(prefix+".volatile_status", "%s is not a volatile status", e.VolatileStatus)
	}
	if e.Weather != monster.ConditionNone && !e.Weather.IsWeather() {
		vb.Fieldf(prefix+".weather", "%s is not a weather", e.Weather)
	}
}
