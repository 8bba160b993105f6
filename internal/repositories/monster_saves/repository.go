// Package monstersaves persists combatant save data between battles.
package monstersaves

import (
	"context"
	"time"

	"github.com/KirkDiggler/monster-battle/internal/battle"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=monstersavesmock github.com/KirkDiggler/monster-battle/internal/repositories/monster_saves Repository

// MonsterSave is one stored combatant
type MonsterSave struct {
	// ID is the save identifier (e.g., "save_0d4f...")
	ID string `json:"id"`

	// OwnerID groups saves by trainer
	OwnerID string `json:"owner_id"`

	// Data is the persisted combatant state
	Data *battle.SaveData `json:"data"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateInput contains parameters for storing a new save
type CreateInput struct {
	OwnerID string
	Data    *battle.SaveData
}

// CreateOutput contains the stored save
type CreateOutput struct {
	Save *MonsterSave
}

// GetInput contains parameters for retrieving a save
type GetInput struct {
	ID string
}

// GetOutput contains the retrieved save
type GetOutput struct {
	Save *MonsterSave
}

// UpdateInput replaces the data of an existing save
type UpdateInput struct {
	ID   string
	Data *battle.SaveData
}

// UpdateOutput contains the updated save
type UpdateOutput struct {
	Save *MonsterSave
}

// DeleteInput contains parameters for deleting a save
type DeleteInput struct {
	ID string
}

// DeleteOutput is empty on success
type DeleteOutput struct{}

// ListByOwnerInput contains parameters for listing an owner's saves
type ListByOwnerInput struct {
	OwnerID string
}

// ListByOwnerOutput contains an owner's saves, oldest first
type ListByOwnerOutput struct {
	Saves []*MonsterSave
}

// Repository defines the interface for save storage operations
type Repository interface {
	// Create stores a new save and indexes it under its owner
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a save by id
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces the data of an existing save
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a save and its owner index entry
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListByOwner returns every save of an owner
	ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error)
}
