// Package battles stores live battle sessions.
package battles

//go:generate mockgen -destination=mock/mock_repository.go -package=battlesmock github.com/KirkDiggler/monster-battle/internal/repositories/battles Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/monster-battle/internal/battle"
)

// Repository defines the storage interface for live battles
type Repository interface {
	// Save stores a battle under its session id, replacing any previous one
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// Get retrieves a battle by id
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Delete removes a battle
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)

	// List returns the ids of every stored battle
	List(ctx context.Context) (*ListOutput, error)
}

// Battle is a live session plus the bookkeeping needed to persist its
// player when it ends
type Battle struct {
	Session *battle.Session

	// OwnerID is the trainer the player's combatant belongs to
	OwnerID string

	// PlayerSaveID is set when the player was restored from a save
	PlayerSaveID string

	CreatedAt time.Time
}

// SaveInput defines the request for saving a battle
type SaveInput struct {
	Battle *Battle
}

// SaveOutput defines the response for saving a battle
type SaveOutput struct {
	Replaced bool
}

// GetInput defines the request for retrieving a battle
type GetInput struct {
	BattleID string
}

// GetOutput defines the response for retrieving a battle
type GetOutput struct {
	Battle *Battle
}

// DeleteInput defines the request for deleting a battle
type DeleteInput struct {
	BattleID string
}

// DeleteOutput defines the response for deleting a battle
type DeleteOutput struct {
	Battle *Battle
}

// ListOutput defines the response for listing battles
type ListOutput struct {
	BattleIDs []string
}
