package battles

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/monster-battle/internal/errors"
)

const errBattleIDRequired = "battle ID is required"

// InMemoryRepository implements Repository with a map. Sessions hold live
// engine state and are never serialized.
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*Battle
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]*Battle),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Save stores a battle
func (r *InMemoryRepository) Save(_ context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil || input.Battle == nil || input.Battle.Session == nil {
		return nil, errors.InvalidArgument("battle session is required")
	}
	id := input.Battle.Session.ID()
	if id == "" {
		return nil, errors.InvalidArgument(errBattleIDRequired)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, replaced := r.store[id]
	r.store[id] = input.Battle

	return &SaveOutput{Replaced: replaced}, nil
}

// Get retrieves a battle by id
func (r *InMemoryRepository) Get(_ context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.BattleID == "" {
		return nil, errors.InvalidArgument(errBattleIDRequired)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	b, exists := r.store[input.BattleID]
	if !exists {
		return nil, errors.NotFoundf("battle %s not found", input.BattleID).
			WithMeta("battle_id", input.BattleID)
	}

	return &GetOutput{Battle: b}, nil
}

// Delete removes a battle
func (r *InMemoryRepository) Delete(_ context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil || input.BattleID == "" {
		return nil, errors.InvalidArgument(errBattleIDRequired)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	b, exists := r.store[input.BattleID]
	if !exists {
		return nil, errors.NotFoundf("battle %s not found", input.BattleID).
			WithMeta("battle_id", input.BattleID)
	}
	delete(r.store, input.BattleID)

	return &DeleteOutput{Battle: b}, nil
}

// List returns the stored ids in sorted order
func (r *InMemoryRepository) List(_ context.Context) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.store))
	for id := range r.store {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return &ListOutput{BattleIDs: ids}, nil
}
