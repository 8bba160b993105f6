package monstersaves

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/monster-battle/internal/errors"
	"github.com/KirkDiggler/monster-battle/internal/pkg/clock"
	"github.com/KirkDiggler/monster-battle/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/monster-battle/internal/redis"
)

const (
	// Key patterns: monster_save:{id}, monster_save:owner:{owner_id}
	saveKeyPrefix  = "monster_save:"
	ownerKeyPrefix = "monster_save:owner:"

	errIDEmpty      = "save ID cannot be empty"
	errOwnerIDEmpty = "owner ID cannot be empty"
	errDataNil      = "save data cannot be nil"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client      redisclient.Client
	Clock       clock.Clock
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	idGen  idgen.Generator
}

// NewRedisRepository creates a new Redis repository for monster saves
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		idGen:  cfg.IDGenerator,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// Create stores a new save and adds it to the owner's index in one transaction
func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}
	if input.Data == nil {
		return nil, errors.InvalidArgument(errDataNil)
	}

	now := r.clock.Now()
	save := &MonsterSave{
		ID:        r.idGen.Generate(),
		OwnerID:   input.OwnerID,
		Data:      input.Data,
		CreatedAt: now,
		UpdatedAt: now,
	}

	saveJSON, err := json.Marshal(save)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal save")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, saveKey(save.ID), saveJSON, 0)
	pipe.ZAdd(ctx, ownerKey(save.OwnerID), redis.Z{Score: float64(now.UnixNano()), Member: save.ID})
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to store save %s", save.ID)
	}

	slog.DebugContext(ctx, "Monster save created",
		"save_id", save.ID,
		"owner_id", save.OwnerID,
		"species", save.Data.Species,
		"level", save.Data.Level)

	return &CreateOutput{Save: save}, nil
}

// Get retrieves a save by id
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	save, err := r.load(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Save: save}, nil
}

// Update replaces the data of an existing save, keeping its owner and creation time
func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}
	if input.Data == nil {
		return nil, errors.InvalidArgument(errDataNil)
	}

	save, err := r.load(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	save.Data = input.Data
	save.UpdatedAt = r.clock.Now()

	saveJSON, err := json.Marshal(save)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal save")
	}
	if err := r.client.Set(ctx, saveKey(save.ID), saveJSON, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update save %s", save.ID)
	}

	return &UpdateOutput{Save: save}, nil
}

// Delete removes a save and its owner index entry in one transaction
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	save, err := r.load(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, saveKey(save.ID))
	pipe.ZRem(ctx, ownerKey(save.OwnerID), save.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete save %s", save.ID)
	}

	return &DeleteOutput{}, nil
}

// ListByOwner returns an owner's saves, oldest first. Index entries whose save
// has disappeared are skipped.
func (r *redisRepository) ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	ids, err := r.client.ZRange(ctx, ownerKey(input.OwnerID), 0, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list saves for owner %s", input.OwnerID)
	}
	if len(ids) == 0 {
		return &ListByOwnerOutput{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = saveKey(id)
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load saves for owner %s", input.OwnerID)
	}

	saves := make([]*MonsterSave, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			slog.WarnContext(ctx, "Dangling monster save index entry", "owner_id", input.OwnerID, "save_id", ids[i])
			continue
		}
		var save MonsterSave
		if err := json.Unmarshal([]byte(raw), &save); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal save %s", ids[i])
		}
		saves = append(saves, &save)
	}
	sort.SliceStable(saves, func(i, j int) bool {
		return saves[i].CreatedAt.Before(saves[j].CreatedAt)
	})

	return &ListByOwnerOutput{Saves: saves}, nil
}

func (r *redisRepository) load(ctx context.Context, id string) (*MonsterSave, error) {
	raw, err := r.client.Get(ctx, saveKey(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("save %s not found", id).WithMeta("save_id", id)
		}
		return nil, errors.Wrapf(err, "failed to get save %s", id)
	}

	var save MonsterSave
	if err := json.Unmarshal([]byte(raw), &save); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal save %s", id)
	}
	return &save, nil
}

func saveKey(id string) string {
	return saveKeyPrefix + id
}

func ownerKey(ownerID string) string {
	return ownerKeyPrefix + ownerID
}
