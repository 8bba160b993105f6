// Package v1 serves the HTTP side of the battle API: health checks and a
// websocket stream of battle narration.
package v1

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	engine "github.com/KirkDiggler/monster-battle/internal/battle"
	"github.com/KirkDiggler/monster-battle/internal/errors"
	"github.com/KirkDiggler/monster-battle/internal/orchestrators/battle"
)

const (
	// streamBuffer is how many events may queue for a slow client before
	// further events are dropped
	streamBuffer = 64
	writeTimeout = 10 * time.Second
)

// EventSource is the part of an events.EventBus the stream subscribes to
type EventSource interface {
	SubscribeFunc(eventType string, priority int, handler events.HandlerFunc) string
	Unsubscribe(id string) error
}

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	BattleService battle.Service
	Events        EventSource
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.BattleService == nil {
		vb.RequiredField("BattleService")
	}
	if c.Events == nil {
		vb.RequiredField("Events")
	}

	return vb.Build()
}

// Handler serves the HTTP routes
type Handler struct {
	battleService battle.Service
	events        EventSource
	upgrader      websocket.Upgrader
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		battleService: cfg.BattleService,
		events:        cfg.Events,
		upgrader:      websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }},
	}, nil
}

// Routes returns the router for every endpoint
func (h *Handler) Routes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", h.Health).Methods(http.MethodGet)
	r.HandleFunc("/v1/battles/{id}/stream", h.Stream).Methods(http.MethodGet)
	return r
}

// Health reports that the server is up
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Stream upgrades to a websocket and pushes every narration event of one
// battle as a JSON object until the client disconnects.
func (h *Handler) Stream(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	battleID := mux.Vars(r)["id"]

	if _, err := h.battleService.GetBattle(ctx, &battle.GetBattleInput{BattleID: battleID}); err != nil {
		writeError(w, err)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.WarnContext(ctx, "Websocket upgrade failed", "battle_id", battleID, "error", err)
		return
	}
	defer func() { _ = conn.Close() }()

	queue := make(chan engine.Event, streamBuffer)
	subID := h.events.SubscribeFunc(engine.EventTypeBattle, 0, func(_ context.Context, e events.Event) error {
		id, evt, ok := engine.FromBusEvent(e)
		if !ok || id != battleID {
			return nil
		}
		select {
		case queue <- evt:
		default:
			slog.Warn("Dropping battle event for slow stream", "battle_id", battleID)
		}
		return nil
	})
	defer func() {
		if err := h.events.Unsubscribe(subID); err != nil {
			slog.WarnContext(ctx, "Failed to unsubscribe stream", "battle_id", battleID, "error", err)
		}
	}()

	slog.InfoContext(ctx, "Stream opened", "battle_id", battleID)

	// The read loop only notices the client going away.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-closed:
			slog.InfoContext(ctx, "Stream closed", "battle_id", battleID)
			return
		case evt := <-queue:
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteJSON(evt); err != nil {
				slog.WarnContext(ctx, "Stream write failed", "battle_id", battleID, "error", err)
				return
			}
		}
	}
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Warn("Failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	writeJSON(w, code.HTTPStatus(), map[string]string{
		"code":    code.String(),
		"message": errors.GetMessage(err),
	})
}
