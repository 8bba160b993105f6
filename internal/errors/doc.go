// Package errors provides the structured error type used across monster-battle.
//
// Every error carries a Code, a user-facing Message, an optional Cause and
// optional metadata. Codes map onto gRPC status codes at the transport edge
// and onto HTTP statuses for the websocket/health endpoints.
//
// # Creating errors
//
//	err := errors.NotFoundf("species %q not found", name)
//	err := errors.FailedPrecondition("registry is missing condition definitions").
//	    WithMeta("missing", ids)
//
// # Wrapping
//
// Wrap keeps the code of a wrapped *Error and defaults to Internal otherwise:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return nil, errors.Wrap(err, "failed to load saved monster")
//	}
//
// # Layer guidelines
//
// Engine (internal/battle):
//   - Unknown ability, condition, species or move identifiers are configuration
//     errors: NotFound for lookups, FailedPrecondition for incomplete registries.
//   - Misses, blocked moves and vetoed statuses are normal outcomes and are
//     reported through narration events, never as errors.
//
// Repository layer:
//   - Return NotFound / AlreadyExists with the relevant ids in metadata.
//   - Wrap storage failures with context.
//
// Orchestrator layer:
//   - Validate inputs with InvalidArgument, check battle state with
//     FailedPrecondition, wrap repository errors.
//
// Handler layer:
//   - Convert with ToGRPCError (gRPC) or Code.HTTPStatus (HTTP).
package errors
