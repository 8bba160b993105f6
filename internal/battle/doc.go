// Package battle is the monster-battle rules engine.
//
// A Session owns two Combatants, a Field (weather) and a single rng.Source.
// Each move runs through ResolveMove in a fixed order: pre-move status gates,
// PP cost, hit determination, per-hit damage through the ability and weather
// modifier chain, then primary and secondary effects. The end-of-turn sweep
// ticks status conditions and weather.
//
// Abilities and Conditions are data-only bundles of optional hooks held by an
// immutable Registry. A missing hook is a no-op.
//
// Mutating operations take a *Turn and append Events to it instead of
// notifying observers. The Session aggregates those events into a pending
// queue that the presentation layer drains, and mirrors each one onto an
// rpg-toolkit event bus when one is configured.
package battle
