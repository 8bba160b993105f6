// Package monster holds the immutable definitions a battle is built from:
// species, move definitions, the elemental type chart, and the closed
// identifier sets for stats, abilities and conditions.
//
// Nothing in this package mutates after load. Runtime state (hit points,
// stat stages, status slots, remaining PP) lives in internal/battle.
package monster
