// Package status defines the canonical status vocabulary of the lifecycle
// engine: the two entity kinds, the named lifecycle states of each, the
// display metadata registry, and the actor roles that request transitions.
//
// The package is pure data and lookups. Which transitions are legal, who may
// perform them, and what they trigger lives in the workflow package.
package status
