// Package workflow implements the status lifecycle engine: the transition
// graph of legal status changes per entity kind, the role permission table,
// per-status dwell-time policy, entity-specific precondition guards, and the
// validator that composes them into a single accept/reject decision.
//
// The engine is stateless. Every table is static data built at construction,
// every operation is a pure function of its inputs, and nothing here touches
// persistence. Callers own the read-validate-write cycle against the store,
// including the conditional status update that guards against stale reads.
//
// The graph deliberately stays coarse: edges describe theoretical
// reachability and carry the business-rule text shown to operators.
// Precondition guards layer the stricter domain rules on top, so an edge can
// exist while a particular request along it is still rejected.
package workflow
