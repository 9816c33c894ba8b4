// Package services contains domain services that operate across
// aggregates. Currently that is the AuthorizationPolicy: the pure decision
// functions governing who may create, read, mutate or cancel orders and
// products. Keeping the policy here, outside the aggregates, lets the use
// cases consult it against already-loaded entities and turn a denial into
// a forbidden outcome before any mutation happens.
package services
