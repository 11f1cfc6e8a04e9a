package engine

import "github.com/KirkDiggler/arcanum-api/internal/entities"

// HealthPolicy decides whether current hit points are bounded by maximum.
type HealthPolicy string

// Health policies
const (
	// HealthPolicyUnclamped stores current health as given, allowing values
	// above maximum for temporary hit point house rules.
	HealthPolicyUnclamped HealthPolicy = "unclamped"
	// HealthPolicyClamp keeps current health within [0, maximum].
	HealthPolicyClamp HealthPolicy = "clamp"
)

// HealthPolicies lists the accepted policy names.
var HealthPolicies = []string{string(HealthPolicyUnclamped), string(HealthPolicyClamp)}

// Valid reports whether p is a known policy.
func (p HealthPolicy) Valid() bool {
	return p == HealthPolicyUnclamped || p == HealthPolicyClamp
}

// Apply returns state with current health adjusted to the policy.
func (p HealthPolicy) Apply(state entities.GameState) entities.GameState {
	if p != HealthPolicyClamp {
		return state
	}
	if state.CurrentHealth > state.MaximumHealth {
		state.CurrentHealth = state.MaximumHealth
	}
	if state.CurrentHealth < 0 {
		state.CurrentHealth = 0
	}
	return state
}
