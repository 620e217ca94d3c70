// Package tax classifies billing jurisdictions and computes document values.
package tax

import "strings"

// DefaultState is the jurisdiction used when an address names no known state.
const DefaultState = "Uttar Pradesh"

// AllStates is the state filter value that matches every record.
const AllStates = "All States"

// regionalUP lists sub-region names that mean Uttar Pradesh.
var regionalUP = []string{"East UP", "West UP", "North UP", "South UP", "Central UP"}

// otherStates is checked in order; the first substring hit wins.
var otherStates = []string{
	"Madhya Pradesh",
	"Rajasthan",
	"Bihar",
	"Maharashtra",
	"Gujarat",
	"Chhattisgarh",
	"Uttarakhand",
	"Punjab",
	"Haryana",
}

// ClassifyState returns the state an address belongs to. It never fails:
// addresses naming no known state resolve to DefaultState.
func ClassifyState(address string) string {
	lower := strings.ToLower(address)
	for _, r := range regionalUP {
		if strings.Contains(lower, strings.ToLower(r)) {
			return DefaultState
		}
	}
	for _, s := range otherStates {
		if strings.Contains(lower, strings.ToLower(s)) {
			return s
		}
	}
	return DefaultState
}

// knownStates returns every state ClassifyState can produce, default first.
func knownStates() []string {
	states := make([]string, 0, len(otherStates)+1)
	states = append(states, DefaultState)
	return append(states, otherStates...)
}

// MatchesStateFilter reports whether state passes filter. An empty filter or
// AllStates matches everything.
func MatchesStateFilter(state, filter string) bool {
	if filter == "" || filter == AllStates {
		return true
	}
	return strings.EqualFold(state, filter)
}
