package tax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyState_AlwaysKnown(t *testing.T) {
	known := make(map[string]bool)
	for _, s := range knownStates() {
		known[s] = true
	}
	for _, addr := range []string{"", "xyz", "Kerala", "Tamil Nadu 600001", "UP", "Punjab", "haryana"} {
		got := ClassifyState(addr)
		assert.NotEmpty(t, got)
		assert.True(t, known[got], "unexpected state %q for %q", got, addr)
	}
}

func TestKnownStates_HaveJurisdiction(t *testing.T) {
	for _, s := range knownStates() {
		j := Lookup(s)
		assert.Equal(t, s, j.State)
		assert.NotEmpty(t, j.Entity.GSTIN, "state %q has no billing entity", s)
	}
}
