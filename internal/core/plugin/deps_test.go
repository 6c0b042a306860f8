package plugin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckDependencies_AllSatisfied(t *testing.T) {
	m := validMetadata("referral")
	m.Dependencies = []string{"user", "booking"}

	err := CheckDependencies(m, NewPresenceSet("user", "booking", "core"))
	assert.NoError(t, err)
}

func TestCheckDependencies_NoDependencies(t *testing.T) {
	m := validMetadata("deploy_vps")
	m.Dependencies = nil

	err := CheckDependencies(m, NewPresenceSet())
	assert.NoError(t, err, "a plugin without dependencies needs nothing present")
}

func TestCheckDependencies_ReportsAllMissingAtOnce(t *testing.T) {
	m := validMetadata("referral")
	m.Dependencies = []string{"user", "booking", "core"}

	err := CheckDependencies(m, NewPresenceSet("core"))

	var missing *MissingDependencyError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "referral", missing.Plugin)
	assert.Equal(t, []string{"user", "booking"}, missing.Missing,
		"every unsatisfied dependency should be reported, in declaration order")
}
