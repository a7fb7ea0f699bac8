package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	role, err := ParseRole("Company")
	require.NoError(t, err)
	assert.Equal(t, RoleCompany, role)

	role, err = ParseRole("User")
	require.NoError(t, err)
	assert.Equal(t, RoleUser, role)

	for _, bad := range []string{"", "company", "USER", "Admin"} {
		_, err := ParseRole(bad)
		assert.Error(t, err, "role %q should be rejected", bad)
	}
}

func TestJobEnumsValid(t *testing.T) {
	assert.True(t, ContractMandate.Valid())
	assert.False(t, ContractType("b2b").Valid())
	assert.True(t, JobModeHybrid.Valid())
	assert.False(t, JobMode("remote").Valid())
	assert.True(t, JobHoursElastic.Valid())
	assert.False(t, JobHours("night").Valid())
}
