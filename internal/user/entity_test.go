// Heftly | 2026
// entity_test.go

package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleAdmin))
	assert.True(t, ValidRole(RoleTrainer))
	assert.True(t, ValidRole(RoleTrainee))
	assert.False(t, ValidRole("manager"))
	assert.False(t, ValidRole(""))
}

func TestRolePredicates(t *testing.T) {
	assert.True(t, (&User{Role: RoleTrainee}).IsTrainee())
	assert.False(t, (&User{Role: RoleTrainee}).IsTrainer())
	assert.True(t, (&User{Role: RoleTrainer}).IsTrainer())
	assert.False(t, (&User{Role: RoleAdmin}).IsTrainee())
}

func TestCreatedAtLayout(t *testing.T) {
	stamp := time.Date(2026, 8, 29, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "29.08.2026", stamp.Format(CreatedAtLayout))

	parsed, err := time.Parse(CreatedAtLayout, "01.09.2023")
	assert.NoError(t, err)
	assert.Equal(t, time.September, parsed.Month())
}
