package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bridgelms/bridgelms/internal/app/models"
)

func TestAdminHoldsEveryPermission(t *testing.T) {
	table := NewPermissionTable()

	for _, perm := range []Permission{
		PermCreateCourse,
		PermEnrollCourses,
		PermPostAnnounce,
		PermSetReminders,
	} {
		assert.True(t, table.HasPermission(models.RoleAdmin, perm), "admin must hold %s", perm)
	}

	// Including permissions the table has never seen
	assert.True(t, table.HasPermission(models.RoleAdmin, Permission("launch_rockets")))
}

func TestTutorPermissions(t *testing.T) {
	table := NewPermissionTable()

	assert.True(t, table.HasPermission(models.RoleTutor, PermCreateCourse))
	assert.True(t, table.HasPermission(models.RoleTutor, PermViewLearners))
	assert.True(t, table.HasPermission(models.RoleTutor, PermUploadResources))
	assert.True(t, table.HasPermission(models.RoleTutor, PermVerifyAttendance))

	assert.False(t, table.HasPermission(models.RoleTutor, PermEnrollCourses))
	assert.False(t, table.HasPermission(models.RoleTutor, PermCheckAttendance))
}

func TestLearnerPermissions(t *testing.T) {
	table := NewPermissionTable()

	assert.True(t, table.HasPermission(models.RoleLearner, PermEnrollCourses))
	assert.True(t, table.HasPermission(models.RoleLearner, PermAccessResources))
	assert.True(t, table.HasPermission(models.RoleLearner, PermCheckAttendance))
	assert.True(t, table.HasPermission(models.RoleLearner, PermSetReminders))

	assert.False(t, table.HasPermission(models.RoleLearner, PermCreateCourse))
	assert.False(t, table.HasPermission(models.RoleLearner, PermPostAnnounce))
}

func TestUnknownRoleHasNothing(t *testing.T) {
	table := NewPermissionTable()

	assert.False(t, table.HasPermission(models.RoleType("ghost"), PermEnrollCourses))
}
