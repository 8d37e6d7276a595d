package auth

import (
	"github.com/bridgelms/bridgelms/internal/app/models"
)

// Permission names an action a role may perform
type Permission string

// Known permissions
const (
	PermCreateCourse     Permission = "create_course"
	PermManageOwnCourses Permission = "manage_own_courses"
	PermUploadResources  Permission = "upload_resources"
	PermCreateEvents     Permission = "create_events"
	PermVerifyAttendance Permission = "verify_attendance"
	PermPostAnnounce     Permission = "post_announcements"
	PermViewLearners     Permission = "view_learners"
	PermEnrollCourses    Permission = "enroll_courses"
	PermAccessResources  Permission = "access_resources"
	PermViewCalendar     Permission = "view_calendar"
	PermCheckAttendance  Permission = "check_attendance"
	PermViewAnnounce     Permission = "view_announcements"
	PermSetReminders     Permission = "set_reminders"
)

// PermissionTable maps roles to their permission sets. It is built once at
// process start and never mutated afterwards, so concurrent readers need no
// synchronization.
type PermissionTable struct {
	grants map[models.RoleType]map[Permission]struct{}
}

// NewPermissionTable builds the static role to permission-set table.
// Admin is not listed: it holds every permission implicitly (wildcard).
func NewPermissionTable() *PermissionTable {
	grant := func(perms ...Permission) map[Permission]struct{} {
		set := make(map[Permission]struct{}, len(perms))
		for _, p := range perms {
			set[p] = struct{}{}
		}
		return set
	}

	return &PermissionTable{
		grants: map[models.RoleType]map[Permission]struct{}{
			models.RoleTutor: grant(
				PermCreateCourse,
				PermManageOwnCourses,
				PermUploadResources,
				PermCreateEvents,
				PermVerifyAttendance,
				PermPostAnnounce,
				PermViewLearners,
			),
			models.RoleLearner: grant(
				PermEnrollCourses,
				PermAccessResources,
				PermViewCalendar,
				PermCheckAttendance,
				PermViewAnnounce,
				PermSetReminders,
			),
		},
	}
}

// HasPermission reports whether the role holds the permission. Admin holds
// every permission, including ones this process has never heard of.
func (t *PermissionTable) HasPermission(role models.RoleType, permission Permission) bool {
	if role == models.RoleAdmin {
		return true
	}

	set, ok := t.grants[role]
	if !ok {
		return false
	}
	_, ok = set[permission]
	return ok
}
