package services

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appauth "github.com/bridgelms/bridgelms/internal/app/auth"
	"github.com/bridgelms/bridgelms/internal/app/models"
	"github.com/bridgelms/bridgelms/internal/app/models/dto"
	"github.com/bridgelms/bridgelms/internal/pkg/apperrors"
)

func newCourseServiceFixture(t *testing.T) (*CourseService, *memStore) {
	t.Helper()

	store := newMemStore()
	authz := appauth.NewAuthorizationService(appauth.NewPermissionTable(), courseStore{store})
	svc := NewCourseService(courseStore{store}, enrollmentStore{store}, store, authz, zerolog.Nop())
	return svc, store
}

func tutorCaller(store *memStore) appauth.Caller {
	tutor := store.addUser(&models.User{Username: "tutor", Email: "tutor@example.com", Role: models.RoleTutor})
	return appauth.Caller{ID: tutor.ID, Role: models.RoleTutor}
}

func learnerCaller(store *memStore, name string) appauth.Caller {
	learner := store.addUser(&models.User{Username: name, Email: name + "@example.com", Role: models.RoleLearner})
	return appauth.Caller{ID: learner.ID, Role: models.RoleLearner}
}

func TestCreateCourseDefaults(t *testing.T) {
	svc, store := newCourseServiceFixture(t)
	tutor := tutorCaller(store)

	course, err := svc.CreateCourse(context.Background(), tutor, &dto.CreateCourseRequest{
		Title:       "Algebra I",
		Description: "Foundations",
		Category:    "math",
	})
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxStudents, course.MaxStudents)
	assert.True(t, course.IsActive)
	assert.True(t, course.IsPublic)
	assert.Equal(t, tutor.ID, course.TutorID)
}

func TestCreateCourseLearnerForbidden(t *testing.T) {
	svc, store := newCourseServiceFixture(t)
	learner := learnerCaller(store, "eve")

	_, err := svc.CreateCourse(context.Background(), learner, &dto.CreateCourseRequest{
		Title: "Nope",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestCreateCourseRejectsNonPositiveCapacity(t *testing.T) {
	svc, store := newCourseServiceFixture(t)
	tutor := tutorCaller(store)

	zero := 0
	_, err := svc.CreateCourse(context.Background(), tutor, &dto.CreateCourseRequest{
		Title:       "Algebra I",
		MaxStudents: &zero,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestEnrollHappyPath(t *testing.T) {
	svc, store := newCourseServiceFixture(t)
	tutor := tutorCaller(store)
	learner := learnerCaller(store, "alice")

	course := store.addCourse(&models.Course{Title: "Go 101", MaxStudents: 10, TutorID: tutor.ID, IsActive: true})

	enrollment, err := svc.EnrollLearner(context.Background(), learner, course.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EnrollmentActive, enrollment.Status)
	assert.Equal(t, course.ID, enrollment.CourseID)
	assert.Equal(t, learner.ID, enrollment.LearnerID)
}

func TestEnrollTutorForbidden(t *testing.T) {
	svc, store := newCourseServiceFixture(t)
	tutor := tutorCaller(store)

	course := store.addCourse(&models.Course{Title: "Go 101", MaxStudents: 10, TutorID: tutor.ID, IsActive: true})

	_, err := svc.EnrollLearner(context.Background(), tutor, course.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestEnrollUnknownCourseNotFound(t *testing.T) {
	svc, store := newCourseServiceFixture(t)
	learner := learnerCaller(store, "alice")

	_, err := svc.EnrollLearner(context.Background(), learner, 999)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestEnrollInactiveCourseNotFound(t *testing.T) {
	svc, store := newCourseServiceFixture(t)
	tutor := tutorCaller(store)
	learner := learnerCaller(store, "alice")

	course := store.addCourse(&models.Course{Title: "Archived", MaxStudents: 10, TutorID: tutor.ID, IsActive: false})

	_, err := svc.EnrollLearner(context.Background(), learner, course.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestEnrollCourseFull(t *testing.T) {
	svc, store := newCourseServiceFixture(t)
	tutor := tutorCaller(store)
	alice := learnerCaller(store, "alice")
	bob := learnerCaller(store, "bob")

	course := store.addCourse(&models.Course{Title: "Tiny", MaxStudents: 1, TutorID: tutor.ID, IsActive: true})

	_, err := svc.EnrollLearner(context.Background(), alice, course.ID)
	require.NoError(t, err)

	_, err = svc.EnrollLearner(context.Background(), bob, course.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestSimultaneousEnrollsLastSeat(t *testing.T) {
	svc, store := newCourseServiceFixture(t)
	tutor := tutorCaller(store)
	alice := learnerCaller(store, "alice")
	bob := learnerCaller(store, "bob")

	course := store.addCourse(&models.Course{Title: "Tiny", MaxStudents: 1, TutorID: tutor.ID, IsActive: true})

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, caller := range []appauth.Caller{alice, bob} {
		wg.Add(1)
		go func(i int, caller appauth.Caller) {
			defer wg.Done()
			_, errs[i] = svc.EnrollLearner(context.Background(), caller, course.ID)
		}(i, caller)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, apperrors.ErrBadRequest, "the loser sees the capacity error")
	}
	assert.Equal(t, 1, succeeded, "both writers racing for the last seat must not both commit")
	assert.Equal(t, 1, store.countActiveEnrollments(course.ID))
}

func TestReEnrollFullCourseIsConflictNotCapacity(t *testing.T) {
	svc, store := newCourseServiceFixture(t)
	tutor := tutorCaller(store)
	alice := learnerCaller(store, "alice")

	course := store.addCourse(&models.Course{Title: "Tiny", MaxStudents: 1, TutorID: tutor.ID, IsActive: true})

	_, err := svc.EnrollLearner(context.Background(), alice, course.ID)
	require.NoError(t, err)

	// The course is now full, but the duplicate must win over the
	// capacity report.
	_, err = svc.EnrollLearner(context.Background(), alice, course.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestConcurrentEnrollmentNeverExceedsCapacity(t *testing.T) {
	svc, store := newCourseServiceFixture(t)
	tutor := tutorCaller(store)

	const capacity = 3
	const contenders = 20

	course := store.addCourse(&models.Course{Title: "Hot", MaxStudents: capacity, TutorID: tutor.ID, IsActive: true})

	callers := make([]appauth.Caller, contenders)
	for i := range callers {
		callers[i] = learnerCaller(store, fmt.Sprintf("learner%d", i))
	}

	var wg sync.WaitGroup
	results := make([]error, contenders)
	for i := range callers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = svc.EnrollLearner(context.Background(), callers[i], course.ID)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
		}
	}
	assert.Equal(t, capacity, succeeded, "exactly capacity enrollments must commit")
	assert.Equal(t, capacity, store.countActiveEnrollments(course.ID))
}

func TestListCoursesClampsPagination(t *testing.T) {
	svc, store := newCourseServiceFixture(t)
	tutor := tutorCaller(store)

	for i := 0; i < 30; i++ {
		store.addCourse(&models.Course{
			Title: fmt.Sprintf("Course %d", i), MaxStudents: 10, TutorID: tutor.ID, IsActive: true,
		})
	}

	courses, err := svc.ListCourses(context.Background(), dto.CourseListFilter{Limit: -5})
	require.NoError(t, err)
	assert.Len(t, courses, DefaultListLimit)

	courses, err = svc.ListCourses(context.Background(), dto.CourseListFilter{Limit: 10000})
	require.NoError(t, err)
	assert.Len(t, courses, DefaultListLimit, "oversized limits fall back to the default")
}

func TestMyCoursesByRole(t *testing.T) {
	svc, store := newCourseServiceFixture(t)
	tutor := tutorCaller(store)
	alice := learnerCaller(store, "alice")

	taught := store.addCourse(&models.Course{Title: "Taught", MaxStudents: 10, TutorID: tutor.ID, IsActive: true})
	store.addCourse(&models.Course{Title: "Other", MaxStudents: 10, TutorID: tutor.ID + 100, IsActive: true})

	_, err := svc.EnrollLearner(context.Background(), alice, taught.ID)
	require.NoError(t, err)

	tutorCourses, err := svc.MyCourses(context.Background(), tutor)
	require.NoError(t, err)
	require.Len(t, tutorCourses, 1)
	assert.Equal(t, taught.ID, tutorCourses[0].ID)

	learnerCourses, err := svc.MyCourses(context.Background(), alice)
	require.NoError(t, err)
	require.Len(t, learnerCourses, 1)
	assert.Equal(t, taught.ID, learnerCourses[0].ID)
}

func TestGetCourseTutorContact(t *testing.T) {
	svc, store := newCourseServiceFixture(t)
	tutor := tutorCaller(store)

	course := store.addCourse(&models.Course{Title: "Go 101", MaxStudents: 10, TutorID: tutor.ID, IsActive: true})

	contact, err := svc.GetCourseTutor(context.Background(), course.ID)
	require.NoError(t, err)
	assert.Equal(t, "tutor@example.com", contact.Email)

	_, err = svc.GetCourseTutor(context.Background(), 999)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}
