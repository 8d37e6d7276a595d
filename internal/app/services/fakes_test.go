package services

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bridgelms/bridgelms/internal/app/models"
	"github.com/bridgelms/bridgelms/internal/app/models/dto"
	"github.com/bridgelms/bridgelms/internal/pkg/apperrors"
)

// memStore is a mutex-guarded in-memory implementation of every store
// interface. Its enrollment and attendance writes honor the same atomic
// contracts as the SQL repositories, so the services can be tested under
// concurrency without a database.
type memStore struct {
	mu sync.Mutex

	users         map[int64]*models.User
	courses       map[int64]*models.Course
	enrollments   []*models.Enrollment
	attendance    []*models.Attendance
	resources     []*models.Resource
	announcements []*models.Announcement

	nextUserID         int64
	nextCourseID       int64
	nextEnrollmentID   int64
	nextAttendanceID   int64
	nextResourceID     int64
	nextAnnouncementID int64

	// now lets tests control the attendance clock
	now func() time.Time
}

func newMemStore() *memStore {
	return &memStore{
		users:   make(map[int64]*models.User),
		courses: make(map[int64]*models.Course),
		now:     time.Now,
	}
}

// --- UserStore ---

func (s *memStore) Create(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}

	s.nextUserID++
	user.ID = s.nextUserID
	user.CreatedAt = time.Now()
	clone := *user
	s.users[user.ID] = &clone
	return nil
}

func (s *memStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (s *memStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (s *memStore) UpdateProfile(ctx context.Context, id int64, username, email, phone, bio *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}

	if email != nil {
		for otherID, u := range s.users {
			if otherID != id && u.Email == *email {
				return apperrors.ErrEmailAlreadyExists
			}
		}
		user.Email = *email
	}
	if username != nil {
		user.Username = *username
	}
	if phone != nil {
		user.Phone = *phone
	}
	if bio != nil {
		user.Bio = *bio
	}
	return nil
}

// addUser seeds a user directly, bypassing the email check
func (s *memStore) addUser(user *models.User) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextUserID++
	user.ID = s.nextUserID
	clone := *user
	s.users[user.ID] = &clone
	return user
}

// --- CourseStore ---

// courseStore wraps memStore so the Create methods of different interfaces
// don't collide on the same receiver.
type courseStore struct {
	*memStore
}

func (s courseStore) Create(ctx context.Context, course *models.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextCourseID++
	course.ID = s.nextCourseID
	course.CreatedAt = time.Now()
	clone := *course
	s.courses[course.ID] = &clone
	return nil
}

func (s courseStore) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	course, ok := s.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	clone := *course
	return &clone, nil
}

func (s courseStore) List(ctx context.Context, filter dto.CourseListFilter) ([]*models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*models.Course
	for _, c := range s.courses {
		if !c.IsActive {
			continue
		}
		if filter.Category != "" && !strings.EqualFold(c.Category, filter.Category) {
			continue
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(c.Title), needle) &&
				!strings.Contains(strings.ToLower(c.Description), needle) {
				continue
			}
		}
		clone := *c
		out = append(out, &clone)
	}

	if filter.Skip > 0 {
		if filter.Skip >= len(out) {
			return nil, nil
		}
		out = out[filter.Skip:]
	}
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (s courseStore) GetByTutorID(ctx context.Context, tutorID int64) ([]*models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*models.Course
	for _, c := range s.courses {
		if c.TutorID == tutorID {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (s courseStore) GetByLearnerID(ctx context.Context, learnerID int64) ([]*models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*models.Course
	for _, e := range s.enrollments {
		if e.LearnerID != learnerID {
			continue
		}
		if c, ok := s.courses[e.CourseID]; ok {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out, nil
}

// addCourse seeds a course directly
func (s *memStore) addCourse(course *models.Course) *models.Course {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextCourseID++
	course.ID = s.nextCourseID
	clone := *course
	s.courses[course.ID] = &clone
	return course
}

// --- EnrollmentStore ---

type enrollmentStore struct {
	*memStore
}

func (s enrollmentStore) Create(ctx context.Context, courseID, learnerID int64) (*models.Enrollment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	course, ok := s.courses[courseID]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}

	active := 0
	for _, e := range s.enrollments {
		if e.CourseID == courseID && e.LearnerID == learnerID {
			return nil, apperrors.ErrAlreadyEnrolled
		}
		if e.CourseID == courseID && e.Status == models.EnrollmentActive {
			active++
		}
	}
	if active >= course.MaxStudents {
		return nil, apperrors.ErrCourseFull
	}

	s.nextEnrollmentID++
	enrollment := &models.Enrollment{
		ID:         s.nextEnrollmentID,
		CourseID:   courseID,
		LearnerID:  learnerID,
		Status:     models.EnrollmentActive,
		EnrolledAt: time.Now(),
	}
	s.enrollments = append(s.enrollments, enrollment)
	clone := *enrollment
	return &clone, nil
}

func (s enrollmentStore) Exists(ctx context.Context, courseID, learnerID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.enrollments {
		if e.CourseID == courseID && e.LearnerID == learnerID {
			return true, nil
		}
	}
	return false, nil
}

func (s enrollmentStore) ActiveExists(ctx context.Context, courseID, learnerID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.enrollments {
		if e.CourseID == courseID && e.LearnerID == learnerID && e.Status == models.EnrollmentActive {
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) countActiveEnrollments(courseID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, e := range s.enrollments {
		if e.CourseID == courseID && e.Status == models.EnrollmentActive {
			count++
		}
	}
	return count
}

// --- AttendanceStore ---

type attendanceStore struct {
	*memStore
}

func (s attendanceStore) Create(ctx context.Context, courseID, learnerID int64) (*models.Attendance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	day := now.UTC().Truncate(24 * time.Hour)
	for _, a := range s.attendance {
		if a.CourseID == courseID && a.LearnerID == learnerID &&
			a.Date.UTC().Truncate(24*time.Hour).Equal(day) {
			return nil, apperrors.ErrAlreadyCheckedIn
		}
	}

	s.nextAttendanceID++
	attendance := &models.Attendance{
		ID:        s.nextAttendanceID,
		CourseID:  courseID,
		LearnerID: learnerID,
		Date:      now,
		Status:    models.AttendancePresent,
	}
	s.attendance = append(s.attendance, attendance)
	clone := *attendance
	return &clone, nil
}

func (s attendanceStore) ListByCourse(ctx context.Context, courseID int64) ([]*models.Attendance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*models.Attendance
	for _, a := range s.attendance {
		if a.CourseID == courseID {
			clone := *a
			out = append(out, &clone)
		}
	}
	sortAttendanceNewestFirst(out)
	return out, nil
}

func (s attendanceStore) ListByLearner(ctx context.Context, learnerID int64) ([]*models.Attendance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*models.Attendance
	for _, a := range s.attendance {
		if a.LearnerID == learnerID {
			clone := *a
			out = append(out, &clone)
		}
	}
	sortAttendanceNewestFirst(out)
	return out, nil
}

func (s attendanceStore) ListByTutor(ctx context.Context, tutorID int64) ([]*models.Attendance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*models.Attendance
	for _, a := range s.attendance {
		if c, ok := s.courses[a.CourseID]; ok && c.TutorID == tutorID {
			clone := *a
			out = append(out, &clone)
		}
	}
	sortAttendanceNewestFirst(out)
	return out, nil
}

// sortAttendanceNewestFirst mirrors the date DESC ordering of the SQL reads
func sortAttendanceNewestFirst(records []*models.Attendance) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.After(records[j].Date)
	})
}

// --- ResourceStore ---

type resourceStore struct {
	*memStore
}

func (s resourceStore) Create(ctx context.Context, resource *models.Resource) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextResourceID++
	resource.ID = s.nextResourceID
	resource.UploadedAt = time.Now()
	clone := *resource
	s.resources = append(s.resources, &clone)
	return nil
}

func (s resourceStore) ListByCourse(ctx context.Context, courseID int64) ([]*models.Resource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*models.Resource
	for _, r := range s.resources {
		if r.CourseID == courseID {
			clone := *r
			out = append(out, &clone)
		}
	}
	return out, nil
}

// --- AnnouncementStore ---

type announcementStore struct {
	*memStore
}

func (s announcementStore) Create(ctx context.Context, announcement *models.Announcement) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextAnnouncementID++
	announcement.ID = s.nextAnnouncementID
	announcement.CreatedAt = s.now()
	clone := *announcement
	s.announcements = append(s.announcements, &clone)
	return nil
}

// ListByCourse mirrors the is_important DESC, created_at DESC ordering of
// the SQL read
func (s announcementStore) ListByCourse(ctx context.Context, courseID int64) ([]*models.Announcement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*models.Announcement
	for _, a := range s.announcements {
		if a.CourseID == courseID {
			clone := *a
			out = append(out, &clone)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsImportant != out[j].IsImportant {
			return out[i].IsImportant
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
