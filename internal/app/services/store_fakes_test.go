package services

import (
	"context"
	"time"

	"github.com/oguzk/coursereg/internal/app/models"
	"github.com/oguzk/coursereg/internal/app/repositories"
)

// The fakes below hold request state in memory and mimic the ordering and
// error semantics of the pgx repositories.

type fakeCourse struct {
	Number string
	Name   string
}

type fakeRequestStore struct {
	courses map[int64]fakeCourse

	requests  map[int64]models.Request // keyed by request id
	byStudent map[int64]int64          // student id -> request id
	prefs     []models.RequestPreference

	nextRequestID int64
	nextPrefID    int64

	// replaceErr, when set, is returned by ReplacePreferences before any
	// state change, mimicking a failed transaction.
	replaceErr     error
	replaceCalls   int
	updateCalls    int
	supervisorOf   map[int64]int64 // student id -> supervisor id
	studentNames   map[int64]string
	studentEmails  map[int64]string
	submittedClock time.Time
}

func newFakeRequestStore() *fakeRequestStore {
	return &fakeRequestStore{
		courses:        map[int64]fakeCourse{},
		requests:       map[int64]models.Request{},
		byStudent:      map[int64]int64{},
		supervisorOf:   map[int64]int64{},
		studentNames:   map[int64]string{},
		studentEmails:  map[int64]string{},
		submittedClock: time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (f *fakeRequestStore) addCourse(id int64, number, name string) {
	f.courses[id] = fakeCourse{Number: number, Name: name}
}

// seedRequest installs a request with one pending preference per course id,
// bypassing the replace path.
func (f *fakeRequestStore) seedRequest(studentID int64, courseIDs ...int64) int64 {
	f.nextRequestID++
	requestID := f.nextRequestID
	f.submittedClock = f.submittedClock.Add(time.Minute)
	f.requests[requestID] = models.Request{
		ID:          requestID,
		StudentID:   studentID,
		SubmittedAt: f.submittedClock,
	}
	f.byStudent[studentID] = requestID
	for _, courseID := range courseIDs {
		f.nextPrefID++
		f.prefs = append(f.prefs, models.RequestPreference{
			ID:        f.nextPrefID,
			RequestID: requestID,
			CourseID:  courseID,
			Status:    models.StatusPending,
		})
	}
	return requestID
}

func (f *fakeRequestStore) setStatus(requestID, courseID int64, status models.PreferenceStatus) {
	for i := range f.prefs {
		if f.prefs[i].RequestID == requestID && f.prefs[i].CourseID == courseID {
			f.prefs[i].Status = status
		}
	}
}

func (f *fakeRequestStore) ReplacePreferences(ctx context.Context, studentID int64, choices []models.PreferenceChoice) (int64, error) {
	f.replaceCalls++
	if f.replaceErr != nil {
		return 0, f.replaceErr
	}

	if oldID, ok := f.byStudent[studentID]; ok {
		delete(f.requests, oldID)
		kept := f.prefs[:0]
		for _, p := range f.prefs {
			if p.RequestID != oldID {
				kept = append(kept, p)
			}
		}
		f.prefs = kept
	}

	requestID := f.seedRequest(studentID)
	for _, choice := range choices {
		f.nextPrefID++
		f.prefs = append(f.prefs, models.RequestPreference{
			ID:             f.nextPrefID,
			RequestID:      requestID,
			CourseID:       choice.CourseID,
			StudentComment: choice.Comment,
			Status:         models.StatusPending,
		})
	}
	return requestID, nil
}

func (f *fakeRequestStore) rowFor(p models.RequestPreference) models.PreferenceRow {
	req := f.requests[p.RequestID]
	course := f.courses[p.CourseID]
	return models.PreferenceRow{
		RequestID:      p.RequestID,
		SubmittedAt:    req.SubmittedAt,
		CourseID:       p.CourseID,
		CourseNumber:   course.Number,
		CourseName:     course.Name,
		StudentComment: p.StudentComment,
		Status:         p.Status,
	}
}

func (f *fakeRequestStore) GetRequestRows(ctx context.Context, requestID int64) ([]models.PreferenceRow, error) {
	rows := make([]models.PreferenceRow, 0)
	for _, p := range f.prefs {
		if p.RequestID == requestID {
			rows = append(rows, f.rowFor(p))
		}
	}
	return rows, nil
}

func (f *fakeRequestStore) GetRequestRowsForStudent(ctx context.Context, requestID, studentID int64) ([]models.PreferenceRow, error) {
	req, ok := f.requests[requestID]
	if !ok || req.StudentID != studentID {
		return []models.PreferenceRow{}, nil
	}
	return f.GetRequestRows(ctx, requestID)
}

func (f *fakeRequestStore) GetStudentRequestRows(ctx context.Context, studentID int64) ([]models.PreferenceRow, error) {
	rows := make([]models.PreferenceRow, 0)
	for _, p := range f.prefs {
		if f.requests[p.RequestID].StudentID == studentID {
			rows = append(rows, f.rowFor(p))
		}
	}
	return rows, nil
}

func (f *fakeRequestStore) FindPreference(ctx context.Context, requestID, courseID, studentID int64) (*models.RequestPreference, error) {
	req, ok := f.requests[requestID]
	if !ok || req.StudentID != studentID {
		return nil, repositories.ErrPreferenceNotFound
	}
	for _, p := range f.prefs {
		if p.RequestID == requestID && p.CourseID == courseID {
			pref := p
			return &pref, nil
		}
	}
	return nil, repositories.ErrPreferenceNotFound
}

func (f *fakeRequestStore) DeletePreference(ctx context.Context, preferenceID int64) error {
	for i, p := range f.prefs {
		if p.ID == preferenceID {
			f.prefs = append(f.prefs[:i], f.prefs[i+1:]...)
			return nil
		}
	}
	return repositories.ErrPreferenceNotFound
}

func (f *fakeRequestStore) UpdatePreferenceStatus(ctx context.Context, requestID, courseID int64, status models.PreferenceStatus) error {
	f.updateCalls++
	for i := range f.prefs {
		if f.prefs[i].RequestID == requestID && f.prefs[i].CourseID == courseID {
			f.prefs[i].Status = status
			return nil
		}
	}
	return repositories.ErrPreferenceNotFound
}

func (f *fakeRequestStore) GetPendingQueue(ctx context.Context, supervisorID int64) ([]models.SupervisorQueueRow, error) {
	rows := make([]models.SupervisorQueueRow, 0)
	for _, p := range f.prefs {
		req := f.requests[p.RequestID]
		if f.supervisorOf[req.StudentID] != supervisorID || p.Status != models.StatusPending {
			continue
		}
		course := f.courses[p.CourseID]
		rows = append(rows, models.SupervisorQueueRow{
			RequestID:      p.RequestID,
			SubmittedAt:    req.SubmittedAt,
			StudentID:      req.StudentID,
			StudentName:    f.studentNames[req.StudentID],
			StudentEmail:   f.studentEmails[req.StudentID],
			CourseID:       p.CourseID,
			CourseNumber:   course.Number,
			CourseName:     course.Name,
			StudentComment: p.StudentComment,
			Status:         p.Status,
		})
	}
	return rows, nil
}

func (f *fakeRequestStore) GetSupervisedStudentRows(ctx context.Context, supervisorID, studentID int64) ([]models.PreferenceRow, error) {
	if f.supervisorOf[studentID] != supervisorID {
		return []models.PreferenceRow{}, nil
	}
	return f.GetStudentRequestRows(ctx, studentID)
}

type fakeUserStore struct {
	students    map[string]*models.Student
	supervisors map[string]*models.Supervisor
	roster      map[int64][]models.StudentRosterRow
	nextID      int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		students:    map[string]*models.Student{},
		supervisors: map[string]*models.Supervisor{},
		roster:      map[int64][]models.StudentRosterRow{},
	}
}

func (f *fakeUserStore) EmailExists(ctx context.Context, email string) (bool, error) {
	if _, ok := f.students[email]; ok {
		return true, nil
	}
	_, ok := f.supervisors[email]
	return ok, nil
}

func (f *fakeUserStore) CreateStudent(ctx context.Context, student *models.Student) (*models.Student, error) {
	if exists, _ := f.EmailExists(ctx, student.Email); exists {
		return nil, repositories.ErrEmailExists
	}
	f.nextID++
	created := *student
	created.ID = f.nextID
	f.students[created.Email] = &created
	return &created, nil
}

func (f *fakeUserStore) CreateSupervisor(ctx context.Context, supervisor *models.Supervisor) (*models.Supervisor, error) {
	if exists, _ := f.EmailExists(ctx, supervisor.Email); exists {
		return nil, repositories.ErrEmailExists
	}
	f.nextID++
	created := *supervisor
	created.ID = f.nextID
	f.supervisors[created.Email] = &created
	return &created, nil
}

func (f *fakeUserStore) GetStudentByEmail(ctx context.Context, email string) (*models.Student, error) {
	student, ok := f.students[email]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return student, nil
}

func (f *fakeUserStore) GetSupervisorByEmail(ctx context.Context, email string) (*models.Supervisor, error) {
	supervisor, ok := f.supervisors[email]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return supervisor, nil
}

func (f *fakeUserStore) GetStudentRoster(ctx context.Context, supervisorID int64) ([]models.StudentRosterRow, error) {
	rows, ok := f.roster[supervisorID]
	if !ok {
		return []models.StudentRosterRow{}, nil
	}
	return rows, nil
}
