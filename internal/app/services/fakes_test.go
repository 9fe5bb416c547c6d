package services

import (
	"context"
	"time"

	"github.com/findup-dz/findup-api/internal/app/models"
	"github.com/findup-dz/findup-api/internal/pkg/apperrors"
)

// In-memory repository fakes. They implement the repository interfaces with
// the same error semantics as the real implementations so services can be
// tested without a database.

type fakeUserRepo struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*models.User{}, nextID: 1}
}

func (r *fakeUserRepo) addUser(u *models.User) *models.User {
	if u.ID == 0 {
		u.ID = r.nextID
	}
	if u.ID >= r.nextID {
		r.nextID = u.ID + 1
	}
	r.users[u.ID] = u
	return u
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) (int64, error) {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return 0, apperrors.ErrEmailAlreadyExists
		}
	}
	user.CreatedAt = time.Now()
	r.addUser(user)
	return user.ID, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, user := range r.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) UpdateProfile(_ context.Context, userID int64, upd *models.ProfileUpdate) error {
	user, ok := r.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	if upd.Name != nil {
		user.Name = *upd.Name
	}
	if upd.Bio != nil {
		user.Bio = upd.Bio
	}
	if upd.Location != nil {
		user.Location = upd.Location
	}
	return nil
}

type fakeFormationRepo struct {
	formations map[int64]*models.Formation // keyed by NumericID
	moduleIDs  map[int64][]int64           // keyed by storage id
}

func newFakeFormationRepo() *fakeFormationRepo {
	return &fakeFormationRepo{
		formations: map[int64]*models.Formation{},
		moduleIDs:  map[int64][]int64{},
	}
}

func (r *fakeFormationRepo) addFormation(f *models.Formation, moduleIDs ...int64) *models.Formation {
	r.formations[f.NumericID] = f
	r.moduleIDs[f.ID] = moduleIDs
	return f
}

func (r *fakeFormationRepo) GetByNumericID(_ context.Context, numericID int64) (*models.Formation, error) {
	return r.formations[numericID], nil
}

func (r *fakeFormationRepo) GetModules(_ context.Context, formationID int64) ([]models.FormationModule, error) {
	var modules []models.FormationModule
	for _, id := range r.moduleIDs[formationID] {
		modules = append(modules, models.FormationModule{ID: id, FormationID: formationID})
	}
	return modules, nil
}

func (r *fakeFormationRepo) GetModuleIDs(_ context.Context, formationID int64) ([]int64, error) {
	return r.moduleIDs[formationID], nil
}

func (r *fakeFormationRepo) List(_ context.Context, _, _, _ *string, _ uint64, _ int) ([]*models.Formation, int64, error) {
	var out []*models.Formation
	for _, f := range r.formations {
		if f.IsPublished {
			out = append(out, f)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeFormationRepo) Create(_ context.Context, f *models.Formation) (int64, error) {
	f.ID = int64(len(r.formations) + 1)
	f.NumericID = f.ID
	r.addFormation(f)
	return f.ID, nil
}

func (r *fakeFormationRepo) Update(_ context.Context, numericID int64, _ *models.FormationUpdate) error {
	if _, ok := r.formations[numericID]; !ok {
		return apperrors.ErrFormationNotFound
	}
	return nil
}

func (r *fakeFormationRepo) Delete(_ context.Context, numericID int64) error {
	if _, ok := r.formations[numericID]; !ok {
		return apperrors.ErrFormationNotFound
	}
	delete(r.formations, numericID)
	return nil
}

type fakeJobRepo struct {
	jobs map[int64]*models.Job // keyed by NumericID
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: map[int64]*models.Job{}}
}

func (r *fakeJobRepo) addJob(j *models.Job) *models.Job {
	r.jobs[j.NumericID] = j
	return j
}

func (r *fakeJobRepo) GetByNumericID(_ context.Context, numericID int64) (*models.Job, error) {
	return r.jobs[numericID], nil
}

func (r *fakeJobRepo) List(_ context.Context, _, _, _, _ *string, _ *bool, _ uint64, _ int) ([]*models.Job, int64, error) {
	var out []*models.Job
	for _, j := range r.jobs {
		if j.IsActive {
			out = append(out, j)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeJobRepo) Create(_ context.Context, j *models.Job) (int64, error) {
	j.ID = int64(len(r.jobs) + 1)
	j.NumericID = j.ID
	r.addJob(j)
	return j.ID, nil
}

func (r *fakeJobRepo) IncrementViews(_ context.Context, id int64) error {
	for _, j := range r.jobs {
		if j.ID == id {
			j.Views++
		}
	}
	return nil
}

func (r *fakeJobRepo) Update(_ context.Context, numericID int64, _ *models.JobUpdate) error {
	if _, ok := r.jobs[numericID]; !ok {
		return apperrors.ErrJobNotFound
	}
	return nil
}

func (r *fakeJobRepo) Delete(_ context.Context, numericID int64) error {
	if _, ok := r.jobs[numericID]; !ok {
		return apperrors.ErrJobNotFound
	}
	delete(r.jobs, numericID)
	return nil
}

type fakeEnrollmentRepo struct {
	enrollments map[int64]*models.Enrollment
	moduleSeeds map[int64][]int64
	nextID      int64
}

func newFakeEnrollmentRepo() *fakeEnrollmentRepo {
	return &fakeEnrollmentRepo{
		enrollments: map[int64]*models.Enrollment{},
		moduleSeeds: map[int64][]int64{},
		nextID:      1,
	}
}

func (r *fakeEnrollmentRepo) Exists(_ context.Context, userID, formationID int64) (bool, error) {
	for _, e := range r.enrollments {
		if e.UserID == userID && e.FormationID == formationID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeEnrollmentRepo) Create(ctx context.Context, enrollment *models.Enrollment, moduleIDs []int64) error {
	if exists, _ := r.Exists(ctx, enrollment.UserID, enrollment.FormationID); exists {
		return apperrors.ErrAlreadyEnrolled
	}
	enrollment.ID = r.nextID
	r.nextID++
	enrollment.StartDate = time.Now()
	enrollment.CreatedAt = enrollment.StartDate
	enrollment.UpdatedAt = enrollment.StartDate
	r.enrollments[enrollment.ID] = enrollment
	r.moduleSeeds[enrollment.ID] = moduleIDs
	return nil
}

func (r *fakeEnrollmentRepo) DeleteOwned(_ context.Context, id, userID int64) error {
	e, ok := r.enrollments[id]
	if !ok || e.UserID != userID {
		return apperrors.ErrResourceNotFound
	}
	delete(r.enrollments, id)
	return nil
}

func (r *fakeEnrollmentRepo) ListByUser(_ context.Context, userID int64, status *string, _ uint64, _ int) ([]*models.EnrollmentListItem, int64, error) {
	var out []*models.EnrollmentListItem
	for _, e := range r.enrollments {
		if e.UserID != userID {
			continue
		}
		if status != nil && string(e.Status) != *status {
			continue
		}
		out = append(out, &models.EnrollmentListItem{Enrollment: *e})
	}
	return out, int64(len(out)), nil
}

func (r *fakeEnrollmentRepo) ListRecentByUser(ctx context.Context, userID int64, limit int) ([]*models.EnrollmentListItem, error) {
	items, _, err := r.ListByUser(ctx, userID, nil, 0, limit)
	if err != nil {
		return nil, err
	}
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

type fakeApplicationRepo struct {
	applications map[int64]*models.Application
	nextID       int64
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{applications: map[int64]*models.Application{}, nextID: 1}
}

func (r *fakeApplicationRepo) Exists(_ context.Context, userID, jobID int64) (bool, error) {
	for _, a := range r.applications {
		if a.UserID == userID && a.JobID == jobID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeApplicationRepo) Create(ctx context.Context, application *models.Application) error {
	if exists, _ := r.Exists(ctx, application.UserID, application.JobID); exists {
		return apperrors.ErrAlreadyApplied
	}
	application.ID = r.nextID
	r.nextID++
	application.AppliedAt = time.Now()
	application.UpdatedAt = application.AppliedAt
	r.applications[application.ID] = application
	return nil
}

func (r *fakeApplicationRepo) DeleteOwned(_ context.Context, id, userID int64) error {
	a, ok := r.applications[id]
	if !ok || a.UserID != userID {
		return apperrors.ErrResourceNotFound
	}
	delete(r.applications, id)
	return nil
}

func (r *fakeApplicationRepo) ListByUser(_ context.Context, userID int64, status *string, _ uint64, _ int) ([]*models.ApplicationListItem, int64, error) {
	var out []*models.ApplicationListItem
	for _, a := range r.applications {
		if a.UserID != userID {
			continue
		}
		if status != nil && string(a.Status) != *status {
			continue
		}
		out = append(out, &models.ApplicationListItem{Application: *a})
	}
	return out, int64(len(out)), nil
}

func (r *fakeApplicationRepo) ListRecentByUser(ctx context.Context, userID int64, limit int) ([]*models.ApplicationListItem, error) {
	items, _, err := r.ListByUser(ctx, userID, nil, 0, limit)
	if err != nil {
		return nil, err
	}
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}
