package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/findup-dz/findup-api/internal/app/models"
	"github.com/findup-dz/findup-api/internal/pkg/apperrors"
)

func newApplicationFixture(t *testing.T) (*ApplicationService, *fakeUserRepo, *fakeJobRepo, *fakeApplicationRepo) {
	t.Helper()
	users := newFakeUserRepo()
	jobs := newFakeJobRepo()
	applications := newFakeApplicationRepo()
	svc := NewApplicationService(applications, jobs, users)
	return svc, users, jobs, applications
}

func TestApply_Success(t *testing.T) {
	svc, users, jobs, _ := newApplicationFixture(t)
	user := users.addUser(&models.User{Name: "Amine", Email: "amine@example.com"})
	jobs.addJob(&models.Job{ID: 20, NumericID: 7, Title: "Backend", IsActive: true})

	letter := "Motivé et disponible"
	application, err := svc.Apply(context.Background(), user.ID, json.Number("7"), &letter)
	require.NoError(t, err)
	assert.Equal(t, user.ID, application.UserID)
	assert.Equal(t, int64(20), application.JobID)
	assert.Equal(t, models.ApplicationPending, application.Status)
	require.NotNil(t, application.CoverLetter)
	assert.Equal(t, letter, *application.CoverLetter)
	assert.False(t, application.AppliedAt.IsZero())
}

func TestApply_Duplicate(t *testing.T) {
	svc, users, jobs, _ := newApplicationFixture(t)
	user := users.addUser(&models.User{Name: "Amine", Email: "amine@example.com"})
	jobs.addJob(&models.Job{ID: 20, NumericID: 7, IsActive: true})

	_, err := svc.Apply(context.Background(), user.ID, json.Number("7"), nil)
	require.NoError(t, err)

	_, err = svc.Apply(context.Background(), user.ID, json.Number("7"), nil)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyApplied)
}

func TestApply_JobNotFound(t *testing.T) {
	svc, users, _, _ := newApplicationFixture(t)
	user := users.addUser(&models.User{Name: "Amine", Email: "amine@example.com"})

	_, err := svc.Apply(context.Background(), user.ID, json.Number("404"), nil)
	assert.ErrorIs(t, err, apperrors.ErrJobNotFound)
}

func TestApply_InvalidIdentifier(t *testing.T) {
	svc, users, _, _ := newApplicationFixture(t)
	user := users.addUser(&models.User{Name: "Amine", Email: "amine@example.com"})

	for _, raw := range []string{"-7", "0", "2.5", "abc"} {
		_, err := svc.Apply(context.Background(), user.ID, json.Number(raw), nil)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed, "identifier %q", raw)
	}
}

func TestApply_TwoUsersSameJob(t *testing.T) {
	svc, users, jobs, _ := newApplicationFixture(t)
	first := users.addUser(&models.User{Name: "Amine", Email: "amine@example.com"})
	second := users.addUser(&models.User{Name: "Lina", Email: "lina@example.com"})
	jobs.addJob(&models.Job{ID: 20, NumericID: 7, IsActive: true})

	_, err := svc.Apply(context.Background(), first.ID, json.Number("7"), nil)
	require.NoError(t, err)

	// Uniqueness is per (user, job), so another account can still apply.
	_, err = svc.Apply(context.Background(), second.ID, json.Number("7"), nil)
	require.NoError(t, err)
}

func TestWithdrawApplication_NotOwned(t *testing.T) {
	svc, users, jobs, _ := newApplicationFixture(t)
	owner := users.addUser(&models.User{Name: "Amine", Email: "amine@example.com"})
	other := users.addUser(&models.User{Name: "Lina", Email: "lina@example.com"})
	jobs.addJob(&models.Job{ID: 20, NumericID: 7, IsActive: true})

	application, err := svc.Apply(context.Background(), owner.ID, json.Number("7"), nil)
	require.NoError(t, err)

	err = svc.Withdraw(context.Background(), other.ID, application.ID)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestWithdrawApplication_Success(t *testing.T) {
	svc, users, jobs, applications := newApplicationFixture(t)
	user := users.addUser(&models.User{Name: "Amine", Email: "amine@example.com"})
	jobs.addJob(&models.Job{ID: 20, NumericID: 7, IsActive: true})

	application, err := svc.Apply(context.Background(), user.ID, json.Number("7"), nil)
	require.NoError(t, err)

	require.NoError(t, svc.Withdraw(context.Background(), user.ID, application.ID))

	exists, err := applications.Exists(context.Background(), user.ID, 20)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestListApplications_StatusFilter(t *testing.T) {
	svc, users, jobs, applications := newApplicationFixture(t)
	user := users.addUser(&models.User{Name: "Amine", Email: "amine@example.com"})
	jobs.addJob(&models.Job{ID: 20, NumericID: 7, IsActive: true})
	jobs.addJob(&models.Job{ID: 21, NumericID: 8, IsActive: true})

	first, err := svc.Apply(context.Background(), user.ID, json.Number("7"), nil)
	require.NoError(t, err)
	_, err = svc.Apply(context.Background(), user.ID, json.Number("8"), nil)
	require.NoError(t, err)

	applications.applications[first.ID].Status = models.ApplicationAccepted

	accepted := "accepted"
	items, total, err := svc.List(context.Background(), user.ID, &accepted, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, models.ApplicationAccepted, items[0].Status)
}
