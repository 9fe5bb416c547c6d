package services

import (
	"context"
	"encoding/json"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/findup-dz/findup-api/internal/app/models"
	"github.com/findup-dz/findup-api/internal/pkg/apperrors"
)

func newEnrollmentFixture(t *testing.T) (*EnrollmentService, *fakeUserRepo, *fakeFormationRepo, *fakeEnrollmentRepo) {
	t.Helper()
	users := newFakeUserRepo()
	formations := newFakeFormationRepo()
	enrollments := newFakeEnrollmentRepo()
	svc := NewEnrollmentService(enrollments, formations, users)
	return svc, users, formations, enrollments
}

func TestEnroll_Success(t *testing.T) {
	svc, users, formations, _ := newEnrollmentFixture(t)
	user := users.addUser(&models.User{Name: "Amine", Email: "amine@example.com"})
	formations.addFormation(&models.Formation{ID: 10, NumericID: 1, Title: "Dev Web"}, 101, 102)

	enrollment, err := svc.Enroll(context.Background(), user.ID, json.Number("1"))
	require.NoError(t, err)
	assert.Equal(t, user.ID, enrollment.UserID)
	assert.Equal(t, int64(10), enrollment.FormationID)
	assert.Equal(t, models.EnrollmentActive, enrollment.Status)
	assert.Zero(t, enrollment.Progress)
	assert.False(t, enrollment.StartDate.IsZero())
}

func TestEnroll_Duplicate(t *testing.T) {
	svc, users, formations, _ := newEnrollmentFixture(t)
	user := users.addUser(&models.User{Name: "Amine", Email: "amine@example.com"})
	formations.addFormation(&models.Formation{ID: 10, NumericID: 1})

	_, err := svc.Enroll(context.Background(), user.ID, json.Number("1"))
	require.NoError(t, err)

	_, err = svc.Enroll(context.Background(), user.ID, json.Number("1"))
	assert.ErrorIs(t, err, apperrors.ErrAlreadyEnrolled)
}

func TestEnroll_FormationNotFound(t *testing.T) {
	svc, users, _, _ := newEnrollmentFixture(t)
	user := users.addUser(&models.User{Name: "Amine", Email: "amine@example.com"})

	_, err := svc.Enroll(context.Background(), user.ID, json.Number("999"))
	assert.ErrorIs(t, err, apperrors.ErrFormationNotFound)
}

func TestEnroll_InvalidIdentifier(t *testing.T) {
	svc, users, formations, _ := newEnrollmentFixture(t)
	user := users.addUser(&models.User{Name: "Amine", Email: "amine@example.com"})
	formations.addFormation(&models.Formation{ID: 10, NumericID: 1})

	for _, raw := range []string{"-1", "0", "1.5", "abc"} {
		_, err := svc.Enroll(context.Background(), user.ID, json.Number(raw))
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed, "identifier %q", raw)
	}
}

func TestEnroll_UnknownAccount(t *testing.T) {
	svc, _, formations, _ := newEnrollmentFixture(t)
	formations.addFormation(&models.Formation{ID: 10, NumericID: 1})

	_, err := svc.Enroll(context.Background(), 777, json.Number("1"))
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestWithdraw_Success(t *testing.T) {
	svc, users, formations, enrollments := newEnrollmentFixture(t)
	user := users.addUser(&models.User{Name: "Amine", Email: "amine@example.com"})
	formations.addFormation(&models.Formation{ID: 10, NumericID: 1})

	enrollment, err := svc.Enroll(context.Background(), user.ID, json.Number("1"))
	require.NoError(t, err)

	require.NoError(t, svc.Withdraw(context.Background(), user.ID, enrollment.ID))

	exists, err := enrollments.Exists(context.Background(), user.ID, 10)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestWithdraw_NotOwned(t *testing.T) {
	svc, users, formations, _ := newEnrollmentFixture(t)
	owner := users.addUser(&models.User{Name: "Amine", Email: "amine@example.com"})
	other := users.addUser(&models.User{Name: "Lina", Email: "lina@example.com"})
	formations.addFormation(&models.Formation{ID: 10, NumericID: 1})

	enrollment, err := svc.Enroll(context.Background(), owner.ID, json.Number("1"))
	require.NoError(t, err)

	// A foreign enrollment reads as missing, not forbidden.
	err = svc.Withdraw(context.Background(), other.ID, enrollment.ID)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestWithdraw_Missing(t *testing.T) {
	svc, users, _, _ := newEnrollmentFixture(t)
	user := users.addUser(&models.User{Name: "Amine", Email: "amine@example.com"})

	err := svc.Withdraw(context.Background(), user.ID, 12345)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestWithdraw_InvalidIdentifier(t *testing.T) {
	svc, _, _, _ := newEnrollmentFixture(t)

	err := svc.Withdraw(context.Background(), 1, 0)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestListRecent_CapsAtFive(t *testing.T) {
	svc, users, formations, _ := newEnrollmentFixture(t)
	user := users.addUser(&models.User{Name: "Amine", Email: "amine@example.com"})
	for i := int64(1); i <= 7; i++ {
		formations.addFormation(&models.Formation{ID: i, NumericID: i})
		_, err := svc.Enroll(context.Background(), user.ID, json.Number(strconv.FormatInt(i, 10)))
		require.NoError(t, err)
	}

	items, err := svc.ListRecent(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Len(t, items, RecentItemsLimit)
}
