package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/findup-dz/findup-api/internal/app/models"
	"github.com/findup-dz/findup-api/internal/app/repositories"
	"github.com/findup-dz/findup-api/internal/app/services"
	"github.com/findup-dz/findup-api/internal/middleware"
	"github.com/findup-dz/findup-api/internal/pkg/apperrors"
	"github.com/findup-dz/findup-api/internal/pkg/auth"
)

// Minimal in-memory repositories for exercising the HTTP surface.

type memUserRepo struct {
	users map[int64]*models.User
}

func (r *memUserRepo) Create(context.Context, *models.User) (int64, error) { return 0, nil }
func (r *memUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}
func (r *memUserRepo) GetByEmail(context.Context, string) (*models.User, error) {
	return nil, apperrors.ErrUserNotFound
}
func (r *memUserRepo) EmailExists(context.Context, string) (bool, error) { return false, nil }
func (r *memUserRepo) UpdateProfile(context.Context, int64, *models.ProfileUpdate) error {
	return nil
}

type memFormationRepo struct {
	formations map[int64]*models.Formation
}

func (r *memFormationRepo) GetByNumericID(_ context.Context, numericID int64) (*models.Formation, error) {
	return r.formations[numericID], nil
}
func (r *memFormationRepo) GetModules(context.Context, int64) ([]models.FormationModule, error) {
	return nil, nil
}
func (r *memFormationRepo) GetModuleIDs(context.Context, int64) ([]int64, error) { return nil, nil }
func (r *memFormationRepo) List(context.Context, *string, *string, *string, uint64, int) ([]*models.Formation, int64, error) {
	return nil, 0, nil
}
func (r *memFormationRepo) Create(context.Context, *models.Formation) (int64, error) { return 0, nil }
func (r *memFormationRepo) Update(context.Context, int64, *models.FormationUpdate) error {
	return nil
}
func (r *memFormationRepo) Delete(context.Context, int64) error { return nil }

type memEnrollmentRepo struct {
	enrollments map[int64]*models.Enrollment
	nextID      int64
}

func (r *memEnrollmentRepo) Exists(_ context.Context, userID, formationID int64) (bool, error) {
	for _, e := range r.enrollments {
		if e.UserID == userID && e.FormationID == formationID {
			return true, nil
		}
	}
	return false, nil
}
func (r *memEnrollmentRepo) Create(_ context.Context, enrollment *models.Enrollment, _ []int64) error {
	r.nextID++
	enrollment.ID = r.nextID
	enrollment.StartDate = time.Now()
	r.enrollments[enrollment.ID] = enrollment
	return nil
}
func (r *memEnrollmentRepo) DeleteOwned(_ context.Context, id, userID int64) error {
	e, ok := r.enrollments[id]
	if !ok || e.UserID != userID {
		return apperrors.ErrResourceNotFound
	}
	delete(r.enrollments, id)
	return nil
}
func (r *memEnrollmentRepo) ListByUser(_ context.Context, userID int64, _ *string, _ uint64, _ int) ([]*models.EnrollmentListItem, int64, error) {
	var out []*models.EnrollmentListItem
	for _, e := range r.enrollments {
		if e.UserID == userID {
			out = append(out, &models.EnrollmentListItem{Enrollment: *e})
		}
	}
	return out, int64(len(out)), nil
}
func (r *memEnrollmentRepo) ListRecentByUser(ctx context.Context, userID int64, limit int) ([]*models.EnrollmentListItem, error) {
	items, _, err := r.ListByUser(ctx, userID, nil, 0, limit)
	return items, err
}

var (
	_ repositories.IUserRepository       = (*memUserRepo)(nil)
	_ repositories.IFormationRepository  = (*memFormationRepo)(nil)
	_ repositories.IEnrollmentRepository = (*memEnrollmentRepo)(nil)
)

type enrollmentTestEnv struct {
	router      *gin.Engine
	jwtService  *auth.JWTService
	users       *memUserRepo
	enrollments *memEnrollmentRepo
}

func newEnrollmentTestEnv(t *testing.T) *enrollmentTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := &memUserRepo{users: map[int64]*models.User{
		1: {ID: 1, Name: "Amine", Email: "amine@example.com", Role: models.RoleUser},
	}}
	formations := &memFormationRepo{formations: map[int64]*models.Formation{
		1: {ID: 10, NumericID: 1, Title: "Dev Web", IsPublished: true},
	}}
	enrollments := &memEnrollmentRepo{enrollments: map[int64]*models.Enrollment{}}

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExpiry: time.Hour,
		TokenIssuer: "findup.test",
	})

	svc := services.NewEnrollmentService(enrollments, formations, users)
	ctrl := NewEnrollmentController(svc)

	router := gin.New()
	authenticated := middleware.JWTAuth(jwtService)
	router.POST("/api/v1/enrollments", authenticated, ctrl.Create)
	router.GET("/api/v1/enrollments", authenticated, ctrl.List)
	router.GET("/api/v1/users/formations", authenticated, ctrl.Recent)
	router.DELETE("/api/v1/users/formations", authenticated, ctrl.Withdraw)

	return &enrollmentTestEnv{
		router:      router,
		jwtService:  jwtService,
		users:       users,
		enrollments: enrollments,
	}
}

func (env *enrollmentTestEnv) token(t *testing.T, userID int64) string {
	t.Helper()
	token, _, err := env.jwtService.GenerateToken(env.users.users[userID])
	require.NoError(t, err)
	return token
}

func (env *enrollmentTestEnv) do(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

func TestEnrollmentEndpoints_RequireAuth(t *testing.T) {
	env := newEnrollmentTestEnv(t)

	for _, route := range []struct{ method, path string }{
		{http.MethodPost, "/api/v1/enrollments"},
		{http.MethodGet, "/api/v1/enrollments"},
		{http.MethodGet, "/api/v1/users/formations"},
		{http.MethodDelete, "/api/v1/users/formations?id=1"},
	} {
		rec := env.do(route.method, route.path, "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", route.method, route.path)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Contains(t, body, "error")
	}
}

func TestCreateEnrollment_Created(t *testing.T) {
	env := newEnrollmentTestEnv(t)

	rec := env.do(http.MethodPost, "/api/v1/enrollments", `{"formationId":1}`, env.token(t, 1))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var body struct {
		Message    string `json:"message"`
		Enrollment struct {
			ID     int64  `json:"id"`
			Status string `json:"status"`
		} `json:"enrollment"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotZero(t, body.Enrollment.ID)
	assert.Equal(t, "active", body.Enrollment.Status)
}

func TestCreateEnrollment_BadIdentifiers(t *testing.T) {
	env := newEnrollmentTestEnv(t)
	token := env.token(t, 1)

	for _, body := range []string{
		`{"formationId":"abc"}`,
		`{"formationId":-1}`,
		`{"formationId":0}`,
		`{}`,
	} {
		rec := env.do(http.MethodPost, "/api/v1/enrollments", body, token)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s -> %s", body, rec.Body.String())
	}
}

func TestCreateEnrollment_UnknownFormation(t *testing.T) {
	env := newEnrollmentTestEnv(t)

	rec := env.do(http.MethodPost, "/api/v1/enrollments", `{"formationId":999}`, env.token(t, 1))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateEnrollment_Duplicate(t *testing.T) {
	env := newEnrollmentTestEnv(t)
	token := env.token(t, 1)

	rec := env.do(http.MethodPost, "/api/v1/enrollments", `{"formationId":1}`, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(http.MethodPost, "/api/v1/enrollments", `{"formationId":1}`, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "already enrolled")
}

func TestListEnrollments_PaginatedShape(t *testing.T) {
	env := newEnrollmentTestEnv(t)
	token := env.token(t, 1)

	rec := env.do(http.MethodPost, "/api/v1/enrollments", `{"formationId":1}`, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(http.MethodGet, "/api/v1/enrollments", "", token)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Items      []json.RawMessage `json:"items"`
		Pagination struct {
			Total int64 `json:"total"`
			Page  int   `json:"page"`
			Limit int   `json:"limit"`
			Pages int   `json:"pages"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Items, 1)
	assert.Equal(t, int64(1), body.Pagination.Total)
	assert.Equal(t, 1, body.Pagination.Page)
	assert.Equal(t, 10, body.Pagination.Limit)
	assert.Equal(t, 1, body.Pagination.Pages)
}

func TestWithdrawEnrollment(t *testing.T) {
	env := newEnrollmentTestEnv(t)
	token := env.token(t, 1)

	rec := env.do(http.MethodPost, "/api/v1/enrollments", `{"formationId":1}`, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(http.MethodDelete, "/api/v1/users/formations?id=abc", "", token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(http.MethodDelete, "/api/v1/users/formations?id=999", "", token)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(http.MethodDelete, "/api/v1/users/formations?id=1", "", token)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(http.MethodDelete, "/api/v1/users/formations?id=1", "", token)
	assert.Equal(t, http.StatusNotFound, rec.Code, "second withdrawal reads as missing")
}
