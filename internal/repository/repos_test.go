package repository

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"

	"github.com/nugrahsdhka/job-portal-api/internal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         glogger.Default.LogMode(glogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, gdb.AutoMigrate(&domain.User{}, &domain.Job{}, &domain.Application{}))
	return gdb
}

func TestUserRepoDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepo(newTestDB(t))

	require.NoError(t, repo.Create(ctx, &domain.User{Name: "A", Email: "a@mail.com", Role: domain.RoleApplicant}))
	err := repo.Create(ctx, &domain.User{Name: "B", Email: "a@mail.com", Role: domain.RoleApplicant})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

// The unique index, not the service-level lookup, is what actually
// stops a double apply.
func TestApplicationRepoUniquePair(t *testing.T) {
	ctx := context.Background()
	gdb := newTestDB(t)
	repo := NewApplicationRepo(gdb)

	require.NoError(t, repo.Create(ctx, &domain.Application{JobID: "j1", ApplicantID: "u1"}))
	err := repo.Create(ctx, &domain.Application{JobID: "j1", ApplicantID: "u1"})
	assert.ErrorIs(t, err, ErrDuplicateApplication)

	// same applicant on another job, and another applicant on the same
	// job, are both fine
	require.NoError(t, repo.Create(ctx, &domain.Application{JobID: "j2", ApplicantID: "u1"}))
	require.NoError(t, repo.Create(ctx, &domain.Application{JobID: "j1", ApplicantID: "u2"}))

	var count int64
	require.NoError(t, gdb.Model(&domain.Application{}).Where("job_id = ? AND applicant_id = ?", "j1", "u1").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestJobRepoListPreloadsEmployer(t *testing.T) {
	ctx := context.Background()
	gdb := newTestDB(t)
	users := NewUserRepo(gdb)
	jobs := NewJobRepo(gdb)

	emp := &domain.User{Name: "Boss", Email: "boss@mail.com", Role: domain.RoleEmployer, PasswordHash: "x"}
	require.NoError(t, users.Create(ctx, emp))
	require.NoError(t, jobs.Create(ctx, &domain.Job{Title: "Gopher", EmployerID: emp.ID}))

	got, err := jobs.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.NotNil(t, got[0].Employer)
	assert.Equal(t, "Boss", got[0].Employer.Name)
}
