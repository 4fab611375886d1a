package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"

	"github.com/nugrahsdhka/job-portal-api/internal/domain"
	"github.com/nugrahsdhka/job-portal-api/internal/repository"
	"github.com/nugrahsdhka/job-portal-api/pkg/auth"
)

type fakeNotifier struct{ messages []string }

func (f *fakeNotifier) Send(m string) { f.messages = append(f.messages, m) }

type env struct {
	db     *gorm.DB
	users  *repository.UserRepo
	jobs   *repository.JobRepo
	apps   *repository.ApplicationRepo
	auth   *AuthSvc
	jobSvc *JobSvc
	appSvc *ApplicationSvc
	notify *fakeNotifier
}

func newEnv(t *testing.T) *env {
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

	users := repository.NewUserRepo(gdb)
	jobs := repository.NewJobRepo(gdb)
	apps := repository.NewApplicationRepo(gdb)
	notify := &fakeNotifier{}
	return &env{
		db:     gdb,
		users:  users,
		jobs:   jobs,
		apps:   apps,
		auth:   NewAuthSvc(users, auth.NewTokens("test-secret", time.Hour)),
		jobSvc: NewJobSvc(jobs),
		appSvc: NewApplicationSvc(jobs, apps, notify),
		notify: notify,
	}
}
