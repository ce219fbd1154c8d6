package service

import (
	"context"
	"course_admin_backend/internal/model"
	"course_admin_backend/internal/repository"
	"course_admin_backend/internal/util"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeInviteSender struct {
	err   error
	sent  []string
	codes []string
}

func (f *fakeInviteSender) SendInvite(ctx context.Context, name, email, code string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, email)
	f.codes = append(f.codes, code)
	return nil
}

func newWorkerService(t *testing.T, mail InviteSender) (*WorkerService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Worker{}))

	t.Cleanup(func() {
		db.Exec("DELETE FROM workers")
	})

	return NewWorkerService(repository.NewWorkerRepository(db), mail), db
}

func TestWorkerService_Create_MailBeforeInsert(t *testing.T) {
	mail := &fakeInviteSender{}
	svc, db := newWorkerService(t, mail)

	worker, err := svc.Create(context.Background(), &WorkerInput{
		Name:  "Ada",
		Email: "ada@example.com",
		Phone: "555-0100",
	})
	require.NoError(t, err)

	assert.Equal(t, model.WorkerPending, worker.Status)
	assert.Len(t, worker.Code, 6)
	require.Len(t, mail.sent, 1)
	assert.Equal(t, "ada@example.com", mail.sent[0])
	assert.Equal(t, worker.Code, mail.codes[0])

	var count int64
	db.Model(&model.Worker{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestWorkerService_Create_MailFailureMeansNoRow(t *testing.T) {
	mail := &fakeInviteSender{err: errors.New("smtp down")}
	svc, db := newWorkerService(t, mail)

	_, err := svc.Create(context.Background(), &WorkerInput{
		Name:  "Ada",
		Email: "ada@example.com",
	})
	require.Error(t, err)

	var count int64
	db.Model(&model.Worker{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestWorkerService_Create_DuplicateEmail(t *testing.T) {
	mail := &fakeInviteSender{}
	svc, _ := newWorkerService(t, mail)

	input := &WorkerInput{Name: "Ada", Email: "ada@example.com"}
	_, err := svc.Create(context.Background(), input)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), input)
	assert.ErrorIs(t, err, util.ErrEmailRegistered)
	assert.Len(t, mail.sent, 1)
}

func TestWorkerService_Update_EmailAndCodeImmutable(t *testing.T) {
	mail := &fakeInviteSender{}
	svc, _ := newWorkerService(t, mail)

	worker, err := svc.Create(context.Background(), &WorkerInput{
		Name:  "Ada",
		Email: "ada@example.com",
	})
	require.NoError(t, err)
	originalCode := worker.Code

	updated, err := svc.Update(worker.ID, &WorkerUpdate{
		Name:   "Ada L.",
		Status: model.WorkerActive,
	})
	require.NoError(t, err)

	assert.Equal(t, "Ada L.", updated.Name)
	assert.Equal(t, model.WorkerActive, updated.Status)
	assert.Equal(t, "ada@example.com", updated.Email)
	assert.Equal(t, originalCode, updated.Code)
}

func TestWorkerService_Delete_NotFound(t *testing.T) {
	svc, _ := newWorkerService(t, &fakeInviteSender{})
	assert.ErrorIs(t, svc.Delete(99), util.ErrWorkerNotFound)
}

func TestWorkerService_List_Search(t *testing.T) {
	mail := &fakeInviteSender{}
	svc, _ := newWorkerService(t, mail)

	_, err := svc.Create(context.Background(), &WorkerInput{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), &WorkerInput{Name: "Grace", Email: "grace@example.com"})
	require.NoError(t, err)

	workers, total, err := svc.List("grace", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, workers, 1)
	assert.Equal(t, "Grace", workers[0].Name)

	all, total, err := svc.List("", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, all, 2)
}
