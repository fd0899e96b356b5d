package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/taskboard/internal/dbx"
	"github.com/dmitrijs2005/taskboard/internal/server/models"
	"github.com/dmitrijs2005/taskboard/internal/server/repositories/tasks"
	"github.com/dmitrijs2005/taskboard/internal/server/repositories/users"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) *sql.DB {
	t.Helper()
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// --- fakes ---

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	getOut *models.User
	getErr error

	lastCreated *models.User
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	f.lastCreated = u
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	u.ID = 1
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

type fakeTasksRepo struct {
	listOut []*models.Task
	listErr error

	createErr error
	updateOut *models.Task
	updateErr error
	deleteErr error

	lastCreated *models.Task
	lastUpdated *models.Task
	lastOwner   int64
	lastTaskID  int64
}

func (f *fakeTasksRepo) ListByUser(ctx context.Context, userID int64) ([]*models.Task, error) {
	f.lastOwner = userID
	return f.listOut, f.listErr
}

func (f *fakeTasksRepo) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	f.lastCreated = task
	if f.createErr != nil {
		return nil, f.createErr
	}
	task.ID = 5
	return task, nil
}

func (f *fakeTasksRepo) Update(ctx context.Context, task *models.Task) (*models.Task, error) {
	f.lastUpdated = task
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if f.updateOut != nil {
		return f.updateOut, nil
	}
	return task, nil
}

func (f *fakeTasksRepo) Delete(ctx context.Context, userID int64, taskID int64) error {
	f.lastOwner = userID
	f.lastTaskID = taskID
	return f.deleteErr
}

type fakeManager struct {
	usersRepo *fakeUsersRepo
	tasksRepo *fakeTasksRepo
}

func (f *fakeManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (f *fakeManager) Users(dbx.DBTX) users.Repository             { return f.usersRepo }
func (f *fakeManager) Tasks(dbx.DBTX) tasks.Repository             { return f.tasksRepo }
