package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/taskboard/internal/common"
	"github.com/dmitrijs2005/taskboard/internal/server/models"
	"github.com/dmitrijs2005/taskboard/internal/server/repositories/repomanager"
)

type TaskService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewTaskService(db *sql.DB, m repomanager.RepositoryManager) *TaskService {
	return &TaskService{
		db:          db,
		repomanager: m,
	}
}

// List returns the owner's tasks, newest first.
func (s *TaskService) List(ctx context.Context, userID int64) ([]*models.Task, error) {

	repo := s.repomanager.Tasks(s.db)

	result, err := repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing tasks: %w", err)
	}

	return result, nil
}

func (s *TaskService) Create(ctx context.Context, userID int64, title string, description string) (*models.Task, error) {

	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: Title is required", common.ErrorValidation)
	}

	task := &models.Task{
		UserID:      userID,
		Title:       title,
		Description: description,
		Status:      models.StatusPending,
	}

	repo := s.repomanager.Tasks(s.db)

	task, err := repo.Create(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("error creating task: %w", err)
	}

	return task, nil
}

// Update rewrites the task's mutable fields. Omitted description and status
// take the same defaults as Create. A task owned by a different account is
// reported as not found.
func (s *TaskService) Update(ctx context.Context, userID int64, taskID int64, title string, description string, status string) (*models.Task, error) {

	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: Title is required", common.ErrorValidation)
	}

	if status == "" {
		status = models.StatusPending
	}
	if !models.ValidStatus(status) {
		return nil, fmt.Errorf("%w: Status must be pending or completed", common.ErrorValidation)
	}

	task := &models.Task{
		ID:          taskID,
		UserID:      userID,
		Title:       title,
		Description: description,
		Status:      status,
	}

	repo := s.repomanager.Tasks(s.db)

	task, err := repo.Update(ctx, task)
	if err != nil {
		return nil, err
	}

	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, userID int64, taskID int64) error {

	repo := s.repomanager.Tasks(s.db)

	return repo.Delete(ctx, userID, taskID)
}
