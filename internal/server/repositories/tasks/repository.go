package tasks

import (
	"context"

	"github.com/dmitrijs2005/taskboard/internal/server/models"
)

// Repository is the owner-scoped task store. Every method takes the owning
// account's id and applies it in the query itself, so a task that belongs
// to someone else is indistinguishable from one that does not exist.
type Repository interface {
	ListByUser(ctx context.Context, userID int64) ([]*models.Task, error)
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	Update(ctx context.Context, task *models.Task) (*models.Task, error)
	Delete(ctx context.Context, userID int64, taskID int64) error
}
