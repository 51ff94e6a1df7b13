package repository

import "farmlog/entities"

// TaskRepository is the per-user task collection. Every lookup keys on
// (task_id, user_id); a row owned by someone else is indistinguishable
// from a missing row.
type TaskRepository interface {
	Create(t *entities.Task) error
	ListByUser(userID uint) ([]entities.Task, error)
	FindByID(userID, taskID uint) (*entities.Task, error)
	Update(userID, taskID uint, cols map[string]any) (*entities.Task, error)
	Delete(userID, taskID uint) error
}
