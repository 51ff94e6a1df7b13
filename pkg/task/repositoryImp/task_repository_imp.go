package repositoryImp

import (
	"farmlog/entities"
	"farmlog/pkg/task/repository"

	"gorm.io/gorm"
)

type taskRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.TaskRepository { return &taskRepo{db} }

func (r *taskRepo) Create(t *entities.Task) error { return r.db.Create(t).Error }

func (r *taskRepo) ListByUser(userID uint) ([]entities.Task, error) {
	var out []entities.Task
	// task_id ASC breaks same-date ties in insertion order
	if err := r.db.Where("user_id = ?", userID).Order("date DESC, task_id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *taskRepo) FindByID(userID, taskID uint) (*entities.Task, error) {
	var t entities.Task
	if err := r.db.Where("task_id = ? AND user_id = ?", taskID, userID).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *taskRepo) Update(userID, taskID uint, cols map[string]any) (*entities.Task, error) {
	if len(cols) > 0 {
		res := r.db.Model(&entities.Task{}).
			Where("task_id = ? AND user_id = ?", taskID, userID).
			Updates(cols)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return r.FindByID(userID, taskID)
}

func (r *taskRepo) Delete(userID, taskID uint) error {
	res := r.db.Where("task_id = ? AND user_id = ?", taskID, userID).Delete(&entities.Task{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
