package repository

import (
	"github.com/cbda-academy/exam-api/internal/model"
	"gorm.io/gorm"
)

type ResultRepository interface {
	Create(result *model.Result) error
	FindByUser(userID string) ([]model.Result, error)
	FindAll() ([]model.Result, error)
	Delete(id string) error
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) Create(result *model.Result) error {
	return r.db.Create(result).Error
}

func (r *resultRepository) FindByUser(userID string) ([]model.Result, error) {
	var results []model.Result
	err := r.db.Where("user_id = ?", userID).Order("created_at desc").Find(&results).Error
	return results, err
}

func (r *resultRepository) FindAll() ([]model.Result, error) {
	var results []model.Result
	err := r.db.Order("created_at desc").Find(&results).Error
	return results, err
}

func (r *resultRepository) Delete(id string) error {
	return r.db.Delete(&model.Result{}, "id = ?", id).Error
}
