package repository

import (
	"github.com/cbda-academy/exam-api/internal/model"
	"gorm.io/gorm"
)

type QuestionSetRepository interface {
	Replace(set *model.QuestionSet) error
	FindByTestWithQuestions(testType, testID string) (*model.QuestionSet, error)
	FindAll() ([]model.QuestionSet, error)
	TotalQuestionCount() (int64, error)
}

type questionSetRepository struct {
	db *gorm.DB
}

func NewQuestionSetRepository(db *gorm.DB) QuestionSetRepository {
	return &questionSetRepository{db: db}
}

// Replace swaps out the stored bank for (testType, testID) in one
// transaction, so a half-failed upload never leaves a truncated set behind.
func (r *questionSetRepository) Replace(set *model.QuestionSet) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing model.QuestionSet
		err := tx.Where("test_type = ? AND test_id = ?", set.TestType, set.TestID).First(&existing).Error
		if err == nil {
			if err := tx.Where("question_set_id = ?", existing.ID).Delete(&model.Question{}).Error; err != nil {
				return err
			}
			if err := tx.Unscoped().Delete(&existing).Error; err != nil {
				return err
			}
		} else if err != gorm.ErrRecordNotFound {
			return err
		}
		// Create with associations persists the question rows too.
		return tx.Create(set).Error
	})
}

func (r *questionSetRepository) FindByTestWithQuestions(testType, testID string) (*model.QuestionSet, error) {
	var set model.QuestionSet
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.position ASC")
	}).Where("test_type = ? AND test_id = ?", testType, testID).First(&set).Error
	if err != nil {
		return nil, err
	}
	return &set, nil
}

func (r *questionSetRepository) FindAll() ([]model.QuestionSet, error) {
	var sets []model.QuestionSet
	if err := r.db.Order("test_type asc, test_id asc").Find(&sets).Error; err != nil {
		return nil, err
	}
	return sets, nil
}

func (r *questionSetRepository) TotalQuestionCount() (int64, error) {
	var total int64
	err := r.db.Model(&model.Question{}).Count(&total).Error
	return total, err
}
