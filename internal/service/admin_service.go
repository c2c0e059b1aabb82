package service

import (
	"fmt"

	"github.com/cbda-academy/exam-api/internal/dto"
	"github.com/cbda-academy/exam-api/internal/model"
	"github.com/cbda-academy/exam-api/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

type AdminService interface {
	ListUsers() ([]dto.UserResponse, error)
	Stats() (*dto.AdminStatsDTO, error)
}

type adminService struct {
	userRepo   repository.UserRepository
	resultRepo repository.ResultRepository
	setRepo    repository.QuestionSetRepository
}

func NewAdminService(
	userRepo repository.UserRepository,
	resultRepo repository.ResultRepository,
	setRepo repository.QuestionSetRepository,
) AdminService {
	return &adminService{userRepo: userRepo, resultRepo: resultRepo, setRepo: setRepo}
}

func (s *adminService) ListUsers() ([]dto.UserResponse, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("error fetching users: %w", err)
	}
	dtos := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		var d dto.UserResponse
		if err := copier.Copy(&d, &u); err != nil {
			log.Error().Err(err).Str("user_id", u.ID).Msg("Error copying user to DTO")
			continue
		}
		dtos = append(dtos, d)
	}
	return dtos, nil
}

// Stats aggregates the platform-wide numbers shown on the admin dashboard.
func (s *adminService) Stats() (*dto.AdminStatsDTO, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("error fetching users for stats: %w", err)
	}
	results, err := s.resultRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("error fetching results for stats: %w", err)
	}
	sets, err := s.setRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("error fetching question sets for stats: %w", err)
	}
	totalQuestions, err := s.setRepo.TotalQuestionCount()
	if err != nil {
		return nil, fmt.Errorf("error counting questions for stats: %w", err)
	}

	students := 0
	for _, u := range users {
		if u.Role == model.RoleStudent {
			students++
		}
	}
	resultStats := computeStats(results)
	return &dto.AdminStatsDTO{
		TotalStudents:  students,
		TotalTests:     resultStats.TotalTests,
		AverageScore:   resultStats.AverageScore,
		PassRate:       resultStats.PassRate,
		TotalQuestions: int(totalQuestions),
		AvailableTests: len(sets),
	}, nil
}
