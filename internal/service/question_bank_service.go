package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/cbda-academy/exam-api/internal/dto"
	"github.com/cbda-academy/exam-api/internal/model"
	"github.com/cbda-academy/exam-api/internal/repository"
	"github.com/cbda-academy/exam-api/internal/session"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// MockExamSize is both the minimum bank size for a mock exam upload and the
// number of questions served per mock attempt.
const MockExamSize = 75

var ErrQuestionSetNotFound = errors.New("questions not found for this test")

// QuestionBankService manages stored question banks and serves per-attempt
// question sequences. It is the session package's QuestionProvider.
type QuestionBankService interface {
	UploadBank(testType, testID string, data []byte) (*dto.UploadResponse, error)
	Fetch(ctx context.Context, testType, testID string) ([]session.Question, error)
	ListAvailable() ([]dto.AvailableTestDTO, error)
}

type questionBankService struct {
	setRepo repository.QuestionSetRepository
}

func NewQuestionBankService(setRepo repository.QuestionSetRepository) QuestionBankService {
	return &questionBankService{setRepo: setRepo}
}

// UploadBank validates an uploaded JSON bank and replaces the stored set for
// (testType, testID).
func (s *questionBankService) UploadBank(testType, testID string, data []byte) (*dto.UploadResponse, error) {
	var uploaded []dto.UploadedQuestion
	if err := json.Unmarshal(data, &uploaded); err != nil {
		return nil, fmt.Errorf("invalid JSON format: %w", err)
	}
	if len(uploaded) == 0 {
		return nil, errors.New("question bank is empty")
	}

	seen := make(map[string]struct{}, len(uploaded))
	for i, q := range uploaded {
		if q.ID == "" || q.Question == "" {
			return nil, fmt.Errorf("invalid question format at index %d: id and question are required", i)
		}
		if len(q.Options) != 4 {
			return nil, fmt.Errorf("invalid question format at index %d: exactly 4 options required", i)
		}
		if q.CorrectAnswer == nil || *q.CorrectAnswer < 0 || *q.CorrectAnswer > 3 {
			return nil, fmt.Errorf("invalid question format at index %d: correctAnswer must be 0-3", i)
		}
		if _, dup := seen[q.ID]; dup {
			return nil, fmt.Errorf("duplicate question id %q at index %d", q.ID, i)
		}
		seen[q.ID] = struct{}{}
	}
	if testType == session.TestTypeMock && len(uploaded) < MockExamSize {
		return nil, fmt.Errorf("mock exams must have at least %d questions, got %d", MockExamSize, len(uploaded))
	}

	set := &model.QuestionSet{
		TestType:      testType,
		TestID:        testID,
		QuestionCount: len(uploaded),
	}
	for i, q := range uploaded {
		item := model.Question{
			ExternalID:   q.ID,
			Prompt:       q.Question,
			CorrectIndex: *q.CorrectAnswer,
			Position:     i,
		}
		item.SetOptions([4]string{q.Options[0], q.Options[1], q.Options[2], q.Options[3]})
		if q.Domain != "" {
			d := q.Domain
			item.Domain = &d
		}
		if q.Difficulty != "" {
			d := q.Difficulty
			item.Difficulty = &d
		}
		set.Questions = append(set.Questions, item)
	}

	if err := s.setRepo.Replace(set); err != nil {
		log.Error().Err(err).Str("test_type", testType).Str("test_id", testID).Msg("UploadBank: failed to replace question set")
		return nil, fmt.Errorf("failed to store question bank: %w", err)
	}

	log.Info().Str("test_type", testType).Str("test_id", testID).Int("count", len(uploaded)).Msg("Question bank uploaded")
	return &dto.UploadResponse{Count: len(uploaded), TestType: testType, TestID: testID}, nil
}

// Fetch serves the question sequence for one attempt: shuffled server-side,
// and truncated to the exam size for mock tests. Chapter tests get the full
// stored set.
func (s *questionBankService) Fetch(_ context.Context, testType, testID string) ([]session.Question, error) {
	set, err := s.setRepo.FindByTestWithQuestions(testType, testID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionSetNotFound
		}
		return nil, fmt.Errorf("failed to load question set %s/%s: %w", testType, testID, err)
	}

	questions := make([]session.Question, len(set.Questions))
	for i, q := range set.Questions {
		questions[i] = toSessionQuestion(&q)
	}
	rand.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
	if testType == session.TestTypeMock && len(questions) > MockExamSize {
		questions = questions[:MockExamSize]
	}
	return questions, nil
}

func (s *questionBankService) ListAvailable() ([]dto.AvailableTestDTO, error) {
	sets, err := s.setRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("error fetching available tests: %w", err)
	}
	dtos := make([]dto.AvailableTestDTO, 0, len(sets))
	for _, set := range sets {
		dtos = append(dtos, dto.AvailableTestDTO{
			TestType:      set.TestType,
			TestID:        set.TestID,
			QuestionCount: set.QuestionCount,
			UpdatedAt:     set.UpdatedAt,
		})
	}
	return dtos, nil
}

func toSessionQuestion(q *model.Question) session.Question {
	sq := session.Question{
		ID:           q.ExternalID,
		Prompt:       q.Prompt,
		Options:      q.OptionList(),
		CorrectIndex: q.CorrectIndex,
	}
	if q.Domain != nil {
		sq.Domain = *q.Domain
	}
	if q.Difficulty != nil {
		sq.Difficulty = *q.Difficulty
	}
	return sq
}
