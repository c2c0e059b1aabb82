package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/cbda-academy/exam-api/internal/dto"
	"github.com/cbda-academy/exam-api/internal/model"
	"github.com/cbda-academy/exam-api/internal/repository"
	"github.com/cbda-academy/exam-api/internal/session"
	"github.com/cbda-academy/exam-api/internal/storage"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

const exportPrefix = "cbda-results-"

// ResultService persists scored outcomes and produces the reporting views.
// It is the session package's ResultSink.
type ResultService interface {
	Submit(ctx context.Context, result session.Result) (string, error)
	GetUserResults(userID string) ([]dto.ResultDTO, error)
	GetAllWithStats() (*dto.AdminResultsResponse, error)
	Delete(resultID string) error
	ExportCSV() (filename string, data []byte, err error)
	ExportCSVToCloud() (*dto.ExportResponse, error)
	ListExports() ([]dto.ExportFileDTO, error)
	DeleteExport(filename string) error
}

type resultService struct {
	resultRepo repository.ResultRepository
	exports    storage.BlobStore
}

func NewResultService(resultRepo repository.ResultRepository, exports storage.BlobStore) ResultService {
	return &resultService{resultRepo: resultRepo, exports: exports}
}

// Submit assigns the server-side identifier and timestamp and persists the
// result record.
func (s *resultService) Submit(_ context.Context, result session.Result) (string, error) {
	record := &model.Result{
		ID:             uuid.NewString(),
		UserID:         result.UserID,
		UserName:       result.UserName,
		UserEmail:      result.UserEmail,
		TestName:       result.TestName,
		TestType:       result.TestType,
		Score:          result.Score,
		Date:           result.Date,
		TimeTaken:      result.TimeTaken,
		TotalQuestions: result.TotalQuestions,
		CorrectAnswers: result.CorrectAnswers,
	}
	if record.UserName == "" || record.TestName == "" {
		return "", fmt.Errorf("result is missing required fields (user name, test name)")
	}
	if err := s.resultRepo.Create(record); err != nil {
		return "", fmt.Errorf("failed to save result: %w", err)
	}
	log.Info().
		Str("result_id", record.ID).
		Str("user_name", record.UserName).
		Str("test_name", record.TestName).
		Int("score", record.Score).
		Msg("Result saved")
	return record.ID, nil
}

func (s *resultService) GetUserResults(userID string) ([]dto.ResultDTO, error) {
	results, err := s.resultRepo.FindByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("error fetching results for user %s: %w", userID, err)
	}
	return toResultDTOs(results), nil
}

func (s *resultService) GetAllWithStats() (*dto.AdminResultsResponse, error) {
	results, err := s.resultRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("error fetching results: %w", err)
	}
	return &dto.AdminResultsResponse{
		Results: toResultDTOs(results),
		Count:   len(results),
		Stats:   computeStats(results),
	}, nil
}

func (s *resultService) Delete(resultID string) error {
	if err := s.resultRepo.Delete(resultID); err != nil {
		return fmt.Errorf("failed to delete result %s: %w", resultID, err)
	}
	return nil
}

// ExportCSV renders every stored result as a CSV document.
func (s *resultService) ExportCSV() (string, []byte, error) {
	results, err := s.resultRepo.FindAll()
	if err != nil {
		return "", nil, fmt.Errorf("error fetching results for export: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	header := []string{
		"ID", "User Name", "User Email", "Test Name", "Test Type", "Score (%)",
		"Date", "Time Taken", "Total Questions", "Correct Answers", "User ID", "Timestamp",
	}
	if err := w.Write(header); err != nil {
		return "", nil, err
	}
	for _, r := range results {
		email := r.UserEmail
		if email == "" {
			email = "N/A"
		}
		row := []string{
			r.ID, r.UserName, email, r.TestName, r.TestType,
			strconv.Itoa(r.Score), r.Date, r.TimeTaken,
			strconv.Itoa(r.TotalQuestions), strconv.Itoa(r.CorrectAnswers),
			r.UserID, r.CreatedAt.Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return "", nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", nil, err
	}

	filename := fmt.Sprintf("%s%d.csv", exportPrefix, time.Now().UnixMilli())
	return filename, buf.Bytes(), nil
}

// ExportCSVToCloud writes the CSV export into the blob store and returns its
// location.
func (s *resultService) ExportCSVToCloud() (*dto.ExportResponse, error) {
	filename, data, err := s.ExportCSV()
	if err != nil {
		return nil, err
	}
	key, err := s.exports.Put(filename, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to store CSV export: %w", err)
	}
	u, err := s.exports.URL(key)
	if err != nil {
		log.Warn().Err(err).Str("filename", key).Msg("CSV export stored but URL resolution failed")
	}
	log.Info().Str("filename", key).Msg("CSV export uploaded")
	return &dto.ExportResponse{Filename: key, URL: u}, nil
}

func (s *resultService) ListExports() ([]dto.ExportFileDTO, error) {
	files, err := s.exports.List(exportPrefix)
	if err != nil {
		return nil, fmt.Errorf("error listing CSV exports: %w", err)
	}
	dtos := make([]dto.ExportFileDTO, 0, len(files))
	for _, f := range files {
		var d dto.ExportFileDTO
		if err := copier.Copy(&d, &f); err != nil {
			return nil, fmt.Errorf("error preparing export listing: %w", err)
		}
		dtos = append(dtos, d)
	}
	return dtos, nil
}

func (s *resultService) DeleteExport(filename string) error {
	if err := s.exports.Delete(filename); err != nil {
		return fmt.Errorf("failed to delete export %s: %w", filename, err)
	}
	return nil
}

func toResultDTOs(results []model.Result) []dto.ResultDTO {
	dtos := make([]dto.ResultDTO, 0, len(results))
	for _, r := range results {
		var d dto.ResultDTO
		if err := copier.Copy(&d, &r); err != nil {
			log.Error().Err(err).Str("result_id", r.ID).Msg("Error copying result to DTO")
			continue
		}
		d.Timestamp = r.CreatedAt
		dtos = append(dtos, d)
	}
	return dtos
}

func computeStats(results []model.Result) dto.ResultStatsDTO {
	stats := dto.ResultStatsDTO{TotalTests: len(results)}
	if len(results) == 0 {
		return stats
	}
	seen := make(map[string]struct{})
	total := 0
	passed := 0
	for _, r := range results {
		seen[r.UserID] = struct{}{}
		total += r.Score
		if r.Score >= session.PassThreshold {
			passed++
		}
	}
	stats.UniqueStudents = len(seen)
	stats.AverageScore = roundRatio(total, len(results))
	stats.PassRate = roundRatio(passed*100, len(results))
	return stats
}

// roundRatio is integer division with round-half-up, matching the score
// rounding used everywhere else.
func roundRatio(numerator, denominator int) int {
	if denominator == 0 {
		return 0
	}
	return (numerator*2 + denominator) / (denominator * 2)
}
