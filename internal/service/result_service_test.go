package service

import (
	"context"
	"encoding/csv"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/cbda-academy/exam-api/internal/model"
	"github.com/cbda-academy/exam-api/internal/session"
	"github.com/cbda-academy/exam-api/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResultRepo struct {
	results []model.Result
	err     error
}

func (r *fakeResultRepo) Create(result *model.Result) error {
	if r.err != nil {
		return r.err
	}
	if result.CreatedAt.IsZero() {
		result.CreatedAt = time.Now()
	}
	r.results = append(r.results, *result)
	return nil
}

func (r *fakeResultRepo) FindByUser(userID string) ([]model.Result, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []model.Result
	for _, res := range r.results {
		if res.UserID == userID {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *fakeResultRepo) FindAll() ([]model.Result, error) {
	if r.err != nil {
		return nil, r.err
	}
	return append([]model.Result(nil), r.results...), nil
}

func (r *fakeResultRepo) Delete(id string) error {
	for i, res := range r.results {
		if res.ID == id {
			r.results = append(r.results[:i], r.results[i+1:]...)
			return nil
		}
	}
	return nil
}

func newTestResultService(t *testing.T, repo *fakeResultRepo) ResultService {
	t.Helper()
	store, err := storage.NewFSStore(t.TempDir())
	require.NoError(t, err)
	return NewResultService(repo, store)
}

func sampleResult(score int) session.Result {
	return session.Result{
		TestName:       "Chapter 1",
		TestType:       "chapter",
		Score:          score,
		Date:           "2026-09-01",
		TimeTaken:      "12:34",
		TotalQuestions: 10,
		CorrectAnswers: score / 10,
		UserID:         "u1",
		UserName:       "Ada",
		UserEmail:      "ada@example.com",
	}
}

func TestSubmitPersistsResult(t *testing.T) {
	repo := &fakeResultRepo{}
	svc := newTestResultService(t, repo)

	id, err := svc.Submit(context.Background(), sampleResult(80))
	require.NoError(t, err)
	require.NotEmpty(t, id)

	require.Len(t, repo.results, 1)
	saved := repo.results[0]
	assert.Equal(t, id, saved.ID)
	assert.Equal(t, 80, saved.Score)
	assert.Equal(t, "Ada", saved.UserName)
	assert.Equal(t, "12:34", saved.TimeTaken)
}

func TestSubmitRejectsIncompleteResult(t *testing.T) {
	repo := &fakeResultRepo{}
	svc := newTestResultService(t, repo)

	r := sampleResult(80)
	r.UserName = ""
	_, err := svc.Submit(context.Background(), r)
	require.Error(t, err)
	assert.Empty(t, repo.results)
}

func TestSubmitSurfacesRepositoryError(t *testing.T) {
	repo := &fakeResultRepo{err: errors.New("connection refused")}
	svc := newTestResultService(t, repo)

	_, err := svc.Submit(context.Background(), sampleResult(80))
	require.Error(t, err)
}

func TestGetAllWithStats(t *testing.T) {
	repo := &fakeResultRepo{}
	svc := newTestResultService(t, repo)

	scores := []struct {
		userID string
		score  int
	}{
		{"u1", 80}, {"u1", 60}, {"u2", 90},
	}
	for _, s := range scores {
		r := sampleResult(s.score)
		r.UserID = s.userID
		_, err := svc.Submit(context.Background(), r)
		require.NoError(t, err)
	}

	resp, err := svc.GetAllWithStats()
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Count)
	assert.Len(t, resp.Results, 3)
	assert.Equal(t, 3, resp.Stats.TotalTests)
	assert.Equal(t, 2, resp.Stats.UniqueStudents)
	assert.Equal(t, 77, resp.Stats.AverageScore) // (80+60+90)/3 rounds half up
	assert.Equal(t, 67, resp.Stats.PassRate)     // 2 of 3 at or above 70
}

func TestStatsOnEmptyResults(t *testing.T) {
	svc := newTestResultService(t, &fakeResultRepo{})

	resp, err := svc.GetAllWithStats()
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Stats.TotalTests)
	assert.Equal(t, 0, resp.Stats.AverageScore)
	assert.Equal(t, 0, resp.Stats.PassRate)
}

func TestRoundRatio(t *testing.T) {
	tests := []struct {
		n, d, want int
	}{
		{0, 0, 0},
		{1, 2, 1},
		{1, 3, 0},
		{2, 3, 1},
		{230, 3, 77},
		{200, 3, 67},
		{100, 1, 100},
	}
	for _, tt := range tests {
		if got := roundRatio(tt.n, tt.d); got != tt.want {
			t.Errorf("roundRatio(%d, %d) = %d, want %d", tt.n, tt.d, got, tt.want)
		}
	}
}

func TestExportCSV(t *testing.T) {
	repo := &fakeResultRepo{}
	svc := newTestResultService(t, repo)

	r := sampleResult(80)
	_, err := svc.Submit(context.Background(), r)
	require.NoError(t, err)
	noEmail := sampleResult(40)
	noEmail.UserEmail = ""
	noEmail.UserID = "u2"
	_, err = svc.Submit(context.Background(), noEmail)
	require.NoError(t, err)

	filename, data, err := svc.ExportCSV()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filename, exportPrefix))
	assert.True(t, strings.HasSuffix(filename, ".csv"))

	rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "User Name", rows[0][1])
	assert.Equal(t, "Ada", rows[1][1])
	assert.Equal(t, "80", rows[1][5])
	assert.Equal(t, "N/A", rows[2][2], "missing email renders as N/A")
}

func TestExportCSVToCloudRoundTrip(t *testing.T) {
	repo := &fakeResultRepo{}
	svc := newTestResultService(t, repo)
	_, err := svc.Submit(context.Background(), sampleResult(80))
	require.NoError(t, err)

	resp, err := svc.ExportCSVToCloud()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.Filename, exportPrefix))
	assert.NotEmpty(t, resp.URL)

	files, err := svc.ListExports()
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, resp.Filename, files[0].Name)
	assert.NotZero(t, files[0].Size)

	require.NoError(t, svc.DeleteExport(resp.Filename))
	files, err = svc.ListExports()
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestGetUserResults(t *testing.T) {
	repo := &fakeResultRepo{}
	svc := newTestResultService(t, repo)

	mine := sampleResult(80)
	_, err := svc.Submit(context.Background(), mine)
	require.NoError(t, err)
	other := sampleResult(50)
	other.UserID = "u2"
	_, err = svc.Submit(context.Background(), other)
	require.NoError(t, err)

	results, err := svc.GetUserResults("u1")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 80, results[0].Score)
	assert.Equal(t, "u1", results[0].UserID)
	assert.False(t, results[0].Timestamp.IsZero())
}
