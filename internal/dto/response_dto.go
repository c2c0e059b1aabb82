package dto

import "time"

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"created_at"`
}

// PlayQuestionDTO is a question as served to a test taker. The correct
// option never leaves the server; scoring happens session-side.
type PlayQuestionDTO struct {
	ID         string   `json:"id"`
	Prompt     string   `json:"question"`
	Options    []string `json:"options"`
	Domain     string   `json:"domain,omitempty"`
	Difficulty string   `json:"difficulty,omitempty"`
}

type QuestionFetchResponse struct {
	Questions []PlayQuestionDTO `json:"questions"`
	Count     int               `json:"count"`
}

type AvailableTestDTO struct {
	TestType      string    `json:"test_type"`
	TestID        string    `json:"test_id"`
	QuestionCount int       `json:"question_count"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// SessionResultDTO carries the locally computed outcome of a completed
// session. ResultID is empty when persistence has not (yet) succeeded; the
// score is shown regardless.
type SessionResultDTO struct {
	Score          int    `json:"score"`
	CorrectAnswers int    `json:"correct_answers"`
	TotalQuestions int    `json:"total_questions"`
	Passed         bool   `json:"passed"`
	TimeTaken      string `json:"time_taken"`
	Reason         string `json:"reason"`
	ResultID       string `json:"result_id,omitempty"`
}

type SessionResponse struct {
	ID               string            `json:"id"`
	TestType         string            `json:"test_type"`
	TestID           string            `json:"test_id"`
	TestName         string            `json:"test_name"`
	Status           string            `json:"status"`
	CurrentIndex     int               `json:"current_index"`
	RemainingSeconds int               `json:"remaining_seconds"`
	Questions        []PlayQuestionDTO `json:"questions"`
	Answers          map[string]int    `json:"answers"`
	Result           *SessionResultDTO `json:"result,omitempty"`
}

type ResultDTO struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	UserName       string    `json:"user_name"`
	UserEmail      string    `json:"user_email,omitempty"`
	TestName       string    `json:"test_name"`
	TestType       string    `json:"test_type"`
	Score          int       `json:"score"`
	Date           string    `json:"date"`
	TimeTaken      string    `json:"time_taken"`
	TotalQuestions int       `json:"total_questions"`
	CorrectAnswers int       `json:"correct_answers"`
	Timestamp      time.Time `json:"timestamp"`
}

type ResultStatsDTO struct {
	TotalTests     int `json:"total_tests"`
	UniqueStudents int `json:"unique_students"`
	AverageScore   int `json:"average_score"`
	PassRate       int `json:"pass_rate"`
}

type AdminResultsResponse struct {
	Results []ResultDTO    `json:"results"`
	Count   int            `json:"count"`
	Stats   ResultStatsDTO `json:"stats"`
}

type AdminStatsDTO struct {
	TotalStudents  int `json:"total_students"`
	TotalTests     int `json:"total_tests"`
	AverageScore   int `json:"average_score"`
	PassRate       int `json:"pass_rate"`
	TotalQuestions int `json:"total_questions"`
	AvailableTests int `json:"available_tests"`
}

type ExportFileDTO struct {
	Name      string    `json:"name"`
	Size      int64     `json:"size"`
	UpdatedAt time.Time `json:"updated_at"`
	URL       string    `json:"url"`
}

type ExportResponse struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
}
