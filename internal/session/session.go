package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Status is the explicit lifecycle state of an exam session. Transitions only
// happen through Session methods, never by direct assignment from callers.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// CompletionReason records which path ended the session.
type CompletionReason string

const (
	ReasonManualSubmit CompletionReason = "manual_submit"
	ReasonTimeout      CompletionReason = "timeout"
)

// Test durations in seconds per test type.
const (
	MockDurationSeconds    = 7200
	ChapterDurationSeconds = 3600
)

const (
	TestTypeMock    = "mock"
	TestTypeChapter = "chapter"
)

var (
	ErrNoQuestionsAvailable = errors.New("no questions available for this test")
	ErrSessionNotActive     = errors.New("session is not in progress")
	ErrUnknownQuestion      = errors.New("question does not belong to this session")
	ErrInvalidOption        = errors.New("option index out of range")
)

// Question is the immutable question record served for one attempt.
// Options are positional; CorrectIndex is in [0,3].
type Question struct {
	ID           string
	Prompt       string
	Options      [4]string
	CorrectIndex int
	Domain       string
	Difficulty   string
}

// TestRef identifies the test definition an attempt runs against.
type TestRef struct {
	Type string
	ID   string
	Name string
}

// Identity is the submitting user, attached verbatim to the emitted Result.
type Identity struct {
	ID    string
	Name  string
	Email string
}

// Result is the immutable scored outcome of a completed session.
type Result struct {
	TestName       string
	TestType       string
	Score          int
	Date           string
	TimeTaken      string
	TotalQuestions int
	CorrectAnswers int
	UserID         string
	UserName       string
	UserEmail      string
}

// ResultSink persists a Result. Submission is best-effort from the session's
// perspective: a failure is logged, never surfaced to the student.
type ResultSink interface {
	Submit(ctx context.Context, result Result) (resultID string, err error)
}

// QuestionProvider serves the ordered question sequence for a test. For mock
// exams the returned slice is already shuffled and truncated to the exam
// size; the session must not reorder it.
type QuestionProvider interface {
	Fetch(ctx context.Context, testType, testID string) ([]Question, error)
}

// DurationFor returns the countdown length in seconds for a test type.
func DurationFor(testType string) int {
	if testType == TestTypeMock {
		return MockDurationSeconds
	}
	return ChapterDurationSeconds
}

// Session drives one exam attempt from question retrieval to a single result
// emission. All state is guarded by mu; the timer goroutine and HTTP handlers
// interleave through it. The completion guard in complete() makes the
// timeout/manual-submit race emit exactly one Result.
type Session struct {
	mu sync.Mutex

	id        string
	test      TestRef
	user      Identity
	questions []Question

	answers          map[string]int
	currentIndex     int
	remainingSeconds int
	totalSeconds     int
	status           Status
	startedAt        time.Time

	reason   CompletionReason
	resultID string

	sink ResultSink
	done chan struct{}
}

func newSession(id string, test TestRef, user Identity, questions []Question, sink ResultSink) *Session {
	total := DurationFor(test.Type)
	return &Session{
		id:               id,
		test:             test,
		user:             user,
		questions:        questions,
		answers:          make(map[string]int),
		currentIndex:     0,
		remainingSeconds: total,
		totalSeconds:     total,
		status:           StatusInProgress,
		startedAt:        time.Now(),
		sink:             sink,
		done:             make(chan struct{}),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Done is closed when the session completes or is abandoned. The timer
// goroutine selects on it so no stray tick fires after completion.
func (s *Session) Done() <-chan struct{} { return s.done }

// RecordAnswer stores the chosen option for a question, overwriting any prior
// choice. Last write wins; no history is kept.
func (s *Session) RecordAnswer(questionID string, optionIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusInProgress {
		return ErrSessionNotActive
	}
	if optionIndex < 0 || optionIndex > 3 {
		return ErrInvalidOption
	}
	if !s.hasQuestion(questionID) {
		return ErrUnknownQuestion
	}
	s.answers[questionID] = optionIndex
	return nil
}

func (s *Session) hasQuestion(questionID string) bool {
	for i := range s.questions {
		if s.questions[i].ID == questionID {
			return true
		}
	}
	return false
}

// Advance moves the current question pointer by direction (±1), clamped to
// the question range. No wraparound.
func (s *Session) Advance(direction int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusInProgress {
		return
	}
	next := s.currentIndex + direction
	if next < 0 {
		next = 0
	}
	if max := len(s.questions) - 1; next > max {
		next = max
	}
	s.currentIndex = next
}

// JumpTo sets the current question pointer directly. Out-of-range indices are
// ignored.
func (s *Session) JumpTo(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusInProgress {
		return
	}
	if index < 0 || index >= len(s.questions) {
		return
	}
	s.currentIndex = index
}

// Tick decrements the countdown by one second. Reaching zero triggers
// completion with the timeout reason; further ticks are no-ops so the counter
// never goes negative.
func (s *Session) Tick() {
	s.mu.Lock()
	if s.status != StatusInProgress {
		s.mu.Unlock()
		return
	}
	s.remainingSeconds--
	if s.remainingSeconds > 0 {
		s.mu.Unlock()
		return
	}
	s.remainingSeconds = 0
	result := s.completeLocked(ReasonTimeout)
	s.mu.Unlock()
	s.submit(result)
}

// Complete transitions the session to Completed and emits its single Result.
// A second call while already Completed is a no-op; this guard is what
// resolves a timer tick racing a manual submit.
func (s *Session) Complete(reason CompletionReason) {
	s.mu.Lock()
	if s.status != StatusInProgress {
		s.mu.Unlock()
		return
	}
	result := s.completeLocked(reason)
	s.mu.Unlock()
	s.submit(result)
}

// completeLocked commits the terminal transition and builds the Result.
// Callers must hold mu and must have verified status == InProgress.
func (s *Session) completeLocked(reason CompletionReason) Result {
	s.status = StatusCompleted
	s.reason = reason
	close(s.done)

	outcome := Score(s.questions, s.answers)
	elapsed := s.totalSeconds - s.remainingSeconds
	now := time.Now()

	return Result{
		TestName:       s.test.Name,
		TestType:       s.test.Type,
		Score:          outcome.Percentage,
		Date:           now.Format("2006-01-02"),
		TimeTaken:      FormatElapsed(elapsed),
		TotalQuestions: len(s.questions),
		CorrectAnswers: outcome.CorrectCount,
		UserID:         s.user.ID,
		UserName:       s.user.Name,
		UserEmail:      s.user.Email,
	}
}

// submit hands the Result to the sink. The local completion is already
// committed; persistence failure is logged and the student still sees the
// score.
func (s *Session) submit(result Result) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	resultID, err := s.sink.Submit(ctx, result)
	if err != nil {
		log.Error().Err(err).
			Str("session_id", s.id).
			Str("test_name", result.TestName).
			Int("score", result.Score).
			Msg("Result submission failed; score remains available locally")
		return
	}

	s.mu.Lock()
	s.resultID = resultID
	s.mu.Unlock()

	log.Info().
		Str("session_id", s.id).
		Str("result_id", resultID).
		Str("user_id", result.UserID).
		Int("score", result.Score).
		Msg("Session result submitted")
}

// abandon tears the session down without emitting a Result. Navigating away
// mid-test is accepted data loss, not a save path.
func (s *Session) abandon() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == StatusInProgress {
		s.status = StatusCompleted
		close(s.done)
	}
}

// State is a point-in-time copy of the session for read-side callers.
type State struct {
	ID               string
	Test             TestRef
	User             Identity
	Questions        []Question
	Answers          map[string]int
	CurrentIndex     int
	RemainingSeconds int
	Status           Status
	Reason           CompletionReason
	ResultID         string
	Outcome          *Outcome
}

// Snapshot copies the observable session state. The Outcome field is only
// set once the session has completed.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	answers := make(map[string]int, len(s.answers))
	for k, v := range s.answers {
		answers[k] = v
	}
	st := State{
		ID:               s.id,
		Test:             s.test,
		User:             s.user,
		Questions:        s.questions,
		Answers:          answers,
		CurrentIndex:     s.currentIndex,
		RemainingSeconds: s.remainingSeconds,
		Status:           s.status,
		Reason:           s.reason,
		ResultID:         s.resultID,
	}
	if s.status == StatusCompleted {
		outcome := Score(s.questions, s.answers)
		st.Outcome = &outcome
	}
	return st
}

// FormatElapsed renders a second count as M:SS, matching the elapsed-time
// string stored on results.
func FormatElapsed(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
