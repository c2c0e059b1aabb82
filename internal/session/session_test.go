package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureSink struct {
	mu      sync.Mutex
	results []Result
	nextID  string
	err     error
}

func (c *captureSink) Submit(_ context.Context, r Result) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return "", c.err
	}
	c.results = append(c.results, r)
	return c.nextID, nil
}

func (c *captureSink) submitted() []Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Result(nil), c.results...)
}

func chapterQuestions(n int) []Question {
	qs := make([]Question, n)
	for i := range qs {
		qs[i] = Question{
			ID:           fmt.Sprintf("q-%d", i),
			Prompt:       "prompt",
			Options:      [4]string{"A", "B", "C", "D"},
			CorrectIndex: i % 4,
		}
	}
	return qs
}

func newChapterSession(sink ResultSink, n int) *Session {
	test := TestRef{Type: TestTypeChapter, ID: "ch1", Name: "Chapter 1"}
	user := Identity{ID: "u1", Name: "Ada", Email: "ada@example.com"}
	return newSession("s1", test, user, chapterQuestions(n), sink)
}

func TestCompleteEmitsSingleResult(t *testing.T) {
	sink := &captureSink{nextID: "r1"}
	s := newChapterSession(sink, 4)

	require.NoError(t, s.RecordAnswer("q-0", 0))
	require.NoError(t, s.RecordAnswer("q-1", 1))
	require.NoError(t, s.RecordAnswer("q-2", 2))

	s.Complete(ReasonManualSubmit)
	s.Complete(ReasonManualSubmit)
	s.Tick()

	results := sink.submitted()
	require.Len(t, results, 1)
	assert.Equal(t, 3, results[0].CorrectAnswers)
	assert.Equal(t, 75, results[0].Score)
	assert.Equal(t, 4, results[0].TotalQuestions)
	assert.Equal(t, "Chapter 1", results[0].TestName)
	assert.Equal(t, "u1", results[0].UserID)
	assert.Equal(t, "ada@example.com", results[0].UserEmail)

	st := s.Snapshot()
	assert.Equal(t, StatusCompleted, st.Status)
	assert.Equal(t, ReasonManualSubmit, st.Reason)
	assert.Equal(t, "r1", st.ResultID)
	require.NotNil(t, st.Outcome)
	assert.Equal(t, 75, st.Outcome.Percentage)
}

func TestTickToZeroCompletesWithTimeout(t *testing.T) {
	sink := &captureSink{nextID: "r1"}
	s := newChapterSession(sink, 2)

	for i := 0; i < ChapterDurationSeconds; i++ {
		s.Tick()
	}
	// Further ticks after expiry must not fire again or go negative.
	s.Tick()
	s.Tick()

	st := s.Snapshot()
	assert.Equal(t, StatusCompleted, st.Status)
	assert.Equal(t, ReasonTimeout, st.Reason)
	assert.Equal(t, 0, st.RemainingSeconds)
	require.Len(t, sink.submitted(), 1)
}

func TestTimeoutWithNoAnswersScoresZero(t *testing.T) {
	sink := &captureSink{nextID: "r1"}
	test := TestRef{Type: TestTypeMock, ID: "mock1", Name: "Mock Exam"}
	user := Identity{ID: "u1", Name: "Ada", Email: "ada@example.com"}
	s := newSession("s1", test, user, chapterQuestions(75), sink)

	for i := 0; i < MockDurationSeconds; i++ {
		s.Tick()
	}

	results := sink.submitted()
	require.Len(t, results, 1)
	assert.Equal(t, 0, results[0].Score)
	assert.Equal(t, 0, results[0].CorrectAnswers)
	assert.Equal(t, 75, results[0].TotalQuestions)
	assert.Equal(t, "120:00", results[0].TimeTaken)
}

func TestRecordAnswerValidation(t *testing.T) {
	sink := &captureSink{}
	s := newChapterSession(sink, 2)

	assert.ErrorIs(t, s.RecordAnswer("q-0", -1), ErrInvalidOption)
	assert.ErrorIs(t, s.RecordAnswer("q-0", 4), ErrInvalidOption)
	assert.ErrorIs(t, s.RecordAnswer("missing", 0), ErrUnknownQuestion)

	require.NoError(t, s.RecordAnswer("q-0", 1))
	require.NoError(t, s.RecordAnswer("q-0", 2)) // overwrite wins
	assert.Equal(t, 2, s.Snapshot().Answers["q-0"])
}

func TestRecordAnswerAfterCompletionRejected(t *testing.T) {
	sink := &captureSink{}
	s := newChapterSession(sink, 2)

	s.Complete(ReasonManualSubmit)
	assert.ErrorIs(t, s.RecordAnswer("q-0", 0), ErrSessionNotActive)
}

func TestAdvanceClampsAtBounds(t *testing.T) {
	sink := &captureSink{}
	s := newChapterSession(sink, 3)

	s.Advance(-1)
	assert.Equal(t, 0, s.Snapshot().CurrentIndex)

	s.Advance(1)
	s.Advance(1)
	s.Advance(1)
	assert.Equal(t, 2, s.Snapshot().CurrentIndex)
}

func TestJumpToIgnoresOutOfRange(t *testing.T) {
	sink := &captureSink{}
	s := newChapterSession(sink, 3)

	s.JumpTo(2)
	assert.Equal(t, 2, s.Snapshot().CurrentIndex)

	s.JumpTo(7)
	s.JumpTo(-1)
	assert.Equal(t, 2, s.Snapshot().CurrentIndex)
}

func TestSinkFailureKeepsLocalScore(t *testing.T) {
	sink := &captureSink{err: errors.New("database down")}
	s := newChapterSession(sink, 2)
	require.NoError(t, s.RecordAnswer("q-0", 0))

	s.Complete(ReasonManualSubmit)

	st := s.Snapshot()
	assert.Equal(t, StatusCompleted, st.Status)
	assert.Empty(t, st.ResultID)
	require.NotNil(t, st.Outcome)
	assert.Equal(t, 50, st.Outcome.Percentage)
}

func TestAbandonEmitsNothing(t *testing.T) {
	sink := &captureSink{}
	s := newChapterSession(sink, 2)

	s.abandon()
	s.abandon()

	assert.Empty(t, sink.submitted())
	select {
	case <-s.Done():
	default:
		t.Fatal("Done channel not closed after abandon")
	}
}

func TestConcurrentSubmitAndTimeoutEmitOnce(t *testing.T) {
	sink := &captureSink{nextID: "r1"}
	s := newChapterSession(sink, 2)

	// Drain the clock to one second so the racing tick can expire it.
	for i := 0; i < ChapterDurationSeconds-1; i++ {
		s.Tick()
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		s.Tick()
	}()
	go func() {
		defer wg.Done()
		s.Complete(ReasonManualSubmit)
	}()
	wg.Wait()

	require.Len(t, sink.submitted(), 1)
	assert.Equal(t, StatusCompleted, s.Snapshot().Status)
}
