package session

import (
	"fmt"
	"testing"
)

func questionsWithAnswers(correct []int) []Question {
	qs := make([]Question, len(correct))
	for i, c := range correct {
		qs[i] = Question{
			ID:           fmt.Sprintf("q%d", i+1),
			Prompt:       "prompt",
			Options:      [4]string{"A", "B", "C", "D"},
			CorrectIndex: c,
		}
	}
	return qs
}

func TestScore(t *testing.T) {
	tests := []struct {
		name        string
		correct     []int
		answers     map[string]int
		wantCorrect int
		wantPct     int
		wantPassed  bool
	}{
		{
			name:        "three of four correct",
			correct:     []int{1, 2, 0, 3},
			answers:     map[string]int{"q1": 1, "q2": 2, "q3": 1, "q4": 3},
			wantCorrect: 3,
			wantPct:     75,
			wantPassed:  true,
		},
		{
			name:        "one of six rounds to 17",
			correct:     []int{0, 0, 0, 0, 0, 0},
			answers:     map[string]int{"q1": 0, "q2": 1, "q3": 1, "q4": 1, "q5": 1, "q6": 1},
			wantCorrect: 1,
			wantPct:     17,
			wantPassed:  false,
		},
		{
			name:        "two of three rounds to 67",
			correct:     []int{0, 1, 2},
			answers:     map[string]int{"q1": 0, "q2": 1},
			wantCorrect: 2,
			wantPct:     67,
			wantPassed:  false,
		},
		{
			name:        "all correct",
			correct:     []int{3, 3, 3, 3},
			answers:     map[string]int{"q1": 3, "q2": 3, "q3": 3, "q4": 3},
			wantCorrect: 4,
			wantPct:     100,
			wantPassed:  true,
		},
		{
			name:        "no answers recorded",
			correct:     []int{0, 1, 2, 3},
			answers:     map[string]int{},
			wantCorrect: 0,
			wantPct:     0,
			wantPassed:  false,
		},
		{
			name:        "missing answers count as incorrect",
			correct:     []int{0, 1, 2, 3},
			answers:     map[string]int{"q1": 0, "q4": 3},
			wantCorrect: 2,
			wantPct:     50,
			wantPassed:  false,
		},
		{
			name:        "exactly at pass mark",
			correct:     []int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
			answers:     map[string]int{"q1": 0, "q2": 0, "q3": 0, "q4": 0, "q5": 0, "q6": 0, "q7": 0},
			wantCorrect: 7,
			wantPct:     70,
			wantPassed:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(questionsWithAnswers(tt.correct), tt.answers)
			if got.CorrectCount != tt.wantCorrect {
				t.Errorf("CorrectCount = %d, want %d", got.CorrectCount, tt.wantCorrect)
			}
			if got.Percentage != tt.wantPct {
				t.Errorf("Percentage = %d, want %d", got.Percentage, tt.wantPct)
			}
			if got.Passed() != tt.wantPassed {
				t.Errorf("Passed() = %v, want %v", got.Passed(), tt.wantPassed)
			}
		})
	}
}

func TestScoreIgnoresAnswerOrder(t *testing.T) {
	qs := questionsWithAnswers([]int{1, 2, 0, 3})
	a := map[string]int{"q4": 3, "q1": 1, "q3": 1, "q2": 2}
	b := map[string]int{"q1": 1, "q2": 2, "q3": 1, "q4": 3}

	if Score(qs, a) != Score(qs, b) {
		t.Errorf("Score depends on answer map insertion order: %+v vs %+v", Score(qs, a), Score(qs, b))
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0:00"},
		{9, "0:09"},
		{60, "1:00"},
		{754, "12:34"},
		{3600, "60:00"},
		{-5, "0:00"},
	}
	for _, tt := range tests {
		if got := FormatElapsed(tt.seconds); got != tt.want {
			t.Errorf("FormatElapsed(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
