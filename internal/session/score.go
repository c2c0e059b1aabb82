package session

import "math"

// PassThreshold is the display pass mark in percent.
const PassThreshold = 70

// Outcome is the scored result of one answer set.
type Outcome struct {
	Percentage   int
	CorrectCount int
}

// Passed reports whether the outcome clears the pass mark.
func (o Outcome) Passed() bool { return o.Percentage >= PassThreshold }

// Score grades a question sequence against an answer map. A question with no
// recorded answer counts as incorrect. The percentage rounds half up.
//
// Callers must not invoke Score on an empty question set; every session is
// created from a non-empty sequence, so an empty input is a programming
// error, not a runtime case.
func Score(questions []Question, answers map[string]int) Outcome {
	correct := 0
	for i := range questions {
		chosen, ok := answers[questions[i].ID]
		if ok && chosen == questions[i].CorrectIndex {
			correct++
		}
	}
	pct := int(math.Round(float64(correct) / float64(len(questions)) * 100))
	return Outcome{Percentage: pct, CorrectCount: correct}
}
