package assessment

// Score computes the percentage score for a submitted answer set by
// exact per-question equality between the selected option key and the
// correct answer. Unanswered questions count as wrong. For an empty
// question set the score is 0.
func Score(questions []Question, answers map[int]string) float64 {
	if len(questions) == 0 {
		return 0
	}

	correct := 0
	for i, q := range questions {
		if answers[i] == q.CorrectAnswer {
			correct++
		}
	}

	return float64(correct) / float64(len(questions)) * 100
}
