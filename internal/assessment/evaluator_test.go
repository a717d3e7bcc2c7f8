package assessment

import "testing"

func fiveQuestions() []Question {
	qs := make([]Question, QuestionCount)
	answers := []string{"A", "B", "C", "D", "A"}
	for i := range qs {
		qs[i] = Question{
			Question:      "q",
			Options:       Options{A: "a", B: "b", C: "c", D: "d"},
			CorrectAnswer: answers[i],
		}
	}
	return qs
}

func TestScore(t *testing.T) {
	qs := fiveQuestions()

	tests := []struct {
		name    string
		answers map[int]string
		want    float64
	}{
		{"all correct", map[int]string{0: "A", 1: "B", 2: "C", 3: "D", 4: "A"}, 100},
		{"four correct", map[int]string{0: "A", 1: "B", 2: "C", 3: "D", 4: "B"}, 80},
		{"three correct", map[int]string{0: "A", 1: "B", 2: "C", 3: "A", 4: "B"}, 60},
		{"one correct", map[int]string{0: "A", 1: "A", 2: "A", 3: "A", 4: "B"}, 20},
		{"none correct", map[int]string{0: "B", 1: "C", 2: "D", 3: "A", 4: "C"}, 0},
		{"unanswered count as wrong", map[int]string{0: "A"}, 20},
		{"no answers at all", map[int]string{}, 0},
		{"lowercase is not a match", map[int]string{0: "a", 1: "b", 2: "c", 3: "d", 4: "a"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(qs, tt.answers); got != tt.want {
				t.Fatalf("Score() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScoreEmptyQuestionSet(t *testing.T) {
	if got := Score(nil, map[int]string{0: "A"}); got != 0 {
		t.Fatalf("Score(nil) = %v, want 0", got)
	}
}

func TestMetadataFor(t *testing.T) {
	quiz := MetadataFor(VariantQuiz)
	final := MetadataFor(VariantFinalTest)

	if quiz.Difficulty == final.Difficulty {
		t.Fatal("variants should carry distinct difficulty labels")
	}
	if quiz.TimeEstimate == "" || final.TimeEstimate == "" {
		t.Fatal("metadata must always carry a time estimate")
	}
}
