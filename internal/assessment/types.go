// Package assessment generates multiple-choice question sets for quizzes
// and final tests, and scores submitted answers.
package assessment

// QuestionCount is the fixed size of every generated question set.
const QuestionCount = 5

// Options holds the four answer options keyed A through D.
type Options struct {
	A string `json:"A"`
	B string `json:"B"`
	C string `json:"C"`
	D string `json:"D"`
}

// Question is one multiple-choice question. Questions are ephemeral:
// they live only for the duration of an attempt and are discarded after
// scoring.
type Question struct {
	Question      string  `json:"question"`
	Options       Options `json:"options"`
	CorrectAnswer string  `json:"correctAnswer"` // one of "A".."D"
}

// Variant selects the instructional framing of a request. The response
// schema is identical for both.
type Variant string

const (
	VariantQuiz      Variant = "quiz"
	VariantFinalTest Variant = "finalTest"
)

// Metadata describes an assessment for display. It is computed purely
// from the variant, never from the generated response, and plays no
// role in scoring.
type Metadata struct {
	Difficulty   string
	TimeEstimate string
	Alignment    string
}

// MetadataFor returns the static descriptive metadata for a variant.
func MetadataFor(v Variant) Metadata {
	if v == VariantFinalTest {
		return Metadata{
			Difficulty:   "Comprehensive",
			TimeEstimate: "10-15 minutes",
			Alignment:    "Covers the full breadth of the module, weighted toward applied understanding.",
		}
	}
	return Metadata{
		Difficulty:   "Fundamentals",
		TimeEstimate: "5-8 minutes",
		Alignment:    "Checks the core concepts introduced by the module's study materials.",
	}
}
