package modules

// Patch is a partial module update for merge writes. Nil fields are left
// untouched by the store; set fields replace the stored value wholesale.
// LastUpdated is refreshed by the store on every merge, so it has no
// field here.
type Patch struct {
	Name              *string
	Status            *Status
	Resources         *[]string
	TeacherPicks      *[]TeacherPick
	AssignmentContent *AssignmentContent
	Assignments       *AssignmentState
	Quizzes           *[]QuizAttempt
	FinalTestScore    *float64
	CertificateIssued *bool
}

// IsZero reports whether the patch carries no fields.
func (p Patch) IsZero() bool {
	return p.Name == nil && p.Status == nil && p.Resources == nil &&
		p.TeacherPicks == nil && p.AssignmentContent == nil &&
		p.Assignments == nil && p.Quizzes == nil &&
		p.FinalTestScore == nil && p.CertificateIssued == nil
}

// Helpers for building patches without intermediate variables.

func StatusPtr(s Status) *Status          { return &s }
func Float64Ptr(f float64) *float64       { return &f }
func BoolPtr(b bool) *bool                { return &b }
func StringsPtr(s []string) *[]string     { return &s }
func QuizzesPtr(q []QuizAttempt) *[]QuizAttempt { return &q }
func PicksPtr(p []TeacherPick) *[]TeacherPick   { return &p }
