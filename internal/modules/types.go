// Package modules defines the study module data model: one module per topic,
// carrying its resources, generated assignment, quiz history, and final test
// outcome. Modules are persisted as per-user documents (see internal/store).
package modules

import "time"

// Status tracks how far a learner has progressed through a module.
// Transitions are owned by the phase state machine and are monotonic,
// except needs_revisit -> started via an explicit reset.
type Status string

const (
	StatusStarted        Status = "started"
	StatusResourcesAdded Status = "resources_added"
	StatusAssignmentDone Status = "assignment_done"
	StatusCompleted      Status = "completed"
	StatusNeedsRevisit   Status = "needs_revisit"
)

// CertificationThreshold is the score at or above which a final test
// earns the certificate. Quizzes use the same bar to gate advancement.
const CertificationThreshold = 80.0

// TeacherPick is a single curated resource recommendation produced by
// the content generator. URL may be empty.
type TeacherPick struct {
	Title string `json:"title"`
	URL   string `json:"url,omitempty"`
}

// Scenario frames an assignment or a section with a short narrative.
type Scenario struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// TaskType describes how the learner answers an assignment task.
type TaskType string

const (
	TaskTypeText TaskType = "text_input"
	TaskTypeCode TaskType = "code_input"
)

// Task is a single unit of work inside an assignment section.
// Submissions are recorded verbatim, never evaluated.
type Task struct {
	TaskID          string   `json:"task_id"`
	TaskDescription string   `json:"task_description"`
	Marks           int      `json:"marks"`
	Type            TaskType `json:"type"`
	Language        string   `json:"language,omitempty"`
}

// Section groups tasks under a sub-scenario, worth a block of marks.
type Section struct {
	SectionID    string   `json:"section_id"`
	SectionTitle string   `json:"section_title"`
	Marks        int      `json:"marks"`
	SubScenario  Scenario `json:"sub_scenario"`
	Tasks        []Task   `json:"tasks"`
}

// AssignmentResource is a supporting reference attached to an assignment.
type AssignmentResource struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Type     string `json:"type"`
	Category string `json:"category"`
}

// AssignmentContent is the structured multi-section assignment produced by
// the content generator. Per-task and per-section marks are carried as
// generated; no arithmetic consistency with TotalMarks is enforced.
type AssignmentContent struct {
	Title      string               `json:"title"`
	TotalMarks int                  `json:"total_marks"`
	Scenario   Scenario             `json:"scenario"`
	Sections   []Section            `json:"sections"`
	Resources  []AssignmentResource `json:"resources"`
}

// AssignmentState records the learner's progress through the assignment.
// Responses maps section_id -> task_id -> submitted text.
type AssignmentState struct {
	Completed bool                         `json:"completed"`
	Responses map[string]map[string]string `json:"responses,omitempty"`
}

// QuizAttempt is one recorded quiz submission. Every submission is
// recorded regardless of score.
type QuizAttempt struct {
	Score float64   `json:"score"`
	Date  time.Time `json:"date"`
}

// Module is the central entity: one per topic of study.
type Module struct {
	ID                string             `json:"id"`
	Name              string             `json:"name"`
	Status            Status             `json:"status"`
	Resources         []string           `json:"resources"`
	TeacherPicks      []TeacherPick      `json:"teacherPicks"`
	AssignmentContent *AssignmentContent `json:"assignmentContent,omitempty"`
	Assignments       AssignmentState    `json:"assignments"`
	Quizzes           []QuizAttempt      `json:"quizzes"`
	FinalTestScore    float64            `json:"finalTestScore"`
	CertificateIssued bool               `json:"certificateIssued"`
	CreatedAt         time.Time          `json:"createdAt"`
	LastUpdated       time.Time          `json:"lastUpdated"`
}

// HasContent reports whether generated study content is present. A module
// without content must re-trigger generation before the learner can
// progress past the assignment phase.
func (m *Module) HasContent() bool {
	return m.AssignmentContent != nil && len(m.TeacherPicks) > 0
}

// AllQuizzesPassed reports whether the quiz list is non-empty and every
// recorded attempt met the certification threshold.
func (m *Module) AllQuizzesPassed() bool {
	if len(m.Quizzes) == 0 {
		return false
	}
	for _, q := range m.Quizzes {
		if q.Score < CertificationThreshold {
			return false
		}
	}
	return true
}
