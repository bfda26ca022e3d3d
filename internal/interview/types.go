package interview

// Role is the position the candidate is interviewing for.
type Role string

const (
	RoleSoftwareEngineer Role = "software_engineer"
	RoleDataAnalyst      Role = "data_analyst"
	RoleProductManager   Role = "product_manager"
)

// Valid reports whether the role is one of the supported values.
func (r Role) Valid() bool {
	switch r {
	case RoleSoftwareEngineer, RoleDataAnalyst, RoleProductManager:
		return true
	}
	return false
}

// Display returns the human-readable form used in prompts.
func (r Role) Display() string {
	switch r {
	case RoleSoftwareEngineer:
		return "Software Engineer"
	case RoleDataAnalyst:
		return "Data Analyst"
	case RoleProductManager:
		return "Product Manager"
	}
	return string(r)
}

// Field describes the candidate's background.
type Field string

const (
	FieldStudent      Field = "student"
	FieldProfessional Field = "professional"
)

func (f Field) Valid() bool {
	return f == FieldStudent || f == FieldProfessional
}

// Difficulty controls how demanding the generated questions are.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// Display returns the human-readable form used in prompts.
func (d Difficulty) Display() string {
	switch d {
	case DifficultyBeginner:
		return "Beginner"
	case DifficultyIntermediate:
		return "Intermediate"
	case DifficultyAdvanced:
		return "Advanced"
	}
	return string(d)
}

// ResponseMode selects how the candidate answers questions.
type ResponseMode string

const (
	ModeText  ResponseMode = "text"
	ModeVoice ResponseMode = "voice"
)

func (m ResponseMode) Valid() bool {
	return m == ModeText || m == ModeVoice
}

// Phase is the discrete stage of an interview session.
type Phase string

const (
	PhaseSetup     Phase = "setup"
	PhaseAsking    Phase = "asking"
	PhaseReviewing Phase = "reviewing"
	PhaseDone      Phase = "done"
)

// Question is a single generated interview question. Questions are created
// in bulk when the session starts and never mutated afterwards.
type Question struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Candidate holds the setup form data. Immutable for the session's lifetime.
type Candidate struct {
	Name       string       `json:"name"`
	Role       Role         `json:"role"`
	Field      Field        `json:"field"`
	Difficulty Difficulty   `json:"difficulty"`
	Mode       ResponseMode `json:"response_mode"`
}

// State is the full mutable session aggregate. Commands on Session return a
// copy of it so callers can render without racing the next command.
//
// Invariants: CurrentIndex indexes Questions while the phase is asking or
// reviewing; PendingFeedback is non-empty exactly in the reviewing phase;
// the phase is done exactly when CurrentIndex == len(Questions).
type State struct {
	Candidate       Candidate  `json:"candidate"`
	Questions       []Question `json:"questions"`
	CurrentIndex    int        `json:"current_index"`
	PendingFeedback string     `json:"pending_feedback"`
	Phase           Phase      `json:"phase"`
}

// NewState returns the pristine setup-phase state.
func NewState() State {
	return State{Phase: PhaseSetup}
}

// CurrentQuestion returns the question at CurrentIndex, if any.
func (s State) CurrentQuestion() (Question, bool) {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Questions) {
		return Question{}, false
	}
	return s.Questions[s.CurrentIndex], true
}

// clone returns a value copy with its own questions slice.
func (s State) clone() State {
	out := s
	if s.Questions != nil {
		out.Questions = make([]Question, len(s.Questions))
		copy(out.Questions, s.Questions)
	}
	return out
}
