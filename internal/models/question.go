package models

type QuestionType string

const (
	TypeBasic      QuestionType = "basic"
	TypeSpecialist QuestionType = "specialist"
)

var ValidQuestionTypes = map[QuestionType]bool{
	TypeBasic:      true,
	TypeSpecialist: true,
}

type Department string

const (
	DeptCivil         Department = "civil"
	DeptConstruction  Department = "construction"
	DeptElectrical    Department = "electrical"
	DeptMechanical    Department = "mechanical"
	DeptWaterSupply   Department = "water_supply"
	DeptEnvironment   Department = "environment"
	DeptAgriculture   Department = "agriculture"
	DeptForestry      Department = "forestry"
	DeptFisheries     Department = "fisheries"
	DeptInformation   Department = "information"
	DeptChemistry     Department = "chemistry"
	DeptUrbanPlanning Department = "urban_planning"
)

var ValidDepartments = map[Department]bool{
	DeptCivil:         true,
	DeptConstruction:  true,
	DeptElectrical:    true,
	DeptMechanical:    true,
	DeptWaterSupply:   true,
	DeptEnvironment:   true,
	DeptAgriculture:   true,
	DeptForestry:      true,
	DeptFisheries:     true,
	DeptInformation:   true,
	DeptChemistry:     true,
	DeptUrbanPlanning: true,
}

// ValidAnswers are the accepted answer letters for every question.
var ValidAnswers = map[string]bool{"A": true, "B": true, "C": true, "D": true}

// Question is one loaded question record. The set is read-only per
// process: loaded once from CSV (or the built-in sample set) and
// replaced wholesale by an explicit admin reload.
type Question struct {
	ID            int64        `json:"id"`
	Category      string       `json:"category"`
	Department    Department   `json:"department,omitempty"`
	QuestionType  QuestionType `json:"question_type"`
	Year          int          `json:"year,omitempty"`
	Difficulty    string       `json:"difficulty,omitempty"`
	Text          string       `json:"text"`
	ChoiceA       string       `json:"choice_a"`
	ChoiceB       string       `json:"choice_b"`
	ChoiceC       string       `json:"choice_c"`
	ChoiceD       string       `json:"choice_d"`
	CorrectAnswer string       `json:"-"`
	Explanation   string       `json:"-"`
}

// Choices returns the four answer choices keyed by letter.
func (q *Question) Choices() map[string]string {
	return map[string]string{
		"A": q.ChoiceA,
		"B": q.ChoiceB,
		"C": q.ChoiceC,
		"D": q.ChoiceD,
	}
}

// CategoryAll is the sentinel meaning "no category filter".
const CategoryAll = "ALL"

// QuizFilters narrows the candidate pool for a quiz session.
// Zero values mean "no filter"; Category additionally accepts the
// "ALL" sentinel. Year only constrains specialist questions.
type QuizFilters struct {
	Category     string       `json:"category,omitempty"`
	Department   Department   `json:"department,omitempty"`
	QuestionType QuestionType `json:"question_type,omitempty"`
	Year         int          `json:"year,omitempty"`
}

// Match reports whether q satisfies every active filter.
func (f QuizFilters) Match(q *Question) bool {
	if f.Category != "" && f.Category != CategoryAll && q.Category != f.Category {
		return false
	}
	if f.Department != "" && q.Department != f.Department {
		return false
	}
	if f.QuestionType != "" && q.QuestionType != f.QuestionType {
		return false
	}
	if f.Year != 0 && q.QuestionType == TypeSpecialist && q.Year != f.Year {
		return false
	}
	return true
}

// BankSummary reports loaded question counts for the admin endpoint.
type BankSummary struct {
	Total         int                  `json:"total"`
	ByType        map[QuestionType]int `json:"by_type"`
	ByDepartment  map[Department]int   `json:"by_department"`
	CategoryCount int                  `json:"category_count"`
	Source        string               `json:"source"`
}
