package questionbank

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/certprep/backend/internal/models"
)

const csvHeader = "id,category,department,question_type,year,difficulty,text,choice_a,choice_b,choice_c,choice_d,correct_answer,explanation\n"

func TestParseCSV(t *testing.T) {
	data := csvHeader +
		`101,road,civil,basic,,standard,Which course carries the load?,Surface,Base,Subbase,Seal,B,Base course spreads the load.` + "\n" +
		`102,power_systems,electrical,specialist,2024,advanced,"Line voltage, star connection?",1,sqrt(2),sqrt(3),3,c,V_line = sqrt(3) x V_phase.` + "\n"

	questions, err := ParseCSV(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, questions, 2)

	q := questions[0]
	assert.Equal(t, int64(101), q.ID)
	assert.Equal(t, "road", q.Category)
	assert.Equal(t, models.DeptCivil, q.Department)
	assert.Equal(t, models.TypeBasic, q.QuestionType)
	assert.Equal(t, 0, q.Year)
	assert.Equal(t, "B", q.CorrectAnswer)

	q = questions[1]
	assert.Equal(t, 2024, q.Year)
	assert.Equal(t, models.TypeSpecialist, q.QuestionType)
	assert.Equal(t, "Line voltage, star connection?", q.Text, "quoted fields keep embedded commas")
	assert.Equal(t, "C", q.CorrectAnswer, "answer letter is upper-cased")
}

func TestParseCSVErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty file", ""},
		{"header only", csvHeader},
		{"wrong header", "id,category,text\n1,road,q\n"},
		{"bad id", csvHeader + "abc,road,civil,basic,,std,q,a,b,c,d,A,x\n"},
		{"bad year", csvHeader + "1,road,civil,specialist,twenty,std,q,a,b,c,d,A,x\n"},
		{"empty category", csvHeader + "1,,civil,basic,,std,q,a,b,c,d,A,x\n"},
		{"empty text", csvHeader + "1,road,civil,basic,,std,,a,b,c,d,A,x\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCSV(strings.NewReader(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestParseCSVFailsWholeLoadOnOneBadRow(t *testing.T) {
	data := csvHeader +
		"1,road,civil,basic,,std,q,a,b,c,d,A,x\n" +
		"bad,road,civil,basic,,std,q,a,b,c,d,A,x\n"

	_, err := ParseCSV(strings.NewReader(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
}
