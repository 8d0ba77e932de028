package questionbank

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/certprep/backend/internal/models"
)

// csvColumns is the expected header of a question CSV file, in order.
var csvColumns = []string{
	"id", "category", "department", "question_type", "year", "difficulty",
	"text", "choice_a", "choice_b", "choice_c", "choice_d",
	"correct_answer", "explanation",
}

// ParseCSV reads a question CSV file. The first row must be the header.
// Rows with a malformed id, answer letter, or question type fail the
// whole load: a partially loaded bank is worse than the fallback set.
func ParseCSV(r io.Reader) ([]models.Question, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty file")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if err := checkHeader(header); err != nil {
		return nil, err
	}

	var questions []models.Question
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		q, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		questions = append(questions, q)
	}

	if len(questions) == 0 {
		return nil, fmt.Errorf("no question rows")
	}
	return questions, nil
}

func checkHeader(header []string) error {
	if len(header) != len(csvColumns) {
		return fmt.Errorf("expected %d columns, got %d", len(csvColumns), len(header))
	}
	for i, want := range csvColumns {
		if strings.TrimSpace(strings.ToLower(header[i])) != want {
			return fmt.Errorf("column %d: expected %q, got %q", i+1, want, header[i])
		}
	}
	return nil
}

func parseRecord(record []string) (models.Question, error) {
	var q models.Question

	if len(record) != len(csvColumns) {
		return q, fmt.Errorf("expected %d fields, got %d", len(csvColumns), len(record))
	}

	id, err := strconv.ParseInt(strings.TrimSpace(record[0]), 10, 64)
	if err != nil {
		return q, fmt.Errorf("invalid id %q", record[0])
	}
	q.ID = id
	q.Category = strings.TrimSpace(record[1])
	q.Department = models.Department(strings.TrimSpace(record[2]))
	q.QuestionType = models.QuestionType(strings.TrimSpace(record[3]))

	if year := strings.TrimSpace(record[4]); year != "" {
		y, err := strconv.Atoi(year)
		if err != nil {
			return q, fmt.Errorf("invalid year %q", record[4])
		}
		q.Year = y
	}

	q.Difficulty = strings.TrimSpace(record[5])
	q.Text = record[6]
	q.ChoiceA = record[7]
	q.ChoiceB = record[8]
	q.ChoiceC = record[9]
	q.ChoiceD = record[10]
	q.CorrectAnswer = strings.ToUpper(strings.TrimSpace(record[11]))
	q.Explanation = record[12]

	if q.Category == "" {
		return q, fmt.Errorf("empty category")
	}
	if q.Text == "" {
		return q, fmt.Errorf("empty question text")
	}
	return q, nil
}
