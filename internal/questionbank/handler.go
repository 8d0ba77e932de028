package questionbank

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/certprep/backend/internal/models"
)

// Handler serves the read-only question browsing endpoints and the
// admin reload surface.
type Handler struct {
	repo    *Repository
	csvPath string
}

func NewHandler(repo *Repository, csvPath string) *Handler {
	return &Handler{repo: repo, csvPath: csvPath}
}

// ListQuestions returns a page of questions, stripped of their correct
// answers, optionally narrowed by the quiz filters.
func (h *Handler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filters := models.QuizFilters{
		Category: query.Get("category"),
	}
	if s := query.Get("department"); s != "" {
		dept := models.Department(s)
		if !models.ValidDepartments[dept] {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "invalid department"})
			return
		}
		filters.Department = dept
	}
	if s := query.Get("question_type"); s != "" {
		qt := models.QuestionType(s)
		if !models.ValidQuestionTypes[qt] {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "question_type must be 'basic' or 'specialist'"})
			return
		}
		filters.QuestionType = qt
	}
	if s := query.Get("year"); s != "" {
		year, err := strconv.Atoi(s)
		if err != nil || year < 0 {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "invalid year"})
			return
		}
		filters.Year = year
	}

	limit := intQueryParam(query, "limit", 50)
	offset := intQueryParam(query, "offset", 0)

	matched := h.repo.Filter(filters)
	total := len(matched)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	questions := []models.QuizQuestion{}
	for _, q := range matched[offset:end] {
		questions = append(questions, q.ToQuizQuestion(false))
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"questions": questions,
		"total":     total,
		"limit":     limit,
		"offset":    offset,
	})
}

func (h *Handler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid question ID"})
		return
	}

	q, ok := h.repo.ByID(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Question not found"})
		return
	}

	writeJSON(w, http.StatusOK, q.ToQuizQuestion(false))
}

// Reload re-reads the question CSV and swaps the new set in. A failed
// load leaves the current set untouched.
func (h *Handler) Reload(w http.ResponseWriter, r *http.Request) {
	if h.csvPath == "" {
		writeJSON(w, http.StatusConflict, models.ErrorResponse{Error: "No question file configured; serving the built-in sample set"})
		return
	}

	if err := h.repo.LoadCSV(h.csvPath); err != nil {
		log.Printf("ERROR: question reload from %s: %v", h.csvPath, err)
		writeJSON(w, http.StatusUnprocessableEntity, models.ErrorResponse{Error: "Reload failed: " + err.Error()})
		return
	}

	summary := h.repo.Summary()
	log.Printf("[questionbank] reloaded %d questions from %s", summary.Total, h.csvPath)
	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.repo.Summary())
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func intQueryParam(query url.Values, key string, defaultVal int) int {
	s := query.Get(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return defaultVal
	}
	return v
}
