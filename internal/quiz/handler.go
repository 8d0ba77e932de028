package quiz

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/certprep/backend/internal/models"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// getUserID extracts the authenticated user ID from the request context.
func getUserID(r *http.Request) (int64, bool) {
	uid, ok := r.Context().Value("user_id").(int64)
	return uid, ok
}

func (h *Handler) StartQuiz(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req models.StartQuizRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
			return
		}
	}

	filters, errMsg := parseFilters(req)
	if errMsg != "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: errMsg})
		return
	}
	if req.Size < 0 {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "size must not be negative"})
		return
	}

	resp, err := h.service.StartQuiz(userID, filters, req.Size)
	if err != nil {
		if errors.Is(err, ErrNoQuestions) {
			writeJSON(w, http.StatusConflict, models.ErrorResponse{Error: "No questions match the requested filters"})
			return
		}
		log.Printf("ERROR: start quiz for user %d: %v", userID, err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to start quiz"})
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) CurrentQuestion(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
		return
	}

	resp, err := h.service.Current(userID)
	if err != nil {
		if errors.Is(err, ErrNoActiveSession) {
			writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "No active quiz session"})
			return
		}
		log.Printf("ERROR: current question for user %d: %v", userID, err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load current question"})
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req models.AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if req.QuestionID <= 0 {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "question_id is required"})
		return
	}
	if !models.ValidAnswers[req.Answer] {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "answer must be 'A', 'B', 'C', or 'D'"})
		return
	}
	if req.TimeSpentSeconds != nil && *req.TimeSpentSeconds < 0 {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "time_spent_seconds must not be negative"})
		return
	}

	resp, err := h.service.SubmitAnswer(userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoActiveSession):
			writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "No active quiz session"})
		case errors.Is(err, ErrUnknownQuestion):
			writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Question not found"})
		case errors.Is(err, ErrNotCurrentQuestion):
			writeJSON(w, http.StatusConflict, models.ErrorResponse{Error: "Answer must target the current question"})
		default:
			log.Printf("ERROR: submit answer for user %d: %v", userID, err)
			writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to submit answer"})
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) DueReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
		return
	}

	resp, err := h.service.DueReview(userID)
	if err != nil {
		log.Printf("ERROR: due review for user %d: %v", userID, err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load due questions"})
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
		return
	}

	resp, err := h.service.Stats(userID)
	if err != nil {
		log.Printf("ERROR: stats for user %d: %v", userID, err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load stats"})
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
		return
	}

	query := r.URL.Query()

	var correct *bool
	if s := query.Get("correct"); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "correct must be true or false"})
			return
		}
		correct = &v
	}

	page := intQueryParam(query, "page", 1)
	if page < 1 {
		page = 1
	}
	pageSize := intQueryParam(query, "page_size", 20)
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	resp, err := h.service.History(userID, correct, page, pageSize)
	if err != nil {
		log.Printf("ERROR: history for user %d: %v", userID, err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load history"})
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Mistakes lists the learner's wrong answers for re-study.
func (h *Handler) Mistakes(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
		return
	}

	query := r.URL.Query()
	page := intQueryParam(query, "page", 1)
	if page < 1 {
		page = 1
	}
	pageSize := intQueryParam(query, "page_size", 20)
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	wrong := false
	resp, err := h.service.History(userID, &wrong, page, pageSize)
	if err != nil {
		log.Printf("ERROR: mistakes for user %d: %v", userID, err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load mistakes"})
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func parseFilters(req models.StartQuizRequest) (models.QuizFilters, string) {
	filters := models.QuizFilters{
		Category: req.Category,
		Year:     req.Year,
	}

	if req.Department != "" {
		dept := models.Department(req.Department)
		if !models.ValidDepartments[dept] {
			return filters, "invalid department"
		}
		filters.Department = dept
	}
	if req.QuestionType != "" {
		qt := models.QuestionType(req.QuestionType)
		if !models.ValidQuestionTypes[qt] {
			return filters, "question_type must be 'basic' or 'specialist'"
		}
		filters.QuestionType = qt
	}
	if req.Year < 0 {
		return filters, "year must be positive"
	}
	return filters, ""
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
