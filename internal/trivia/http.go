package trivia

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

// HTTPHandler exposes the REST endpoints of the trivia API.
type HTTPHandler struct {
	svc    *Service
	logger zerolog.Logger
}

// NewHTTPHandler constructs a trivia HTTP handler.
func NewHTTPHandler(svc *Service, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		svc:    svc,
		logger: logger.With().Str("component", "trivia_http").Logger(),
	}
}

// HandleCategories responds with all categories as an {id: type} map.
// Route: GET /api/categories
func (h *HTTPHandler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.Categories(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("category listing failed")
		httperrors.RespondInternalError(w)
		return
	}

	writeJSON(w, map[string]any{
		"success":          true,
		"categories":       CategoryMap(categories),
		"total_categories": len(categories),
	})
}

// HandleListQuestions responds with one page of the question listing.
// Route: GET /api/questions?page=N
func (h *HTTPHandler) HandleListQuestions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page := ParsePage(r.URL.Query().Get("page"))

	questions, total, err := h.svc.ListQuestions(ctx, page)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	categories, err := h.svc.Categories(ctx)
	if err != nil {
		h.logger.Error().Err(err).Msg("category listing failed")
		httperrors.RespondInternalError(w)
		return
	}

	writeJSON(w, map[string]any{
		"success":          true,
		"questions":        questions,
		"total_questions":  total,
		"current_category": nil,
		"categories":       CategoryMap(categories),
	})
}

type createOrSearchRequest struct {
	Question   string  `json:"question"`
	Answer     string  `json:"answer"`
	Category   string  `json:"category"`
	Difficulty int     `json:"difficulty"`
	SearchTerm *string `json:"searchTerm"`
}

// HandleCreateOrSearch creates a question, or searches when the body carries
// a searchTerm field.
// Route: POST /api/questions
func (h *HTTPHandler) HandleCreateOrSearch(w http.ResponseWriter, r *http.Request) {
	var body createOrSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httperrors.RespondBadRequest(w)
		return
	}

	if body.SearchTerm != nil {
		h.search(w, r, *body.SearchTerm)
		return
	}

	created, total, err := h.svc.CreateQuestion(r.Context(), NewQuestionInput{
		Question:   body.Question,
		Answer:     body.Answer,
		Category:   body.Category,
		Difficulty: body.Difficulty,
	})
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	writeJSON(w, map[string]any{
		"success":         true,
		"created":         created,
		"total_questions": total,
	})
}

// HandleSearchTerm searches by a path-supplied term.
// Route: GET /api/questions/{term}/questionTerm
func (h *HTTPHandler) HandleSearchTerm(w http.ResponseWriter, r *http.Request) {
	h.search(w, r, r.PathValue("term"))
}

func (h *HTTPHandler) search(w http.ResponseWriter, r *http.Request, term string) {
	questions, err := h.svc.Search(r.Context(), term)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	writeJSON(w, map[string]any{
		"success":   true,
		"questions": questions,
	})
}

// HandleDeleteQuestion removes a question by id. An absent id reports 422,
// not 404, preserving the source API's distinction.
// Route: DELETE /api/questions/{id}
func (h *HTTPHandler) HandleDeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httperrors.RespondNotFound(w)
		return
	}

	if err := h.svc.DeleteQuestion(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrUnprocessable) {
			httperrors.RespondUnprocessable(w)
			return
		}
		h.logger.Error().Err(err).Int("question_id", id).Msg("delete failed")
		httperrors.RespondInternalError(w)
		return
	}

	writeJSON(w, map[string]any{
		"success": true,
		"deleted": id,
	})
}

// HandleCategoryQuestions responds with one page of a category's questions.
// Route: GET /api/categories/{id}/questions?page=N
func (h *HTTPHandler) HandleCategoryQuestions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	categoryID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httperrors.RespondNotFound(w)
		return
	}
	page := ParsePage(r.URL.Query().Get("page"))

	questions, total, err := h.svc.QuestionsByCategory(ctx, categoryID, page)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	categories, err := h.svc.Categories(ctx)
	if err != nil {
		h.logger.Error().Err(err).Msg("category listing failed")
		httperrors.RespondInternalError(w)
		return
	}

	writeJSON(w, map[string]any{
		"success":          true,
		"questions":        questions,
		"total_questions":  total,
		"current_category": categoryID,
		"categories":       CategoryMap(categories),
	})
}

type quizCategory struct {
	ID *int `json:"id"`
}

type quizRequest struct {
	QuizCategory      *quizCategory `json:"quiz_category"`
	PreviousQuestions *[]int        `json:"previous_questions"`
}

// HandleQuiz returns one unseen random question for the requested scope, or
// the completion message once the scope is exhausted. Quiz history is
// client-supplied per request; the server holds no session state.
// Route: POST /api/quizzes
func (h *HTTPHandler) HandleQuiz(w http.ResponseWriter, r *http.Request) {
	var body quizRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httperrors.RespondBadRequest(w)
		return
	}
	if body.QuizCategory == nil || body.QuizCategory.ID == nil || body.PreviousQuestions == nil {
		httperrors.RespondBadRequest(w)
		return
	}

	question, done, err := h.svc.NextQuestion(r.Context(), *body.QuizCategory.ID, *body.PreviousQuestions)
	if err != nil {
		h.logger.Error().Err(err).Msg("quiz selection failed")
		httperrors.RespondInternalError(w)
		return
	}

	if done {
		writeJSON(w, map[string]any{
			"success": true,
			"message": "the quiz is completed",
		})
		return
	}

	writeJSON(w, map[string]any{
		"success":  true,
		"question": question,
	})
}

func (h *HTTPHandler) respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httperrors.RespondNotFound(w)
	case errors.Is(err, ErrInvalidInput):
		httperrors.RespondBadRequest(w)
	case errors.Is(err, ErrUnprocessable):
		httperrors.RespondUnprocessable(w)
	default:
		h.logger.Error().Err(err).Msg("request failed")
		httperrors.RespondInternalError(w)
	}
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
