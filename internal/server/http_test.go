package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/internal/trivia"
)

type fakeQuestionStore struct {
	questions []trivia.Question
	insertErr error
	deleteErr error
}

func (s *fakeQuestionStore) List(ctx context.Context) ([]trivia.Question, error) {
	return s.questions, nil
}

func (s *fakeQuestionStore) GetByID(ctx context.Context, id int) (trivia.Question, error) {
	for _, q := range s.questions {
		if q.ID == id {
			return q, nil
		}
	}
	return trivia.Question{}, trivia.ErrNotFound
}

func (s *fakeQuestionStore) Insert(ctx context.Context, q *trivia.Question) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	q.ID = len(s.questions) + 1
	s.questions = append(s.questions, *q)
	return nil
}

func (s *fakeQuestionStore) Delete(ctx context.Context, id int) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	for i, q := range s.questions {
		if q.ID == id {
			s.questions = append(s.questions[:i], s.questions[i+1:]...)
			return nil
		}
	}
	return trivia.ErrNotFound
}

type fakeCategoryStore struct {
	categories []trivia.Category
}

func (s *fakeCategoryStore) List(ctx context.Context) ([]trivia.Category, error) {
	return s.categories, nil
}

func (s *fakeCategoryStore) GetByID(ctx context.Context, id int) (trivia.Category, error) {
	for _, c := range s.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return trivia.Category{}, trivia.ErrNotFound
}

func newTestServer(store *fakeQuestionStore) http.Handler {
	categories := &fakeCategoryStore{categories: []trivia.Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
	}}
	svc := trivia.NewService(store, categories, nil)
	handler := trivia.NewHTTPHandler(svc, zerolog.Nop())

	cfg := &config.App{
		HTTPAddr: "127.0.0.1:0",
		CORS: config.CORS{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type"},
			MaxAge:         3600,
		},
	}
	return NewHTTPServer(cfg, zerolog.Nop(), nil, nil, handler).Handler
}

func storeOf(n int) *fakeQuestionStore {
	store := &fakeQuestionStore{}
	for i := 1; i <= n; i++ {
		category := "1"
		if i%2 == 0 {
			category = "2"
		}
		store.questions = append(store.questions, trivia.Question{
			ID:         i,
			Question:   fmt.Sprintf("Question number %d", i),
			Answer:     fmt.Sprintf("Answer %d", i),
			Category:   category,
			Difficulty: 1,
		})
	}
	return store
}

func doJSON(t *testing.T, h http.Handler, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 {
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec, decoded
}

func TestGetCategories(t *testing.T) {
	h := newTestServer(storeOf(0))

	rec, body := doJSON(t, h, http.MethodGet, "/api/categories", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(2), body["total_categories"])

	categories := body["categories"].(map[string]any)
	assert.Equal(t, "Science", categories["1"])
	assert.Equal(t, "Art", categories["2"])
}

func TestListQuestionsPages(t *testing.T) {
	h := newTestServer(storeOf(19))

	rec, body := doJSON(t, h, http.MethodGet, "/api/questions", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, body["questions"].([]any), 10)
	assert.Equal(t, float64(19), body["total_questions"])
	assert.Nil(t, body["current_category"])
	assert.NotNil(t, body["categories"])

	rec, body = doJSON(t, h, http.MethodGet, "/api/questions?page=2", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, body["questions"].([]any), 9)

	rec, body = doJSON(t, h, http.MethodGet, "/api/questions?page=3", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, float64(404), body["error"])
	assert.Equal(t, "resource not found", body["message"])
}

func TestDeleteQuestion(t *testing.T) {
	store := storeOf(3)
	h := newTestServer(store)

	rec, body := doJSON(t, h, http.MethodDelete, "/api/questions/2", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(2), body["deleted"])
	assert.Len(t, store.questions, 2)

	// absent id reports unprocessable, not not-found
	rec, body = doJSON(t, h, http.MethodDelete, "/api/questions/2", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "unprocessable", body["message"])
}

func TestCreateQuestion(t *testing.T) {
	store := storeOf(2)
	h := newTestServer(store)

	rec, body := doJSON(t, h, http.MethodPost, "/api/questions",
		`{"question":"What is the capital of Peru?","answer":"Lima","category":"2","difficulty":3}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(3), body["created"])
	assert.Equal(t, float64(3), body["total_questions"])
}

func TestCreateQuestionBlankTextRejected(t *testing.T) {
	store := storeOf(2)
	h := newTestServer(store)

	for _, payload := range []string{
		`{"question":"","answer":"Lima","category":"2","difficulty":3}`,
		`{"question":"Capital of Peru?","answer":"   ","category":"2","difficulty":3}`,
	} {
		rec, body := doJSON(t, h, http.MethodPost, "/api/questions", payload)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "bad request", body["message"])
	}
	assert.Len(t, store.questions, 2, "total count unchanged after rejected creates")
}

func TestSearchViaPost(t *testing.T) {
	h := newTestServer(storeOf(12))

	rec, body := doJSON(t, h, http.MethodPost, "/api/questions", `{"searchTerm":"NUMBER 1"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	// matches "number 1", "number 10" .. "number 12"
	assert.Len(t, body["questions"].([]any), 4)

	rec, _ = doJSON(t, h, http.MethodPost, "/api/questions", `{"searchTerm":"   "}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSearchViaPath(t *testing.T) {
	h := newTestServer(storeOf(5))

	rec, body := doJSON(t, h, http.MethodGet, "/api/questions/number%203/questionTerm", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, body["questions"].([]any), 1)
}

func TestCategoryQuestions(t *testing.T) {
	h := newTestServer(storeOf(5))

	rec, body := doJSON(t, h, http.MethodGet, "/api/categories/2/questions", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2), body["current_category"])
	assert.Equal(t, float64(2), body["total_questions"])
	assert.Len(t, body["questions"].([]any), 2)

	rec, _ = doJSON(t, h, http.MethodGet, "/api/categories/9/questions", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestQuizFlow(t *testing.T) {
	store := &fakeQuestionStore{questions: []trivia.Question{
		{ID: 20, Question: "Q20", Answer: "A", Category: "1"},
		{ID: 21, Question: "Q21", Answer: "B", Category: "1"},
		{ID: 22, Question: "Q22", Answer: "C", Category: "1"},
	}}
	h := newTestServer(store)

	rec, body := doJSON(t, h, http.MethodPost, "/api/quizzes",
		`{"quiz_category":{"id":1},"previous_questions":[20,21]}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	question := body["question"].(map[string]any)
	assert.Equal(t, float64(22), question["id"])

	rec, body = doJSON(t, h, http.MethodPost, "/api/quizzes",
		`{"quiz_category":{"id":1},"previous_questions":[20,21,22]}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "the quiz is completed", body["message"])
	assert.Nil(t, body["question"])
}

func TestQuizValidation(t *testing.T) {
	h := newTestServer(storeOf(3))

	for _, payload := range []string{
		`{"previous_questions":[1]}`,
		`{"quiz_category":{"id":1}}`,
		`{"quiz_category":{},"previous_questions":[]}`,
		`not json`,
	} {
		rec, body := doJSON(t, h, http.MethodPost, "/api/quizzes", payload)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "payload %s", payload)
		assert.Equal(t, "bad request", body["message"])
	}

	// empty history with a category present is a valid first call
	rec, body := doJSON(t, h, http.MethodPost, "/api/quizzes",
		`{"quiz_category":{"id":0},"previous_questions":[]}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotNil(t, body["question"])
}

func TestPreflightShortCircuits(t *testing.T) {
	h := newTestServer(storeOf(1))

	req := httptest.NewRequest(http.MethodOptions, "/api/questions", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
