package trivia

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// QuestionStore is the persistence boundary for questions. Implemented by
// repository.QuestionRepository.
type QuestionStore interface {
	List(ctx context.Context) ([]Question, error)
	GetByID(ctx context.Context, id int) (Question, error)
	Insert(ctx context.Context, q *Question) error
	Delete(ctx context.Context, id int) error
}

// CategoryStore is the persistence boundary for categories.
type CategoryStore interface {
	List(ctx context.Context) ([]Category, error)
	GetByID(ctx context.Context, id int) (Category, error)
}

// CategoryCache defines cache behavior for the category list (implemented by
// the Redis-backed Cache). A nil cache disables caching.
type CategoryCache interface {
	Get(ctx context.Context) ([]Category, error)
	Set(ctx context.Context, categories []Category) error
}

// Service implements question retrieval, quiz selection and the thin
// create/delete operations over a per-request store snapshot.
type Service struct {
	questions  QuestionStore
	categories CategoryStore
	cache      CategoryCache
}

func NewService(questions QuestionStore, categories CategoryStore, cache CategoryCache) *Service {
	return &Service{
		questions:  questions,
		categories: categories,
		cache:      cache,
	}
}

// Categories returns all categories, preferring the cache and falling back
// to the store. Cache failures degrade to a store read.
func (s *Service) Categories(ctx context.Context) ([]Category, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, categories)
	}
	return categories, nil
}

// ListQuestions returns the requested page of the full question listing plus
// the total count. A page that yields zero items is ErrNotFound.
func (s *Service) ListQuestions(ctx context.Context, page int) ([]Question, int, error) {
	all, err := s.questions.List(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list questions: %w", err)
	}
	current := paginate(all, page)
	if len(current) == 0 {
		return nil, 0, ErrNotFound
	}
	return current, len(all), nil
}

// Search returns every question whose text contains term case-insensitively,
// in store order and unpaginated. A term that trims to empty is ErrNotFound:
// no search is performed (decision recorded in DESIGN.md).
func (s *Service) Search(ctx context.Context, term string) ([]Question, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, ErrNotFound
	}
	all, err := s.questions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	return filterByText(term, all), nil
}

// QuestionsByCategory returns the requested page of questions in the given
// category plus the category total. An empty page is ErrNotFound.
func (s *Service) QuestionsByCategory(ctx context.Context, categoryID, page int) ([]Question, int, error) {
	all, err := s.questions.List(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list questions: %w", err)
	}
	scoped := filterByCategory(strconv.Itoa(categoryID), all)
	current := paginate(scoped, page)
	if len(current) == 0 {
		return nil, 0, ErrNotFound
	}
	return current, len(scoped), nil
}

// GetQuestion looks up a single question by id.
func (s *Service) GetQuestion(ctx context.Context, id int) (Question, error) {
	return s.questions.GetByID(ctx, id)
}

// CreateQuestion validates and inserts a new question, returning the
// store-assigned id and the updated total count. Question and answer must be
// non-empty after trimming.
func (s *Service) CreateQuestion(ctx context.Context, input NewQuestionInput) (int, int, error) {
	if strings.TrimSpace(input.Question) == "" || strings.TrimSpace(input.Answer) == "" {
		return 0, 0, ErrInvalidInput
	}
	q := Question{
		Question:   input.Question,
		Answer:     input.Answer,
		Category:   input.Category,
		Difficulty: input.Difficulty,
	}
	if err := s.questions.Insert(ctx, &q); err != nil {
		return 0, 0, fmt.Errorf("%w: insert question: %w", ErrUnprocessable, err)
	}
	all, err := s.questions.List(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count questions: %w", err)
	}
	return q.ID, len(all), nil
}

// DeleteQuestion removes a question by id. An absent id is ErrNotFound; a
// store-level removal failure is ErrUnprocessable.
func (s *Service) DeleteQuestion(ctx context.Context, id int) error {
	if _, err := s.questions.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.questions.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: delete question: %w", ErrUnprocessable, err)
	}
	return nil
}

// NextQuestion picks one uniformly-random question from the category scope
// (AllCategories means no scope) excluding previously served ids. done is
// true when no unseen question remains; the exclusion set is supplied fresh
// by the caller each call and never held server-side.
func (s *Service) NextQuestion(ctx context.Context, categoryID int, previousIDs []int) (Question, bool, error) {
	all, err := s.questions.List(ctx)
	if err != nil {
		return Question{}, false, fmt.Errorf("list questions: %w", err)
	}
	candidates := all
	if categoryID != AllCategories {
		candidates = filterByCategory(strconv.Itoa(categoryID), all)
	}
	candidates = excludeIDs(candidates, previousIDs)
	if len(candidates) == 0 {
		return Question{}, true, nil
	}
	return pickRandom(candidates), false, nil
}
