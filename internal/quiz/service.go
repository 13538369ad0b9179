package quiz

import (
	"context"
	"math/rand"

	"go.uber.org/zap"
)

// Service orchestrates the student-facing flow on top of the repository:
// course discovery and session creation. It holds no cross-call state; each
// session is owned by its caller.
type Service struct {
	repo         Repository
	maxQuestions int
	log          *zap.Logger
	rng          *rand.Rand
}

// NewService builds a service drawing at most maxQuestions per attempt
// (non-positive means no cap). A nil rng leaves sessions time-seeded.
func NewService(repo Repository, maxQuestions int, rng *rand.Rand, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		repo:         repo,
		maxQuestions: maxQuestions,
		log:          log,
		rng:          rng,
	}
}

// Courses enumerates the store's course tables, resolved to display names.
// Order follows the store and is only meaningful for display.
func (s *Service) Courses(ctx context.Context) ([]Course, error) {
	tables, err := s.repo.ListCourses(ctx)
	if err != nil {
		return nil, err
	}
	courses := make([]Course, 0, len(tables))
	for _, table := range tables {
		courses = append(courses, CourseForTable(table))
	}
	return courses, nil
}

// Questions returns every question of a course, storage order.
func (s *Service) Questions(ctx context.Context, course string) ([]Question, error) {
	return s.repo.FetchQuestions(ctx, course)
}

// StartSession draws the course's questions and returns a running session.
func (s *Service) StartSession(ctx context.Context, course string) (*Session, error) {
	questions, err := s.repo.FetchQuestions(ctx, course)
	if err != nil {
		return nil, err
	}

	session := NewSession(s.rng)
	if err := session.Start(course, questions, s.maxQuestions); err != nil {
		return nil, err
	}

	s.log.Info("session started",
		zap.String("course", course),
		zap.Int("questions", session.Total()),
	)
	return session, nil
}
