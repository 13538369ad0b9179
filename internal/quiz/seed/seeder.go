// Package seed populates the store with the built-in question sets. Seeding
// upserts keyed on question text, so it is safe to run any number of times
// without duplicating rows or erroring.
package seed

import (
	"context"

	"go.uber.org/zap"

	"quizdesk/internal/quiz"
)

type Seeder struct {
	repo quiz.Repository
	log  *zap.Logger
}

func NewSeeder(repo quiz.Repository, log *zap.Logger) *Seeder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Seeder{repo: repo, log: log}
}

// EnsureReady checks every built-in course and reseeds when any of them is
// empty or the check itself fails (missing schema on first run).
func (s *Seeder) EnsureReady(ctx context.Context) error {
	for _, course := range quiz.DefaultCourses {
		count, err := s.repo.CountQuestions(ctx, course.Table)
		if err != nil || count == 0 {
			if err != nil {
				s.log.Info("seeding: course check failed, reseeding",
					zap.String("course", course.Name),
					zap.Error(err),
				)
			}
			return s.CreateAndPopulate(ctx)
		}
	}
	return nil
}

// CreateAndPopulate creates the course tables if absent and upserts every
// seed question.
func (s *Seeder) CreateAndPopulate(ctx context.Context) error {
	if err := s.repo.CreateCourseTables(ctx, quiz.DefaultCourses); err != nil {
		return err
	}

	for table, rows := range defaultSets() {
		for _, row := range rows {
			if _, err := s.repo.UpsertQuestion(ctx, table, normalizeRow(row)); err != nil {
				return err
			}
		}
		s.log.Info("seeded course",
			zap.String("table", table),
			zap.Int("questions", len(rows)),
		)
	}
	return nil
}
