package sqlite

import (
	"context"
	"fmt"

	"quizdesk/internal/quiz"
)

// courseSchema is the standard shape of every course table. Question text is
// unique within a course so reseeding can key on it; the correct answer is a
// bare label constrained to the four option slots.
const courseSchema = `CREATE TABLE IF NOT EXISTS %q (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	question_text TEXT NOT NULL,
	option_A TEXT NOT NULL,
	option_B TEXT NOT NULL,
	option_C TEXT NOT NULL,
	option_D TEXT NOT NULL,
	correct_option TEXT NOT NULL CHECK (correct_option IN ('A','B','C','D')),
	explanation TEXT DEFAULT NULL,
	UNIQUE(question_text)
);`

func (s *Store) CreateCourseTables(ctx context.Context, courses []quiz.Course) error {
	for _, course := range courses {
		stmt := fmt.Sprintf(courseSchema, course.Table)
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return wrapStore(err)
		}
	}
	return nil
}
