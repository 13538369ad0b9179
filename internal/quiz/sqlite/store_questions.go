package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"quizdesk/internal/quiz"
)

func (s *Store) ListCourses(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%'`,
	)
	if err != nil {
		return nil, wrapStore(err)
	}
	defer rows.Close()

	courses := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, wrapStore(err)
		}
		courses = append(courses, name)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStore(err)
	}
	return courses, nil
}

func (s *Store) CountQuestions(ctx context.Context, course string) (int, error) {
	table, err := s.resolveTable(ctx, course)
	if err != nil {
		return 0, err
	}

	var count int
	err = s.db.QueryRowContext(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM %q`, table)).Scan(&count)
	if err != nil {
		return 0, wrapStore(err)
	}
	return count, nil
}

func (s *Store) FetchQuestions(ctx context.Context, course string) ([]quiz.Question, error) {
	table, err := s.resolveTable(ctx, course)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(
		`SELECT id, question_text, option_A, option_B, option_C, option_D, correct_option, COALESCE(explanation, '')
		 FROM %q ORDER BY id`,
		table,
	))
	if err != nil {
		return nil, wrapStore(err)
	}
	defer rows.Close()

	questions := make([]quiz.Question, 0)
	for rows.Next() {
		question, err := scanQuestion(rows)
		if err != nil {
			return nil, wrapStore(err)
		}
		questions = append(questions, question)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStore(err)
	}
	return questions, nil
}

func scanQuestion(rows *sql.Rows) (quiz.Question, error) {
	var (
		question                           quiz.Question
		optionA, optionB, optionC, optionD string
		correct                            string
	)
	if err := rows.Scan(
		&question.ID,
		&question.Text,
		&optionA,
		&optionB,
		&optionC,
		&optionD,
		&correct,
		&question.Explanation,
	); err != nil {
		return quiz.Question{}, err
	}

	question.Options = map[quiz.Label]string{
		quiz.LabelA: optionA,
		quiz.LabelB: optionB,
		quiz.LabelC: optionC,
		quiz.LabelD: optionD,
	}
	question.Correct = quiz.Label(correct)
	return question, nil
}

func (s *Store) InsertQuestion(ctx context.Context, course string, q quiz.Question) (quiz.Question, error) {
	if err := q.Validate(); err != nil {
		return quiz.Question{}, err
	}
	table, err := s.resolveTable(ctx, course)
	if err != nil {
		return quiz.Question{}, err
	}

	result, err := s.db.ExecContext(ctx, fmt.Sprintf(
		`INSERT INTO %q (question_text, option_A, option_B, option_C, option_D, correct_option, explanation)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		table,
	), insertArgs(q)...)
	if err != nil {
		if isUniqueViolation(err) {
			return quiz.Question{}, quiz.ErrDuplicateQuestion
		}
		return quiz.Question{}, wrapStore(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return quiz.Question{}, wrapStore(err)
	}
	q.ID = id
	return q, nil
}

func (s *Store) UpsertQuestion(ctx context.Context, course string, q quiz.Question) (quiz.Question, error) {
	if err := q.Validate(); err != nil {
		return quiz.Question{}, err
	}
	table, err := s.resolveTable(ctx, course)
	if err != nil {
		return quiz.Question{}, err
	}

	_, err = s.db.ExecContext(ctx, fmt.Sprintf(
		`INSERT INTO %q (question_text, option_A, option_B, option_C, option_D, correct_option, explanation)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(question_text) DO UPDATE SET
			option_A = excluded.option_A,
			option_B = excluded.option_B,
			option_C = excluded.option_C,
			option_D = excluded.option_D,
			correct_option = excluded.correct_option,
			explanation = excluded.explanation`,
		table,
	), insertArgs(q)...)
	if err != nil {
		return quiz.Question{}, wrapStore(err)
	}

	// On conflict the existing row keeps its id; question text is unique, so
	// look the id up rather than trusting LastInsertId.
	err = s.db.QueryRowContext(ctx, fmt.Sprintf(
		`SELECT id FROM %q WHERE question_text = ?`, table,
	), q.Text).Scan(&q.ID)
	if err != nil {
		return quiz.Question{}, wrapStore(err)
	}
	return q, nil
}

func (s *Store) UpdateQuestion(ctx context.Context, course string, q quiz.Question) error {
	if err := q.Validate(); err != nil {
		return err
	}
	table, err := s.resolveTable(ctx, course)
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, fmt.Sprintf(
		`UPDATE %q SET
			question_text = ?,
			option_A = ?,
			option_B = ?,
			option_C = ?,
			option_D = ?,
			correct_option = ?,
			explanation = ?
		 WHERE id = ?`,
		table,
	), append(insertArgs(q), q.ID)...)
	if err != nil {
		if isUniqueViolation(err) {
			return quiz.ErrDuplicateQuestion
		}
		return wrapStore(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return wrapStore(err)
	}
	if affected == 0 {
		return quiz.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteQuestion(ctx context.Context, course string, id int64) error {
	table, err := s.resolveTable(ctx, course)
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %q WHERE id = ?`, table), id)
	if err != nil {
		return wrapStore(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return wrapStore(err)
	}
	if affected == 0 {
		return quiz.ErrNotFound
	}
	return nil
}

func insertArgs(q quiz.Question) []any {
	explanation := sql.NullString{String: q.Explanation, Valid: q.Explanation != ""}
	return []any{
		q.Text,
		q.Options[quiz.LabelA],
		q.Options[quiz.LabelB],
		q.Options[quiz.LabelC],
		q.Options[quiz.LabelD],
		string(q.Correct),
		explanation,
	}
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}
