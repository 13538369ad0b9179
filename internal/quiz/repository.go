package quiz

import (
	"context"
	"strings"
)

// Course is a named quiz category backed by one table of questions.
type Course struct {
	Name  string // display name
	Table string // store table name
}

// DefaultCourses maps the built-in categories to their table names. The
// repository never assumes this list is exhaustive: courses are enumerated
// from the store's table names, so adding a course means adding a table with
// the standard schema.
var DefaultCourses = []Course{
	{Name: "Business Applications", Table: "Business_Applications"},
	{Name: "Business Management", Table: "Business_Management"},
	{Name: "Business Analytics", Table: "Business_Analytics"},
	{Name: "Business Database Management", Table: "Business_Database_Management"},
}

// CourseForTable resolves a table name to a Course, falling back to a
// display name derived from the table name for courses added after deploy.
func CourseForTable(table string) Course {
	for _, course := range DefaultCourses {
		if course.Table == table {
			return course
		}
	}
	return Course{Name: strings.ReplaceAll(table, "_", " "), Table: table}
}

// Repository is the CRUD boundary between the question model and the
// relational store. Implementations convert every low-level store failure
// into one of the package sentinel errors; nothing rawer crosses this
// boundary. Courses are identified by table name throughout.
type Repository interface {
	// ListCourses returns all non-system table names. Order is store-defined.
	ListCourses(ctx context.Context) ([]string, error)

	// FetchQuestions materializes every row of the course's table.
	FetchQuestions(ctx context.Context, course string) ([]Question, error)

	// CountQuestions reports the number of rows in the course's table.
	CountQuestions(ctx context.Context, course string) (int, error)

	// InsertQuestion adds a new question and returns it with its assigned
	// id. Duplicate question text fails with ErrDuplicateQuestion.
	InsertQuestion(ctx context.Context, course string, q Question) (Question, error)

	// UpsertQuestion inserts the question or, when its text already exists,
	// overwrites that row's options, correct label and explanation. Returns
	// the stored row with its id either way.
	UpsertQuestion(ctx context.Context, course string, q Question) (Question, error)

	// UpdateQuestion replaces all editable fields of the row with q.ID in a
	// single statement. Missing ids fail with ErrNotFound.
	UpdateQuestion(ctx context.Context, course string, q Question) error

	// DeleteQuestion removes the row by id. Missing ids fail with ErrNotFound.
	DeleteQuestion(ctx context.Context, course string, id int64) error

	// CreateCourseTables creates the standard schema for each course if
	// absent. Safe to call repeatedly.
	CreateCourseTables(ctx context.Context, courses []Course) error
}
