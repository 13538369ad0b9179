package cli

import (
	"bytes"
	"context"
	"math/rand"
	"path/filepath"
	"strings"
	"testing"

	"quizdesk/internal/quiz"
	"quizdesk/internal/quiz/sqlite"
)

func newTestApp(t *testing.T) (*App, *sqlite.Store) {
	t.Helper()

	store, err := sqlite.NewStore(filepath.Join(t.TempDir(), "cli_test.db"))
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()
	if err := store.CreateCourseTables(ctx, quiz.DefaultCourses); err != nil {
		t.Fatalf("CreateCourseTables failed: %v", err)
	}

	service := quiz.NewService(store, 10, rand.New(rand.NewSource(3)), nil)
	editor := quiz.NewEditor(store, true, nil)
	return New(service, editor, "admin", nil), store
}

func TestParseIndexRejectsOutOfRangeInput(t *testing.T) {
	if got, ok := parseIndex("3", 4); !ok || got != 3 {
		t.Fatalf("expected 3, got %d %v", got, ok)
	}

	for _, input := range []string{
		"", "0", "5", "-1", "b", "1x",
		// Would wrap back to 1 under unchecked digit accumulation.
		"18446744073709551617",
		"99999999999999999999999999999999",
	} {
		if got, ok := parseIndex(input, 4); ok {
			t.Fatalf("parseIndex(%q) accepted with %d", input, got)
		}
	}
}

func TestStudentFlowEndToEnd(t *testing.T) {
	app, store := newTestApp(t)
	ctx := context.Background()

	question := quiz.Question{
		Text: "Capital of France?",
		Options: map[quiz.Label]string{
			quiz.LabelA: "London",
			quiz.LabelB: "Paris",
			quiz.LabelC: "Berlin",
			quiz.LabelD: "Madrid",
		},
		Correct: quiz.LabelB,
	}
	if _, err := store.InsertQuestion(ctx, "Business_Applications", question); err != nil {
		t.Fatalf("InsertQuestion failed: %v", err)
	}

	// Student login, first course, answer A, decline another round, quit.
	in := strings.NewReader("1\n1\nA\nn\nq\n")
	var out bytes.Buffer

	if err := app.Run(ctx, in, &out); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "Question 1/1: Capital of France?") {
		t.Fatalf("question not shown:\n%s", output)
	}
	if !strings.Contains(output, "Your score: ") {
		t.Fatalf("final score not shown:\n%s", output)
	}
}

func TestAdminFlowAddsAndListsQuestion(t *testing.T) {
	app, _ := newTestApp(t)

	// Admin login, first course, add a question, list it, back out, quit.
	script := strings.Join([]string{
		"2",     // admin role
		"admin", // password
		"1",     // first course
		"2",     // add question
		"What is 2+2?",
		"3", "4", "5", "6", // options A-D
		"B", // correct label
		"",  // no explanation
		"1", // list questions
		"b", // back to course list
		"b", // back to role gate
		"q",
	}, "\n") + "\n"

	var out bytes.Buffer
	if err := app.Run(context.Background(), strings.NewReader(script), &out); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "Question added with id 1.") {
		t.Fatalf("add confirmation missing:\n%s", output)
	}
	if !strings.Contains(output, "[1] What is 2+2?") {
		t.Fatalf("listing missing:\n%s", output)
	}
	if !strings.Contains(output, "Answer: B) 4") {
		t.Fatalf("derived composite missing:\n%s", output)
	}
}

func TestAdminLoginRejectsWrongPassword(t *testing.T) {
	app, _ := newTestApp(t)

	in := strings.NewReader("2\nnope\nwrong\nstill wrong\nq\n")
	var out bytes.Buffer
	if err := app.Run(context.Background(), in, &out); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if !strings.Contains(out.String(), "Access denied.") {
		t.Fatalf("expected access denied:\n%s", out.String())
	}
}

func TestAdminDeleteRequiresConfirmation(t *testing.T) {
	app, store := newTestApp(t)
	ctx := context.Background()

	inserted, err := store.InsertQuestion(ctx, "Business_Applications", quiz.Question{
		Text: "Delete me?",
		Options: map[quiz.Label]string{
			quiz.LabelA: "a", quiz.LabelB: "b", quiz.LabelC: "c", quiz.LabelD: "d",
		},
		Correct: quiz.LabelA,
	})
	if err != nil {
		t.Fatalf("InsertQuestion failed: %v", err)
	}

	// Decline the confirmation: the row must survive.
	script := "2\nadmin\n1\n4\n1\nn\nb\nb\nq\n"
	var out bytes.Buffer
	if err := app.Run(ctx, strings.NewReader(script), &out); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(out.String(), "Cancelled.") {
		t.Fatalf("expected cancellation:\n%s", out.String())
	}

	questions, err := store.FetchQuestions(ctx, "Business_Applications")
	if err != nil {
		t.Fatalf("FetchQuestions failed: %v", err)
	}
	if len(questions) != 1 || questions[0].ID != inserted.ID {
		t.Fatalf("row deleted without confirmation: %+v", questions)
	}

	// Confirm this time: the row must go.
	script = "2\nadmin\n1\n4\n1\ny\nb\nb\nq\n"
	out.Reset()
	if err := app.Run(ctx, strings.NewReader(script), &out); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(out.String(), "Question deleted.") {
		t.Fatalf("expected deletion:\n%s", out.String())
	}

	questions, err = store.FetchQuestions(ctx, "Business_Applications")
	if err != nil {
		t.Fatalf("FetchQuestions failed: %v", err)
	}
	if len(questions) != 0 {
		t.Fatalf("row survived confirmed delete: %+v", questions)
	}
}
