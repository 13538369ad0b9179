// Package cli implements the terminal surfaces: the login gate, the student
// quiz flow and the admin question editor. All prompts read from one
// bufio.Reader and write to one io.Writer so flows can be driven by tests.
package cli

import (
	"bufio"
	"context"
	"crypto/subtle"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"quizdesk/internal/quiz"
)

const maxAttempts = 3

type App struct {
	service       *quiz.Service
	editor        *quiz.Editor
	adminPassword string
	log           *zap.Logger
}

func New(service *quiz.Service, editor *quiz.Editor, adminPassword string, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	return &App{
		service:       service,
		editor:        editor,
		adminPassword: adminPassword,
		log:           log,
	}
}

// Run presents the role gate and dispatches to the chosen flow until the
// operator quits.
func (a *App) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)

	for {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Welcome. Choose your login:")
		fmt.Fprintln(out, "  1. Student")
		fmt.Fprintln(out, "  2. Admin")
		fmt.Fprintln(out, "  q. Quit")
		fmt.Fprint(out, "> ")

		choice, err := readLine(reader)
		if err != nil {
			return nil
		}

		switch strings.ToLower(choice) {
		case "1", "student":
			if err := a.runStudent(ctx, reader, out); err != nil {
				return err
			}
		case "2", "admin":
			if err := a.adminLogin(reader, out); err != nil {
				fmt.Fprintln(out, "Access denied.")
				continue
			}
			if err := a.runAdmin(ctx, reader, out); err != nil {
				return err
			}
		case "q", "quit", "exit":
			return nil
		default:
			fmt.Fprintln(out, "Please choose 1, 2 or q.")
		}
	}
}

func (a *App) adminLogin(reader *bufio.Reader, out io.Writer) error {
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		fmt.Fprint(out, "Admin password: ")
		password, err := readLine(reader)
		if err != nil {
			return err
		}
		if subtle.ConstantTimeCompare([]byte(password), []byte(a.adminPassword)) == 1 {
			return nil
		}
		if attempt < maxAttempts {
			fmt.Fprintln(out, "Wrong password, try again.")
		}
	}
	a.log.Warn("admin login rejected")
	return quiz.ErrWrongPassword
}

// pickCourse lists the store's courses and returns the selection, or ok false
// when the operator backs out.
func (a *App) pickCourse(ctx context.Context, reader *bufio.Reader, out io.Writer) (quiz.Course, bool, error) {
	courses, err := a.service.Courses(ctx)
	if err != nil {
		return quiz.Course{}, false, err
	}
	if len(courses) == 0 {
		fmt.Fprintln(out, "No courses found in the database.")
		return quiz.Course{}, false, nil
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Courses:")
	for idx, course := range courses {
		fmt.Fprintf(out, "  %d. %s\n", idx+1, course.Name)
	}
	fmt.Fprint(out, "Pick a course (or b to go back): ")

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		choice, err := readLine(reader)
		if err != nil {
			return quiz.Course{}, false, nil
		}
		if strings.EqualFold(choice, "b") {
			return quiz.Course{}, false, nil
		}
		if number, ok := parseIndex(choice, len(courses)); ok {
			return courses[number-1], true, nil
		}
		if attempt < maxAttempts {
			fmt.Fprintf(out, "Enter a number 1-%d: ", len(courses))
		}
	}
	return quiz.Course{}, false, nil
}

func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func parseIndex(s string, max int) (int, bool) {
	number, err := strconv.Atoi(s)
	if err != nil || number < 1 || number > max {
		return 0, false
	}
	return number, true
}
