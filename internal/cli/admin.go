package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"quizdesk/internal/quiz"
)

func (a *App) runAdmin(ctx context.Context, reader *bufio.Reader, out io.Writer) error {
	for {
		course, ok, err := a.pickCourse(ctx, reader, out)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		if err := a.adminCourseMenu(ctx, course, reader, out); err != nil {
			return err
		}
	}
}

func (a *App) adminCourseMenu(ctx context.Context, course quiz.Course, reader *bufio.Reader, out io.Writer) error {
	for {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Managing %s:\n", course.Name)
		fmt.Fprintln(out, "  1. List questions")
		fmt.Fprintln(out, "  2. Add question")
		fmt.Fprintln(out, "  3. Edit question")
		fmt.Fprintln(out, "  4. Delete question")
		fmt.Fprintln(out, "  b. Back to course list")
		fmt.Fprint(out, "> ")

		choice, err := readLine(reader)
		if err != nil {
			return nil
		}

		var actionErr error
		switch strings.ToLower(choice) {
		case "1":
			actionErr = a.listQuestions(ctx, course, out)
		case "2":
			actionErr = a.addQuestion(ctx, course, reader, out)
		case "3":
			actionErr = a.editQuestion(ctx, course, reader, out)
		case "4":
			actionErr = a.deleteQuestion(ctx, course, reader, out)
		case "b", "back":
			return nil
		default:
			fmt.Fprintln(out, "Please choose 1-4 or b.")
			continue
		}

		if actionErr != nil {
			if !surfaceError(out, actionErr) {
				return actionErr
			}
		}
	}
}

// surfaceError prints operator-addressable failures and reports whether the
// error was handled. Anything else propagates and aborts the flow.
func surfaceError(out io.Writer, err error) bool {
	switch {
	case quiz.IsValidation(err):
		fmt.Fprintf(out, "Input error: %v\n", err)
	case errors.Is(err, quiz.ErrDuplicateQuestion):
		fmt.Fprintln(out, "A question with this text already exists.")
	case errors.Is(err, quiz.ErrNotFound):
		fmt.Fprintln(out, "No question with that id.")
	case errors.Is(err, quiz.ErrUnknownCourse):
		fmt.Fprintln(out, "That course no longer exists.")
	default:
		return false
	}
	return true
}

func (a *App) listQuestions(ctx context.Context, course quiz.Course, out io.Writer) error {
	questions, err := a.service.Questions(ctx, course.Table)
	if err != nil {
		return err
	}
	if len(questions) == 0 {
		fmt.Fprintln(out, "No questions yet.")
		return nil
	}

	fmt.Fprintln(out)
	for _, question := range questions {
		fmt.Fprintf(out, "[%d] %s\n", question.ID, question.Text)
		for _, label := range quiz.Labels {
			fmt.Fprintf(out, "     %s) %s\n", label, question.Options[label])
		}
		fmt.Fprintf(out, "     Answer: %s\n", quiz.DisplayAnswer(question))
	}
	return nil
}

func (a *App) addQuestion(ctx context.Context, course quiz.Course, reader *bufio.Reader, out io.Writer) error {
	input, err := promptQuestionInput(reader, out, nil)
	if err != nil {
		return nil
	}

	question, err := a.editor.Add(ctx, course.Table, input)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Question added with id %d.\n", question.ID)
	return nil
}

func (a *App) editQuestion(ctx context.Context, course quiz.Course, reader *bufio.Reader, out io.Writer) error {
	id, ok := a.promptID(reader, out)
	if !ok {
		return nil
	}

	existing, err := a.findQuestion(ctx, course.Table, id)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Press enter to keep the current value.")
	input, err := promptQuestionInput(reader, out, &existing)
	if err != nil {
		return nil
	}

	if _, err := a.editor.Update(ctx, course.Table, id, input); err != nil {
		return err
	}
	fmt.Fprintln(out, "Question updated.")
	return nil
}

func (a *App) deleteQuestion(ctx context.Context, course quiz.Course, reader *bufio.Reader, out io.Writer) error {
	id, ok := a.promptID(reader, out)
	if !ok {
		return nil
	}

	fmt.Fprintf(out, "Delete question %d from %s? (y/n): ", id, course.Name)
	confirm, err := readLine(reader)
	if err != nil || !strings.EqualFold(confirm, "y") {
		fmt.Fprintln(out, "Cancelled.")
		return nil
	}

	if err := a.editor.Delete(ctx, course.Table, id); err != nil {
		return err
	}
	fmt.Fprintln(out, "Question deleted.")
	return nil
}

func (a *App) findQuestion(ctx context.Context, course string, id int64) (quiz.Question, error) {
	questions, err := a.service.Questions(ctx, course)
	if err != nil {
		return quiz.Question{}, err
	}
	for _, question := range questions {
		if question.ID == id {
			return question, nil
		}
	}
	return quiz.Question{}, quiz.ErrNotFound
}

func (a *App) promptID(reader *bufio.Reader, out io.Writer) (int64, bool) {
	fmt.Fprint(out, "Question id: ")
	raw, err := readLine(reader)
	if err != nil {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		fmt.Fprintln(out, "Ids are positive numbers.")
		return 0, false
	}
	return id, true
}

// promptQuestionInput walks the admin through every field. When existing is
// non-nil its values are offered as defaults for blank input.
func promptQuestionInput(reader *bufio.Reader, out io.Writer, existing *quiz.Question) (quiz.QuestionInput, error) {
	defaults := quiz.QuestionInput{}
	if existing != nil {
		defaults = quiz.QuestionInput{
			Text:        existing.Text,
			OptionA:     existing.Options[quiz.LabelA],
			OptionB:     existing.Options[quiz.LabelB],
			OptionC:     existing.Options[quiz.LabelC],
			OptionD:     existing.Options[quiz.LabelD],
			Correct:     string(existing.Correct),
			Explanation: existing.Explanation,
		}
	}

	ask := func(label, current string) (string, error) {
		if current != "" {
			fmt.Fprintf(out, "%s [%s]: ", label, current)
		} else {
			fmt.Fprintf(out, "%s: ", label)
		}
		value, err := readLine(reader)
		if err != nil {
			return "", err
		}
		if value == "" {
			return current, nil
		}
		return value, nil
	}

	var input quiz.QuestionInput
	var err error
	if input.Text, err = ask("Question text", defaults.Text); err != nil {
		return input, err
	}
	if input.OptionA, err = ask("Option A", defaults.OptionA); err != nil {
		return input, err
	}
	if input.OptionB, err = ask("Option B", defaults.OptionB); err != nil {
		return input, err
	}
	if input.OptionC, err = ask("Option C", defaults.OptionC); err != nil {
		return input, err
	}
	if input.OptionD, err = ask("Option D", defaults.OptionD); err != nil {
		return input, err
	}
	if input.Correct, err = ask("Correct answer (A, B, C or D)", defaults.Correct); err != nil {
		return input, err
	}
	input.Correct = strings.ToUpper(input.Correct)
	if input.Explanation, err = ask("Explanation (optional)", defaults.Explanation); err != nil {
		return input, err
	}
	return input, nil
}
