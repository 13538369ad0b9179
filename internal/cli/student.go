package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"quizdesk/internal/quiz"
)

func (a *App) runStudent(ctx context.Context, reader *bufio.Reader, out io.Writer) error {
	for {
		course, ok, err := a.pickCourse(ctx, reader, out)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		session, err := a.service.StartSession(ctx, course.Table)
		if err != nil {
			if errors.Is(err, quiz.ErrNoQuestions) {
				fmt.Fprintf(out, "No questions found for %s.\n", course.Name)
				continue
			}
			return err
		}

		a.runQuiz(session, reader, out)

		fmt.Fprintf(out, "\nQuiz finished! Your score: %d out of %d\n", session.Score(), session.Total())
		a.log.Info("quiz completed",
			zap.String("course", course.Table),
			zap.Int("score", session.Score()),
			zap.Int("total", session.Total()),
		)

		fmt.Fprint(out, "\nTake another quiz? (y/n): ")
		again, err := readLine(reader)
		if err != nil || !strings.EqualFold(again, "y") {
			return nil
		}
	}
}

func (a *App) runQuiz(session *quiz.Session, reader *bufio.Reader, out io.Writer) {
	for session.State() == quiz.StateInProgress {
		prompt, err := session.Current()
		if err != nil {
			return
		}
		printPrompt(out, prompt)

		chosen, ok := getAnswer(reader, out, len(prompt.Options))
		fmt.Fprintln(out)
		if ok {
			if err := session.Answer(prompt.QuestionID, prompt.Options[chosen].Text); err == nil {
				printFeedback(out, session)
			}
		} else {
			fmt.Fprintln(out, "Skipping.")
		}

		if _, err := session.Advance(); err != nil {
			return
		}
	}
}

func printPrompt(out io.Writer, prompt quiz.Prompt) {
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Question %d/%d: %s\n\n", prompt.Number, prompt.Total, prompt.Text)
	for _, option := range prompt.Options {
		fmt.Fprintf(out, "%s) %s\n", option.Letter, option.Text)
	}
	fmt.Fprintln(out)
}

func printFeedback(out io.Writer, session *quiz.Session) {
	feedback, err := session.CheckCurrent()
	if err != nil {
		return
	}
	if feedback.Correct {
		fmt.Fprintln(out, "Correct!")
	} else {
		fmt.Fprintf(out, "Incorrect. The correct answer was: %s\n", feedback.CorrectAnswer)
	}
	if feedback.Explanation != "" && !feedback.Correct {
		fmt.Fprintf(out, "Explanation: %s\n", feedback.Explanation)
	}
}

func getAnswer(reader *bufio.Reader, out io.Writer, optionCount int) (int, bool) {
	if optionCount < 1 {
		return -1, false
	}

	maxLetter := byte('A' + optionCount - 1)
	fmt.Fprintf(out, "Your answer (A-%c): ", maxLetter)

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		answer, err := readLine(reader)
		if err != nil {
			return -1, false
		}

		answer = strings.ToUpper(answer)
		if len(answer) == 1 {
			letter := answer[0]
			if letter >= 'A' && letter <= maxLetter {
				return int(letter - 'A'), true
			}
		}

		if attempt < maxAttempts {
			fmt.Fprintf(out, "Invalid input. Please enter a letter A-%c: ", maxLetter)
		}
	}

	return -1, false
}
