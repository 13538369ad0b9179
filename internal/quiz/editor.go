package quiz

import (
	"context"

	"go.uber.org/zap"

	"quizdesk/pkg/validator"
)

// QuestionInput carries one admin form submission. Every field except the
// explanation is required; the correct answer is a bare label referencing one
// of the four options.
type QuestionInput struct {
	Text        string `validate:"required"`
	OptionA     string `validate:"required"`
	OptionB     string `validate:"required"`
	OptionC     string `validate:"required"`
	OptionD     string `validate:"required"`
	Correct     string `validate:"required,oneof=A B C D"`
	Explanation string
}

func (in QuestionInput) question() Question {
	return Question{
		Text: in.Text,
		Options: map[Label]string{
			LabelA: in.OptionA,
			LabelB: in.OptionB,
			LabelC: in.OptionC,
			LabelD: in.OptionD,
		},
		Correct:     Label(in.Correct),
		Explanation: in.Explanation,
	}
}

// Editor validates admin create/update/delete requests and delegates to the
// repository. It carries no state beyond the duplicate policy: when
// strictDuplicates is set, adding a question whose text already exists is
// rejected instead of silently overwriting the stored row.
type Editor struct {
	repo             Repository
	strictDuplicates bool
	log              *zap.Logger
}

func NewEditor(repo Repository, strictDuplicates bool, log *zap.Logger) *Editor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Editor{
		repo:             repo,
		strictDuplicates: strictDuplicates,
		log:              log,
	}
}

func (e *Editor) validate(in QuestionInput) error {
	if err := validator.ValidateStruct(in); err != nil {
		return &ValidationError{Fields: validator.Fields(err)}
	}
	return nil
}

// Add validates and stores a new question, returning it with its assigned id.
func (e *Editor) Add(ctx context.Context, course string, in QuestionInput) (Question, error) {
	if err := e.validate(in); err != nil {
		return Question{}, err
	}

	var (
		stored Question
		err    error
	)
	if e.strictDuplicates {
		stored, err = e.repo.InsertQuestion(ctx, course, in.question())
	} else {
		stored, err = e.repo.UpsertQuestion(ctx, course, in.question())
	}
	if err != nil {
		return Question{}, err
	}

	e.log.Info("question added",
		zap.String("course", course),
		zap.Int64("id", stored.ID),
	)
	return stored, nil
}

// Update validates and replaces all editable fields of an existing question.
func (e *Editor) Update(ctx context.Context, course string, id int64, in QuestionInput) (Question, error) {
	if id <= 0 {
		return Question{}, &ValidationError{Fields: []string{"id"}}
	}
	if err := e.validate(in); err != nil {
		return Question{}, err
	}

	updated := in.question()
	updated.ID = id
	if err := e.repo.UpdateQuestion(ctx, course, updated); err != nil {
		return Question{}, err
	}

	e.log.Info("question updated",
		zap.String("course", course),
		zap.Int64("id", id),
	)
	return updated, nil
}

// Delete removes a question by id. Confirmation is the caller's concern; the
// repository deletes unconditionally.
func (e *Editor) Delete(ctx context.Context, course string, id int64) error {
	if err := e.repo.DeleteQuestion(ctx, course, id); err != nil {
		return err
	}
	e.log.Info("question deleted",
		zap.String("course", course),
		zap.Int64("id", id),
	)
	return nil
}
