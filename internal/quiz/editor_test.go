package quiz

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	byID   map[int64]Question
	nextID int64

	insertCalls int
	upsertCalls int
	updateCalls int
	deleteCalls int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: make(map[int64]Question), nextID: 1}
}

func (f *fakeRepo) ListCourses(_ context.Context) ([]string, error) {
	return []string{"Business_Applications"}, nil
}

func (f *fakeRepo) FetchQuestions(_ context.Context, _ string) ([]Question, error) {
	out := make([]Question, 0, len(f.byID))
	for _, q := range f.byID {
		out = append(out, q)
	}
	return out, nil
}

func (f *fakeRepo) CountQuestions(_ context.Context, _ string) (int, error) {
	return len(f.byID), nil
}

func (f *fakeRepo) InsertQuestion(_ context.Context, _ string, q Question) (Question, error) {
	f.insertCalls++
	for _, existing := range f.byID {
		if existing.Text == q.Text {
			return Question{}, ErrDuplicateQuestion
		}
	}
	q.ID = f.nextID
	f.nextID++
	f.byID[q.ID] = q
	return q, nil
}

func (f *fakeRepo) UpsertQuestion(_ context.Context, _ string, q Question) (Question, error) {
	f.upsertCalls++
	for id, existing := range f.byID {
		if existing.Text == q.Text {
			q.ID = id
			f.byID[id] = q
			return q, nil
		}
	}
	q.ID = f.nextID
	f.nextID++
	f.byID[q.ID] = q
	return q, nil
}

func (f *fakeRepo) UpdateQuestion(_ context.Context, _ string, q Question) error {
	f.updateCalls++
	if _, ok := f.byID[q.ID]; !ok {
		return ErrNotFound
	}
	f.byID[q.ID] = q
	return nil
}

func (f *fakeRepo) DeleteQuestion(_ context.Context, _ string, id int64) error {
	f.deleteCalls++
	if _, ok := f.byID[id]; !ok {
		return ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeRepo) CreateCourseTables(_ context.Context, _ []Course) error {
	return nil
}

func validInput() QuestionInput {
	return QuestionInput{
		Text:    "Capital of France?",
		OptionA: "London",
		OptionB: "Paris",
		OptionC: "Berlin",
		OptionD: "Madrid",
		Correct: "B",
	}
}

func TestEditorAddAssignsID(t *testing.T) {
	repo := newFakeRepo()
	editor := NewEditor(repo, true, nil)

	question, err := editor.Add(context.Background(), "Business_Applications", validInput())
	require.NoError(t, err)
	assert.Equal(t, int64(1), question.ID)
	assert.Equal(t, "Paris", question.CorrectText())
	assert.Equal(t, 1, repo.insertCalls)
	assert.Equal(t, 0, repo.upsertCalls)
}

func TestEditorAddValidation(t *testing.T) {
	repo := newFakeRepo()
	editor := NewEditor(repo, true, nil)
	ctx := context.Background()

	missing := validInput()
	missing.OptionC = ""
	_, err := editor.Add(ctx, "Business_Applications", missing)
	assert.True(t, IsValidation(err), "expected validation error, got %v", err)

	badLabel := validInput()
	badLabel.Correct = "E"
	_, err = editor.Add(ctx, "Business_Applications", badLabel)
	assert.True(t, IsValidation(err), "expected validation error, got %v", err)

	// The repository must not be touched on invalid input.
	assert.Equal(t, 0, repo.insertCalls)
}

func TestEditorAddDuplicatePolicy(t *testing.T) {
	ctx := context.Background()

	strict := NewEditor(newFakeRepo(), true, nil)
	_, err := strict.Add(ctx, "Business_Applications", validInput())
	require.NoError(t, err)
	_, err = strict.Add(ctx, "Business_Applications", validInput())
	assert.ErrorIs(t, err, ErrDuplicateQuestion)

	repo := newFakeRepo()
	lenient := NewEditor(repo, false, nil)
	first, err := lenient.Add(ctx, "Business_Applications", validInput())
	require.NoError(t, err)

	changed := validInput()
	changed.OptionB = "Paris, France"
	second, err := lenient.Add(ctx, "Business_Applications", changed)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "upsert keeps the original id")
	assert.Equal(t, "Paris, France", second.CorrectText())
}

func TestEditorUpdate(t *testing.T) {
	repo := newFakeRepo()
	editor := NewEditor(repo, true, nil)
	ctx := context.Background()

	added, err := editor.Add(ctx, "Business_Applications", validInput())
	require.NoError(t, err)

	changed := validInput()
	changed.Correct = "C"
	updated, err := editor.Update(ctx, "Business_Applications", added.ID, changed)
	require.NoError(t, err)
	assert.Equal(t, "Berlin", updated.CorrectText())

	_, err = editor.Update(ctx, "Business_Applications", 9999, validInput())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = editor.Update(ctx, "Business_Applications", 0, validInput())
	assert.True(t, IsValidation(err), "expected validation error for id 0, got %v", err)
}

func TestEditorDelete(t *testing.T) {
	repo := newFakeRepo()
	editor := NewEditor(repo, true, nil)
	ctx := context.Background()

	added, err := editor.Add(ctx, "Business_Applications", validInput())
	require.NoError(t, err)

	require.NoError(t, editor.Delete(ctx, "Business_Applications", added.ID))
	assert.ErrorIs(t, editor.Delete(ctx, "Business_Applications", added.ID), ErrNotFound)
}
