package quiz

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceCoursesResolvesDisplayNames(t *testing.T) {
	service := NewService(newFakeRepo(), 10, nil, nil)

	courses, err := service.Courses(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "Business Applications", courses[0].Name)
	assert.Equal(t, "Business_Applications", courses[0].Table)
}

func TestCourseForTableFallsBackToDerivedName(t *testing.T) {
	course := CourseForTable("Business_Ethics")
	assert.Equal(t, "Business Ethics", course.Name)
	assert.Equal(t, "Business_Ethics", course.Table)
}

func TestServiceStartSession(t *testing.T) {
	repo := newFakeRepo()
	editor := NewEditor(repo, true, nil)
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		input := validInput()
		input.Text = input.Text + string(rune('a'+i))
		_, err := editor.Add(ctx, "Business_Applications", input)
		require.NoError(t, err)
	}

	service := NewService(repo, 10, rand.New(rand.NewSource(1)), nil)
	session, err := service.StartSession(ctx, "Business_Applications")
	require.NoError(t, err)
	assert.Equal(t, StateInProgress, session.State())
	assert.Equal(t, 10, session.Total(), "session draw is capped")

	empty := NewService(newFakeRepo(), 10, nil, nil)
	_, err = empty.StartSession(ctx, "Business_Applications")
	assert.ErrorIs(t, err, ErrNoQuestions)
}
