package quiz

import (
	"math/rand"
	"time"
)

// State tracks where a session is in its lifecycle.
type State int

const (
	StateSelecting State = iota
	StateInProgress
	StateComplete
)

func (s State) String() string {
	switch s {
	case StateSelecting:
		return "selecting"
	case StateInProgress:
		return "in_progress"
	case StateComplete:
		return "complete"
	}
	return "unknown"
}

// Option is one displayed choice. Letters are assigned at render time and
// carry no relation to the stored labels once options are shuffled.
type Option struct {
	Letter string
	Text   string
}

// Prompt is a question prepared for display: options shuffled and relettered.
type Prompt struct {
	QuestionID int64
	Number     int // 1-based position in the attempt
	Total      int
	Text       string
	Options    []Option
}

// Feedback is the result of checking a single answered question.
type Feedback struct {
	Correct       bool
	CorrectAnswer string // "B) full text" composite of the stored answer
	Explanation   string
}

// Session owns one student attempt at a course's quiz: the drawn question
// sequence, the cursor and the recorded answers. Both the question order and
// each question's option order are shuffled once at start; the underlying
// store data is never touched. Answers record the chosen option text, not the
// rendered letter, so grading is immune to the shuffle.
type Session struct {
	course    string
	questions []Question
	prompts   []Prompt
	position  int
	answers   map[int64]string
	state     State
	rng       *rand.Rand
}

// NewSession returns a session in the Selecting state. A nil rng gets a
// time-seeded source.
func NewSession(rng *rand.Rand) *Session {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Session{
		answers: make(map[int64]string),
		state:   StateSelecting,
		rng:     rng,
	}
}

// Start moves Selecting -> InProgress with the given question set. The
// sequence is shuffled, truncated to maxQuestions when positive, and frozen
// for the session's lifetime.
func (s *Session) Start(course string, questions []Question, maxQuestions int) error {
	if s.state != StateSelecting {
		return ErrInvalidState
	}
	if len(questions) == 0 {
		return ErrNoQuestions
	}

	drawn := make([]Question, len(questions))
	copy(drawn, questions)
	s.rng.Shuffle(len(drawn), func(i, j int) {
		drawn[i], drawn[j] = drawn[j], drawn[i]
	})
	if maxQuestions > 0 && len(drawn) > maxQuestions {
		drawn = drawn[:maxQuestions]
	}

	prompts := make([]Prompt, len(drawn))
	for idx, question := range drawn {
		prompts[idx] = s.buildPrompt(question, idx+1, len(drawn))
	}

	s.course = course
	s.questions = drawn
	s.prompts = prompts
	s.position = 0
	s.state = StateInProgress
	return nil
}

func (s *Session) buildPrompt(q Question, number, total int) Prompt {
	texts := make([]string, 0, len(Labels))
	for _, label := range Labels {
		texts = append(texts, q.Options[label])
	}
	s.rng.Shuffle(len(texts), func(i, j int) {
		texts[i], texts[j] = texts[j], texts[i]
	})

	options := make([]Option, len(texts))
	for idx, text := range texts {
		options[idx] = Option{
			Letter: string(rune('A' + idx)),
			Text:   text,
		}
	}

	return Prompt{
		QuestionID: q.ID,
		Number:     number,
		Total:      total,
		Text:       q.Text,
		Options:    options,
	}
}

func (s *Session) State() State   { return s.state }
func (s *Session) Course() string { return s.course }
func (s *Session) Total() int     { return len(s.questions) }
func (s *Session) Position() int  { return s.position }

// Current returns the prompt at the cursor.
func (s *Session) Current() (Prompt, error) {
	if s.state != StateInProgress {
		return Prompt{}, ErrInvalidState
	}
	return s.prompts[s.position], nil
}

// Answer records (or overwrites) the student's choice for the current
// question. Answering any other question is rejected so the attempt cannot
// skip ahead of the cursor.
func (s *Session) Answer(questionID int64, chosenText string) error {
	if s.state != StateInProgress {
		return ErrInvalidState
	}
	if questionID != s.questions[s.position].ID {
		return ErrNotCurrent
	}
	s.answers[questionID] = chosenText
	return nil
}

// Advance moves the cursor forward, completing the session after the last
// question. Advancing an unanswered question is allowed; it grades as wrong.
func (s *Session) Advance() (State, error) {
	if s.state != StateInProgress {
		return s.state, ErrInvalidState
	}
	s.position++
	if s.position == len(s.questions) {
		s.state = StateComplete
	}
	return s.state, nil
}

// CheckCurrent grades only the question at the cursor, for mid-session
// feedback. It requires a recorded answer.
func (s *Session) CheckCurrent() (Feedback, error) {
	if s.state != StateInProgress {
		return Feedback{}, ErrInvalidState
	}
	question := s.questions[s.position]
	chosen, ok := s.answers[question.ID]
	if !ok {
		return Feedback{}, ErrUnanswered
	}
	return Feedback{
		Correct:       chosen == question.CorrectText(),
		CorrectAnswer: DisplayAnswer(question),
		Explanation:   question.Explanation,
	}, nil
}

// Score counts answers whose text matches the correct option's text.
// Comparing text rather than rendered letters is what keeps grading correct
// after the display shuffle. Unanswered and mismatched questions score zero;
// there is no partial credit.
func (s *Session) Score() int {
	score := 0
	for _, question := range s.questions {
		if chosen, ok := s.answers[question.ID]; ok && chosen == question.CorrectText() {
			score++
		}
	}
	return score
}
