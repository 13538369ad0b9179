package quiz

import (
	"strings"
)

// Label identifies one of a question's four stored options.
type Label string

const (
	LabelA Label = "A"
	LabelB Label = "B"
	LabelC Label = "C"
	LabelD Label = "D"
)

// Labels lists the stored option slots in canonical order.
var Labels = []Label{LabelA, LabelB, LabelC, LabelD}

// Question is one multiple-choice item as held in a course table. The correct
// answer is stored as a bare label; the "B) text" composite used on screen is
// derived with DisplayAnswer and never persisted.
type Question struct {
	ID          int64
	Text        string
	Options     map[Label]string
	Correct     Label
	Explanation string
}

// CorrectText returns the full text of the correct option.
func (q Question) CorrectText() string {
	return q.Options[q.Correct]
}

// DisplayAnswer derives the "B) full text" composite for presentation.
func DisplayAnswer(q Question) string {
	return string(q.Correct) + ") " + q.CorrectText()
}

// ParseLabel accepts a single option letter in any case.
func ParseLabel(s string) (Label, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A":
		return LabelA, true
	case "B":
		return LabelB, true
	case "C":
		return LabelC, true
	case "D":
		return LabelD, true
	}
	return "", false
}

// SplitComposite parses a legacy "B) full text" string into its label and
// text parts. Strings without a leading label come back unchanged with ok
// false.
func SplitComposite(s string) (Label, string, bool) {
	head, tail, found := strings.Cut(s, ") ")
	if !found {
		return "", strings.TrimSpace(s), false
	}
	label, ok := ParseLabel(head)
	if !ok {
		return "", strings.TrimSpace(s), false
	}
	return label, strings.TrimSpace(tail), true
}

// Validate reports every structural problem with the question at once so a
// form can surface them together.
func (q Question) Validate() error {
	var fields []string
	if strings.TrimSpace(q.Text) == "" {
		fields = append(fields, "question text")
	}
	for _, label := range Labels {
		if strings.TrimSpace(q.Options[label]) == "" {
			fields = append(fields, "option "+string(label))
		}
	}
	if _, ok := ParseLabel(string(q.Correct)); !ok {
		fields = append(fields, "correct option")
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
