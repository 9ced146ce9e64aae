package domain

import "fmt"

// QuestionType tags the variant of a question and selects its correctness rule.
type QuestionType string

const (
	SingleChoice QuestionType = "single-choice"
	Binary       QuestionType = "binary"
	FreeText     QuestionType = "free-text"
	MultiSelect  QuestionType = "multi-select"
)

// Binary questions carry these two implicit options.
const (
	BinaryTrue  = "True"
	BinaryFalse = "False"
)

// legacy names used by the quiz authoring tool
var questionTypeAliases = map[string]QuestionType{
	"multiple-choice":   SingleChoice,
	"true-false":        Binary,
	"fill-in-the-blank": FreeText,
	"multiple-select":   MultiSelect,
}

// ParseQuestionType accepts canonical and legacy type names.
func ParseQuestionType(raw string) (QuestionType, error) {
	switch t := QuestionType(raw); t {
	case SingleChoice, Binary, FreeText, MultiSelect:
		return t, nil
	}
	if t, ok := questionTypeAliases[raw]; ok {
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownQuestionType, raw)
}

func (t QuestionType) MarshalText() ([]byte, error) {
	return []byte(t), nil
}

func (t *QuestionType) UnmarshalText(b []byte) error {
	parsed, err := ParseQuestionType(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
