package explain

import (
	"context"
	"fmt"
	"strings"
)

// Explainer produces a display explanation for a question. It is stateless and
// must not influence answers or scoring.
type Explainer interface {
	Explain(ctx context.Context, questionText string) (string, error)
}

// Sample returns a canned explanation that quotes the question.
type Sample struct{}

func (Sample) Explain(ctx context.Context, questionText string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return fmt.Sprintf("This is a sample explanation for the question: %q.", strings.TrimSpace(questionText)), nil
}
