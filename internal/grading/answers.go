package grading

// Answers maps a question ID to the values recorded for it, in interaction order.
// For exclusive question types the last value is the authoritative one.
type Answers map[string][]string

// Toggle removes value if it is already recorded for the question, otherwise appends it.
// Only the entry for questionID changes.
func (a Answers) Toggle(questionID, value string) {
	current := a[questionID]
	for i, v := range current {
		if v == value {
			next := make([]string, 0, len(current)-1)
			next = append(next, current[:i]...)
			next = append(next, current[i+1:]...)
			a.set(questionID, next)
			return
		}
	}
	next := make([]string, len(current), len(current)+1)
	copy(next, current)
	a[questionID] = append(next, value)
}

// Replace makes value the only recorded value for the question.
func (a Answers) Replace(questionID, value string) {
	a[questionID] = []string{value}
}

// Clear drops everything recorded for the question.
func (a Answers) Clear(questionID string) {
	delete(a, questionID)
}

// Last returns the most recent value for the question.
func (a Answers) Last(questionID string) (string, bool) {
	values := a[questionID]
	if len(values) == 0 {
		return "", false
	}
	return values[len(values)-1], true
}

// Values returns a copy of the sequence recorded for the question.
func (a Answers) Values(questionID string) []string {
	values := a[questionID]
	out := make([]string, len(values))
	copy(out, values)
	return out
}

// Clone returns a deep copy.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for id, values := range a {
		cp := make([]string, len(values))
		copy(cp, values)
		out[id] = cp
	}
	return out
}

func (a Answers) set(questionID string, values []string) {
	if len(values) == 0 {
		delete(a, questionID)
		return
	}
	a[questionID] = values
}
