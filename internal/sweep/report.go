package sweep

import "fmt"

// Outcome records one attempted minimize mutation.
type Outcome struct {
	// CommentID is the database ID of the targeted comment.
	CommentID int64
	// Err is nil when the mutation succeeded.
	Err error
}

// Succeeded reports whether the mutation went through.
func (o Outcome) Succeeded() bool {
	return o.Err == nil
}

// Report aggregates mutation outcomes across a bulk sweep. Individual
// failures are recorded, never propagated; the sweep keeps going.
type Report struct {
	outcomes []Outcome
}

// Record adds the outcome of one mutation attempt.
func (r *Report) Record(commentID int64, err error) {
	r.outcomes = append(r.outcomes, Outcome{CommentID: commentID, Err: err})
}

// Minimized returns the number of successful mutations.
func (r *Report) Minimized() int {
	n := 0
	for _, o := range r.outcomes {
		if o.Succeeded() {
			n++
		}
	}
	return n
}

// Failed returns the number of failed mutations.
func (r *Report) Failed() int {
	return len(r.outcomes) - r.Minimized()
}

// Outcomes returns the recorded outcomes in attempt order.
func (r *Report) Outcomes() []Outcome {
	return r.outcomes
}

// Summary renders the final count line, e.g. "2 minimized, 1 failed".
func (r *Report) Summary() string {
	return fmt.Sprintf("%d minimized, %d failed", r.Minimized(), r.Failed())
}
