package check

// Status represents the outcome of checking one required variable.
type Status string

const (
	StatusOK      Status = "OK"
	StatusMissing Status = "MISSING"
	StatusEmpty   Status = "EMPTY"
)

// Failing reports whether the status counts as a problem.
func (s Status) Failing() bool {
	return s != StatusOK
}

// Result holds the outcome of a single variable check.
type Result struct {
	Name    string   // variable name, e.g. "DATABASE_URL"
	Status  Status   // OK, MISSING or EMPTY
	Details []string // human-readable details
	Err     error    // underlying error for failures
}

// OK returns true if the check passed.
func (r Result) OK() bool {
	return r.Status == StatusOK
}

// Summary returns the human-readable status text shown next to the name.
func (r Result) Summary() string {
	if len(r.Details) == 0 {
		return string(r.Status)
	}
	return string(r.Status) + r.separator() + r.Details[0]
}

func (r Result) separator() string {
	if r.OK() {
		return ": "
	}
	return " - "
}

// CountFailing returns the number of results that did not pass.
func CountFailing(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Status.Failing() {
			n++
		}
	}
	return n
}
