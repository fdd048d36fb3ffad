package domain

// Outcome classifies a finished cargo process. The zero value is a failure.
type Outcome struct {
	// Succeeded is true only for Pass.
	Succeeded bool
	// ExitCode is the process exit code, -1 when it was terminated by a signal.
	ExitCode int
	// Status is the human readable process state, e.g. "exit status 101".
	Status string
}

// Pass returns the successful Outcome.
func Pass() Outcome {
	return Outcome{Succeeded: true}
}

// Fail returns a failed Outcome carrying the process status.
func Fail(exitCode int, status string) Outcome {
	return Outcome{ExitCode: exitCode, Status: status}
}

// Passed reports whether the process exited successfully.
func (o Outcome) Passed() bool {
	return o.Succeeded
}

// String implements fmt.Stringer.
func (o Outcome) String() string {
	if o.Passed() {
		return "pass"
	}
	if o.Status == "" {
		return "fail"
	}
	return "fail (" + o.Status + ")"
}

// Result pairs an executed Request with its Outcome.
type Result struct {
	Request Request
	Outcome Outcome
}

// Summary collects the results of a run in execution order.
type Summary struct {
	Results []Result
	// Planned is the number of combinations scheduled, which exceeds
	// len(Results) when the run stopped early.
	Planned int
}

// Add appends a result.
func (s *Summary) Add(req Request, outcome Outcome) {
	s.Results = append(s.Results, Result{Request: req, Outcome: outcome})
}

// Passed returns the number of passing results.
func (s Summary) Passed() int {
	n := 0
	for _, r := range s.Results {
		if r.Outcome.Passed() {
			n++
		}
	}
	return n
}

// Failures returns the failing results in execution order.
func (s Summary) Failures() []Result {
	var failed []Result
	for _, r := range s.Results {
		if !r.Outcome.Passed() {
			failed = append(failed, r)
		}
	}
	return failed
}

// Failed reports whether any combination failed.
func (s Summary) Failed() bool {
	return len(s.Failures()) > 0
}

// ExitCode returns the exit code to propagate: 0 on success, otherwise the
// first failure's code, or 1 when that code is not a usable exit status.
func (s Summary) ExitCode() int {
	failed := s.Failures()
	if len(failed) == 0 {
		return 0
	}
	if code := failed[0].Outcome.ExitCode; code > 0 {
		return code
	}
	return 1
}
