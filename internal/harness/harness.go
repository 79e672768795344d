package harness

import (
	"fmt"
	"strings"

	"github.com/roach88/adventofcode/internal/puzzle"
)

// CaseResult is the outcome of one expected answer.
type CaseResult struct {
	Part   int    `json:"part"`
	Want   string `json:"want"`
	Got    string `json:"got,omitempty"`
	Error  string `json:"error,omitempty"`
	Passed bool   `json:"passed"`
}

// Result is the outcome of a whole scenario.
type Result struct {
	Scenario string       `json:"scenario"`
	Day      int          `json:"day"`
	Cases    []CaseResult `json:"cases"`
}

// Passed reports whether every case passed.
func (r *Result) Passed() bool {
	for _, c := range r.Cases {
		if !c.Passed {
			return false
		}
	}
	return true
}

// String renders one line per case.
func (r *Result) String() string {
	var b strings.Builder
	for _, c := range r.Cases {
		switch {
		case c.Error != "":
			fmt.Fprintf(&b, "ERROR %s part %d: %s\n", r.Scenario, c.Part, c.Error)
		case c.Passed:
			fmt.Fprintf(&b, "PASS %s part %d: %s\n", r.Scenario, c.Part, c.Got)
		default:
			fmt.Fprintf(&b, "FAIL %s part %d: got %q, want %q\n", r.Scenario, c.Part, c.Got, c.Want)
		}
	}
	return b.String()
}

// Run solves every expectation of s with the day registered in reg.
// Failures are reported in the Result, never returned.
func Run(reg *puzzle.Registry, s *Scenario) *Result {
	result := &Result{Scenario: s.Name, Day: s.Day}

	fail := func(err error) *Result {
		for _, e := range s.Expect {
			result.Cases = append(result.Cases, CaseResult{Part: e.Part, Want: e.Answer, Error: err.Error()})
		}
		return result
	}

	day, err := reg.Lookup(s.Day)
	if err != nil {
		return fail(err)
	}
	input, err := s.Lines()
	if err != nil {
		return fail(err)
	}

	for _, e := range s.Expect {
		c := CaseResult{Part: e.Part, Want: e.Answer}
		got, err := day.Solve(e.Part, input)
		if err != nil {
			c.Error = err.Error()
		} else {
			c.Got = got
			c.Passed = got == e.Answer
		}
		result.Cases = append(result.Cases, c)
	}
	return result
}

// RunAll runs every scenario and returns the results in order.
func RunAll(reg *puzzle.Registry, scenarios []*Scenario) []*Result {
	results := make([]*Result, 0, len(scenarios))
	for _, s := range scenarios {
		results = append(results, Run(reg, s))
	}
	return results
}

// Report concatenates the rendering of every result.
func Report(results []*Result) string {
	var b strings.Builder
	for _, r := range results {
		b.WriteString(r.String())
	}
	return b.String()
}
