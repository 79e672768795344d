package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/adventofcode/internal/puzzle"
)

func TestRun_Pass(t *testing.T) {
	s := &Scenario{
		Name:   "rps",
		Day:    2,
		Input:  "A Y\nB X\nC Z\n",
		Expect: []Expectation{{Part: 1, Answer: "15"}, {Part: 2, Answer: "12"}},
	}

	r := Run(puzzle.Default(), s)
	assert.True(t, r.Passed())
	require.Len(t, r.Cases, 2)
	assert.Equal(t, "15", r.Cases[0].Got)
	assert.Equal(t, "PASS rps part 1: 15\nPASS rps part 2: 12\n", r.String())
}

func TestRun_WrongAnswer(t *testing.T) {
	s := &Scenario{
		Name:   "rps",
		Day:    2,
		Input:  "A Y\n",
		Expect: []Expectation{{Part: 1, Answer: "7"}},
	}

	r := Run(puzzle.Default(), s)
	assert.False(t, r.Passed())
	assert.Equal(t, "FAIL rps part 1: got \"8\", want \"7\"\n", r.String())
}

func TestRun_SolverError(t *testing.T) {
	s := &Scenario{
		Name:   "crates",
		Day:    5,
		Input:  "[A]\n 1\n\nmove abc from 1 to 1\n",
		Expect: []Expectation{{Part: 1, Answer: "A"}},
	}

	r := Run(puzzle.Default(), s)
	assert.False(t, r.Passed())
	require.Len(t, r.Cases, 1)
	assert.Contains(t, r.Cases[0].Error, "INSTRUCTION_FIELD_NOT_INTEGER")
	assert.Contains(t, r.String(), "ERROR crates part 1")
}

func TestRun_UnknownDay(t *testing.T) {
	s := &Scenario{
		Name:   "future",
		Day:    12,
		Input:  "x",
		Expect: []Expectation{{Part: 1, Answer: "1"}, {Part: 2, Answer: "2"}},
	}

	r := Run(puzzle.Default(), s)
	require.Len(t, r.Cases, 2)
	for _, c := range r.Cases {
		assert.Contains(t, c.Error, "unknown day 12")
	}
}

func TestRun_MissingInputFile(t *testing.T) {
	s := &Scenario{
		Name:      "gone",
		Day:       1,
		InputFile: "/nonexistent/day1.txt",
		Expect:    []Expectation{{Part: 1, Answer: "1"}},
	}

	r := Run(puzzle.Default(), s)
	assert.False(t, r.Passed())
	assert.Contains(t, r.Cases[0].Error, "input not found")
}

// The repository fixtures double as a regression suite for every day.
func TestRunAll_RepositoryScenarios(t *testing.T) {
	scenarios, err := LoadDir("../../testdata/scenarios")
	require.NoError(t, err)
	require.Len(t, scenarios, 5)

	results := RunAll(puzzle.Default(), scenarios)
	for _, r := range results {
		assert.True(t, r.Passed(), r.String())
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "example_report", []byte(Report(results)))
}
