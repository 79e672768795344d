// Package harness runs puzzle fixtures: worked examples with known answers.
//
// # Scenario Format
//
// Scenarios are YAML files, one per fixture:
//
//	name: day5_example
//	description: "Worked example from the puzzle text"
//	day: 5
//	input_file: inputs/day5_example.txt
//	expect:
//	  - part: 1
//	    answer: CMZ
//	  - part: 2
//	    answer: MCD
//
// Exactly one of input (inline) or input_file (relative to the scenario
// file) is required. Unknown fields are rejected so typos fail loudly.
//
// # Usage
//
//	scenarios, err := harness.Collect([]string{"testdata/scenarios"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, s := range scenarios {
//	    fmt.Print(harness.Run(puzzle.Default(), s))
//	}
package harness
