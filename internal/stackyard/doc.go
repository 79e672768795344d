// Package stackyard simulates the crate yard from Advent of Code 2022 day 5.
//
// The input is two blocks separated by a blank line. The first block is an
// ASCII diagram of labeled crates stacked in numbered lanes, closed by an
// index line naming the lanes. The second block is a list of instructions of
// the form "move N from S to D".
//
//	    [D]
//	[N] [C]
//	[Z] [M] [P]
//	 1   2   3
//
//	move 1 from 2 to 1
//
// Instructions are replayed in file order under one of two modes:
//
//   - ModeSingle moves one crate at a time, so a multi-crate move arrives
//     in reverse order (the CrateMover 9000).
//   - ModeBlock lifts the crates as one block and keeps their order
//     (the CrateMover 9001).
//
// The answer is the readout: the top crate of every lane, in lane order.
//
// Every failure is an *Error carrying an ErrorCode; use CodeOf or IsCode to
// inspect wrapped errors. The first failure aborts the replay.
package stackyard
