// Package seq provides compilation of textual process-definition programs
// into flat, deterministic instruction sequences.
//
// A process-definition program is a list of text lines, one instruction per
// line. Besides opaque instruction tokens, the format supports fixed-count
// repeat loops which may be nested:
//
//	loop1_3
//	slider_shelf_1 plc_buzz
//	weighing_open
//	loop1_end
//
// A loop-start line matches loop<ID>_<REPEAT> and a loop-end line matches
// loop<ID>_end, where ID and REPEAT are non-negative integers and REPEAT must
// be greater than zero. Compile expands loops into a flat list of
// instructions; the example above compiles to the two body instructions
// repeated three times.
//
// The compiled output is wrapped into an immutable Sequence which always ends
// with the terminal marker "finished".
//
// Usage Example:
//
//	lines, err := seq.LoadFile("process.txt")
//	if err != nil {
//	    lines = seq.DefaultRawLines()
//	}
//	sequence, err := seq.Prepare(lines)
//	if err != nil {
//	    // sequence still holds the minimal safe program; log and continue
//	}
package seq
