// Package term implements the character-grid interaction core: a bounded
// text renderer, a progress bar, a scrollable single-choice selector, and
// line/password prompts, all drawing through the [Surface] abstraction.
//
// # Surface
//
// [Surface] is an opaque handle over a fixed-size character grid. [Screen]
// implements it on top of tcell for real terminals; tests substitute an
// in-memory grid. Dimensions are re-queried before every draw because the
// underlying terminal may be resized between calls; nothing in this package
// caches them.
//
// # Drawing discipline
//
// There is exactly one logical thread of control. Every component completes
// its full draw-and-refresh sequence before the next one draws; there is no
// double buffering and no timer-driven redraw. Writes that land outside the
// grid are dropped rather than failing, so terminal geometry races never
// abort an interaction loop.
//
// # Input
//
// [Surface.ReadKey] blocks for the next key press and maps it onto the
// [Key] vocabulary: confirm, escape, arrows, paging, home/end, backspace,
// printable ASCII runes, and an unrecognized category callers ignore.
package term
