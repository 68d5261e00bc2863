// Package lsystem generates outline fractals from Lindenmayer systems.
//
// A [Rule] pairs an axiom with context-free productions; expanding the
// axiom a number of rounds and interpreting the result with turtle
// graphics yields an ordered list of strokes:
//
//   - F, G draw one unit step
//   - +, - turn by the rule angle
//   - [, ] push and pop the turtle pose
//   - every other symbol is structural and draws nothing
//
// Stroke geometry is produced in unit space and then uniformly fitted
// into the requested pixel extent, so deeper recursion refines detail
// instead of growing the drawing without bound.
//
//   - [NewKoch]: snowflake, 3·4ᵈ strokes at depth d
//   - [NewDragon]: Heighway dragon, 2ᵈ strokes
//   - [NewSierpinski]: arrowhead-style triangle, 3ᵈ⁺¹ strokes
//   - [NewPlant]: bracketed branching plant
package lsystem
