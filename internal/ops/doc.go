// Package ops implements the four polynomial operations and the tile
// narratives that accompany them.
//
// Every operation takes two polynomial texts and returns a normalized result
// together with an ordered list of [Step] values. A step's [Visualization]
// describes what a board renderer should draw; this package never renders
// anything itself.
//
//   - [Add], [Subtract], [Multiply]: return a [Result]
//   - [Divide]: returns a [DivisionResult] with quotient and remainder
//   - [ValidateOperation] and [Validator]: pre-flight checks
//   - [Run]: dispatch by [Kind], used by the CLI and the HTTP server
//
// All functions are pure and safe for concurrent use.
package ops
