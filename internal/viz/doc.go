// Package viz draws operation steps in the terminal.
//
// Every [ops.Step] carries a visualization payload. [BuildBoard] turns that
// payload into a [Board] of algebra tiles laid out on the four quadrants of
// a Cartesian board, and [RenderBoard] draws it with lipgloss:
//
//	 II (-) │  I (+)
//	────────┼────────
//	III (-) │ IV (+)
//
// [Stepper] is a Bubble Tea model for paging through a narrative, and
// [CoefficientChart] plots a polynomial's coefficients by degree.
//
// # Key Bindings
//
//	→/L/Space - Next step
//	←/H       - Previous step
//	Home/End  - First/last step
//	T         - Cycle color themes
//	?         - Toggle help
//	Q         - Quit
package viz
