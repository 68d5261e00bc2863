// Package escape renders escape-time fractals over a complex-plane
// window.
//
// Each family seeds an orbit from a pixel's plane point and iterates a
// quadratic step until the orbit leaves the bailout radius or the
// iteration budget runs out:
//
//   - [NewMandelbrot]: z ← z² + c, orbit seeded at zero
//   - [NewJulia]: z ← z² + C, orbit seeded at the plane point
//   - [NewTricorn]: z ← conj(z)² + c
//   - [NewBurningShip]: z ← (|Re z| + i·|Im z|)² + c
//   - [NewNewton]: basins of attraction for the roots of z³ − 1
//
// Points that exhaust the budget render pure black; escaped points are
// colored from the escape count by the configured palette.
//
// # Plane Mapping
//
// Pixel (0,0) maps exactly to the window corner Min and pixel
// (w−1,h−1) exactly to Max, with positions interpolated linearly in
// between. No aspect correction is applied; callers pick windows whose
// shape matches the output size.
package escape
