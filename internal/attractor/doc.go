// Package attractor scatters point clouds from dynamical systems.
//
// Three engines cover the family shapes:
//
//   - [FlowGenerator]: continuous systems integrated with explicit
//     Euler steps ([NewLorenz], [NewRossler])
//   - [MapGenerator]: discrete maps iterated directly ([NewHenon],
//     [NewGingerbreadman], [NewDeJong])
//   - [IFSGenerator]: chaos-game iterated function systems
//     ([NewFern])
//
// Each sampled state projects through a fixed linear scale-and-offset
// into the output pixel plane; points landing outside the plane are
// dropped, never clamped, so divergent orbits thin the cloud instead of
// smearing the border. Flow families discard a short per-family warm-up
// prefix before sampling so the cloud starts on the attractor.
//
// Family constants (sigma, rho, a, b, ...) default to the classic
// chaotic values and can be overridden one by one through
// [Params].Constants.
package attractor
