// Package mesh provides the core geometry operations shared by every
// exporter: octant-symmetry reconstruction and timestep subsampling.
//
// The simulation computes one eighth of a sphere and relies on mirror
// symmetry across the three coordinate planes for the rest. The types
// and functions here are pure: no I/O, no global state.
//
//   - [Point], [Triangle], [Frame]: vertex/connectivity data for one snapshot
//   - [MirrorOctants]: reconstructs the full closed surface from one octant
//   - [SampleTimesteps]: deterministic bounded subsampling of a timestep sequence
//
// # Winding
//
// Reflecting geometry through an odd number of coordinate planes inverts
// the handedness of the local frame, which reverses every triangle's
// apparent winding and flips its normal. MirrorOctants restores outward
// orientation by swapping two vertices in exactly those octants whose
// sign product is negative.
package mesh
