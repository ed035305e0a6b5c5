// Package lut provides table-based approximations of sine, cosine, square
// root and 2-D Euclidean distance over float32.
//
// All tables live in one flat, byte-addressable [Region] together with a
// small pixel grid used by consumers such as the field renderer. The layout
// is fixed when the [Engine] is constructed:
//
//	offset 0                  grid    Rows*Cols bytes, one level per cell
//	GridLen                   sine    TrigSize little-endian float32
//	SinOffset + 4*TrigSize    cosine  TrigSize little-endian float32
//	CosOffset + 4*TrigSize    root    100 little-endian float32
//
// # Accuracy Characteristics
//
// Sin/Cos: no interpolation. The angle is truncated to the table resolution
// 2π/TrigSize (≈0.0245 rad for 256 entries), so the absolute error is bounded
// by that step.
//
// Sqrt: exact at integers in [0,100). Larger inputs are reduced by repeated
// division by 100 while a compensating factor is multiplied by 10; the reduced
// value is truncated before lookup. Inputs in [100^k, 100^(k+1)) are therefore
// under-estimated by at most 10^k·(√2−1) for k ≥ 1 and by less than 1 for k = 0.
//
// # Domain
//
// Angles must be finite and root inputs must be non-negative. Outside that
// domain the functions return NaN instead of indexing with an undefined value;
// use [Engine.CheckedSqrt] when an error is preferable.
//
// An Engine is not safe for concurrent use. Separate engines are independent.
package lut
