// Package transform implements the catalog of reversible pixel transforms.
//
// Every method has an Apply and an Invert operation over a pixel.Buffer:
//
//   - xor, adjacent-swap: self-inverse
//   - arithmetic, bit-shift, channel-rotate: inverted by the opposite operation
//   - random-swap, block-swap: inverted by replaying the seeded permutation
//
// Numeric methods widen samples to int64 and clip back to [0,255], so they are
// exact only when no clipping (or shifted-out bits) occurred on the way in.
// Positional methods are exact bijections.
//
// Apply and Invert validate their parameters before touching the buffer; a
// returned error always means the buffer is unchanged.
package transform
