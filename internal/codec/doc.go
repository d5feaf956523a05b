// Package codec converts between image files and pixel buffers.
//
// Decoding accepts PNG, JPEG, GIF, BMP, TIFF and WebP and normalizes every
// color model to three 8-bit channels; alpha is discarded. Encoding picks the
// format from the output extension. PNG, BMP, TIFF and WebP (lossless) keep
// every sample; JPEG and GIF do not, so an encrypted image saved in those
// formats cannot be decrypted exactly.
package codec
