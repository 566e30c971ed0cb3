// Package imaging is the input side of the maze solver: it loads maze images
// from disk and decodes them into binary passability grids.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with the origin at the top-left corner and map
// one-to-one onto maze.Point: X is the column, Y the row.
//
// # Bitonic Input
//
// A maze image is expected to contain only pure black (wall) and pure white
// (passable) pixels after luminance conversion. DecodeGrid rejects anything else
// with ErrNotBitonic rather than guessing, unless the caller explicitly asks for
// threshold binarization through DecodeOptions.Threshold.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Decoding functions are
// stateless and may be called concurrently.
package imaging
