// Package slot implements colormap slot allocation for the cmapgen CLI.
//
// The core algorithm is the largest-remainder (Hamilton) method:
//
//	rounded[i] = roundHalfEven(target[i])
//	difference = total - sum(rounded)
//
// The |difference| indices with the most extreme fractional remainders are
// then nudged by one slot each, so the allocation always sums to exactly
// the colormap size and no slot moves more than one away from its rounded
// target.
package slot
