// Package palette resolves colour names to RGB values.
//
// Accepted names, matched case-insensitively:
//   - the CSS4 named colours ("red", "cornflowerblue", "rebeccapurple", ...),
//     taken from golang.org/x/image/colornames
//   - single-letter base colours b, g, r, c, m, y, k, w
//   - Tableau colours "tab:blue" through "tab:cyan"
//   - hex strings "#rrggbb" and "#rgb", parsed with go-colorful
package palette
