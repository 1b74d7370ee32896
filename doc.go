// Package cubic2quad approximates cubic Bézier curves with sequences of
// quadratic Bézier curves. It was designed to serve the needs of font tools
// and renderers that only support quadratic Béziers, such as TrueType glyph
// outlines, while the source geometry (CFF outlines, SVG, PDF) is commonly
// made of cubic Béziers.
//
// # Approximation
//
// The main entry point is [CubicBez.ToQuads], which returns a chain of
// quadratic Béziers that starts at the cubic's start point, ends at its end
// point, and in which every quadratic starts exactly where the previous one
// ends. [CubicToQuad] provides the same functionality for callers that work
// with flat arrays of coordinates.
//
// The cubic is first split at its inflection points (see
// [CubicBez.Inflections]). A quadratic Bézier has no inflection points, so
// each of the up to three pieces is approximated on its own. For each piece,
// the parameter range is divided into n equal intervals, for n from 1 to
// [MaxSegments], and each interval is replaced by the quadratic that shares
// its end points and end tangents (see [PowerBasis.FitQuad]). The first n for
// which every interval is within the requested precision is used.
//
// Closeness is measured with a simplified, one-sided Hausdorff distance:
// points sampled on the cubic must be close to the quadratic (see
// [PowerBasis.ApproximationClose]). This is not a formal bound, but it is
// sufficient for practical purposes.
//
// If a piece cannot be approximated with MaxSegments quadratics, the
// MaxSegments approximation is used anyway, and ToQuads reports that the
// precision wasn't attained.
//
// # Power basis
//
// Much of the package operates on curves in power basis, a t³ + b t² + c t +
// d, rather than in Bernstein basis. See [PowerBasis].
//
// # Literature
//
// This package makes use of the following ideas:
//   - [A new solution to the cubic] by R. W. D. Nickalls
//   - [Cubic Bézier inflection points] by Caffeine Owl
//   - [Converting cubic splines to quadratic] from the FontForge documentation
//   - [Nearest point on a quadratic Bézier]
//
// [A new solution to the cubic]: https://www.nickalls.org/dick/papers/maths/cubic1993.pdf
// [Cubic Bézier inflection points]: http://www.caffeineowl.com/graphics/2d/vectorial/cubic-inflexion.html
// [Converting cubic splines to quadratic]: https://fontforge.org/docs/techref/bezier.html
// [Nearest point on a quadratic Bézier]: https://math.stackexchange.com/questions/877725
package cubic2quad
