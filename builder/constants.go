// Package builder defines shared constants used by the history constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodPolynomial is the canonical name for the BuildPolynomial constructor.
	MethodPolynomial = "BuildPolynomial"
	// MethodSamples is the canonical name for the BuildSamples constructor.
	MethodSamples = "BuildSamples"
	// MethodArithmetic is the canonical name for the BuildArithmetic constructor.
	MethodArithmetic = "BuildArithmetic"
	// MethodTriangular is the canonical name for the BuildTriangular constructor.
	MethodTriangular = "BuildTriangular"
)

//-----------------------------------------------------------------------------
// Minimum sizes
//-----------------------------------------------------------------------------

const (
	// MinLength is the shortest history a constructor produces.
	MinLength = 1
	// MinCount is the smallest number of histories BuildSamples produces.
	MinCount = 1
)

//-----------------------------------------------------------------------------
// Defaults
//-----------------------------------------------------------------------------

const (
	// DefaultDegree is the polynomial degree used without WithDegree.
	DefaultDegree = 3
	// DefaultCoeffBound is the coefficient bound used without WithCoeffBound.
	DefaultCoeffBound = int64(10)
	// MaxCoeffBound caps WithCoeffBound so sampled values stay far from int64 limits.
	MaxCoeffBound = int64(1) << 20
)
