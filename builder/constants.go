// Package builder defines shared constants used by circuit builders, ensuring
// consistent defaults and validation across all constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodBuildCircuit is the canonical name for the BuildCircuit entry point.
	MethodBuildCircuit = "BuildCircuit"
	// MethodElement is the canonical name for the Element and Leaf constructors.
	MethodElement = "Element"
	// MethodChain is the canonical name for the Chain constructor.
	MethodChain = "Chain"
	// MethodBank is the canonical name for the Bank constructor.
	MethodBank = "Bank"
	// MethodSeriesOf is the canonical name for the SeriesOf constructor.
	MethodSeriesOf = "SeriesOf"
	// MethodParallelOf is the canonical name for the ParallelOf constructor.
	MethodParallelOf = "ParallelOf"
	// MethodLadder is the canonical name for the Ladder constructor.
	MethodLadder = "Ladder"
	// MethodBridge is the canonical name for the Bridge constructor.
	MethodBridge = "Bridge"
	// MethodDelta is the canonical name for the Delta constructor.
	MethodDelta = "Delta"
	// MethodStub is the canonical name for the Stub constructor.
	MethodStub = "Stub"
	// MethodRandomSeriesParallel is the canonical name for the RandomSeriesParallel constructor.
	MethodRandomSeriesParallel = "RandomSeriesParallel"
)

//-----------------------------------------------------------------------------
// Terminal Defaults
//-----------------------------------------------------------------------------

// DefaultSourceName is the name of the query source terminal created by BuildCircuit.
const DefaultSourceName = "S"

// DefaultTargetName is the name of the query target terminal created by BuildCircuit.
const DefaultTargetName = "T"

//-----------------------------------------------------------------------------
// Minimum Sizes
//-----------------------------------------------------------------------------

// MinChainComponents is the smallest meaningful series chain (a single element).
const MinChainComponents = 1

// MinBankComponents is the smallest meaningful parallel bank (a single element).
const MinBankComponents = 1

// MinLadderSections is the smallest ladder: one series element and one shunt.
const MinLadderSections = 1

// MinStubComponents is the shortest dead-end chain.
const MinStubComponents = 1

// MinRandomLeaves is the smallest random series/parallel network (one element).
const MinRandomLeaves = 1

// MinComposeParts is the smallest number of parts SeriesOf/ParallelOf accept.
const MinComposeParts = 1

//-----------------------------------------------------------------------------
// Default Values
//-----------------------------------------------------------------------------

// DefaultResistance is the resistance (Ω) of every component when no custom
// ValueFn is provided.
const DefaultResistance float64 = 1000
