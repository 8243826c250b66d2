// Package selective models a registry of operators and the metadata
// describing which models declare use of each operator.
//
// A build computes, from possibly many independent declaration sources,
// a single deduplicated view of which operators are needed, whether
// each is a root entry point or only a dependency, whether training
// code paths are needed for it, whether a declaration covers a whole
// overload family, and which models reference it.
//
// The package holds the data model (Model, Operator, Registry, Plan),
// the document round trip to and from the ir form, and the merge
// engine (MergeModels, Combine, Merge, MergePlans).  All operations
// are pure: inputs are never mutated and merges return fresh values,
// so callers may use these functions concurrently on disjoint inputs
// without synchronization.
package selective
