// Package causes walks the single-linked cause chain of an error.
//
// The chain starts at the error itself and follows Unwrap() error until a
// node has no cause. Errors produced by errors.Join or multi-%w fmt.Errorf
// calls expose Unwrap() []error; they end the chain.
//
// Chains are expected to be acyclic, but a hand-written Unwrap can loop back
// on itself. The walker remembers every pointer-backed node it has produced
// and stops when one repeats or after MaxDepth nodes, so a malformed chain
// never hangs the caller. Chain reports such a walk as CodeMalformedChain.
package causes
