// Package lang parses generator expressions: strings that mix literal text
// with constructs of the form
//
//	$<identifier>
//	$<identifier:param1,param2,...>
//
// Constructs nest anywhere text may appear, including inside the identifier.
//
// # Recovery
//
// Parsing never fails. A "$<" whose closing '>' is never found is not an
// error; it is backtracked and rebuilt as literal text, together with every
// delimiter consumed while looking for the '>'. Complete constructs nested
// inside it are kept as expressions. Delimiters outside of any construct are
// text too, so
//
//	plain $<UNCLOSED text
//
// parses to a single text node.
//
// # Text
//
// Text nodes carry a [token.Span] into the source rather than a copy of it.
// Contiguous text is always merged, so no node list in a [Tree] holds two
// consecutive [*Text] nodes, and the top-level spans of a tree cover its
// source exactly once, in order.
//
// # Parameters
//
// Within a parameter list, ',' separates slots and ':' is literal text:
//
//	$<X:a:b,c>   // identifier "X", parameters "a:b" and "c"
//	$<X:,>       // two empty parameters
//	$<A,B>       // identifier "A,B", no parameters
//
// # Querying
//
// [Tree.Query] selects expressions with an expr-lang predicate evaluated
// against a [QueryEnv] for each expression:
//
//	identifier == "CONFIG" && "Debug" in parameters
//
// # Caching
//
// [ParseReader] caches trees by source content. Callers always receive a
// private deep copy; [ClearCache] drops all cached trees.
package lang
