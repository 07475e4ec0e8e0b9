// Package infra implements primitive definitions from the WHATWG Infra
// Standard (https://infra.spec.whatwg.org/): the low-level building blocks
// shared by the URL, HTML, Fetch and sibling specifications.
//
// Everything here is a pure function over values the caller owns:
//   - Code point classification (ASCII ranges, surrogates, noncharacters,
//     C0 controls)
//   - ASCII case conversion for strings and byte sequences
//   - ASCII whitespace stripping, collapsing, and newline normalization
//   - Code point collection and the Infra string-splitting algorithms
//   - Ordered sets of strings with observable insertion order
//
// # Byte Sequences vs Strings
//
// The Infra Standard defines most operations twice, once over byte
// sequences and once over strings (sequences of code points). This package
// mirrors that split: classification predicates are generic over byte and
// rune so one definition serves both, string transforms take and return
// string, and the byte-sequence operations (byte-lowercase, isomorphic
// encode/decode, ...) take and return []byte. Conversion between the two
// worlds goes through IsomorphicEncode and IsomorphicDecode.
//
// # Purity
//
// No function mutates its input or touches shared state. Every transform
// returns a new value; every predicate is a fixed range comparison. All of
// it is safe to call concurrently without coordination.
//
// # Totality
//
// With one exception the operations are total over their input types. The
// exception is IsomorphicEncode, which is defined only for strings whose
// code points are all at or below U+00FF and reports an error otherwise.
package infra
