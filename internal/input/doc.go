// Package input resolves and caches puzzle input.
//
// Input for a day comes from one of three places, tried in order:
//
//  1. A cached file under the cache directory.
//  2. For test fixtures, content captured from the user through a
//     Prompter and persisted with a "Result: <expected>" header.
//  3. The puzzle service, downloaded over HTTPS with the session
//     cookie and persisted verbatim.
//
// The cache layout is .data/day<N>/input.txt for real input and
// .data/day<N>/test<K>.txt for fixture K.
package input
