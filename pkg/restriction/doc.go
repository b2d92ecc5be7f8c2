// Package restriction evaluates carrier restriction rules against the carrier
// identities found in a device's SIM slots.
//
// # Lists and default policy
//
// Rules hold an allowed list and an excluded list of carrier.Identifier
// patterns, plus a default policy that decides both the fate of carriers in
// neither list and which list wins when a carrier is in both:
//
//   - NotAllowed: a slot is allowed only if it is in the allowed list and not
//     in the excluded list. A carrier in neither list is denied; a carrier in
//     both is denied.
//   - Allowed: a slot is denied only if it is in the excluded list and not in
//     the allowed list. A carrier in neither list is allowed; a carrier in
//     both is allowed.
//
// # Patterns
//
// Every entry field is a pattern compared case-insensitively, where '?'
// matches any single character:
//
//   - MCC and MNC must have the same length as the pattern
//   - SPN is ignored when the entry leaves it empty, otherwise it must have the
//     same length as the pattern
//   - IMSI, GID1 and GID2 are truncated to the pattern length first, so an
//     entry may give only a prefix; an empty pattern matches any value
//
// For example an allowed entry MCC=310, MNC=??? admits every network with
// MCC 310 and a three digit MNC.
//
// # Multi-SIM policy
//
// With OneValidSimMustBePresent, once any slot is allowed on its own every
// other slot is allowed too. With None, slots are independent.
//
// Rules are immutable once built and can be read from any number of
// goroutines. A Builder is not safe for concurrent use.
package restriction
