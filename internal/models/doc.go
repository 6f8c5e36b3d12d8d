// Package models defines the core domain models for the diner simulator.
//
// # Models
//
//   - MenuItem: a priced dish on the catalog, keyed by its uppercase name
//   - OrderEntry: one dish on the customer's ledger and the price applied to it
//   - Member: a loyalty membership record with a visit counter
//   - Receipt: the settled outcome of one completed session
//
// Money is carried as decimal.Decimal throughout; only the console layer
// rounds for display.
//
// # Identity
//
// Menu items are identified by their uppercase name, so "steak" and "STEAK"
// refer to the same dish. Members are identified by their membership number,
// a "1166" prefix followed by an unpadded 0-999 suffix: suffix 42 yields
// "116642", not "1166042".
package models
