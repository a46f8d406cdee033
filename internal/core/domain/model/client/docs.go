// Package client provides the Client aggregate: the person orders are placed for.
//
// Key business rules:
//   - Name and surname are trimmed and hold at least two characters
//   - Address is trimmed and holds at least five characters
//   - Phone holds 9 to 12 digits once separators are stripped
//   - Deleting a client removes every order placed for it
package client
