// Package kernel provides the value objects shared by the client, restaurant and
// order models:
//   - UUID: identifier of every aggregate
//   - Phone: contact number holding 9 to 12 digits
//   - Text helpers enforcing trimmed minimum lengths on names and addresses
package kernel
