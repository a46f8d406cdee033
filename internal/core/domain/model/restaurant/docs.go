// Package restaurant provides the Restaurant aggregate. Deleting a restaurant
// removes every order placed with it.
package restaurant
