// Package mocks provides hand-rolled test doubles for the application's
// service and store interfaces.
package mocks
