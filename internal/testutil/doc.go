// Package testutil holds helpers shared by tests across packages. It must not
// import any package of this module so every package's tests can use it.
package testutil
