// Package testutil holds helpers and mocks shared by the package tests.
package testutil
