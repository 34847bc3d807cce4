//go:build pact
// +build pact

// Package pacttest carries the shared names, states, and fixture data for the
// customers contract between the storefront consumer and this API.
package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProviderName = "commerce-api"
	ConsumerName = "storefront-web"

	StateCustomersSeeded = "customers baseline seeded"
	StateCustomerExists  = "customer with the known id exists"
	StateCustomerMissing = "no customer with the unknown id"
)

const (
	ExistingCustomerID = "a1c5a8b0-64bb-4fe4-8f70-54a80aef1d1e"
	MissingCustomerID  = "00000000-0000-0000-0000-000000000000"
)

// ExampleCustomer provides stable fixture data for pact interactions.
func ExampleCustomer() map[string]any {
	return map[string]any{
		"firstName": "Ada",
		"lastName":  "Lovelace",
		"email":     "ada@example.com",
		"password":  "pact-pass",
	}
}

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for the storefront consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("unable to resolve caller for project root")
	}
	return filepath.Dir(filepath.Dir(filepath.Dir(file)))
}
