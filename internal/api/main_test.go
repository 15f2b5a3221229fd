package api

import (
	"testing"

	"go.uber.org/goleak"
)

// Handlers run against a real sqlite connection pool; every test must
// release it through store.Close.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
