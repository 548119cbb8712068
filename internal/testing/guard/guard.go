// Package guard flips the runtime into test mode as a side effect of being
// imported, so entrypoint packages can be compiled and tested without
// starting servers or connecting to backing services.
package guard

import (
	"os"
	"sync"
)

var once sync.Once

func init() {
	once.Do(func() {
		if os.Getenv("PEPTIDE_TEST_MODE") == "" {
			_ = os.Setenv("PEPTIDE_TEST_MODE", "1")
		}
	})
}
