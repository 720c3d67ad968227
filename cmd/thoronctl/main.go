// Command thoronctl runs database maintenance for the Thoron API: schema
// migrations, demo data seeding and the development data resets.
package main

import (
	"fmt"
	"os"

	"github.com/ghuser/thoron/pkg/config"
)

func main() {
	if err := newRootCmd(config.Load).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
