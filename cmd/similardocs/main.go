// similardocs serves a searchable doctor directory from a JSON file on disk.
package main

import (
	"os"

	"github.com/RafaelRangel0/Similar-Doctors/cmd/similardocs/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
