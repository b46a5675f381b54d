// Package ports defines the interfaces between the HTTP layer, the domain
// and the adapters that touch the filesystem.
package ports

import "context"

// DoctorSource yields the doctor list as a JSON document.
// The payload is opaque to the source: it is only checked to be valid JSON.
type DoctorSource interface {
	// Load returns the current contents of the data file as compact JSON.
	// A missing or malformed file is an error; nothing is cached on failure.
	// The returned slice may be shared between callers and must not be modified.
	Load(ctx context.Context) ([]byte, error)

	// Path returns the data file the source reads.
	Path() string
}
