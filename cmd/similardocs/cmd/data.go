package cmd

import (
	"context"

	"github.com/RafaelRangel0/Similar-Doctors/internal/adapters/disk"
	"github.com/RafaelRangel0/Similar-Doctors/internal/app"
	"github.com/RafaelRangel0/Similar-Doctors/internal/domain/doctor"
)

// dataPath resolves --data against the project root, the way the server does.
func dataPath() string {
	return app.ResolveDataPath(projectRoot(), flagData)
}

// loadRecords reads and decodes the doctor list for the offline commands.
func loadRecords(ctx context.Context, path string) ([]doctor.Record, error) {
	data, err := disk.NewFileSource(path).Load(ctx)
	if err != nil {
		return nil, err
	}
	return doctor.Decode(data)
}
