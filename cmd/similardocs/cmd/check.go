package cmd

import (
	"fmt"

	"github.com/RafaelRangel0/Similar-Doctors/internal/domain/doctor"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the data file",
	Long:  "Loads the doctor list the way the server does and reports what it found. No server required.",
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := dataPath()
	records, err := loadRecords(cmd.Context(), path)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), formatCheck(path, len(records), doctor.CollectFacets(records), resolveColor(flagColor, flagNoColor)))
	return nil
}
