package cmd

import (
	"fmt"
	"strconv"

	"github.com/RafaelRangel0/Similar-Doctors/internal/domain/doctor"
	"github.com/spf13/cobra"
)

var flagLimit int

var similarCmd = &cobra.Command{
	Use:   "similar <id>",
	Short: "List doctors similar to one doctor",
	Long:  "Same specialty; same area first, then closest rating.",
	Args:  cobra.ExactArgs(1),
	RunE:  runSimilar,
}

func init() {
	similarCmd.Flags().IntVarP(&flagLimit, "limit", "n", doctor.DefaultSimilarLimit, "maximum number of results")
}

func runSimilar(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid doctor id %q", args[0])
	}

	records, err := loadRecords(cmd.Context(), dataPath())
	if err != nil {
		return err
	}
	target, err := doctor.Find(records, id)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), formatSimilar(target, doctor.Similar(records, target, flagLimit), resolveColor(flagColor, flagNoColor)))
	return nil
}
