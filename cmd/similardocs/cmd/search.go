package cmd

import (
	"fmt"
	"strings"

	"github.com/RafaelRangel0/Similar-Doctors/internal/domain/doctor"
	"github.com/spf13/cobra"
)

var (
	flagSpecialty string
	flagArea      string
	flagMinRating float64
)

var searchCmd = &cobra.Command{
	Use:   "search [name]",
	Short: "Search the doctor list",
	Long:  "Filters the data file by name, specialty, area and minimum rating; results are sorted by last name.",
	Args:  cobra.ArbitraryArgs,
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&flagSpecialty, "specialty", "s", "", "exact specialty")
	searchCmd.Flags().StringVarP(&flagArea, "area", "a", "", "exact area")
	searchCmd.Flags().Float64VarP(&flagMinRating, "min-rating", "r", 0, "minimum review score")
}

func runSearch(cmd *cobra.Command, args []string) error {
	records, err := loadRecords(cmd.Context(), dataPath())
	if err != nil {
		return err
	}

	matches := doctor.SortByLastName(doctor.Filter(records, doctor.Criteria{
		Query:     strings.Join(args, " "),
		Specialty: flagSpecialty,
		Area:      flagArea,
		MinRating: flagMinRating,
	}))

	fmt.Fprint(cmd.OutOrStdout(), formatDoctors(matches, resolveColor(flagColor, flagNoColor)))
	return nil
}
