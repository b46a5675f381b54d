package cmd

import (
	"fmt"

	"github.com/RafaelRangel0/Similar-Doctors/internal/app"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration",
	Long:  "Shows the project root, data file, default address and whether a server answers there.",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	root := projectRoot()
	paths := app.NewPaths(root)
	paths.Doctors = dataPath()
	color := resolveColor(flagColor, flagNoColor)
	out := cmd.OutOrStdout()

	dataStatus := paint(colorYellow, "✗ missing", color)
	if paths.DataFileExists() {
		dataStatus = paint(colorGreen, "✓ present", color)
	}
	serverStatus := paint(colorYellow, "✗ not running", color)
	if _, err := fetchHealth("http://" + app.DefaultAddr + "/api/health"); err == nil {
		serverStatus = paint(colorGreen, "✓ running", color)
	}

	fmt.Fprintf(out, "%s\n", paint(colorBold, "⚡ similardocs config", color))
	fmt.Fprintf(out, "  Root:     %s\n", root)
	fmt.Fprintf(out, "  Data:     %s  %s\n", paths.Doctors, dataStatus)
	fmt.Fprintf(out, "  Address:  %s\n", app.DefaultAddr)
	fmt.Fprintf(out, "  Server:   %s\n", serverStatus)
	return nil
}
