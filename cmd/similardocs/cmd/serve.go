package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/RafaelRangel0/Similar-Doctors/internal/app"
	"github.com/spf13/cobra"
)

var (
	flagAddr  string
	flagWatch bool
	flagDebug bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long: "Serves the directory page on / and the doctor list on /api/doctors.\n" +
		"By default the data file is read on every request; --watch keeps it in memory\n" +
		"and reloads it when the file changes.",
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", app.DefaultAddr, "listen address")
	serveCmd.Flags().BoolVar(&flagWatch, "watch", false, "cache the data file and reload it on change")
	serveCmd.Flags().BoolVar(&flagDebug, "debug", false, "gin debug mode")
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := app.New(app.Config{
		ProjectRoot: projectRoot(),
		DataPath:    flagData,
		Addr:        flagAddr,
		Watch:       flagWatch,
		Debug:       flagDebug,
	})
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}

	if err := a.Start(); err != nil {
		return err
	}

	fmt.Printf("⚡ similardocs serving %s at %s (%s)\n", a.Config.DataPath, a.URL(), a.Mode())

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	fmt.Println("\n⚡ shutting down...")
	return a.Stop()
}
