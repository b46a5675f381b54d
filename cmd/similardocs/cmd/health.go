package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/RafaelRangel0/Similar-Doctors/internal/adapters/web"
	"github.com/RafaelRangel0/Similar-Doctors/internal/app"
	"github.com/spf13/cobra"
)

var flagHealthAddr string

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check a running server",
	Args:  cobra.NoArgs,
	RunE:  runHealth,
}

func init() {
	healthCmd.Flags().StringVar(&flagHealthAddr, "addr", app.DefaultAddr, "server address")
}

func runHealth(cmd *cobra.Command, args []string) error {
	url := "http://" + flagHealthAddr + "/api/health"
	health, err := fetchHealth(url)
	if err != nil {
		return fmt.Errorf("similardocs is not running at %s: %w", flagHealthAddr, err)
	}

	fmt.Fprint(cmd.OutOrStdout(), formatHealth(health, resolveColor(flagColor, flagNoColor)))
	return nil
}

func fetchHealth(url string) (*web.HealthResult, error) {
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("health: HTTP %d", resp.StatusCode)
	}

	var h web.HealthResult
	if err := json.NewDecoder(resp.Body).Decode(&h); err != nil {
		return nil, fmt.Errorf("decode health: %w", err)
	}
	return &h, nil
}
