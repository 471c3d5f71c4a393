// Package cmd implements the amity command line.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/amity-space/amity/internal/style"
)

// Command groups shown in help.
const (
	GroupRooms   = "rooms"
	GroupPeople  = "people"
	GroupReports = "reports"
	GroupSession = "session"
)

var rootCmd = &cobra.Command{
	Use:   "amity",
	Short: "Allocate offices and living spaces to staff and fellows",
	Long: `Amity tracks rooms (offices and living spaces) and people (staff and
fellows), and allocates people to rooms at random within capacity.

Offices hold 6 people. Living spaces hold 4 and are for fellows only.

State lives for one session: run 'amity' with no command for an interactive
shell, or 'amity run <script>' to execute a file of commands.

Examples:
  amity                                   # Interactive shell
  amity run setup.amity                   # Run commands from a file
  amity create_room office Blue Red       # One-off command`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

var (
	configPath string
	colorMode  string
	seed       uint64
)

func init() {
	rootCmd.RunE = runShell
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupRooms, Title: "Rooms:"},
		&cobra.Group{ID: GroupPeople, Title: "People:"},
		&cobra.Group{ID: GroupReports, Title: "Reports:"},
		&cobra.Group{ID: GroupSession, Title: "Session:"},
	)

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $AMITY_CONFIG or ~/.config/amity/config.toml)")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "", "Styled output: auto, always or never (overrides config)")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "Seed for random room choice (overrides config)")
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", style.ErrorPrefix, err)
		return 1
	}
	return 0
}
