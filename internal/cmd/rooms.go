package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/amity-space/amity/internal/room"
)

var createRoomCmd = &cobra.Command{
	Use:     "create_room <office|living> <room_name>...",
	GroupID: GroupRooms,
	Short:   "Create one or more rooms",
	Long: `Create rooms of one type. Names are stored in title case and must be
unique across offices and living spaces; existing names are skipped.

Examples:
  create_room office Blue Red Green
  create_room living Oak "Palm Court"`,
	Args: cobra.MinimumNArgs(2),
	RunE: runCreateRoom,
}

var printRoomCmd = &cobra.Command{
	Use:     "print_room <room_name>",
	GroupID: GroupReports,
	Short:   "Show the people allocated to a room",
	Args:    cobra.MinimumNArgs(1),
	RunE:    runPrintRoom,
}

var printAvailableCmd = &cobra.Command{
	Use:     "print_available",
	GroupID: GroupReports,
	Short:   "Show every room and its free places",
	Args:    cobra.NoArgs,
	RunE:    runPrintAvailable,
}

func init() {
	rootCmd.AddCommand(createRoomCmd)
	rootCmd.AddCommand(printRoomCmd)
	rootCmd.AddCommand(printAvailableCmd)
}

func runCreateRoom(cmd *cobra.Command, args []string) error {
	res, err := app.reg.CreateRoom(args[0], args[1:])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(res.Existing) > 0 {
		app.warn(out, res.Message())
		if len(res.Created) > 0 {
			app.success(out, "Created "+strings.Join(res.Created, ", "))
		}
		return nil
	}
	app.success(out, res.Message())
	return nil
}

func runPrintRoom(cmd *cobra.Command, args []string) error {
	name := strings.Join(args, " ")
	occupants, err := app.reg.RoomOccupants(name)
	if err != nil {
		return err
	}
	return app.printer().Room(cmd.OutOrStdout(), room.NormalizeName(name), occupants)
}

func runPrintAvailable(cmd *cobra.Command, args []string) error {
	return app.printer().Available(cmd.OutOrStdout(), app.reg.AvailableSpace())
}
