package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/amity-space/amity/internal/report"
)

var printAllocationsCmd = &cobra.Command{
	Use:     "print_allocations",
	GroupID: GroupReports,
	Short:   "Show every room with its occupants",
	Long: `Show every room that has occupants, offices first, each followed by
the names of the people in it.

With -o the report is also written, unstyled, to the given file.`,
	Args: cobra.NoArgs,
	RunE: runPrintAllocations,
}

var printUnallocatedCmd = &cobra.Command{
	Use:     "print_unallocated",
	GroupID: GroupReports,
	Short:   "Show people still missing an office or living space",
	Long: `Show everyone without an office and every fellow without a living space.

With -o the report is also written, unstyled, to the given file.`,
	Args: cobra.NoArgs,
	RunE: runPrintUnallocated,
}

var (
	allocationsOutput string
	unallocatedOutput string
)

func init() {
	rootCmd.AddCommand(printAllocationsCmd)
	rootCmd.AddCommand(printUnallocatedCmd)

	printAllocationsCmd.Flags().StringVarP(&allocationsOutput, "output", "o", "", "Also write the report to this file")
	printUnallocatedCmd.Flags().StringVarP(&unallocatedOutput, "output", "o", "", "Also write the report to this file")
}

func runPrintAllocations(cmd *cobra.Command, args []string) error {
	rooms := app.reg.Allocations()
	return emit(cmd, allocationsOutput, func(p report.Printer, w io.Writer) error {
		return p.Allocations(w, rooms)
	})
}

func runPrintUnallocated(cmd *cobra.Command, args []string) error {
	u := app.reg.Unallocated()
	return emit(cmd, unallocatedOutput, func(p report.Printer, w io.Writer) error {
		return p.Unallocated(w, u)
	})
}

// emit renders a report to the command output and, when path is set, to a file.
func emit(cmd *cobra.Command, path string, render func(report.Printer, io.Writer) error) error {
	out := cmd.OutOrStdout()
	if err := render(app.printer(), out); err != nil {
		return err
	}
	if path == "" {
		return nil
	}

	if err := report.WriteFile(path, func(w io.Writer) error {
		return render(report.Plain, w)
	}); err != nil {
		return err
	}
	app.success(out, "Report written to "+path)
	return nil
}
