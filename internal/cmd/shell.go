package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// annotationTopLevel marks commands that cannot run inside a session.
const annotationTopLevel = "amity/top-level"

var errQuit = errors.New("quit")

var shellCmd = &cobra.Command{
	Use:     "shell",
	GroupID: GroupSession,
	Short:   "Start an interactive session (default)",
	Long: `Read commands from standard input until 'quit', 'exit' or end of input.

Failed commands print an error and the session carries on. The prompt is
shown only when standard input is a terminal, so commands can be piped in:

  printf 'create_room office Blue\nprint_available\n' | amity shell`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationTopLevel: "true"},
	RunE:        runShell,
}

var runCmd = &cobra.Command{
	Use:     "run <script>",
	GroupID: GroupSession,
	Short:   "Run commands from a file",
	Long: `Run each line of a file as a command in one session. Blank lines and
lines starting with # are skipped. Every command runs even if an earlier one
fails; the exit status is non-zero if any failed.`,
	Args:        cobra.ExactArgs(1),
	Annotations: map[string]string{annotationTopLevel: "true"},
	RunE:        runScript,
}

func init() {
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(runCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	in := cmd.InOrStdin()
	out := cmd.OutOrStdout()
	interactive := isTerminal(in)

	if interactive {
		fmt.Fprintf(out, "%s  %s\n", app.pal.Header("Amity"), app.pal.Dim("type 'help' for commands, 'quit' to leave"))
	}

	sc := bufio.NewScanner(in)
	for {
		if interactive {
			fmt.Fprint(out, app.cfg.Prompt)
		}
		if !sc.Scan() {
			break
		}
		err := dispatch(sc.Text())
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			app.fail(cmd.ErrOrStderr(), err)
		}
	}
	return sc.Err()
}

func runScript(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0]) //nolint:gosec // G304: script path supplied by the operator
	if err != nil {
		return fmt.Errorf("opening script: %w", err)
	}
	defer f.Close()

	out := cmd.OutOrStdout()
	failed := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fmt.Fprintf(out, "%s %s\n", app.pal.ArrowPrefix(), line)
		err := dispatch(line)
		if errors.Is(err, errQuit) {
			break
		}
		if err != nil {
			failed++
			app.fail(cmd.ErrOrStderr(), err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading script: %w", err)
	}
	if failed > 0 {
		return fmt.Errorf("%d command(s) in %s failed", failed, args[0])
	}
	return nil
}

// dispatch runs one session line against the command tree.
func dispatch(line string) error {
	args, err := shellquote.Split(line)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return nil
	}

	switch args[0] {
	case "quit", "exit":
		return errQuit
	case "help":
		c, _, err := rootCmd.Find(args[1:])
		if err != nil {
			return err
		}
		return c.Help()
	}

	c, rest, err := rootCmd.Find(args)
	if err != nil {
		return err
	}
	if !c.HasParent() || c.Annotations[annotationTopLevel] != "" || c.RunE == nil {
		return fmt.Errorf("unknown command %q", args[0])
	}

	c.InitDefaultHelpFlag()
	resetFlags(c)
	defer resetFlags(c)

	if err := c.ParseFlags(rest); err != nil {
		return err
	}
	if help, _ := c.Flags().GetBool("help"); help {
		return c.Help()
	}

	argv := c.Flags().Args()
	if err := c.ValidateArgs(argv); err != nil {
		return err
	}
	return c.RunE(c, argv)
}

// resetFlags restores every flag to its default so one line's flags do not
// leak into the next.
func resetFlags(c *cobra.Command) {
	c.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}
