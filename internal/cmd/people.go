package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amity-space/amity/internal/loader"
)

var addPersonCmd = &cobra.Command{
	Use:     "add_person <first_name> <last_name> <fellow|staff> [Y|N]",
	GroupID: GroupPeople,
	Short:   "Add a person and allocate them a random room",
	Long: `Add a staff member or fellow and allocate them a random office.

Fellows passing Y also get a random living space. Staff cannot request
accommodation. The flag defaults to N.

Examples:
  add_person Ama Johnson staff
  add_person Kofi Mensah fellow Y`,
	Args: cobra.RangeArgs(2, 5),
	RunE: runAddPerson,
}

var reallocatePersonCmd = &cobra.Command{
	Use:     "reallocate_person <person_id> <new_room_name>",
	GroupID: GroupPeople,
	Short:   "Move a person to another room",
	Long: `Move a person to another room of the same type. The person must already
hold a room of that type and the target must have a free place.

person_id is the id shown by list_people; the full name also works.

With --random the second argument is a room type (office or living) and a
different random room with a free place is chosen.

Examples:
  reallocate_person 1f0c... Red
  reallocate_person "Kofi Mensah" Oak
  reallocate_person --random "Kofi Mensah" living`,
	Args: cobra.ExactArgs(2),
	RunE: runReallocatePerson,
}

var allocatePendingCmd = &cobra.Command{
	Use:     "allocate_pending",
	GroupID: GroupPeople,
	Short:   "Retry allocation for everyone still missing a room",
	Args:    cobra.NoArgs,
	RunE:    runAllocatePending,
}

var loadPeopleCmd = &cobra.Command{
	Use:     "load_people [filename]",
	GroupID: GroupPeople,
	Short:   "Add people from a text file",
	Long: `Add people listed in a text file, one per line:

  FIRSTNAME LASTNAME FELLOW|STAFF [Y|N]

The file defaults to load_file from the config (data/load.txt).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLoadPeople,
}

var listPeopleCmd = &cobra.Command{
	Use:     "list_people",
	GroupID: GroupPeople,
	Short:   "Show everyone with their id and rooms",
	Args:    cobra.NoArgs,
	RunE:    runListPeople,
}

var reallocateRandom bool

func init() {
	rootCmd.AddCommand(addPersonCmd)
	rootCmd.AddCommand(reallocatePersonCmd)
	rootCmd.AddCommand(allocatePendingCmd)
	rootCmd.AddCommand(loadPeopleCmd)
	rootCmd.AddCommand(listPeopleCmd)

	reallocatePersonCmd.Flags().BoolVar(&reallocateRandom, "random", false, "Pick a random room of the given type")
}

// splitPersonArgs reads "<name words...> <role> [Y|N]".
func splitPersonArgs(args []string) (name, role, accommodation string, err error) {
	accommodation = "N"
	if n := len(args); n >= 3 {
		switch args[n-1] {
		case "Y", "y", "N", "n":
			accommodation = args[n-1]
			args = args[:n-1]
		}
	}
	if len(args) < 2 {
		return "", "", "", fmt.Errorf("expected a name and a person type")
	}
	return strings.Join(args[:len(args)-1], " "), args[len(args)-1], accommodation, nil
}

func runAddPerson(cmd *cobra.Command, args []string) error {
	name, role, accommodation, err := splitPersonArgs(args)
	if err != nil {
		return err
	}

	a, err := app.reg.AddPerson(name, role, accommodation)
	if err != nil {
		return err
	}
	app.allocation(cmd.OutOrStdout(), a)
	fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", app.pal.Dim("id: "+a.Person.ID))
	return nil
}

func runReallocatePerson(cmd *cobra.Command, args []string) error {
	reallocate := app.reg.ReallocatePerson
	if reallocateRandom {
		reallocate = app.reg.ReallocateRandom
	}

	m, err := reallocate(args[0], args[1])
	if err != nil {
		return err
	}
	app.success(cmd.OutOrStdout(), m.Message())
	return nil
}

func runAllocatePending(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	results := app.reg.AllocatePending()
	if len(results) == 0 {
		fmt.Fprintln(out, app.pal.Dim("Everyone is allocated."))
		return nil
	}
	for _, a := range results {
		app.allocation(out, a)
	}
	return nil
}

func runLoadPeople(cmd *cobra.Command, args []string) error {
	path := app.cfg.LoadFile
	if len(args) == 1 {
		path = args[0]
	}

	summary, err := loader.LoadFile(path, app.reg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, a := range summary.Added {
		app.allocation(out, a)
	}
	for _, f := range summary.Failed {
		app.fail(out, f)
	}
	fmt.Fprintf(out, "Loaded %d people from %s (%d failed)\n", len(summary.Added), path, len(summary.Failed))
	return nil
}

func runListPeople(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	people := app.reg.People()
	if len(people) == 0 {
		fmt.Fprintln(out, app.pal.Dim("No people registered. Run 'add_person' or 'load_people'."))
		return nil
	}

	for _, p := range people {
		office, living := p.OfficeRoom, p.LivingRoom
		if office == "" {
			office = "-"
		}
		if living == "" {
			living = "-"
		}
		fmt.Fprintf(out, "%s %s %s  office: %s  living: %s\n",
			app.pal.Dim(p.ID), app.pal.Bold(p.Name), p.Role, office, living)
	}
	return nil
}
