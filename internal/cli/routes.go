package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"pet-wellness-web/internal/domain/users"
	"pet-wellness-web/internal/navigation"

	"github.com/spf13/cobra"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Print the navigation guard decision table",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printRoutes(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(routesCmd)
}

var sampleStates = []navigation.State{
	{},
	{Role: users.RolePetOwner, Step: 0},
	{Role: users.RolePetOwner, Step: 1},
	{Role: users.RolePetOwner, Step: 2},
	{Role: users.RoleVeterinarian, Step: 0},
	{Role: users.RoleVeterinarian, Step: 1},
}

func stateLabel(s navigation.State) string {
	if !s.Authenticated() {
		return "anonymous"
	}
	return fmt.Sprintf("%s/%d", s.Role, s.Step)
}

func printRoutes(out io.Writer) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	routes := append([]navigation.Route{navigation.RouteRoot}, navigation.Gated...)
	fmt.Fprint(tw, "STATE")
	for _, r := range routes {
		fmt.Fprintf(tw, "\t%s", r)
	}
	fmt.Fprintln(tw)

	for _, s := range sampleStates {
		fmt.Fprint(tw, stateLabel(s))
		for _, r := range routes {
			a := navigation.Decide(r, s)
			cell := "allow"
			if a.Redirect() {
				cell = "-> " + a.Target.String()
			}
			fmt.Fprintf(tw, "\t%s", cell)
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
