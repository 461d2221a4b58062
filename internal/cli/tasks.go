package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spechtlabs/golint-quality/internal/version"
)

func newTasksCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "tasks",
		Short: "List the project's tasks and their dependencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			proj, err := setup(cmd, v)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TASK\tGROUP\tDEPENDS ON\tDESCRIPTION")
			for _, name := range proj.TaskNames() {
				tp, _ := proj.Task(name)
				t := tp.Get()
				deps := strings.Join(t.Dependencies(), ", ")
				if deps == "" {
					deps = "-"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.Name(), t.Group(), deps, t.Description())
			}
			return w.Flush()
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Info())
		},
	}
}
