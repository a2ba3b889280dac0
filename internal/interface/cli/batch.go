package cli

import (
	"github.com/spf13/cobra"

	"github.com/YoshitsuguKoike/helloworld/internal/domain/model/record"
	"github.com/YoshitsuguKoike/helloworld/internal/infra/roster"
)

func newBatchCmd() *cobra.Command {
	opts := &greetOptions{}
	var file string

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Greet every person listed in a roster file",
		Long: `Greet every person listed in a YAML roster file, in order.

The roster is a single YAML document of the form:

  people:
    - first_name: Ada
      last_name: Lovelace
    - first_name: Foo
      last_name: Bar
      platform: GUMBLE

Entries without a platform use the label compiled into this build.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.resolve(globalConfig, cmd.Flags().Changed); err != nil {
				return err
			}

			entries, err := roster.Load(appFs, file)
			if err != nil {
				return err
			}
			Info("loaded %d roster entries from %s", len(entries), file)

			records := make([]record.Record, 0, len(entries))
			for _, e := range entries {
				var label *string
				if e.Platform != "" {
					p := e.Platform
					label = &p
				}
				records = append(records, opts.render(e.FirstName, e.LastName, label))
			}
			return opts.emit(cmd.OutOrStdout(), records)
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Roster YAML file")
	_ = cmd.MarkFlagRequired("file")
	addOutputFlags(cmd, opts)
	return cmd
}
