package cli

import (
	"github.com/spf13/cobra"

	"github.com/YoshitsuguKoike/helloworld/internal/domain/model/record"
)

func newGreetCmd() *cobra.Command {
	opts := &greetOptions{}
	var firstName, lastName, platform string

	cmd := &cobra.Command{
		Use:   "greet",
		Short: "Print a greeting for one person",
		Long: `Print a greeting for one person.

Without --platform the label compiled into this build is used.
Names are embedded verbatim; empty names are allowed.`,
		Example: `  helloworld greet --first Ada --last Lovelace
  helloworld greet --first Foo --last Bar --platform GUMBLE --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.resolve(globalConfig, cmd.Flags().Changed); err != nil {
				return err
			}

			var label *string
			if cmd.Flags().Changed("platform") {
				label = &platform
			}
			rec := opts.render(firstName, lastName, label)
			Debug("greeted %q %q on %s", rec.FirstName, rec.LastName, rec.Platform)
			return opts.emit(cmd.OutOrStdout(), []record.Record{rec})
		},
	}

	cmd.Flags().StringVar(&firstName, "first", "", "First name")
	cmd.Flags().StringVar(&lastName, "last", "", "Last name")
	cmd.Flags().StringVar(&platform, "platform", "", "Platform label (default: the build target's label)")
	addOutputFlags(cmd, opts)
	return cmd
}
