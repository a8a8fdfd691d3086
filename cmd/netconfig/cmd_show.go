package netconfig

import (
	"github.com/spf13/cobra"

	"github.com/YADRO-KNS/obmc-yadro-netconfig/args"
	"github.com/YADRO-KNS/obmc-yadro-netconfig/show"
)

var showCommand = &cobra.Command{
	Use:                   "show",
	Short:                 "Show current configuration",
	DisableFlagsInUseLine: true,
	RunE: func(cmd *cobra.Command, argv []string) error {
		return runShow(args.New(argv))
	},
}

func init() {
	mainCommand.AddCommand(showCommand)
}

func runShow(cur *args.Cursor) error {
	if err := cur.ExpectEnd(); err != nil {
		return err
	}

	bus, err := connect()
	if err != nil {
		return err
	}
	defer bus.Close()

	s, err := show.New(bus)
	if err != nil {
		return err
	}
	s.Print()
	return nil
}
