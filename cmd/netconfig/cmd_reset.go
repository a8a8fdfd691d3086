package netconfig

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YADRO-KNS/obmc-yadro-netconfig/args"
	"github.com/YADRO-KNS/obmc-yadro-netconfig/dbus"
)

var resetCommand = &cobra.Command{
	Use:                   "reset",
	Short:                 "Reset configuration to factory defaults",
	DisableFlagsInUseLine: true,
	RunE: func(cmd *cobra.Command, argv []string) error {
		return runReset(args.New(argv))
	},
}

func init() {
	mainCommand.AddCommand(resetCommand)
}

func runReset(cur *args.Cursor) error {
	if err := cur.ExpectEnd(); err != nil {
		return err
	}

	bus, err := connect()
	if err != nil {
		return err
	}
	defer bus.Close()

	fmt.Println("Reset network configuration...")
	err = bus.Call(dbus.NetworkService, dbus.ObjectRoot,
		dbus.ResetInterface, dbus.ResetMethod)
	if err != nil {
		return err
	}
	fmt.Println(completeMessage)
	return nil
}
