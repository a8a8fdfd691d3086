package netconfig

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YADRO-KNS/obmc-yadro-netconfig/args"
	"github.com/YADRO-KNS/obmc-yadro-netconfig/dbus"
)

var hostnameCommand = &cobra.Command{
	Use:                   "hostname NAME",
	Short:                 "Set host name",
	DisableFlagsInUseLine: true,
	RunE: func(cmd *cobra.Command, argv []string) error {
		return runHostname(args.New(argv))
	},
}

func init() {
	mainCommand.AddCommand(hostnameCommand)
}

func runHostname(cur *args.Cursor) error {
	name, err := cur.ConsumeText()
	if err != nil {
		return err
	}
	if err := cur.ExpectEnd(); err != nil {
		return err
	}

	bus, err := connect()
	if err != nil {
		return err
	}
	defer bus.Close()

	fmt.Printf("Setting host name %s...\n", name)
	err = bus.Set(dbus.NetworkService, dbus.ObjectConfig,
		dbus.SyscfgInterface, dbus.SyscfgHostname, name)
	if err != nil {
		return err
	}
	fmt.Println(completeMessage)
	return nil
}
