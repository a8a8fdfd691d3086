package netconfig

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YADRO-KNS/obmc-yadro-netconfig/args"
	"github.com/YADRO-KNS/obmc-yadro-netconfig/dbus"
)

var macCommand = &cobra.Command{
	Use:                   "mac [IFACE] MAC",
	Short:                 "Set MAC address",
	DisableFlagsInUseLine: true,
	RunE: func(cmd *cobra.Command, argv []string) error {
		return runMac(args.New(argv))
	},
}

func init() {
	mainCommand.AddCommand(macCommand)
}

func runMac(cur *args.Cursor) error {
	object := dbus.EthToPath(opts.DefaultInterface)
	// with two arguments left the first one names the interface
	if _, ok := cur.PeekNext(); ok {
		name, err := cur.AsNetInterface()
		if err != nil {
			return err
		}
		object = dbus.EthToPath(name)
	}
	mac, err := cur.AsMacAddress()
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

	fmt.Printf("Setting MAC address %s...\n", mac)
	err = bus.Set(dbus.NetworkService, object, dbus.MacInterface,
		dbus.MacAddress, mac)
	if err != nil {
		return err
	}
	fmt.Println(completeMessage)
	return nil
}
