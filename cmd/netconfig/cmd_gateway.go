package netconfig

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YADRO-KNS/obmc-yadro-netconfig/args"
	"github.com/YADRO-KNS/obmc-yadro-netconfig/dbus"
)

var gatewayCommand = &cobra.Command{
	Use:                   "gateway IP",
	Short:                 "Set default gateway",
	DisableFlagsInUseLine: true,
	RunE: func(cmd *cobra.Command, argv []string) error {
		return runGateway(args.New(argv))
	},
}

func init() {
	mainCommand.AddCommand(gatewayCommand)
}

func runGateway(cur *args.Cursor) error {
	ver, ip, err := cur.AsIPAddress()
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

	property := dbus.SyscfgDefGw4
	if ver == args.IPv6 {
		property = dbus.SyscfgDefGw6
	}

	fmt.Printf("Setting default %s gateway to %s...\n", ver, ip)
	err = bus.Set(dbus.NetworkService, dbus.ObjectConfig,
		dbus.SyscfgInterface, property, ip)
	if err != nil {
		return err
	}
	fmt.Println(completeMessage)
	return nil
}
