package netconfig

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YADRO-KNS/obmc-yadro-netconfig/args"
	"github.com/YADRO-KNS/obmc-yadro-netconfig/dbus"
)

var dhcpCommand = &cobra.Command{
	Use:                   "dhcp [IFACE|VLANID] {enable|disable}",
	Short:                 "Enable or disable DHCP client",
	DisableFlagsInUseLine: true,
	RunE: func(cmd *cobra.Command, argv []string) error {
		return runDhcp(args.New(argv))
	},
}

func init() {
	mainCommand.AddCommand(dhcpCommand)
}

func runDhcp(cur *args.Cursor) error {
	object, err := objectFromOptional(cur, "enable", "disable")
	if err != nil {
		return err
	}
	toggle, err := cur.AsToggle()
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

	enable := toggle == args.ToggleEnable
	if enable {
		fmt.Println("Enabling DHCP client...")
	} else {
		fmt.Println("Disabling DHCP client...")
	}
	err = bus.Set(dbus.NetworkService, object, dbus.EthInterface,
		dbus.EthDhcpEnabled, enable)
	if err != nil {
		return err
	}
	fmt.Println(completeMessage)
	return nil
}
