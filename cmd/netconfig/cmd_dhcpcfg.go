package netconfig

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YADRO-KNS/obmc-yadro-netconfig/args"
	"github.com/YADRO-KNS/obmc-yadro-netconfig/dbus"
)

var dhcpcfgCommand = &cobra.Command{
	Use:                   "dhcpcfg {enable|disable} {dns|ntp}",
	Short:                 "Enable or disable DHCP features",
	DisableFlagsInUseLine: true,
	RunE: func(cmd *cobra.Command, argv []string) error {
		return runDhcpcfg(args.New(argv))
	},
}

func init() {
	mainCommand.AddCommand(dhcpcfgCommand)
}

func runDhcpcfg(cur *args.Cursor) error {
	toggle, err := cur.AsToggle()
	if err != nil {
		return err
	}
	feature, err := cur.AsOneOf("dns", "ntp")
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
	property := dbus.DhcpDnsEnabled
	title := "DNS"
	if feature == "ntp" {
		property = dbus.DhcpNtpEnabled
		title = "NTP"
	}
	if enable {
		fmt.Printf("Enabling %s over DHCP...\n", title)
	} else {
		fmt.Printf("Disabling %s over DHCP...\n", title)
	}
	err = bus.Set(dbus.NetworkService, dbus.ObjectDhcp,
		dbus.DhcpInterface, property, enable)
	if err != nil {
		return err
	}
	fmt.Println(completeMessage)
	return nil
}
