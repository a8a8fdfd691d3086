package netconfig

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YADRO-KNS/obmc-yadro-netconfig/args"
	"github.com/YADRO-KNS/obmc-yadro-netconfig/dbus"
)

var ntpCommand = &cobra.Command{
	Use:                   "ntp [IFACE|VLANID] {add|del} SERVER",
	Short:                 "Add or remove NTP server",
	DisableFlagsInUseLine: true,
	RunE: func(cmd *cobra.Command, argv []string) error {
		return runNtp(args.New(argv))
	},
}

func init() {
	mainCommand.AddCommand(ntpCommand)
}

func runNtp(cur *args.Cursor) error {
	object, err := objectFromOptional(cur, "add", "del")
	if err != nil {
		return err
	}
	action, err := cur.AsAction()
	if err != nil {
		return err
	}
	server, err := cur.AsIPOrFQDN()
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

	if action == args.ActionAdd {
		fmt.Printf("Adding NTP server %s...\n", server)
		err = bus.Append(dbus.NetworkService, object,
			dbus.EthInterface, dbus.EthNtpServers, server)
	} else {
		fmt.Printf("Removing NTP server %s...\n", server)
		err = bus.Remove(dbus.NetworkService, object,
			dbus.EthInterface, dbus.EthNtpServers, server)
	}
	if err != nil {
		return err
	}
	fmt.Println(completeMessage)
	return nil
}
