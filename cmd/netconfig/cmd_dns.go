package netconfig

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YADRO-KNS/obmc-yadro-netconfig/args"
	"github.com/YADRO-KNS/obmc-yadro-netconfig/dbus"
)

var dnsCommand = &cobra.Command{
	Use:                   "dns [IFACE|VLANID] {add|del} [static] IP",
	Short:                 "Add or remove DNS server",
	DisableFlagsInUseLine: true,
	RunE: func(cmd *cobra.Command, argv []string) error {
		return runDNS(args.New(argv))
	},
}

func init() {
	mainCommand.AddCommand(dnsCommand)
}

func runDNS(cur *args.Cursor) error {
	object, err := objectFromOptional(cur, "add", "del")
	if err != nil {
		return err
	}
	action, err := cur.AsAction()
	if err != nil {
		return err
	}

	property := dbus.EthNameServers
	if tok, ok := cur.Peek(); ok && tok == "static" {
		if err := cur.Advance(); err != nil {
			return err
		}
		property = dbus.EthStNameServers
	}

	_, server, err := cur.AsIPAddress()
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
		fmt.Printf("Adding DNS server %s...\n", server)
		err = bus.Append(dbus.NetworkService, object,
			dbus.EthInterface, property, server)
	} else {
		fmt.Printf("Removing DNS server %s...\n", server)
		err = bus.Remove(dbus.NetworkService, object,
			dbus.EthInterface, property, server)
	}
	if err != nil {
		return err
	}
	fmt.Println(completeMessage)
	return nil
}
