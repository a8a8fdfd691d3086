package netconfig

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YADRO-KNS/obmc-yadro-netconfig/args"
	"github.com/YADRO-KNS/obmc-yadro-netconfig/dbus"
)

var domainCommand = &cobra.Command{
	Use:                   "domain [IFACE|VLANID] {add|del} NAME",
	Short:                 "Add or remove domain name",
	DisableFlagsInUseLine: true,
	RunE: func(cmd *cobra.Command, argv []string) error {
		return runDomain(args.New(argv))
	},
}

func init() {
	mainCommand.AddCommand(domainCommand)
}

func runDomain(cur *args.Cursor) error {
	object, err := objectFromOptional(cur, "add", "del")
	if err != nil {
		return err
	}
	action, err := cur.AsAction()
	if err != nil {
		return err
	}
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

	if action == args.ActionAdd {
		fmt.Printf("Adding domain name %s...\n", name)
		err = bus.Append(dbus.NetworkService, object,
			dbus.EthInterface, dbus.EthDomainName, name)
	} else {
		fmt.Printf("Removing domain name %s...\n", name)
		err = bus.Remove(dbus.NetworkService, object,
			dbus.EthInterface, dbus.EthDomainName, name)
	}
	if err != nil {
		return err
	}
	fmt.Println(completeMessage)
	return nil
}
