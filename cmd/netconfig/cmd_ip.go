package netconfig

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YADRO-KNS/obmc-yadro-netconfig/args"
	"github.com/YADRO-KNS/obmc-yadro-netconfig/dbus"
)

var ipCommand = &cobra.Command{
	Use:                   "ip [IFACE|VLANID] {add|del} IP[/PREFIX] [GATEWAY]",
	Short:                 "Add or remove static IP address",
	DisableFlagsInUseLine: true,
	RunE: func(cmd *cobra.Command, argv []string) error {
		return runIP(args.New(argv))
	},
}

func init() {
	mainCommand.AddCommand(ipCommand)
}

func runIP(cur *args.Cursor) error {
	object, err := objectFromOptional(cur, "add", "del")
	if err != nil {
		return err
	}
	action, err := cur.AsAction()
	if err != nil {
		return err
	}
	if action == args.ActionAdd {
		return addIP(cur, object)
	}
	return delIP(cur, object)
}

func addIP(cur *args.Cursor, object string) error {
	ver, ip, prefix, err := cur.AsIPAddrMask(args.DefaultPrefix)
	if err != nil {
		return err
	}
	gwVer, gw, err := cur.AsIPAddress()
	if err != nil {
		return err
	}
	if err := cur.ExpectEnd(); err != nil {
		return err
	}
	if ver != gwVer {
		return errors.New("IP version mismatch")
	}

	bus, err := connect()
	if err != nil {
		return err
	}
	defer bus.Close()

	protocol := dbus.IP4Protocol
	if ver == args.IPv6 {
		protocol = dbus.IP6Protocol
	}

	fmt.Printf("Adding IP address %s/%d with gateway %s...\n", ip, prefix, gw)
	err = bus.Call(dbus.NetworkService, object,
		dbus.IPCreateInterface, dbus.IPCreateMethod, protocol, ip, prefix, gw)
	if err != nil {
		return err
	}
	fmt.Println(completeMessage)
	return nil
}

func delIP(cur *args.Cursor, object string) error {
	_, ip, err := cur.AsIPAddress()
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

	addresses, err := bus.GetAddresses(object)
	if err != nil {
		return err
	}
	for _, addr := range addresses {
		if addr.Address == ip {
			fmt.Printf("Removing IP address %s...\n", ip)
			err = bus.Call(dbus.NetworkService, addr.Object,
				dbus.DeleteInterface, dbus.DeleteMethod)
			if err != nil {
				return err
			}
			fmt.Println(completeMessage)
			return nil
		}
	}
	return fmt.Errorf("IP address %s not found", ip)
}
