package netconfig

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YADRO-KNS/obmc-yadro-netconfig/args"
	"github.com/YADRO-KNS/obmc-yadro-netconfig/dbus"
)

var vlanCommand = &cobra.Command{
	Use:                   "vlan {add|del} ID",
	Short:                 "Add or remove VLAN",
	DisableFlagsInUseLine: true,
	RunE: func(cmd *cobra.Command, argv []string) error {
		return runVlan(args.New(argv))
	},
}

func init() {
	mainCommand.AddCommand(vlanCommand)
}

func runVlan(cur *args.Cursor) error {
	action, err := cur.AsAction()
	if err != nil {
		return err
	}
	id, err := cur.AsNumber()
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
		fmt.Printf("Adding VLAN with ID %d...\n", id)
		err = bus.Call(dbus.NetworkService, dbus.ObjectRoot,
			dbus.VlanCreateInterface, dbus.VlanCreateMethod,
			opts.DefaultInterface, uint32(id))
	} else {
		fmt.Printf("Removing VLAN with ID %d...\n", id)
		object := dbus.VlanObject(opts.DefaultInterface, id)
		err = bus.Call(dbus.NetworkService, object,
			dbus.DeleteInterface, dbus.DeleteMethod)
	}
	if err != nil {
		return err
	}
	fmt.Println(completeMessage)
	return nil
}
