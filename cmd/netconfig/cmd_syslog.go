package netconfig

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YADRO-KNS/obmc-yadro-netconfig/args"
	"github.com/YADRO-KNS/obmc-yadro-netconfig/dbus"
)

var syslogCommand = &cobra.Command{
	Use:                   "syslog [ADDR[:PORT]]",
	Short:                 "Set remote syslog server",
	DisableFlagsInUseLine: true,
	RunE: func(cmd *cobra.Command, argv []string) error {
		return runSyslog(args.New(argv))
	},
}

func init() {
	mainCommand.AddCommand(syslogCommand)
}

func runSyslog(cur *args.Cursor) error {
	// without an argument the remote target is cleared
	host := ""
	port := uint16(0)
	if _, ok := cur.Peek(); ok {
		var err error
		host, port, err = cur.ParseAddrAndPort()
		if err != nil {
			return err
		}
	}
	if err := cur.ExpectEnd(); err != nil {
		return err
	}

	bus, err := connect()
	if err != nil {
		return err
	}
	defer bus.Close()

	if host == "" {
		fmt.Println("Clearing remote syslog server...")
	} else {
		fmt.Printf("Setting remote syslog server %s:%d...\n", host, port)
	}
	err = bus.Set(dbus.SyslogService, dbus.ObjectSyslog,
		dbus.SyslogInterface, dbus.SyslogAddress, host)
	if err != nil {
		return err
	}
	err = bus.Set(dbus.SyslogService, dbus.ObjectSyslog,
		dbus.SyslogInterface, dbus.SyslogPort, port)
	if err != nil {
		return err
	}
	fmt.Println(completeMessage)
	return nil
}
