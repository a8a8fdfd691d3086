// Package netconfig implements the network configuration command tree.
package netconfig

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/YADRO-KNS/obmc-yadro-netconfig/args"
	"github.com/YADRO-KNS/obmc-yadro-netconfig/dbus"
	"github.com/YADRO-KNS/obmc-yadro-netconfig/log"
	"github.com/YADRO-KNS/obmc-yadro-netconfig/option"
)

// Message printed after a request was accepted by the network manager.
const completeMessage = "Request has been sent"

var mainCommand = &cobra.Command{
	Use:           "netconfig",
	Short:         "OpenBMC network configuration",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	paramConfig string
	paramDebug  bool

	opts   *option.Option
	logger *log.SimpleLogger
)

func init() {
	mainCommand.PersistentFlags().StringVarP(&paramConfig, "config", "c",
		"/etc/netconfig.yaml", "config file")
	mainCommand.PersistentFlags().BoolVar(&paramDebug, "debug", false,
		"trace bus traffic")
	mainCommand.PersistentPreRunE = setup
}

func setup(cmd *cobra.Command, argv []string) error {
	var err error
	opts, err = option.ReadFile(paramConfig)
	if err != nil {
		return err
	}
	logger = log.NewLogger()
	if opts.LogOption.Disabled {
		logger.SetOutput(io.Discard)
	}
	logger.SetColor(opts.LogOption.Color)
	logger.SetDebug(paramDebug || opts.LogOption.Debug)
	return nil
}

func Run() error {
	return mainCommand.Execute()
}

func connect() (*dbus.Bus, error) {
	return dbus.New(logger)
}

// objectFromOptional resolves the optional leading [IFACE|VLANID]
// argument of a command: a numeric token selects a VLAN of the default
// interface, a token outside the command's keyword set must name a live
// network interface, anything else leaves the default interface.
func objectFromOptional(cur *args.Cursor, keywords ...string) (string, error) {
	tok, ok := cur.Peek()
	if !ok {
		return dbus.EthToPath(opts.DefaultInterface), nil
	}
	if args.IsNumber(tok) {
		id, err := cur.AsNumber()
		if err != nil {
			return "", err
		}
		return dbus.VlanObject(opts.DefaultInterface, id), nil
	}
	for _, kw := range keywords {
		if tok == kw {
			return dbus.EthToPath(opts.DefaultInterface), nil
		}
	}
	name, err := cur.AsNetInterface()
	if err != nil {
		return "", err
	}
	return dbus.EthToPath(name), nil
}
