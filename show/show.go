// Package show prints the current network configuration.
package show

import (
	"fmt"
	"net/netip"
	"sort"
	"strings"

	"github.com/fatih/color"
	godbus "github.com/godbus/dbus/v5"
	"go4.org/netipx"

	"github.com/YADRO-KNS/obmc-yadro-netconfig/dbus"
)

// Show holds a one-shot snapshot of the network manager's object tree.
type Show struct {
	bus     *dbus.Bus
	objects dbus.ManagedObjects
}

func New(bus *dbus.Bus) (*Show, error) {
	objects, err := bus.ManagedObjects()
	if err != nil {
		return nil, err
	}
	return &Show{bus: bus, objects: objects}, nil
}

// Print writes the whole configuration to stdout.
func (s *Show) Print() {
	global := s.properties(dbus.ObjectConfig, dbus.SyscfgInterface)
	section("Global network configuration")
	property("Host name", value(global, dbus.SyscfgHostname))
	property("Default IPv4 gateway", value(global, dbus.SyscfgDefGw4))
	property("Default IPv6 gateway", value(global, dbus.SyscfgDefGw6))

	dhcp := s.properties(dbus.ObjectDhcp, dbus.DhcpInterface)
	section("Global DHCP configuration")
	boolProperty("DNS over DHCP", value(dhcp, dbus.DhcpDnsEnabled), "Disabled", "Enabled")
	boolProperty("NTP over DHCP", value(dhcp, dbus.DhcpNtpEnabled), "Disabled", "Enabled")

	var paths []string
	for path, ifaces := range s.objects {
		if _, ok := ifaces[dbus.EthInterface]; ok {
			paths = append(paths, string(path))
		}
	}
	sort.Strings(paths)
	for _, path := range paths {
		s.printInterface(path)
	}

	s.printSyslog()
}

func (s *Show) printInterface(path string) {
	eth := s.properties(path, dbus.EthInterface)
	vlan := s.properties(path, dbus.VlanInterface)
	mac := s.properties(path, dbus.MacInterface)

	name, _ := value(eth, dbus.EthName).(string)
	section(fmt.Sprintf("Ethernet interface %s", name))

	if vlan != nil {
		property("VLAN Id", value(vlan, dbus.VlanId))
	}
	property("MAC address", value(mac, dbus.MacAddress))
	boolProperty("Link state", value(eth, dbus.EthLinkUp), "DOWN", "UP")
	property("Link speed", value(eth, dbus.EthSpeed))
	boolProperty("DHCP client", value(eth, dbus.EthDhcpEnabled), "Disabled", "Enabled")

	for _, addr := range s.addresses(path) {
		property("IP address", fmt.Sprintf("%s/%d", addr.Address, addr.Prefix))
		if addr.Gateway != "" {
			property("Gateway", addr.Gateway)
		}
	}

	property("DNS servers", value(eth, dbus.EthNameServers))
	property("Static DNS servers", value(eth, dbus.EthStNameServers))
	property("NTP servers", value(eth, dbus.EthNtpServers))
	property("Domains", value(eth, dbus.EthDomainName))
}

func (s *Show) printSyslog() {
	addr, err := s.bus.Get(dbus.SyslogService, dbus.ObjectSyslog,
		dbus.SyslogInterface, dbus.SyslogAddress)
	if err != nil {
		return
	}
	port, err := s.bus.Get(dbus.SyslogService, dbus.ObjectSyslog,
		dbus.SyslogInterface, dbus.SyslogPort)
	if err != nil {
		return
	}
	section("Remote syslog")
	host, _ := addr.Value().(string)
	if host == "" {
		property("Server", nil)
		return
	}
	if p, ok := port.Value().(uint16); ok && p != 0 {
		host = fmt.Sprintf("%s:%d", host, p)
	}
	property("Server", host)
}

// addresses collects and orders the IP address objects of an interface.
func (s *Show) addresses(ethObject string) []dbus.Address {
	var addrs []dbus.Address
	pathPrefix := ethObject + "/ip"
	for path, ifaces := range s.objects {
		if !strings.HasPrefix(string(path), pathPrefix) {
			continue
		}
		props, ok := ifaces[dbus.IPInterface]
		if !ok {
			continue
		}
		addr := dbus.Address{Object: string(path)}
		addr.Address, _ = value(props, dbus.IPAddress).(string)
		addr.Prefix, _ = value(props, dbus.IPPrefix).(uint8)
		addr.Gateway, _ = value(props, dbus.IPGateway).(string)
		addrs = append(addrs, addr)
	}
	sort.Slice(addrs, func(i, j int) bool {
		pi, erri := netip.ParsePrefix(fmt.Sprintf("%s/%d", addrs[i].Address, addrs[i].Prefix))
		pj, errj := netip.ParsePrefix(fmt.Sprintf("%s/%d", addrs[j].Address, addrs[j].Prefix))
		if erri != nil || errj != nil {
			return addrs[i].Object < addrs[j].Object
		}
		return netipx.ComparePrefix(pi, pj) < 0
	})
	return addrs
}

func (s *Show) properties(object, iface string) dbus.Properties {
	ifaces, ok := s.objects[godbus.ObjectPath(object)]
	if !ok {
		return nil
	}
	return ifaces[iface]
}

func value(props dbus.Properties, name string) any {
	if props == nil {
		return nil
	}
	v, ok := props[name]
	if !ok {
		return nil
	}
	return v.Value()
}

func section(title string) {
	color.New(color.Bold).Printf("%s:\n", title)
}

func property(title string, v any) {
	fmt.Printf("  %-20s %s\n", title+":", format(v))
}

func boolProperty(title string, v any, falseVal, trueVal string) {
	if b, ok := v.(bool); ok {
		if b {
			property(title, trueVal)
		} else {
			property(title, falseVal)
		}
		return
	}
	property(title, v)
}

func format(v any) string {
	switch val := v.(type) {
	case nil:
		return "N/A"
	case string:
		if val == "" {
			return "N/A"
		}
		return val
	case []string:
		if len(val) == 0 {
			return "N/A"
		}
		return strings.Join(val, ", ")
	case bool:
		if val {
			return "Yes"
		}
		return "No"
	default:
		return fmt.Sprint(val)
	}
}
