package dbus

// Well-known names of the network manager and the syslog configuration
// service, their objects, interfaces and properties.
const (
	NetworkService = "xyz.openbmc_project.Network"
	SyslogService  = "xyz.openbmc_project.Syslog.Config"

	ObjectRoot   = "/xyz/openbmc_project/network"
	ObjectConfig = ObjectRoot + "/config"
	ObjectDhcp   = ObjectConfig + "/dhcp"
	ObjectSyslog = "/xyz/openbmc_project/logging/config/remote"

	SyscfgInterface = "xyz.openbmc_project.Network.SystemConfiguration"
	SyscfgHostname  = "HostName"
	SyscfgDefGw4    = "DefaultGateway"
	SyscfgDefGw6    = "DefaultGateway6"

	DhcpInterface  = "xyz.openbmc_project.Network.DHCPConfiguration"
	DhcpDnsEnabled = "DNSEnabled"
	DhcpNtpEnabled = "NTPEnabled"

	MacInterface = "xyz.openbmc_project.Network.MACAddress"
	MacAddress   = "MACAddress"

	EthInterface     = "xyz.openbmc_project.Network.EthernetInterface"
	EthName          = "InterfaceName"
	EthDhcpEnabled   = "DHCPEnabled"
	EthNtpServers    = "NTPServers"
	EthNameServers   = "Nameservers"
	EthStNameServers = "StaticNameServers"
	EthDomainName    = "DomainName"
	EthLinkUp        = "LinkUp"
	EthSpeed         = "Speed"

	VlanInterface       = "xyz.openbmc_project.Network.VLAN"
	VlanId              = "Id"
	VlanCreateInterface = "xyz.openbmc_project.Network.VLAN.Create"
	VlanCreateMethod    = "VLAN"

	IPCreateInterface = "xyz.openbmc_project.Network.IP.Create"
	IPCreateMethod    = "IP"
	IPInterface       = "xyz.openbmc_project.Network.IP"
	IPAddress         = "Address"
	IPGateway         = "Gateway"
	IPPrefix          = "PrefixLength"

	IP4Protocol = "xyz.openbmc_project.Network.IP.Protocol.IPv4"
	IP6Protocol = "xyz.openbmc_project.Network.IP.Protocol.IPv6"

	DeleteInterface = "xyz.openbmc_project.Object.Delete"
	DeleteMethod    = "Delete"

	ResetInterface = "xyz.openbmc_project.Common.FactoryReset"
	ResetMethod    = "Reset"

	SyslogInterface = "xyz.openbmc_project.Network.Client"
	SyslogAddress   = "Address"
	SyslogPort      = "Port"

	propertiesInterface = "org.freedesktop.DBus.Properties"
	objmgrInterface     = "org.freedesktop.DBus.ObjectManager"
	objmgrGet           = "GetManagedObjects"
)
