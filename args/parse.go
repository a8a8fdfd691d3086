package args

import (
	"fmt"
	"net"
	"net/netip"
	"strconv"
	"strings"
)

// Longest numeric token accepted before conversion. Keeps strconv away
// from values that silently overflow smaller integer types.
const maxNumericLen = 10

// SyslogPort is the default port for a remote syslog endpoint.
const SyslogPort uint16 = 514

// PrefixPolicy selects how AsIPAddrMask treats a token without a /PREFIX
// suffix.
type PrefixPolicy int

const (
	// DefaultPrefix applies 24 (IPv4) or 64 (IPv6) to a bare address.
	DefaultPrefix PrefixPolicy = iota
	// RequirePrefix rejects a bare address.
	RequirePrefix
)

// IsNumber reports whether s is a plain unsigned decimal: non-empty,
// at most 10 characters, ASCII digits only.
func IsNumber(s string) bool {
	if len(s) == 0 || len(s) > maxNumericLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ParseIP parses s as a strict IPv4 or IPv6 literal and returns the
// version tag together with the canonical re-serialization of the parsed
// address, so "2001:0db8::01" and "2001:db8::1" collapse to one form.
func ParseIP(s string) (IpVer, string, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil || addr.Zone() != "" {
		return 0, "", fmt.Errorf("invalid IP address: %s", s)
	}
	if addr.Is4() {
		return IPv4, addr.String(), nil
	}
	return IPv6, addr.String(), nil
}

func prefixValid(ver IpVer, prefix uint64) bool {
	if prefix == 0 {
		return false
	}
	if ver == IPv4 {
		return prefix <= 32
	}
	return prefix <= 64
}

// AsOneOf consumes one token and requires it to match one of the expected
// literals exactly.
func (c *Cursor) AsOneOf(expected ...string) (string, error) {
	arg, err := c.ConsumeText()
	if err != nil {
		return "", err
	}
	for _, e := range expected {
		if arg == e {
			return arg, nil
		}
	}
	return "", fmt.Errorf("invalid action: %s, expected one of [%s]",
		arg, strings.Join(expected, ", "))
}

// AsNumber consumes one token and converts it to an unsigned number.
func (c *Cursor) AsNumber() (uint64, error) {
	arg, err := c.ConsumeText()
	if err != nil {
		return 0, err
	}
	if !IsNumber(arg) {
		return 0, fmt.Errorf("invalid numeric argument: %s", arg)
	}
	return strconv.ParseUint(arg, 10, 64)
}

func (c *Cursor) AsAction() (Action, error) {
	arg, err := c.AsOneOf("add", "del")
	if err != nil {
		return 0, err
	}
	if arg == "add" {
		return ActionAdd, nil
	}
	return ActionDel, nil
}

func (c *Cursor) AsToggle() (Toggle, error) {
	arg, err := c.AsOneOf("enable", "disable")
	if err != nil {
		return 0, err
	}
	if arg == "enable" {
		return ToggleEnable, nil
	}
	return ToggleDisable, nil
}

// AsNetInterface consumes one token and checks it against the live list
// of network interfaces. The kernel is queried on every call.
func (c *Cursor) AsNetInterface() (string, error) {
	arg, err := c.ConsumeText()
	if err != nil {
		return "", err
	}
	if !netInterfaceExists(arg) {
		return "", fmt.Errorf("invalid network interface name: %s", arg)
	}
	return arg, nil
}

// AsMacAddress consumes one token and requires a colon- or
// hyphen-separated 6-octet MAC literal.
func (c *Cursor) AsMacAddress() (string, error) {
	arg, err := c.ConsumeText()
	if err != nil {
		return "", err
	}
	hw, err := net.ParseMAC(arg)
	if err != nil || len(hw) != 6 || strings.ContainsRune(arg, '.') {
		return "", fmt.Errorf("invalid MAC address: %s, expected hex-digits-and-colons notation", arg)
	}
	return arg, nil
}

// AsIPAddress consumes one token and parses it as an IP literal of either
// version, returning the canonical form.
func (c *Cursor) AsIPAddress() (IpVer, string, error) {
	arg, err := c.ConsumeText()
	if err != nil {
		return 0, "", err
	}
	ver, ip, err := ParseIP(arg)
	if err != nil {
		return 0, "", fmt.Errorf("invalid IP address: %s, expected IPv4 or IPv6 address", arg)
	}
	return ver, ip, nil
}

// AsIPAddrMask consumes one token of the form IP[/PREFIX]. The token is
// split on the last '/'; the prefix must be numeric and within the bounds
// of the address version (1-32 for IPv4, 1-64 for IPv6). A token without
// a prefix is handled according to the policy.
func (c *Cursor) AsIPAddrMask(policy PrefixPolicy) (IpVer, string, uint8, error) {
	arg, err := c.ConsumeText()
	if err != nil {
		return 0, "", 0, err
	}
	if i := strings.LastIndexByte(arg, '/'); i >= 0 {
		maskText := arg[i+1:]
		if IsNumber(maskText) {
			if ver, ip, err := ParseIP(arg[:i]); err == nil {
				prefix, _ := strconv.ParseUint(maskText, 10, 64)
				if prefixValid(ver, prefix) {
					return ver, ip, uint8(prefix), nil
				}
			}
		}
	} else if policy == DefaultPrefix {
		if ver, ip, err := ParseIP(arg); err == nil {
			if ver == IPv4 {
				return ver, ip, 24, nil
			}
			return ver, ip, 64, nil
		}
	}
	if policy == RequirePrefix {
		return 0, "", 0, fmt.Errorf("invalid argument: %s, expected IP/PREFIX (e.g. 10.0.0.1/8)", arg)
	}
	return 0, "", 0, fmt.Errorf("invalid argument: %s, expected IP[/PREFIX] (e.g. 10.0.0.1/8 or 192.168.1.1)", arg)
}

// AsIPOrFQDN consumes one token and validates it as an IP literal
// (returned in canonical form) or a fully qualified domain name.
func (c *Cursor) AsIPOrFQDN() (string, error) {
	arg, err := c.ConsumeText()
	if err != nil {
		return "", err
	}
	return IPOrFQDN(arg)
}

// IPOrFQDN is AsIPOrFQDN over a pre-supplied string, used when the value
// is a fragment of a larger token (endpoint parsing).
func IPOrFQDN(s string) (string, error) {
	if _, ip, err := ParseIP(s); err == nil {
		return ip, nil
	}
	if isFQDN(s) {
		return s, nil
	}
	return "", fmt.Errorf("invalid argument: %s, expected IP address or FQDN. "+
		"Please, enter IPv4-addresses in dotted-decimal format.", s)
}

// isFQDN checks the RFC 1123/2181/1738 host name rules: up to 255 octets
// in total, up to 127 labels of 1-63 alphanumeric-or-inner-hyphen
// characters, optional trailing dot. The rightmost label of a multi-label
// name must not begin with a digit or a hyphen; a single label may be
// fully numeric (RFC 1123 section 2.1).
func isFQDN(s string) bool {
	if len(s) == 0 || len(s) > 255 {
		return false
	}
	name := strings.TrimSuffix(s, ".")
	if name == "" {
		return false
	}
	labels := strings.Split(name, ".")
	if len(labels) > 127 {
		return false
	}
	for _, label := range labels {
		if !validLabel(label) {
			return false
		}
	}
	last := labels[len(labels)-1]
	if len(labels) > 1 && last[0] >= '0' && last[0] <= '9' {
		return false
	}
	return true
}

func validLabel(label string) bool {
	if len(label) == 0 || len(label) > 63 {
		return false
	}
	for i := 0; i < len(label); i++ {
		c := label[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '-':
			if i == 0 || i == len(label)-1 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// ParseAddrAndPort consumes one token holding a remote endpoint. The
// colon count disambiguates the forms: HOST, HOST:PORT and [IPv6]:PORT;
// two or more colons without brackets is a bare IPv6 host. Omitted ports
// default to the syslog port.
func (c *Cursor) ParseAddrAndPort() (string, uint16, error) {
	arg, err := c.ConsumeText()
	if err != nil {
		return "", 0, err
	}
	switch strings.Count(arg, ":") {
	case 0:
		host, err := IPOrFQDN(arg)
		if err != nil {
			return "", 0, err
		}
		return host, SyslogPort, nil
	case 1:
		i := strings.IndexByte(arg, ':')
		host, err := IPOrFQDN(arg[:i])
		if err != nil {
			return "", 0, err
		}
		port, err := parsePort(arg[i+1:])
		if err != nil {
			return "", 0, err
		}
		return host, port, nil
	default:
		if strings.HasPrefix(arg, "[") {
			end := strings.IndexByte(arg, ']')
			if end < 0 {
				return "", 0, fmt.Errorf("invalid argument: %s, expected [IPv6-ADDR]:PORT", arg)
			}
			host, err := IPOrFQDN(arg[1:end])
			if err != nil {
				return "", 0, err
			}
			portText := ""
			if end+1 < len(arg) && arg[end+1] == ':' {
				portText = arg[end+2:]
			}
			port, err := parsePort(portText)
			if err != nil {
				return "", 0, err
			}
			return host, port, nil
		}
		host, err := IPOrFQDN(arg)
		if err != nil {
			return "", 0, err
		}
		return host, SyslogPort, nil
	}
}

func parsePort(s string) (uint16, error) {
	port, err := strconv.ParseUint(s, 10, 16)
	if err == nil && port > 0 {
		return uint16(port), nil
	}
	return 0, fmt.Errorf("invalid port number: %s, expected an integer in the range 1 - 65535", s)
}
