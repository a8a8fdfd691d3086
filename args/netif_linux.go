//go:build linux

package args

import "github.com/vishvananda/netlink"

// netInterfaceExists asks the kernel for the current link list. No
// caching: interfaces may appear or disappear between calls within one
// invocation.
func netInterfaceExists(name string) bool {
	links, err := netlink.LinkList()
	if err != nil {
		return false
	}
	for _, link := range links {
		if link.Attrs().Name == name {
			return true
		}
	}
	return false
}
