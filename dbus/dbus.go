// Package dbus wraps the D-Bus interfaces of the network manager.
package dbus

import (
	"fmt"
	"strings"

	godbus "github.com/godbus/dbus/v5"

	"github.com/YADRO-KNS/obmc-yadro-netconfig/log"
)

// Properties is a property name to value map of a single interface.
type Properties = map[string]godbus.Variant

// ManagedObjects is the result shape of GetManagedObjects.
type ManagedObjects = map[godbus.ObjectPath]map[string]Properties

// Bus is a connection to the system bus.
type Bus struct {
	conn *godbus.Conn
	log  log.Logger
}

func New(logger log.Logger) (*Bus, error) {
	conn, err := godbus.ConnectSystemBus()
	if err != nil {
		return nil, fmt.Errorf("unable to connect to system bus: %w", err)
	}
	return &Bus{conn: conn, log: logger}, nil
}

func (b *Bus) Close() error {
	return b.conn.Close()
}

// Call invokes a method on the remote service.
func (b *Bus) Call(service, object, iface, method string, args ...any) error {
	b.log.Debug(fmt.Sprintf("call %s %s.%s", object, iface, method))
	obj := b.conn.Object(service, godbus.ObjectPath(object))
	return obj.Call(iface+"."+method, 0, args...).Err
}

// Get reads a property value.
func (b *Bus) Get(service, object, iface, name string) (godbus.Variant, error) {
	b.log.Debug(fmt.Sprintf("get %s %s.%s", object, iface, name))
	var value godbus.Variant
	obj := b.conn.Object(service, godbus.ObjectPath(object))
	err := obj.Call(propertiesInterface+".Get", 0, iface, name).Store(&value)
	return value, err
}

// Set writes a property value.
func (b *Bus) Set(service, object, iface, name string, value any) error {
	b.log.Debug(fmt.Sprintf("set %s %s.%s = %v", object, iface, name, value))
	obj := b.conn.Object(service, godbus.ObjectPath(object))
	return obj.Call(propertiesInterface+".Set", 0, iface, name,
		godbus.MakeVariant(value)).Err
}

func (b *Bus) getStrings(service, object, iface, name string) ([]string, error) {
	value, err := b.Get(service, object, iface, name)
	if err != nil {
		return nil, err
	}
	list, ok := value.Value().([]string)
	if !ok {
		return nil, fmt.Errorf("property %s.%s is not a string array", iface, name)
	}
	return list, nil
}

// Append adds a value to a string-array property.
func (b *Bus) Append(service, object, iface, name, value string) error {
	list, err := b.getStrings(service, object, iface, name)
	if err != nil {
		return err
	}
	for _, v := range list {
		if v == value {
			return fmt.Errorf("value %s already exists", value)
		}
	}
	return b.Set(service, object, iface, name, append(list, value))
}

// Remove deletes a value from a string-array property.
func (b *Bus) Remove(service, object, iface, name, value string) error {
	list, err := b.getStrings(service, object, iface, name)
	if err != nil {
		return err
	}
	for i, v := range list {
		if v == value {
			return b.Set(service, object, iface, name,
				append(list[:i], list[i+1:]...))
		}
	}
	return fmt.Errorf("value %s not found", value)
}

// ManagedObjects reads the object tree of the network manager.
func (b *Bus) ManagedObjects() (ManagedObjects, error) {
	b.log.Debug(fmt.Sprintf("call %s %s.%s", ObjectRoot, objmgrInterface, objmgrGet))
	var objects ManagedObjects
	obj := b.conn.Object(NetworkService, godbus.ObjectPath(ObjectRoot))
	err := obj.Call(objmgrInterface+"."+objmgrGet, 0).Store(&objects)
	return objects, err
}

// Address describes one IP address object of an Ethernet interface.
type Address struct {
	Object  string
	Address string
	Prefix  uint8
	Gateway string
}

// GetAddresses collects the IP address objects below the given Ethernet
// object path.
func (b *Bus) GetAddresses(ethObject string) ([]Address, error) {
	objects, err := b.ManagedObjects()
	if err != nil {
		return nil, err
	}
	var addresses []Address
	pathPrefix := ethObject + "/ip"
	for path, ifaces := range objects {
		if !strings.HasPrefix(string(path), pathPrefix) {
			continue
		}
		props, ok := ifaces[IPInterface]
		if !ok {
			continue
		}
		addr := Address{Object: string(path)}
		if v, ok := props[IPAddress].Value().(string); ok {
			addr.Address = v
		}
		if v, ok := props[IPPrefix].Value().(uint8); ok {
			addr.Prefix = v
		}
		if v, ok := props[IPGateway].Value().(string); ok {
			addr.Gateway = v
		}
		addresses = append(addresses, addr)
	}
	return addresses, nil
}

// EthToPath converts a network interface name to its object path.
func EthToPath(name string) string {
	return ObjectRoot + "/" + strings.ReplaceAll(name, ".", "_")
}

// VlanObject builds the object path of a VLAN on top of the given
// Ethernet interface.
func VlanObject(eth string, id uint64) string {
	return fmt.Sprintf("%s_%d", EthToPath(eth), id)
}
