package models

import (
	"github.com/samber/lo"

	"github.com/overlaynet/overlayd/internal/meta"
)

// PortKind is the closed set of descriptor kinds; dispatch over it is
// exhaustive, there is no fallthrough behavior.
type PortKind string

const (
	// KindVIF is a generic attachable (VM-facing) port.
	KindVIF PortKind = "vif"
	// KindDHCP is a DHCP-serving port.
	KindDHCP PortKind = "dhcp"
	// KindFloating is a floating-address port.
	KindFloating PortKind = "floating"
	// KindVIP is a virtual-IP port.
	KindVIP PortKind = "vip"
	// KindRouterInterface is a router-interface port; it always has a
	// peer port on the router side.
	KindRouterInterface PortKind = "router-interface"
	// KindGateway is a router-gateway port.
	KindGateway PortKind = "gateway"
)

// AllKinds .
var AllKinds = []PortKind{
	KindVIF,
	KindDHCP,
	KindFloating,
	KindVIP,
	KindRouterInterface,
	KindGateway,
}

// FixedIP is a bound (address, subnet) pair.
type FixedIP struct {
	Address  string `json:"address"`
	SubnetID string `json:"subnet_id"`
}

// AddressPair is an allowed (address, MAC) pair.
type AddressPair struct {
	Address string `json:"address"`
	MAC     string `json:"mac"`
}

// Binding is host+interface attachment info.
type Binding struct {
	HostID        string `json:"host_id"`
	InterfaceName string `json:"interface_name"`
}

// Equal .
func (b *Binding) Equal(o *Binding) bool {
	switch {
	case b == nil && o == nil:
		return true
	case b == nil || o == nil:
		return false
	default:
		return b.HostID == o.HostID && b.InterfaceName == o.InterfaceName
	}
}

// Descriptor is the declarative, cloud-facing port record. It is owned
// by the API layer; the translator only reads it.
type Descriptor struct {
	ID                  string        `json:"id"`
	NetworkID           string        `json:"network_id"`
	AdminStateUp        bool          `json:"admin_state_up"`
	MAC                 string        `json:"mac"`
	FixedIPs            []FixedIP     `json:"fixed_ips,omitempty"`
	AllowedPairs        []AddressPair `json:"allowed_pairs,omitempty"`
	SecurityGroups      []string      `json:"security_groups,omitempty"`
	Binding             *Binding      `json:"binding,omitempty"`
	PortSecurityEnabled bool          `json:"port_security_enabled"`
	Kind                PortKind      `json:"kind"`
	Uplink              bool          `json:"uplink,omitempty"`

	// FloatingIPIDs is maintained by the floating-address pipeline and
	// is not echoed back by the upstream API; updates preserve it via
	// an apply-time validator.
	FloatingIPIDs []string `json:"floating_ip_ids,omitempty"`

	*meta.Ver `json:"-"`
}

// NewDescriptor .
func NewDescriptor() *Descriptor {
	return &Descriptor{Ver: meta.NewVer()}
}

// Class .
func (d *Descriptor) Class() meta.Class {
	return meta.ClassDescriptor
}

// GetID .
func (d *Descriptor) GetID() string {
	return d.ID
}

// MetaKey .
func (d *Descriptor) MetaKey() string {
	return meta.DescriptorKey(d.ID)
}

// IsVIF .
func (d *Descriptor) IsVIF() bool {
	return d.Kind == KindVIF
}

// NeedsTopologyPort reports whether this descriptor materializes a
// topology port at all. Floating, VIP and uplink-attached descriptors
// never do.
func (d *Descriptor) NeedsTopologyPort() bool {
	if d.Uplink {
		return false
	}
	switch d.Kind {
	case KindFloating, KindVIP:
		return false
	default:
		return true
	}
}

// Addresses returns every bound address, in input order.
func (d *Descriptor) Addresses() []string {
	return lo.Map(d.FixedIPs, func(fip FixedIP, _ int) string { return fip.Address })
}

// FirstFixedIP .
func (d *Descriptor) FirstFixedIP() (FixedIP, bool) {
	if len(d.FixedIPs) < 1 {
		return FixedIP{}, false
	}
	return d.FixedIPs[0], true
}

// SubnetIDs returns the distinct subnets of the bound addresses.
func (d *Descriptor) SubnetIDs() []string {
	return lo.Uniq(lo.Map(d.FixedIPs, func(fip FixedIP, _ int) string { return fip.SubnetID }))
}
