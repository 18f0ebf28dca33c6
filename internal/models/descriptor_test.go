package models

import (
	"testing"

	"github.com/overlaynet/overlayd/pkg/test/assert"
)

func TestNeedsTopologyPort(t *testing.T) {
	cases := []struct {
		kind   PortKind
		uplink bool
		exp    bool
	}{
		{KindVIF, false, true},
		{KindDHCP, false, true},
		{KindRouterInterface, false, true},
		{KindGateway, false, true},
		{KindFloating, false, false},
		{KindVIP, false, false},
		{KindVIF, true, false},
		{KindRouterInterface, true, false},
	}

	for _, c := range cases {
		d := NewDescriptor()
		d.Kind = c.kind
		d.Uplink = c.uplink
		assert.Equal(t, c.exp, d.NeedsTopologyPort(), "kind %s uplink %v", c.kind, c.uplink)
	}
}

func TestDescriptorAddressHelpers(t *testing.T) {
	d := NewDescriptor()

	_, ok := d.FirstFixedIP()
	assert.False(t, ok)
	assert.Len(t, d.Addresses(), 0)
	assert.Len(t, d.SubnetIDs(), 0)

	d.FixedIPs = []FixedIP{
		{Address: "10.0.0.5", SubnetID: "sub-1"},
		{Address: "10.0.0.6", SubnetID: "sub-1"},
		{Address: "10.1.0.5", SubnetID: "sub-2"},
	}

	first, ok := d.FirstFixedIP()
	assert.True(t, ok)
	assert.Equal(t, "10.0.0.5", first.Address)
	assert.Equal(t, []string{"10.0.0.5", "10.0.0.6", "10.1.0.5"}, d.Addresses())
	assert.Equal(t, []string{"sub-1", "sub-2"}, d.SubnetIDs())
}

func TestBindingEqual(t *testing.T) {
	a := &Binding{HostID: "h1", InterfaceName: "eth0"}
	b := &Binding{HostID: "h1", InterfaceName: "eth0"}
	c := &Binding{HostID: "h1", InterfaceName: "eth1"}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
	assert.True(t, (*Binding)(nil).Equal(nil))
}

func TestAddrGroupMembership(t *testing.T) {
	g := NewAddrGroup()
	g.ID = "sg-1"

	assert.True(t, g.AddMember("10.0.0.5", "port-1"))
	assert.False(t, g.AddMember("10.0.0.5", "port-1"))
	assert.True(t, g.AddMember("10.0.0.5", "port-2"))
	assert.True(t, g.HasMember("10.0.0.5", "port-1"))

	assert.True(t, g.RemoveMember("10.0.0.5", "port-1"))
	assert.False(t, g.RemoveMember("10.0.0.5", "port-1"))
	assert.True(t, g.HasMember("10.0.0.5", "port-2"))

	// last bearer removed drops the address entry
	assert.True(t, g.RemoveMember("10.0.0.5", "port-2"))
	assert.Len(t, g.Members, 0)
}

func TestSubnetHostsAndOpt121(t *testing.T) {
	s := NewSubnet()

	assert.True(t, s.AddHost("aa:bb", "10.0.0.5"))
	assert.False(t, s.AddHost("aa:bb", "10.0.0.5"))
	assert.True(t, s.RemoveHost("aa:bb", "10.0.0.5"))
	assert.False(t, s.RemoveHost("aa:bb", "10.0.0.5"))

	assert.True(t, s.AddOpt121("169.254.169.254/32", "10.0.0.2"))
	assert.False(t, s.AddOpt121("169.254.169.254/32", "10.0.0.2"))
	assert.True(t, s.RemoveOpt121("169.254.169.254/32", "10.0.0.2"))
	assert.False(t, s.RemoveOpt121("169.254.169.254/32", "10.0.0.2"))
}

func TestPortRouteIndex(t *testing.T) {
	p := NewPort()

	assert.True(t, p.AddRoute("r1"))
	assert.False(t, p.AddRoute("r1"))
	assert.True(t, p.AddRoute("r2"))

	assert.True(t, p.RemoveRoute("r1"))
	assert.False(t, p.RemoveRoute("r1"))
	assert.Equal(t, []string{"r2"}, p.RouteIDs)
}
