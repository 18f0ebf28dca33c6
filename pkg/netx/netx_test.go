package netx

import (
	"net"
	"testing"

	"github.com/overlaynet/overlayd/pkg/test/assert"
)

func TestPrefixToNetmask(t *testing.T) {
	assert.Equal(t, "255.255.255.255", PrefixToNetmask(32))
	assert.Equal(t, "255.255.255.0", PrefixToNetmask(24))
	assert.Equal(t, "255.255.0.0", PrefixToNetmask(16))
	assert.Equal(t, "255.0.0.0", PrefixToNetmask(8))
	assert.Equal(t, "255.255.252.0", PrefixToNetmask(22))
}

func TestIntToIPv4(t *testing.T) {
	assert.Equal(t, "192.168.1.1", IntToIPv4(3232235777))
	assert.Equal(t, "10.1.2.3", IntToIPv4(167838211))
	assert.Equal(t, "255.255.255.255", IntToIPv4(4294967295))
}

func TestIPv4ToInt(t *testing.T) {
	var cases = []struct {
		out int64
		in  string
	}{
		{3232235777, "192.168.1.1"},
		{167838211, "10.1.2.3"},
		{2130706433, "127.0.0.1"},
		{4294967295, "255.255.255.255"},
	}

	for _, c := range cases {
		var i, err = IPv4ToInt(c.in)
		assert.NilErr(t, err)
		assert.Equal(t, c.out, i)
	}
}

func TestCheckIPv4(t *testing.T) {
	_, ipn, err := ParseCIDR("10.0.0.0/24")
	assert.NilErr(t, err)

	assert.NilErr(t, CheckIPv4(net.ParseIP("10.0.0.5"), ipn.Mask))
	assert.Err(t, CheckIPv4(net.ParseIP("10.0.0.0"), ipn.Mask))
	assert.Err(t, CheckIPv4(net.ParseIP("10.0.0.255"), ipn.Mask))
}

func TestInSubnet(t *testing.T) {
	assert.True(t, InSubnet("10.0.0.5", "10.0.0.0/24"))
	assert.False(t, InSubnet("10.0.1.5", "10.0.0.0/24"))
	assert.False(t, InSubnet("bogus", "10.0.0.0/24"))
}
