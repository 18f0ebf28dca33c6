package netx

import (
	"net"

	"github.com/cockroachdb/errors"

	"github.com/overlaynet/overlayd/pkg/terrors"
	"github.com/overlaynet/overlayd/pkg/utils"
)

// PrefixToNetmask .
func PrefixToNetmask(prefix int) string {
	var p = uint(utils.Min(prefix, 32))
	var i = ((1 << p) - 1) << uint(32-prefix)
	return IntToIPv4(int64(i))
}

// IntToIPv4 .
func IntToIPv4(i64 int64) string {
	return Int2ip(i64).String()
}

// Int2ip .
func Int2ip(i64 int64) net.IP {
	ip := make(net.IP, net.IPv4len)
	for i := 0; i < len(ip); i++ {
		seg := 0xff & (i64 >> uint(24-i*8))
		ip[i] = byte(seg)
	}
	return ip
}

// IPv4ToInt .
func IPv4ToInt(ipv4 string) (i64 int64, err error) {
	if i64 = IP2int(net.ParseIP(ipv4).To4()); i64 == 0 {
		err = errors.Wrapf(terrors.ErrInvalidValue, "invalid IPv4: %s", ipv4)
	}
	return
}

// IP2int .
func IP2int(ip net.IP) (i64 int64) {
	ip = ip.To4()
	for i, seg := range ip {
		i64 |= int64(seg) << uint(24-i*8)
	}
	return
}

// ParseCIDR .
func ParseCIDR(cidr string) (ip net.IP, ipn *net.IPNet, err error) {
	if ip, ipn, err = net.ParseCIDR(cidr); err != nil {
		err = errors.Wrapf(terrors.ErrInvalidValue, "invalid CIDR: %s", cidr)
	}
	return
}

// CheckIPv4 .
func CheckIPv4(ip net.IP, mask net.IPMask) error {
	var ipv4 = ip.To4()
	if ipv4 == nil {
		return errors.Wrapf(terrors.ErrInvalidValue, "invalid IPv4: %s", ip)
	}

	var bits = net.IPv4len * 8
	var subnetOnes, _ = mask.Size()
	var allone uint32 = (1 << uint32(bits-subnetOnes)) - 1

	switch dec, err := ConvIPv4ToUint32(ipv4); {
	case err != nil:
		return errors.Wrap(err, "")

	case dec&allone == 0:
		return errors.Wrapf(terrors.ErrIPv4IsNetworkNumber, "%s", ip)

	case dec&allone == allone:
		return errors.Wrapf(terrors.ErrIPv4IsBroadcastAddr, "%s", ip)

	default:
		return nil
	}
}

// ConvIPv4ToUint32 .
func ConvIPv4ToUint32(ip net.IP) (dec uint32, err error) {
	var ipv4 = ip.To4()
	if ipv4 == nil {
		return dec, errors.Wrapf(terrors.ErrInvalidValue, "invalid IPv4: %s", ip)
	}

	for i := 0; i < 4; i++ {
		dec |= uint32(ipv4[i]) << uint32((3-i)*8)
	}

	return dec, nil
}

// InSubnet .
func InSubnet(ip string, subnet string) bool {
	_, ipNet, err := net.ParseCIDR(subnet)
	if err != nil {
		return false
	}
	ipAddr := net.ParseIP(ip)
	if ipAddr == nil {
		return false
	}
	return ipNet.Contains(ipAddr)
}

// CheckIPv4Addr .
func CheckIPv4Addr(addr string) error {
	ip := net.ParseIP(addr)
	if ip == nil || ip.To4() == nil {
		return errors.Wrapf(terrors.ErrInvalidValue, "invalid IPv4: %s", addr)
	}
	return nil
}
