package meta

import (
	"fmt"
	"path/filepath"

	"github.com/overlaynet/overlayd/configs"
	"github.com/overlaynet/overlayd/pkg/utils"
)

const (
	descriptorPrefix = "/descriptors"
	portPrefix       = "/ports"
	chainPrefix      = "/chains"
	rulePrefix       = "/rules"
	addrGroupPrefix  = "/addr-groups"
	subnetPrefix     = "/subnets"
	routerPrefix     = "/routers"
	routePrefix      = "/routes"
	fipPrefix        = "/floating-ips"
	networkPrefix    = "/networks"
	taskPrefix       = "/tasks"
)

var classPrefixes = map[Class]string{
	ClassDescriptor: descriptorPrefix,
	ClassPort:       portPrefix,
	ClassChain:      chainPrefix,
	ClassRule:       rulePrefix,
	ClassAddrGroup:  addrGroupPrefix,
	ClassSubnet:     subnetPrefix,
	ClassRouter:     routerPrefix,
	ClassRoute:      routePrefix,
	ClassFloatingIP: fipPrefix,
	ClassNetwork:    networkPrefix,
}

// ClassKey /<prefix>/<class plural>/<id>
func ClassKey(c Class, id string) string {
	return filepath.Join(configs.Conf.EtcdPrefix, classPrefixes[c], id)
}

// DescriptorKey /<prefix>/descriptors/<id>
func DescriptorKey(id string) string {
	return ClassKey(ClassDescriptor, id)
}

// PortKey /<prefix>/ports/<id>
func PortKey(id string) string {
	return ClassKey(ClassPort, id)
}

// ChainKey /<prefix>/chains/<id>
func ChainKey(id string) string {
	return ClassKey(ClassChain, id)
}

// RuleKey /<prefix>/rules/<id>
func RuleKey(id string) string {
	return ClassKey(ClassRule, id)
}

// AddrGroupKey /<prefix>/addr-groups/<id>
func AddrGroupKey(id string) string {
	return ClassKey(ClassAddrGroup, id)
}

// SubnetKey /<prefix>/subnets/<id>
func SubnetKey(id string) string {
	return ClassKey(ClassSubnet, id)
}

// RouterKey /<prefix>/routers/<id>
func RouterKey(id string) string {
	return ClassKey(ClassRouter, id)
}

// RouteKey /<prefix>/routes/<id>
func RouteKey(id string) string {
	return ClassKey(ClassRoute, id)
}

// FloatingIPKey /<prefix>/floating-ips/<id>
func FloatingIPKey(id string) string {
	return ClassKey(ClassFloatingIP, id)
}

// NetworkKey /<prefix>/networks/<id>
func NetworkKey(id string) string {
	return ClassKey(ClassNetwork, id)
}

// MacEntryKey /<prefix>/networks/<net>/mac_table/<mac>,<port>
func MacEntryKey(networkID, mac, portID string) string {
	entry := fmt.Sprintf("%s,%s", utils.NormalizeMAC(mac), portID)
	return filepath.Join(NetworkKey(networkID), "mac_table", entry)
}

// ArpEntryKey /<prefix>/networks/<net>/arp_table/<ip>,<mac>
func ArpEntryKey(networkID, ip, mac string) string {
	entry := fmt.Sprintf("%s,%s", ip, utils.NormalizeMAC(mac))
	return filepath.Join(NetworkKey(networkID), "arp_table", entry)
}

// TunnelKeyCounterKey /<prefix>/networks/<net>/tunnel-key:counter
func TunnelKeyCounterKey(networkID string) string {
	return filepath.Join(NetworkKey(networkID), "tunnel-key:counter")
}

// TaskKey /<prefix>/tasks/<id>
func TaskKey(id string) string {
	return filepath.Join(TasksPrefix(), id)
}

// TasksPrefix /<prefix>/tasks/
func TasksPrefix() string {
	return filepath.Join(configs.Conf.EtcdPrefix, taskPrefix) + "/"
}

// ReconcilerLockKey /<prefix>/locks/reconciler
func ReconcilerLockKey() string {
	return filepath.Join(configs.Conf.EtcdPrefix, "locks", "reconciler")
}
