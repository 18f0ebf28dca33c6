package translator

import (
	"strings"

	"github.com/google/uuid"
)

// Derived identifiers are a stable wire contract: any two independent
// translations of the same port must produce identical values, and
// already-materialized topology objects are addressed by them after a
// partial failure. The namespace is minted for this project so derived
// values cannot collide with UUIDv5 output of the well-known RFC 4122
// namespaces. Changing it or the version tag breaks the contract.
var idNamespace = uuid.MustParse("1b4a5f3c-9d26-4f5a-8b6e-7c2d90e1a3b7")

const idVersion = "v1"

func deriveID(parts ...string) string {
	name := idVersion + "/" + strings.Join(parts, "/")
	return uuid.NewSHA1(idNamespace, []byte(name)).String()
}

// ChainRole .
type ChainRole string

const (
	// RoleIngress .
	RoleIngress ChainRole = "ingress"
	// RoleEgress .
	RoleEgress ChainRole = "egress"
	// RoleAntiSpoof .
	RoleAntiSpoof ChainRole = "antispoof"
)

// ChainID derives the identifier of a port's chain for a role.
func ChainID(portID string, role ChainRole) string {
	return deriveID("chain", portID, string(role))
}

// RuleID derives a rule identifier from its chain and a tag unique
// within the chain.
func RuleID(chainID, tag string) string {
	return deriveID("rule", chainID, tag)
}

// PeerPortID derives the identifier of the router-side peer of a
// router-interface or gateway port.
func PeerPortID(portID string) string {
	return deriveID("port", portID, "peer")
}

// MetadataRouteID derives the metadata-service route identifier for a
// DHCP-serving port.
func MetadataRouteID(portID string) string {
	return deriveID("route", portID, "metadata")
}

// SNATRuleIDs derives the four same-subnet SNAT rules attached to a
// router port. The group is created and deleted all-or-none.
func SNATRuleIDs(routerPortID string) [4]string {
	return [4]string{
		deriveID("rule", routerPortID, "snat"),
		deriveID("rule", routerPortID, "snat-drop"),
		deriveID("rule", routerPortID, "rev-snat"),
		deriveID("rule", routerPortID, "rev-snat-drop"),
	}
}
