package translator

import (
	"testing"

	"github.com/google/uuid"

	"github.com/overlaynet/overlayd/pkg/test/assert"
)

func TestNamespaceIsProjectSpecific(t *testing.T) {
	for _, known := range []uuid.UUID{uuid.NameSpaceDNS, uuid.NameSpaceURL, uuid.NameSpaceOID, uuid.NameSpaceX500} {
		assert.True(t, idNamespace != known)
	}
}

func TestChainIDDerivationIsStable(t *testing.T) {
	for _, role := range []ChainRole{RoleIngress, RoleEgress, RoleAntiSpoof} {
		assert.Equal(t, ChainID("port-1", role), ChainID("port-1", role))
	}
}

func TestDerivedIDsArePairwiseDistinct(t *testing.T) {
	seen := map[string]bool{}
	add := func(id string) {
		assert.False(t, seen[id], "collision on %s", id)
		seen[id] = true
	}

	for _, portID := range []string{"port-1", "port-2"} {
		for _, role := range []ChainRole{RoleIngress, RoleEgress, RoleAntiSpoof} {
			add(ChainID(portID, role))
		}
		add(PeerPortID(portID))
		add(MetadataRouteID(portID))
		for _, rid := range SNATRuleIDs(portID) {
			add(rid)
		}
	}

	add(RuleID("chain-1", "dhcp"))
	add(RuleID("chain-1", "drop"))
	add(RuleID("chain-2", "dhcp"))
}
