package translator

import (
	"testing"

	"github.com/overlaynet/overlayd/internal/models"
	"github.com/overlaynet/overlayd/pkg/test/assert"
)

func TestAntiSpoofRuleOrdering(t *testing.T) {
	d := testVIFDescriptor()
	d.AllowedPairs = []models.AddressPair{{Address: "10.0.0.9", MAC: "aa:bb:cc:dd:ee:09"}}

	p := compilePolicy(d, nil)

	rules := p.chainRules(p.spoof.ID)
	assert.Len(t, rules, 6)

	assert.Equal(t, models.ActionReturn, rules[0].Action)
	assert.Equal(t, "udp", rules[0].Match.Proto)
	assert.Equal(t, dhcpClientPort, rules[0].Match.SrcPort)
	assert.Equal(t, dhcpServerPort, rules[0].Match.DstPort)

	assert.Equal(t, "arp", rules[1].Match.EtherType)
	assert.Equal(t, "10.0.0.5", rules[1].Match.ARPSenderAddress)
	assert.Equal(t, "10.0.0.5", rules[2].Match.SrcAddress)
	assert.Equal(t, d.MAC, rules[2].Match.SrcMAC)

	assert.Equal(t, "10.0.0.9", rules[3].Match.ARPSenderAddress)
	assert.Equal(t, "10.0.0.9", rules[4].Match.SrcAddress)
	assert.Equal(t, "aa:bb:cc:dd:ee:09", rules[4].Match.SrcMAC)

	assert.Equal(t, models.ActionDrop, rules[5].Action)
	assert.Equal(t, models.Match{}, rules[5].Match)

	for i, r := range rules {
		assert.Equal(t, i+1, r.Position)
	}
}

func TestIngressChainJumpsToAntiSpoofFirst(t *testing.T) {
	d := testVIFDescriptor()
	groups := []*models.AddrGroup{testGroup("sg-1")}

	p := compilePolicy(d, groups)

	rules := p.chainRules(p.ingress.ID)
	assert.Len(t, rules, 4)

	assert.Equal(t, models.ActionJump, rules[0].Action)
	assert.Equal(t, p.spoof.ID, rules[0].JumpTo)

	assert.Equal(t, models.ActionAccept, rules[1].Action)
	assert.True(t, rules[1].Match.ReturnFlow)

	assert.Equal(t, models.ActionJump, rules[2].Action)
	assert.Equal(t, "chain-in-sg-1", rules[2].JumpTo)

	last := rules[3]
	assert.Equal(t, models.ActionDrop, last.Action)
	assert.Equal(t, "arp", last.Match.EtherType)
	assert.True(t, last.Match.InvertEtherType)
}

func TestEgressChainJumpsToGroupEgress(t *testing.T) {
	d := testVIFDescriptor()
	groups := []*models.AddrGroup{testGroup("sg-1")}

	p := compilePolicy(d, groups)

	rules := p.chainRules(p.egress.ID)
	assert.Len(t, rules, 3)
	assert.True(t, rules[0].Match.ReturnFlow)
	assert.Equal(t, "chain-out-sg-1", rules[1].JumpTo)
	assert.Equal(t, models.ActionDrop, rules[2].Action)
}

func TestCompilePolicyIsDeterministic(t *testing.T) {
	d := testVIFDescriptor()
	d.AllowedPairs = []models.AddressPair{{Address: "10.0.0.9", MAC: "aa:bb:cc:dd:ee:09"}}

	a := compilePolicy(d, nil)
	b := compilePolicy(d, nil)

	assert.Equal(t, a.spoof.ID, b.spoof.ID)
	assert.Equal(t, a.spoof.RuleIDs, b.spoof.RuleIDs)
	assert.Equal(t, a.ingress.RuleIDs, b.ingress.RuleIDs)
	assert.Equal(t, a.egress.RuleIDs, b.egress.RuleIDs)
}

func TestSpoofPairsDropDuplicates(t *testing.T) {
	d := testVIFDescriptor()
	d.AllowedPairs = []models.AddressPair{{Address: "10.0.0.5", MAC: d.MAC}}

	pairs := spoofPairs(d)
	assert.Len(t, pairs, 1)
}
