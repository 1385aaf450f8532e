package tools

import (
	"math/rand"
	"strings"
	"testing"
)

func newTestKit() *Kit {
	return NewKit(rand.New(rand.NewSource(1)))
}

func TestParse(t *testing.T) {
	for _, id := range AllTools() {
		got, err := Parse(string(id))
		if err != nil {
			t.Errorf("Parse(%q) error: %v", id, err)
		}
		if got != id {
			t.Errorf("Parse(%q) = %q", id, got)
		}
	}
	if _, err := Parse("x_ray"); err == nil {
		t.Error("expected error for unknown tool id")
	}
}

func TestAnalyze_AllToolsWellFormed(t *testing.T) {
	k := newTestKit()
	for _, id := range AllTools() {
		res := k.Analyze(id, "0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb1")
		if res.Tool != id {
			t.Errorf("%s: result tool = %q", id, res.Tool)
		}
		if len(res.Findings) == 0 {
			t.Errorf("%s: empty findings", id)
		}
		switch res.Tier {
		case TierInfo, TierSuccess, TierWarning, TierDanger:
		default:
			t.Errorf("%s: invalid tier %q", id, res.Tier)
		}
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	k := newTestKit()
	addr := "0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb1"
	for _, id := range []ToolID{ToolContractAnalyzer, ToolAddressLookup, ToolTokenScanner} {
		a := k.Analyze(id, addr)
		b := k.Analyze(id, addr)
		if a.Tier != b.Tier || len(a.Findings) != len(b.Findings) {
			t.Errorf("%s: results differ between identical calls", id)
		}
	}
}

func TestAnalyze_InvalidAddressIsWarning(t *testing.T) {
	k := newTestKit()
	for _, id := range []ToolID{ToolContractAnalyzer, ToolAddressLookup, ToolTokenScanner} {
		res := k.Analyze(id, "not-an-address")
		if res.Tier != TierWarning {
			t.Errorf("%s: tier = %q, want warning", id, res.Tier)
		}
		found := false
		for _, f := range res.Findings {
			if strings.Contains(f, "Invalid address format") {
				found = true
			}
		}
		if !found {
			t.Errorf("%s: missing format-error finding: %v", id, res.Findings)
		}
	}
}

func TestScanURL_DetectsSpoofing(t *testing.T) {
	k := newTestKit()

	res := k.Analyze(ToolURLScanner, "https://metamask-verify.support-team.com/auth")
	if res.Tier != TierDanger {
		t.Errorf("spoofed URL tier = %q, want danger", res.Tier)
	}

	res = k.Analyze(ToolURLScanner, "http://example.com/page")
	if res.Tier != TierWarning {
		t.Errorf("plain HTTP tier = %q, want warning", res.Tier)
	}

	res = k.Analyze(ToolURLScanner, "https://example.com/page")
	if res.Tier != TierSuccess {
		t.Errorf("clean URL tier = %q, want success", res.Tier)
	}
}

func TestScanURL_Typosquatting(t *testing.T) {
	k := newTestKit()
	res := k.Analyze(ToolURLScanner, "https://metamask.oi/login")
	if res.Tier != TierDanger {
		t.Errorf("typosquat tier = %q, want danger", res.Tier)
	}
}

func TestScanURL_InvalidURL(t *testing.T) {
	k := newTestKit()
	res := k.Analyze(ToolURLScanner, "://///")
	if res.Tier != TierDanger {
		t.Errorf("invalid URL tier = %q, want danger", res.Tier)
	}
	if len(res.Findings) == 0 {
		t.Error("expected findings for invalid URL")
	}
}

func TestTrackGas_PriceOrdering(t *testing.T) {
	k := newTestKit()
	res := k.Analyze(ToolGasTracker, "")
	if res.Tier != TierInfo && res.Tier != TierWarning {
		t.Errorf("gas tier = %q", res.Tier)
	}
	if len(res.Findings) < 4 {
		t.Fatalf("expected gas price lines, got %v", res.Findings)
	}
}

func TestResultMerge_Immutable(t *testing.T) {
	base := Result{
		Tool:     ToolAddressLookup,
		Tier:     TierInfo,
		Findings: []string{"one"},
	}
	merged := base.Merge([]string{"two"}, "live data from Etherscan")

	if len(base.Findings) != 1 || base.Note != "" {
		t.Errorf("Merge mutated receiver: %+v", base)
	}
	if len(merged.Findings) != 2 || merged.Note != "live data from Etherscan" {
		t.Errorf("unexpected merged result: %+v", merged)
	}

	merged2 := base.Merge(nil, "")
	if merged2.Note != "" || len(merged2.Findings) != 1 {
		t.Errorf("empty merge changed result: %+v", merged2)
	}
}
