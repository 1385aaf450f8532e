package tools

import (
	"fmt"
	"math/rand"
	"net/url"
	"regexp"
	"strings"
)

// addressPattern matches a 20-byte hex address with 0x prefix.
var addressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// Kit runs simulated analyses. Results are deterministic for a given target
// except the gas tracker, which draws from the injected random source.
type Kit struct {
	rng *rand.Rand
}

// NewKit creates a Kit using rng for the non-deterministic tools.
func NewKit(rng *rand.Rand) *Kit {
	return &Kit{rng: rng}
}

// Analyze runs the given tool against target and returns its report. Every
// tool id yields a well-formed result; malformed targets downgrade to a
// warning-tier report instead of failing.
func (k *Kit) Analyze(id ToolID, target string) Result {
	switch id {
	case ToolURLScanner:
		return k.scanURL(target)
	case ToolContractAnalyzer:
		return k.analyzeContract(target)
	case ToolGasTracker:
		return k.trackGas(target)
	case ToolAddressLookup:
		return k.lookupAddress(target)
	case ToolTransactionTracer:
		return k.traceTransaction(target)
	case ToolTokenScanner:
		return k.scanToken(target)
	default:
		return Result{
			Tool:     id,
			Target:   target,
			Tier:     TierWarning,
			Findings: []string{fmt.Sprintf("Unknown tool %q", id)},
		}
	}
}

// charSum is the pseudo-random seed for per-target simulated data: the same
// target always produces the same report.
func charSum(s string) int {
	sum := 0
	for _, r := range s {
		sum += int(r)
	}
	return sum
}

func invalidAddressResult(id ToolID, target string) Result {
	return Result{
		Tool:   id,
		Target: target,
		Tier:   TierWarning,
		Findings: []string{
			fmt.Sprintf("Invalid address format: %q", target),
			"Expected 0x followed by 40 hexadecimal characters",
		},
	}
}

func shortAddr(addr string) string {
	if len(addr) < 18 {
		return addr
	}
	return addr[:10] + "..." + addr[len(addr)-8:]
}

var spoofPatterns = []struct {
	re   *regexp.Regexp
	desc string
}{
	{regexp.MustCompile(`metam[a4]sk`), "MetaMask spoofing"},
	{regexp.MustCompile(`un[i1l]swap`), "Uniswap spoofing"},
	{regexp.MustCompile(`eth[e3]rscan`), "Etherscan spoofing"},
	{regexp.MustCompile(`op[e3]ns[e3]a`), "OpenSea spoofing"},
	{regexp.MustCompile(`\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}`), "IP address instead of domain"},
	{regexp.MustCompile(`\w+-verify`), "Fake verification subdomain"},
	{regexp.MustCompile(`\w+-support`), "Fake support site"},
}

var legitDomains = []string{"uniswap.org", "metamask.io", "etherscan.io", "opensea.io"}

var suspiciousTLDs = map[string]bool{
	".tk": true, ".ml": true, ".ga": true, ".cf": true, ".xyz": true, ".top": true,
}

func (k *Kit) scanURL(target string) Result {
	res := Result{Tool: ToolURLScanner, Target: target, Tier: TierSuccess}
	var redFlags []string

	u, err := url.Parse(target)
	if err != nil || u.Hostname() == "" {
		res.Tier = TierDanger
		res.Findings = append(res.Findings, "Invalid URL format")
		res.Findings = append(res.Findings, urlChecklist()...)
		return res
	}

	domain := strings.ToLower(u.Hostname())
	path := u.Path
	if path == "" {
		path = "/"
	}
	res.Findings = append(res.Findings,
		"Domain: "+domain,
		"Path: "+path,
		"Protocol: "+u.Scheme,
	)

	if u.Scheme != "https" {
		redFlags = append(redFlags, "Not using HTTPS - insecure connection")
		res.Tier = TierWarning
	}

	for _, p := range spoofPatterns {
		if p.re.MatchString(domain) {
			redFlags = append(redFlags, p.desc+" detected")
			res.Tier = TierDanger
		}
	}

	for _, legit := range legitDomains {
		d := levenshtein(domain, legit)
		if d > 0 && d <= 2 {
			redFlags = append(redFlags, fmt.Sprintf("Similar to %s (possible typosquatting)", legit))
			res.Tier = TierDanger
		}
	}

	if i := strings.LastIndex(domain, "."); i >= 0 && suspiciousTLDs[domain[i:]] {
		redFlags = append(redFlags, "Suspicious TLD: "+domain[i:])
		if res.Tier == TierSuccess {
			res.Tier = TierWarning
		}
	}

	if strings.Contains(target, "%") {
		res.Findings = append(res.Findings, "URL encoding detected - verify destination")
	}
	if parts := strings.Split(domain, "."); len(parts) > 3 {
		res.Findings = append(res.Findings, fmt.Sprintf("Multiple subdomains: %d levels", len(parts)))
	}

	res.Findings = append(res.Findings, urlChecklist()...)

	if len(redFlags) > 0 {
		res.Findings = append(res.Findings, "RED FLAGS DETECTED:")
		res.Findings = append(res.Findings, redFlags...)
	}
	return res
}

func urlChecklist() []string {
	return []string{
		"HOW TO CHECK URLS:",
		"1. Verify the HTTPS lock icon in your browser",
		"2. Check domain spelling carefully (l vs i, 0 vs o)",
		"3. Look for extra subdomains (real-site.fake-site.com)",
		"4. Never trust links from messages or emails",
		"5. Bookmark official sites and use the bookmarks",
	}
}

func (k *Kit) analyzeContract(target string) Result {
	if !addressPattern.MatchString(target) {
		return invalidAddressResult(ToolContractAnalyzer, target)
	}

	hash := charSum(target)
	res := Result{Tool: ToolContractAnalyzer, Target: target}
	var critical []string

	res.Findings = append(res.Findings, "Contract Analysis: "+shortAddr(target))

	res.Findings = append(res.Findings, "VERIFICATION STATUS:")
	if hash%3 != 0 {
		res.Findings = append(res.Findings, "Source code verified on Etherscan")
	} else {
		res.Findings = append(res.Findings, "Source code NOT verified")
		critical = append(critical, "Cannot audit unverified contracts")
	}

	res.Findings = append(res.Findings, "CONTRACT FUNCTIONS:")
	if hash%5 == 0 {
		res.Findings = append(res.Findings,
			"Upgradeable proxy detected",
			"  Implementation can be changed by the owner",
		)
		critical = append(critical, "Upgradeable contracts can be changed to malicious code")
	}
	if hash%4 == 0 {
		res.Findings = append(res.Findings,
			"Mint function found",
			"  Check max supply and whether ownership was renounced",
		)
		critical = append(critical, "Unlimited minting dilutes all holders")
	}
	if hash%6 == 0 {
		res.Findings = append(res.Findings, "Pausable functions detected")
	}
	if hash%7 == 0 {
		res.Findings = append(res.Findings,
			"HIDDEN FEE STRUCTURE",
			"  Buy tax: 2% | Sell tax: 25%",
		)
		critical = append(critical, "Asymmetric fees trap holders, a classic rug pull pattern")
	}

	res.Findings = append(res.Findings, "OWNERSHIP:")
	switch {
	case hash%8 == 0:
		res.Findings = append(res.Findings, "Ownership renounced (sent to 0x000...dEaD)")
	case hash%9 == 0:
		res.Findings = append(res.Findings, "Owner is a multi-sig wallet")
	default:
		res.Findings = append(res.Findings, "Owner is a single wallet (EOA)")
		critical = append(critical, "A single owner can rug pull, check their history")
	}

	if len(critical) > 0 {
		res.Findings = append(res.Findings, "CRITICAL RED FLAGS:")
		res.Findings = append(res.Findings, critical...)
	}

	switch {
	case len(critical) > 2:
		res.Tier = TierDanger
	case len(critical) > 0:
		res.Tier = TierWarning
	default:
		res.Tier = TierInfo
	}
	return res
}

func (k *Kit) trackGas(target string) Result {
	slow := 8 + k.rng.Intn(5)
	normal := slow + 5 + k.rng.Intn(5)
	fast := normal + 8 + k.rng.Intn(8)

	res := Result{Tool: ToolGasTracker, Target: target, Tier: TierInfo}
	if fast > 100 {
		res.Tier = TierWarning
	}
	res.Findings = []string{
		"CURRENT GAS PRICES (GWEI):",
		fmt.Sprintf("Slow: %d gwei (~5 min)", slow),
		fmt.Sprintf("Normal: %d gwei (~2 min)", normal),
		fmt.Sprintf("Fast: %d gwei (~30 sec)", fast),
		"GAS OPTIMIZATION TIPS:",
		"1. Use slow gas for non-urgent transactions",
		"2. Check the gas estimate before approving transactions",
		"3. Beware of contracts that force high gas usage",
		"4. MEV bots use fast gas to front-run trades",
		"SCAM PATTERN:",
		"Malicious contracts hide \"gas bomb\" functions that look normal but burn 5M+ gas",
		"Always simulate transactions before executing",
	}
	return res
}

func (k *Kit) lookupAddress(target string) Result {
	if !addressPattern.MatchString(target) {
		return invalidAddressResult(ToolAddressLookup, target)
	}

	hash := charSum(target)
	balance := float64(hash%100) / 10
	txCount := hash%500 + 10
	daysOld := hash%365 + 1

	res := Result{Tool: ToolAddressLookup, Target: target}
	var risks []string

	res.Findings = append(res.Findings,
		"Address: "+shortAddr(target),
		"BALANCE & ACTIVITY:",
		fmt.Sprintf("Balance: %.3f ETH", balance),
		fmt.Sprintf("Total Transactions: %d", txCount),
		fmt.Sprintf("First Activity: %d days ago", daysOld),
		fmt.Sprintf("Last Activity: %d hours ago", hash%30),
	)

	if daysOld < 30 {
		res.Findings = append(res.Findings,
			"NEW ADDRESS WARNING:",
			"  Created less than 30 days ago",
		)
		risks = append(risks, "New addresses may be throwaway scam wallets")
	}
	if txCount > 400 {
		res.Findings = append(res.Findings,
			"HIGH ACTIVITY DETECTED:",
			"  Many transactions in a short time, could be a bot or exchange",
		)
	}
	if hash%11 == 0 {
		res.Findings = append(res.Findings,
			"HONEYPOT PATTERN:",
			"  Only incoming transactions, funds go in but never come out",
		)
		risks = append(risks, "Classic honeypot: deposits but no withdrawals")
	}
	if hash%7 == 0 {
		res.Findings = append(res.Findings,
			"CONTRACT ADDRESS:",
			"  This is a smart contract, not a wallet",
		)
	}

	if len(risks) > 0 {
		res.Findings = append(res.Findings, "RISK INDICATORS:")
		res.Findings = append(res.Findings, risks...)
	}

	switch {
	case len(risks) > 1:
		res.Tier = TierDanger
	case len(risks) == 1:
		res.Tier = TierWarning
	default:
		res.Tier = TierInfo
	}
	return res
}

func (k *Kit) traceTransaction(target string) Result {
	hash := 12345
	if target != "" {
		hash = charSum(target)
	}

	gasUsed := hash%300000 + 21000
	success := hash%10 > 2

	res := Result{Tool: ToolTransactionTracer, Target: target}
	var warnings []string

	res.Findings = append(res.Findings,
		"TRANSACTION FLOW:",
		fmt.Sprintf("Value: %.4f ETH", float64(hash%100)/100),
		fmt.Sprintf("Gas Used: %d (%d gwei)", gasUsed, hash%50+10),
	)
	if success {
		res.Findings = append(res.Findings, "Status: Success")
	} else {
		res.Findings = append(res.Findings,
			"Status: Failed",
			"TRANSACTION FAILED:",
			"  Revert Reason: Insufficient balance or access denied",
			"  Failed withdrawals can indicate a honeypot",
		)
	}

	if hash%5 == 0 {
		res.Findings = append(res.Findings,
			"INTERNAL TRANSACTIONS:",
			"  The contract made additional transfers, check where funds actually went",
		)
		if hash%13 == 0 {
			res.Findings = append(res.Findings,
				"  SWEEPER BOT DETECTED",
				"  Funds immediately sent to another address",
			)
			warnings = append(warnings, "Sweeper bot = instant rug pull mechanism")
		}
	}
	if gasUsed > 250000 {
		res.Findings = append(res.Findings,
			"UNUSUALLY HIGH GAS:",
			"  Could be a \"gas bomb\" or inefficient code",
		)
		warnings = append(warnings, "High gas = possible attack or poorly coded contract")
	}

	if len(warnings) > 0 {
		res.Findings = append(res.Findings, "WARNING SIGNS:")
		res.Findings = append(res.Findings, warnings...)
	}

	switch {
	case len(warnings) > 0:
		res.Tier = TierDanger
	case !success:
		res.Tier = TierWarning
	default:
		res.Tier = TierInfo
	}
	return res
}

func (k *Kit) scanToken(target string) Result {
	if !addressPattern.MatchString(target) {
		return invalidAddressResult(ToolTokenScanner, target)
	}

	hash := charSum(target)
	buyTax := hash % 10
	sellTax := buyTax + hash%20
	isHoneypot := hash%8 == 0
	hasHiddenMint := hash%7 == 0
	canPause := hash%6 == 0

	riskScore := 0
	if isHoneypot {
		riskScore += 80
	}
	if hasHiddenMint {
		riskScore += 30
	}
	if canPause {
		riskScore += 20
	}
	if sellTax > buyTax*2 {
		riskScore += 25
	}
	if riskScore > 100 {
		riskScore = 100
	}

	res := Result{Tool: ToolTokenScanner, Target: target}
	var critical []string

	res.Findings = append(res.Findings,
		"TOKEN SECURITY SCAN",
		"Address: "+shortAddr(target),
		fmt.Sprintf("Risk Score: %d/100", riskScore),
	)

	if isHoneypot {
		res.Findings = append(res.Findings,
			"HONEYPOT DETECTED",
			"  You can buy but CANNOT sell",
		)
		critical = append(critical, "HONEYPOT: Do not buy this token")
	}
	if hasHiddenMint {
		res.Findings = append(res.Findings,
			"HIDDEN MINT FUNCTION",
			"  The owner can create unlimited tokens",
		)
		critical = append(critical, "Owner can dilute your holdings infinitely")
	}
	if canPause {
		res.Findings = append(res.Findings,
			"PAUSABLE TRANSFERS",
			"  The owner can freeze all transfers",
		)
		critical = append(critical, "Trading can be disabled by the owner")
	}

	res.Findings = append(res.Findings,
		"TOKEN METRICS:",
		fmt.Sprintf("Buy Tax: %d%%", buyTax),
		fmt.Sprintf("Sell Tax: %d%%", sellTax),
	)
	if sellTax > buyTax*2 {
		res.Findings = append(res.Findings, "ASYMMETRIC TAX = RED FLAG")
		critical = append(critical, "Sell tax much higher than buy tax")
	}

	if len(critical) > 0 {
		res.Findings = append(res.Findings, "CRITICAL ISSUES FOUND:")
		res.Findings = append(res.Findings, critical...)
		res.Findings = append(res.Findings, "RECOMMENDATION: DO NOT BUY")
	}

	switch {
	case riskScore > 70:
		res.Tier = TierDanger
	case riskScore > 40:
		res.Tier = TierWarning
	default:
		res.Tier = TierInfo
	}
	return res
}

// levenshtein returns the edit distance between a and b.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(ra)+1)
	cur := make([]int, len(ra)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(rb); i++ {
		cur[0] = i
		for j := 1; j <= len(ra); j++ {
			cost := 1
			if rb[i-1] == ra[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j-1]+cost, cur[j-1]+1, prev[j]+1)
		}
		prev, cur = cur, prev
	}
	return prev[len(ra)]
}
