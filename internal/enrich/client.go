package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/prompted365/scamdetect/internal/tools"
)

// LiveDataNote marks a result as carrying fetched rather than simulated data.
const LiveDataNote = "live blockchain data"

var addressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// Client augments baseline tool results with data fetched from public
// block-explorer APIs. Every failure is returned to the caller as an error;
// the game core falls back to the baseline result, so nothing here is fatal.
type Client struct {
	http         *http.Client
	etherscanURL string
	goplusURL    string
	apiKey       string
	cache        *cache
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithEtherscanURL overrides the Etherscan API base URL.
func WithEtherscanURL(u string) Option {
	return func(c *Client) { c.etherscanURL = u }
}

// WithGoPlusURL overrides the GoPlus token-security API base URL.
func WithGoPlusURL(u string) Option {
	return func(c *Client) { c.goplusURL = u }
}

// WithAPIKey sets the Etherscan API key.
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

// WithClock overrides the cache clock.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.cache = newCache(now) }
}

// NewClient creates an enrichment client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		http:         &http.Client{Timeout: 10 * time.Second},
		etherscanURL: "https://api.etherscan.io/api",
		goplusURL:    "https://api.gopluslabs.io/api/v1",
		cache:        newCache(nil),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Enhance fetches live data for the given tool and merges it into base.
// Tools without a live data source return base unchanged with no error.
// Fetched findings are cached for a minute per tool and target.
func (c *Client) Enhance(ctx context.Context, id tools.ToolID, base tools.Result, target string) (tools.Result, error) {
	key := string(id) + ":" + target
	if findings, ok := c.cache.get(key); ok {
		return base.Merge(findings, LiveDataNote), nil
	}

	var (
		findings []string
		err      error
	)
	switch id {
	case tools.ToolAddressLookup:
		findings, err = c.fetchAddress(ctx, target)
	case tools.ToolContractAnalyzer:
		findings, err = c.fetchContract(ctx, target)
	case tools.ToolTokenScanner:
		findings, err = c.fetchTokenSecurity(ctx, target)
	case tools.ToolGasTracker:
		findings, err = c.fetchGasOracle(ctx)
	default:
		return base, nil
	}
	if err != nil {
		return base, err
	}

	c.cache.set(key, findings)
	return base.Merge(findings, LiveDataNote), nil
}

func (c *Client) fetchAddress(ctx context.Context, address string) ([]string, error) {
	if !addressPattern.MatchString(address) {
		return nil, fmt.Errorf("not an ethereum address: %q", address)
	}

	var balanceResp struct {
		Status string `json:"status"`
		Result string `json:"result"`
	}
	err := c.getJSON(ctx, c.etherscanQuery(url.Values{
		"module":  {"account"},
		"action":  {"balance"},
		"address": {address},
		"tag":     {"latest"},
	}), &balanceResp)
	if err != nil {
		return nil, err
	}

	var txCountResp struct {
		Result string `json:"result"`
	}
	err = c.getJSON(ctx, c.etherscanQuery(url.Values{
		"module":  {"proxy"},
		"action":  {"eth_getTransactionCount"},
		"address": {address},
		"tag":     {"latest"},
	}), &txCountResp)
	if err != nil {
		return nil, err
	}

	wei, err := strconv.ParseFloat(balanceResp.Result, 64)
	if err != nil {
		return nil, fmt.Errorf("parse balance %q: %w", balanceResp.Result, err)
	}
	txCount, err := strconv.ParseInt(strings.TrimPrefix(txCountResp.Result, "0x"), 16, 64)
	if err != nil {
		return nil, fmt.Errorf("parse tx count %q: %w", txCountResp.Result, err)
	}

	return []string{
		"LIVE DATA (Etherscan):",
		fmt.Sprintf("On-chain balance: %.4f ETH", wei/1e18),
		fmt.Sprintf("On-chain transaction count: %d", txCount),
	}, nil
}

func (c *Client) fetchContract(ctx context.Context, address string) ([]string, error) {
	if !addressPattern.MatchString(address) {
		return nil, fmt.Errorf("not an ethereum address: %q", address)
	}

	var resp struct {
		Result []struct {
			SourceCode   string `json:"SourceCode"`
			ContractName string `json:"ContractName"`
		} `json:"result"`
	}
	err := c.getJSON(ctx, c.etherscanQuery(url.Values{
		"module":  {"contract"},
		"action":  {"getsourcecode"},
		"address": {address},
	}), &resp)
	if err != nil {
		return nil, err
	}
	if len(resp.Result) == 0 {
		return nil, fmt.Errorf("empty getsourcecode result for %s", address)
	}

	findings := []string{"LIVE DATA (Etherscan):"}
	if resp.Result[0].SourceCode != "" {
		name := resp.Result[0].ContractName
		if name == "" {
			name = "Unknown"
		}
		findings = append(findings, "Source code verified: "+name)
	} else {
		findings = append(findings, "Source code NOT verified on Etherscan")
	}
	return findings, nil
}

func (c *Client) fetchTokenSecurity(ctx context.Context, address string) ([]string, error) {
	if !addressPattern.MatchString(address) {
		return nil, fmt.Errorf("not an ethereum address: %q", address)
	}

	var resp struct {
		Result map[string]struct {
			IsHoneypot string `json:"is_honeypot"`
			BuyTax     string `json:"buy_tax"`
			SellTax    string `json:"sell_tax"`
			IsOpenSrc  string `json:"is_open_source"`
		} `json:"result"`
	}
	u := fmt.Sprintf("%s/token_security/1?contract_addresses=%s", c.goplusURL, strings.ToLower(address))
	if err := c.getJSON(ctx, u, &resp); err != nil {
		return nil, err
	}

	data, ok := resp.Result[strings.ToLower(address)]
	if !ok {
		return nil, fmt.Errorf("no token security data for %s", address)
	}

	findings := []string{"LIVE DATA (GoPlus Security):"}
	if data.IsHoneypot == "1" {
		findings = append(findings, "Confirmed honeypot on-chain")
	}
	if data.IsOpenSrc == "0" {
		findings = append(findings, "Contract source is closed")
	}
	if data.BuyTax != "" || data.SellTax != "" {
		findings = append(findings, fmt.Sprintf("Buy tax: %s | Sell tax: %s", data.BuyTax, data.SellTax))
	}
	return findings, nil
}

func (c *Client) fetchGasOracle(ctx context.Context) ([]string, error) {
	var resp struct {
		Result struct {
			SafeGasPrice    string `json:"SafeGasPrice"`
			ProposeGasPrice string `json:"ProposeGasPrice"`
			FastGasPrice    string `json:"FastGasPrice"`
		} `json:"result"`
	}
	err := c.getJSON(ctx, c.etherscanQuery(url.Values{
		"module": {"gastracker"},
		"action": {"gasoracle"},
	}), &resp)
	if err != nil {
		return nil, err
	}

	return []string{
		"LIVE DATA (Etherscan gas oracle):",
		fmt.Sprintf("Safe: %s gwei | Proposed: %s gwei | Fast: %s gwei",
			resp.Result.SafeGasPrice, resp.Result.ProposeGasPrice, resp.Result.FastGasPrice),
	}, nil
}

func (c *Client) etherscanQuery(params url.Values) string {
	if c.apiKey != "" {
		params.Set("apikey", c.apiKey)
	}
	return c.etherscanURL + "?" + params.Encode()
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
