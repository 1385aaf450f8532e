package tools

import "fmt"

// ToolID identifies an investigation tool.
type ToolID string

const (
	ToolURLScanner        ToolID = "url_scanner"
	ToolContractAnalyzer  ToolID = "contract_analyzer"
	ToolGasTracker        ToolID = "gas_tracker"
	ToolAddressLookup     ToolID = "address_lookup"
	ToolTransactionTracer ToolID = "transaction_tracer"
	ToolTokenScanner      ToolID = "token_scanner"
)

// AllTools returns every tool in display order.
func AllTools() []ToolID {
	return []ToolID{
		ToolURLScanner,
		ToolContractAnalyzer,
		ToolGasTracker,
		ToolAddressLookup,
		ToolTransactionTracer,
		ToolTokenScanner,
	}
}

// Parse converts a tool id string to a ToolID.
func Parse(s string) (ToolID, error) {
	for _, id := range AllTools() {
		if string(id) == s {
			return id, nil
		}
	}
	return "", fmt.Errorf("unknown tool id %q", s)
}

// DisplayName returns a human-readable label for the tool.
func (t ToolID) DisplayName() string {
	switch t {
	case ToolURLScanner:
		return "URL Scanner"
	case ToolContractAnalyzer:
		return "Contract Analyzer"
	case ToolGasTracker:
		return "Gas Price Tracker"
	case ToolAddressLookup:
		return "Address Lookup"
	case ToolTransactionTracer:
		return "Transaction Tracer"
	case ToolTokenScanner:
		return "Token Security Scanner"
	default:
		return string(t)
	}
}

// Icon returns the display icon for the tool.
func (t ToolID) Icon() string {
	switch t {
	case ToolURLScanner:
		return "🔍"
	case ToolContractAnalyzer:
		return "⛓"
	case ToolGasTracker:
		return "⛽"
	case ToolAddressLookup:
		return "📍"
	case ToolTransactionTracer:
		return "🔄"
	case ToolTokenScanner:
		return "🪙"
	default:
		return "🔧"
	}
}

// Description returns a short summary of what the tool checks.
func (t ToolID) Description() string {
	switch t {
	case ToolURLScanner:
		return "Check URLs for phishing patterns and domain spoofing"
	case ToolContractAnalyzer:
		return "Analyze smart contract code for red flags"
	case ToolGasTracker:
		return "Monitor gas prices and detect suspicious activity"
	case ToolAddressLookup:
		return "Check address history, balance, and risk indicators"
	case ToolTransactionTracer:
		return "Trace transaction flow and detect sweeper bots"
	case ToolTokenScanner:
		return "Scan tokens for honeypots and hidden fees"
	default:
		return ""
	}
}
