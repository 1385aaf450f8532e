package scenario

import "fmt"

// Category tags a scenario with the scam family it belongs to.
type Category string

const (
	CategoryWallet     Category = "wallet"
	CategoryDeFi       Category = "defi"
	CategoryNFT        Category = "nft"
	CategoryLayer2     Category = "layer2"
	CategorySocial     Category = "social"
	CategoryStablecoin Category = "stablecoin"
	CategoryMEV        Category = "mev"
)

// AllCategories returns every category in display order.
func AllCategories() []Category {
	return []Category{
		CategoryWallet, CategoryDeFi, CategoryNFT, CategoryLayer2,
		CategorySocial, CategoryStablecoin, CategoryMEV,
	}
}

// DisplayName returns a human-readable label for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryWallet:
		return "Wallet Security"
	case CategoryDeFi:
		return "DeFi Protocol"
	case CategoryNFT:
		return "NFT"
	case CategoryLayer2:
		return "Layer 2"
	case CategorySocial:
		return "Social Engineering"
	case CategoryStablecoin:
		return "Stablecoin"
	case CategoryMEV:
		return "MEV Attack"
	default:
		return "Security"
	}
}

// Difficulty grades how hard a scenario is to call correctly.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Kind is the presentation type of the simulated artifact. The game core
// treats it as opaque except for analysis-target derivation.
type Kind string

const (
	KindEmail       Kind = "email"
	KindWebsite     Kind = "website"
	KindTransaction Kind = "transaction"
	KindChat        Kind = "chat"
)

// Option is a single answer choice.
type Option struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Feedback is the post-answer explanation bundle.
type Feedback struct {
	Correct    string   `json:"correct"`
	Incorrect  string   `json:"incorrect"`
	XPReward   int      `json:"xpReward"`
	RedFlags   []string `json:"redFlags,omitempty"`
	ChainNotes []string `json:"chainNotes,omitempty"`
}

// Email is the payload of an email-kind scenario.
type Email struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Website is the payload of a website-kind scenario. Content is plain text,
// one rendered line per element.
type Website struct {
	URL     string   `json:"url"`
	Content []string `json:"content"`
}

// TxField is a labelled transaction detail. Order matters for rendering, so
// fields are a slice rather than a map.
type TxField struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Transaction is the payload of a transaction-kind scenario.
type Transaction struct {
	To              string    `json:"to"`
	Fields          []TxField `json:"fields"`
	DecodedFunction string    `json:"decodedFunction"`
	DecodedParams   []TxField `json:"decodedParams"`
}

// ChatMessage is one message in a chat-kind scenario.
type ChatMessage struct {
	From string `json:"from"`
	Sent bool   `json:"sent"` // true if the player "sent" it
	Text string `json:"text"`
	Time string `json:"time"`
}

// Chat is the payload of a chat-kind scenario.
type Chat struct {
	Messages []ChatMessage `json:"messages"`
}

// Scenario is one quiz unit: a simulated artifact plus a multiple-choice
// question about it. Scenarios are immutable once loaded.
type Scenario struct {
	ID            int          `json:"id"`
	Category      Category     `json:"category"`
	Difficulty    Difficulty   `json:"difficulty"`
	Kind          Kind         `json:"kind"`
	Title         string       `json:"title"`
	Email         *Email       `json:"email,omitempty"`
	Website       *Website     `json:"website,omitempty"`
	Transaction   *Transaction `json:"transaction,omitempty"`
	Chat          *Chat        `json:"chat,omitempty"`
	Question      string       `json:"question"`
	Options       []Option     `json:"options"`
	CorrectOption string       `json:"correctOption"`
	Tools         []string     `json:"tools,omitempty"`
	Feedback      Feedback     `json:"feedback"`
}

// FallbackURL is the analysis target used when a scenario carries no URL or
// sender at all.
const FallbackURL = "https://example.com"

// ZeroAddress is the analysis target used for transaction scenarios with no
// recipient.
const ZeroAddress = "0x0000000000000000000000000000000000000000"

// AnalysisTarget derives what an investigation tool should analyze for this
// scenario: URL, then sender, then a placeholder for email/website kinds;
// the recipient, then the zero address, for transaction kinds; the zero
// address otherwise.
func (s *Scenario) AnalysisTarget() string {
	switch s.Kind {
	case KindEmail, KindWebsite:
		if s.Website != nil && s.Website.URL != "" {
			return s.Website.URL
		}
		if s.Email != nil && s.Email.From != "" {
			return s.Email.From
		}
		return FallbackURL
	case KindTransaction:
		if s.Transaction != nil && s.Transaction.To != "" {
			return s.Transaction.To
		}
		return ZeroAddress
	default:
		return ZeroAddress
	}
}

// Validate checks the structural invariants the schema cannot express.
func (s *Scenario) Validate() error {
	if s.Feedback.XPReward <= 0 {
		return fmt.Errorf("scenario %d: xpReward must be positive, got %d", s.ID, s.Feedback.XPReward)
	}
	for _, opt := range s.Options {
		if opt.ID == s.CorrectOption {
			return nil
		}
	}
	return fmt.Errorf("scenario %d: correct option %q not present in options", s.ID, s.CorrectOption)
}
