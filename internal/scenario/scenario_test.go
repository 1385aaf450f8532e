package scenario

import "testing"

func TestAnalysisTarget(t *testing.T) {
	tests := []struct {
		name string
		s    Scenario
		want string
	}{
		{
			name: "website kind uses url",
			s: Scenario{
				Kind:    KindWebsite,
				Website: &Website{URL: "https://aave-finance.app/farm"},
			},
			want: "https://aave-finance.app/farm",
		},
		{
			name: "email kind falls back to sender",
			s: Scenario{
				Kind:  KindEmail,
				Email: &Email{From: "security@metamask-support.com"},
			},
			want: "security@metamask-support.com",
		},
		{
			name: "email kind prefers url when both present",
			s: Scenario{
				Kind:    KindEmail,
				Website: &Website{URL: "https://phish.example"},
				Email:   &Email{From: "security@metamask-support.com"},
			},
			want: "https://phish.example",
		},
		{
			name: "email kind with no url or sender",
			s:    Scenario{Kind: KindEmail},
			want: FallbackURL,
		},
		{
			name: "transaction kind uses recipient",
			s: Scenario{
				Kind:        KindTransaction,
				Transaction: &Transaction{To: "0x1234000000000000000000000000000000005678"},
			},
			want: "0x1234000000000000000000000000000000005678",
		},
		{
			name: "transaction kind with no recipient",
			s:    Scenario{Kind: KindTransaction, Transaction: &Transaction{}},
			want: ZeroAddress,
		},
		{
			name: "chat kind uses zero address",
			s:    Scenario{Kind: KindChat},
			want: ZeroAddress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.AnalysisTarget(); got != tt.want {
				t.Errorf("AnalysisTarget() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCategoryDisplayName(t *testing.T) {
	for _, c := range AllCategories() {
		if c.DisplayName() == "" || c.DisplayName() == "Security" {
			t.Errorf("category %q missing dedicated display name", c)
		}
	}
	if got := Category("bogus").DisplayName(); got != "Security" {
		t.Errorf("unknown category display name = %q, want Security", got)
	}
}

func TestScenarioValidate(t *testing.T) {
	valid := Scenario{
		ID:            7,
		Options:       []Option{{ID: "a"}, {ID: "b"}},
		CorrectOption: "b",
		Feedback:      Feedback{XPReward: 100},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid scenario rejected: %v", err)
	}

	noXP := valid
	noXP.Feedback.XPReward = 0
	if err := noXP.Validate(); err == nil {
		t.Error("expected error for zero xpReward")
	}

	badOption := valid
	badOption.CorrectOption = "c"
	if err := badOption.Validate(); err == nil {
		t.Error("expected error for missing correct option")
	}
}
