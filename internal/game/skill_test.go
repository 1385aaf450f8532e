package game

import (
	"testing"

	"github.com/prompted365/scamdetect/internal/scenario"
)

func TestCategorySkill(t *testing.T) {
	tests := []struct {
		cat  scenario.Category
		want Skill
	}{
		{scenario.CategoryWallet, SkillPhishingDetection},
		{scenario.CategoryStablecoin, SkillPhishingDetection},
		{scenario.CategoryMEV, SkillPhishingDetection},
		{scenario.CategoryDeFi, SkillContractAnalysis},
		{scenario.CategorySocial, SkillSocialEngineering},
		{scenario.CategoryNFT, SkillTechnicalAuditing},
		{scenario.CategoryLayer2, SkillTechnicalAuditing},
		{scenario.Category("unknown"), SkillPhishingDetection},
	}
	for _, tt := range tests {
		if got := CategorySkill(tt.cat); got != tt.want {
			t.Errorf("CategorySkill(%q) = %s, want %s", tt.cat, got, tt.want)
		}
	}
}

func TestSkillDisplayNames(t *testing.T) {
	for _, s := range AllSkills() {
		if s.DisplayName() == string(s) || s.DisplayName() == "" {
			t.Errorf("skill %q missing display name", s)
		}
	}
}
