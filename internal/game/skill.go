package game

import "github.com/prompted365/scamdetect/internal/scenario"

// Skill identifies one of the tracked proficiency tracks.
type Skill string

const (
	SkillPhishingDetection Skill = "phishing-detection"
	SkillContractAnalysis  Skill = "contract-analysis"
	SkillSocialEngineering Skill = "social-engineering"
	SkillTechnicalAuditing Skill = "technical-auditing"
)

// AllSkills returns every skill in display order.
func AllSkills() []Skill {
	return []Skill{
		SkillPhishingDetection,
		SkillContractAnalysis,
		SkillSocialEngineering,
		SkillTechnicalAuditing,
	}
}

// DisplayName returns a human-readable label for the skill.
func (s Skill) DisplayName() string {
	switch s {
	case SkillPhishingDetection:
		return "Phishing Detection"
	case SkillContractAnalysis:
		return "Contract Analysis"
	case SkillSocialEngineering:
		return "Social Engineering"
	case SkillTechnicalAuditing:
		return "Technical Auditing"
	default:
		return string(s)
	}
}

// CategorySkill maps a scenario category to the skill credited for answering
// it correctly. Categories without a dedicated track fall back to phishing
// detection.
func CategorySkill(c scenario.Category) Skill {
	switch c {
	case scenario.CategoryDeFi:
		return SkillContractAnalysis
	case scenario.CategorySocial:
		return SkillSocialEngineering
	case scenario.CategoryNFT, scenario.CategoryLayer2:
		return SkillTechnicalAuditing
	case scenario.CategoryWallet, scenario.CategoryStablecoin, scenario.CategoryMEV:
		return SkillPhishingDetection
	default:
		return SkillPhishingDetection
	}
}
