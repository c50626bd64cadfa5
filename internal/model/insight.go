package model

// InsightCategory groups insights by theme.
type InsightCategory string

const (
	InsightFinance  InsightCategory = "finance"
	InsightPlanning InsightCategory = "planning"
	InsightRisk     InsightCategory = "risk"
	InsightSocial   InsightCategory = "social"
)

// Insight is a short observation derived from aggregate workspace or
// room state. Ephemeral: regenerated on demand, no identity and no
// persistence.
type Insight struct {
	Category InsightCategory `json:"category"`
	Text     string          `json:"text"`
	Icon     string          `json:"icon"`
}
