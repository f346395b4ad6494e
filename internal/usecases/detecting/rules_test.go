package detecting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/backbone-api/internal/domain"
)

func companyWithRunway(runway float64) *domain.CompanyMetrics {
	return &domain.CompanyMetrics{Runway: &runway}
}

func companyWithBurnMultiple(bm float64) *domain.CompanyMetrics {
	return &domain.CompanyMetrics{BurnMultiple: &bm}
}

func companyWithStaleDays(days int) *domain.CompanyMetrics {
	return &domain.CompanyMetrics{DaysSinceUpdate: &days}
}

func TestEvalRunway(t *testing.T) {
	tests := []struct {
		name     string
		company  *domain.CompanyMetrics
		expected *draft
	}{
		{
			name:     "Runway desconhecido não dispara",
			company:  &domain.CompanyMetrics{},
			expected: nil,
		},
		{
			name:     "Runway exatamente no limiar não dispara",
			company:  companyWithRunway(6.0),
			expected: nil,
		},
		{
			name:    "Runway abaixo de 6 meses dispara com severidade alta",
			company: companyWithRunway(4.5),
			expected: &draft{
				issueType:        domain.IssueTypeCapitalSufficiency,
				severity:         domain.SeverityHigh,
				urgencyScore:     55,
				title:            "Runway at 4.5 months",
				suggestedAction:  "Review fundraising timeline",
				triggerCondition: "runway=4.5 < 6",
			},
		},
		{
			name:    "Runway abaixo de 3 meses é crítico",
			company: companyWithRunway(2.0),
			expected: &draft{
				issueType:        domain.IssueTypeCapitalSufficiency,
				severity:         domain.SeverityCritical,
				urgencyScore:     80,
				title:            "Runway at 2.0 months",
				suggestedAction:  "Emergency bridge or accelerate close",
				triggerCondition: "runway=2.0 < 6",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, evalRunway(tt.company))
		})
	}
}

func TestEvalBurnMultiple(t *testing.T) {
	tests := []struct {
		name     string
		company  *domain.CompanyMetrics
		expected *draft
	}{
		{
			name:     "Burn multiple desconhecido não dispara",
			company:  &domain.CompanyMetrics{},
			expected: nil,
		},
		{
			name:     "Burn multiple exatamente 3 não dispara",
			company:  companyWithBurnMultiple(3.0),
			expected: nil,
		},
		{
			name:    "Burn multiple acima de 3 dispara com severidade média",
			company: companyWithBurnMultiple(4.0),
			expected: &draft{
				issueType:        domain.IssueTypeRevenueViability,
				severity:         domain.SeverityMedium,
				urgencyScore:     60,
				title:            "Burn multiple at 4.0x",
				suggestedAction:  "Review unit economics and path to efficiency",
				triggerCondition: "burnMultiple=4.0 > 3",
			},
		},
		{
			name:    "Burn multiple acima de 5 sobe para alta e a urgência satura em 90",
			company: companyWithBurnMultiple(7.0),
			expected: &draft{
				issueType:        domain.IssueTypeRevenueViability,
				severity:         domain.SeverityHigh,
				urgencyScore:     90,
				title:            "Burn multiple at 7.0x",
				suggestedAction:  "Review unit economics and path to efficiency",
				triggerCondition: "burnMultiple=7.0 > 3",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, evalBurnMultiple(tt.company))
		})
	}
}

func TestEvalStaleUpdate(t *testing.T) {
	tests := []struct {
		name     string
		company  *domain.CompanyMetrics
		expected *draft
	}{
		{
			name:     "Sem atualização registrada não dispara",
			company:  &domain.CompanyMetrics{},
			expected: nil,
		},
		{
			name:     "Exatamente 14 dias não dispara",
			company:  companyWithStaleDays(14),
			expected: nil,
		},
		{
			name:    "20 dias dispara com severidade média",
			company: companyWithStaleDays(20),
			expected: &draft{
				issueType:        domain.IssueTypeAttentionMisallocation,
				severity:         domain.SeverityMedium,
				urgencyScore:     40,
				title:            "No update in 20 days",
				suggestedAction:  "Schedule check-in",
				triggerCondition: "daysSinceUpdate=20 > 14",
			},
		},
		{
			name:    "45 dias sobe para alta e a urgência satura em 80",
			company: companyWithStaleDays(45),
			expected: &draft{
				issueType:        domain.IssueTypeAttentionMisallocation,
				severity:         domain.SeverityHigh,
				urgencyScore:     80,
				title:            "No update in 45 days",
				suggestedAction:  "Schedule check-in",
				triggerCondition: "daysSinceUpdate=45 > 14",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, evalStaleUpdate(tt.company))
		})
	}
}

func TestEvalStalledRound(t *testing.T) {
	tests := []struct {
		name     string
		round    *domain.RoundMetrics
		expected *draft
	}{
		{
			name: "Rodada recente não dispara",
			round: &domain.RoundMetrics{
				Round:    domain.Round{RoundType: "bridge"},
				Coverage: 0.1,
				DaysOpen: 45,
			},
			expected: nil,
		},
		{
			name: "Cobertura suficiente não dispara",
			round: &domain.RoundMetrics{
				Round:    domain.Round{RoundType: "bridge"},
				Coverage: 0.3,
				DaysOpen: 90,
			},
			expected: nil,
		},
		{
			name: "Rodada travada dispara",
			round: &domain.RoundMetrics{
				Round:    domain.Round{RoundType: "bridge"},
				Coverage: 0.2,
				DaysOpen: 62,
			},
			expected: &draft{
				issueType:        domain.IssueTypeCapitalSufficiency,
				severity:         domain.SeverityHigh,
				urgencyScore:     91,
				title:            "bridge open 62d, 20% covered",
				suggestedAction:  "Assess pipeline, consider repositioning",
				triggerCondition: "daysOpen=62 > 45 && coverage=0.20 < 0.3",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, evalStalledRound(tt.round))
		})
	}
}

func TestEvalMissingLead(t *testing.T) {
	tests := []struct {
		name     string
		round    *domain.RoundMetrics
		expected *draft
	}{
		{
			name: "Rodada com lead não dispara",
			round: &domain.RoundMetrics{
				Round:    domain.Round{RoundType: "seed", HasLead: true},
				DaysOpen: 90,
			},
			expected: nil,
		},
		{
			name: "Exatamente 30 dias não dispara",
			round: &domain.RoundMetrics{
				Round:    domain.Round{RoundType: "seed"},
				DaysOpen: 30,
			},
			expected: nil,
		},
		{
			name: "Rodada sem lead dispara",
			round: &domain.RoundMetrics{
				Round:    domain.Round{RoundType: "bridge"},
				DaysOpen: 62,
			},
			expected: &draft{
				issueType:        domain.IssueTypeMarketAccess,
				severity:         domain.SeverityMedium,
				urgencyScore:     59,
				title:            "bridge needs lead, 62d open",
				suggestedAction:  "Focus on lead-capable firms",
				triggerCondition: "hasLead=false && daysOpen=62 > 30",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, evalMissingLead(tt.round))
		})
	}
}

func TestEvalGoalRisk(t *testing.T) {
	deadline := referenceNow.AddDate(0, 0, 20)

	tests := []struct {
		name     string
		goal     *domain.Goal
		expected *draft
	}{
		{
			name: "Meta ativa sem prazo próximo não dispara",
			goal: &domain.Goal{
				Title:        "Reach $100k MRR",
				Status:       domain.GoalStatusActive,
				TargetValue:  100000,
				CurrentValue: 61000,
			},
			expected: nil,
		},
		{
			name: "Meta at_risk sem prazo dispara pelo status",
			goal: &domain.Goal{
				Title:        "Reach $100k MRR",
				Status:       domain.GoalStatusAtRisk,
				TargetValue:  100000,
				CurrentValue: 61000,
			},
			expected: &draft{
				issueType:        domain.IssueTypeGoalRisk,
				severity:         domain.SeverityMedium,
				urgencyScore:     62,
				title:            "Reach $100k MRR: 61% complete, no deadline",
				suggestedAction:  "Review blockers and acceleration options",
				triggerCondition: "progress=0.61 < 0.7 && daysLeft=null",
			},
		},
		{
			name: "Prazo próximo com progresso baixo dispara",
			goal: &domain.Goal{
				Title:        "Hire VP of Sales",
				Status:       domain.GoalStatusActive,
				TargetValue:  2,
				CurrentValue: 1,
				TargetDate:   &deadline,
			},
			expected: &draft{
				issueType:        domain.IssueTypeGoalRisk,
				severity:         domain.SeverityMedium,
				urgencyScore:     65,
				title:            "Hire VP of Sales: 50% complete, 20d left",
				suggestedAction:  "Review blockers and acceleration options",
				triggerCondition: "progress=0.50 < 0.7 && daysLeft=20",
			},
		},
		{
			name: "Prazo próximo com progresso suficiente não dispara",
			goal: &domain.Goal{
				Title:        "Reach $100k MRR",
				Status:       domain.GoalStatusActive,
				TargetValue:  100000,
				CurrentValue: 80000,
				TargetDate:   &deadline,
			},
			expected: nil,
		},
		{
			name: "Prioridade crítica sobe a severidade para alta",
			goal: &domain.Goal{
				Title:        "Reach $100k MRR",
				Status:       domain.GoalStatusAtRisk,
				Priority:     domain.GoalPriorityCritical,
				TargetValue:  100000,
				CurrentValue: 61000,
			},
			expected: &draft{
				issueType:        domain.IssueTypeGoalRisk,
				severity:         domain.SeverityHigh,
				urgencyScore:     62,
				title:            "Reach $100k MRR: 61% complete, no deadline",
				suggestedAction:  "Review blockers and acceleration options",
				triggerCondition: "progress=0.61 < 0.7 && daysLeft=null",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, evalGoalRisk(tt.goal, referenceNow))
		})
	}
}

func TestEvalGoalRisk_MetaSemValorAlvo(t *testing.T) {
	// Valor-alvo zero conta como progresso zero, não como divisão por zero
	goal := &domain.Goal{
		Title:       "Close strategic partnership",
		Status:      domain.GoalStatusAtRisk,
		TargetValue: 0,
	}

	d := evalGoalRisk(goal, referenceNow)
	require.NotNil(t, d)
	assert.Equal(t, 80, d.urgencyScore)
	assert.Equal(t, "Close strategic partnership: 0% complete, no deadline", d.title)
	assert.Equal(t, "progress=0.00 < 0.7 && daysLeft=null", d.triggerCondition)
}
