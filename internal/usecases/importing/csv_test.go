package importing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/backbone-api/internal/domain"
)

func TestParseTable(t *testing.T) {
	t.Run("Texto vazio resulta em zero linhas", func(t *testing.T) {
		records, err := parseTable("   \n  ")
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("Apenas cabeçalho resulta em zero linhas", func(t *testing.T) {
		records, err := parseTable("id,name")
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("Linha com menos colunas que o cabeçalho é tolerada", func(t *testing.T) {
		records, err := parseTable("id,name,stage\nc1,Fidalgo Labs")
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "c1", records[0]["id"])
		assert.Equal(t, "Fidalgo Labs", records[0]["name"])
		assert.Equal(t, "", records[0]["stage"])
	})

	t.Run("Espaços em volta de cabeçalhos e valores são removidos", func(t *testing.T) {
		records, err := parseTable(" id , name \n c1 , Helix Metrics ")
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Helix Metrics", records[0]["name"])
	})
}

func TestParseFloatPtr(t *testing.T) {
	t.Run("Campo vazio vira nil, não zero", func(t *testing.T) {
		value, err := parseFloatPtr("")
		require.NoError(t, err)
		assert.Nil(t, value)
	})

	t.Run("Valor válido", func(t *testing.T) {
		value, err := parseFloatPtr("420000.50")
		require.NoError(t, err)
		require.NotNil(t, value)
		assert.Equal(t, 420000.50, *value)
	})

	t.Run("Valor negativo é rejeitado", func(t *testing.T) {
		_, err := parseFloatPtr("-100")
		assert.Error(t, err)
	})

	t.Run("Texto não numérico é rejeitado", func(t *testing.T) {
		_, err := parseFloatPtr("muito")
		assert.Error(t, err)
	})
}

func TestParseTimePtr(t *testing.T) {
	t.Run("Campo vazio vira nil", func(t *testing.T) {
		value, err := parseTimePtr("")
		require.NoError(t, err)
		assert.Nil(t, value)
	})

	t.Run("Data simples", func(t *testing.T) {
		value, err := parseTimePtr("2026-02-10")
		require.NoError(t, err)
		require.NotNil(t, value)
		assert.Equal(t, time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC), *value)
	})

	t.Run("Timestamp RFC3339", func(t *testing.T) {
		value, err := parseTimePtr("2026-02-10T15:04:05Z")
		require.NoError(t, err)
		require.NotNil(t, value)
		assert.Equal(t, 15, value.Hour())
	})

	t.Run("Data inválida é rejeitada", func(t *testing.T) {
		_, err := parseTimePtr("10/02/2026")
		assert.Error(t, err)
	})
}

func TestParseCompanies(t *testing.T) {
	csv := `id,name,isPortfolio,stage,sector,cashOnHand,monthlyBurn,mrr,employeeCount,lastMaterialUpdate_at
c1,Fidalgo Labs,true,seed,fintech,420000,210000,18000,11,2026-02-10
c2,Vetro Health,false,series_b,healthtech,,,,,`

	companies, err := parseCompanies(csv)
	require.NoError(t, err)
	require.Len(t, companies, 2)

	first := companies[0]
	assert.Equal(t, "c1", first.ID)
	assert.Equal(t, "Fidalgo Labs", first.Name)
	assert.True(t, first.IsPortfolio)
	require.NotNil(t, first.CashOnHand)
	assert.Equal(t, 420000.0, *first.CashOnHand)
	require.NotNil(t, first.EmployeeCount)
	assert.Equal(t, 11, *first.EmployeeCount)
	require.NotNil(t, first.LastMaterialUpdateAt)

	second := companies[1]
	assert.False(t, second.IsPortfolio)
	assert.Nil(t, second.CashOnHand)
	assert.Nil(t, second.MonthlyBurn)
	assert.Nil(t, second.MRR)
	assert.Nil(t, second.EmployeeCount)
	assert.Nil(t, second.LastMaterialUpdateAt)
}

func TestParseCompanies_GeraIDQuandoAusente(t *testing.T) {
	csv := `id,name,isPortfolio
,Sem ID,true`

	companies, err := parseCompanies(csv)
	require.NoError(t, err)
	require.Len(t, companies, 1)
	assert.NotEmpty(t, companies[0].ID)
}

func TestParseRounds(t *testing.T) {
	csv := `id,company_id,roundType,targetAmount,raisedAmount,status,startedAt,targetCloseDate,hasLead
r1,c1,bridge,1500000,300000,active,2026-01-12,2026-04-02,false`

	rounds, err := parseRounds(csv)
	require.NoError(t, err)
	require.Len(t, rounds, 1)

	round := rounds[0]
	assert.Equal(t, "c1", round.CompanyID)
	assert.Equal(t, "bridge", round.RoundType)
	assert.Equal(t, 1500000.0, round.TargetAmount)
	assert.Equal(t, 300000.0, round.RaisedAmount)
	assert.Equal(t, domain.RoundStatusActive, round.Status)
	assert.False(t, round.HasLead)
	require.NotNil(t, round.StartedAt)
	require.NotNil(t, round.TargetCloseDate)
}

func TestParseGoals(t *testing.T) {
	csv := `id,company_id,goalType,title,targetValue,currentValue,targetDate,status,priority
g1,c1,revenue,Reach $100k MRR,100000,61000,,at_risk,high`

	goals, err := parseGoals(csv)
	require.NoError(t, err)
	require.Len(t, goals, 1)

	goal := goals[0]
	assert.Equal(t, "Reach $100k MRR", goal.Title)
	assert.Equal(t, 100000.0, goal.TargetValue)
	assert.Equal(t, 61000.0, goal.CurrentValue)
	assert.Nil(t, goal.TargetDate)
	assert.Equal(t, domain.GoalStatusAtRisk, goal.Status)
	assert.True(t, goal.IsTracked())
}

func TestParseDeals(t *testing.T) {
	csv := `id,round_id,firm_id,stage,checkSize,isLead,lastContactAt,nextAction,nextActionDue
d1,r1,f1,term_sheet,250000,true,2026-03-01,Send updated deck,2026-03-20`

	deals, err := parseDeals(csv)
	require.NoError(t, err)
	require.Len(t, deals, 1)

	deal := deals[0]
	assert.Equal(t, "r1", deal.RoundID)
	assert.Equal(t, "f1", deal.FirmID)
	assert.True(t, deal.IsLead)
	require.NotNil(t, deal.CheckSize)
	assert.Equal(t, 250000.0, *deal.CheckSize)
	assert.Equal(t, "Send updated deck", deal.NextAction)
}

func TestParseFirmsEPeople(t *testing.T) {
	firms, err := parseFirms(`id,name,firmType,typicalCheckMin,typicalCheckMax
f1,Alpine Ventures,vc,100000,2000000`)
	require.NoError(t, err)
	require.Len(t, firms, 1)
	assert.Equal(t, "Alpine Ventures", firms[0].Name)
	require.NotNil(t, firms[0].TypicalCheckMax)
	assert.Equal(t, 2000000.0, *firms[0].TypicalCheckMax)

	people, err := parsePeople(`id,firstName,lastName,email,role,firm_id,lastContactedAt
p1,Ana,Souza,ana@alpine.vc,partner,f1,2026-03-01`)
	require.NoError(t, err)
	require.Len(t, people, 1)
	assert.Equal(t, "Ana", people[0].FirstName)
	assert.Equal(t, "f1", people[0].FirmID)
	require.NotNil(t, people[0].LastContactedAt)
}
