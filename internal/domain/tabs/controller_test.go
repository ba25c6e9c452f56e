package tabs

import (
	"strconv"
	"testing"
	"time"

	"pet-health-log/internal/domain/logs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_DefaultIsFirstDeclaredTab(t *testing.T) {
	c := NewController()
	assert.Equal(t, WeightLogs, c.Active())
	assert.Equal(t, All[0].ID, Default())
}

func TestController_Select(t *testing.T) {
	c := NewController()

	changed, err := c.Select(VetVisits)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, VetVisits, c.Active())

	// idempotente
	changed, err = c.Select(VetVisits)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, VetVisits, c.Active())

	// desconocido => rechazado, estado intacto
	changed, err = c.Select(Tab("Medications"))
	assert.ErrorIs(t, err, ErrUnknownTab)
	assert.False(t, changed)
	assert.Equal(t, VetVisits, c.Active())
}

func TestParse(t *testing.T) {
	got, err := Parse("")
	require.NoError(t, err)
	assert.Equal(t, WeightLogs, got)

	got, err = Parse(" Body_Condition ")
	require.NoError(t, err)
	assert.Equal(t, BodyCondition, got)

	_, err = Parse("weight_logs")
	assert.ErrorIs(t, err, ErrUnknownTab)
}

func TestTab_Name(t *testing.T) {
	assert.Equal(t, "Weight Logs", WeightLogs.Name())
	assert.Equal(t, "Vet Visits", VetVisits.Name())
	assert.Empty(t, Tab("Medications").Name())
}

func TestProject_WeightLogs_LabelKeepsExactWeight(t *testing.T) {
	c := NewController(WithLocation(time.UTC))
	weights := []logs.WeightLog{
		{ID: "w1", Date: "2024-06-15", Weight: 12.375},
		{ID: "w2", Date: "2024-06-01T10:00:00Z", Weight: 8},
		{ID: "w3", Date: "", Weight: 0.1},
	}

	p := c.Project(weights, nil, nil)

	require.False(t, p.Empty)
	require.Len(t, p.Rows, 3)
	assert.Equal(t, "Weight: 12.375Kg", p.Rows[0].Label)
	assert.Equal(t, "Date: 6/15/2024", p.Rows[0].DateLabel)
	assert.Equal(t, "Weight: 8Kg", p.Rows[1].Label)
	assert.Equal(t, "Date: 6/1/2024", p.Rows[1].DateLabel)
	assert.Equal(t, "Date: Invalid Date", p.Rows[2].DateLabel)

	for i, r := range p.Rows {
		assert.Contains(t, r.Label, strconv.FormatFloat(weights[i].Weight, 'f', -1, 64))
	}
}

func TestProject_BodyCondition(t *testing.T) {
	c := NewController(WithLocation(time.UTC))
	_, err := c.Select(BodyCondition)
	require.NoError(t, err)

	p := c.Project(nil, []logs.BodyConditionLog{{ID: "b1", Date: "2024-02-29", BodyCondition: "ideal"}}, nil)
	require.Len(t, p.Rows, 1)
	assert.Equal(t, Row{ID: "b1", Label: "ideal", DateLabel: "Date: 2/29/2024"}, p.Rows[0])
	assert.False(t, p.CanAddVisit)
}

func TestProject_EmptyIsExplicitState(t *testing.T) {
	c := NewController()
	for _, tab := range All {
		_, err := c.Select(tab.ID)
		require.NoError(t, err)

		p := c.Project(nil, nil, nil)
		assert.True(t, p.Empty, tab.ID)
		assert.Equal(t, MessageNoLogs, p.EmptyMessage, tab.ID)
	}
}

func TestProject_VetVisits_RawWithAddTrigger(t *testing.T) {
	calls := 0
	c := NewController(WithAddVisit(func() { calls++ }))
	_, err := c.Select(VetVisits)
	require.NoError(t, err)

	visits := []logs.VetVisitLog{{ID: "v1", Date: "2024-06-01", Notes: "checkup"}}
	p := c.Project(nil, nil, visits)

	assert.Equal(t, visits, p.VetVisits)
	assert.Nil(t, p.Rows)
	assert.True(t, p.CanAddVisit)

	c.TriggerAddVisit()
	assert.Equal(t, 1, calls)
}

func TestTriggerAddVisit_WithoutCallbackIsNoop(t *testing.T) {
	c := NewController()
	assert.NotPanics(t, c.TriggerAddVisit)
}
