package detector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuite_OrderAndNames(t *testing.T) {
	suite := Suite()
	require.Len(t, suite, 6)

	var names []string
	for _, d := range suite {
		names = append(names, d.Name())
	}
	assert.Equal(t, []string{
		"missing-file",
		"duplicated-failed-file",
		"unexpected-empty-file",
		"volume-variation",
		"late-upload",
		"previous-file",
	}, names)
}

func TestMatchEntity(t *testing.T) {
	entities := []string{"ACME", "POS"}

	e, ok := matchEntity(entities, "12_m_ACME_settlement.csv")
	require.True(t, ok)
	assert.Equal(t, "ACME", e)

	// Token must be underscore-delimited.
	_, ok = matchEntity(entities, "12_mACMEx_settlement.csv")
	assert.False(t, ok)

	_, ok = matchEntity(nil, "12_m_ACME_settlement.csv")
	assert.False(t, ok)
}
