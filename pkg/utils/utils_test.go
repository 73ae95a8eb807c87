package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundWithFourDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.2326, RoundWithFourDecimalPlace(50.0/215.0))
	assert.Equal(t, -0.3333, RoundWithFourDecimalPlace(-1.0/3.0))
	assert.Equal(t, 0.0, RoundWithFourDecimalPlace(0))
}

func TestSafeDivide(t *testing.T) {
	assert.Equal(t, 0.5, SafeDivide(1, 2))
	assert.Equal(t, 0.0, SafeDivide(10, 0))
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, SplitList(""))
	assert.Nil(t, SplitList("   "))
	assert.Equal(t, []string{"a", "b"}, SplitList(" a, ,b,"))
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-02-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), *date)

	_, err = ParseDate("01/02/2024")
	assert.Error(t, err)
}

func TestYesterday(t *testing.T) {
	now := time.Date(2024, 3, 1, 1, 15, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), Yesterday(now))
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)
	assert.Len(t, id, 12)
	assert.Regexp(t, "^[A-Za-z0-9]+$", id)
}
