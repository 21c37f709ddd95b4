package money_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smt-joen/plunet2peppol/internal/money"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "125", money.Format(125))
	assert.Equal(t, "1234.5", money.Format(1234.5))
	assert.Equal(t, "0", money.Format(0))
	assert.Equal(t, "NaN", money.Format(math.NaN()))
}

func TestFormatFixed2(t *testing.T) {
	assert.Equal(t, "25.00", money.FormatFixed2(25))
	assert.Equal(t, "21.20", money.FormatFixed2(21.2))
	assert.Equal(t, "NaN", money.FormatFixed2(math.NaN()))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 33.33, money.Round2(100.0/3.0))
	assert.Equal(t, 50.0, money.Round2(50))
	assert.True(t, math.IsNaN(money.Round2(math.NaN())))
}
