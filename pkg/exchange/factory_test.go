package exchange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukimsanov/Crypto-List/pkg/types"
)

func TestNew(t *testing.T) {
	ex, err := New(types.ExchangeKraken)
	require.NoError(t, err)
	assert.Equal(t, types.ExchangeKraken, ex.Name())

	// kraken is the default upstream
	ex, err = New("")
	require.NoError(t, err)
	assert.Equal(t, types.ExchangeKraken, ex.Name())

	ex, err = New(types.ExchangeBinance)
	require.NoError(t, err)
	assert.Equal(t, types.ExchangeBinance, ex.Name())

	_, err = New("coinbase")
	assert.Error(t, err)
}
