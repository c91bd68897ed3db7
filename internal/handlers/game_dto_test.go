package handlers

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCreateAutoplayDTO(t *testing.T) {
	t.Parallel()

	query, err := url.ParseQuery("height=9&width=9&mine_count=10&extra=1")
	require.NoError(t, err)

	dto, err := ParseCreateAutoplayDTO(query)
	require.NoError(t, err)
	assert.Equal(t, CreateAutoplayDTO{Height: 9, Width: 9, MineCount: 10}, dto)

	_, err = ParseCreateAutoplayDTO(url.Values{"height": {"9"}})
	assert.Error(t, err, "width and mine_count are required")
}
