package http_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/smartbin/internal/application/dto"
	"github.com/jhoicas/smartbin/internal/domain/entity"
)

type ledgerPage struct {
	Page    dto.PageResponse    `json:"page"`
	Records []entity.HashRecord `json:"records"`
}

func TestLedger_ListPaginado(t *testing.T) {
	app, _ := buildTestApp(t)
	for i := 0; i < 3; i++ {
		doJSON(t, app, http.MethodPost, "/api/wallet/buy", `{"amount": 1}`).Body.Close()
	}

	resp := doJSON(t, app, http.MethodGet, "/api/ledger", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var all ledgerPage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&all))
	resp.Body.Close()

	assert.Equal(t, 4, all.Page.Total)
	assert.Equal(t, 20, all.Page.Limit)
	require.Len(t, all.Records, 4)
	assert.Equal(t, "Genesis Block", all.Records[0].Payload)
	assert.Equal(t, "1 Bossard Coins added to customer's wallet.", all.Records[3].Payload)

	resp = doJSON(t, app, http.MethodGet, "/api/ledger?limit=2&offset=1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var page ledgerPage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	resp.Body.Close()

	require.Len(t, page.Records, 2)
	assert.Equal(t, 1, page.Records[0].Index)
	assert.Equal(t, 2, page.Records[1].Index)

	resp = doJSON(t, app, http.MethodGet, "/api/ledger?offset=50", "")
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	resp.Body.Close()
	assert.Empty(t, page.Records)
}

func TestLedger_Verify(t *testing.T) {
	app, _ := buildTestApp(t)
	doJSON(t, app, http.MethodPost, "/api/wallet/sell", `{"amount": 10}`).Body.Close()

	resp := doJSON(t, app, http.MethodGet, "/api/ledger/verify", "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["valid"])
	assert.Equal(t, float64(2), body["length"])
}
