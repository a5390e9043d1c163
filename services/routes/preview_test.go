package routes

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/remivalade/MintMyMood/database"
	"github.com/remivalade/MintMyMood/services/api"

	"github.com/stretchr/testify/require"
)

func TestPreviewCard(t *testing.T) {
	router := testRouter(t)

	recorder := doRequest(t, router, http.MethodPost, "/cards/preview", PreviewRequest{
		Text:    "a quiet morning",
		Mood:    "peaceful",
		ChainID: 8453,
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var response api.ApiResponseWrapper[PreviewResponse]
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.Equal(t, api.ApiResStatusOk, response.Status)
	require.True(t, strings.HasPrefix(response.Data.SVG, "<svg "))
	require.Contains(t, response.Data.SVG, "a quiet morning")

	// Identical requests render identical cards
	second := doRequest(t, router, http.MethodPost, "/cards/preview", PreviewRequest{
		Text:    "a quiet morning",
		Mood:    "peaceful",
		ChainID: 8453,
	})
	var secondResponse api.ApiResponseWrapper[PreviewResponse]
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &secondResponse))
	require.Equal(t, response.Data.SVG, secondResponse.Data.SVG)
}

func TestPreviewCardValidation(t *testing.T) {
	router := testRouter(t)

	recorder := doRequest(t, router, http.MethodPost, "/cards/preview", PreviewRequest{
		Text: strings.Repeat("a", 401),
		Mood: "peaceful",
	})
	var response api.ApiResponseWrapper[any]
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.Equal(t, api.ApiResStatusRequestBodyError, response.Status)
}

func TestThoughtCardRoute(t *testing.T) {
	router := testRouter(t)

	recorder := doRequest(t, router, http.MethodPost, "/thoughts/", SaveThoughtRequest{
		Owner: testOwner,
		Text:  "card me",
		Mood:  "dreamy",
	})
	saved := decodeThought(t, recorder)

	recorder = doRequest(t, router, http.MethodGet, "/cards/"+saved.ID+"/svg", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, "image/svg+xml", recorder.Header().Get("Content-Type"))
	require.Contains(t, recorder.Body.String(), "card me")
	// Unminted thoughts render with the classic cream skin
	require.Contains(t, recorder.Body.String(), "#f6eee3")

	recorder = doRequest(t, router, http.MethodGet, "/cards/missing/svg", nil)
	require.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestThoughtCardRouteMinted(t *testing.T) {
	router := testRouter(t)

	recorder := doRequest(t, router, http.MethodPost, "/thoughts/", SaveThoughtRequest{
		Owner: testOwner,
		Text:  "minted card",
		Mood:  "inspired",
	})
	saved := decodeThought(t, recorder)

	require.NoError(t, database.FinalizeThoughtMint(testContext.DB(), &database.FinalizeThoughtMintInput{
		ThoughtID:       saved.ID,
		ChainID:         84532,
		TokenID:         "9",
		ContractAddress: "0x1111111111111111111111111111111111111111",
		TxHash:          "0xabab",
		BlockNumber:     424242,
	}))

	recorder = doRequest(t, router, http.MethodGet, "/cards/"+saved.ID+"/svg", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	// Minted thoughts carry their chain skin and the block badge
	require.Contains(t, recorder.Body.String(), "grain-filter-base")
	require.Contains(t, recorder.Body.String(), "#424242")
}
