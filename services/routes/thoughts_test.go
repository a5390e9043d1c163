package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/remivalade/MintMyMood/minter"
	"github.com/remivalade/MintMyMood/services/api"
	"github.com/remivalade/MintMyMood/services/utils"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

const testOwner = "0xAbCd000000000000000000000000000000001234"

func testRouter(t *testing.T) *mux.Router {
	t.Helper()
	m := minter.New(minter.NewMinterDB(testContext.DB()), nil, 0)

	muxRouter := mux.NewRouter()
	router := utils.NewDefaultRouter(muxRouter)
	AddThoughtRoutes(router, testContext, m)
	AddPreviewRoutes(router, testContext)
	AddStatsRoutes(router, testContext)
	return muxRouter
}

func doRequest(t *testing.T, router *mux.Router, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}
	request := httptest.NewRequest(method, path, reader)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func decodeThought(t *testing.T, recorder *httptest.ResponseRecorder) ThoughtResponse {
	t.Helper()
	var response api.ApiResponseWrapper[ThoughtResponse]
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.Equal(t, api.ApiResStatusOk, response.Status)
	return response.Data
}

func TestSaveAndListThoughts(t *testing.T) {
	router := testRouter(t)

	recorder := doRequest(t, router, http.MethodPost, "/thoughts/", SaveThoughtRequest{
		Owner: testOwner,
		Text:  "the rain finally stopped",
		Mood:  "peaceful",
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	saved := decodeThought(t, recorder)
	require.NotEmpty(t, saved.ID)
	require.Equal(t, "EPHEMERAL", saved.MintState)
	require.NotNil(t, saved.ExpiresAt)

	recorder = doRequest(t, router, http.MethodGet, "/thoughts/owner/"+testOwner, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var listResponse api.ApiResponseWrapper[ListThoughtsResponse]
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &listResponse))
	require.NotEmpty(t, listResponse.Data)
	found := false
	for _, thought := range listResponse.Data {
		if thought.ID == saved.ID {
			found = true
		}
	}
	require.True(t, found)
}

func TestSaveThoughtValidation(t *testing.T) {
	router := testRouter(t)

	recorder := doRequest(t, router, http.MethodPost, "/thoughts/", SaveThoughtRequest{
		Owner: "not-an-address",
		Text:  "hello",
		Mood:  "peaceful",
	})
	var response api.ApiResponseWrapper[any]
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.Equal(t, api.ApiResStatusRequestBodyError, response.Status)

	recorder = doRequest(t, router, http.MethodPost, "/thoughts/", SaveThoughtRequest{
		Owner: testOwner,
		Text:  "hello",
		Mood:  "furious",
	})
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.Equal(t, api.ApiResStatusRequestBodyError, response.Status)
}

func TestListMoods(t *testing.T) {
	router := testRouter(t)

	recorder := doRequest(t, router, http.MethodGet, "/thoughts/moods", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var response api.ApiResponseWrapper[ListMoodsResponse]
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.Equal(t, api.ApiResStatusOk, response.Status)
	require.Len(t, response.Data, 8)
	require.Equal(t, "peaceful", response.Data[0].Mood)
	for _, mood := range response.Data {
		require.NotEmpty(t, mood.Glyph)
	}
}

func TestDeleteThought(t *testing.T) {
	router := testRouter(t)

	recorder := doRequest(t, router, http.MethodPost, "/thoughts/", SaveThoughtRequest{
		Owner: testOwner,
		Text:  "delete me",
		Mood:  "melancholic",
	})
	saved := decodeThought(t, recorder)

	recorder = doRequest(t, router, http.MethodDelete, "/thoughts/"+saved.ID, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = doRequest(t, router, http.MethodDelete, "/thoughts/"+saved.ID, nil)
	require.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestUserStatsRoute(t *testing.T) {
	router := testRouter(t)

	doRequest(t, router, http.MethodPost, "/thoughts/", SaveThoughtRequest{
		Owner: "0x7777000000000000000000000000000000007777",
		Text:  "counted",
		Mood:  "inspired",
	})

	recorder := doRequest(t, router, http.MethodGet, "/stats/0x7777000000000000000000000000000000007777", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var response struct {
		Status api.ApiResStatusEnum `json:"status"`
		Data   struct {
			TotalThoughts     int64 `json:"totalThoughts"`
			EphemeralThoughts int64 `json:"ephemeralThoughts"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.Equal(t, api.ApiResStatusOk, response.Status)
	require.EqualValues(t, 1, response.Data.TotalThoughts)
	require.EqualValues(t, 1, response.Data.EphemeralThoughts)
}
