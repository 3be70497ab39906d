package mux

import (
	"bytes"
	"encoding/json"
	"io"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertDo(t *testing.T, req *http.Request, respObj interface{}, statusCode int) *http.Response {
	t.Helper()

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Error(err)
		return nil
	}
	defer resp.Body.Close()

	if statusCode != resp.StatusCode {
		b, _ := ioutil.ReadAll(resp.Body)
		t.Log(string(b))
		assert.Equal(t, statusCode, resp.StatusCode)
		return nil
	}

	if respObj != nil {
		if err := json.NewDecoder(resp.Body).Decode(respObj); err != nil {
			t.Error(err)
			return nil
		}
	}

	return resp
}

func assertGet(t *testing.T, ts *httptest.Server, path string, respObj interface{}, statusCode int) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	if err != nil {
		t.Error(err)
		return
	}

	_ = assertDo(t, req, respObj, statusCode)
}

func assertPost(t *testing.T, ts *httptest.Server, path string, payload interface{}, respObj interface{}, statusCode int) {
	t.Helper()

	var body io.Reader
	switch val := payload.(type) {
	case nil:
	case string:
		body = strings.NewReader(val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			t.Error(err)
			return
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(http.MethodPost, ts.URL+path, body)
	if err != nil {
		t.Error(err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	_ = assertDo(t, req, respObj, statusCode)
}

func TestWriteJSONError(t *testing.T) {
	a := assert.New(t)

	rr := httptest.NewRecorder()
	writeJSONError(rr, http.StatusBadRequest, assert.AnError)

	a.Equal(http.StatusBadRequest, rr.Code)
	a.Equal("application/json", rr.Header().Get("Content-Type"))

	var er errorResponse
	a.NoError(json.NewDecoder(rr.Body).Decode(&er))
	a.Equal(assert.AnError.Error(), er.Message)
	a.Equal(http.StatusBadRequest, er.StatusCode)

	// 5xx errors never leak their message
	rr = httptest.NewRecorder()
	writeJSONError(rr, http.StatusInternalServerError, assert.AnError)
	a.NoError(json.NewDecoder(rr.Body).Decode(&er))
	a.Equal("Internal Server Error", er.Message)
}

func TestDecodeRequest_badContentType(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "text/plain")

	var payload struct{}
	assert.False(t, decodeRequest(rr, req, &payload))
	assert.Equal(t, http.StatusUnsupportedMediaType, rr.Code)
}
