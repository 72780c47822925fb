package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardPage(t *testing.T) {
	var gotQuery, gotAuth, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[{"id":3,"title":"hello"}],"curPage":2,"totalCounts":11,"totalPages":2}`))
	}))
	defer srv.Close()

	c := New(srv.URL+"/", "tok")
	obj, err := c.BoardPage(context.Background(), 5, "공지 사항", 2)

	require.NoError(t, err)
	assert.Equal(t, "/api/boards/5/posts", gotPath)
	assert.Equal(t, "keyword=%EA%B3%B5%EC%A7%80+%EC%82%AC%ED%95%AD&page=2", gotQuery)
	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Equal(t, 2, obj.CurPage)
	assert.Equal(t, 2, obj.TotalPages)
	require.Len(t, obj.Results, 1)
	assert.Equal(t, "hello", obj.Results[0].Title)
}

func TestBoardPageEmptyResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"curPage":1,"totalCounts":0,"totalPages":0}`))
	}))
	defer srv.Close()

	obj, err := New(srv.URL, "").BoardPage(context.Background(), 5, "", 1)

	require.NoError(t, err)
	assert.NotNil(t, obj.Results)
	assert.Empty(t, obj.Results)
}

func TestBoardPageServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, "").BoardPage(context.Background(), 5, "", 1)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, "internal server error", apiErr.Message)
}
