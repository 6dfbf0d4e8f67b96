package memos

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListMemos(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/memos", r.URL.Path)
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))
		assert.Equal(t, "NORMAL", r.URL.Query().Get("rowStatus"))
		assert.Equal(t, "100", r.URL.Query().Get("limit"))

		fmt.Fprint(w, `{"memos":[{"name":"memos/1","content":"hello","visibility":"PRIVATE","createTime":"2024-03-15T10:30:00Z"}],"nextPageToken":"abc"}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/api/v1", "token-1")
	page, err := c.ListMemos(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, page.Memos, 1)
	assert.Equal(t, "memos/1", page.Memos[0].Name)
	assert.Equal(t, "abc", page.NextPageToken)
}

func TestListMemos_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"message":"invalid token"}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/api/v1", "bad")
	_, err := c.ListMemos(context.Background(), "")

	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, http.StatusUnauthorized, te.Status)
	assert.Contains(t, te.Body, "invalid token")
}

func TestListMemos_FormatError(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "<html>gateway error</html>"},
		{"missing memos array", `{"data":[]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, tt.body)
			}))
			defer srv.Close()

			c := NewClient(srv.URL+"/api/v1", "t")
			_, err := c.ListMemos(context.Background(), "")

			var fe *FormatError
			require.ErrorAs(t, err, &fe)
			assert.Contains(t, fe.Body, tt.body[:6])
		})
	}
}

func TestFetchAll_RejectsUnversionedURL(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "t")
	_, err := c.FetchAll(context.Background(), 10)
	assert.ErrorIs(t, err, ErrInvalidAPIURL)
	assert.Zero(t, hits, "must fail before any network call")
}

func TestListMemos_HostUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // now unreachable

	c := NewClient(srv.URL+"/api/v1", "t")
	_, err := c.ListMemos(context.Background(), "")
	require.ErrorIs(t, err, ErrHostUnreachable)
	assert.Contains(t, err.Error(), srv.URL)
}

func TestDownloadResource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/file/resources/r1/photo%20day.jpg", r.URL.EscapedPath())
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write([]byte{0xff, 0xd8})
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/api/v1", "t")
	data, cType, err := c.DownloadResource(context.Background(), "r1", "photo day.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xff, 0xd8}, data)
	assert.Equal(t, "image/jpeg", cType)
}

func TestDownloadResource_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/api/v1", "t")
	_, _, err := c.DownloadResource(context.Background(), "r1", "gone.pdf")

	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, http.StatusNotFound, te.Status)
}
