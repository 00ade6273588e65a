package tmdb

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMediaDetailsResponse(t *testing.T) {
	// Test setup
	t.Run("Test successful response", func(t *testing.T) {
		res := &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(bytes.NewBuffer([]byte(`{"id": 1, "adult": false, "backdrop_path": "/path/to/backdrop"}`))),
		}

		results, err := parseMediaDetailsResponse(res)
		assert.NoError(t, err)
		require.NotNil(t, results)
		assert.Equal(t, 1, results.ID)
		assert.Equal(t, "/path/to/backdrop", *results.BackdropPath)
		assert.Nil(t, results.PosterPath)
	})

	t.Run("Test response with status code other than 200", func(t *testing.T) {
		res := &http.Response{
			StatusCode: http.StatusNotFound,
			Body:       io.NopCloser(bytes.NewBuffer([]byte(`{"error": "not found"}`))),
		}

		_, err := parseMediaDetailsResponse(res)
		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	})

	t.Run("Test status message is surfaced", func(t *testing.T) {
		res := &http.Response{
			StatusCode: http.StatusUnauthorized,
			Status:     "401 Unauthorized",
			Body:       io.NopCloser(bytes.NewBuffer([]byte(`{"status_code":7,"status_message":"Invalid API key: You must be granted a valid key.","success":false}`))),
		}

		_, err := parseMediaDetailsResponse(res)
		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, 7, statusErr.Code)
		assert.Equal(t, "Invalid API key: You must be granted a valid key.", statusErr.Message)
	})

	// Test edge cases
	t.Run("Test empty response body", func(t *testing.T) {
		res := &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(bytes.NewBuffer([]byte(`{}`))),
		}

		_, err := parseMediaDetailsResponse(res)
		assert.Error(t, err)
	})

	// Test invalid JSON response
	t.Run("Test response with invalid JSON", func(t *testing.T) {
		res := &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(bytes.NewBuffer([]byte(`{"a": 1, "b": 2}`))),
		}

		_, err := parseMediaDetailsResponse(res)
		assert.Error(t, err)
	})

	// Test unmarshalling large JSON objects
	t.Run("Test response with very large JSON object", func(t *testing.T) {
		res := &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(bytes.NewBuffer([]byte(strings.Repeat("{\"key\":\"value\"}", 1000)))),
		}

		_, err := parseMediaDetailsResponse(res)
		assert.Error(t, err)
	})

	// Test nil response
	t.Run("Test nil response", func(t *testing.T) {
		res := &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(bytes.NewBuffer(nil)),
		}

		_, err := parseMediaDetailsResponse(res)
		assert.Error(t, err)
	})
}

func TestParseSearchMediaResponse(t *testing.T) {
	res := &http.Response{
		StatusCode: http.StatusOK,
		Body: io.NopCloser(strings.NewReader(`{"page":1,"results":[
			{"id":603,"title":"The Matrix","release_date":"1999-03-30","vote_average":8.2},
			{"id":1396,"name":"Breaking Bad","first_air_date":"2008-01-20","poster_path":"/bb.jpg"}
		],"total_pages":1,"total_results":2}`)),
	}

	results, err := parseSearchMediaResponse(res)
	require.NoError(t, err)
	require.Len(t, results.Results, 2)
	assert.Equal(t, "The Matrix", results.Results[0].Title)
	assert.Equal(t, 8.2, *results.Results[0].VoteAverage)
	assert.Equal(t, "Breaking Bad", results.Results[1].Name)
	assert.Nil(t, results.Results[1].VoteAverage)
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{in: "", want: KindMovie},
		{in: "movie", want: KindMovie},
		{in: "tv", want: KindTV},
		{in: "series", want: KindTV},
		{in: " TV ", want: KindTV},
		{in: "person", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidKind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseListName(t *testing.T) {
	for _, name := range []string{"trending", "popular", "top_rated"} {
		got, err := ParseListName(name)
		require.NoError(t, err)
		assert.Equal(t, ListName(name), got)
	}

	_, err := ParseListName("upcoming")
	assert.ErrorIs(t, err, ErrInvalidList)
}
