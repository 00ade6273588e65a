package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/oapi-codegen/runtime"
)

const (
	DefaultServer = "https://api.themoviedb.org/3"

	// ImageBaseURL is the prefix of every image URL; append a size and the relative path
	ImageBaseURL = "https://image.tmdb.org/t/p"
)

// Kind is the media type segment of TMDB paths
type Kind string

const (
	KindMovie Kind = "movie"
	KindTV    Kind = "tv"
)

// ListName is a curated TMDB list
type ListName string

const (
	ListTrending ListName = "trending"
	ListPopular  ListName = "popular"
	ListTopRated ListName = "top_rated"
)

var (
	ErrInvalidKind = errors.New("invalid media type")
	ErrInvalidList = errors.New("invalid list")
)

// ParseKind accepts movie and tv. series is an alias of tv.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "movie":
		return KindMovie, nil
	case "tv", "series":
		return KindTV, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidKind, s)
	}
}

func ParseListName(s string) (ListName, error) {
	switch l := ListName(s); l {
	case ListTrending, ListPopular, ListTopRated:
		return l, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidList, s)
	}
}

// StatusError is returned for any non-success response. Message is TMDB's status_message when
// the body carried one.
type StatusError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("tmdb returned %d: %s", e.StatusCode, e.Message)
}

// Media is the subset of a TMDB movie or tv result this service reads
type Media struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Name         string   `json:"name"`
	Overview     string   `json:"overview"`
	PosterPath   *string  `json:"poster_path"`
	BackdropPath *string  `json:"backdrop_path"`
	VoteAverage  *float64 `json:"vote_average"`
	ReleaseDate  string   `json:"release_date"`
	FirstAirDate string   `json:"first_air_date"`
}

type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type MediaDetails struct {
	Media
	Genres []Genre `json:"genres"`
}

type SearchMediaResponse struct {
	Page         int     `json:"page"`
	Results      []Media `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

type errorResponse struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
}

func parseMediaDetailsResponse(res *http.Response) (*MediaDetails, error) {
	if err := checkStatus(res); err != nil {
		return nil, err
	}

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	details := new(MediaDetails)
	if err := json.Unmarshal(b, details); err != nil {
		return nil, err
	}

	if details.ID == 0 {
		return nil, errors.New("details response is missing an id")
	}

	return details, nil
}

func parseSearchMediaResponse(res *http.Response) (*SearchMediaResponse, error) {
	if err := checkStatus(res); err != nil {
		return nil, err
	}

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	results := new(SearchMediaResponse)
	if err := json.Unmarshal(b, results); err != nil {
		return nil, err
	}

	return results, nil
}

func checkStatus(res *http.Response) error {
	if res.StatusCode >= 200 && res.StatusCode < 300 {
		return nil
	}

	statusErr := &StatusError{StatusCode: res.StatusCode, Message: res.Status}

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return statusErr
	}

	var body errorResponse
	if json.Unmarshal(b, &body) == nil && body.StatusMessage != "" {
		statusErr.Code = body.StatusCode
		statusErr.Message = body.StatusMessage
	}

	return statusErr
}

func pathParam(name string, value any) (string, error) {
	return runtime.StyleParamWithLocation("simple", false, name, runtime.ParamLocationPath, value)
}

func buildURL(server string, segments ...string) (*url.URL, error) {
	base, err := url.Parse(strings.TrimSuffix(server, "/"))
	if err != nil {
		return nil, err
	}

	return base.JoinPath(segments...), nil
}

// SetRequestAPIKey authenticates requests with the v3 api_key query parameter and asks for
// English results
func SetRequestAPIKey(apiKey string) RequestEditorFn {
	return func(ctx context.Context, req *http.Request) error {
		q := req.URL.Query()
		q.Set("api_key", apiKey)
		q.Set("language", "en-US")
		req.URL.RawQuery = q.Encode()
		req.Header.Set("accept", "application/json")
		return nil
	}
}
