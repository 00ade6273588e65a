package tmdb

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	mhttp "github.com/kasuboski/cineprime/pkg/http"
)

// RequestEditorFn is the function signature for the RequestEditor callback function
type RequestEditorFn func(ctx context.Context, req *http.Request) error

// ClientInterface is the part of the TMDB v3 API used for metadata lookups
type ClientInterface interface {
	SearchMedia(ctx context.Context, kind Kind, query string) (*SearchMediaResponse, error)
	MediaDetails(ctx context.Context, kind Kind, id int) (*MediaDetails, error)
	MediaList(ctx context.Context, kind Kind, list ListName) (*SearchMediaResponse, error)
}

type Client struct {
	// The endpoint of the server conforming to this interface, with scheme,
	// https://api.themoviedb.org/3 for example.
	Server string

	Client mhttp.HTTPClient

	RequestEditors []RequestEditorFn
}

// ClientOption allows setting custom parameters during construction
type ClientOption func(*Client) error

var _ ClientInterface = (*Client)(nil)

// NewClient creates a new Client, with reasonable defaults
func NewClient(server string, opts ...ClientOption) (*Client, error) {
	client := Client{
		Server: server,
	}

	for _, o := range opts {
		if err := o(&client); err != nil {
			return nil, err
		}
	}

	if client.Server == "" {
		client.Server = DefaultServer
	}

	if client.Client == nil {
		client.Client = mhttp.NewRateLimitedHTTPClient()
	}

	return &client, nil
}

// WithHTTPClient allows overriding the default Doer
func WithHTTPClient(doer mhttp.HTTPClient) ClientOption {
	return func(c *Client) error {
		c.Client = doer
		return nil
	}
}

// WithRequestEditorFn allows setting up a callback function, which will be
// called right before sending the request
func WithRequestEditorFn(fn RequestEditorFn) ClientOption {
	return func(c *Client) error {
		c.RequestEditors = append(c.RequestEditors, fn)
		return nil
	}
}

// SearchMedia searches movies or tv shows by free text. Only the first page is requested.
func (c *Client) SearchMedia(ctx context.Context, kind Kind, query string) (*SearchMediaResponse, error) {
	u, err := buildURL(c.Server, "search", string(kind))
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("query", query)
	q.Set("page", "1")
	u.RawQuery = q.Encode()

	res, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	return parseSearchMediaResponse(res)
}

// MediaDetails gets a single movie or tv show
func (c *Client) MediaDetails(ctx context.Context, kind Kind, id int) (*MediaDetails, error) {
	pathID, err := pathParam("id", id)
	if err != nil {
		return nil, err
	}

	u, err := buildURL(c.Server, string(kind), pathID)
	if err != nil {
		return nil, err
	}

	res, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	return parseMediaDetailsResponse(res)
}

// MediaList gets the first page of a curated list. Trending uses the weekly window.
func (c *Client) MediaList(ctx context.Context, kind Kind, list ListName) (*SearchMediaResponse, error) {
	var segments []string
	switch list {
	case ListTrending:
		segments = []string{"trending", string(kind), "week"}
	case ListPopular, ListTopRated:
		segments = []string{string(kind), string(list)}
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidList, list)
	}

	u, err := buildURL(c.Server, segments...)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("page", strconv.Itoa(1))
	u.RawQuery = q.Encode()

	res, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	return parseSearchMediaResponse(res)
}

func (c *Client) get(ctx context.Context, u *url.URL) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	for _, r := range c.RequestEditors {
		if err := r(ctx, req); err != nil {
			return nil, err
		}
	}

	return c.Client.Do(req)
}
