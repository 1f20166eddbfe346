package trekclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ListRegions returns every region.
func (c *Client) ListRegions(ctx context.Context) ([]Region, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/trekking", "", nil)
	if err != nil {
		return nil, err
	}

	var out []Region
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// ListAllTreks returns a summary of every trek across all regions.
func (c *Client) ListAllTreks(ctx context.Context) ([]TrekSummary, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/treks", "", nil)
	if err != nil {
		return nil, err
	}

	var out []TrekSummary
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// ListTreks returns the treks of a region.
func (c *Client) ListTreks(ctx context.Context, regionSlug string) ([]Trek, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/trekking/"+url.PathEscape(regionSlug), "", nil)
	if err != nil {
		return nil, err
	}

	var out []Trek
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// GetTrek returns a single trek.
func (c *Client) GetTrek(ctx context.Context, regionSlug, trekSlug string) (*Trek, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, trekPath(regionSlug, trekSlug), "", nil)
	if err != nil {
		return nil, err
	}

	var out Trek
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Search runs a free text trek search. A limit of 0 uses the server default.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]TrekSummary, error) {
	q := url.Values{"q": {query}}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	resp, err := c.doRequest(ctx, http.MethodGet, "/api/search?"+q.Encode(), "", nil)
	if err != nil {
		return nil, err
	}

	var out []TrekSummary
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func trekPath(regionSlug, trekSlug string) string {
	return "/api/trekking/" + url.PathEscape(regionSlug) + "/" + url.PathEscape(trekSlug)
}
