package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"stockdash/customerrors"
	"stockdash/middleware"
	"stockdash/model"
	"stockdash/util"

	"github.com/PaesslerAG/jsonpath"
	"github.com/go-resty/resty/v2"
)

const (
	DefaultFmpBaseURL = "https://financialmodelingprep.com"
	gainersPath       = "/api/v3/stock_market/gainers"
	articlesPath      = "/api/v3/fmp/articles"
	articlesContent   = "$.content"
)

// FmpClient talks to Financial Modeling Prep for the gainers ranking and
// the market articles feed.
type FmpClient struct {
	client *resty.Client
	apiKey string
}

func NewFmpClient(baseURL, apiKey string) *FmpClient {
	if baseURL == "" {
		baseURL = DefaultFmpBaseURL
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
	client.OnAfterResponse(middleware.DecompressResponse)

	return &FmpClient{client: client, apiKey: apiKey}
}

func (c *FmpClient) GetGainers(ctx context.Context) ([]model.FmpGainer, error) {
	doc, err := c.getJSON(ctx, gainersPath, nil)
	if err != nil {
		return nil, err
	}

	rows, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("gainers response is %T, want a list", doc)
	}

	gainers := make([]model.FmpGainer, 0, len(rows))
	if err := util.DecodeLoose(rows, &gainers); err != nil {
		return nil, fmt.Errorf("gainers decode error: %w", err)
	}
	return gainers, nil
}

func (c *FmpClient) GetArticles(ctx context.Context, page, size int) ([]model.FmpArticle, error) {
	doc, err := c.getJSON(ctx, articlesPath, map[string]string{
		"page": strconv.Itoa(page),
		"size": strconv.Itoa(size),
	})
	if err != nil {
		return nil, err
	}

	content, err := jsonpath.Get(articlesContent, doc)
	if err != nil {
		return nil, fmt.Errorf("articles response has no %s: %w", articlesContent, err)
	}

	articles := make([]model.FmpArticle, 0)
	if err := util.DecodeLoose(content, &articles); err != nil {
		return nil, fmt.Errorf("articles decode error: %w", err)
	}
	return articles, nil
}

func (c *FmpClient) getJSON(ctx context.Context, path string, params map[string]string) (any, error) {
	if c.apiKey == "" {
		return nil, customerrors.ErrMissingAPIKey
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetQueryParam("apikey", c.apiKey).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("fmp request %s failed: %w", path, err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("fmp %s: %w (status %d)", path, customerrors.ErrProviderStatus, resp.StatusCode())
	}

	var doc any
	if err := json.Unmarshal(resp.Body(), &doc); err != nil {
		return nil, fmt.Errorf("fmp %s decode error: %w", path, err)
	}
	return doc, nil
}
