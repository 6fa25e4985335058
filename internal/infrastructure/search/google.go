// Package search integrates the Google Custom Search Engine API to find
// public LinkedIn-style profiles for a role/skill query.
package search

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"careercatalyst/internal/config"
	"careercatalyst/internal/domain/career"

	"github.com/go-resty/resty/v2"
)

const defaultBaseURL = "https://www.googleapis.com/customsearch/v1"

type GoogleClient struct {
	http     *resty.Client
	apiKey   string
	engineID string
}

func NewGoogleClient(cfg config.SearchConfig) *GoogleClient {
	return &GoogleClient{
		http:     resty.New().SetBaseURL(defaultBaseURL),
		apiKey:   cfg.APIKey,
		engineID: cfg.EngineID,
	}
}

// WithBaseURL points the client at a different endpoint. Used by tests.
func (c *GoogleClient) WithBaseURL(u string) *GoogleClient {
	c.http.SetBaseURL(u)
	return c
}

type searchResponse struct {
	Items []searchItem `json:"items"`
}

type searchItem struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
	Pagemap struct {
		CSEThumbnail []struct {
			Src string `json:"src"`
		} `json:"cse_thumbnail"`
	} `json:"pagemap"`
}

type searchError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// FindProfiles runs a site-restricted search and reshapes the raw hits.
// Zero results is an empty slice, not an error.
func (c *GoogleClient) FindProfiles(ctx context.Context, query string) ([]career.ProfileHit, error) {
	var body searchResponse
	var apiErr searchError

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"key": c.apiKey,
			"cx":  c.engineID,
			"q":   "site:linkedin.com/in/ " + query,
			"num": "5",
		}).
		SetResult(&body).
		SetError(&apiErr).
		Get("")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		msg := apiErr.Error.Message
		if msg == "" {
			msg = resp.Status()
		}
		return nil, fmt.Errorf("profile search failed: %s", msg)
	}

	hits := make([]career.ProfileHit, 0, len(body.Items))
	for _, item := range body.Items {
		hits = append(hits, reshapeItem(item))
	}

	slog.Info("profile search completed",
		"component", "search",
		"query", query,
		"results", len(hits))

	return hits, nil
}

// reshapeItem strips the known LinkedIn boilerplate from a raw search hit.
// Titles usually read "Name - Position - Company | LinkedIn".
func reshapeItem(item searchItem) career.ProfileHit {
	title := strings.TrimSuffix(item.Title, " | LinkedIn")
	parts := strings.Split(title, " - ")

	hit := career.ProfileHit{
		Name:       strings.TrimSpace(parts[0]),
		Title:      "Position not specified",
		Company:    "Company not specified",
		ProfileURL: item.Link,
	}
	if len(parts) > 1 && strings.TrimSpace(parts[1]) != "" {
		hit.Title = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 && strings.TrimSpace(parts[2]) != "" {
		hit.Company = strings.TrimSpace(parts[2])
	}

	snippet := strings.ReplaceAll(item.Snippet, " | LinkedIn", "")
	snippet = strings.ReplaceAll(snippet, "View profile on LinkedIn.", "")
	hit.Description = strings.TrimSpace(snippet)

	if len(item.Pagemap.CSEThumbnail) > 0 {
		hit.ThumbnailURL = item.Pagemap.CSEThumbnail[0].Src
	}
	return hit
}
