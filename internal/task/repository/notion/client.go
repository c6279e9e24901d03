package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://api.notion.com"
	notionVersion  = "2022-06-28"
)

// Client is the HTTP wrapper for the Notion REST API.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

// NewClient creates a new Notion HTTP client.
func NewClient(accessToken string) *Client {
	return &Client{
		baseURL:     defaultBaseURL,
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: 15 * time.Second},
	}
}

// SetBaseURL overrides the Notion API URL for testing purposes.
func (c *Client) SetBaseURL(url string) {
	c.baseURL = url
}

// SearchDatabase looks up a database by title via POST /v1/search.
// Returns the first database whose title matches exactly, or "" when absent.
func (c *Client) SearchDatabase(ctx context.Context, title string) (string, error) {
	req := searchRequest{
		Query:  title,
		Filter: searchFilter{Value: "database", Property: "object"},
	}

	var resp searchResponse
	if err := c.do(ctx, http.MethodPost, "/v1/search", req, &resp); err != nil {
		return "", fmt.Errorf("notion search failed: %w", err)
	}

	for _, r := range resp.Results {
		if r.Object == "database" && plainTitle(r.Title) == title {
			return r.ID, nil
		}
	}
	return "", nil
}

// CreateDatabase creates the task database with the canonical schema under
// the given parent page via POST /v1/databases.
func (c *Client) CreateDatabase(ctx context.Context, parentPageID, title string) (string, error) {
	req := createDatabaseRequest{
		Parent: parentRef{Type: "page_id", PageID: parentPageID},
		Title:  []richText{{Text: textContent{Content: title}}},
		Properties: map[string]any{
			"Name": map[string]any{"title": map[string]any{}},
			"Status": map[string]any{"select": map[string]any{
				"options": []map[string]string{{"name": "todo"}, {"name": "done"}},
			}},
			"Priority": map[string]any{"select": map[string]any{
				"options": []map[string]string{{"name": "high"}, {"name": "medium"}, {"name": "low"}},
			}},
			"Category": map[string]any{"select": map[string]any{
				"options": []map[string]string{
					{"name": "work"}, {"name": "personal"}, {"name": "shopping"},
					{"name": "email"}, {"name": "other"},
				},
			}},
			"Due": map[string]any{"date": map[string]any{}},
		},
	}

	var resp struct {
		ID string `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/v1/databases", req, &resp); err != nil {
		return "", fmt.Errorf("notion create database failed: %w", err)
	}
	return resp.ID, nil
}

// QueryDatabase lists pages of a database via POST /v1/databases/{id}/query.
// The filter body follows Notion's filter object format.
func (c *Client) QueryDatabase(ctx context.Context, databaseID string, filter map[string]any, pageSize int) ([]Page, error) {
	body := map[string]any{}
	if filter != nil {
		body["filter"] = filter
	}
	if pageSize > 0 {
		body["page_size"] = pageSize
	}

	var resp queryResponse
	path := fmt.Sprintf("/v1/databases/%s/query", databaseID)
	if err := c.do(ctx, http.MethodPost, path, body, &resp); err != nil {
		return nil, fmt.Errorf("notion query failed: %w", err)
	}
	return resp.Results, nil
}

// CreatePage inserts a row into a database via POST /v1/pages.
func (c *Client) CreatePage(ctx context.Context, databaseID string, props PageProperties) (*Page, error) {
	req := createPageRequest{
		Parent:     parentRef{DatabaseID: databaseID},
		Properties: props,
	}

	var page Page
	if err := c.do(ctx, http.MethodPost, "/v1/pages", req, &page); err != nil {
		return nil, fmt.Errorf("notion create page failed: %w", err)
	}
	return &page, nil
}

// UpdatePage patches page properties and/or the archived flag via
// PATCH /v1/pages/{id}.
func (c *Client) UpdatePage(ctx context.Context, pageID string, patch UpdatePageRequest) (*Page, error) {
	var page Page
	path := fmt.Sprintf("/v1/pages/%s", pageID)
	if err := c.do(ctx, http.MethodPatch, path, patch, &page); err != nil {
		return nil, fmt.Errorf("notion update page failed: %w", err)
	}
	return &page, nil
}

// do performs one JSON request/response round trip against the Notion API.
func (c *Client) do(ctx context.Context, method, path string, reqBody, respBody any) error {
	var body io.Reader
	if reqBody != nil {
		raw, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewBuffer(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.accessToken))
	httpReq.Header.Set("Notion-Version", notionVersion)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call notion API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		raw, _ := io.ReadAll(resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if respBody == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
		return fmt.Errorf("failed to decode notion response: %w", err)
	}
	return nil
}

// APIError is a non-2xx response from the Notion API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("notion API error %d: %s", e.StatusCode, e.Body)
}

// NotFound reports whether the error is a Notion 404.
func (e *APIError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// ---- Request/Response types scoped to this package ----

type searchRequest struct {
	Query  string       `json:"query"`
	Filter searchFilter `json:"filter"`
}

type searchFilter struct {
	Value    string `json:"value"`
	Property string `json:"property"`
}

type searchResponse struct {
	Results []searchResult `json:"results"`
}

type searchResult struct {
	Object string     `json:"object"`
	ID     string     `json:"id"`
	Title  []richText `json:"title"`
}

type createDatabaseRequest struct {
	Parent     parentRef      `json:"parent"`
	Title      []richText     `json:"title"`
	Properties map[string]any `json:"properties"`
}

type createPageRequest struct {
	Parent     parentRef      `json:"parent"`
	Properties PageProperties `json:"properties"`
}

type parentRef struct {
	Type       string `json:"type,omitempty"`
	PageID     string `json:"page_id,omitempty"`
	DatabaseID string `json:"database_id,omitempty"`
}

type queryResponse struct {
	Results []Page `json:"results"`
}

// Page is the Notion API page (database row) object.
type Page struct {
	ID          string         `json:"id"`
	CreatedTime string         `json:"created_time"`
	Archived    bool           `json:"archived"`
	Properties  PageProperties `json:"properties"`
}

// PageProperties maps the canonical task schema.
type PageProperties struct {
	Name     *TitleProperty  `json:"Name,omitempty"`
	Status   *SelectProperty `json:"Status,omitempty"`
	Priority *SelectProperty `json:"Priority,omitempty"`
	Category *SelectProperty `json:"Category,omitempty"`
	Due      *DateProperty   `json:"Due,omitempty"`
}

// UpdatePageRequest is the body for PATCH /v1/pages/{id}.
type UpdatePageRequest struct {
	Properties *PageProperties `json:"properties,omitempty"`
	Archived   *bool           `json:"archived,omitempty"`
}

// TitleProperty is a Notion title property value.
type TitleProperty struct {
	Title []richText `json:"title"`
}

// SelectProperty is a Notion select property value.
type SelectProperty struct {
	Select *SelectOption `json:"select"`
}

// SelectOption is one select choice.
type SelectOption struct {
	Name string `json:"name"`
}

// DateProperty is a Notion date property value.
type DateProperty struct {
	Date *DateValue `json:"date"`
}

// DateValue holds the ISO8601 start of a date property.
type DateValue struct {
	Start string `json:"start"`
}

type richText struct {
	Text      textContent `json:"text"`
	PlainText string      `json:"plain_text,omitempty"`
}

type textContent struct {
	Content string `json:"content"`
}

// NewTitle builds a title property from plain text.
func NewTitle(text string) *TitleProperty {
	return &TitleProperty{Title: []richText{{Text: textContent{Content: text}}}}
}

// NewSelect builds a select property from an option name.
func NewSelect(name string) *SelectProperty {
	return &SelectProperty{Select: &SelectOption{Name: name}}
}

// plainTitle concatenates the plain text of a rich text array.
func plainTitle(parts []richText) string {
	out := ""
	for _, p := range parts {
		if p.PlainText != "" {
			out += p.PlainText
		} else {
			out += p.Text.Content
		}
	}
	return out
}

// PlainText returns the concatenated plain text of a title property.
func (t *TitleProperty) PlainText() string {
	if t == nil {
		return ""
	}
	return plainTitle(t.Title)
}

// Value returns the selected option name, or "".
func (s *SelectProperty) Value() string {
	if s == nil || s.Select == nil {
		return ""
	}
	return s.Select.Name
}

// Value returns the date start string, or "".
func (d *DateProperty) Value() string {
	if d == nil || d.Date == nil {
		return ""
	}
	return d.Date.Start
}
