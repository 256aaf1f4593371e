package freedictionary

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/at-ishikawa/cluegen/internal/dictionary"
	"github.com/go-resty/resty/v2"
)

const DefaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"

type Client struct {
	httpClient *resty.Client
}

var _ dictionary.DefinitionLookup = (*Client)(nil)

// NewClient creates a client for baseURL. A zero timeout leaves requests unbounded.
func NewClient(baseURL string, timeout time.Duration) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &Client{
		httpClient: client,
	}
}

func (client *Client) lookupAPI(ctx context.Context, word string) ([]byte, error) {
	res, err := client.httpClient.R().
		SetContext(ctx).
		SetPathParam("word", word).
		Get("/{word}")
	if err != nil {
		return nil, fmt.Errorf("client.R.Get > %w", err)
	}
	switch res.StatusCode() {
	case http.StatusOK:
		return res.Body(), nil
	case http.StatusNotFound:
		return nil, fmt.Errorf("word: %s > %w", word, dictionary.ErrNotFound)
	default:
		return nil, fmt.Errorf("status code: %d, body: %s > %w", res.StatusCode(), string(res.Body()), dictionary.ErrUnexpectedStatus)
	}
}

// Lookup returns every entry the API has for word.
func (client *Client) Lookup(ctx context.Context, word string) ([]Entry, error) {
	slog.Default().Debug("free dictionary request", "word", word)

	body, err := client.lookupAPI(ctx, word)
	if err != nil {
		return nil, fmt.Errorf("client.lookupAPI > %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("json.Unmarshal > %w", dictionary.NewDecodeError(err))
	}
	slog.Default().Debug("free dictionary response", "word", word, "entries", len(entries))
	return entries, nil
}

// LookupDefinition implements dictionary.DefinitionLookup.
func (client *Client) LookupDefinition(ctx context.Context, word string) (string, error) {
	entries, err := client.Lookup(ctx, word)
	if err != nil {
		return "", err
	}
	definition, err := FirstDefinition(entries)
	if err != nil {
		return "", fmt.Errorf("FirstDefinition > %w", err)
	}
	return definition, nil
}
