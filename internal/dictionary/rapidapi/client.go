package rapidapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/at-ishikawa/cluegen/internal/dictionary"
	"resty.dev/v3"
)

type Client struct {
	httpClient *resty.Client
}

var _ dictionary.DefinitionLookup = (*Client)(nil)

func NewClient(host, key string) *Client {
	client := resty.New()
	client.SetBaseURL("https://" + host)
	client.SetHeader("x-rapidapi-host", host)
	client.SetHeader("x-rapidapi-key", key)

	return &Client{
		httpClient: client,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

// Lookup fetches the WordsAPI response for word.
func (client *Client) Lookup(ctx context.Context, word string) (Response, error) {
	var result Response

	slog.Default().Debug("words api request", "word", word)
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetPathParam("word", word).
		Get("/words/{word}")
	if err != nil {
		return result, fmt.Errorf("httpClient.Get > %w", err)
	}
	switch response.StatusCode() {
	case http.StatusOK:
	case http.StatusNotFound:
		return result, fmt.Errorf("word: %s > %w", word, dictionary.ErrNotFound)
	default:
		return result, fmt.Errorf("response error %d: %s > %w", response.StatusCode(), response.String(), dictionary.ErrUnexpectedStatus)
	}

	if err := json.Unmarshal([]byte(response.String()), &result); err != nil {
		return result, fmt.Errorf("json.Unmarshal > %w", dictionary.NewDecodeError(err))
	}
	return result, nil
}

// LookupDefinition implements dictionary.DefinitionLookup.
func (client *Client) LookupDefinition(ctx context.Context, word string) (string, error) {
	response, err := client.Lookup(ctx, word)
	if err != nil {
		return "", fmt.Errorf("client.Lookup > %w", err)
	}
	definition, err := response.FirstDefinition()
	if err != nil {
		return "", fmt.Errorf("response.FirstDefinition > %w", err)
	}
	return definition, nil
}
