package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Client writes value ranges through the Sheets v4 API
type Client struct {
	service *sheets.Service
}

type Config struct {
	CredentialsPath string
	CredentialsJSON []byte
}

func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	var opts []option.ClientOption

	switch {
	case cfg.CredentialsPath != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	case len(cfg.CredentialsJSON) > 0:
		opts = append(opts, option.WithCredentialsJSON(cfg.CredentialsJSON))
	default:
		return nil, fmt.Errorf("sheets: credentials path or JSON is required")
	}
	opts = append(opts, option.WithScopes(sheets.SpreadsheetsScope))

	service, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets: create service: %w", err)
	}

	return &Client{service: service}, nil
}

// UpdateValues overwrites rng with values, starting at its top-left cell
func (c *Client) UpdateValues(ctx context.Context, spreadsheetID, rng string, values [][]interface{}) error {
	if c.service == nil {
		return fmt.Errorf("sheets: service is nil")
	}

	_, err := c.service.Spreadsheets.Values.
		Update(spreadsheetID, rng, &sheets.ValueRange{Values: values}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	return err
}

func (c *Client) ClearValues(ctx context.Context, spreadsheetID, rng string) error {
	if c.service == nil {
		return fmt.Errorf("sheets: service is nil")
	}

	_, err := c.service.Spreadsheets.Values.
		Clear(spreadsheetID, rng, &sheets.ClearValuesRequest{}).
		Context(ctx).
		Do()
	return err
}
