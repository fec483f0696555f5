package holiday

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"go-payops/internal/compensation"
	holidayerrors "go-payops/internal/holiday/errors"
	"go-payops/internal/shared/apperror"
	"go-payops/internal/shared/civil"
)

// feedItem matches the public-holiday feed response shape
// (Nager.Date v3 contract).
type feedItem struct {
	Date      string   `json:"date"`
	LocalName string   `json:"localName"`
	Name      string   `json:"name"`
	Global    bool     `json:"global"`
	Counties  []string `json:"counties"`
}

// Feed fetches the holiday list for a year from an external source.
type Feed interface {
	Fetch(ctx context.Context, year int) ([]Holiday, error)
}

type feedClient struct {
	http    *resty.Client
	baseURL string
	country string
}

// NewFeedClient builds a feed client with a bounded request timeout. There
// is no retry: on any failure the caller falls back to the generator.
func NewFeedClient(baseURL, countryCode string, timeout time.Duration) Feed {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &feedClient{
		http:    client,
		baseURL: baseURL,
		country: countryCode,
	}
}

func (c *feedClient) Fetch(ctx context.Context, year int) ([]Holiday, error) {
	var items []feedItem

	url := fmt.Sprintf("%s/api/v3/PublicHolidays/%d/%s", c.baseURL, year, c.country)
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&items).
		Get(url)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeExternalSource,
			"holiday feed request failed", holidayerrors.ErrFeedUnavailable.HTTPStatus)
	}
	if !resp.IsSuccess() {
		return nil, holidayerrors.ErrFeedUnavailable
	}

	holidays := make([]Holiday, 0, len(items))
	for _, item := range items {
		date, err := civil.Parse(item.Date)
		if err != nil {
			// One bad date means the payload cannot be trusted.
			return nil, holidayerrors.ErrFeedUnavailable
		}

		htype := ClassifyName(item.Name)
		if len(item.Counties) > 0 && !item.Global {
			htype = compensation.HolidayTypeLocal
		}

		holidays = append(holidays, Holiday{
			Date:          date,
			Name:          item.Name,
			LocalName:     item.LocalName,
			Type:          htype,
			PayMultiplier: compensation.PayMultiplier(htype),
			Source:        SourceExternal,
		})
	}

	if len(holidays) == 0 {
		return nil, holidayerrors.ErrFeedUnavailable
	}

	return holidays, nil
}
