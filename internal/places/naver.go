package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"moim/internal/config"
	"moim/internal/domain"
	"moim/internal/port"
)

// Client implements port.PlaceSearch against the Naver Local Search API.
// Results are requested with sort=random so repeated queries surface
// different venues, which is what gives itineraries their diversity.
type Client struct {
	clientID     string
	clientSecret string
	endpoint     string
	client       *http.Client
}

// NewClient creates a Naver local search client from config.
func NewClient(cfg *config.PlacesConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		endpoint:     cfg.Endpoint,
		client:       &http.Client{Timeout: timeout},
	}
}

// apiResponse models the Naver local search response.
type apiResponse struct {
	Total int `json:"total"`
	Items []struct {
		Title       string `json:"title"`
		Category    string `json:"category"`
		Address     string `json:"address"`
		RoadAddress string `json:"roadAddress"`
		Link        string `json:"link"`
		MapX        string `json:"mapx"`
		MapY        string `json:"mapy"`
	} `json:"items"`
}

func (c *Client) Search(ctx context.Context, query string, count int) ([]domain.Place, error) {
	if c.clientID == "" || c.clientSecret == "" {
		return nil, fmt.Errorf("place search credentials are not configured")
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("display", strconv.Itoa(count))
	params.Set("sort", "random")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("X-Naver-Client-Id", c.clientID)
	req.Header.Set("X-Naver-Client-Secret", c.clientSecret)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling place search: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading place search response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("place search error (status %d): %s", resp.StatusCode, string(body))
	}

	var parsed apiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("unmarshaling place search response: %w", err)
	}
	if parsed.Total == 0 {
		return nil, nil
	}

	places := make([]domain.Place, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		address := item.RoadAddress
		if address == "" {
			address = item.Address
		}
		lat, lng := convertCoords(item.MapY, item.MapX)
		places = append(places, domain.Place{
			Name:          stripHighlight(item.Title),
			Category:      item.Category,
			Address:       address,
			Lat:           lat,
			Lng:           lng,
			Link:          item.Link,
			SearchKeyword: query,
		})
	}
	return places, nil
}

// stripHighlight removes the <b> highlight tags Naver wraps around the
// matched part of a venue name.
func stripHighlight(title string) string {
	title = strings.ReplaceAll(title, "<b>", "")
	return strings.ReplaceAll(title, "</b>", "")
}

// convertCoords turns the API's integer-scaled map coordinates into
// WGS84 degrees. Unparseable values become (0, 0).
func convertCoords(mapY, mapX string) (lat, lng float64) {
	y, errY := strconv.ParseInt(mapY, 10, 64)
	x, errX := strconv.ParseInt(mapX, 10, 64)
	if errY != nil || errX != nil {
		return 0, 0
	}
	return float64(y) / 1e7, float64(x) / 1e7
}

var _ port.PlaceSearch = (*Client)(nil)
