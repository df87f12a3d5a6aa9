package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Gunvolt24/inventory_search/internal/domain"
	"github.com/Gunvolt24/inventory_search/internal/ports"
)

// Проверка, что HTTPClient удовлетворяет интерфейсу SearchClient.
var _ ports.SearchClient = (*HTTPClient)(nil)

// HTTPClient — реализация удалённой поисковой способности поверх REST API.
// Отмена — через контекст запроса: http.Client прерывает соединение,
// транспортный ресурс освобождается.
type HTTPClient struct {
	baseURL string
	httpc   *http.Client
}

// NewHTTPClient — конструктор. timeout <= 0 означает "без таймаута клиента"
// (таймаут может задать сервер или вызывающий через контекст).
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
	}
}

// Search — выполняет поисковый запрос.
func (c *HTTPClient) Search(ctx context.Context, query domain.SearchQuery) (*domain.SearchResult, error) {
	endpoint := c.baseURL + "/api/v1/items/search?" + searchParams(query).Encode()

	var result domain.SearchResult
	if err := c.getJSON(ctx, endpoint, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetPeak — суммарная доступность артикула по филиалам.
func (c *HTTPClient) GetPeak(ctx context.Context, partNumber string) (*domain.PeakAvailability, error) {
	endpoint := c.baseURL + "/api/v1/items/" + url.PathEscape(partNumber) + "/peak"

	var peak domain.PeakAvailability
	if err := c.getJSON(ctx, endpoint, &peak); err != nil {
		return nil, err
	}
	return &peak, nil
}

// getJSON — GET с декодированием JSON-ответа и разбором ошибки сервера.
func (c *HTTPClient) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		// Отмена контекста приходит сюда обёрнутой url.Error — возвращаем её как есть:
		// errors.Is(err, context.Canceled) останется истинным.
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("search api: %s", serverErrorMessage(resp))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// serverErrorMessage — достаёт {"error": "..."} из тела; иначе код статуса.
func serverErrorMessage(resp *http.Response) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		return body.Error
	}
	return resp.Status
}

// searchParams — сериализация запроса в query-параметры API.
func searchParams(q domain.SearchQuery) url.Values {
	params := url.Values{}
	params.Set("q", q.Criteria)
	params.Set("by", string(q.By))
	if len(q.Branches) > 0 {
		params.Set("branches", strings.Join(q.Branches, ","))
	}
	if q.OnlyAvailable {
		params.Set("onlyAvailable", "1")
	}
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("size", strconv.Itoa(q.Size))
	if q.Sort != nil {
		params.Set("sort", q.Sort.Field+":"+string(q.Sort.Direction))
	}
	return params
}
