package odoo

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/phenrril/vendorsync/internal/domain"
)

// Client habla JSON-RPC contra /jsonrpc de Odoo (service object/execute_kw).
type Client struct {
	baseURL    string
	db         string
	login      string
	password   string
	httpClient *http.Client
	log        zerolog.Logger

	uid    int64
	nextID int64
}

var _ domain.CatalogService = (*Client)(nil)

func NewClient(baseURL, db, login, password string, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		db:         db,
		login:      login,
		password:   password,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		log:        log,
	}
}

type rpcRequest struct {
	Jsonrpc string    `json:"jsonrpc"`
	Method  string    `json:"method"`
	Params  rpcParams `json:"params"`
	ID      int64     `json:"id"`
}

type rpcParams struct {
	Service string `json:"service"`
	Method  string `json:"method"`
	Args    []any  `json:"args"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

func (c *Client) call(ctx context.Context, service, method string, args []any) (json.RawMessage, error) {
	if c.baseURL == "" {
		return nil, errors.New("ODOO_URL faltante")
	}

	c.nextID++
	buf, err := json.Marshal(rpcRequest{
		Jsonrpc: "2.0",
		Method:  "call",
		Params:  rpcParams{Service: service, Method: method, Args: args},
		ID:      c.nextID,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/jsonrpc", bytes.NewReader(buf))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error de conexión con Odoo: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 300 {
		body, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("odoo status %d: %s", res.StatusCode, string(body))
	}

	var out rpcResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("respuesta inválida de Odoo: %w", err)
	}
	if out.Error != nil {
		return nil, fmt.Errorf("odoo rpc %d: %s", out.Error.Code, out.Error.Message)
	}
	return out.Result, nil
}

func (c *Client) authenticate(ctx context.Context) error {
	if c.uid != 0 {
		return nil
	}
	res, err := c.call(ctx, "common", "authenticate", []any{c.db, c.login, c.password, map[string]any{}})
	if err != nil {
		return err
	}
	var uid int64
	if err := json.Unmarshal(res, &uid); err != nil || uid == 0 {
		return errors.New("autenticación Odoo rechazada")
	}
	c.uid = uid
	return nil
}

func (c *Client) executeKw(ctx context.Context, model, method string, args []any, kwargs map[string]any) (json.RawMessage, error) {
	if err := c.authenticate(ctx); err != nil {
		return nil, err
	}
	callArgs := []any{c.db, c.uid, c.password, model, method, args}
	if kwargs != nil {
		callArgs = append(callArgs, kwargs)
	}
	return c.call(ctx, "object", "execute_kw", callArgs)
}

type record struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	DefaultCode string `json:"default_code"`
}

func (c *Client) searchRead(ctx context.Context, model string, filter []any, fields []string, limit int) ([]record, error) {
	res, err := c.executeKw(ctx, model, "search_read", []any{filter}, map[string]any{
		"fields": fields,
		"limit":  limit,
	})
	if err != nil {
		return nil, err
	}
	var records []record
	if err := json.Unmarshal(res, &records); err != nil {
		return nil, fmt.Errorf("search_read %s: %w", model, err)
	}
	return records, nil
}

func (c *Client) create(ctx context.Context, model string, fields map[string]any) (int64, error) {
	res, err := c.executeKw(ctx, model, "create", []any{fields}, nil)
	if err != nil {
		return 0, err
	}
	var id int64
	if err := json.Unmarshal(res, &id); err != nil {
		return 0, fmt.Errorf("create %s: %w", model, err)
	}
	return id, nil
}

func (c *Client) SearchProducts(ctx context.Context, field, value string, limit int) ([]domain.ProductSummary, error) {
	if limit <= 0 {
		limit = 80
	}
	records, err := c.searchRead(ctx, "product.template",
		[]any{[]any{field, "=", value}},
		[]string{"id", "name", "default_code"}, limit)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ProductSummary, 0, len(records))
	for _, r := range records {
		out = append(out, domain.ProductSummary{ID: r.ID, Name: r.Name, DefaultCode: r.DefaultCode})
	}
	return out, nil
}

func (c *Client) ProductByCode(ctx context.Context, code string) (*domain.ProductSummary, error) {
	found, err := c.SearchProducts(ctx, "default_code", code, 1)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, domain.ErrNotFound
	}
	return &found[0], nil
}

func (c *Client) CreateProduct(ctx context.Context, fields map[string]any) (int64, error) {
	values := map[string]any{
		"type":           "product",
		"sale_ok":        true,
		"purchase_ok":    false,
		"active":         true,
		"list_price":     0.0,
		"standard_price": 0.0,
	}
	for k, v := range fields {
		values[k] = v
	}
	if values["name"] == nil || values["name"] == "" {
		return 0, errors.New("producto sin nombre")
	}
	return c.create(ctx, "product.template", values)
}

func (c *Client) UpdateProduct(ctx context.Context, id int64, fields map[string]any) error {
	_, err := c.executeKw(ctx, "product.template", "write", []any{[]int64{id}, fields}, nil)
	return err
}

// GetOrCreateCategory es idempotente por nombre (y padre si se indica).
func (c *Client) GetOrCreateCategory(ctx context.Context, name string, parentID int64) (int64, error) {
	filter := []any{[]any{"name", "=", name}}
	if parentID > 0 {
		filter = append(filter, []any{"parent_id", "=", parentID})
	}
	records, err := c.searchRead(ctx, "product.category", filter, []string{"id", "name"}, 1)
	if err != nil {
		return 0, err
	}
	if len(records) > 0 {
		return records[0].ID, nil
	}

	fields := map[string]any{"name": name}
	if parentID > 0 {
		fields["parent_id"] = parentID
	}
	id, err := c.create(ctx, "product.category", fields)
	if err != nil {
		return 0, err
	}
	c.log.Info().Str("category", name).Int64("id", id).Msg("category created")
	return id, nil
}

func (c *Client) CreateAttribute(ctx context.Context, name string, values []string) (int64, error) {
	attrID, err := c.create(ctx, "product.attribute", map[string]any{
		"name":           name,
		"create_variant": "always",
	})
	if err != nil {
		return 0, err
	}
	for _, v := range values {
		if _, err := c.create(ctx, "product.attribute.value", map[string]any{
			"name":         v,
			"attribute_id": attrID,
		}); err != nil {
			return 0, err
		}
	}
	return attrID, nil
}

func (c *Client) CreateVariant(ctx context.Context, templateID int64, attributeValues map[string]string) (int64, error) {
	fields := map[string]any{"product_tmpl_id": templateID}
	if code := attributeValues["code"]; code != "" {
		fields["default_code"] = code
	}
	return c.create(ctx, "product.product", fields)
}

func (c *Client) UploadImage(ctx context.Context, productID int64, path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return c.UpdateProduct(ctx, productID, map[string]any{
		"image_1920": base64.StdEncoding.EncodeToString(b),
	})
}
