package inbound

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/ozkangu/travel-mcp/internal/pkg/pkgerror"
	"github.com/ozkangu/travel-mcp/internal/travel/entity"
	"github.com/ozkangu/travel-mcp/internal/travel/maprender"
	"github.com/ozkangu/travel-mcp/internal/travel/provider"
	"github.com/ozkangu/travel-mcp/internal/travel/usecase"
	"github.com/stretchr/testify/require"
)

type fakeGeocoder struct {
	results []entity.GeocodingResult
	err     error
}

func (f *fakeGeocoder) Geocode(context.Context, string, string) ([]entity.GeocodingResult, error) {
	return f.results, f.err
}

func (f *fakeGeocoder) Reverse(_ context.Context, lat, lon float64) (entity.GeocodingResult, error) {
	if f.err != nil {
		return entity.GeocodingResult{}, f.err
	}
	return entity.GeocodingResult{Latitude: lat, Longitude: lon, DisplayName: "Sultanahmet, Fatih", Type: "suburb"}, nil
}

type fakeRenderer struct {
	got maprender.Options
	err error
}

func (f *fakeRenderer) Render(_ context.Context, opts maprender.Options) ([]byte, error) {
	f.got = opts
	if f.err != nil {
		return nil, f.err
	}
	return []byte{0x89, 'P', 'N', 'G'}, nil
}

type fixture struct {
	geocoder *fakeGeocoder
	renderer *fakeRenderer
	uc       *usecase.Usecase
	mcp      *MCP
}

func newFixture() *fixture {
	f := &fixture{geocoder: &fakeGeocoder{}, renderer: &fakeRenderer{}}
	f.uc = usecase.New(usecase.Dependency{
		Flights:  provider.NewSynthetic(),
		Geocoder: f.geocoder,
		Renderer: f.renderer,
	})
	f.mcp = NewMCP(f.uc, ServerInfo{Name: "travel-mcp", Version: "1.0.0"})
	return f
}

type response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcError       `json:"error"`
}

type decodedResult struct {
	Content []struct {
		Type     string `json:"type"`
		Text     string `json:"text"`
		Data     string `json:"data"`
		MimeType string `json:"mimeType"`
	} `json:"content"`
	StructuredContent map[string]json.RawMessage `json:"structuredContent"`
	IsError           bool                       `json:"isError"`
}

func send(t *testing.T, m *MCP, raw string) response {
	t.Helper()
	out := m.Handle(context.Background(), []byte(raw))
	require.NotNil(t, out, "expected a response for %s", raw)
	var resp response
	require.NoError(t, json.Unmarshal(out, &resp))
	return resp
}

func request(t *testing.T, m *MCP, method string, params any) response {
	t.Helper()
	body := map[string]any{"jsonrpc": "2.0", "id": 7, "method": method}
	if params != nil {
		body["params"] = params
	}
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	return send(t, m, string(raw))
}

func callTool(t *testing.T, m *MCP, name string, args map[string]any) (decodedResult, *rpcError) {
	t.Helper()
	resp := request(t, m, "tools/call", map[string]any{"name": name, "arguments": args})
	if resp.Error != nil {
		return decodedResult{}, resp.Error
	}
	var result decodedResult
	require.NoError(t, json.Unmarshal(resp.Result, &result))
	return result, nil
}

var errUpstream = pkgerror.Wrap(errors.New("status 503"), "geocoding service returned an error", pkgerror.CodeUpstream)
