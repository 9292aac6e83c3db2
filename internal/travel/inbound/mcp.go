package inbound

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"strings"
)

const (
	jsonRPCVersion  = "2.0"
	latestProtocol  = "2025-06-18"
	maxRequestBytes = 4 << 20
)

var supportedProtocols = []string{"2024-11-05", "2025-03-26", latestProtocol}

// JSON-RPC 2.0 error codes.
const (
	codeParseError     = -32700
	codeInvalidRequest = -32600
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
	codeInternalError  = -32603
)

type rpcRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  any             `json:"result,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return e.Message
}

var nullID = json.RawMessage("null")

// MCP dispatches Model Context Protocol messages to the travel tools. The
// same dispatcher serves HTTP and stdio.
type MCP struct {
	info  ServerInfo
	tools []tool
	index map[string]int
}

func NewMCP(uc uc, info ServerInfo) *MCP {
	m := &MCP{info: info, tools: newTools(uc), index: map[string]int{}}
	for i, t := range m.tools {
		m.index[t.name] = i
	}
	slog.Debug("mcp tools registered", "tools", toolNames(m.tools))
	return m
}

// Handle processes one encoded message. It returns nil for notifications.
func (m *MCP) Handle(ctx context.Context, raw []byte) []byte {
	resp := m.dispatch(ctx, raw)
	if resp == nil {
		return nil
	}
	out, err := json.Marshal(resp)
	if err != nil {
		slog.ErrorContext(ctx, "failed to encode mcp response", "error", err)
		out, _ = json.Marshal(errorResponse(resp.ID, &rpcError{Code: codeInternalError, Message: "internal error"}))
	}
	return out
}

func (m *MCP) dispatch(ctx context.Context, raw []byte) *rpcResponse {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return errorResponse(nullID, &rpcError{Code: codeInvalidRequest, Message: "batch requests are not supported"})
	}

	var req rpcRequest
	if err := json.Unmarshal(trimmed, &req); err != nil {
		return errorResponse(nullID, &rpcError{Code: codeParseError, Message: "parse error"})
	}

	notification := len(req.ID) == 0
	if req.JSONRPC != jsonRPCVersion || req.Method == "" {
		if notification {
			return nil
		}
		return errorResponse(req.ID, &rpcError{Code: codeInvalidRequest, Message: "invalid request"})
	}

	result, err := m.call(ctx, req)
	if notification {
		return nil
	}
	if err != nil {
		var rerr *rpcError
		if !errors.As(err, &rerr) {
			slog.ErrorContext(ctx, "mcp method failed", "method", req.Method, "error", err)
			rerr = &rpcError{Code: codeInternalError, Message: err.Error()}
		}
		return errorResponse(req.ID, rerr)
	}
	if result == nil {
		result = struct{}{}
	}
	return &rpcResponse{JSONRPC: jsonRPCVersion, ID: req.ID, Result: result}
}

func (m *MCP) call(ctx context.Context, req rpcRequest) (any, error) {
	switch req.Method {
	case "initialize":
		return m.initialize(req.Params), nil
	case "ping":
		return struct{}{}, nil
	case "tools/list":
		return m.listTools(), nil
	case "tools/call":
		return m.callTool(ctx, req.Params)
	default:
		if isNotificationMethod(req.Method) {
			return nil, nil
		}
		return nil, &rpcError{Code: codeMethodNotFound, Message: fmt.Sprintf("method not found: %s", req.Method)}
	}
}

func isNotificationMethod(method string) bool {
	return strings.HasPrefix(method, "notifications/")
}

type initializeParams struct {
	ProtocolVersion string `json:"protocolVersion"`
}

type initializeResult struct {
	ProtocolVersion string         `json:"protocolVersion"`
	Capabilities    map[string]any `json:"capabilities"`
	ServerInfo      serverInfo     `json:"serverInfo"`
}

type serverInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// initialize echoes the client's protocol version when supported and
// offers the latest one otherwise.
func (m *MCP) initialize(params json.RawMessage) initializeResult {
	var p initializeParams
	_ = json.Unmarshal(params, &p)

	version := latestProtocol
	if slices.Contains(supportedProtocols, p.ProtocolVersion) {
		version = p.ProtocolVersion
	}

	return initializeResult{
		ProtocolVersion: version,
		Capabilities:    map[string]any{"tools": map[string]any{"listChanged": false}},
		ServerInfo:      serverInfo{Name: m.info.Name, Version: m.info.Version},
	}
}

type toolDescriptor struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

func (m *MCP) listTools() map[string]any {
	list := make([]toolDescriptor, 0, len(m.tools))
	for _, t := range m.tools {
		list = append(list, toolDescriptor{Name: t.name, Description: t.description, InputSchema: t.schema})
	}
	return map[string]any{"tools": list}
}

type callParams struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

// callTool runs a tool. Bad arguments are protocol errors; failures while
// running the tool are reported inside the result with isError set.
func (m *MCP) callTool(ctx context.Context, params json.RawMessage) (any, error) {
	var p callParams
	if err := json.Unmarshal(params, &p); err != nil || p.Name == "" {
		return nil, &rpcError{Code: codeInvalidParams, Message: "invalid tools/call params"}
	}

	i, ok := m.index[p.Name]
	if !ok {
		return nil, &rpcError{Code: codeInvalidParams, Message: fmt.Sprintf("unknown tool: %s", p.Name)}
	}
	t := m.tools[i]

	if p.Arguments == nil {
		p.Arguments = map[string]any{}
	}
	result, err := t.call(ctx, p.Arguments)
	if err == nil {
		return result, nil
	}

	var aerr *argumentError
	if errors.As(err, &aerr) {
		return nil, &rpcError{Code: codeInvalidParams, Message: fmt.Sprintf("invalid arguments for tool %s: %s", t.name, aerr.msg)}
	}

	slog.WarnContext(ctx, "tool call failed", "tool", t.name, "error", err)
	return toolResult{
		Content: []content{textContent(t.errorPrefix + ": " + err.Error())},
		IsError: true,
	}, nil
}

func errorResponse(id json.RawMessage, err *rpcError) *rpcResponse {
	if len(id) == 0 {
		id = nullID
	}
	return &rpcResponse{JSONRPC: jsonRPCVersion, ID: id, Error: err}
}

// ServeHTTP accepts one JSON-RPC message per POST. Notifications are
// acknowledged with 202 and no body.
func (m *MCP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBytes))
	if err != nil {
		http.Error(w, "failed to read request body", http.StatusBadRequest)
		return
	}

	out := m.Handle(r.Context(), body)
	if out == nil {
		w.WriteHeader(http.StatusAccepted)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}
