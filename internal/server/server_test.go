package server

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ironsheep/seamcarve-mcp/internal/config"
)

func TestNew(t *testing.T) {
	s := New(nil)
	if s == nil {
		t.Fatal("New() returned nil")
	}
	if s.cache == nil {
		t.Fatal("New() did not initialize cache")
	}
	if diff := cmp.Diff(*config.Default(), s.cfg); diff != "" {
		t.Errorf("default config mismatch (-want +got):\n%s", diff)
	}
}

func TestNew_WithConfig(t *testing.T) {
	cfg := &config.Config{LogLevel: "debug", StrictEnergy: true, OutputDir: "/out", SeamColor: "#00FF00"}
	s := New(cfg)
	if s.cfg != *cfg {
		t.Errorf("config not applied: got %+v", s.cfg)
	}
}

func TestMCPRequest_Unmarshal(t *testing.T) {
	tests := []struct {
		name       string
		json       string
		wantID     interface{}
		wantMethod string
		wantParams bool
	}{
		{"string id", `{"jsonrpc":"2.0","id":"req-7","method":"tools/list"}`, "req-7", "tools/list", false},
		// JSON numbers decode as float64
		{"number id", `{"jsonrpc":"2.0","id":42,"method":"ping"}`, float64(42), "ping", false},
		{"notification", `{"jsonrpc":"2.0","method":"notifications/initialized"}`, nil, "notifications/initialized", false},
		{
			"with params",
			`{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"image_find_seam","arguments":{"path":"/a.png"}}}`,
			float64(3), "tools/call", true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req MCPRequest
			if err := json.Unmarshal([]byte(tt.json), &req); err != nil {
				t.Fatalf("Failed to unmarshal: %v", err)
			}
			if req.ID != tt.wantID {
				t.Errorf("ID: got %v (%T), want %v (%T)", req.ID, req.ID, tt.wantID, tt.wantID)
			}
			if req.Method != tt.wantMethod {
				t.Errorf("Method: got %s, want %s", req.Method, tt.wantMethod)
			}
			if (req.Params != nil) != tt.wantParams {
				t.Errorf("Params present: got %v, want %v", req.Params != nil, tt.wantParams)
			}
		})
	}
}

func TestMCPResponse_OmitsEmptyFields(t *testing.T) {
	ok, _ := json.Marshal(MCPResponse{JSONRPC: "2.0", ID: 1, Result: map[string]interface{}{}})
	if strings.Contains(string(ok), `"error"`) {
		t.Errorf("success response carries an error field: %s", ok)
	}

	failed, _ := json.Marshal(MCPResponse{JSONRPC: "2.0", ID: 1, Error: &MCPError{Code: -32601, Message: "Method not found"}})
	if strings.Contains(string(failed), `"result"`) {
		t.Errorf("error response carries a result field: %s", failed)
	}
	if strings.Contains(string(failed), `"data"`) {
		t.Errorf("error without data carries a data field: %s", failed)
	}
}

func TestHandleRequest(t *testing.T) {
	s := New(nil)

	tests := []struct {
		method   string
		id       interface{}
		wantNil  bool
		wantCode int
	}{
		{method: "initialize", id: 1},
		{method: "ping", id: "ping-1"},
		{method: "tools/list", id: 2},
		{method: "notifications/initialized", wantNil: true},
		{method: "resources/list", id: 3, wantCode: -32601},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: tt.id, Method: tt.method})

			if tt.wantNil {
				if resp != nil {
					t.Errorf("expected no response, got %+v", resp)
				}
				return
			}
			if resp == nil {
				t.Fatal("handleRequest returned nil")
			}
			if resp.ID != tt.id || resp.JSONRPC != "2.0" {
				t.Errorf("envelope: got id %v jsonrpc %s", resp.ID, resp.JSONRPC)
			}

			switch {
			case tt.wantCode != 0 && resp.Error == nil:
				t.Fatalf("expected error %d", tt.wantCode)
			case tt.wantCode != 0 && resp.Error.Code != tt.wantCode:
				t.Errorf("Error code: got %d, want %d", resp.Error.Code, tt.wantCode)
			case tt.wantCode == 0 && resp.Error != nil:
				t.Fatalf("Unexpected error: %v", resp.Error)
			}
		})
	}
}

func TestHandleInitialize(t *testing.T) {
	old := Version
	Version = "1.2.3"
	defer func() { Version = old }()

	resp := New(nil).handleInitialize(&MCPRequest{JSONRPC: "2.0", ID: "init-1"})

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}
	if result["protocolVersion"] != "2024-11-05" {
		t.Errorf("protocolVersion: got %v", result["protocolVersion"])
	}

	want := map[string]interface{}{"name": "seamcarve-mcp", "version": "1.2.3"}
	if diff := cmp.Diff(want, result["serverInfo"]); diff != "" {
		t.Errorf("serverInfo mismatch (-want +got):\n%s", diff)
	}
}

func TestServe(t *testing.T) {
	in := strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize"}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		``,
		`not json`,
		`{"jsonrpc":"2.0","id":2,"method":"ping"}`,
		`{"jsonrpc":"2.0","id":3,"method":"bogus"}`,
	}, "\n")

	var out bytes.Buffer
	if err := New(nil).Serve(strings.NewReader(in), &out); err != nil {
		t.Fatalf("Serve failed: %v", err)
	}

	dec := json.NewDecoder(&out)
	var ids []float64
	var codes []int
	for dec.More() {
		var resp struct {
			ID    float64   `json:"id"`
			Error *MCPError `json:"error"`
		}
		if err := dec.Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		ids = append(ids, resp.ID)
		if resp.Error != nil {
			codes = append(codes, resp.Error.Code)
		}
	}

	if diff := cmp.Diff([]float64{1, 2, 3}, ids); diff != "" {
		t.Errorf("response ids mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{-32601}, codes); diff != "" {
		t.Errorf("error codes mismatch (-want +got):\n%s", diff)
	}
}
