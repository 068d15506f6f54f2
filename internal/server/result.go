package server

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/automac-mcp/automac/internal/model"
)

// envelopeResult encodes v as indented JSON text. Envelopes with
// success=false are flagged as tool errors so clients can tell them apart
// without parsing the body.
func envelopeResult(v model.Envelope) (*mcp.CallToolResult, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	if !v.Envelope().Success {
		return mcp.NewToolResultError(string(b)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
