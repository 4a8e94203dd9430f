package assistant

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rpanganiban/diskwento-system/internal/model"
)

// ErrNoJSONBlock is returned when the model reply contains no parseable
// JSON payload.
var ErrNoJSONBlock = errors.New("no JSON block in model response")

// ParseReceipt extracts the structured receipt object from a model reply.
// It accepts a fenced ```json block or, failing that, a bare JSON object.
// The returned data is unvalidated; callers must sanitize it before use.
func ParseReceipt(text string) (*model.ReceiptData, error) {
	payload, ok := fencedJSON(text)
	if !ok {
		// Some replies skip the fence and answer with bare JSON.
		start := strings.Index(text, "{")
		end := strings.LastIndex(text, "}")
		if start < 0 || end <= start {
			return nil, ErrNoJSONBlock
		}
		payload = text[start : end+1]
	}

	var data model.ReceiptData
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return nil, fmt.Errorf("unmarshal receipt data: %w", err)
	}
	return &data, nil
}

func fencedJSON(text string) (string, bool) {
	const fence = "```"

	start := strings.Index(text, fence+"json")
	if start < 0 {
		start = strings.Index(text, fence)
		if start < 0 {
			return "", false
		}
	}
	rest := text[start+len(fence):]
	if after, ok := strings.CutPrefix(rest, "json"); ok {
		rest = after
	}

	end := strings.Index(rest, fence)
	if end < 0 {
		return "", false
	}
	return strings.TrimSpace(rest[:end]), true
}
