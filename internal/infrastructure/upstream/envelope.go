package upstream

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/HairulDev/tsn-asia-next/internal/core/domain"
)

// envelope is the backend's canonical response wrapper. Fields are parsed
// defensively: the backend is an external collaborator and a shape mismatch
// must surface as a contract error, never as a silent zero value.
type envelope struct {
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Meta    json.RawMessage `json:"meta"`
	// Details is the structured validation list some endpoints return; when
	// present it takes priority over Message (joined, as the login screen of
	// the original client did).
	Details []string        `json:"details"`
	Token   string          `json:"token"`
	User    json.RawMessage `json:"user"`
}

// decodeEnvelope parses the raw body and converts failure responses into
// typed errors. A nil error means the envelope reported success.
func decodeEnvelope(endpoint string, status int, raw []byte) (*envelope, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, &domain.ShapeError{Endpoint: endpoint, Reason: "body is not a JSON envelope"}
	}
	if env.Success == nil {
		return nil, &domain.ShapeError{Endpoint: endpoint, Reason: "missing success flag"}
	}

	if status >= http.StatusBadRequest || !*env.Success {
		msg := env.Message
		if len(env.Details) > 0 {
			msg = strings.Join(env.Details, ", ")
		}
		if status == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, msg)
		}
		return nil, &domain.UpstreamError{StatusCode: status, Message: msg}
	}
	return &env, nil
}

// parsePage decodes a list envelope into a typed page, validating both halves
// of the contract.
func parsePage[R any](endpoint string, env *envelope) (*domain.Page[R], error) {
	if len(env.Data) == 0 {
		return nil, &domain.ShapeError{Endpoint: endpoint, Reason: "missing data array"}
	}
	var items []R
	if err := json.Unmarshal(env.Data, &items); err != nil {
		return nil, &domain.ShapeError{Endpoint: endpoint, Reason: "data is not an array of records"}
	}
	if len(env.Meta) == 0 {
		return nil, &domain.ShapeError{Endpoint: endpoint, Reason: "missing meta"}
	}
	var meta domain.PageMeta
	if err := json.Unmarshal(env.Meta, &meta); err != nil {
		return nil, &domain.ShapeError{Endpoint: endpoint, Reason: "meta has unexpected shape"}
	}
	if meta.Limit <= 0 || meta.Page <= 0 {
		return nil, &domain.ShapeError{Endpoint: endpoint, Reason: "meta missing page/limit"}
	}
	if items == nil {
		items = []R{}
	}
	return &domain.Page[R]{Items: items, Meta: meta}, nil
}

// parseRecord decodes a single-record envelope.
func parseRecord[R any](endpoint string, env *envelope) (R, error) {
	var record R
	if len(env.Data) == 0 {
		return record, &domain.ShapeError{Endpoint: endpoint, Reason: "missing data record"}
	}
	if err := json.Unmarshal(env.Data, &record); err != nil {
		return record, &domain.ShapeError{Endpoint: endpoint, Reason: "data is not a record"}
	}
	return record, nil
}
