package notify

import (
	"fmt"
	"strings"

	jmespath "github.com/jmespath-community/go-jmespath"
)

// EventFilter decides which delivery events reach the registered sinks.
type EventFilter interface {
	Matches(payload DeliveryEventPayload) (bool, error)
}

// AllEvents passes every event through unfiltered.
type AllEvents struct{}

// Matches always reports true.
func (AllEvents) Matches(DeliveryEventPayload) (bool, error) { return true, nil }

// JMESPathFilter evaluates a JMESPath expression against the event payload.
// An event passes when the expression yields a truthy result; e.g.
// `contains(['email.bounced','email.complained'], event)` keeps only
// deliverability problems.
type JMESPathFilter struct {
	expr string
}

// NewJMESPathFilter compiles the expression up front so a bad config fails at
// startup rather than on the first event.
func NewJMESPathFilter(expr string) (*JMESPathFilter, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, fmt.Errorf("filter expression is empty")
	}
	if _, err := jmespath.Compile(expr); err != nil {
		return nil, fmt.Errorf("compile filter expression: %w", err)
	}
	return &JMESPathFilter{expr: expr}, nil
}

// Matches reports whether the payload satisfies the filter expression.
func (f *JMESPathFilter) Matches(payload DeliveryEventPayload) (bool, error) {
	data := map[string]any{
		"delivery_id": payload.DeliveryID,
		"event":       payload.Event,
		"recipient":   payload.Recipient,
	}
	result, err := jmespath.Search(f.expr, data)
	if err != nil {
		return false, fmt.Errorf("evaluate filter expression: %w", err)
	}
	return isTruthy(result), nil
}

// isTruthy mirrors JMESPath truthiness: false, nil, empty strings and empty
// collections are falsy.
func isTruthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	default:
		return true
	}
}
