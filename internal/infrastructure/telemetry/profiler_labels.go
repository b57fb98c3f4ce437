package telemetry

import (
	"context"
	"maps"
	"sort"
	"strings"

	"github.com/grafana/pyroscope-go"
)

// Profiling label keys attached to request execution.
const (
	ProfilingLabelController = "controller"
	ProfilingLabelRoute      = "route"
	ProfilingLabelMethod     = "method"
	ProfilingLabelOperation  = "operation"
	ProfilingLabelRegion     = "region"
)

// MaxLabelValueLength caps label values so a runaway value cannot blow
// up series cardinality in Pyroscope.
const MaxLabelValueLength = 128

// highCardinalityLabels are keys that identify individual entities or
// requests. They are silently dropped so a caller cannot accidentally
// turn every property or user into its own profile series.
var highCardinalityLabels = map[string]bool{
	"user_id":     true,
	"request_id":  true,
	"property_id": true,
	"inquiry_id":  true,
	"trace_id":    true,
	"span_id":     true,
	"session_id":  true,
}

// WithProfilingLabels runs fn with the given labels attached to the
// profiling context, so profiles can be sliced by route, method, or
// operation in the Pyroscope UI. The labels map is copied and
// sanitized before use.
func WithProfilingLabels(ctx context.Context, labels map[string]string, fn func(context.Context)) {
	if len(labels) == 0 {
		fn(ctx)
		return
	}

	labelsCopy := make(map[string]string, len(labels))
	maps.Copy(labelsCopy, labels)

	pairs := sanitizeLabels(labelsCopy)
	if len(pairs) == 0 {
		fn(ctx)
		return
	}

	pyroscope.TagWrapper(ctx, pyroscope.Labels(pairs...), fn)
}

// HTTPRequestLabels builds the standard label set for a handled route.
// The route is gin's matched pattern, not the raw path, so it stays
// low cardinality.
func HTTPRequestLabels(controller, route, method string) map[string]string {
	labels := make(map[string]string, 3)
	if controller != "" {
		labels[ProfilingLabelController] = controller
	}
	if route != "" {
		labels[ProfilingLabelRoute] = route
	}
	if method != "" {
		labels[ProfilingLabelMethod] = method
	}
	return labels
}

// OperationLabels builds labels for a named background operation, such
// as the periodic business metrics collection.
func OperationLabels(operation string, extraLabels map[string]string) map[string]string {
	labels := make(map[string]string, len(extraLabels)+1)
	labels[ProfilingLabelOperation] = operation
	maps.Copy(labels, extraLabels)
	return labels
}

// sanitizeLabels converts a label map to pyroscope's flat pair slice.
// High-cardinality keys and empty entries are dropped, long values
// truncated, and keys normalized to snake_case. Keys are sorted so the
// output is deterministic.
func sanitizeLabels(labels map[string]string) []string {
	if len(labels) == 0 {
		return nil
	}

	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(labels)*2)
	for _, key := range keys {
		value := labels[key]
		if key == "" || value == "" {
			continue
		}
		if highCardinalityLabels[key] {
			continue
		}
		if len(value) > MaxLabelValueLength {
			value = value[:MaxLabelValueLength]
		}
		sanitizedKey := sanitizeLabelKey(key)
		if sanitizedKey == "" {
			continue
		}
		pairs = append(pairs, sanitizedKey, value)
	}
	return pairs
}

func sanitizeLabelKey(key string) string {
	key = strings.ToLower(key)
	key = strings.ReplaceAll(key, " ", "_")
	key = strings.ReplaceAll(key, "-", "_")

	result := make([]byte, 0, len(key))
	for i := 0; i < len(key); i++ {
		c := key[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_' {
			result = append(result, c)
		}
	}
	return string(result)
}
