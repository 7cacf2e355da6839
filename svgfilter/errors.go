package svgfilter

import "fmt"

// Errors raised while evaluating a filter chain. A FilterError aborts
// the whole chain for the element: per the filter-effects model the
// element is then rendered as empty, not as if the filter were absent.
// Limit errors are a distinct type so callers can tell malicious input
// apart from a malformed but honest document.

// ErrorKind classifies filter evaluation errors.
type ErrorKind uint8

const (
	// InvalidInput marks an `in` attribute naming a result that
	// no previous primitive produced, or a missing required input.
	InvalidInput ErrorKind = iota
	// InvalidUnits marks objectBoundingBox units used on an element
	// with no bounding box, or an out of range numeric attribute.
	InvalidUnits
	// BadInputSurfaceStatus marks an input surface in an unusable state.
	BadInputSurfaceStatus
	// BackendError wraps an allocation or drawing failure of the
	// rasterization backend.
	BackendError
	// InvalidLightSourceCount marks a lighting primitive with a number
	// of light source children other than one.
	InvalidLightSourceCount
	// LightingInputTooSmall marks a lighting input of less than two
	// pixels in either dimension.
	LightingInputTooSmall
	// ChildNodeInError marks a primitive whose child node failed.
	ChildNodeInError
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidInput:
		return "invalid input"
	case InvalidUnits:
		return "invalid units"
	case BadInputSurfaceStatus:
		return "bad input surface status"
	case BackendError:
		return "backend error"
	case InvalidLightSourceCount:
		return "invalid light source count"
	case LightingInputTooSmall:
		return "lighting input too small"
	case ChildNodeInError:
		return "child node in error"
	default:
		return "<unknown ErrorKind>"
	}
}

// FilterError aborts the evaluation of one filter chain.
type FilterError struct {
	Kind   ErrorKind
	Detail string
}

func (e FilterError) Error() string {
	if e.Detail == "" {
		return "filter: " + e.Kind.String()
	}
	return fmt.Sprintf("filter: %s: %s", e.Kind, e.Detail)
}

func invalidInput(format string, args ...interface{}) FilterError {
	return FilterError{Kind: InvalidInput, Detail: fmt.Sprintf(format, args...)}
}

func invalidUnits(format string, args ...interface{}) FilterError {
	return FilterError{Kind: InvalidUnits, Detail: fmt.Sprintf(format, args...)}
}

func backendError(err error) FilterError {
	return FilterError{Kind: BackendError, Detail: err.Error()}
}

// LimitError aborts the whole document render when a resource budget
// is exhausted.
type LimitError struct {
	What string
}

func (e LimitError) Error() string { return "render limit exceeded: " + e.What }
