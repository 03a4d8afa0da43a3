package model

// Clone returns a deep copy of a decoded JSON value.
// Objects and arrays are copied recursively; scalars are returned as is.
func Clone(value interface{}) interface{} {
	switch typed := value.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(typed))
		for k, v := range typed {
			out[k] = Clone(v)
		}
		return out
	case TokenInfo:
		return typed.Clone()
	case []interface{}:
		out := make([]interface{}, len(typed))
		for i, v := range typed {
			out[i] = Clone(v)
		}
		return out
	default:
		return value
	}
}
