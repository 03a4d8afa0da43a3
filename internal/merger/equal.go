package merger

import (
	"encoding/json"
	"strconv"
)

// strictEqual compares two decoded JSON values with the semantics used for symbol and
// swap address matching: an absent value equals only another absent value, scalars
// compare by value, and objects or arrays never compare equal.
func strictEqual(a interface{}, aPresent bool, b interface{}, bPresent bool) bool {
	if !aPresent || !bPresent {
		return !aPresent && !bPresent
	}

	switch av := a.(type) {
	case nil:
		return b == nil
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case json.Number:
		return numberEqual(av, b)
	case float64:
		return numberEqual(json.Number(strconv.FormatFloat(av, 'g', -1, 64)), b)
	default:
		return false
	}
}

func numberEqual(a json.Number, b interface{}) bool {
	var bn json.Number
	switch bv := b.(type) {
	case json.Number:
		bn = bv
	case float64:
		bn = json.Number(strconv.FormatFloat(bv, 'g', -1, 64))
	default:
		return false
	}
	if a == bn {
		return true
	}
	af, errA := a.Float64()
	bf, errB := bn.Float64()
	return errA == nil && errB == nil && af == bf
}
