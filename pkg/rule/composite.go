package rule

import "fmt"

// AllOf returns a CheckFunc that holds when every sub-condition
// holds. On failure it reports the first unmet sub-condition,
// preserving the ordered-diagnostic contract.
func AllOf(engine Engine, conds ...Condition) CheckFunc {
	return func(_ Condition, text string) (bool, string) {
		ok, detail := engine.Apply(conds, text)
		if !ok {
			return false, detail
		}
		return true, fmt.Sprintf(
			"all %d conditions hold", len(conds),
		)
	}
}

// AnyOf returns a CheckFunc that holds when at least one
// sub-condition holds.
func AnyOf(engine Engine, conds ...Condition) CheckFunc {
	return func(_ Condition, text string) (bool, string) {
		for _, cond := range conds {
			if ok, detail := engine.Check(cond, text); ok {
				return true, detail
			}
		}
		return false, fmt.Sprintf(
			"none of %d conditions hold", len(conds),
		)
	}
}
