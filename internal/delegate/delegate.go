package delegate

import (
	"github.com/estimate-tools/estimate-delegator/constants"
	"github.com/estimate-tools/estimate-delegator/internal/entity"
)

// Apply returns a new item slice with each item's category looked up in the
// rule map. Categories without a rule fall back to Unassigned. Pure
// transform; input items are not touched.
func Apply(items []entity.LineItem, rules map[constants.Category]string) []entity.LineItem {
	out := make([]entity.LineItem, len(items))
	for i, item := range items {
		if assigned, ok := rules[item.Category]; ok {
			item.AssignedTo = assigned
		} else {
			item.AssignedTo = constants.Unassigned
		}
		out[i] = item
	}
	return out
}
