package models

// Priority constants as the service reports them (1 = lowest, 4 = highest)
const (
	PriorityNormal  = 1
	PriorityMedium  = 2
	PriorityHigh    = 3
	PriorityHighest = 4
)

// priorityLabels is indexed directly by the raw 1-4 priority value, so
// priority 1 maps to "low" and priority 4 to "highest". The importer this
// tool replaces rendered priorities exactly this way, and changing the
// mapping would break annotations in already-imported notes.
var priorityLabels = [...]string{"none", "low", "medium", "high", "highest"}

// PriorityLabel returns the rendered label for a raw priority value.
// Values outside the service's 1-4 range fall back to "none".
func PriorityLabel(priority int) string {
	if priority < 0 || priority >= len(priorityLabels) {
		return priorityLabels[0]
	}
	return priorityLabels[priority]
}
