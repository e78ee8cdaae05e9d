package stepreport

// BuildName composes a step display name from an optional prefix, an
// infix inserted between keyword and text, and the step text itself.
func BuildName(prefix, infix, argument string) string {
	return prefix + infix + argument
}
