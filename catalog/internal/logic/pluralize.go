package logic

// Pluralize returns word unchanged for a count of one and appends "s" otherwise.
func Pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}
