package task

// NextID returns the smallest positive integer for which used reports false.
// Ids freed by completed tasks are handed out again.
func NextID(used func(int) bool) int {
	id := 1
	for used(id) {
		id++
	}
	return id
}
