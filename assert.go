package vector

// assert panics with msg when the package is built with the vectordebug
// tag and cond does not hold. Release builds compile it away.
func assert(cond bool, msg string) {
	if debugAssertions && !cond {
		panic("vector: " + msg)
	}
}
