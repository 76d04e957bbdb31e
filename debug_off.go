//go:build !vectordebug

package vector

const debugAssertions = false
