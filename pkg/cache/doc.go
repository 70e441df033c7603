// Package cache provides a generic, thread-safe LRU cache.
//
// The guard package keeps parsed caller sources and compiled patterns in it, and
// the query package keeps resolved property accessors, so both stay cheap on hot
// paths without growing without bound.
//
// # Usage
//
//	c := cache.New[string, *regexp.Regexp](64)
//	re, err := c.GetOrCompute(pattern, func() (*regexp.Regexp, error) {
//		return regexp.Compile(pattern)
//	})
//
// Get, Put and Remove are O(1). When the cache is full the least recently used
// entry is evicted and the OnEvict callback, if any, is called with it.
package cache
