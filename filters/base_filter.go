/*
Package filters provides probabilistic membership filters.

MembershipFilter is a Bloom filter: a space-efficient probabilistic structure
used to test whether an element is a member of a set. A negative answer is
definite; a positive answer is correct with a probability bounded by the
filter's estimated false positive rate. Elements cannot be removed
individually, only the whole filter can be cleared.
Refer: https://web.stanford.edu/~balaji/papers/bloom.pdf

Filters are not safe for concurrent use.
*/
package filters

type BaseFilter[T any] interface {
	Add(element T)
	Contains(element T) bool
	Clear()
}
