// File: labels.go
// Role: Node label table and lowest-free allocator.
//
// Table order (index 0..155):
//   - 0..25    A..Z
//   - 26..51   A'..Z'
//   - 52..77   A''..Z''
//   - 78..103  a..z
//   - 104..129 a'..z'
//   - 130..155 a''..z''
package core

import "strings"

// Capacity is the number of distinct node labels.
const Capacity = 156

const (
	lettersPerTier = 26
	primeTiers     = 3
)

var (
	labelTable [Capacity]Label
	labelIndex = make(map[Label]int, Capacity)
)

func init() {
	i := 0
	for _, first := range []byte{'A', 'a'} {
		for primes := 0; primes < primeTiers; primes++ {
			suffix := strings.Repeat("'", primes)
			for k := 0; k < lettersPerTier; k++ {
				l := Label(string(rune(first+byte(k))) + suffix)
				labelTable[i] = l
				labelIndex[l] = i
				i++
			}
		}
	}
}

// LabelAt returns the label stored at table index i.
// It panics if i is outside [0, Capacity).
func LabelAt(i int) Label {
	return labelTable[i]
}

// IndexOf returns the table index of l, or -1 if l is not a valid label.
func IndexOf(l Label) int {
	if i, ok := labelIndex[l]; ok {
		return i
	}

	return -1
}

// Valid reports whether l belongs to the label table.
func (l Label) Valid() bool { return IndexOf(l) >= 0 }

// String implements fmt.Stringer.
func (l Label) String() string { return string(l) }

// Allocator issues labels from the table, always choosing the lowest free slot.
//
// Allocator is not safe for concurrent use on its own; Graph serializes
// access under its lock.
type Allocator struct {
	used [Capacity]bool
	n    int
}

// NewAllocator returns an allocator with every label free.
func NewAllocator() *Allocator {
	return &Allocator{}
}

// Next reserves and returns the lowest free label.
// The boolean is false when all Capacity labels are issued; nothing changes then.
func (a *Allocator) Next() (Label, bool) {
	if a.n == Capacity {
		return "", false
	}
	for i := range a.used {
		if !a.used[i] {
			a.used[i] = true
			a.n++
			return labelTable[i], true
		}
	}

	return "", false
}

// Reserve marks a specific label as issued. It returns false when l is not a
// valid label or is already issued.
func (a *Allocator) Reserve(l Label) bool {
	i := IndexOf(l)
	if i < 0 || a.used[i] {
		return false
	}
	a.used[i] = true
	a.n++

	return true
}

// Release returns l to the pool. Releasing a free or invalid label is a no-op.
func (a *Allocator) Release(l Label) {
	i := IndexOf(l)
	if i < 0 || !a.used[i] {
		return
	}
	a.used[i] = false
	a.n--
}

// InUse reports whether l is currently issued.
func (a *Allocator) InUse(l Label) bool {
	i := IndexOf(l)
	return i >= 0 && a.used[i]
}

// Len returns the number of issued labels.
func (a *Allocator) Len() int { return a.n }

// Reset frees every label.
func (a *Allocator) Reset() {
	a.used = [Capacity]bool{}
	a.n = 0
}
