/*
Package dynarray provides a growable array with amortized O(1) appends.

Storage starts at 16 entries and grows by half again whenever it is full.
Positional access is O(1), InsertAt is O(N) because it shifts the tail.

Usage:
	a := dynarray.New[int]()
	a.PushBack(1)
	a.InsertAt(0, 0)

	for a.Len() > 0 {
		fmt.Println(a.PopBack())
	}

Accessing an index outside of [0, Len()) panics. Like slice indexing, this is
a programming error and not something to recover from.
*/
package dynarray

import "fmt"

const initialCap = 16

// Array is a contiguous, growable array of T. The zero value is ready to use.
// An Array must not be copied after first use.
type Array[T any] struct {
	data []T
	size int
}

// New returns an empty Array with the initial capacity already allocated.
func New[T any]() *Array[T] {
	return &Array[T]{data: make([]T, initialCap)}
}

// Len returns the number of entries in the Array.
func (a *Array[T]) Len() int {
	return a.size
}

// Cap returns the number of entries the Array can hold before it must grow.
func (a *Array[T]) Cap() int {
	return len(a.data)
}

// PushBack appends v. It returns true if the storage had to be reallocated.
func (a *Array[T]) PushBack(v T) bool {
	grew := a.grow()
	a.data[a.size] = v
	a.size++
	return grew
}

// InsertAt inserts v at index i, shifting everything at i and above up by one.
// i may equal Len(), which is the same as PushBack(). It returns true if the
// storage had to be reallocated.
func (a *Array[T]) InsertAt(i int, v T) bool {
	if i < 0 || i > a.size {
		panic(fmt.Sprintf("dynarray: InsertAt(%d) with length %d", i, a.size))
	}
	grew := a.grow()
	copy(a.data[i+1:a.size+1], a.data[i:a.size])
	a.data[i] = v
	a.size++
	return grew
}

// PopBack removes and returns the last entry.
func (a *Array[T]) PopBack() T {
	if a.size == 0 {
		panic("dynarray: PopBack() on an empty array")
	}
	a.size--
	v := a.data[a.size]

	// Drop our reference so popped pointers can be collected.
	var zero T
	a.data[a.size] = zero
	return v
}

// At returns the entry at index i.
func (a *Array[T]) At(i int) T {
	if i < 0 || i >= a.size {
		panic(fmt.Sprintf("dynarray: At(%d) with length %d", i, a.size))
	}
	return a.data[i]
}

// grow makes room for one more entry.
func (a *Array[T]) grow() bool {
	if a.size < len(a.data) {
		return false
	}

	n := len(a.data) + len(a.data)/2
	if n < initialCap {
		n = initialCap
	}
	data := make([]T, n)
	copy(data, a.data[:a.size])
	a.data = data
	return true
}
