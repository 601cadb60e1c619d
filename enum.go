package kellog

// Enumerable is the interface implemented by types that can only be represented by enumerable, constant values.
//
// Implementing a new Enumerable or adding a new constant value ought to include updating
// any parsing function that produces it from text.
type Enumerable interface {
	String() string
	Valid() error
}
