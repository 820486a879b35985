package crud

// Mode is the tagged editing state of a form: either Creating or Editing.
type Mode[T any] interface {
	isMode()
}

// Creating means the form builds a new record.
type Creating[T any] struct{}

// Editing means the form is bound to an existing record. Snapshot holds the
// record as it was when selected.
type Editing[T any] struct {
	ID       uint
	Snapshot T
}

func (Creating[T]) isMode() {}
func (Editing[T]) isMode()  {}

// EditingID returns the identifier bound to mode, if any.
func EditingID[T any](mode Mode[T]) (uint, bool) {
	if e, ok := mode.(Editing[T]); ok {
		return e.ID, true
	}
	return 0, false
}
