package client

import "context"

// BoolField is the flip-then-confirm-or-revert protocol for one
// boolean field: apply the flip locally first so the UI reacts
// immediately, then persist, and roll the local state back only if
// the persistence call fails. Every bookmark control in the app goes
// through this one implementation.
type BoolField struct {
	// Read returns the current committed value; absent counts as false.
	Read func() bool
	// Apply writes the value into local view state.
	Apply func(bool)
	// Persist writes the value to the store.
	Persist func(context.Context, bool) error
}

// Toggle flips the field. On persistence failure local state is
// reverted to the value read at the start and the error is returned.
func (f BoolField) Toggle(ctx context.Context) error {
	current := f.Read()
	next := !current
	f.Apply(next)
	if err := f.Persist(ctx, next); err != nil {
		f.Apply(current)
		return err
	}
	return nil
}
