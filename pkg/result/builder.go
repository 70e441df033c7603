package result

// Builder accumulates envelope settings. Build snapshots them into an
// immutable Result; the builder can keep being used afterwards.
type Builder[T any] struct {
	message string
	details any
	errors  map[string][]string
	data    *T
}

// New starts a builder.
func New[T any]() *Builder[T] {
	return &Builder[T]{}
}

// Message sets the envelope message.
func (b *Builder[T]) Message(message string) *Builder[T] {
	b.message = message
	return b
}

// Details sets failure details. They are dropped on success.
func (b *Builder[T]) Details(details any) *Builder[T] {
	b.details = details
	return b
}

// Data sets the payload. It is dropped on failure.
func (b *Builder[T]) Data(data T) *Builder[T] {
	b.data = &data
	return b
}

// AddError appends a message for field. Blank messages are ignored.
func (b *Builder[T]) AddError(field, message string) *Builder[T] {
	if message == "" {
		return b
	}
	if b.errors == nil {
		b.errors = make(map[string][]string)
	}
	b.errors[field] = append(b.errors[field], message)
	return b
}

// Check records err under field when it is non-nil.
func (b *Builder[T]) Check(field string, err error) *Builder[T] {
	if err != nil {
		b.AddError(field, err.Error())
	}
	return b
}

// HasErrors reports whether any field error was added.
func (b *Builder[T]) HasErrors() bool {
	return len(b.errors) > 0
}

// Build returns a failure when any field error was added, otherwise a
// success carrying the data set so far.
func (b *Builder[T]) Build() Result[T] {
	if b.HasErrors() {
		r := FailFields[T](b.errors, b.details)
		r.message = b.message
		return r
	}
	r := Result[T]{success: true, message: b.message}
	if b.data != nil {
		d := *b.data
		r.data = &d
	}
	return r
}

// BuildFailure always returns a failure envelope with the collected settings.
func (b *Builder[T]) BuildFailure() Result[T] {
	r := FailFields[T](b.errors, b.details)
	r.message = b.message
	return r
}
