package internal

type Status int

const (
	StatusFail Status = iota
	StatusSuccess
)

// A value that may not exist. Geometric questions without an answer (such as
// where two parallel lines meet) return a failed Result instead of an error.
// Callers must check the status before reading Value.
type Result[T any] struct {
	Value  T
	Status Status
}

func Success[T any](value T) Result[T] {
	return Result[T]{Value: value, Status: StatusSuccess}
}

func Fail[T any]() Result[T] {
	return Result[T]{Status: StatusFail}
}

func (r Result[T]) Ok() bool {
	return r.Status == StatusSuccess
}

// Comma-ok access to the value.
func (r Result[T]) Get() (T, bool) {
	return r.Value, r.Ok()
}
