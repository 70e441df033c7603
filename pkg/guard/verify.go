package guard

import (
	"fmt"
	"runtime"
)

// Verifier runs fail-fast checks on a single value. The first failing check
// records an error and every later check is skipped.
//
//	email, err := guard.Verify(req.Email).NotNullOrEmpty().Email().Value()
//
// Without an explicit name the source text of the Verify argument
// ("req.Email" above) labels the message.
type Verifier[T any] struct {
	checker *Checker
	value   T
	name    string
	named   bool
	site    callSite
	err     *Error
}

// Verify starts a check chain on value using the default catalog.
func Verify[T any](value T, name ...string) *Verifier[T] {
	v := &Verifier[T]{checker: defaultChecker, value: value}
	if len(name) > 0 {
		v.name, v.named = name[0], true
	} else if pc, file, line, ok := runtime.Caller(1); ok {
		v.site = callSite{pc: pc, file: file, line: line, funcName: "Verify", argIndex: 0}
	}
	return v
}

// VerifyWith starts a check chain on value using c's catalog.
func VerifyWith[T any](c *Checker, value T, name ...string) *Verifier[T] {
	if c == nil {
		c = defaultChecker
	}
	v := &Verifier[T]{checker: c, value: value}
	if len(name) > 0 {
		v.name, v.named = name[0], true
	} else if pc, file, line, ok := runtime.Caller(1); ok {
		v.site = callSite{pc: pc, file: file, line: line, funcName: "VerifyWith", argIndex: 1}
	}
	return v
}

// label is the parameter text used in messages: the explicit name, else the
// captured expression, else the value itself.
func (v *Verifier[T]) label() string {
	name := v.name
	if !v.named {
		name = v.site.expression()
	}
	if name == "" {
		return fmt.Sprint(v.value)
	}
	return name
}

func (v *Verifier[T]) check(failed bool, kind Kind, min, max any) *Verifier[T] {
	if v.err == nil && failed {
		v.err = v.checker.Fail(kind, Args{Param: v.label(), Min: min, Max: max})
	}
	return v
}

func (v *Verifier[T]) run(kind Kind, o func(values ...any) Outcome) *Verifier[T] {
	if v.err != nil {
		return v
	}
	return v.check(o(v.value).HasErrors, kind, nil, nil)
}

// NotNullOrEmpty fails when the value is nil, blank or zero.
func (v *Verifier[T]) NotNullOrEmpty() *Verifier[T] { return v.run(KindNullOrEmpty, IsNullOrEmpty) }

// NotNullOrAny fails when the value is a nil or empty collection.
func (v *Verifier[T]) NotNullOrAny() *Verifier[T] { return v.run(KindNullOrAny, IsNullOrAny) }

// NotGreater fails when the measured value exceeds max.
func (v *Verifier[T]) NotGreater(max int64) *Verifier[T] {
	if v.err != nil {
		return v
	}
	return v.check(IsGreater(max, v.value).HasErrors, KindGreater, nil, max)
}

// NotLess fails when the measured value is below min.
func (v *Verifier[T]) NotLess(min int64) *Verifier[T] {
	if v.err != nil {
		return v
	}
	return v.check(IsLess(min, v.value).HasErrors, KindLess, min, nil)
}

// InRange fails when the value is absent or outside [min, max].
func (v *Verifier[T]) InRange(min, max int64) *Verifier[T] {
	if v.err != nil {
		return v
	}
	return v.check(IsRange(min, max, v.value).HasErrors, KindRange, min, max)
}

// Equals fails when the value is not deeply equal to expected.
func (v *Verifier[T]) Equals(expected T) *Verifier[T] {
	if v.err != nil {
		return v
	}
	return v.check(IsEqual(expected, v.value).HasErrors, KindNotEquals, nil, nil)
}

// Matches fails when the value does not fully match pattern.
func (v *Verifier[T]) Matches(pattern string) *Verifier[T] {
	if v.err != nil {
		return v
	}
	return v.check(v.checker.IsRegexMatch(pattern, v.value).HasErrors, KindInvalidFormat, nil, nil)
}

// Name fails unless the value is a personal name.
func (v *Verifier[T]) Name() *Verifier[T] { return v.run(KindInvalidFormat, v.checker.IsName) }

// Email fails unless the value is a plain e-mail address.
func (v *Verifier[T]) Email() *Verifier[T] { return v.run(KindInvalidFormat, v.checker.IsEmail) }

// Subdomain fails unless the value is a single DNS label.
func (v *Verifier[T]) Subdomain() *Verifier[T] {
	return v.run(KindInvalidFormat, v.checker.IsSubdomain)
}

// Domain fails unless the value is a domain name.
func (v *Verifier[T]) Domain() *Verifier[T] { return v.run(KindInvalidFormat, v.checker.IsDomain) }

// Hostname fails unless the value is a host name.
func (v *Verifier[T]) Hostname() *Verifier[T] {
	return v.run(KindInvalidFormat, v.checker.IsHostname)
}

// Directory fails with a not-found error unless the value names an existing directory.
func (v *Verifier[T]) Directory() *Verifier[T] { return v.run(KindNotFound, IsDirectory) }

// File fails with a not-found error unless the value names an existing regular file.
func (v *Verifier[T]) File() *Verifier[T] { return v.run(KindNotFound, IsFile) }

// FileExtension fails unless the value has one of the allowed extensions.
func (v *Verifier[T]) FileExtension(allowed ...string) *Verifier[T] {
	if v.err != nil {
		return v
	}
	return v.check(IsFileExtension(allowed, v.value).HasErrors, KindInvalidFormat, nil, nil)
}

// HasDigit fails unless the value contains a digit.
func (v *Verifier[T]) HasDigit() *Verifier[T] { return v.run(KindInvalidFormat, IsDigit) }

// UniqueChars fails when any character repeats.
func (v *Verifier[T]) UniqueChars() *Verifier[T] { return v.run(KindInvalidFormat, IsUniqueChars) }

// HasEspecialChars fails unless the value contains a special character.
func (v *Verifier[T]) HasEspecialChars() *Verifier[T] {
	return v.run(KindInvalidFormat, IsEspecialChars)
}

// HasLowercase fails unless the value contains a lowercase letter.
func (v *Verifier[T]) HasLowercase() *Verifier[T] { return v.run(KindInvalidFormat, IsLowercase) }

// HasUppercase fails unless the value contains an uppercase letter.
func (v *Verifier[T]) HasUppercase() *Verifier[T] { return v.run(KindInvalidFormat, IsUppercase) }

// Custom fails with kind when invalid reports true for the value.
func (v *Verifier[T]) Custom(kind Kind, invalid func(T) bool) *Verifier[T] {
	if v.err != nil || invalid == nil {
		return v
	}
	return v.check(invalid(v.value), kind, nil, nil)
}

// Err returns the first failure, or nil.
func (v *Verifier[T]) Err() error {
	if v.err == nil {
		return nil
	}
	return v.err
}

// Value returns the checked value together with the first failure.
func (v *Verifier[T]) Value() (T, error) {
	return v.value, v.Err()
}

// Must returns the value or panics with the *Error of the first failure.
func (v *Verifier[T]) Must() T {
	if v.err != nil {
		panic(v.err)
	}
	return v.value
}
