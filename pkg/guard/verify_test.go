package guard_test

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sharedkit/pkg/guard"
)

type signup struct {
	Email string
	Name  string
	Age   int
	Tags  []string
}

func TestVerify_CapturesExpression(t *testing.T) {
	var email string
	err := guard.Verify(email).NotNullOrEmpty().Err()
	require.Error(t, err)
	assert.Equal(t, "email is null or empty", err.Error())

	req := signup{Email: "bad"}
	err = guard.Verify(req.Email).NotNullOrEmpty().Email().Err()
	require.Error(t, err)
	assert.Equal(t, "req.Email has invalid format", err.Error())

	err = guard.Verify(len(req.Tags)).
		NotLess(1).
		Err()
	assert.Equal(t, "len(req.Tags) must not be less than 1", err.Error())

	err = guard.VerifyWith(guard.Default(), req.Age).InRange(18, 120).Err()
	assert.Equal(t, "req.Age must be in the range 18 to 120", err.Error())
}

func TestVerify_CallsOnOneLine(t *testing.T) {
	var first, second string
	for range 2 {
		e1, e2 := guard.Verify(first).NotNullOrEmpty().Err(), guard.Verify(second).NotNullOrEmpty().Err()
		require.Error(t, e1)
		require.Error(t, e2)
		assert.Equal(t, "first is null or empty", e1.Error())
		assert.Equal(t, "second is null or empty", e2.Error())
	}

	count := 0
	e3, e4 := guard.VerifyWith(guard.Default(), count).NotLess(1).Err(), guard.Verify(count).NotGreater(-1).Err()
	assert.Equal(t, "count must not be less than 1", e3.Error())
	assert.Equal(t, "count must not be greater than -1", e4.Error())
}

func TestVerify_ExplicitName(t *testing.T) {
	err := guard.Verify("", "email").NotNullOrEmpty().Err()
	assert.Equal(t, "email is null or empty", err.Error())

	t.Run("empty name falls back to the value", func(t *testing.T) {
		err := guard.Verify("not-an-email", "").Email().Err()
		assert.Equal(t, "not-an-email has invalid format", err.Error())
	})
}

func TestVerify_Chaining(t *testing.T) {
	t.Run("passes and returns value", func(t *testing.T) {
		v, err := guard.Verify("john@example.com", "email").NotNullOrEmpty().Email().Value()
		require.NoError(t, err)
		assert.Equal(t, "john@example.com", v)
	})

	t.Run("first failure wins", func(t *testing.T) {
		err := guard.Verify("", "password").NotNullOrEmpty().HasDigit().HasUppercase().Err()
		assert.Equal(t, "password is null or empty", err.Error())
	})

	t.Run("must panics with guard error", func(t *testing.T) {
		assert.Equal(t, 5, guard.Verify(5, "n").NotGreater(10).Must())

		defer func() {
			r := recover()
			gerr, ok := r.(*guard.Error)
			require.True(t, ok)
			assert.Equal(t, "n must not be greater than 10", gerr.Message)
		}()
		guard.Verify(11, "n").NotGreater(10).Must()
	})
}

func TestVerify_AllChecks(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		err  error
		want string
		kind error
	}{
		{"null or any", guard.Verify([]int{}, "ids").NotNullOrAny().Err(), "ids is null or has no elements", guard.ErrNullOrAny},
		{"greater", guard.Verify(11, "n").NotGreater(10).Err(), "n must not be greater than 10", guard.ErrGreater},
		{"less", guard.Verify("ab", "code").NotLess(3).Err(), "code must not be less than 3", guard.ErrLess},
		{"equals", guard.Verify("a", "confirm").Equals("b").Err(), "confirm is not equal to the expected value", guard.ErrNotEquals},
		{"matches", guard.Verify("abc", "zip").Matches(`\d{5}`).Err(), "zip has invalid format", guard.ErrInvalidFormat},
		{"name", guard.Verify("R2D2", "name").Name().Err(), "name has invalid format", guard.ErrInvalidFormat},
		{"subdomain", guard.Verify("a.b", "sub").Subdomain().Err(), "sub has invalid format", guard.ErrInvalidFormat},
		{"domain", guard.Verify("localhost", "domain").Domain().Err(), "domain has invalid format", guard.ErrInvalidFormat},
		{"hostname", guard.Verify("bad_host", "host").Hostname().Err(), "host has invalid format", guard.ErrInvalidFormat},
		{"directory", guard.Verify(dir+"/missing", "dir").Directory().Err(), "dir was not found", guard.ErrNotFound},
		{"file", guard.Verify(dir, "file").File().Err(), "file was not found", guard.ErrNotFound},
		{"extension", guard.Verify("a.exe", "upload").FileExtension("png", "jpg").Err(), "upload has invalid format", guard.ErrInvalidFormat},
		{"digit", guard.Verify("abc", "pw").HasDigit().Err(), "pw has invalid format", guard.ErrInvalidFormat},
		{"unique", guard.Verify("aab", "pw").UniqueChars().Err(), "pw has invalid format", guard.ErrInvalidFormat},
		{"especial", guard.Verify("abc", "pw").HasEspecialChars().Err(), "pw has invalid format", guard.ErrInvalidFormat},
		{"lowercase", guard.Verify("ABC", "pw").HasLowercase().Err(), "pw has invalid format", guard.ErrInvalidFormat},
		{"uppercase", guard.Verify("abc", "pw").HasUppercase().Err(), "pw has invalid format", guard.ErrInvalidFormat},
		{"custom", guard.Verify(3, "n").Custom(guard.KindAlreadyExists, func(n int) bool { return n == 3 }).Err(), "n already exists", guard.ErrAlreadyExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, tt.err)
			assert.Equal(t, tt.want, tt.err.Error())
			assert.ErrorIs(t, tt.err, tt.kind)
			assert.ErrorIs(t, tt.err, guard.ErrGuard)
		})
	}

	t.Run("passing checks", func(t *testing.T) {
		f, err := os.CreateTemp(dir, "*.png")
		require.NoError(t, err)
		require.NoError(t, f.Close())

		assert.NoError(t, guard.Verify(dir, "dir").Directory().Err())
		assert.NoError(t, guard.Verify(f.Name(), "file").File().FileExtension(".PNG").Err())
		assert.NoError(t, guard.Verify("Secr3t!", "pw").HasDigit().HasEspecialChars().HasLowercase().HasUppercase().Err())
		assert.NoError(t, guard.Verify(3, "n").Custom(guard.KindCustom, nil).Err())
	})
}

func TestVerifyWith_CustomCatalog(t *testing.T) {
	c, err := guard.NewCatalog(guard.WithMessage(guard.KindNullOrEmpty, "{param} est vide"))
	require.NoError(t, err)
	checker := guard.NewChecker(c)

	err = guard.VerifyWith(checker, "", "nom").NotNullOrEmpty().Err()
	assert.Equal(t, "nom est vide", err.Error())
	assert.Same(t, c, checker.Catalog())

	assert.NoError(t, guard.VerifyWith(nil, "x", "x").NotNullOrEmpty().Err())
}

func TestErrors(t *testing.T) {
	t.Run("join", func(t *testing.T) {
		assert.NoError(t, guard.Join(nil))
		assert.NoError(t, guard.Join([]string{}))

		err := guard.Join([]string{"email is null or empty", "age must not be less than 18"})
		require.Error(t, err)
		assert.Equal(t, "email is null or empty, age must not be less than 18", err.Error())
		assert.ErrorIs(t, err, guard.ErrAggregate)

		blank := guard.Join([]string{"", ""})
		require.Error(t, blank)
		assert.Equal(t, ", ", blank.Error())
		assert.ErrorIs(t, blank, guard.ErrAggregate)
	})

	t.Run("constructors", func(t *testing.T) {
		assert.Equal(t, "user was not found", guard.NotFound("user").Error())
		assert.Equal(t, "slug already exists", guard.AlreadyExists("slug").Error())
		assert.ErrorIs(t, guard.NotFound("user"), guard.ErrNotFound)
	})

	t.Run("as error through wrapping", func(t *testing.T) {
		wrapped := errors.Join(errors.New("create user"), guard.Verify("", "email").NotNullOrEmpty().Err())
		gerr, ok := guard.AsError(wrapped)
		require.True(t, ok)
		assert.Equal(t, guard.KindNullOrEmpty, gerr.Kind)
		assert.Equal(t, "email", gerr.Param)

		_, ok = guard.AsError(errors.New("plain"))
		assert.False(t, ok)
	})

	t.Run("kinds do not cross match", func(t *testing.T) {
		err := guard.NotFound("user")
		assert.NotErrorIs(t, err, guard.ErrAlreadyExists)
	})
}

func TestChecker_Errors(t *testing.T) {
	c := guard.Default()
	errs := c.Errors(map[string]func(*guard.Checker) error{
		"email": func(c *guard.Checker) error { return guard.VerifyWith(c, "bad", "email").Email().Err() },
		"name":  func(c *guard.Checker) error { return guard.VerifyWith(c, "John", "name").Name().Err() },
		"skip":  nil,
	})
	assert.Equal(t, map[string][]string{"email": {"email has invalid format"}}, errs)

	assert.Nil(t, c.Errors(nil))
}
