package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCode = MustNewCode("test.code")

func TestNewCode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "spatial.invalid_srid", false},
		{"valid single words", "sqlgen.unknown_function", false},
		{"missing package", "invalid_srid", true},
		{"uppercase", "Spatial.invalid", true},
		{"empty", "", true},
		{"trailing dot", "spatial.", true},
		{"three segments", "a.b.c", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCode(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCodeParts(t *testing.T) {
	c := MustNewCode("spatial.invalid_dimension")
	assert.Equal(t, "spatial", c.Package())
	assert.Equal(t, "invalid_dimension", c.Name())
	assert.Equal(t, "spatial.invalid_dimension", c.String())
}

func TestNew(t *testing.T) {
	err := New(testCode, "boom")
	assert.Equal(t, "boom", err.Error())
	assert.True(t, err.Code.Equals(testCode))
	require.NotEmpty(t, err.Stack)
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("underlying")
	err := Wrapf(testCode, cause, "context for %s", "op")

	assert.Equal(t, "context for op: underlying", err.Error())
	assert.Same(t, cause, stderrors.Unwrap(err))
}

func TestAddContext(t *testing.T) {
	err := New(testCode, "boom").AddContext("column", "geom")
	assert.Equal(t, "geom", err.Context["column"])
}

func TestHasCode(t *testing.T) {
	err := New(testCode, "boom")
	assert.True(t, HasCode(err, testCode))
	assert.False(t, HasCode(err, CommonInternal))
	assert.False(t, HasCode(stderrors.New("plain"), testCode))
	assert.Equal(t, "test.code", GetCode(err))
	assert.Equal(t, "", GetCode(stderrors.New("plain")))
}
