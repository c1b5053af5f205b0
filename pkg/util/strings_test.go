package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetAsInteger(t *testing.T) {
	n, err := GetAsInteger("42")
	assert.NoError(t, err)
	assert.Equal(t, 42, n)

	n, err = GetAsInteger(7.0)
	assert.NoError(t, err)
	assert.Equal(t, 7, n)

	_, err = GetAsInteger("not a number")
	assert.Error(t, err)
}

func TestGetAsFloat(t *testing.T) {
	f, err := GetAsFloat("1.55")
	assert.NoError(t, err)
	assert.Equal(t, 1.55, f)

	f, err = GetAsFloat(3)
	assert.NoError(t, err)
	assert.Equal(t, 3.0, f)

	_, err = GetAsFloat("")
	assert.Error(t, err)
}

func TestGetAsString(t *testing.T) {
	s, err := GetAsString(42)
	assert.NoError(t, err)
	assert.Equal(t, "42", s)

	s, err = GetAsString("already")
	assert.NoError(t, err)
	assert.Equal(t, "already", s)
}
