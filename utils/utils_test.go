package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringInSlice(t *testing.T) {
	assert.True(t, StringInSlice("TP", []string{"TP", "FP", "TN", "FN"}))
	assert.False(t, StringInSlice("NA", []string{"TP", "FP", "TN", "FN"}))
	assert.False(t, StringInSlice("TP", nil))
}

func TestGetLeadingStringInBetweenSquareBrackets(t *testing.T) {
	t.Run("trims a prepended status code", func(t *testing.T) {
		bracket, rest := GetLeadingStringInBetweenSquareBrackets(`[200 OK] {"hits":{}}`)

		assert.Equal(t, "[200 OK]", bracket)
		assert.Equal(t, `{"hits":{}}`, rest)
	})

	t.Run("leaves a body-leading array alone", func(t *testing.T) {
		bracket, rest := GetLeadingStringInBetweenSquareBrackets(`{"ids":["a","b"]}`)

		assert.Empty(t, bracket)
		assert.Empty(t, rest)
	})

	t.Run("no brackets at all", func(t *testing.T) {
		bracket, rest := GetLeadingStringInBetweenSquareBrackets("plain text")

		assert.Empty(t, bracket)
		assert.Empty(t, rest)
	})
}
