package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_MakeTextList(t *testing.T) {
	testCases := []struct {
		name     string
		items    []string
		articles bool
		expect   string
	}{
		{
			name:   "empty list",
			items:  []string{},
			expect: "",
		},
		{
			name:   "one item bare",
			items:  []string{"Old Keeper"},
			expect: "Old Keeper",
		},
		{
			name:     "one item with article",
			items:    []string{"Golden Coin"},
			articles: true,
			expect:   "a Golden Coin",
		},
		{
			name:     "article respects leading vowel",
			items:    []string{"Apple"},
			articles: true,
			expect:   "an Apple",
		},
		{
			name:     "two items",
			items:    []string{"Golden Coin", "Torch"},
			articles: true,
			expect:   "a Golden Coin and a Torch",
		},
		{
			name:     "three items get an oxford comma",
			items:    []string{"Golden Coin", "Torch", "Apple"},
			articles: true,
			expect:   "a Golden Coin, a Torch, and an Apple",
		},
		{
			name:   "three items bare",
			items:  []string{"Ana", "Ben", "Cho"},
			expect: "Ana, Ben, and Cho",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			assert.Equal(tc.expect, MakeTextList(tc.items, tc.articles))
		})
	}
}

func Test_ArticleFor(t *testing.T) {
	testCases := []struct {
		name     string
		s        string
		definite bool
		expect   string
	}{
		{name: "consonant start", s: "torch", expect: "a"},
		{name: "vowel start", s: "apple", expect: "an"},
		{name: "capital vowel start", s: "Old Keeper", expect: "an"},
		{name: "definite", s: "torch", definite: true, expect: "the"},
		{name: "empty string", s: "", expect: "a"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			assert.Equal(tc.expect, ArticleFor(tc.s, tc.definite))
		})
	}
}
