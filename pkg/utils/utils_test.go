package utils

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveDuplicates(t *testing.T) {
	assert.Equal(t, []int{3, 1, 2}, RemoveDuplicates([]int{3, 1, 3, 2, 1}))
	assert.Equal(t, []string{}, RemoveDuplicates([]string{}))
}

func TestMap(t *testing.T) {
	assert.Equal(t, []string{"1", "2"}, Map([]int{1, 2}, strconv.Itoa))
}

func TestMediaURL(t *testing.T) {
	assert.Equal(t, "", MediaURL("http://cdn", ""))
	assert.Equal(t, "http://cdn/products/a.png", MediaURL("http://cdn/", "/products/a.png"))
	assert.Equal(t, "http://cdn/products/a.png", MediaURL("http://cdn", "products/a.png"))
}
