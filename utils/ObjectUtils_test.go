package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type queryStruct struct {
	PageNum  int    `json:"pageNum,omitempty"`
	Title    string `json:"title,omitempty"`
	Status   string `json:"status"`
	Internal string `json:"-"`
	NoTag    int
	hidden   int
}

func TestStructToMap(t *testing.T) {
	m := StructToMap(&queryStruct{PageNum: 2, NoTag: 5, Internal: "x", hidden: 1})
	assert.Equal(t, map[string]interface{}{
		"pageNum": 2,
		"status":  "",
		"noTag":   5,
	}, m)
}

func TestStructToMapNonStruct(t *testing.T) {
	assert.Empty(t, StructToMap(nil))
	assert.Empty(t, StructToMap(3))
	var p *queryStruct
	assert.Empty(t, StructToMap(p))
}
