package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Category
	}{
		{name: "mainline", in: "mainline", want: CategoryMainline},
		{name: "premium", in: "premium", want: CategoryPremium},
		{name: "others", in: "others", want: CategoryOthers},
		{name: "hot rods", in: "hot_rods", want: CategoryHotRods},
		{name: "unknown value", in: "vintage", want: CategoryUnknown},
		{name: "empty", in: "", want: CategoryUnknown},
		{name: "case sensitive", in: "Mainline", want: CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCategory(tt.in))
		})
	}
}

func TestCategory_Valid(t *testing.T) {
	assert.True(t, CategoryMainline.Valid())
	assert.True(t, CategoryUnknown.Valid())
	assert.False(t, Category("vintage").Valid())
	assert.False(t, Category("").Valid())
}
