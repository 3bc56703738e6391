package ticketclass

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeClassType(t *testing.T) {
	tests := []struct {
		in   string
		want ClassType
		ok   bool
	}{
		{"A.D.I", ClassADI, true},
		{"B.D.I", ClassBDI, true},
		{"D.A.T.E", ClassDATE, true},
		{"adi", ClassADI, true},
		{"BDI", ClassBDI, true},
		{"date", ClassDATE, true},
		{"yoga", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := NormalizeClassType(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestClassTypeDisplay(t *testing.T) {
	assert.Equal(t, "A.D.I", ClassADI.Display())
	assert.Equal(t, "B.D.I", ClassBDI.Display())
	assert.Equal(t, "D.A.T.E", ClassDATE.Display())
}
