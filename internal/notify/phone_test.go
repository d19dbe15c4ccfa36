package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"dashed domestic", "702-470-7392", "+17024707392"},
		{"domestic with country digit", "17024707392", "+17024707392"},
		{"already international", "+447911123456", "+447911123456"},
		{"spaces and parens", "(702) 470 7392", "+17024707392"},
		{"short number kept as-is", "12345", "+12345"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePhone(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizePhoneRejectsEmpty(t *testing.T) {
	for _, in := range []string{"", "---", "abc"} {
		_, err := NormalizePhone(in)
		assert.Error(t, err, "input %q", in)
	}
}
