package mention

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "no mentions",
			text: "just a plain note about the interview",
			want: nil,
		},
		{
			name: "empty text",
			text: "",
			want: nil,
		},
		{
			name: "single mention",
			text: "please review this, @bob",
			want: []string{"bob"},
		},
		{
			name: "repeats collapse to one",
			text: "@alice @bob @alice",
			want: []string{"alice", "bob"},
		},
		{
			name: "case preserved, variants distinct",
			text: "@Alice and @alice",
			want: []string{"Alice", "alice"},
		},
		{
			name: "digits and underscores are word characters",
			text: "ping @jane_doe2 about this",
			want: []string{"jane_doe2"},
		},
		{
			name: "token cut at non-word character",
			text: "thanks @bob! and @alice, bye",
			want: []string{"bob", "alice"},
		},
		{
			name: "bare @ is not a mention",
			text: "meet @ noon",
			want: nil,
		},
		{
			name: "email local part is not scanned, domain is",
			text: "contact me at a@b.com",
			want: []string{"b"},
		},
		{
			name: "mention at start and end",
			text: "@carol please sync with @dave",
			want: []string{"carol", "dave"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.text))
		})
	}
}
