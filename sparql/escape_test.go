package sparql_test

import (
	"testing"
	"time"

	"github.com/goliatone/go-login/sparql"
	"github.com/stretchr/testify/assert"
)

func TestEscapeString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "Plain value",
			input: "john_doe",
			want:  `"john_doe"`,
		},
		{
			name:  "Embedded quotes",
			input: `o"hara`,
			want:  `"o\"hara"`,
		},
		{
			name:  "Backslash",
			input: `a\b`,
			want:  `"a\\b"`,
		},
		{
			name:  "Newline and tab",
			input: "line1\nline2\tend",
			want:  `"line1\nline2\tend"`,
		},
		{
			name:  "Injection attempt",
			input: `"} INSERT DATA { <x> <y> "z`,
			want:  `"\"} INSERT DATA { <x> <y> \"z"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sparql.EscapeString(tt.input))
		})
	}
}

func TestEscapeURI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "Plain URI",
			input: "http://mu.semte.ch/sessions/abc",
			want:  "<http://mu.semte.ch/sessions/abc>",
		},
		{
			name:  "Angle brackets neutralized",
			input: "http://x/a> <http://y/b",
			want:  "<http://x/a%3E%20%3Chttp://y/b>",
		},
		{
			name:  "Whitespace encoded",
			input: "http://x/a b",
			want:  "<http://x/a%20b>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sparql.EscapeURI(tt.input))
		})
	}
}

func TestEscapeDateTime(t *testing.T) {
	at := time.Date(2024, 5, 2, 13, 37, 42, 0, time.UTC)
	got := sparql.EscapeDateTime(at)

	assert.Equal(t, `"2024-05-02T13:37:42Z"^^<http://www.w3.org/2001/XMLSchema#dateTime>`, got)
}
