package sparql

import (
	"strings"
	"time"
)

const xsdDateTime = "http://www.w3.org/2001/XMLSchema#dateTime"

var stringEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
	"\b", `\b`,
	"\f", `\f`,
)

// EscapeString renders s as a quoted SPARQL string literal. Every value
// interpolated into a query or update must go through this or EscapeURI.
func EscapeString(s string) string {
	return `"` + stringEscaper.Replace(s) + `"`
}

var uriEscaper = strings.NewReplacer(
	"<", "%3C",
	">", "%3E",
	`"`, "%22",
	"{", "%7B",
	"}", "%7D",
	"|", "%7C",
	"^", "%5E",
	"`", "%60",
	`\`, "%5C",
	" ", "%20",
	"\n", "%0A",
	"\r", "%0D",
	"\t", "%09",
)

// EscapeURI renders u as a SPARQL IRI reference. Characters that would
// terminate or corrupt the <...> form are percent encoded.
func EscapeURI(u string) string {
	return "<" + uriEscaper.Replace(u) + ">"
}

// EscapeDateTime renders t as an xsd:dateTime typed literal.
func EscapeDateTime(t time.Time) string {
	return `"` + t.UTC().Format(time.RFC3339) + `"^^` + EscapeURI(xsdDateTime)
}
