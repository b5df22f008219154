package format_test

import (
	"bytes"
	"slices"
	"testing"

	"github.com/BurntSushi/toml"
	"go.followtheprocess.codes/curlthis/internal/format"
	"go.followtheprocess.codes/curlthis/internal/spec"
	"go.followtheprocess.codes/test"
)

// exportRequest is the request used to exercise the document exporters.
func exportRequest() spec.Request {
	return spec.Request{
		Method:          "POST",
		Target:          "/api",
		HTTPVersion:     "HTTP/1.1",
		ContentTypeHint: "application/json",
		Headers: []spec.Header{
			{Name: "Host", Value: "example.com"},
			{Name: "Content-Type", Value: "application/json"},
		},
		Body:     spec.Body(`{"a": 1}`),
		JSONBody: true,
	}
}

func TestJSONExporter(t *testing.T) {
	buf := &bytes.Buffer{}
	test.Ok(t, format.JSONExporter{}.Export(buf, exportRequest()))

	want := `{
  "method": "POST",
  "target": "/api",
  "httpVersion": "HTTP/1.1",
  "contentTypeHint": "application/json",
  "headers": [
    {
      "name": "Host",
      "value": "example.com"
    },
    {
      "name": "Content-Type",
      "value": "application/json"
    }
  ],
  "body": "{\"a\": 1}",
  "jsonBody": true
}
`

	test.Diff(t, buf.String(), want)
}

func TestYAMLExporter(t *testing.T) {
	buf := &bytes.Buffer{}
	test.Ok(t, format.YAMLExporter{}.Export(buf, exportRequest()))

	want := `method: POST
target: /api
httpVersion: HTTP/1.1
contentTypeHint: application/json
headers:
  - name: Host
    value: example.com
  - name: Content-Type
    value: application/json
body: '{"a": 1}'
jsonBody: true
`

	test.Diff(t, buf.String(), want)
}

func TestTOMLExporter(t *testing.T) {
	buf := &bytes.Buffer{}
	test.Ok(t, format.TOMLExporter{}.Export(buf, exportRequest()))

	// TOML formatting details (quoting, blank lines) belong to the
	// encoder, what matters is that the document decodes back to the
	// same request with header order intact
	var got spec.Request
	_, err := toml.Decode(buf.String(), &got)
	test.Ok(t, err)

	want := exportRequest()
	test.EqualFunc(t, got, want, func(a, b spec.Request) bool {
		return a.Method == b.Method &&
			a.Target == b.Target &&
			a.HTTPVersion == b.HTTPVersion &&
			a.ContentTypeHint == b.ContentTypeHint &&
			a.NonStandard == b.NonStandard &&
			a.JSONBody == b.JSONBody &&
			bytes.Equal(a.Body, b.Body) &&
			slices.Equal(a.Headers, b.Headers)
	})
}
