package curlthis_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.followtheprocess.codes/curlthis/internal/curlthis"
	"go.followtheprocess.codes/curlthis/internal/parser"
	"go.followtheprocess.codes/test"
)

// newApp returns an app under test along with its stdout and stderr buffers,
// with stdin primed to contain input.
func newApp(input string) (app curlthis.Curlthis, stdout, stderr *bytes.Buffer) {
	stdin := strings.NewReader(input)
	stdout = &bytes.Buffer{}
	stderr = &bytes.Buffer{}

	return curlthis.New(false, "test", stdin, stdout, stderr), stdout, stderr
}

// emptyConfig writes an empty config file and returns its path, so tests
// run with the built in defaults and are hermetic against any real user
// config.
func emptyConfig(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}

	return path
}

// writeFile writes content to path, for constructing test fixtures.
func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

func TestTransformStdin(t *testing.T) {
	tests := []struct {
		name    string                    // Name of the test case
		input   string                    // Raw request piped to stdin
		want    string                    // Expected stdout
		options curlthis.TransformOptions // Options under test
	}{
		{
			name: "post with json body",
			input: `POST /api/v1/users HTTP/1.1
Host: example.com
Content-Type: application/json
Authorization: Bearer token123

{"name": "John Doe", "email": "john@example.com"}`,
			options: curlthis.TransformOptions{Format: "curl", Plain: true, NoClipboard: true},
			want:    `curl -X POST 'https://example.com/api/v1/users' -H 'Content-Type: application/json' -H 'Authorization: Bearer token123' -d '{"name": "John Doe", "email": "john@example.com"}'` + "\n",
		},
		{
			name: "bodyless get",
			input: `GET /todos/1 HTTP/1.1
Host: example.com`,
			options: curlthis.TransformOptions{Format: "curl", Plain: true, NoClipboard: true},
			want:    "curl 'https://example.com/todos/1'\n",
		},
		{
			name: "proxy and cookie jar flags",
			input: `GET / HTTP/1.1
Host: example.com`,
			options: curlthis.TransformOptions{
				Format:      "curl",
				Plain:       true,
				NoClipboard: true,
				Proxy:       "http://localhost:8080",
				CookieJar:   "/tmp/jar.txt",
			},
			want: "curl 'https://example.com/' --proxy 'http://localhost:8080' --cookie-jar '/tmp/jar.txt'\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, stdout, stderr := newApp(tt.input)

			tt.options.Config = emptyConfig(t)

			test.Ok(t, app.Transform(tt.options))

			test.Diff(t, stdout.String(), tt.want)
			test.Equal(t, stderr.String(), "")
		})
	}
}

func TestTransformFromFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "request.request")
	raw := "GET /things HTTP/1.1\nHost: example.com\n"
	test.Ok(t, writeFile(file, raw))

	app, stdout, _ := newApp("") // stdin deliberately empty, the file wins

	options := curlthis.TransformOptions{
		File:        file,
		Format:      "curl",
		Plain:       true,
		NoClipboard: true,
		Config:      emptyConfig(t),
	}

	test.Ok(t, app.Transform(options))
	test.Diff(t, stdout.String(), "curl 'https://example.com/things'\n")
}

func TestTransformJSONFormat(t *testing.T) {
	app, stdout, _ := newApp("GET /todos/1 HTTP/1.1\nHost: example.com\n")

	options := curlthis.TransformOptions{
		Format:      "json",
		Plain:       true,
		NoClipboard: true,
		Config:      emptyConfig(t),
	}

	test.Ok(t, app.Transform(options))

	test.True(t, strings.Contains(stdout.String(), `"method": "GET"`))
	test.True(t, strings.Contains(stdout.String(), `"target": "/todos/1"`))
}

func TestTransformParseError(t *testing.T) {
	app, stdout, stderr := newApp("GET /foo HTTP/1.1\n")

	options := curlthis.TransformOptions{
		Format:      "curl",
		Plain:       true,
		NoClipboard: true,
		Config:      emptyConfig(t),
	}

	err := app.Transform(options)
	test.Err(t, err)

	var parseErr *parser.ParseError
	test.True(t, errors.As(err, &parseErr))
	test.Equal(t, parseErr.Kind, parser.KindMissingHostForRelativeTarget)

	// The offending line is echoed for the user, nothing hits stdout
	test.Equal(t, stdout.String(), "")
	test.True(t, strings.Contains(stderr.String(), "/foo"))
}

func TestTransformEmptyInput(t *testing.T) {
	app, _, _ := newApp("")

	options := curlthis.TransformOptions{
		Format:      "curl",
		Plain:       true,
		NoClipboard: true,
		Config:      emptyConfig(t),
	}

	err := app.Transform(options)
	test.Err(t, err)

	var parseErr *parser.ParseError
	test.True(t, errors.As(err, &parseErr))
	test.Equal(t, parseErr.Kind, parser.KindEmptyOrTruncatedInput)
}

func TestTransformInvalidFormat(t *testing.T) {
	app, _, _ := newApp("GET / HTTP/1.1\nHost: example.com\n")

	options := curlthis.TransformOptions{
		Format:      "msgpack",
		Plain:       true,
		NoClipboard: true,
		Config:      emptyConfig(t),
	}

	test.Err(t, app.Transform(options))
}

func TestTransformConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.toml")
	test.Ok(t, writeFile(configFile, "scheme = \"http\"\nproxy = \"http://proxy.internal:3128\"\n"))

	app, stdout, _ := newApp("GET / HTTP/1.1\nHost: localhost:9999\n")

	options := curlthis.TransformOptions{
		Format:      "curl",
		Plain:       true,
		NoClipboard: true,
		Config:      configFile,
	}

	test.Ok(t, app.Transform(options))
	test.Diff(t, stdout.String(), "curl 'http://localhost:9999/' --proxy 'http://proxy.internal:3128'\n")
}

func TestTransformFlagBeatsConfig(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.toml")
	test.Ok(t, writeFile(configFile, "proxy = \"http://proxy.internal:3128\"\n"))

	app, stdout, _ := newApp("GET / HTTP/1.1\nHost: example.com\n")

	options := curlthis.TransformOptions{
		Format:      "curl",
		Plain:       true,
		NoClipboard: true,
		Proxy:       "http://localhost:8080",
		Config:      configFile,
	}

	test.Ok(t, app.Transform(options))
	test.Diff(t, stdout.String(), "curl 'https://example.com/' --proxy 'http://localhost:8080'\n")
}
