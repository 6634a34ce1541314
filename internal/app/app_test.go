package app

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyperifyio/devextract/internal/clipboard"
)

func newTestApp(t *testing.T, cfg Config) (*App, *bytes.Buffer) {
	t.Helper()
	a, err := New(context.Background(), cfg)
	require.NoError(t, err)
	var out bytes.Buffer
	a.Stdout = &out
	a.Stdin = bytes.NewReader(nil)
	return a, &out
}

func TestRun_InlineText(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Text = "Hello नमस्ते 123 मैथिली world"
	a, out := newTestApp(t, cfg)

	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, "नमस्ते मैथिली\n", out.String())
}

func TestRun_StdinWithCount(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ShowCount = true
	a, out := newTestApp(t, cfg)
	a.Stdin = bytes.NewBufferString("line one: नमस्ते\n\nline two: मैथिली\n")

	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, "नमस्ते मैथिली\n12 characters\n", out.String())
}

func TestRun_JSONFormat(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Format = FormatJSON
	cfg.Text = "abc <कि> xyz"
	a, out := newTestApp(t, cfg)

	require.NoError(t, a.Run(context.Background()))
	var res Result
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	assert.Equal(t, Result{Text: "कि", Characters: 2, Graphemes: 1}, res)
	assert.Contains(t, out.String(), `"text": "कि"`)
}

func TestRun_NothingFound(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Text = "Hello World 123"
	a, out := newTestApp(t, cfg)

	err := a.Run(context.Background())
	require.ErrorIs(t, err, ErrNoDevanagari)
	assert.Empty(t, out.String())
}

func TestRun_BlankInput(t *testing.T) {
	cfg := DefaultConfig()
	a, out := newTestApp(t, cfg)
	a.Stdin = bytes.NewBufferString("   \n\t")

	require.ErrorIs(t, a.Run(context.Background()), ErrNoDevanagari)
	assert.Empty(t, out.String())
}

func TestRun_UTF16FileWithBOM(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	var buf bytes.Buffer
	buf.Write([]byte{0xFF, 0xFE})
	for _, u := range utf16.Encode([]rune("Hi नमस्ते!")) {
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, u))
	}
	require.NoError(t, os.WriteFile(in, buf.Bytes(), 0o644))

	cfg := DefaultConfig()
	cfg.InputPath = in
	cfg.OutputPath = filepath.Join(dir, "out.txt")
	a, stdout := newTestApp(t, cfg)

	require.NoError(t, a.Run(context.Background()))
	b, err := os.ReadFile(cfg.OutputPath)
	require.NoError(t, err)
	assert.Equal(t, "नमस्ते\n", string(b))
	assert.Empty(t, stdout.String())
}

func TestRun_UTF8BOMStripped(t *testing.T) {
	cfg := DefaultConfig()
	a, out := newTestApp(t, cfg)
	a.Stdin = bytes.NewReader(append([]byte{0xEF, 0xBB, 0xBF}, []byte("क ख")...))

	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, "क ख\n", out.String())
}

func TestRun_HTMLInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "page.html")
	page := `<html><head><title>Page शीर्षक</title></head><body>
<nav>मेनू</nav><main><p>Intro: नमस्ते</p><p>मैथिली</p></main><script>var s = "छिपा"</script></body></html>`
	require.NoError(t, os.WriteFile(in, []byte(page), 0o644))

	cfg := DefaultConfig()
	cfg.InputPath = in
	cfg.HTML = true
	a, out := newTestApp(t, cfg)

	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, "शीर्षक नमस्ते मैथिली\n", out.String())
}

func TestRun_InlineHTML(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Text = `<script>var s = "छिपा"</script><p>Intro: नमस्ते</p>`
	cfg.HTML = true
	a, out := newTestApp(t, cfg)

	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, "नमस्ते\n", out.String())
}

func TestRun_CopyWritesClipboard(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Text = "id 7: सीता"
	cfg.Copy = true
	a, out := newTestApp(t, cfg)
	mem := &clipboard.Memory{}
	a.Clipboard = mem

	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, "सीता", mem.Text())
	assert.Equal(t, "सीता\n", out.String())
}

func TestRun_CopyFailureSurfaces(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Text = "सीता"
	cfg.Copy = true
	a, _ := newTestApp(t, cfg)
	a.Clipboard = clipboard.Unsupported{}

	require.ErrorIs(t, a.Run(context.Background()), clipboard.ErrUnsupported)
}

func TestRun_MissingInputFile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InputPath = filepath.Join(t.TempDir(), "missing.txt")
	a, _ := newTestApp(t, cfg)

	err := a.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Format = "xml"
	_, err := New(context.Background(), cfg)
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	assert.Contains(t, Version(), "devextract ")
}

func TestNew_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(ctx, DefaultConfig())
	require.ErrorIs(t, err, context.Canceled)
}
