package regionedit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regionedit/regionedit/internal/tt"
)

const simpleDoc = "<html>\n" +
	"<!-- #BeginEditable \"body\" -->\n" +
	"hello\n" +
	"world\n" +
	"<!-- #EndEditable -->\n" +
	"</html>\n"

func TestRead(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		region     string
		expected   string
		expectedOK bool
	}{
		{
			name:       "multi line content keeps terminators",
			content:    simpleDoc,
			region:     "body",
			expected:   "hello\nworld\n",
			expectedOK: true,
		},
		{
			name:       "empty region",
			content:    "<!-- #BeginEditable \"empty\" -->\n<!-- #EndEditable -->\n",
			region:     "empty",
			expected:   "",
			expectedOK: true,
		},
		{
			name:       "missing region",
			content:    simpleDoc,
			region:     "nope",
			expected:   "",
			expectedOK: false,
		},
		{
			name:       "crlf content keeps crlf terminators",
			content:    "<!-- #BeginEditable \"win\" -->\r\nhello\r\n<!-- #EndEditable -->\r\n",
			region:     "win",
			expected:   "hello\r\n",
			expectedOK: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := tt.WriteFile(t, "doc.html", tc.content)
			engine := New()

			content, ok, err := engine.Read(path, tc.region)

			require.NoError(t, err)
			assert.Equal(t, tc.expectedOK, ok)
			assert.Equal(t, tc.expected, content)
		})
	}
}

func TestRead_StructuralErrorReportsNotFound(t *testing.T) {
	path := tt.WriteFile(t, "bad.html", "<!-- #EndEditable -->\n")
	logger := tt.NewRecordingLogger()
	engine := New(WithLogger(logger))

	content, ok, err := engine.Read(path, "anything")

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, content)
	assert.NotEmpty(t, logger.Errors())
}

// An unreadable path (here a directory) is an I/O failure, not a
// missing region: every composite operation must return the error
// rather than a silent not-found.
func TestCompositeOps_PropagateIOError(t *testing.T) {
	dir := t.TempDir()
	engine := New()

	_, ok, err := engine.Read(dir, "body")
	require.Error(t, err)
	assert.False(t, ok)

	ok, err = engine.Write(dir, "body", "x")
	require.Error(t, err)
	assert.False(t, ok)

	ok, err = engine.ReplaceText(dir, "body", "a", "b", -1)
	require.Error(t, err)
	assert.False(t, ok)

	ok, err = engine.DeleteText(dir, "body", "a")
	require.Error(t, err)
	assert.False(t, ok)

	ok, err = engine.InsertBefore(dir, "body", "a", "b")
	require.Error(t, err)
	assert.False(t, ok)

	ok, err = engine.InsertAfter(dir, "body", "a", "b")
	require.Error(t, err)
	assert.False(t, ok)
}

func TestWrite(t *testing.T) {
	t.Run("replaces only the region body", func(t *testing.T) {
		path := tt.WriteFile(t, "doc.html", simpleDoc)
		engine := New()

		ok, err := engine.Write(path, "body", "replaced")

		require.NoError(t, err)
		require.True(t, ok)
		tt.AssertTextEqual(t,
			"<html>\n"+
				"<!-- #BeginEditable \"body\" -->\n"+
				"replaced\n"+
				"<!-- #EndEditable -->\n"+
				"</html>\n",
			tt.ReadFile(t, path))
	})

	t.Run("missing region returns false without error", func(t *testing.T) {
		path := tt.WriteFile(t, "doc.html", simpleDoc)
		engine := New()

		ok, err := engine.Write(path, "nope", "x")

		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, simpleDoc, tt.ReadFile(t, path))
	})

	t.Run("missing file returns false without error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nope.html")
		engine := New()

		ok, err := engine.Write(path, "body", "x")

		require.NoError(t, err)
		assert.False(t, ok)
		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr), "a missing file must not be created")
	})

	t.Run("empty content empties the region", func(t *testing.T) {
		path := tt.WriteFile(t, "doc.html", simpleDoc)
		engine := New()

		ok, err := engine.Write(path, "body", "")

		require.NoError(t, err)
		require.True(t, ok)
		tt.AssertTextEqual(t,
			"<html>\n"+
				"<!-- #BeginEditable \"body\" -->\n"+
				"<!-- #EndEditable -->\n"+
				"</html>\n",
			tt.ReadFile(t, path))

		content, ok, err := engine.Read(path, "body")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Empty(t, content)
	})

	t.Run("normalizes foreign terminators to the file's", func(t *testing.T) {
		path := tt.WriteFile(t, "doc.html", simpleDoc)
		engine := New()

		ok, err := engine.Write(path, "body", "one\r\ntwo\rthree")

		require.NoError(t, err)
		require.True(t, ok)
		content, _, err := engine.Read(path, "body")
		require.NoError(t, err)
		assert.Equal(t, "one\ntwo\nthree\n", content)
	})

	t.Run("crlf file keeps crlf", func(t *testing.T) {
		original := "<!-- #BeginEditable \"win\" -->\r\nold\r\n<!-- #EndEditable -->\r\n"
		path := tt.WriteFile(t, "win.html", original)
		engine := New()

		ok, err := engine.Write(path, "win", "new\nlines")

		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t,
			"<!-- #BeginEditable \"win\" -->\r\nnew\r\nlines\r\n<!-- #EndEditable -->\r\n",
			tt.ReadFile(t, path))
	})

	t.Run("no trailing newline after end marker is preserved", func(t *testing.T) {
		original := "<!-- #BeginEditable \"x\" -->\nold\n<!-- #EndEditable -->"
		path := tt.WriteFile(t, "tail.html", original)
		engine := New()

		ok, err := engine.Write(path, "x", "new")

		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t,
			"<!-- #BeginEditable \"x\" -->\nnew\n<!-- #EndEditable -->",
			tt.ReadFile(t, path))
	})
}

func TestWrite_RoundTrip(t *testing.T) {
	// write_region(f, r, read_region(f, r)) leaves the file
	// byte-identical when terminators already match the file's.
	files := map[string]string{
		"lf":   simpleDoc,
		"crlf": "<!-- #BeginEditable \"body\" -->\r\nhello\r\nworld\r\n<!-- #EndEditable -->\r\n",
		"cr":   "<!-- #BeginEditable \"body\" -->\rhello\r<!-- #EndEditable -->\r",
	}

	for name, original := range files {
		t.Run(name, func(t *testing.T) {
			path := tt.WriteFile(t, "doc.html", original)
			engine := New()

			content, ok, err := engine.Read(path, "body")
			require.NoError(t, err)
			require.True(t, ok)

			written, err := engine.Write(path, "body", content)
			require.NoError(t, err)
			require.True(t, written)

			assert.Equal(t, original, tt.ReadFile(t, path))
		})
	}
}

func TestWrite_Idempotent(t *testing.T) {
	path := tt.WriteFile(t, "doc.html", simpleDoc)
	engine := New()

	_, err := engine.Write(path, "body", "once\ntwice")
	require.NoError(t, err)
	after1 := tt.ReadFile(t, path)

	_, err = engine.Write(path, "body", "once\ntwice")
	require.NoError(t, err)

	assert.Equal(t, after1, tt.ReadFile(t, path))
}

func TestReplaceText(t *testing.T) {
	tests := []struct {
		name            string
		regionContent   string
		old             string
		new             string
		max             int
		expectedOK      bool
		expectedContent string
	}{
		{
			name:            "unlimited replaces all",
			regionContent:   "aaa bbb aaa\n",
			old:             "aaa",
			new:             "ccc",
			max:             -1,
			expectedOK:      true,
			expectedContent: "ccc bbb ccc\n",
		},
		{
			name:            "capped at max occurrences",
			regionContent:   "x x x\n",
			old:             "x",
			new:             "y",
			max:             2,
			expectedOK:      true,
			expectedContent: "y y x\n",
		},
		{
			name:            "absent text is a successful no-op",
			regionContent:   "hello\n",
			old:             "missing",
			new:             "anything",
			max:             -1,
			expectedOK:      true,
			expectedContent: "hello\n",
		},
		{
			name:            "zero max is a successful no-op",
			regionContent:   "hello\n",
			old:             "hello",
			new:             "bye",
			max:             0,
			expectedOK:      true,
			expectedContent: "hello\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc := "<!-- #BeginEditable \"r\" -->\n" + tc.regionContent + "<!-- #EndEditable -->\n"
			path := tt.WriteFile(t, "doc.html", doc)
			engine := New()

			ok, err := engine.ReplaceText(path, "r", tc.old, tc.new, tc.max)

			require.NoError(t, err)
			assert.Equal(t, tc.expectedOK, ok)
			content, _, err := engine.Read(path, "r")
			require.NoError(t, err)
			tt.AssertTextEqual(t, tc.expectedContent, content)
		})
	}
}

func TestReplaceText_NoOpLeavesFileUntouched(t *testing.T) {
	path := tt.WriteFile(t, "doc.html", simpleDoc)
	engine := New()

	ok, err := engine.ReplaceText(path, "body", "absent", "text", -1)

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, simpleDoc, tt.ReadFile(t, path), "no-op must perform zero byte changes")
}

func TestReplaceText_MissingRegion(t *testing.T) {
	path := tt.WriteFile(t, "doc.html", simpleDoc)
	engine := New()

	ok, err := engine.ReplaceText(path, "nope", "a", "b", -1)

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDeleteText_FirstOccurrenceOnly(t *testing.T) {
	doc := "<!-- #BeginEditable \"r\" -->\nfoo bar foo\n<!-- #EndEditable -->\n"
	path := tt.WriteFile(t, "doc.html", doc)
	engine := New()

	ok, err := engine.DeleteText(path, "r", "foo")

	require.NoError(t, err)
	assert.True(t, ok)
	content, _, err := engine.Read(path, "r")
	require.NoError(t, err)
	assert.Equal(t, " bar foo\n", content)
}

func TestInsert(t *testing.T) {
	// Read "hello\n", insert "!" after the anchor, and the region
	// becomes "hello!\n".
	doc := "<!-- #BeginEditable \"x\" -->\nhello\n<!-- #EndEditable -->\n"

	t.Run("after anchor", func(t *testing.T) {
		path := tt.WriteFile(t, "doc.html", doc)
		engine := New()

		content, ok, err := engine.Read(path, "x")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "hello\n", content)

		ok, err = engine.InsertAfter(path, "x", "hello", "!")
		require.NoError(t, err)
		require.True(t, ok)

		content, _, err = engine.Read(path, "x")
		require.NoError(t, err)
		assert.Equal(t, "hello!\n", content)
	})

	t.Run("before anchor", func(t *testing.T) {
		path := tt.WriteFile(t, "doc.html", doc)
		engine := New()

		ok, err := engine.InsertBefore(path, "x", "hello", ">> ")
		require.NoError(t, err)
		require.True(t, ok)

		content, _, err := engine.Read(path, "x")
		require.NoError(t, err)
		assert.Equal(t, ">> hello\n", content)
	})

	t.Run("first occurrence is the anchor", func(t *testing.T) {
		multi := "<!-- #BeginEditable \"x\" -->\nab ab\n<!-- #EndEditable -->\n"
		path := tt.WriteFile(t, "doc.html", multi)
		engine := New()

		ok, err := engine.InsertAfter(path, "x", "ab", "!")
		require.NoError(t, err)
		require.True(t, ok)

		content, _, err := engine.Read(path, "x")
		require.NoError(t, err)
		assert.Equal(t, "ab! ab\n", content)
	})

	t.Run("absent anchor fails without error", func(t *testing.T) {
		path := tt.WriteFile(t, "doc.html", doc)
		logger := tt.NewRecordingLogger()
		engine := New(WithLogger(logger))

		ok, err := engine.InsertAfter(path, "x", "missing", "!")

		require.NoError(t, err)
		assert.False(t, ok)
		require.NotEmpty(t, logger.Errors())
		assert.Contains(t, logger.Errors()[len(logger.Errors())-1], "anchor text")
		assert.Equal(t, doc, tt.ReadFile(t, path))
	})
}

func TestPreviewWrite(t *testing.T) {
	t.Run("returns a unified diff without writing", func(t *testing.T) {
		path := tt.WriteFile(t, "doc.html", simpleDoc)
		engine := New()

		diff, found, err := engine.PreviewWrite(path, "body", "replaced")

		require.NoError(t, err)
		require.True(t, found)
		assert.True(t, strings.Contains(diff, "-hello"), "diff should remove old content:\n%s", diff)
		assert.True(t, strings.Contains(diff, "+replaced"), "diff should add new content:\n%s", diff)
		assert.Equal(t, simpleDoc, tt.ReadFile(t, path), "preview must not write")
	})

	t.Run("missing region", func(t *testing.T) {
		path := tt.WriteFile(t, "doc.html", simpleDoc)
		engine := New()

		diff, found, err := engine.PreviewWrite(path, "nope", "x")

		require.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, diff)
	})

	t.Run("missing file", func(t *testing.T) {
		engine := New()

		_, found, err := engine.PreviewWrite("does/not/exist.html", "x", "y")

		require.NoError(t, err)
		assert.False(t, found)
	})
}

func TestSuccessLogging(t *testing.T) {
	path := tt.WriteFile(t, "doc.html", simpleDoc)
	logger := tt.NewRecordingLogger()
	engine := New(WithLogger(logger))

	ok, err := engine.Write(path, "body", "new")
	require.NoError(t, err)
	require.True(t, ok)

	var logged bool
	for _, msg := range logger.Infos() {
		if strings.Contains(msg, `updated region "body"`) {
			logged = true
		}
	}
	assert.True(t, logged, "successful write should log the region and file")
}

// Full editing session against one file: list, read, replace,
// substring-replace, delete, insert before/after.
func TestEngine_EndToEndScenario(t *testing.T) {
	doc := "\n<html>\n<body>\n" +
		"<!-- #BeginEditable \"test-region\" -->\n" +
		"Original content\n" +
		"<!-- #EndEditable -->\n" +
		"</body>\n</html>\n"
	path := tt.WriteFile(t, "test_regions.html", doc)
	engine := New()

	regions, err := engine.Regions(path)
	require.NoError(t, err)
	require.Equal(t, []Region{{Name: "test-region", StartLine: 4, EndLine: 6}}, regions)

	content, ok, err := engine.Read(path, "test-region")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Original content\n", content)

	ok, err = engine.Write(path, "test-region", "New content")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = engine.ReplaceText(path, "test-region", "New", "Replaced", -1)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = engine.DeleteText(path, "test-region", "Replaced")
	require.NoError(t, err)
	require.True(t, ok)

	content, _, err = engine.Read(path, "test-region")
	require.NoError(t, err)
	assert.Equal(t, " content\n", content)

	ok, err = engine.InsertBefore(path, "test-region", "content", "Inserted before ")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = engine.InsertAfter(path, "test-region", "content", " inserted after")
	require.NoError(t, err)
	require.True(t, ok)

	content, _, err = engine.Read(path, "test-region")
	require.NoError(t, err)
	assert.Equal(t, " Inserted before content inserted after\n", content)

	// Everything outside the region is untouched.
	final := tt.ReadFile(t, path)
	assert.True(t, strings.HasPrefix(final, "\n<html>\n<body>\n"))
	assert.True(t, strings.HasSuffix(final, "</body>\n</html>\n"))
}
