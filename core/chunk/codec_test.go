package chunk

import (
	"fmt"
	"regexp"
	"strings"
	"testing"
)

func TestSplit_EmptyContent(t *testing.T) {
	codec := NewCodec(nil)

	chunks := codec.Split("", 100)

	if len(chunks) != 0 {
		t.Errorf("Split of empty content = %d chunks, want 0", len(chunks))
	}
}

func TestSplit_ChunkCount(t *testing.T) {
	codec := NewCodec(nil)

	tests := []struct {
		name      string
		length    int
		chunkSize int
		want      int
	}{
		{"shorter than chunk size", 99, 100, 1},
		{"exactly one chunk", 100, 100, 1},
		{"one byte over", 101, 100, 2},
		{"exact multiple", 300, 100, 3},
		{"multiple with remainder", 250, 100, 3},
		{"single character", 1, 100, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := strings.Repeat("x", tt.length)
			chunks := codec.Split(content, tt.chunkSize)

			if len(chunks) != tt.want {
				t.Errorf("Split produced %d chunks, want %d", len(chunks), tt.want)
			}
		})
	}
}

func TestSplit_LastChunkLength(t *testing.T) {
	codec := NewCodec(nil)

	// 250 chars with size 100: last chunk holds the 50-char remainder
	chunks := codec.Split(strings.Repeat("a", 250), 100)
	if got := len(chunks[len(chunks)-1]); got != 50 {
		t.Errorf("last chunk length = %d, want 50", got)
	}

	// Exact multiple: last chunk is a full chunk
	chunks = codec.Split(strings.Repeat("a", 300), 100)
	if got := len(chunks[len(chunks)-1]); got != 100 {
		t.Errorf("last chunk length = %d, want 100", got)
	}
}

func TestSplit_ConcatenationRestoresContent(t *testing.T) {
	codec := NewCodec(nil)
	content := strings.Repeat("abcdefghij", 37) // 370 chars, not a multiple

	chunks := codec.Split(content, 100)

	if strings.Join(chunks, "") != content {
		t.Error("concatenated chunks do not reproduce the original content")
	}
}

func TestSplit_MultibyteContent(t *testing.T) {
	codec := NewCodec(nil)
	content := strings.Repeat("héllo wörld ", 50)

	chunks := codec.Split(content, 64)

	if strings.Join(chunks, "") != content {
		t.Error("multibyte content not reproduced by concatenation")
	}
}

func TestAssignIDs_Format(t *testing.T) {
	codec := NewCodec(nil)
	chunks := []string{"a", "b", "c"}

	ids := codec.AssignIDs("art-1", chunks)

	if len(ids) != 3 {
		t.Fatalf("AssignIDs returned %d ids, want 3", len(ids))
	}

	pattern := regexp.MustCompile(`^art-1-chunk-(\d+)-[0-9a-f-]{8}$`)
	for i, id := range ids {
		m := pattern.FindStringSubmatch(id)
		if m == nil {
			t.Errorf("id %q does not match expected format", id)
			continue
		}
		if m[1] != fmt.Sprintf("%d", i) {
			t.Errorf("id %q has index %s, want %d", id, m[1], i)
		}
	}
}

func TestAssignIDs_UniqueAcrossSaves(t *testing.T) {
	codec := NewCodec(nil)
	chunks := []string{"a", "b"}

	first := codec.AssignIDs("art-1", chunks)
	second := codec.AssignIDs("art-1", chunks)

	for i := range first {
		if first[i] == second[i] {
			t.Errorf("id %q reused across saves", first[i])
		}
	}
}

func TestReassemble_OrderFromIDList(t *testing.T) {
	codec := NewCodec(nil)

	// Keys inserted in reverse order; order must come only from the id list
	chunkMap := map[string]string{}
	ids := []string{"a-chunk-0-x", "a-chunk-1-x", "a-chunk-2-x"}
	parts := []string{"first ", "second ", "third"}
	for i := len(ids) - 1; i >= 0; i-- {
		chunkMap[ids[i]] = parts[i]
	}

	got := codec.Reassemble(ids, chunkMap)

	if got != "first second third" {
		t.Errorf("Reassemble = %q, want %q", got, "first second third")
	}
}

func TestReassemble_MissingChunkSkipped(t *testing.T) {
	logger := &recordingLogger{}
	codec := NewCodec(logger)

	chunkMap := map[string]string{
		"id-0": "hello ",
		"id-2": "world",
	}

	got := codec.Reassemble([]string{"id-0", "id-1", "id-2"}, chunkMap)

	if got != "hello world" {
		t.Errorf("Reassemble = %q, want %q", got, "hello world")
	}
	if len(logger.warnings) != 1 {
		t.Errorf("missing chunk logged %d warnings, want 1", len(logger.warnings))
	}
}

func TestReassemble_EmptyIDList(t *testing.T) {
	codec := NewCodec(nil)

	got := codec.Reassemble(nil, map[string]string{"x": "y"})

	if got != "" {
		t.Errorf("Reassemble of empty id list = %q, want empty string", got)
	}
}

func TestSplitAssignReassemble_RoundTrip(t *testing.T) {
	codec := NewCodec(nil)
	content := strings.Repeat("The quick brown fox jumps over the lazy dog. ", 3000)

	chunks := codec.Split(content, DefaultChunkSize)
	ids := codec.AssignIDs("art-9", chunks)

	chunkMap := map[string]string{}
	for i, id := range ids {
		chunkMap[id] = chunks[i]
	}

	if got := codec.Reassemble(ids, chunkMap); got != content {
		t.Error("round trip through split/assign/reassemble lost content")
	}
}

// recordingLogger captures log calls for assertions
type recordingLogger struct {
	warnings []string
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) {}
func (l *recordingLogger) Info(msg string, fields map[string]interface{})  {}
func (l *recordingLogger) Warn(msg string, fields map[string]interface{}) {
	l.warnings = append(l.warnings, msg)
}
func (l *recordingLogger) Error(msg string, fields map[string]interface{}) {}
