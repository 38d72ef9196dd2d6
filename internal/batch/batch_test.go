package batch

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// minimalGroup builds the smallest valid layer-group file: a file header
// and one empty layer chunk.
func minimalGroup() []byte {
	buf := make([]byte, 36)
	copy(buf, "LGB1")
	binary.LittleEndian.PutUint32(buf[4:], 36) // fileSize
	binary.LittleEndian.PutUint32(buf[8:], 1)  // chunkCount

	copy(buf[12:], "LYR1")
	binary.LittleEndian.PutUint32(buf[16:], 24) // chunkSize
	binary.LittleEndian.PutUint32(buf[20:], 7)  // groupId
	// nameOffset, layerTableOffset, layerCount stay zero.
	return buf
}

func writeFiles(t *testing.T, files map[string][]byte) string {
	t.Helper()
	dir := t.TempDir()
	for name, data := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	return dir
}

func TestRun(t *testing.T) {
	dir := writeFiles(t, map[string][]byte{
		"a.lgb":        minimalGroup(),
		"b.lgb":        minimalGroup(),
		"sub/c.lgb":    minimalGroup(),
		"ignored.txt":  []byte("not a layer group"),
		"sub/skip.dat": {0, 1, 2, 3},
	})

	r := &Runner{Workers: 2}
	results, err := r.Run(context.Background(), dir)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for _, res := range results {
		if res.Err != nil {
			t.Errorf("%s: unexpected error %v", res.Path, res.Err)
		}
		if res.Group == nil {
			t.Errorf("%s: missing decoded group", res.Path)
		}
	}

	// Results come back sorted regardless of completion order.
	for i := 1; i < len(results); i++ {
		if results[i-1].Path >= results[i].Path {
			t.Errorf("results not sorted: %s before %s", results[i-1].Path, results[i].Path)
		}
	}
}

func TestRun_BadFileIsIsolated(t *testing.T) {
	bad := minimalGroup()
	copy(bad, "XXXX")

	dir := writeFiles(t, map[string][]byte{
		"good.lgb": minimalGroup(),
		"bad.lgb":  bad,
	})

	r := &Runner{Workers: 1}
	results, err := r.Run(context.Background(), dir)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	decoded, failed, _ := Summarize(results)
	if decoded != 1 || failed != 1 {
		t.Errorf("decoded=%d failed=%d, want 1/1", decoded, failed)
	}

	for _, res := range results {
		switch filepath.Base(res.Path) {
		case "bad.lgb":
			if res.Err == nil {
				t.Error("bad.lgb should have failed")
			}
		case "good.lgb":
			if res.Err != nil {
				t.Errorf("good.lgb failed: %v", res.Err)
			}
		}
	}
}

func TestRun_CustomPattern(t *testing.T) {
	dir := writeFiles(t, map[string][]byte{
		"a.lgb": minimalGroup(),
		"b.bin": minimalGroup(),
	})

	r := &Runner{Pattern: "*.bin"}
	results, err := r.Run(context.Background(), dir)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if filepath.Base(results[0].Path) != "b.bin" {
		t.Errorf("matched %s", results[0].Path)
	}
}

func TestRun_Cancelled(t *testing.T) {
	dir := writeFiles(t, map[string][]byte{
		"a.lgb": minimalGroup(),
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := &Runner{Workers: 1}
	if _, err := r.Run(ctx, dir); err == nil {
		t.Error("expected error from cancelled context")
	}
}

func TestRun_MissingRoot(t *testing.T) {
	r := &Runner{}
	if _, err := r.Run(context.Background(), filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing directory")
	}
}
