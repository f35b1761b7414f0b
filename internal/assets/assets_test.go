package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func testCache(meshes int32, calls *int) *Cache {
	c := NewCache()
	c.load = func(string) rl.Model {
		*calls++
		return rl.Model{MeshCount: meshes}
	}
	return c
}

func writeFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.glb")
	if err := os.WriteFile(path, []byte("glTF"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestMissingFile(t *testing.T) {
	calls := 0
	c := testCache(1, &calls)

	_, err := c.Model(filepath.Join(t.TempDir(), "nope.glb"))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist, got %v", err)
	}
	if calls != 0 {
		t.Errorf("Expected loader not to be called, got %d calls", calls)
	}
}

func TestModelIsCached(t *testing.T) {
	calls := 0
	c := testCache(2, &calls)
	path := writeFile(t)

	for range 3 {
		m, err := c.Model(path)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if m.MeshCount != 2 {
			t.Errorf("Expected 2 meshes, got %d", m.MeshCount)
		}
	}
	if calls != 1 {
		t.Errorf("Expected one load, got %d", calls)
	}
}

func TestEmptyModelFailsOnce(t *testing.T) {
	calls := 0
	c := testCache(0, &calls)
	path := writeFile(t)

	for range 3 {
		if _, err := c.Model(path); !errors.Is(err, ErrEmptyModel) {
			t.Errorf("Expected ErrEmptyModel, got %v", err)
		}
	}
	if calls != 1 {
		t.Errorf("Expected failure to be remembered, got %d loads", calls)
	}

	c.Forget(path)
	c.Model(path)
	if calls != 2 {
		t.Errorf("Expected retry after Forget, got %d loads", calls)
	}
}
