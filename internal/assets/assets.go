// Package assets caches models loaded from disk. A cached model is shared
// by every node that uses it and is only released by Unload.
package assets

import (
	"errors"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var ErrEmptyModel = errors.New("model has no meshes")

type Cache struct {
	models map[string]rl.Model
	failed map[string]error
	load   func(path string) rl.Model
}

func NewCache() *Cache {
	return &Cache{
		models: make(map[string]rl.Model),
		failed: make(map[string]error),
		load:   rl.LoadModel,
	}
}

// Model returns the model at path, loading it on first use. A failed load
// is remembered so the file is not retried every frame.
func (c *Cache) Model(path string) (rl.Model, error) {
	if model, ok := c.models[path]; ok {
		return model, nil
	}
	if err, ok := c.failed[path]; ok {
		return rl.Model{}, err
	}

	model, err := c.loadModel(path)
	if err != nil {
		c.failed[path] = err
		return rl.Model{}, err
	}
	c.models[path] = model
	return model, nil
}

func (c *Cache) loadModel(path string) (rl.Model, error) {
	if _, err := os.Stat(path); err != nil {
		return rl.Model{}, fmt.Errorf("load model %s: %w", path, err)
	}
	model := c.load(path)
	if model.MeshCount == 0 {
		return rl.Model{}, fmt.Errorf("load model %s: %w", path, ErrEmptyModel)
	}
	return model, nil
}

// Forget drops a remembered failure so the next Model call retries.
func (c *Cache) Forget(path string) {
	delete(c.failed, path)
}

func (c *Cache) Unload() {
	for path, model := range c.models {
		rl.UnloadModel(model)
		delete(c.models, path)
	}
	clear(c.failed)
}
