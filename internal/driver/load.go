package driver

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"molosser/internal/observ"
	"molosser/internal/template"
)

// DecodeError reports a tree file that was read but could not be decoded.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// LoadTree reads a template tree: .json is the parser's JSON AST, .msgpack and
// .mp the packed form.
func LoadTree(path string) (*template.Block, error) {
	return loadTree(path, nil, observ.NewTimer())
}

func loadTree(path string, cache *TreeCache, timer *observ.Timer) (*template.Block, error) {
	idx := timer.Begin(observ.PhaseLoad)
	// #nosec G304 -- path is provided by the caller
	data, err := os.ReadFile(path)
	timer.End(idx, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	idx = timer.Begin(observ.PhaseDecode)
	root, how, err := decodeTree(path, data, cache)
	timer.End(idx, how)
	return root, err
}

func decodeTree(path string, data []byte, cache *TreeCache) (*template.Block, string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".msgpack", ".mp":
		root, err := template.DecodeMsgpack(bytes.NewReader(data))
		if err != nil {
			return nil, "", &DecodeError{Path: path, Err: err}
		}
		return root, "msgpack", nil
	case ".json":
		key := DigestOf(data)
		if root, ok, err := cache.Get(key); err == nil && ok {
			return root, "cache hit", nil
		}
		root, err := template.DecodeJSON(bytes.NewReader(data))
		if err != nil {
			return nil, "", &DecodeError{Path: path, Err: err}
		}
		// a failed cache write only costs the next run a re-decode
		_ = cache.Put(key, root)
		return root, "json", nil
	default:
		return nil, "", &DecodeError{
			Path: path,
			Err:  fmt.Errorf("unsupported tree format %q (expected .json, .msgpack or .mp)", ext),
		}
	}
}

// PackTree converts the tree at in to the packed form at out.
func PackTree(in, out string) error {
	root, err := LoadTree(in)
	if err != nil {
		return err
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	if err := template.EncodeMsgpack(f, root); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", out, err)
	}
	return f.Close()
}

// sourceFiles lists the template sources named by positions in root, in
// first-seen order.
func sourceFiles(root *template.Block) []string {
	if root == nil {
		return nil
	}
	seen := make(map[string]struct{})
	var files []string
	template.Walk(root, func(n template.Node) bool {
		if f := n.Pos().File; f != "" {
			if _, ok := seen[f]; !ok {
				seen[f] = struct{}{}
				files = append(files, f)
			}
		}
		return true
	})
	return files
}
