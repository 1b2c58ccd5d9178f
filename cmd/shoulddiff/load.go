package main

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

var errUnknownFormat = errors.New("unknown document format")

// loadDocuments decodes every path concurrently, keeping their order.
func loadDocuments(ctx context.Context, logger *zap.Logger, paths ...string) ([]any, error) {
	docs := make([]any, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc, err := decodeFile(path)
			if err != nil {
				return err
			}
			logger.Debug("decoded document", zap.String("path", path))
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

// decodeFile picks the decoder from the extension: .msgpack and .mp are
// MessagePack, .yaml, .yml and .json are YAML.
func decodeFile(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	var doc any
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".msgpack", ".mp":
		if err := msgpack.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode msgpack %s: %w", path, err)
		}
	case ".yaml", ".yml", ".json":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode yaml %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%s: %w %q", path, errUnknownFormat, ext)
	}
	return normalize(doc), nil
}

// widen keeps unsigned values that don't fit in an int64 as uint64.
func widen(x uint64) any {
	if x > math.MaxInt64 {
		return x
	}
	return int64(x)
}

// normalize maps decoder specific shapes onto one: maps keyed by strings and
// integers widened to int64, or kept as uint64 when they don't fit, so a YAML
// and a MessagePack encoding of the same document compare equal.
func normalize(v any) any {
	switch x := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = normalize(e)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[fmt.Sprint(k)] = normalize(e)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = normalize(e)
		}
		return out
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case uint8:
		return int64(x)
	case uint16:
		return int64(x)
	case uint32:
		return int64(x)
	case uint:
		return widen(uint64(x))
	case uint64:
		return widen(x)
	case float32:
		return float64(x)
	}
	return v
}
