// SPDX-License-Identifier: MIT
// Package: dyngraph/graphio
//
// sink.go - snapshot destinations: one edgelist file per batch, or a badger DB.

package graphio

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dgraph-io/badger/v4"

	"github.com/katalvlaran/dyngraph/core"
)

// Sink stores numbered graph snapshots.
type Sink interface {
	// WriteSnapshot stores g as snapshot counter and returns where it went.
	WriteSnapshot(counter int, g *core.Graph) (string, error)
	Close() error
}

// SnapshotName returns "<prefix>_<counter>".
func SnapshotName(prefix string, counter int) string {
	return prefix + "_" + strconv.Itoa(counter)
}

// OutputPath returns the file a snapshot is written to. A dir ending in a
// path separator is used as a plain prefix; otherwise dir and name are joined.
func OutputPath(dir, prefix string, counter int) string {
	name := SnapshotName(prefix, counter)
	if dir == "" || strings.HasSuffix(dir, string(filepath.Separator)) || strings.HasSuffix(dir, "/") {
		return dir + name
	}
	return filepath.Join(dir, name)
}

// FileSink writes each snapshot to OutputPath(Dir, Prefix, counter).
type FileSink struct {
	Dir      string
	Prefix   string
	Weighted bool
}

// WriteSnapshot creates (or truncates) the snapshot file and writes g.
func (s *FileSink) WriteSnapshot(counter int, g *core.Graph) (string, error) {
	path := OutputPath(s.Dir, s.Prefix, counter)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("WriteSnapshot: %s: %w: %w", path, ErrOutputFileCreateFailed, err)
	}
	if err := WriteEdgeList(f, g, s.Weighted); err != nil {
		f.Close()
		return "", fmt.Errorf("WriteSnapshot: %s: %w: %w", path, ErrOutputFileCreateFailed, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("WriteSnapshot: %s: %w: %w", path, ErrOutputFileCreateFailed, err)
	}
	return path, nil
}

// Close is a no-op.
func (s *FileSink) Close() error { return nil }

// BadgerSink stores each snapshot's edgelist text under key "<prefix>_<counter>".
type BadgerSink struct {
	db       *badger.DB
	prefix   string
	weighted bool
}

// BadgerPath returns "<dir><prefix>.badger", joined like OutputPath.
func BadgerPath(dir, prefix string) string {
	if dir == "" || strings.HasSuffix(dir, string(filepath.Separator)) || strings.HasSuffix(dir, "/") {
		return dir + prefix + ".badger"
	}
	return filepath.Join(dir, prefix+".badger")
}

// OpenBadgerSink opens (or creates) a badger database at path. An empty
// path keeps the database in memory.
func OpenBadgerSink(path, prefix string, weighted bool) (*BadgerSink, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil).WithMetricsEnabled(false)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("OpenBadgerSink: %s: %w: %w", path, ErrOutputFileCreateFailed, err)
	}
	return &BadgerSink{db: db, prefix: prefix, weighted: weighted}, nil
}

// WriteSnapshot stores g and returns the key it was stored under.
func (s *BadgerSink) WriteSnapshot(counter int, g *core.Graph) (string, error) {
	key := SnapshotName(s.prefix, counter)
	var buf bytes.Buffer
	if err := WriteEdgeList(&buf, g, s.weighted); err != nil {
		return "", fmt.Errorf("WriteSnapshot: %s: %w", key, err)
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), buf.Bytes())
	})
	if err != nil {
		return "", fmt.Errorf("WriteSnapshot: %s: %w: %w", key, ErrOutputFileCreateFailed, err)
	}
	return key, nil
}

// ReadSnapshot returns the stored edgelist text for key.
func (s *BadgerSink) ReadSnapshot(key string) ([]byte, error) {
	var out []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		out, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("ReadSnapshot: %s: %w", key, err)
	}
	return out, nil
}

// Keys lists stored snapshot names in key order.
func (s *BadgerSink) Keys() ([]string, error) {
	var keys []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			keys = append(keys, string(it.Item().KeyCopy(nil)))
		}
		return nil
	})
	return keys, err
}

// Close closes the database.
func (s *BadgerSink) Close() error { return s.db.Close() }
