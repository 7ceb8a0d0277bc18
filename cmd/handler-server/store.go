// Copyright 2019 The Bridgefs Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package handlerserver

import (
	"os"
	pathpkg "path"
	"strings"
	"sync"
	"syscall"

	"github.com/boltdb/bolt"
	"github.com/google/btree"

	"github.com/bridgefs/bridgefs/pkg/bridge"
	"github.com/bridgefs/bridgefs/pkg/log"
	"github.com/bridgefs/bridgefs/pkg/proquint"
)

var (
	contentBucket     = []byte("content")
	directoriesBucket = []byte("directories")
)

const (
	greetingPath    = "/greeting"
	greetingContent = "Hello World!\n"

	btreeDegree = 16
)

// pathItem is an entry in the ordered path index.
type pathItem struct {
	path string
	dir  bool
}

func (p pathItem) Less(than btree.Item) bool {
	return p.path < than.(pathItem).path
}

// store is the filesystem handler backing the handler server: file content
// and directory markers persisted in bolt, with an in-memory ordered path
// index for listings. Content is optionally sealed at rest.
type store struct {
	logger *log.Logger
	db     *bolt.DB
	sealer *sealer
	uid    uint32
	gid    uint32

	mu         sync.Mutex
	index      *btree.BTree
	nextHandle uint64
}

// openStore opens (creating if needed) the bolt-backed store at path. An
// empty store is seeded with the reference /greeting file so a fresh mount
// has something to serve.
func openStore(logger *log.Logger, path string, sealer *sealer) (*store, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, err
	}

	s := &store{
		logger: logger,
		db:     db,
		sealer: sealer,
		uid:    uint32(os.Getuid()),
		gid:    uint32(os.Getgid()),
		index:  btree.New(btreeDegree),
	}

	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(contentBucket); err != nil {
			return err
		}
		b, err := tx.CreateBucketIfNotExists(directoriesBucket)
		if err != nil {
			return err
		}
		return b.Put([]byte("/"), []byte{})
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	err = db.View(func(tx *bolt.Tx) error {
		if err := tx.Bucket(directoriesBucket).ForEach(func(k, v []byte) error {
			s.index.ReplaceOrInsert(pathItem{path: string(k), dir: true})
			return nil
		}); err != nil {
			return err
		}
		return tx.Bucket(contentBucket).ForEach(func(k, v []byte) error {
			s.index.ReplaceOrInsert(pathItem{path: string(k)})
			return nil
		})
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	if s.index.Len() == 1 { // Only the root: a fresh store.
		if rv := s.save(greetingPath, []byte(greetingContent)); rv < 0 {
			db.Close()
			return nil, syscall.Errno(-rv)
		}
		logger.Infof("seeded %s into empty store", greetingPath)
	}

	return s, nil
}

func (s *store) close() error {
	return s.db.Close()
}

// callbacks exposes the store as a handler configuration. All five slots are
// registered.
func (s *store) callbacks() bridge.Callbacks {
	return bridge.Callbacks{
		Open:    s.open,
		GetAttr: s.getattr,
		Read:    s.read,
		Write:   s.write,
		ReadDir: s.readdir,
	}
}

func (s *store) open(path string, info *bridge.FileInfo) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, found := s.lookup(path)
	switch {
	case found && item.dir:
		return bridge.Errno(syscall.EISDIR)
	case !found && info.Flags&uint32(syscall.O_CREAT) == 0:
		return bridge.Errno(syscall.ENOENT)
	case !found:
		if rv := s.save(path, nil); rv < 0 {
			return rv
		}
	}

	s.nextHandle++
	info.Handle = s.nextHandle
	s.logger.Infof("opened %s: handle %s", path, proquint.FromUint64(info.Handle))
	return 0
}

func (s *store) getattr(path string, attr *bridge.FileAttributes) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, found := s.lookup(path)
	if !found {
		return bridge.Errno(syscall.ENOENT)
	}

	attr.UID, attr.GID = s.uid, s.gid
	if item.dir {
		attr.Mode = syscall.S_IFDIR | 0755
		return 0
	}
	attr.Mode = syscall.S_IFREG | 0644
	attr.Size = s.sizeOf(path)
	return 0
}

func (s *store) read(path string, p []byte, offset uint64, info *bridge.FileInfo) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	content, rv := s.load(path)
	if rv < 0 {
		return rv
	}
	if offset >= uint64(len(content)) {
		return 0
	}
	return copy(p, content[offset:])
}

func (s *store) write(path string, p []byte, offset uint64, info *bridge.FileInfo) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	content, rv := s.load(path)
	if rv < 0 {
		return rv
	}

	// Writes past the end extend the file, zero filled up to the offset.
	if end := offset + uint64(len(p)); end > uint64(len(content)) {
		grown := make([]byte, end)
		copy(grown, content)
		content = grown
	}
	copy(content[offset:], p)

	if rv := s.save(path, content); rv < 0 {
		return rv
	}
	return len(p)
}

func (s *store) readdir(path string, alloc bridge.DirAlloc) (*bridge.DirList, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, found := s.lookup(path)
	if !found || !item.dir {
		return nil, 0
	}

	prefix := path
	if prefix != "/" {
		prefix += "/"
	}

	list := alloc(s.index.Len() + 2)
	list.Append(".")
	list.Append("..")
	s.index.AscendGreaterOrEqual(pathItem{path: prefix}, func(i btree.Item) bool {
		p := i.(pathItem).path
		if !strings.HasPrefix(p, prefix) {
			return false
		}
		if rest := p[len(prefix):]; rest != "" && !strings.Contains(rest, "/") {
			list.Append(rest)
		}
		return true
	})
	return list, 0
}

func (s *store) lookup(path string) (pathItem, bool) {
	if item := s.index.Get(pathItem{path: path}); item != nil {
		return item.(pathItem), true
	}
	return pathItem{}, false
}

// load fetches and (if sealed) unseals a file's content. Callers hold the
// mutex.
func (s *store) load(path string) ([]byte, int) {
	item, found := s.lookup(path)
	if !found {
		return nil, bridge.Errno(syscall.ENOENT)
	}
	if item.dir {
		return nil, bridge.Errno(syscall.EISDIR)
	}

	var stored []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		// Bolt values are only valid inside the transaction; copy out.
		stored = append([]byte(nil), tx.Bucket(contentBucket).Get([]byte(path))...)
		return nil
	})
	if err != nil {
		s.logger.Errorf("load %s: %v", path, err)
		return nil, bridge.Errno(syscall.EIO)
	}

	if s.sealer != nil {
		plaintext, err := s.sealer.unseal(stored)
		if err != nil {
			s.logger.Errorf("unseal %s: %v", path, err)
			return nil, bridge.Errno(syscall.EIO)
		}
		return plaintext, 0
	}
	return stored, 0
}

// save persists a file's content, sealing it if configured, and records the
// file (and any implicit parent directories) in the index. Callers hold the
// mutex, except during openStore.
func (s *store) save(path string, content []byte) int {
	stored := content
	if s.sealer != nil {
		var err error
		if stored, err = s.sealer.seal(content); err != nil {
			s.logger.Errorf("seal %s: %v", path, err)
			return bridge.Errno(syscall.EIO)
		}
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket(contentBucket).Put([]byte(path), stored); err != nil {
			return err
		}
		b := tx.Bucket(directoriesBucket)
		for dir := pathpkg.Dir(path); dir != "/"; dir = pathpkg.Dir(dir) {
			if err := b.Put([]byte(dir), []byte{}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Errorf("save %s: %v", path, err)
		return bridge.Errno(syscall.EIO)
	}

	s.index.ReplaceOrInsert(pathItem{path: path})
	for dir := pathpkg.Dir(path); dir != "/"; dir = pathpkg.Dir(dir) {
		s.index.ReplaceOrInsert(pathItem{path: dir, dir: true})
	}
	return 0
}

// sizeOf reports a file's plaintext size. Sealed content carries a fixed
// per-file overhead, so the size is derivable without unsealing.
func (s *store) sizeOf(path string) uint64 {
	var n int
	s.db.View(func(tx *bolt.Tx) error {
		n = len(tx.Bucket(contentBucket).Get([]byte(path)))
		return nil
	})
	if s.sealer != nil {
		n -= s.sealer.overhead()
		if n < 0 {
			n = 0
		}
	}
	return uint64(n)
}
