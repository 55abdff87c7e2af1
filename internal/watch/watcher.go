// Package watch monitors local directories and uploads new media to
// the gallery as it appears.
package watch

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"glance/internal/log"
	"glance/pkg/types"

	"github.com/fsnotify/fsnotify"
	"github.com/gobwas/glob"
)

// Uploader is the single backend call the watcher needs.
type Uploader interface {
	UploadFile(ctx context.Context, dest types.Path, filename string, content io.Reader) error
}

// UploadResult reports one attempted upload.
type UploadResult struct {
	Path      string
	Timestamp time.Time
	Err       error
}

// debounceDelay lets a file settle before uploading. Editors and
// cameras write in bursts; only the last write within the window
// triggers an upload.
const debounceDelay = 2 * time.Second

// Watcher uploads files appearing under the watched directories.
type Watcher struct {
	uploader Uploader
	dest     types.Path
	includes []glob.Glob

	directories []string
	resultChan  chan UploadResult
	stopChan    chan struct{}
	fsWatcher   *fsnotify.Watcher

	mutex   sync.RWMutex
	pending map[string]*time.Timer
	running bool
}

// New creates a watcher that uploads matching files to dest.
// Includes may be empty, in which case every media file qualifies.
func New(uploader Uploader, dest types.Path, includes []glob.Glob) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		uploader:   uploader,
		dest:       dest.Clone(),
		includes:   includes,
		resultChan: make(chan UploadResult, 10),
		stopChan:   make(chan struct{}),
		fsWatcher:  fsWatcher,
		pending:    map[string]*time.Timer{},
	}, nil
}

// AddDirectory adds a directory to watch.
func (w *Watcher) AddDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("error accessing directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	if err := w.fsWatcher.Add(dir); err != nil {
		return fmt.Errorf("failed to add directory %s to watcher: %w", dir, err)
	}

	w.mutex.Lock()
	found := false
	for _, existing := range w.directories {
		if existing == dir {
			found = true
			break
		}
	}
	if !found {
		w.directories = append(w.directories, dir)
	}
	w.mutex.Unlock()

	log.WithFields(log.F("directory", dir)).Info("Watching directory")
	return nil
}

// Results returns the channel delivering upload outcomes.
func (w *Watcher) Results() <-chan UploadResult {
	return w.resultChan
}

// Matches reports whether a filename qualifies for auto-upload: it
// must be a media file, and when include patterns are configured it
// must match at least one.
func (w *Watcher) Matches(name string) bool {
	base := filepath.Base(name)
	if !types.IsMedia(base) {
		return false
	}
	if len(w.includes) == 0 {
		return true
	}
	for _, g := range w.includes {
		if g.Match(base) {
			return true
		}
	}
	return false
}

// Start begins watching. Events are debounced per file so partial
// writes never upload.
func (w *Watcher) Start() error {
	w.mutex.Lock()
	if w.running {
		w.mutex.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.stopChan = make(chan struct{})
	w.mutex.Unlock()

	go w.loop()

	log.Info("Watcher started.")
	return nil
}

func (w *Watcher) loop() {
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Write) {
				w.schedule(event.Name)
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.WithFields(log.F("error", err)).Error("fsnotify watcher error")

		case <-w.stopChan:
			return
		}
	}
}

// schedule arms (or re-arms) the debounce timer for path.
func (w *Watcher) schedule(path string) {
	if !w.Matches(path) {
		return
	}

	w.mutex.Lock()
	defer w.mutex.Unlock()
	if !w.running {
		return
	}
	if timer, ok := w.pending[path]; ok {
		timer.Stop()
	}
	w.pending[path] = time.AfterFunc(debounceDelay, func() {
		w.upload(path)
	})
}

func (w *Watcher) upload(path string) {
	w.mutex.Lock()
	delete(w.pending, path)
	running := w.running
	w.mutex.Unlock()
	if !running {
		return
	}

	result := UploadResult{Path: path, Timestamp: time.Now()}

	info, err := os.Stat(path)
	switch {
	case err != nil:
		// Written then removed within the debounce window.
		if os.IsNotExist(err) {
			return
		}
		result.Err = err
	case info.IsDir():
		return
	default:
		result.Err = w.doUpload(path)
	}

	if result.Err != nil {
		log.WithFields(log.F("file", path)).Errorf("auto-upload failed: %v", result.Err)
	} else {
		log.WithFields(log.F("file", path)).Info("Uploaded")
	}

	w.emit(result)
}

// emit delivers a result unless the watcher stopped while the upload
// was in flight. Holding the mutex across the send means Stop cannot
// close the channel between the running check and the send.
func (w *Watcher) emit(result UploadResult) {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if !w.running {
		log.WithFields(log.F("file", result.Path)).Warnf("Watcher stopped, dropped result")
		return
	}
	select {
	case w.resultChan <- result:
	default:
		log.WithFields(log.F("file", result.Path)).Warnf("Result channel is full, dropped result")
	}
}

func (w *Watcher) doUpload(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return w.uploader.UploadFile(context.Background(), w.dest, filepath.Base(path), f)
}

// Stop halts watching and cancels pending uploads.
func (w *Watcher) Stop() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if !w.running {
		return
	}

	close(w.stopChan)
	if err := w.fsWatcher.Close(); err != nil {
		log.WithFields(log.F("error", err)).Errorf("closing fsnotify watcher: %v", err)
	}

	for path, timer := range w.pending {
		timer.Stop()
		delete(w.pending, path)
	}

	w.running = false
	close(w.resultChan)

	log.Info("Watcher stopped.")
}

// IsRunning reports whether the watcher is active.
func (w *Watcher) IsRunning() bool {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.running
}

// Directories returns the watched directory list.
func (w *Watcher) Directories() []string {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	dirs := make([]string, len(w.directories))
	copy(dirs, w.directories)
	return dirs
}
