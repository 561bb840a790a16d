package texture

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"

	"github.com/nfnt/resize"
	"go.uber.org/zap"

	"github.com/Faultbox/objmesh/internal/logger"
)

// ErrUnknownHandle is returned for handles the loader did not issue.
var ErrUnknownHandle = errors.New("unknown texture handle")

// Handle identifies a loaded texture. The zero Handle means "no texture".
type Handle uint32

// Loader loads textures from a directory and caches them by filename, so
// materials sharing a texture share one handle.
type Loader struct {
	dir     string
	maxSize int
	log     *zap.Logger

	mu     sync.RWMutex
	byName map[string]Handle
	images []*image.RGBA // index = handle - 1

	// Stats
	hits   int
	misses int
}

// NewLoader creates a loader reading from dir. Textures wider or taller than
// maxSize are scaled down to fit, keeping their aspect ratio; 0 disables it.
func NewLoader(dir string, maxSize int) *Loader {
	return &Loader{
		dir:     dir,
		maxSize: maxSize,
		log:     logger.Named("texture"),
		byName:  make(map[string]Handle),
	}
}

// Load returns the handle for filename, decoding the file on first use.
func (l *Loader) Load(filename string) (Handle, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if h, ok := l.byName[filename]; ok {
		l.hits++
		return h, nil
	}
	l.misses++

	path := filepath.Join(l.dir, filename)
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading texture %s: %w", filename, err)
	}

	img, err := Decode(filename, data)
	if err != nil {
		return 0, fmt.Errorf("texture %s: %w", filename, err)
	}

	origW, origH := img.Bounds().Dx(), img.Bounds().Dy()
	if l.maxSize > 0 && (origW > l.maxSize || origH > l.maxSize) {
		scaled := resize.Thumbnail(uint(l.maxSize), uint(l.maxSize), img, resize.Bilinear)
		img = ToRGBA(scaled)
		l.log.Debug("downscaled texture",
			zap.String("file", filename),
			zap.Int("from_w", origW), zap.Int("from_h", origH),
			zap.Int("to_w", img.Bounds().Dx()), zap.Int("to_h", img.Bounds().Dy()))
	}

	l.images = append(l.images, img)
	h := Handle(len(l.images))
	l.byName[filename] = h

	l.log.Debug("loaded texture",
		zap.String("file", filename),
		zap.Uint32("handle", uint32(h)),
		zap.Int("width", img.Bounds().Dx()),
		zap.Int("height", img.Bounds().Dy()))

	return h, nil
}

// Image returns the pixels behind a handle.
func (l *Loader) Image(h Handle) (*image.RGBA, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if h == 0 || int(h) > len(l.images) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownHandle, h)
	}
	return l.images[h-1], nil
}

// Len returns the number of distinct textures loaded.
func (l *Loader) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.images)
}

// Stats returns cache statistics.
func (l *Loader) Stats() (hits, misses int) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.hits, l.misses
}

// Clear drops every cached texture. Previously issued handles become invalid.
func (l *Loader) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.byName = make(map[string]Handle)
	l.images = nil
	l.hits = 0
	l.misses = 0
}
