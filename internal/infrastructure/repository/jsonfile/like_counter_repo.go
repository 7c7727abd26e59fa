package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"math/big"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/mikiasgoitom/likeboard/internal/domain/contract"
	"github.com/mikiasgoitom/likeboard/internal/domain/entity"
)

// DefaultFileName is the state file used when no path is configured.
const DefaultFileName = "likes-data.json"

// LikeCounterRepository keeps the like counter in a single JSON document.
// All access goes through mu, so read-modify-write cycles never interleave
// within one process.
type LikeCounterRepository struct {
	path string
	mu   sync.Mutex
}

var _ contract.ILikeCounterRepository = (*LikeCounterRepository)(nil)

// NewLikeCounterRepository creates and returns a new LikeCounterRepository.
// A relative path is resolved against the working directory.
func NewLikeCounterRepository(path string) *LikeCounterRepository {
	if path == "" {
		path = DefaultFileName
	}
	return &LikeCounterRepository{path: path}
}

// Path returns the state file location.
func (r *LikeCounterRepository) Path() string {
	return r.path
}

// EnsureInitialized writes {"totalLikes":0} if the file does not exist.
func (r *LikeCounterRepository) EnsureInitialized(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, err := r.loadOrInit()
	return err
}

// GetTotalLikes reads the current total.
func (r *LikeCounterRepository) GetTotalLikes(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	counter, err := r.loadOrInit()
	if err != nil {
		return 0, err
	}
	return counter.TotalLikes, nil
}

// IncrementTotalLikes adds one to the stored total and persists it.
func (r *LikeCounterRepository) IncrementTotalLikes(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	counter, err := r.loadOrInit()
	if err != nil {
		return 0, err
	}
	if counter.TotalLikes == math.MaxInt64 {
		return 0, fmt.Errorf("like counter at %s cannot grow past %d", r.path, counter.TotalLikes)
	}
	counter.TotalLikes++
	if err := r.save(counter); err != nil {
		return 0, err
	}
	return counter.TotalLikes, nil
}

// loadOrInit must be called with mu held.
func (r *LikeCounterRepository) loadOrInit() (*entity.LikeCounter, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		counter := &entity.LikeCounter{}
		if err := r.save(counter); err != nil {
			return nil, err
		}
		return counter, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", r.path, err)
	}
	return decode(data)
}

// decode accepts any JSON number without a fractional part, so 5, 5.0 and
// 5e0 all read as 5. Quoted numbers are rejected.
func decode(data []byte) (*entity.LikeCounter, error) {
	var raw struct {
		TotalLikes json.RawMessage `json:"totalLikes"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrMalformedState, err)
	}
	if len(raw.TotalLikes) == 0 || string(raw.TotalLikes) == "null" {
		return nil, fmt.Errorf("%w: missing totalLikes", entity.ErrMalformedState)
	}
	total, err := parseWholeNumber(string(raw.TotalLikes))
	if err != nil {
		return nil, fmt.Errorf("%w: totalLikes %s: %v", entity.ErrMalformedState, raw.TotalLikes, err)
	}
	counter := &entity.LikeCounter{TotalLikes: total}
	if err := counter.Validate(); err != nil {
		return nil, err
	}
	return counter, nil
}

func parseWholeNumber(s string) (int64, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	if strings.HasPrefix(s, `"`) {
		return 0, errors.New("not a number")
	}
	f, _, err := big.ParseFloat(s, 10, 256, big.ToNearestEven)
	if err != nil {
		return 0, errors.New("not a number")
	}
	n, acc := f.Int64()
	if acc != big.Exact {
		return 0, errors.New("not a whole number in int64 range")
	}
	return n, nil
}

// save replaces the file atomically: write a sibling temp file, then rename.
func (r *LikeCounterRepository) save(counter *entity.LikeCounter) error {
	data, err := json.Marshal(counter)
	if err != nil {
		return err
	}
	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, ".likes-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to chmod %s: %w", tmpName, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", r.path, err)
	}
	return nil
}
