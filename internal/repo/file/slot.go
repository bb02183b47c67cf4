package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Yotrages/exquisite-wears/internal/ports"
)

// Проверка, что Slot удовлетворяет интерфейсу CartSlot.
var _ ports.CartSlot = (*Slot)(nil)

// DefaultDir — каталог слотов по умолчанию.
const DefaultDir = "~/.config/cart-agent"

// ErrInvalidKey — ключ слота не может быть именем файла.
var ErrInvalidKey = errors.New("invalid slot key")

// Slot — слот корзины в файле <dir>/<key>.json.
// Запись атомарна: временный файл в том же каталоге и rename поверх.
type Slot struct {
	dir string
	mu  sync.Mutex
}

// NewSlot — конструктор; "~" в начале пути раскрывается в домашний каталог.
func NewSlot(dir string) (*Slot, error) {
	resolved, err := resolveDir(dir)
	if err != nil {
		return nil, err
	}
	return &Slot{dir: resolved}, nil
}

// Dir — абсолютный каталог слотов.
func (s *Slot) Dir() string { return s.dir }

// Read — содержимое слота; (nil, nil), если файла нет.
func (s *Slot) Read(_ context.Context, key string) ([]byte, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, err
	}
	payload, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read slot: %w", err)
	}
	return payload, nil
}

// Write — атомарно заменяет содержимое слота.
func (s *Slot) Write(ctx context.Context, key string, payload []byte) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create slot dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, "."+key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }() // после rename файла уже нет

	if _, err := tmp.Write(payload); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename slot: %w", err)
	}
	return nil
}

func (s *Slot) path(key string) (string, error) {
	k := strings.TrimSpace(key)
	if k == "" || k == "." || k == ".." || strings.ContainsAny(k, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return filepath.Join(s.dir, k+".json"), nil
}

func resolveDir(dir string) (string, error) {
	trimmed := strings.TrimSpace(dir)
	if trimmed == "" {
		trimmed = DefaultDir
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
