package fixtures

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	json "github.com/goccy/go-json"

	"nellis/internal/models"
	"nellis/internal/providers"
	"nellis/internal/structures"
)

// PackedExt marks a zstd-compressed fixture file.
const PackedExt = ".zst"

//go:embed seed.json
var seed []byte

type LoaderInterface interface {
	Load() (*models.Storage, error)
}

// Loader reads the seed collections the dashboard starts with. Without a
// configured path the embedded seed is used.
type Loader struct {
	path       string
	compressor CompressorInterface
	logger     providers.Logger
}

func NewLoader(conf *structures.Config, compressor CompressorInterface, logger providers.Logger) *Loader {
	return &Loader{path: conf.Fixtures.Path, compressor: compressor, logger: logger}
}

func (l *Loader) Load() (*models.Storage, error) {
	if l.path == "" {
		l.logger.Infof(providers.TypeApp, "Loading embedded fixtures")
		return Decode(seed)
	}
	return l.LoadFile(l.path)
}

func (l *Loader) LoadFile(fileName string) (*models.Storage, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, fmt.Errorf("read fixtures: %w", err)
	}
	if strings.HasSuffix(fileName, PackedExt) {
		if data, err = l.compressor.Decompress(data); err != nil {
			return nil, fmt.Errorf("decompress fixtures %s: %w", fileName, err)
		}
	}

	storage, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	l.logger.Infof(providers.TypeApp, "Loaded fixtures from %s", fileName)
	return storage, nil
}

// Pack compresses a JSON fixture file into dst. The source is decoded first
// so a broken fixture is never packed.
func (l *Loader) Pack(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read fixtures: %w", err)
	}
	if _, err := Decode(data); err != nil {
		return fmt.Errorf("%s: %w", src, err)
	}
	packed, err := l.compressor.Compress(data)
	if err != nil {
		return err
	}
	if err := writeFile(dst, packed); err != nil {
		return err
	}
	l.logger.Infof(providers.TypeApp, "Packed %s into %s (%d -> %d bytes)", src, dst, len(data), len(packed))
	return nil
}

// Embedded returns a copy of the built-in seed document.
func Embedded() []byte {
	out := make([]byte, len(seed))
	copy(out, seed)
	return out
}

func Decode(data []byte) (*models.Storage, error) {
	var storage models.Storage
	if err := json.Unmarshal(data, &storage); err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}
	return &storage, nil
}

func writeFile(fileName string, data []byte) error {
	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	if _, err = file.Write(data); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}
