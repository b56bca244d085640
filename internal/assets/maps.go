package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // decoder registration
	_ "image/jpeg" // decoder registration
	_ "image/png"  // decoder registration

	_ "golang.org/x/image/bmp" // decoder registration

	"github.com/Faultbox/voxelspace/internal/engine/terrain"
	_ "github.com/Faultbox/voxelspace/internal/engine/texture" // TGA decoder registration
)

// Map file extensions tried in order.
var mapExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tga"}

// MapLoader builds the terrain for a map id.
type MapLoader interface {
	LoadMap(id int) (*terrain.Map, error)
}

// Catalog is the set of map ids 1..Size.
type Catalog struct {
	Size int
}

// Step moves from id by change, wrapping around the ends of the catalog.
func (c Catalog) Step(id, change int) int {
	if c.Size <= 0 {
		return id
	}
	return ((id-1+change)%c.Size+c.Size)%c.Size + 1
}

// Contains reports whether id is a valid map id.
func (c Catalog) Contains(id int) bool {
	return id >= 1 && id <= c.Size
}

// ColorPath returns the base name of the colour image of a map, without extension.
func ColorPath(id int) string {
	return fmt.Sprintf("maps/C%d", id)
}

// HeightPath returns the base name of the height image of a map, without extension.
func HeightPath(id int) string {
	return fmt.Sprintf("maps/D%d", id)
}

// LoadMap decodes the colour and height images of a map and builds its terrain.
func (m *Manager) LoadMap(id int) (*terrain.Map, error) {
	colorImg, err := m.loadImage(ColorPath(id))
	if err != nil {
		return nil, fmt.Errorf("map %d colour: %w", id, err)
	}
	heightImg, err := m.loadImage(HeightPath(id))
	if err != nil {
		return nil, fmt.Errorf("map %d height: %w", id, err)
	}
	tm, err := terrain.FromImages(colorImg, heightImg)
	if err != nil {
		return nil, fmt.Errorf("map %d: %w", id, err)
	}
	return tm, nil
}

// loadImage decodes the first file named base plus a known extension.
func (m *Manager) loadImage(base string) (image.Image, error) {
	for _, ext := range mapExtensions {
		f, err := m.Open(base + ext)
		if errors.Is(err, ErrMissingAsset) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", base+ext, err)
		}
		img, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", base+ext, err)
		}
		return img, nil
	}
	return nil, fmt.Errorf("%s.*: %w", base, ErrMissingAsset)
}

// Generator builds maps procedurally, seeded by map id.
type Generator struct {
	Size int
}

// LoadMap generates the terrain for a map id.
func (g Generator) LoadMap(id int) (*terrain.Map, error) {
	opts := terrain.DefaultGenerateOptions(int64(id))
	if g.Size > 0 {
		opts.Size = g.Size
	}
	tm, err := terrain.Generate(opts)
	if err != nil {
		return nil, fmt.Errorf("generating map %d: %w", id, err)
	}
	return tm, nil
}

// NewLoader returns a Manager over the given sources, or a Generator of the
// given tile size when there are none. The caller closes the returned closer.
func NewLoader(sources []string, generatedSize int) (MapLoader, func() error, error) {
	if len(sources) == 0 {
		return Generator{Size: generatedSize}, func() error { return nil }, nil
	}
	m := NewManager()
	for _, path := range sources {
		if err := m.AddSource(path); err != nil {
			m.Close()
			return nil, nil, err
		}
	}
	return m, m.Close, nil
}
