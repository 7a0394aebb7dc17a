package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	gtworld "github.com/CLOEI/gtworld-r"
)

// Memory is an immutable in-memory item catalog. Safe for concurrent
// readers once built.
type Memory struct {
	items map[uint32]*gtworld.Item
	count uint32
}

// New builds a Memory catalog from item records. The item count reported to
// the decoder is the highest id seen, matching the id-gating the wire
// format relies on.
func New(items []gtworld.Item) *Memory {
	m := &Memory{items: make(map[uint32]*gtworld.Item, len(items))}
	for i := range items {
		it := items[i]
		m.items[it.ID] = &it
		if it.ID > m.count {
			m.count = it.ID
		}
	}
	return m
}

// Get returns the record for an item id.
func (m *Memory) Get(id uint32) (*gtworld.Item, bool) {
	it, ok := m.items[id]
	return it, ok
}

// ItemCount returns the highest item id the catalog knows.
func (m *Memory) ItemCount() uint32 {
	return m.count
}

// Len returns the number of records held.
func (m *Memory) Len() int {
	return len(m.items)
}

type yamlItem struct {
	Name        string `yaml:"name"`
	FileName    string `yaml:"file_name"`
	TextureName string `yaml:"texture_name"`
	ID          uint32 `yaml:"id"`
	GrowTime    uint32 `yaml:"grow_time"`
	BaseColor   uint32 `yaml:"base_color"`
	TextureX    uint8  `yaml:"texture_x"`
	TextureY    uint8  `yaml:"texture_y"`
}

type yamlFile struct {
	Items []yamlItem `yaml:"items"`
}

// LoadYAML parses a YAML catalog fixture:
//
//	items:
//	  - id: 2
//	    name: Dirt
//	    grow_time: 5
//	    base_color: 0x8B4513FF
func LoadYAML(data []byte) (*Memory, error) {
	var f yamlFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("catalog: parse yaml: %w", err)
	}
	items := make([]gtworld.Item, 0, len(f.Items))
	for _, y := range f.Items {
		items = append(items, gtworld.Item{
			ID:          y.ID,
			Name:        y.Name,
			FileName:    y.FileName,
			TextureName: y.TextureName,
			GrowTime:    y.GrowTime,
			BaseColor:   y.BaseColor,
			TextureX:    y.TextureX,
			TextureY:    y.TextureY,
		})
	}
	return New(items), nil
}

// LoadYAMLFile reads and parses a YAML catalog fixture from disk.
func LoadYAMLFile(path string) (*Memory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	return LoadYAML(data)
}
