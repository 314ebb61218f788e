package board

import (
	"io"
	"os"

	"github.com/board-explorer/backend/internal/models"
	"gopkg.in/yaml.v3"
)

// StyleTable maps role codes to marker colors. The code set and colors come
// from the board product's own tables; ship them as configuration so other
// products can override without a rebuild.
type StyleTable struct {
	Colors       map[models.Role]string `yaml:"colors"`
	DefaultColor string                 `yaml:"defaultColor"`
	PanelFill    string                 `yaml:"panelFill"`
}

// DefaultStyle returns the stock role color table.
func DefaultStyle() *StyleTable {
	return &StyleTable{
		Colors: map[models.Role]string{
			models.RoleStart:  "#00DD00",
			models.RoleMiddle: "#00FFFF",
			models.RoleFinish: "#FF00FF",
			models.RoleFoot:   "#FFA500",
		},
		DefaultColor: "#00FFFF",
		PanelFill:    "#111",
	}
}

// ColorFor returns the marker color for a role, falling back to the default
// color for codes outside the table.
func (t *StyleTable) ColorFor(role models.Role) string {
	if c, ok := t.Colors[role]; ok {
		return c
	}
	return t.DefaultColor
}

// LoadStyle reads a YAML style table from disk. Fields missing from the file
// keep their defaults.
func LoadStyle(path string) (*StyleTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseStyle(f)
}

// ParseStyle parses a YAML style table from a reader.
func ParseStyle(r io.Reader) (*StyleTable, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	table := DefaultStyle()
	if err := yaml.Unmarshal(data, table); err != nil {
		return nil, err
	}
	if table.DefaultColor == "" {
		table.DefaultColor = DefaultStyle().DefaultColor
	}
	if table.PanelFill == "" {
		table.PanelFill = DefaultStyle().PanelFill
	}
	return table, nil
}
