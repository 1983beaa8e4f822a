package domain

import "context"

// StyleCatalog is the style-preset table. Implementations are read-only
// lookups and must be safe to call from the pure engines.
type StyleCatalog interface {
	Presets() []StylePreset
	Preset(id string) (StylePreset, bool)
	ForStyle(style RecipeStyle) (StylePreset, bool)
}

// ContextCatalog supplies the optional context objects a DoughConfig
// refers to by id. Implementations can be in-memory, file-based, or
// backed by whatever the host application persists.
type ContextCatalog interface {
	Flour(ctx context.Context, id string) (*FlourDefinition, error)
	Levain(ctx context.Context, id string) (*Levain, error)
	Oven(ctx context.Context, id string) (*Oven, error)
	ListFlours(ctx context.Context) ([]FlourDefinition, error)
	ListOvens(ctx context.Context) ([]Oven, error)
	ListLevains(ctx context.Context) ([]Levain, error)
}

// CommandParser converts raw workbench input into structured intents.
type CommandParser interface {
	Parse(ctx context.Context, input string) (*Intent, error)
}
