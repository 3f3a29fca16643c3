package toolset

import (
	"context"

	"github.com/regionedit/regionedit"
	"github.com/regionedit/regionedit/schema"
)

// Input types for the region tools. Field names follow the wire names
// used by tool callers.

type listRegionsInput struct {
	FilePath string `json:"file_path"`
}

type regionInput struct {
	FilePath   string `json:"file_path"`
	RegionName string `json:"region_name"`
}

type writeRegionInput struct {
	FilePath   string `json:"file_path"`
	RegionName string `json:"region_name"`
	NewContent string `json:"new_content"`
}

type replaceInRegionInput struct {
	FilePath   string `json:"file_path"`
	RegionName string `json:"region_name"`
	OldText    string `json:"old_text"`
	NewText    string `json:"new_text"`
	// nil means unlimited; the schema documents -1 as the default.
	MaxOccurrences *int `json:"max_occurrences"`
}

type deleteInRegionInput struct {
	FilePath     string `json:"file_path"`
	RegionName   string `json:"region_name"`
	TextToDelete string `json:"text_to_delete"`
}

type insertInRegionInput struct {
	FilePath     string `json:"file_path"`
	RegionName   string `json:"region_name"`
	FindText     string `json:"find_text"`
	TextToInsert string `json:"text_to_insert"`
}

// readRegionOutput reports region content, or found=false when the
// file or region does not exist.
type readRegionOutput struct {
	Found   bool   `json:"found" yaml:"found"`
	Content string `json:"content" yaml:"content"`
}

// mutationOutput reports whether a mutation was applied. A no-op
// (search text absent) still reports success=true.
type mutationOutput struct {
	Success bool `json:"success" yaml:"success"`
}

// previewRegionOutput carries a unified diff of a would-be write.
type previewRegionOutput struct {
	Found bool   `json:"found" yaml:"found"`
	Diff  string `json:"diff" yaml:"diff"`
}

var fileAndRegionSchema = schema.Object(map[string]*schema.Property{
	"file_path":   schema.String("Path to the file to operate on"),
	"region_name": schema.String("Name of the editable region"),
}, "file_path", "region_name")

// NewDefault creates a Registry with every region tool registered
// against the given engine:
//
//	list_regions, read_region, write_region, replace_in_region,
//	delete_in_region, insert_before_in_region, insert_after_in_region,
//	preview_region
func NewDefault(engine *regionedit.Engine, opts ...Option) (*Registry, error) {
	r := NewRegistry(opts...)

	tools := []any{
		regionedit.NewToolFunc(
			"list_regions",
			"List all editable regions in a file with their names and line ranges",
			schema.Object(map[string]*schema.Property{
				"file_path": schema.String("Path to the file to scan"),
			}, "file_path"),
			func(ctx context.Context, in listRegionsInput) ([]regionedit.Region, error) {
				return engine.Regions(in.FilePath)
			},
		),
		regionedit.NewToolFunc(
			"read_region",
			"Retrieve the current content of an editable region, excluding the marker lines",
			fileAndRegionSchema,
			func(ctx context.Context, in regionInput) (readRegionOutput, error) {
				content, found, err := engine.Read(in.FilePath, in.RegionName)
				if err != nil {
					return readRegionOutput{}, err
				}
				return readRegionOutput{Found: found, Content: content}, nil
			},
		),
		regionedit.NewToolFunc(
			"write_region",
			"Replace the whole content of an editable region",
			schema.Object(map[string]*schema.Property{
				"file_path":   schema.String("Path to the file to modify"),
				"region_name": schema.String("Name of the editable region"),
				"new_content": schema.String("New content to place inside the region"),
			}, "file_path", "region_name", "new_content"),
			func(ctx context.Context, in writeRegionInput) (mutationOutput, error) {
				ok, err := engine.Write(in.FilePath, in.RegionName, in.NewContent)
				return mutationOutput{Success: ok}, err
			},
		),
		regionedit.NewToolFunc(
			"replace_in_region",
			"Replace occurrences of a substring inside an editable region",
			schema.Object(map[string]*schema.Property{
				"file_path":       schema.String("Path to the file to modify"),
				"region_name":     schema.String("Name of the editable region"),
				"old_text":        schema.String("Text to search for"),
				"new_text":        schema.String("Replacement text"),
				"max_occurrences": schema.Integer("Maximum occurrences to replace; -1 for unlimited").Default(-1),
			}, "file_path", "region_name", "old_text", "new_text"),
			func(ctx context.Context, in replaceInRegionInput) (mutationOutput, error) {
				max := -1
				if in.MaxOccurrences != nil {
					max = *in.MaxOccurrences
				}
				ok, err := engine.ReplaceText(in.FilePath, in.RegionName, in.OldText, in.NewText, max)
				return mutationOutput{Success: ok}, err
			},
		),
		regionedit.NewToolFunc(
			"delete_in_region",
			"Delete the first occurrence of a substring inside an editable region",
			schema.Object(map[string]*schema.Property{
				"file_path":      schema.String("Path to the file to modify"),
				"region_name":    schema.String("Name of the editable region"),
				"text_to_delete": schema.String("Text to delete (first occurrence only)"),
			}, "file_path", "region_name", "text_to_delete"),
			func(ctx context.Context, in deleteInRegionInput) (mutationOutput, error) {
				ok, err := engine.DeleteText(in.FilePath, in.RegionName, in.TextToDelete)
				return mutationOutput{Success: ok}, err
			},
		),
		regionedit.NewToolFunc(
			"insert_before_in_region",
			"Insert text immediately before the first occurrence of an anchor inside an editable region",
			insertSchema(),
			func(ctx context.Context, in insertInRegionInput) (mutationOutput, error) {
				ok, err := engine.InsertBefore(in.FilePath, in.RegionName, in.FindText, in.TextToInsert)
				return mutationOutput{Success: ok}, err
			},
		),
		regionedit.NewToolFunc(
			"insert_after_in_region",
			"Insert text immediately after the first occurrence of an anchor inside an editable region",
			insertSchema(),
			func(ctx context.Context, in insertInRegionInput) (mutationOutput, error) {
				ok, err := engine.InsertAfter(in.FilePath, in.RegionName, in.FindText, in.TextToInsert)
				return mutationOutput{Success: ok}, err
			},
		),
		regionedit.NewToolFunc(
			"preview_region",
			"Show a unified diff of what write_region would change, without writing",
			schema.Object(map[string]*schema.Property{
				"file_path":   schema.String("Path to the file"),
				"region_name": schema.String("Name of the editable region"),
				"new_content": schema.String("Content the region would be replaced with"),
			}, "file_path", "region_name", "new_content"),
			func(ctx context.Context, in writeRegionInput) (previewRegionOutput, error) {
				diff, found, err := engine.PreviewWrite(in.FilePath, in.RegionName, in.NewContent)
				if err != nil {
					return previewRegionOutput{}, err
				}
				return previewRegionOutput{Found: found, Diff: diff}, nil
			},
		),
	}

	for _, tool := range tools {
		if err := r.Register(tool); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func insertSchema() map[string]any {
	return schema.Object(map[string]*schema.Property{
		"file_path":      schema.String("Path to the file to modify"),
		"region_name":    schema.String("Name of the editable region"),
		"find_text":      schema.String("Anchor text to locate (first occurrence)"),
		"text_to_insert": schema.String("Text to insert at the anchor"),
	}, "file_path", "region_name", "find_text", "text_to_insert")
}
