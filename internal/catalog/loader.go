package catalog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"food-menu/internal/logger"
)

const (
	fieldDelimiter = ":"
	fieldCount     = 3
	maxLineBytes   = 1 << 20
	byteOrderMark  = "\uFEFF"
)

// BuildResult pairs the catalog with everything that was skipped while building it.
type BuildResult struct {
	Catalog     *Catalog
	Diagnostics []Diagnostic
}

// Unreadable returns the SourceUnreadable diagnostics.
func (r BuildResult) Unreadable() []Diagnostic {
	return r.filter(SourceUnreadable)
}

// Malformed returns the MalformedLine diagnostics.
func (r BuildResult) Malformed() []Diagnostic {
	return r.filter(MalformedLine)
}

func (r BuildResult) filter(kind DiagnosticKind) []Diagnostic {
	var out []Diagnostic
	for _, d := range r.Diagnostics {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out
}

type Loader struct {
	logger logger.Logger
}

func NewLoader(log logger.Logger) *Loader {
	if log == nil {
		log = logger.NoOp{}
	}
	return &Loader{logger: log}
}

// Build loads every source independently. A source that cannot be read leaves its
// category absent and is reported as a diagnostic; the remaining sources still load.
// Several sources for one category merge, later lines overwriting earlier ones.
func (l *Loader) Build(sources []Source) BuildResult {
	result := BuildResult{Catalog: newCatalog()}

	for _, src := range sources {
		items, diags, err := l.readSource(src.Category, src.Path)
		result.Diagnostics = append(result.Diagnostics, diags...)
		if err != nil {
			result.Diagnostics = append(result.Diagnostics, Diagnostic{
				Kind:     SourceUnreadable,
				Category: src.Category,
				Source:   src.Path,
				Err:      err,
			})
			l.logger.Warning("CatalogLoader", "category source unreadable", map[string]interface{}{
				"category": src.Category,
				"source":   src.Path,
				"error":    err.Error(),
			})
			continue
		}

		cat, exists := result.Catalog.categories[src.Category]
		if !exists {
			cat = newCategory()
			result.Catalog.categories[src.Category] = cat
			result.Catalog.order = append(result.Catalog.order, src.Category)
		}
		for _, item := range items {
			cat.put(item)
		}

		l.logger.Debug("CatalogLoader", "category loaded", map[string]interface{}{
			"category": src.Category,
			"source":   src.Path,
			"items":    len(items),
			"skipped":  len(diags),
		})
	}

	l.logger.Info("CatalogLoader", "catalog built", map[string]interface{}{
		"categories":  len(result.Catalog.order),
		"items":       result.Catalog.TotalItems(),
		"diagnostics": len(result.Diagnostics),
	})

	return result
}

// LoadCategory reads a single source into a name->item mapping.
func (l *Loader) LoadCategory(category, path string) (map[string]FoodItem, []Diagnostic, error) {
	items, diags, err := l.readSource(category, path)
	if err != nil {
		return nil, diags, err
	}
	cat := newCategory()
	for _, item := range items {
		cat.put(item)
	}
	return cat.items, diags, nil
}

func (l *Loader) readSource(category, path string) ([]FoodItem, []Diagnostic, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %w", ErrSourceUnreadable, path, err)
	}
	defer file.Close()

	return Parse(file, category, path)
}

// Parse reads well-formed lines in order. Malformed lines become diagnostics;
// only a read failure is returned as an error.
func Parse(r io.Reader, category, source string) ([]FoodItem, []Diagnostic, error) {
	var (
		items []FoodItem
		diags []Diagnostic
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if lineNo == 1 {
			line = strings.TrimPrefix(line, byteOrderMark)
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		item, ok := ParseLine(line)
		if !ok {
			diags = append(diags, Diagnostic{
				Kind:     MalformedLine,
				Category: category,
				Source:   source,
				Line:     lineNo,
				Text:     line,
			})
			continue
		}
		items = append(items, item)
	}
	if err := scanner.Err(); err != nil {
		return nil, diags, fmt.Errorf("%w: %s: %w", ErrSourceUnreadable, source, err)
	}

	return items, diags, nil
}

// ParseLine splits "name : image : description". Zero-length trailing fields are
// dropped before counting, so "a:b:c:" is accepted and "a:b:" is not. Anything other
// than exactly three fields, or an empty name, is rejected.
func ParseLine(line string) (FoodItem, bool) {
	parts := strings.Split(strings.TrimSuffix(line, "\r"), fieldDelimiter)
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	if len(parts) != fieldCount {
		return FoodItem{}, false
	}

	item := FoodItem{
		Name:            strings.TrimSpace(parts[0]),
		ImagePath:       strings.TrimSpace(parts[1]),
		DescriptionPath: strings.TrimSpace(parts[2]),
	}
	if item.Name == "" {
		return FoodItem{}, false
	}
	return item, true
}
