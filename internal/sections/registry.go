package sections

import (
	"sort"

	"github.com/jonathan/brand-styleguide/internal/types"
)

// Generator renders one section from token values and the brand analysis
type Generator func(ts *types.DesignTokenSet, analysis *types.BrandAnalysis) types.RenderedSection

// Registry associates catalog ids with generators. Build one at startup and
// pass it to whatever renders documents.
type Registry struct {
	generators map[int]Generator
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{generators: make(map[int]Generator)}
}

// Register associates a generator with a catalog id, replacing any previous one
func (r *Registry) Register(id int, g Generator) {
	r.generators[id] = g
}

// Lookup returns the generator registered for id
func (r *Registry) Lookup(id int) (Generator, bool) {
	g, ok := r.generators[id]
	return g, ok
}

// Len returns the number of registered generators
func (r *Registry) Len() int {
	return len(r.generators)
}

// IDs returns the registered ids in ascending order
func (r *Registry) IDs() []int {
	ids := make([]int, 0, len(r.generators))
	for id := range r.generators {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// GenerateTemplateSections walks the catalog in id order and renders every
// section with a registered generator. Ids without one are skipped.
func (r *Registry) GenerateTemplateSections(ts *types.DesignTokenSet, analysis *types.BrandAnalysis) []types.RenderedSection {
	var out []types.RenderedSection
	for _, e := range catalog {
		g, ok := r.generators[e.ID]
		if !ok {
			continue
		}
		out = append(out, g(ts, analysis))
	}
	return out
}

// DefaultRegistry returns a registry with every template generator registered
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for id, g := range templateGenerators() {
		r.Register(id, g)
	}
	return r
}

func templateGenerators() map[int]Generator {
	return map[int]Generator{
		1:  brandOverview,
		2:  colorPalette,
		3:  colorScales,
		4:  semanticColors,
		5:  neutralGrays,
		6:  typography,
		7:  typeScale,
		8:  spacingScale,
		9:  borderRadius,
		10: shadows,
		11: colorContrast,
		13: buttons,
		14: buttonStates,
		15: links,
		16: formInputs,
		17: formValidation,
		18: cards,
		19: badges,
		20: alerts,
		21: tables,
		22: lists,
		27: progress,
		28: avatars,
		29: iconography,
		31: navigation,
		32: hero,
		33: featureGrid,
		36: callToAction,
		37: siteFooter,
		41: cssVariables,
		42: utilityClasses,
		43: breakpoints,
		44: zIndexScale,
		45: motion,
		46: accessibility,
	}
}
