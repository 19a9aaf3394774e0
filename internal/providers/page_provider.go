package providers

import (
	"nellis/internal/structures"
	"strings"
)

type PageProviderInterface interface {
	Register(page structures.Page)
	Lookup(name string) (structures.Page, bool)
	GetPages() []structures.Page
}

type PageProvider struct {
	pages []structures.Page
	index map[string]int
}

func (pp *PageProvider) Register(page structures.Page) {
	pp.pages = append(pp.pages, page)
	pos := len(pp.pages) - 1
	pp.index[strings.ToLower(page.Name)] = pos
	for _, alias := range page.Aliases {
		pp.index[strings.ToLower(alias)] = pos
	}
}

// Lookup resolves a page by name or alias, case-insensitively.
func (pp *PageProvider) Lookup(name string) (structures.Page, bool) {
	pos, ok := pp.index[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return structures.Page{}, false
	}
	return pp.pages[pos], true
}

func (pp *PageProvider) GetPages() []structures.Page {
	out := make([]structures.Page, len(pp.pages))
	copy(out, pp.pages)
	return out
}

func NewPageProvider() PageProviderInterface {
	return &PageProvider{index: make(map[string]int)}
}
