package structures

import "io"

// PageHandler is the set of intents a dashboard page accepts from the console.
type PageHandler interface {
	List(w io.Writer, query string) error
	Show(w io.Writer, id int) error
	Add(w io.Writer, form map[string]any) error
	Submit(w io.Writer, form map[string]any) error
	Edit(w io.Writer, id int, form map[string]any) error
	Delete(w io.Writer, id int, confirm func(message string) bool) error
	SetStatus(w io.Writer, id int, value string) error
	Stats(w io.Writer, field string) error
}

type Page struct {
	Name    string
	Title   string
	Aliases []string
	// ListFields accept repeated field=value arguments.
	ListFields []string
	Handler    PageHandler
}
