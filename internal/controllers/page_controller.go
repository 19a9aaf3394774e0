package controllers

import (
	"errors"
	"fmt"
	"io"

	"nellis/internal/models"
	"nellis/internal/providers"
	"nellis/internal/services"
	"nellis/internal/structures"
)

// PageController adapts one collection controller to the console intents.
// Domain failures become error notifications; only output errors are
// returned.
type PageController[T models.Record] struct {
	ctrl     *services.Controller[T]
	renderer *Renderer
	notifier services.Notifier
	logger   providers.Logger
}

func NewPageController[T models.Record](ctrl *services.Controller[T], renderer *Renderer, notifier services.Notifier, logger providers.Logger) *PageController[T] {
	return &PageController[T]{ctrl: ctrl, renderer: renderer, notifier: notifier, logger: logger}
}

// Page describes the controller for the page registry.
func (pc *PageController[T]) Page() structures.Page {
	schema := pc.ctrl.Schema()
	return structures.Page{
		Name:       schema.Name,
		Title:      schema.Title,
		Aliases:    schema.Aliases,
		ListFields: schema.ListFields,
		Handler:    pc,
	}
}

func (pc *PageController[T]) fail(err error) error {
	if errors.Is(err, models.ErrValidation) || errors.Is(err, models.ErrNotFound) || errors.Is(err, services.ErrUnknownConfirmation) {
		pc.notifier.Notify(err.Error(), services.NotifyError)
		return nil
	}
	pc.logger.Errorf(providers.TypeApp, "%s: %s", pc.ctrl.Name(), err)
	pc.notifier.Notify(err.Error(), services.NotifyError)
	return err
}

func (pc *PageController[T]) List(w io.Writer, query string) error {
	return RenderView(pc.renderer, w, pc.ctrl.View(query))
}

func (pc *PageController[T]) Show(w io.Writer, id int) error {
	rec, err := pc.ctrl.Get(id)
	if err != nil {
		return pc.fail(err)
	}
	return pc.renderer.RenderFields(w, pc.ctrl.Fields(rec))
}

func (pc *PageController[T]) Add(w io.Writer, form map[string]any) error {
	rec, err := pc.ctrl.Create(services.Form(form))
	if err != nil {
		return pc.fail(err)
	}
	return pc.renderer.RenderFields(w, pc.ctrl.Fields(rec))
}

// Submit takes a record the way the public site would send it.
func (pc *PageController[T]) Submit(w io.Writer, form map[string]any) error {
	rec, err := pc.ctrl.Receive(services.Form(form))
	if err != nil {
		return pc.fail(err)
	}
	return pc.renderer.RenderFields(w, pc.ctrl.Fields(rec))
}

func (pc *PageController[T]) Edit(w io.Writer, id int, form map[string]any) error {
	rec, err := pc.ctrl.Update(id, services.Form(form))
	if err != nil {
		return pc.fail(err)
	}
	return pc.renderer.RenderFields(w, pc.ctrl.Fields(rec))
}

func (pc *PageController[T]) Delete(w io.Writer, id int, confirm func(message string) bool) error {
	deleted, err := pc.ctrl.Delete(id, services.ConfirmGate(confirm))
	if err != nil {
		return pc.fail(err)
	}
	if !deleted {
		_, err = fmt.Fprintln(w, "Delete cancelled")
	}
	return err
}

func (pc *PageController[T]) SetStatus(w io.Writer, id int, value string) error {
	fields := pc.ctrl.Schema().StatusFields
	if len(fields) == 0 {
		return pc.fail(models.NewValidationError(pc.ctrl.Schema().Noun, "", "this page has no status"))
	}
	if _, err := pc.ctrl.SetField(id, fields[0], value); err != nil {
		return pc.fail(err)
	}
	return nil
}

// Stats prints value counts for field, defaulting to the page's status field.
func (pc *PageController[T]) Stats(w io.Writer, field string) error {
	if field == "" {
		if fields := pc.ctrl.Schema().StatusFields; len(fields) > 0 {
			field = fields[0]
		} else {
			return pc.fail(models.NewValidationError(pc.ctrl.Schema().Noun, "", "a field name is required"))
		}
	}
	counts, err := pc.ctrl.AggregateByField(field)
	if err != nil {
		return pc.fail(err)
	}
	return pc.renderer.RenderCounts(w, field, counts)
}
