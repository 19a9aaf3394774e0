package services

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gookit/validate"

	"nellis/internal/models"
	"nellis/internal/providers"
	"nellis/internal/structures"
)

const (
	OpList      = "list"
	OpCreate    = "create"
	OpUpdate    = "update"
	OpDelete    = "delete"
	OpStatus    = "status"
	OpReceive   = "receive"
	OpAggregate = "aggregate"
)

var ErrUnknownConfirmation = errors.New("unknown or already used delete confirmation")

// ConfirmGate asks the user a yes/no question and blocks until answered.
type ConfirmGate func(message string) bool

// PendingConfirmation is the first half of a two-phase delete.
type PendingConfirmation struct {
	Token   string
	Page    string
	ID      int
	Message string
}

type Deps struct {
	Notifier Notifier
	Logger   providers.Logger
	Metrics  providers.MetricsProviderInterface
	Clock    providers.Clock
}

// PageView is what a page renders: the matching records plus the column
// layout, with one row of display cells per record.
type PageView[T models.Record] struct {
	Page       string
	Title      string
	Query      string
	Columns    []Column
	Searchable []string
	Records    []T
	Cells      [][]string
	Version    uint64
	// Volatile views depend on the clock and must not be cached.
	Volatile bool
}

// Controller owns one page's collection and every operation on it.
type Controller[T models.Record] struct {
	schema   *EntitySchema[T]
	store    *models.Store[T]
	notifier Notifier
	logger   providers.Logger
	metrics  providers.MetricsProviderInterface
	clock    providers.Clock
	fields   map[string]struct{}
	order    []string

	pendingMu sync.Mutex
	pending   map[string]PendingConfirmation
}

func NewController[T models.Record](schema *EntitySchema[T], store *models.Store[T], deps Deps) *Controller[T] {
	if store == nil {
		store = models.NewStore[T]()
	}
	if deps.Notifier == nil {
		deps.Notifier = nopNotifier{}
	}
	if deps.Logger == nil {
		deps.Logger = providers.NewNopLogger()
	}
	if deps.Metrics == nil {
		deps.Metrics = providers.NewMetricsProvider(&structures.Config{})
	}
	if deps.Clock == nil {
		deps.Clock = providers.NewClockProvider()
	}

	var zero T
	order := fieldOrder(zero)
	fields := make(map[string]struct{}, len(order))
	for _, k := range order {
		fields[k] = struct{}{}
	}

	return &Controller[T]{
		schema:   schema,
		store:    store,
		notifier: deps.Notifier,
		logger:   deps.Logger,
		metrics:  deps.Metrics,
		clock:    deps.Clock,
		fields:   fields,
		order:    order,
		pending:  make(map[string]PendingConfirmation),
	}
}

func (c *Controller[T]) Name() string             { return c.schema.Name }
func (c *Controller[T]) Title() string            { return c.schema.Title }
func (c *Controller[T]) Schema() *EntitySchema[T] { return c.schema }
func (c *Controller[T]) Len() int                 { return c.store.Len() }
func (c *Controller[T]) Version() uint64          { return c.store.Version() }

func (c *Controller[T]) HasField(field string) bool {
	_, ok := c.fields[field]
	return ok
}

// Seed replaces the collection with fixture records, keeping their ids.
func (c *Controller[T]) Seed(records []T) error {
	if err := c.store.Seed(records); err != nil {
		return fmt.Errorf("%s: %w", c.schema.Name, err)
	}
	c.metrics.SetRecordsTotal(c.schema.Name, c.store.Len())
	c.logger.Infof(providers.TypeApp, "%s: seeded %d records", c.schema.Name, len(records))
	return nil
}

func (c *Controller[T]) List() []T {
	return c.store.All()
}

// Search returns the records where any searchable field contains query,
// case-insensitively. A blank query matches everything.
func (c *Controller[T]) Search(query string) []T {
	start := time.Now()
	defer func() { c.observe(OpList, start, nil) }()

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c.List()
	}
	return c.Filter(func(rec T) bool { return c.matches(rec, q) })
}

func (c *Controller[T]) Filter(pred func(T) bool) []T {
	out := make([]T, 0)
	for _, rec := range c.store.All() {
		if pred == nil || pred(rec) {
			out = append(out, rec)
		}
	}
	return out
}

func (c *Controller[T]) matches(rec T, q string) bool {
	form, err := recordToForm(rec)
	if err != nil {
		c.logger.Warnf(providers.TypeQuery, "%s: %s", c.schema.Name, err)
		return false
	}
	for _, field := range c.schema.Searchable {
		if strings.Contains(strings.ToLower(fieldString(form[field])), q) {
			return true
		}
	}
	return false
}

func (c *Controller[T]) Get(id int) (T, error) {
	rec, ok := c.store.Get(id)
	if !ok {
		return rec, c.notFound(id)
	}
	return rec, nil
}

func (c *Controller[T]) Create(input Form) (T, error) {
	start := time.Now()
	rec, err := c.create(input)
	c.observe(OpCreate, start, err)
	return rec, err
}

func (c *Controller[T]) create(input Form) (T, error) {
	var zero T
	if !c.schema.Editable {
		return zero, c.invalid("", "records are submitted externally and cannot be added from the dashboard")
	}
	form, err := c.prepare(input)
	if err != nil {
		return zero, err
	}
	if _, ok := form["id"]; ok {
		return zero, c.invalid("id", "is allocated automatically")
	}

	now := c.clock.Now()
	for _, field := range sortedKeys(c.schema.Defaults) {
		if isBlank(form[field]) {
			form[field] = c.schema.Defaults[field](now)
		}
	}
	c.fillLists(form)

	if err := c.validate(form, c.schema.Required); err != nil {
		return zero, err
	}

	rec, err := c.insert(form)
	if err != nil {
		return zero, err
	}
	c.logger.Infof(providers.TypeAudit, "%s: created %d", c.schema.Name, rec.GetID())
	c.notifier.Notify(c.schema.Messages.Created, NotifySuccess)
	return rec, nil
}

// Receive stores a record submitted through the public site rather than the
// dashboard, e.g. a contact form or a booking request.
func (c *Controller[T]) Receive(input Form) (T, error) {
	start := time.Now()
	rec, err := c.receive(input)
	c.observe(OpReceive, start, err)
	return rec, err
}

func (c *Controller[T]) receive(input Form) (T, error) {
	var zero T
	intake := c.schema.Intake
	if intake == nil {
		return zero, c.invalid("", "this page does not accept submissions")
	}
	form, err := c.prepare(input)
	if err != nil {
		return zero, err
	}
	if _, ok := form["id"]; ok {
		return zero, c.invalid("id", "is allocated automatically")
	}

	now := c.clock.Now()
	for _, field := range sortedKeys(intake.Set) {
		form[field] = intake.Set[field](now)
	}
	c.fillLists(form)

	if err := c.validate(form, intake.Required); err != nil {
		return zero, err
	}

	rec, err := c.insert(form)
	if err != nil {
		return zero, err
	}
	c.logger.Infof(providers.TypeAudit, "%s: received %d", c.schema.Name, rec.GetID())
	c.notifier.Notify(c.schema.Messages.Received, NotifySuccess)
	return rec, nil
}

// Update merges patch over the stored record. Omitted fields keep their
// values and the record keeps its position.
func (c *Controller[T]) Update(id int, patch Form) (T, error) {
	start := time.Now()
	rec, err := c.update(id, patch)
	c.observe(OpUpdate, start, err)
	return rec, err
}

func (c *Controller[T]) update(id int, input Form) (T, error) {
	var zero T
	if !c.schema.Editable {
		return zero, c.invalid("", "records can only change status or be deleted")
	}
	current, ok := c.store.Get(id)
	if !ok {
		return zero, c.notFound(id)
	}
	patch, err := c.prepare(input)
	if err != nil {
		return zero, err
	}
	if raw, ok := patch["id"]; ok {
		if raw != strconv.Itoa(id) {
			return zero, c.invalid("id", "cannot be changed")
		}
		delete(patch, "id")
	}

	form, err := recordToForm(current)
	if err != nil {
		return zero, err
	}
	for _, field := range c.schema.Preserved {
		raw, ok := patch[field]
		if !ok {
			continue
		}
		if fieldString(raw) != fieldString(form[field]) {
			return zero, c.invalid(field, "is set when the record is created and cannot be changed")
		}
		delete(patch, field)
	}
	for k, v := range patch {
		form[k] = v
	}
	if err := c.validate(form, c.schema.Required); err != nil {
		return zero, err
	}

	rec, err := formToRecord[T](form)
	if err != nil {
		return zero, c.decodeError(err)
	}
	if !c.store.Replace(rec) {
		return zero, c.notFound(id)
	}
	c.logger.Infof(providers.TypeAudit, "%s: updated %d fields=%v", c.schema.Name, id, sortedKeys(patch))
	c.notifier.Notify(c.schema.Messages.Updated, NotifySuccess)
	return rec, nil
}

// SetField is the status-only update. The field must be one of the schema's
// status fields, value must belong to its enumeration and the transition
// policy, when the field has one, must allow the move.
func (c *Controller[T]) SetField(id int, field, value string) (T, error) {
	start := time.Now()
	rec, err := c.setField(id, field, value)
	c.observe(OpStatus, start, err)
	return rec, err
}

func (c *Controller[T]) setField(id int, field, value string) (T, error) {
	var zero T
	allowed, ok := c.schema.Enums[field]
	if !ok || !slices.Contains(c.schema.StatusFields, field) {
		return zero, c.invalid(field, "is not a status field")
	}
	value = strings.TrimSpace(value)
	if !slices.Contains(allowed, value) {
		return zero, c.invalid(field, fmt.Sprintf("%q is not one of %s", value, strings.Join(allowed, ", ")))
	}

	current, ok := c.store.Get(id)
	if !ok {
		return zero, c.notFound(id)
	}
	form, err := recordToForm(current)
	if err != nil {
		return zero, err
	}
	from := fieldString(form[field])
	if policy, ok := c.schema.Transitions[field]; ok && !policy.Allows(from, value) {
		return zero, c.invalid(field, fmt.Sprintf("cannot move from %s to %s", from, value))
	}

	form[field] = value
	rec, err := formToRecord[T](form)
	if err != nil {
		return zero, c.decodeError(err)
	}
	if !c.store.Replace(rec) {
		return zero, c.notFound(id)
	}
	c.logger.Infof(providers.TypeAudit, "%s: %d %s %s -> %s", c.schema.Name, id, field, from, value)
	c.notifier.Notify(c.schema.Messages.status(value), NotifySuccess)
	return rec, nil
}

// Delete removes a record once gate approves. A declined gate is not an
// error and leaves the collection untouched.
func (c *Controller[T]) Delete(id int, gate ConfirmGate) (bool, error) {
	pending := c.RequestDelete(id)
	if gate == nil || !gate(pending.Message) {
		c.Cancel(pending.Token)
		c.logger.Debugf(providers.TypeAudit, "%s: delete %d declined", c.schema.Name, id)
		return false, nil
	}
	if err := c.Confirm(pending.Token); err != nil {
		return false, err
	}
	return true, nil
}

func (c *Controller[T]) RequestDelete(id int) PendingConfirmation {
	p := PendingConfirmation{
		Token:   uuid.NewString(),
		Page:    c.schema.Name,
		ID:      id,
		Message: c.schema.Messages.ConfirmDelete,
	}
	c.pendingMu.Lock()
	c.pending[p.Token] = p
	c.pendingMu.Unlock()
	return p
}

// Confirm completes a pending delete. Each token can be used once.
func (c *Controller[T]) Confirm(token string) error {
	start := time.Now()
	err := c.confirm(token)
	c.observe(OpDelete, start, err)
	return err
}

func (c *Controller[T]) confirm(token string) error {
	c.pendingMu.Lock()
	p, ok := c.pending[token]
	delete(c.pending, token)
	c.pendingMu.Unlock()
	if !ok {
		return ErrUnknownConfirmation
	}

	if !c.store.Remove(p.ID) {
		return c.notFound(p.ID)
	}
	c.logger.Infof(providers.TypeAudit, "%s: deleted %d", c.schema.Name, p.ID)
	c.notifier.Notify(c.schema.Messages.Deleted, NotifySuccess)
	return nil
}

// Cancel drops a pending delete; it reports whether the token was pending.
func (c *Controller[T]) Cancel(token string) bool {
	c.pendingMu.Lock()
	defer c.pendingMu.Unlock()
	_, ok := c.pending[token]
	delete(c.pending, token)
	return ok
}

// AggregateByField counts records per value of field, recomputed from the
// live collection on every call. Enumerated fields report every member, list
// fields count each element, and computed fields are supported.
func (c *Controller[T]) AggregateByField(field string) (map[string]int, error) {
	start := time.Now()
	counts, err := c.aggregate(field)
	c.observe(OpAggregate, start, err)
	return counts, err
}

func (c *Controller[T]) aggregate(field string) (map[string]int, error) {
	computed, isComputed := c.schema.Computed[field]
	if !isComputed && !c.HasField(field) {
		return nil, c.invalid(field, "unknown field")
	}

	counts := make(map[string]int)
	for _, v := range c.schema.Enums[field] {
		counts[v] = 0
	}

	now := c.clock.Now()
	for _, rec := range c.store.All() {
		if isComputed {
			counts[computed(rec, now)]++
			continue
		}
		form, err := recordToForm(rec)
		if err != nil {
			return nil, err
		}
		if list, ok := form[field].([]string); ok {
			for _, item := range list {
				counts[item]++
			}
			continue
		}
		counts[fieldString(form[field])]++
	}
	return counts, nil
}

func (c *Controller[T]) View(query string) PageView[T] {
	records := c.Search(query)
	now := c.clock.Now()
	cells := make([][]string, len(records))
	for i, rec := range records {
		cells[i] = c.Row(rec, now)
	}
	return PageView[T]{
		Page:       c.schema.Name,
		Title:      c.schema.Title,
		Query:      query,
		Columns:    c.schema.Columns,
		Searchable: c.schema.Searchable,
		Records:    records,
		Cells:      cells,
		Version:    c.store.Version(),
		Volatile:   len(c.schema.Computed) > 0,
	}
}

// Row renders rec's display cells in column order.
func (c *Controller[T]) Row(rec T, now time.Time) []string {
	form, err := recordToForm(rec)
	if err != nil {
		form = Form{}
	}
	row := make([]string, len(c.schema.Columns))
	for i, col := range c.schema.Columns {
		if fn, ok := c.schema.Computed[col.Field]; ok {
			row[i] = fn(rec, now)
			continue
		}
		row[i] = fieldString(form[col.Field])
	}
	return row
}

type FieldValue struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Fields lists rec's stored fields in declaration order followed by its
// computed fields.
func (c *Controller[T]) Fields(rec T) []FieldValue {
	form, err := recordToForm(rec)
	if err != nil {
		form = Form{}
	}
	out := make([]FieldValue, 0, len(c.order)+len(c.schema.Computed))
	for _, name := range c.order {
		out = append(out, FieldValue{Name: name, Value: fieldString(form[name])})
	}
	derived := c.Derived(rec)
	for _, name := range sortedKeys(derived) {
		out = append(out, FieldValue{Name: name, Value: derived[name]})
	}
	return out
}

// Derived returns the computed fields of rec at the current time.
func (c *Controller[T]) Derived(rec T) map[string]string {
	now := c.clock.Now()
	out := make(map[string]string, len(c.schema.Computed))
	for name, fn := range c.schema.Computed {
		out[name] = fn(rec, now)
	}
	return out
}

func (c *Controller[T]) insert(form Form) (T, error) {
	return c.store.Insert(func(id int) (T, error) {
		form["id"] = strconv.Itoa(id)
		rec, err := formToRecord[T](form)
		if err != nil {
			return rec, c.decodeError(err)
		}
		return rec, nil
	})
}

// prepare checks the keys of a submitted form and normalizes its values:
// list fields are split and trimmed, everything else becomes trimmed text.
func (c *Controller[T]) prepare(input Form) (Form, error) {
	form := make(Form, len(input))
	var unknown []string
	for k, v := range input {
		if _, ok := c.fields[k]; !ok {
			unknown = append(unknown, k)
			continue
		}
		if c.schema.isListField(k) {
			list, err := models.NormalizeList(v)
			if err != nil {
				return nil, c.invalid(k, err.Error())
			}
			form[k] = list
			continue
		}
		form[k] = strings.TrimSpace(fieldString(v))
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, &models.ValidationError{Entity: c.schema.Noun, Fields: unknown, Reason: "unknown field"}
	}
	return form, nil
}

func (c *Controller[T]) fillLists(form Form) {
	for _, field := range c.schema.ListFields {
		if _, ok := form[field]; !ok {
			form[field] = []string{}
		}
	}
}

func (c *Controller[T]) validate(form Form, required []string) error {
	v := validate.Map(map[string]any(form))
	v.StopOnError = false
	for _, field := range required {
		v.StringRule(field, "required")
	}
	// enum fields are never blank; "in" alone passes empty values
	for _, field := range sortedKeys(c.schema.Enums) {
		if !slices.Contains(required, field) {
			v.StringRule(field, "required")
		}
		v.AddRule(field, "in", c.schema.Enums[field])
	}
	for _, field := range sortedKeys(c.schema.Formats) {
		v.StringRule(field, c.schema.Formats[field])
	}
	if v.Validate() {
		return nil
	}

	failed := v.Errors.All()
	reasons := make([]string, 0, len(failed))
	for _, field := range sortedKeys(failed) {
		for _, msg := range failed[field] {
			reasons = append(reasons, msg)
		}
	}
	sort.Strings(reasons)
	return &models.ValidationError{
		Entity: c.schema.Noun,
		Fields: sortedKeys(failed),
		Reason: strings.Join(reasons, "; "),
	}
}

func (c *Controller[T]) decodeError(err error) error {
	return c.invalid("", err.Error())
}

func (c *Controller[T]) invalid(field, reason string) error {
	return models.NewValidationError(c.schema.Noun, field, reason)
}

func (c *Controller[T]) notFound(id int) error {
	return &models.NotFoundError{Entity: c.schema.Noun, ID: id}
}

func (c *Controller[T]) observe(op string, start time.Time, err error) {
	c.metrics.ObserveOperationDuration(op, time.Since(start))
	c.metrics.IncOperationsTotal(c.schema.Name, op, err)
	if err != nil {
		c.logger.Warnf(providers.GetLogTypeByOperation(op), "%s %s failed: %s", c.schema.Name, op, err)
		return
	}
	c.metrics.SetRecordsTotal(c.schema.Name, c.store.Len())
}
