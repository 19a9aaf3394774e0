package controllers

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"nellis/internal/providers"
	"nellis/internal/services"
	"nellis/internal/structures"
)

var errUnterminatedQuote = errors.New("unterminated quote")

const helpText = `Commands:
  pages                              list dashboard pages
  list <page> [query]                show records, filtered by query
  show <page> <id>                   show one record
  add <page> field=value ...         create a record
  submit <page> field=value ...      take a site submission (contacts, bookings)
  edit <page> <id> field=value ...   update fields of a record
  delete <page> <id>                 delete a record (asks for confirmation)
  status <page> <id> <value>         change a record's status
  stats <page> [field]               count records per field value
  dashboard                          stat cards and recent activity
  activity                           recent activity
  metrics                            operation metrics
  help                               this text
  quit                               leave the console
List fields take comma separated values or a repeated field=value. Quote
values that contain spaces.`

// ConsoleController runs the interactive dashboard. Every command is one
// intent; notifications raised while handling it are printed afterwards.
type ConsoleController struct {
	pages     providers.PageProviderInterface
	dashboard *DashboardController
	queue     *services.NotificationQueue
	metrics   providers.MetricsProviderInterface
	printer   *Printer
	logger    providers.Logger
	prompt    string
}

func NewConsoleController(
	conf *structures.Config,
	pages providers.PageProviderInterface,
	dashboard *DashboardController,
	queue *services.NotificationQueue,
	metrics providers.MetricsProviderInterface,
	printer *Printer,
	logger providers.Logger,
) *ConsoleController {
	return &ConsoleController{
		pages:     pages,
		dashboard: dashboard,
		queue:     queue,
		metrics:   metrics,
		printer:   printer,
		logger:    logger,
		prompt:    conf.Console.Prompt,
	}
}

// Run reads commands from in until quit, EOF or ctx cancellation.
func (cc *ConsoleController) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	confirm := func(message string) bool {
		fmt.Fprintf(out, "%s [y/N] ", message)
		if !scanner.Scan() {
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
		return answer == "y" || answer == "yes"
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		fmt.Fprint(out, cc.prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		quit, err := cc.Execute(out, scanner.Text(), confirm)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// Execute handles one command line. It reports whether the console should
// stop; the error is reserved for output failures.
func (cc *ConsoleController) Execute(out io.Writer, line string, confirm func(string) bool) (bool, error) {
	args, err := tokenize(line)
	if err != nil {
		cc.printer.Error(out, "%s", err)
		return false, nil
	}
	return cc.ExecuteArgs(out, args, confirm)
}

// ExecuteArgs is Execute for an already split command line.
func (cc *ConsoleController) ExecuteArgs(out io.Writer, args []string, confirm func(string) bool) (bool, error) {
	if len(args) == 0 {
		return false, nil
	}

	cmd := strings.ToLower(args[0])
	cc.logger.Debugf(providers.TypeQuery, "console: %s", cmd)
	err := cc.dispatch(out, cmd, args[1:], confirm)
	cc.printer.Notifications(out, cc.queue.Drain())
	return cmd == "quit" || cmd == "exit", err
}

func (cc *ConsoleController) dispatch(out io.Writer, cmd string, args []string, confirm func(string) bool) error {
	switch cmd {
	case "quit", "exit":
		return nil
	case "help", "?":
		_, err := fmt.Fprintln(out, helpText)
		return err
	case "pages":
		return cc.listPages(out)
	case "dashboard":
		return cc.dashboard.Stats(out)
	case "activity":
		return cc.dashboard.Activity(out)
	case "metrics":
		return cc.metrics.WriteText(out)
	case "list", "show", "add", "submit", "edit", "delete", "status", "stats":
		return cc.pageCommand(out, cmd, args, confirm)
	}
	cc.queue.Notify(fmt.Sprintf("unknown command %q, try help", cmd), services.NotifyError)
	return nil
}

func (cc *ConsoleController) listPages(out io.Writer) error {
	pages := cc.pages.GetPages()
	rows := make([][]string, len(pages))
	for i, p := range pages {
		rows[i] = []string{p.Name, p.Title, strings.Join(p.Aliases, ", ")}
	}
	return writeTable(out, []string{"Page", "Title", "Aliases"}, rows)
}

func (cc *ConsoleController) pageCommand(out io.Writer, cmd string, args []string, confirm func(string) bool) error {
	if len(args) == 0 {
		return cc.usage(cmd)
	}
	page, ok := cc.pages.Lookup(args[0])
	if !ok {
		cc.queue.Notify(fmt.Sprintf("unknown page %q", args[0]), services.NotifyError)
		return nil
	}
	h, rest := page.Handler, args[1:]

	switch cmd {
	case "list":
		return h.List(out, strings.Join(rest, " "))
	case "stats":
		field := ""
		if len(rest) > 0 {
			field = rest[0]
		}
		return h.Stats(out, field)
	case "add", "submit":
		form, err := parseForm(rest, page.ListFields)
		if err != nil {
			return cc.invalid(err)
		}
		if cmd == "submit" {
			return h.Submit(out, form)
		}
		return h.Add(out, form)
	}

	if len(rest) == 0 {
		return cc.usage(cmd)
	}
	id, err := strconv.Atoi(rest[0])
	if err != nil || id <= 0 {
		return cc.invalid(fmt.Errorf("invalid id %q", rest[0]))
	}
	rest = rest[1:]

	switch cmd {
	case "show":
		return h.Show(out, id)
	case "delete":
		return h.Delete(out, id, confirm)
	case "edit":
		form, err := parseForm(rest, page.ListFields)
		if err != nil {
			return cc.invalid(err)
		}
		return h.Edit(out, id, form)
	case "status":
		if len(rest) != 1 {
			return cc.usage(cmd)
		}
		return h.SetStatus(out, id, rest[0])
	}
	return cc.usage(cmd)
}

var usages = map[string]string{
	"list":   "list <page> [query]",
	"show":   "show <page> <id>",
	"add":    "add <page> field=value ...",
	"submit": "submit <page> field=value ...",
	"edit":   "edit <page> <id> field=value ...",
	"delete": "delete <page> <id>",
	"status": "status <page> <id> <value>",
	"stats":  "stats <page> [field]",
}

func (cc *ConsoleController) usage(cmd string) error {
	cc.queue.Notify("usage: "+usages[cmd], services.NotifyError)
	return nil
}

func (cc *ConsoleController) invalid(err error) error {
	cc.queue.Notify(err.Error(), services.NotifyError)
	return nil
}

// parseForm turns field=value arguments into a form. Repeating one of
// listFields collects its values into a list; repeating any other field is an
// error.
func parseForm(args []string, listFields []string) (map[string]any, error) {
	form := make(map[string]any, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("expected field=value, got %q", arg)
		}
		if _, seen := form[key]; seen && !slices.Contains(listFields, key) {
			return nil, fmt.Errorf("%s given more than once", key)
		}
		switch prev := form[key].(type) {
		case nil:
			form[key] = value
		case string:
			form[key] = []string{prev, value}
		case []string:
			form[key] = append(prev, value)
		}
	}
	return form, nil
}

// tokenize splits a command line on whitespace. Single or double quotes
// group words; quotes may start mid-token, as in name="Quick Lube".
func tokenize(line string) ([]string, error) {
	var (
		args    []string
		current strings.Builder
		quote   rune
		inToken bool
	)
	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
				continue
			}
			current.WriteRune(r)
		case r == '"' || r == '\'':
			quote = r
			inToken = true
		case r == ' ' || r == '\t':
			if inToken {
				args = append(args, current.String())
				current.Reset()
				inToken = false
			}
		default:
			current.WriteRune(r)
			inToken = true
		}
	}
	if quote != 0 {
		return nil, errUnterminatedQuote
	}
	if inToken {
		args = append(args, current.String())
	}
	return args, nil
}
