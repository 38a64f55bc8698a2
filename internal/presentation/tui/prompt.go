package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aretw0/jornada/pkg/domain"
	"github.com/muesli/termenv"
)

var (
	// ErrBack is returned by Ask when the user types :back.
	ErrBack = errors.New("back requested")
	// ErrQuit is returned by Ask when the user types :quit or input ends.
	ErrQuit = errors.New("quit requested")
)

const progressWidth = 20

// Prompter presents question nodes on a terminal and reads typed answers.
type Prompter struct {
	in  *bufio.Reader
	w   io.Writer
	out *termenv.Output
}

// NewPrompter creates a prompter reading lines from r and writing to w.
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(r),
		w:   w,
		out: termenv.NewOutput(w),
	}
}

// Show prints the node header, its question and the numbered options.
func (p *Prompter) Show(node domain.QuestionNode, progress int) {
	filled := progress * progressWidth / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", progressWidth-filled)
	fmt.Fprintf(p.w, "\n%s %3d%%\n", p.out.String(bar).Foreground(p.out.Color("#34d399")), progress)

	if t := node.Payload.Title; t != "" {
		fmt.Fprintln(p.w, p.out.String(t).Bold())
	}
	if q := node.Payload.Prompt; q != "" {
		fmt.Fprintln(p.w, q)
	}
	if s := node.Payload.Statement; s != "" {
		fmt.Fprintf(p.w, "“%s”\n", s)
	}
	if d := node.Payload.Description; d != "" {
		fmt.Fprintln(p.w, p.out.String(d).Faint())
	}
	for i, o := range node.Payload.Options {
		line := fmt.Sprintf("  %2d) %s", i+1, o.Text)
		if o.Description != "" {
			line += p.out.String(" - " + o.Description).Faint().String()
		}
		fmt.Fprintln(p.w, line)
	}
}

// Info prints a neutral message.
func (p *Prompter) Info(format string, args ...any) {
	fmt.Fprintln(p.w, p.out.String(">>> "+fmt.Sprintf(format, args...)).Faint())
}

// Error prints err in red.
func (p *Prompter) Error(err error) {
	fmt.Fprintln(p.w, p.out.String("✗ "+err.Error()).Foreground(p.out.Color("#f87171")))
}

// Ask reads every answer the node writes. Empty input keeps the current
// value. Answers are returned keyed by answer key, ready for RecordAnswer.
func (p *Prompter) Ask(node domain.QuestionNode, current domain.Answers) (map[string]any, error) {
	values := make(map[string]any)

	switch node.Kind {
	case domain.KindWelcome:
		_, err := p.read("Press Enter to begin", "")
		return values, err

	case domain.KindSingleChoice:
		for _, key := range node.AnswerKeys() {
			in, err := p.read("Choose an option", current.String(key))
			if err != nil {
				return nil, err
			}
			id, err := choice(node.Payload.Options, in)
			if err != nil {
				return nil, err
			}
			values[key] = id
		}

	case domain.KindMultiChoice:
		for _, key := range node.AnswerKeys() {
			label := "Choose options separated by commas"
			if m := node.Payload.MinSelections; m > 0 {
				label = fmt.Sprintf("%s (at least %d)", label, m)
			}
			in, err := p.read(label, strings.Join(current.Strings(key), ","))
			if err != nil {
				return nil, err
			}
			ids, err := choices(node.Payload.Options, in)
			if err != nil {
				return nil, err
			}
			values[key] = ids
		}

	case domain.KindTimeRange:
		for _, tp := range node.Payload.TimePickers {
			in, err := p.read(tp.Label+" (HH:MM)", current.String(tp.Key))
			if err != nil {
				return nil, err
			}
			values[tp.Key] = in
		}

	case domain.KindNumericSliders, domain.KindMindsetScale:
		for _, s := range node.Payload.Sliders {
			def := ""
			if v, ok := current.Number(s.Key); ok {
				def = strconv.FormatFloat(v, 'f', -1, 64)
			}
			label := fmt.Sprintf("%s [%g-%g]", s.Label, s.Min, s.Max)
			if node.Kind == domain.KindMindsetScale {
				label = fmt.Sprintf("Agreement [%g-%g]", s.Min, s.Max)
			}
			if s.Unit != "" {
				label += " " + s.Unit
			}
			in, err := p.read(label, def)
			if err != nil {
				return nil, err
			}
			n, err := number(in)
			if err != nil {
				return nil, err
			}
			values[s.Key] = n
		}

	case domain.KindActionCommitment:
		c := node.Payload.Commitment
		if c == nil {
			return values, nil
		}
		label := "Action"
		if c.Placeholder != "" {
			label = fmt.Sprintf("Action (e.g. %s)", c.Placeholder)
		}
		action, err := p.read(label, current.String(c.ActionKey))
		if err != nil {
			return nil, err
		}
		values[c.ActionKey] = action

		for i, tf := range c.Timeframes {
			fmt.Fprintf(p.w, "  %2d) %s\n", i+1, tf)
		}
		in, err := p.read("Timeframe", current.String(c.TimeframeKey))
		if err != nil {
			return nil, err
		}
		values[c.TimeframeKey] = timeframe(c.Timeframes, in)
	}
	return values, nil
}

// read prompts with label and returns the sanitized line, or def when the
// line is empty.
func (p *Prompter) read(label, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(p.w, "%s [%s]> ", label, def)
	} else {
		fmt.Fprintf(p.w, "%s> ", label)
	}

	line, err := p.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		if errors.Is(err, io.EOF) {
			return "", ErrQuit
		}
		return "", err
	}

	text, err := SanitizeInput(strings.TrimSpace(line))
	if err != nil {
		return "", err
	}
	switch strings.ToLower(text) {
	case ":back", ":b":
		return "", ErrBack
	case ":quit", ":q":
		return "", ErrQuit
	case "":
		return def, nil
	}
	return text, nil
}

// choice resolves a 1-based index or an option id.
func choice(options []domain.Option, in string) (string, error) {
	if in == "" {
		return "", errors.New("an option is required")
	}
	if n, err := strconv.Atoi(in); err == nil {
		if n < 1 || n > len(options) {
			return "", fmt.Errorf("option %d out of range 1-%d", n, len(options))
		}
		return options[n-1].ID, nil
	}
	for _, o := range options {
		if strings.EqualFold(o.ID, in) {
			return o.ID, nil
		}
	}
	return "", fmt.Errorf("unknown option %q", in)
}

// choices resolves a comma or space separated list, dropping repeats.
func choices(options []domain.Option, in string) ([]string, error) {
	fields := strings.FieldsFunc(in, func(r rune) bool { return r == ',' || r == ' ' })
	ids := make([]string, 0, len(fields))
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		id, err := choice(options, f)
		if err != nil {
			return nil, err
		}
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// number accepts a decimal comma as well as a point.
func number(in string) (float64, error) {
	n, err := strconv.ParseFloat(strings.Replace(in, ",", ".", 1), 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", in)
	}
	return n, nil
}

// timeframe maps a 1-based index to its label; anything else is kept as typed.
func timeframe(timeframes []string, in string) string {
	if n, err := strconv.Atoi(in); err == nil && n >= 1 && n <= len(timeframes) {
		return timeframes[n-1]
	}
	return in
}
