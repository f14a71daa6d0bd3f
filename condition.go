package notedeck

import (
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/goosio/notedeck/chunk"
	"github.com/goosio/notedeck/config"
	"github.com/k1LoW/errors"
)

// condition is a compiled `defaults` entry of the config.
type condition struct {
	src    string
	prg    cel.Program
	ignore bool
}

// newConditionEnv creates the CEL environment slide conditions are evaluated in.
func newConditionEnv() (*cel.Env, error) {
	return cel.NewEnv(
		cel.Variable("page", cel.IntType),
		cel.Variable("pageTotal", cel.IntType),
		cel.Variable("template", cel.StringType),
		cel.Variable("heading", cel.StringType),
		cel.Variable("words", cel.IntType),
		cel.Variable("items", cel.IntType),
		cel.Variable("hasNotes", cel.BoolType),
	)
}

func compileConditions(defaults []config.DefaultCondition) (_ []*condition, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	if len(defaults) == 0 {
		return nil, nil
	}
	env, err := newConditionEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}
	conditions := make([]*condition, 0, len(defaults))
	for _, d := range defaults {
		ast, issues := env.Compile(d.If)
		if issues != nil && issues.Err() != nil {
			return nil, fmt.Errorf("condition compilation error for '%s': %w", d.If, issues.Err())
		}
		prg, err := env.Program(ast)
		if err != nil {
			return nil, fmt.Errorf("condition program creation error for '%s': %w", d.If, err)
		}
		conditions = append(conditions, &condition{
			src:    d.If,
			prg:    prg,
			ignore: d.Ignore != nil && *d.Ignore,
		})
	}
	return conditions, nil
}

func (c *condition) match(vars map[string]any) (bool, error) {
	out, _, err := c.prg.Eval(vars)
	if err != nil {
		return false, fmt.Errorf("condition evaluation error for '%s': %w", c.src, err)
	}
	v, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("condition '%s' is not a boolean expression", c.src)
	}
	return v, nil
}

func conditionVars(s *Slide, page, total int) map[string]any {
	words := chunk.CountWords(s.Content.Body) + chunk.CountWords(s.Content.Quote)
	return map[string]any{
		"page":      int64(page),
		"pageTotal": int64(total),
		"template":  string(s.Template),
		"heading":   s.Content.Heading,
		"words":     int64(words),
		"items":     int64(len(s.Content.Items)),
		"hasNotes":  s.SpeakerNotes != "",
	}
}

// applyConditions drops the body slides an ignoring condition matches.
// The title and end slides are never evaluated.
func (c *Compiler) applyConditions(slides Slides) Slides {
	if len(c.conditions) == 0 || len(slides) <= 2 {
		return slides
	}
	total := len(slides)
	kept := make(Slides, 0, total)
	kept = append(kept, slides[0])
	for i, s := range slides[1 : total-1] {
		page := i + 2
		if c.ignored(s, page, total) {
			c.logger.Debug("ignored slide", "page", page, "template", s.Template)
			continue
		}
		kept = append(kept, s)
	}
	return append(kept, slides[total-1])
}

func (c *Compiler) ignored(s *Slide, page, total int) bool {
	vars := conditionVars(s, page, total)
	for _, cond := range c.conditions {
		if !cond.ignore {
			continue
		}
		ok, err := cond.match(vars)
		if err != nil {
			c.logger.Warn("failed to evaluate condition", "error", err)
			continue
		}
		if ok {
			return true
		}
	}
	return false
}
