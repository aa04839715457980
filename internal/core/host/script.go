package host

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"iostream/internal/core/domain"
	"iostream/internal/ports"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Interpreter runs scripts against a Runtime. Variables bound with let or
// as live for the whole run. String arguments are rendered as templates
// against values.
type Interpreter struct {
	rt        *Runtime
	templater ports.Templater
	values    map[string]interface{}
	out       io.Writer
	locals    map[string]Value
}

func NewInterpreter(rt *Runtime, templater ports.Templater, values map[string]interface{}, out io.Writer) *Interpreter {
	return &Interpreter{
		rt:        rt,
		templater: templater,
		values:    values,
		out:       out,
		locals:    make(map[string]Value),
	}
}

// Run executes script and finalizes the runtime afterwards. The name is
// used for template and error messages.
func (in *Interpreter) Run(name string, script domain.Script) (err error) {
	defer func() {
		err = multierr.Append(err, in.rt.Close())
	}()
	Logger().Debug("running script", zap.String("script", name), zap.Int("steps", len(script)))
	if _, err := in.runSteps(name, script); err != nil {
		return fmt.Errorf("script '%s': %w", name, err)
	}
	return nil
}

// Local returns the value bound to a script variable.
func (in *Interpreter) Local(name string) (Value, bool) {
	v, ok := in.locals[name]
	return v, ok
}

func (in *Interpreter) runSteps(name string, steps domain.Script) (Value, error) {
	var last Value
	for i, step := range steps {
		result, err := in.runStep(name, step)
		if err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i, step.Call, err)
		}
		last = result
	}
	return last, nil
}

func (in *Interpreter) runStep(name string, step domain.Step) (Value, error) {
	args, err := in.resolveArgs(name, step.Args)
	if err != nil {
		return nil, err
	}

	var block Block
	if step.As != "" {
		block = func(arg Value) (Value, error) {
			in.locals[step.As] = arg
			return in.runSteps(name, step.Do)
		}
	}

	result, err := in.dispatch(step, args, block)
	if step.Expect != "" {
		return nil, in.checkExpected(step, err)
	}
	if err != nil {
		return nil, err
	}

	if step.Let != "" {
		in.locals[step.Let] = result
	}
	if step.Print {
		if _, err := io.WriteString(in.out, PutsString(result)); err != nil {
			return nil, fmt.Errorf("failed to print result: %v", err)
		}
	}
	return result, nil
}

func (in *Interpreter) dispatch(step domain.Step, args []Value, block Block) (Value, error) {
	if className, method, ok := strings.Cut(step.Call, "."); ok {
		return in.rt.CallClassWithBlock(className, method, args, block)
	}
	if step.Recv == "" {
		return nil, fmt.Errorf("call '%s' has no receiver", step.Call)
	}
	recv, ok := in.locals[step.Recv]
	if !ok {
		return nil, fmt.Errorf("undefined variable '%s'", step.Recv)
	}
	return in.rt.CallWithBlock(recv, step.Call, args, block)
}

func (in *Interpreter) checkExpected(step domain.Step, err error) error {
	kind, parseErr := domain.ParseErrorKind(step.Expect)
	if parseErr != nil {
		return parseErr
	}
	if err == nil {
		return fmt.Errorf("expected %s, but the call succeeded", kind)
	}
	if !errors.Is(err, &domain.Error{Kind: kind}) {
		return fmt.Errorf("expected %s, got: %w", kind, err)
	}
	Logger().Debug("expected error raised", zap.String("call", step.Call), zap.Error(err))
	return nil
}

func (in *Interpreter) resolveArgs(name string, raw []any) ([]Value, error) {
	args := make([]Value, 0, len(raw))
	for _, arg := range raw {
		v, err := in.resolveArg(name, arg)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	return args, nil
}

func (in *Interpreter) resolveArg(name string, arg any) (Value, error) {
	switch arg := arg.(type) {
	case nil, bool, int64:
		return arg, nil
	case int:
		return int64(arg), nil
	case string:
		if ref, ok := strings.CutPrefix(arg, "$"); ok && ref != "" {
			v, ok := in.locals[ref]
			if !ok {
				return nil, fmt.Errorf("undefined variable '%s'", ref)
			}
			return v, nil
		}
		return in.render(name, arg)
	case []any:
		list, err := in.resolveArgs(name, arg)
		if err != nil {
			return nil, err
		}
		return list, nil
	default:
		return nil, fmt.Errorf("unsupported argument type %T", arg)
	}
}

func (in *Interpreter) render(name string, text string) (string, error) {
	if !strings.Contains(text, "{{") {
		return text, nil
	}
	rendered, err := in.templater.Render(text, name, in.values)
	if err != nil {
		return "", fmt.Errorf("failed to render argument %q: %v", text, err)
	}
	return rendered, nil
}
