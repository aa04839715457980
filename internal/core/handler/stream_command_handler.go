package handler

import (
	"errors"
	"fmt"
	"io"
	"os"

	"iostream/internal/cli/output"
	"iostream/internal/core"
	"iostream/internal/core/domain"
	"iostream/internal/core/host"
	"iostream/internal/core/stream"
	"iostream/internal/ports"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var ErrNoInput = errors.New("no input: pass the text as an argument or pipe it on stdin")

// StreamCommandHandler serves the commands that work on a single path
// outside of a script.
type StreamCommandHandler struct {
	configRepository core.ConfigRepository
	openerFactory    ports.StreamOpenerFactory
	terminalInput    ports.TerminalInput
	out              io.Writer
}

func ProvideStreamCommandHandler(
	configRepository core.ConfigRepository,
	openerFactory ports.StreamOpenerFactory,
	terminalInput ports.TerminalInput,
) StreamCommandHandler {
	return StreamCommandHandler{
		configRepository: configRepository,
		openerFactory:    openerFactory,
		terminalInput:    terminalInput,
		out:              os.Stdout,
	}
}

// ResolveBackend picks the backend for a command. A backend type given on
// the command line wins over the current context's backend, and the os
// backend is used when there is no usable context. A root given on the
// command line overrides the root of whichever backend was picked.
func (h *StreamCommandHandler) ResolveBackend(backendType string, root string) domain.Backend {
	backend := domain.Backend{Type: domain.BackendOS}
	if backendType != "" {
		backend.Type = domain.BackendType(backendType)
	} else if configContext, err := h.configRepository.LoadCurrentConfigurationContext(); err == nil {
		backend = configContext.Backend
	} else {
		core.Logger().Debug("no current context, using the os backend", zap.Error(err))
	}
	if root != "" {
		backend.Root = root
	}
	return backend
}

// HandleCat copies the file at path to the output, either in one read or
// line by line with the bounded line reader.
func (h *StreamCommandHandler) HandleCat(backend domain.Backend, path string, lines bool) error {
	file, err := h.openFile(backend, path, domain.DefaultMode)
	if err != nil {
		return err
	}
	defer file.Close()

	if !lines {
		data, err := file.Read()
		if err != nil {
			return err
		}
		_, err = h.out.Write(data)
		return err
	}

	for {
		line, ok, err := file.Gets()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if _, err := io.WriteString(h.out, line); err != nil {
			return err
		}
	}
}

// HandleWrite writes text to path with mode. When text is nil the data is
// read from stdin, which must not be a terminal.
func (h *StreamCommandHandler) HandleWrite(backend domain.Backend, path string, mode string, text *string) error {
	var data []byte
	if text != nil {
		data = []byte(*text)
	} else {
		if h.terminalInput.IsTerminal() {
			return ErrNoInput
		}
		input, err := h.terminalInput.ReadAll()
		if err != nil {
			return err
		}
		data = input
	}

	file, err := h.openFile(backend, path, mode)
	if err != nil {
		return err
	}

	n, err := file.Write(data)
	if err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Release(); err != nil {
		return fmt.Errorf("failed to close '%s': %w", path, err)
	}
	if n == 0 && len(data) > 0 {
		return fmt.Errorf("failed to write '%s'", path)
	}

	output.PrintSuccess(h.out, fmt.Sprintf("Wrote %d %s to %s", len(data), output.Plural(len(data), "byte", "bytes"), path))
	return nil
}

// HandleExists prints whether path can be opened for reading, answered by
// the host's File.exist? so the command sees what a script would see.
func (h *StreamCommandHandler) HandleExists(backend domain.Backend, path string) (err error) {
	opener, err := h.openerFactory.ForBackend(backend)
	if err != nil {
		return err
	}
	rt := host.NewRuntime(opener)
	defer func() {
		err = multierr.Append(err, rt.Close())
	}()

	exists, err := rt.CallClass("File", "exist?", path)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(h.out, host.ToS(exists))
	return err
}

func (h *StreamCommandHandler) openFile(backend domain.Backend, path string, mode string) (*stream.File, error) {
	opener, err := h.openerFactory.ForBackend(backend)
	if err != nil {
		return nil, err
	}
	file := stream.NewFile(opener, path, mode)
	if file.Closed() {
		if file.OpenErr() != nil {
			return nil, fmt.Errorf("failed to open '%s': %w", path, file.OpenErr())
		}
		return nil, fmt.Errorf("failed to open '%s'", path)
	}
	return file, nil
}
