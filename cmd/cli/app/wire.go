//go:build wireinject
// +build wireinject

package app

import (
	"iostream/internal/adapters/filesystem"
	"iostream/internal/adapters/templater"
	"iostream/internal/adapters/terminal"
	"iostream/internal/core"
	"iostream/internal/core/handler"
	"iostream/internal/ports"

	"github.com/google/wire"
)

var Adapter = wire.NewSet(
	filesystem.ProvideOsFileSystem,
	wire.Bind(new(ports.FileSystem), new(*filesystem.OsFileSystem)),
	filesystem.ProvideBillyStreamOpenerFactory,
	wire.Bind(new(ports.StreamOpenerFactory), new(*filesystem.BillyStreamOpenerFactory)),
	templater.ProvideTextTemplater,
	terminal.ProvideTerminalInput,
	wire.Bind(new(ports.TerminalInput), new(*terminal.TerminalInput)),
)

// CoreSet provides domain/core dependencies
var CoreSet = wire.NewSet(
	core.ProvideFileSystemConfigRepository,
	wire.Bind(new(core.ConfigRepository), new(*core.FileSystemConfigRepository)),
)

// CommandHandlerSet combines all sets needed for command handlers
var CommandHandlerSet = wire.NewSet(
	Adapter,
	CoreSet,
)

func InjectConfigRepo() (core.ConfigRepository, error) {
	wire.Build(
		filesystem.ProvideOsFileSystem,
		wire.Bind(new(ports.FileSystem), new(*filesystem.OsFileSystem)),
		CoreSet,
	)
	return &core.FileSystemConfigRepository{}, nil
}

func InjectContextCommandHandler() (handler.ContextCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideContextCommandHandler,
	)
	return handler.ContextCommandHandler{}, nil
}

func InjectInitializeCommandHandler() (handler.InitializeCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideInitializeCommandHandler,
	)
	return handler.InitializeCommandHandler{}, nil
}

func InjectRunCommandHandler() (handler.RunCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideRunCommandHandler,
	)
	return handler.RunCommandHandler{}, nil
}

func InjectShowVarsCommandHandler() (handler.ShowVarsCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideShowVarsCommandHandler,
	)
	return handler.ShowVarsCommandHandler{}, nil
}

func InjectStreamCommandHandler() (handler.StreamCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideStreamCommandHandler,
	)
	return handler.StreamCommandHandler{}, nil
}
