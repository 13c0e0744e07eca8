package ports

import "context"

// CargoTreePort lists the cargo dependency tree filtered to a single
// package, returning the command's raw text output. The pin extraction
// itself stays in core; this port only owns process invocation.
type CargoTreePort interface {
	ListPackage(ctx context.Context, pkg string) (string, error)
}

// GoModulePort lists one Go module's resolved version as raw
// "module version" text from the module listing command.
type GoModulePort interface {
	ListModule(ctx context.Context, module string) (string, error)
}
