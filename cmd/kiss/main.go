package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/kisslang/kiss/cmds"
	"github.com/kisslang/kiss/diags"
	"github.com/kisslang/kiss/frontends"
	"github.com/kisslang/kiss/inspects"
	"github.com/kisslang/kiss/kissconfigs"
	"github.com/kisslang/kiss/modes"
	"github.com/kisslang/kiss/sources"
	"github.com/kisslang/kiss/tokens"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Frontends frontends.Module
	Inspects  inspects.Module
}

var action func(scope dscope.Scope) error

func init() {
	cmds.Define("dump", cmds.Func(func(path string) {
		action = dump(path)
	}).Desc("compile a source file or module directory and print its tree"))
	cmds.Define("check", cmds.Func(func(path string) {
		action = check(path)
	}).Desc("compile and run the configured starlark checks"))
	cmds.Define("inspect", cmds.Func(func(path string) {
		action = inspect(path)
	}).Desc("compile and open a starlark repl over the tree"))
}

func main() {
	cmds.Execute(os.Args[1:])
	if action == nil {
		cmds.PrintUsage()
		os.Exit(2)
	}

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)
	if err := action(scope); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimRight(err.Error(), "\n"))
		os.Exit(1)
	}
}

// compileFailed carries a rendered diagnostic.
type compileFailed struct {
	rendered string
}

func (c compileFailed) Error() string {
	return c.rendered
}

func compileSource(scope dscope.Scope, path string) (src *sources.Source, program *tokens.Compound, err error) {
	scope.Call(func(
		ext kissconfigs.SourceExt,
		compile frontends.Compile,
	) {
		src, err = sources.Resolve(path, string(ext))
		if err != nil {
			return
		}
		program, err = compile(context.Background(), src)
		if err != nil {
			err = compileFailed{
				rendered: diags.Render(err, src),
			}
		}
	})
	return
}

func dump(path string) func(dscope.Scope) error {
	return func(scope dscope.Scope) error {
		src, program, err := compileSource(scope, path)
		if err != nil {
			return err
		}
		backend := frontends.DumpBackend{
			Writer: os.Stdout,
		}
		return backend.Generate(context.Background(), src.Module, program)
	}
}

func check(path string) func(dscope.Scope) error {
	return func(scope dscope.Scope) error {
		src, program, err := compileSource(scope, path)
		if err != nil {
			return err
		}
		var findings []inspects.Finding
		scope.Call(func(
			checks kissconfigs.Checks,
			check inspects.Check,
		) {
			for _, script := range checks {
				var fs []inspects.Finding
				fs, err = check(context.Background(), script, src, program)
				if err != nil {
					return
				}
				findings = append(findings, fs...)
			}
		})
		if err != nil {
			return err
		}
		for _, finding := range findings {
			fmt.Println(finding)
		}
		if len(findings) > 0 {
			return fmt.Errorf("%d findings", len(findings))
		}
		return nil
	}
}

func inspect(path string) func(dscope.Scope) error {
	return func(scope dscope.Scope) error {
		src, program, err := compileSource(scope, path)
		if err != nil {
			return err
		}
		scope.Call(func(
			inspect inspects.Inspect,
		) {
			inspect(context.Background(), src, program)
		})
		return nil
	}
}
