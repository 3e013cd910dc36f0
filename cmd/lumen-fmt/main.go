package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"lumen/runtime-go/pkg/interp"
	"lumen/runtime-go/pkg/intl"
	"lumen/runtime-go/pkg/runtime"
)

const cliToolVersion = "lumen-fmt 0.0.0-dev"

var errorColor = color.New(color.FgRed)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	locale := "en-US"
	manifestPath := ""
	presetName := ""
	var inputs []string

	i := 0
	for i < len(args) {
		arg := args[i]
		switch {
		case arg == "--help" || arg == "-h":
			printUsage()
			return 0
		case arg == "--version" || arg == "-V":
			fmt.Fprintln(os.Stdout, cliToolVersion)
			return 0
		case arg == "--locale":
			if i+1 >= len(args) {
				errorColor.Fprintln(os.Stderr, "--locale requires a value")
				return 1
			}
			locale = args[i+1]
			i += 2
		case arg == "--manifest":
			if i+1 >= len(args) {
				errorColor.Fprintln(os.Stderr, "--manifest requires a path")
				return 1
			}
			manifestPath = args[i+1]
			i += 2
		case arg == "--preset":
			if i+1 >= len(args) {
				errorColor.Fprintln(os.Stderr, "--preset requires a name")
				return 1
			}
			presetName = args[i+1]
			i += 2
		case strings.HasPrefix(arg, "--"):
			errorColor.Fprintf(os.Stderr, "unknown flag %q\n", arg)
			return 1
		default:
			inputs = append(inputs, arg)
			i++
		}
	}

	if len(inputs) == 0 {
		printUsage()
		return 1
	}

	format, code := resolveFormat(locale, manifestPath, presetName)
	if code != 0 {
		return code
	}

	vm := interp.New()
	formatFn := interp.NewNumberFormatFunction(vm, format)
	vm.Heap().AddRoot(formatFn)
	vm.GlobalEnvironment().Define("format", formatFn)

	callee, err := vm.GlobalEnvironment().Get("format")
	if err != nil {
		errorColor.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}

	for _, input := range inputs {
		// Arguments stay strings; the closure performs the numeric coercion.
		result, err := vm.Call(callee, runtime.UndefinedValue{}, []runtime.Value{
			runtime.StringValue{Val: input},
		})
		if err != nil {
			errorColor.Fprintf(os.Stderr, "%v\n", err)
			return 1
		}
		text, ok := result.(runtime.StringValue)
		if !ok {
			errorColor.Fprintf(os.Stderr, "unexpected result %#v\n", result)
			return 1
		}
		fmt.Fprintf(os.Stdout, "%s\t%s\n", input, text.Val)
	}
	return 0
}

func resolveFormat(locale, manifestPath, presetName string) (*intl.NumberFormat, int) {
	if manifestPath == "" {
		if presetName != "" {
			errorColor.Fprintln(os.Stderr, "--preset requires --manifest")
			return nil, 1
		}
		return intl.NewNumberFormat(locale), 0
	}
	manifest, err := intl.LoadManifest(manifestPath)
	if err != nil {
		errorColor.Fprintf(os.Stderr, "%v\n", err)
		return nil, 1
	}
	if presetName == "" {
		errorColor.Fprintf(os.Stderr, "--manifest requires --preset (available: %s)\n",
			strings.Join(manifest.Names(), ", "))
		return nil, 1
	}
	format, ok := manifest.Preset(presetName)
	if !ok {
		errorColor.Fprintf(os.Stderr, "preset %q not found (available: %s)\n",
			presetName, strings.Join(manifest.Names(), ", "))
		return nil, 1
	}
	return format, 0
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  lumen-fmt [--locale TAG] NUMBER ...")
	fmt.Fprintln(os.Stderr, "  lumen-fmt --manifest locales.yml --preset NAME NUMBER ...")
}
