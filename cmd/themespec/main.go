package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	themespec "github.com/ryotow/themespec"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "schema":
		schemaCmd(os.Args[2:])
	case "css":
		cssCmd(os.Args[2:])
	case "validate":
		validateCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "themespec CLI\n\nUsage:\n  themespec schema [-o out.json]\n  themespec css [-f theme.json]\n  themespec validate -f theme.json\n\nNotes:\n  - css and validate read stdin when -f is omitted.\n  - Files ending in .yaml/.yml are decoded as YAML.")
}

func schemaCmd(args []string) {
	fs := flag.NewFlagSet("schema", flag.ExitOnError)
	var out string
	fs.StringVar(&out, "o", "", "output filename (stdout when empty)")
	_ = fs.Parse(args)

	data, err := themespec.ThemeSchemaJSON()
	if err != nil {
		fatalf("schema: %v", err)
	}
	if out == "" {
		fmt.Println(string(data))
		return
	}
	if err := os.WriteFile(out, append(data, '\n'), 0o644); err != nil {
		fatalf("writing output: %v", err)
	}
}

func cssCmd(args []string) {
	fs := flag.NewFlagSet("css", flag.ExitOnError)
	var file string
	fs.StringVar(&file, "f", "", "theme file (stdin when empty)")
	_ = fs.Parse(args)

	t, err := loadTheme(file)
	if err != nil {
		fatalf("css: %v", err)
	}
	fmt.Println(themespec.CSSVariables(t))
}

func validateCmd(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	var file string
	fs.StringVar(&file, "f", "", "theme file (stdin when empty)")
	_ = fs.Parse(args)

	t, err := loadTheme(file)
	if err != nil {
		fatalf("validate: %v", err)
	}
	if _, err := themespec.ValidateTheme(t); err != nil {
		iss, _ := themespec.AsIssues(err)
		for _, it := range iss {
			fmt.Fprintf(os.Stderr, "%s at %s: %s\n", it.Code, it.Path, it.Message)
		}
		os.Exit(1)
	}
	fmt.Println("ok")
}

func loadTheme(file string) (*themespec.Theme, error) {
	if file == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		return themespec.FromJSON(data)
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(file, ".yaml") || strings.HasSuffix(file, ".yml") {
		return themespec.FromYAML(data)
	}
	return themespec.FromJSON(data)
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
