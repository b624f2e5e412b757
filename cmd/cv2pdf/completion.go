package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	cv2pdf "github.com/alnah/go-cv2pdf"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash       Shell = "bash"
	ShellZsh        Shell = "zsh"
	ShellFish       Shell = "fish"
	ShellPowerShell Shell = "powershell"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagNumber
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string
	Short    string
	Type     flagType
	Desc     string
	Values   []string // for enum flags
	FileGlob string   // for file flags, e.g. "*.yaml,*.yml"
}

// commandDef describes a command for completion.
type commandDef struct {
	Name  string
	Desc  string
	Flags []flagDef
	Args  []string // fixed positional values
}

// completionMeta holds completion hints the FlagSet cannot express.
type completionMeta struct {
	Values   []string
	FileGlob string
	IsDir    bool
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	"lang":      {Values: cv2pdf.SupportedLanguages()},
	"backend":   {Values: []string{cv2pdf.BackendRod, cv2pdf.BackendChromedp}},
	"page-size": {Values: []string{cv2pdf.PageSizeLetter, cv2pdf.PageSizeA4, cv2pdf.PageSizeLegal}},

	"config": {FileGlob: "*.yaml,*.yml"},
	"data":   {FileGlob: "*.yaml,*.yml,*.toml"},
	"style":  {FileGlob: "*.css"},
	"photo":  {FileGlob: "*.jpg,*.jpeg,*.png"},

	"output":     {IsDir: true},
	"asset-path": {IsDir: true},
}

var shells = []string{string(ShellBash), string(ShellZsh), string(ShellFish), string(ShellPowerShell)}

// extractFlagsFromFlagSet reads flag definitions from fs and enriches them
// with flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{Long: f.Name, Short: f.Shorthand, Desc: f.Usage}

		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int", "float64":
			fd.Type = flagNumber
		default:
			fd.Type = flagString
		}

		if meta, ok := flagCompletionMeta[f.Name]; ok {
			switch {
			case len(meta.Values) > 0:
				fd.Type, fd.Values = flagEnum, meta.Values
			case meta.FileGlob != "":
				fd.Type, fd.FileGlob = flagFile, meta.FileGlob
			case meta.IsDir:
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion. Flags come from
// the FlagSets the commands parse with.
func getCommands() []commandDef {
	buildFlags := extractFlagsFromFlagSet(newFlagSet("build", &cliFlags{}))
	docFlags := extractFlagsFromFlagSet(newDoctorFlagSet(&doctorFlags{}))

	commands := []commandDef{
		{Name: "build", Desc: "Render the résumé to HTML and PDF", Flags: buildFlags},
		{Name: "validate", Desc: "Check the config and data file", Flags: buildFlags},
		{Name: "doctor", Desc: "Check the browser and project setup", Flags: docFlags},
		{Name: "version", Desc: "Show version information"},
		{Name: "help", Desc: "Show help for a command"},
		{Name: "completion", Desc: "Generate shell completion script", Args: shells},
	}
	for i := range commands {
		if commands[i].Name == "help" {
			commands[i].Args = commandNames(commands)
		}
	}
	return commands
}

func commandNames(commands []commandDef) []string {
	names := make([]string, len(commands))
	for i, c := range commands {
		names[i] = c.Name
	}
	return names
}

// GenerateCompletion writes shell completion script to w.
func GenerateCompletion(w io.Writer, shell Shell) error {
	commands := getCommands()

	var script string
	switch shell {
	case ShellBash:
		script = generateBash(commands)
	case ShellZsh:
		script = generateZsh(commands)
	case ShellFish:
		script = generateFish(commands)
	case ShellPowerShell:
		script = generatePowerShell(commands)
	default:
		return fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedShell, shell, strings.Join(shells, ", "))
	}

	_, err := io.WriteString(w, script)
	return err
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: completion takes one shell name", ErrUsage)
	}
	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cv2pdf completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w, "  powershell  PowerShell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(cv2pdf completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (after compinit):")
	fmt.Fprintln(w, "    eval \"$(cv2pdf completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    cv2pdf completion fish > ~/.config/fish/completions/cv2pdf.fish")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  PowerShell:")
	fmt.Fprintln(w, "    # Add to $PROFILE:")
	fmt.Fprintln(w, "    cv2pdf completion powershell | Out-String | Invoke-Expression")
}

// flagWords lists every spelling of the flags, long first.
func flagWords(flags []flagDef) []string {
	var words []string
	for _, f := range flags {
		words = append(words, "--"+f.Long)
	}
	for _, f := range flags {
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	return words
}

func findCommand(commands []commandDef, name string) commandDef {
	for _, c := range commands {
		if c.Name == name {
			return c
		}
	}
	return commandDef{}
}

// ---------------------------------------------------------------------------
// Bash
// ---------------------------------------------------------------------------

func generateBash(commands []commandDef) string {
	var b strings.Builder

	b.WriteString("# bash completion for cv2pdf\n\n")
	b.WriteString("_cv2pdf_completions() {\n")
	b.WriteString("    local cur prev cmd opts\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	b.WriteString("    cmd=\"\"\n")
	b.WriteString("    if [[ ${COMP_CWORD} -gt 1 ]]; then\n")
	b.WriteString("        cmd=\"${COMP_WORDS[1]}\"\n")
	b.WriteString("    fi\n\n")

	// Flag values, shared by every command that declares the flag.
	b.WriteString("    case \"${prev}\" in\n")
	seen := map[string]bool{}
	for _, c := range commands {
		for _, f := range c.Flags {
			if seen[f.Long] || f.Type == flagBool {
				continue
			}
			seen[f.Long] = true
			fmt.Fprintf(&b, "        %s)\n", strings.Join(flagWords([]flagDef{f}), "|"))
			switch f.Type {
			case flagEnum:
				fmt.Fprintf(&b, "            COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n", strings.Join(f.Values, " "))
			case flagFile:
				b.WriteString("            COMPREPLY=( $(compgen -f -- \"${cur}\") )\n")
			case flagDir:
				b.WriteString("            COMPREPLY=( $(compgen -d -- \"${cur}\") )\n")
			default:
				b.WriteString("            COMPREPLY=()\n")
			}
			b.WriteString("            return 0\n            ;;\n")
		}
	}
	b.WriteString("    esac\n\n")

	b.WriteString("    case \"${cmd}\" in\n")
	for _, c := range commands {
		words := append(flagWords(c.Flags), c.Args...)
		fmt.Fprintf(&b, "        %s)\n            opts=\"%s\"\n            ;;\n", c.Name, strings.Join(words, " "))
	}
	// Without a command name, build flags apply.
	build := findCommand(commands, "build")
	top := append(commandNames(commands), flagWords(build.Flags)...)
	fmt.Fprintf(&b, "        *)\n            opts=\"%s\"\n            ;;\n", strings.Join(top, " "))
	b.WriteString("    esac\n\n")

	b.WriteString("    COMPREPLY=( $(compgen -W \"${opts}\" -- \"${cur}\") )\n")
	b.WriteString("    return 0\n")
	b.WriteString("}\n\n")
	b.WriteString("complete -F _cv2pdf_completions cv2pdf\n")

	return b.String()
}

// ---------------------------------------------------------------------------
// Zsh
// ---------------------------------------------------------------------------

func generateZsh(commands []commandDef) string {
	var b strings.Builder

	b.WriteString("#compdef cv2pdf\n\n")
	b.WriteString("_cv2pdf() {\n")
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, c := range commands {
		fmt.Fprintf(&b, "        '%s:%s'\n", c.Name, zshEscape(c.Desc))
	}
	b.WriteString("    )\n\n")

	b.WriteString("    if (( CURRENT == 2 )) && [[ ${words[2]} != -* ]]; then\n")
	b.WriteString("        _describe 'command' commands\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")

	b.WriteString("    case ${words[2]} in\n")
	for _, c := range commands {
		fmt.Fprintf(&b, "        %s)\n", c.Name)
		writeZshArguments(&b, c)
		b.WriteString("            ;;\n")
	}
	b.WriteString("        *)\n")
	writeZshArguments(&b, findCommand(commands, "build"))
	b.WriteString("            ;;\n")
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("compdef _cv2pdf cv2pdf\n")

	return b.String()
}

func writeZshArguments(b *strings.Builder, c commandDef) {
	b.WriteString("            _arguments -s \\\n")
	for _, f := range c.Flags {
		fmt.Fprintf(b, "                %s \\\n", zshFlagSpec(f))
	}
	if len(c.Args) > 0 {
		fmt.Fprintf(b, "                '*:argument:(%s)'\n", strings.Join(c.Args, " "))
	} else {
		b.WriteString("                '*::'\n")
	}
}

func zshFlagSpec(f flagDef) string {
	action := ""
	switch f.Type {
	case flagBool:
	case flagEnum:
		action = ":" + f.Long + ":(" + strings.Join(f.Values, " ") + ")"
	case flagFile:
		action = ":file:_files -g \"" + zshGlob(f.FileGlob) + "\""
	case flagDir:
		action = ":directory:_files -/"
	default:
		action = ":" + f.Long + ":"
	}

	desc := "[" + zshEscape(f.Desc) + "]"
	if f.Short == "" {
		return "'--" + f.Long + desc + action + "'"
	}
	return fmt.Sprintf("'(-%s --%s)'{-%s,--%s}'%s%s'", f.Short, f.Long, f.Short, f.Long, desc, action)
}

// zshGlob turns "*.yaml,*.yml" into "*.(yaml|yml)".
func zshGlob(glob string) string {
	parts := strings.Split(glob, ",")
	if len(parts) == 1 {
		return glob
	}
	exts := make([]string, len(parts))
	for i, p := range parts {
		exts[i] = strings.TrimPrefix(p, "*.")
	}
	return "*.(" + strings.Join(exts, "|") + ")"
}

func zshEscape(s string) string {
	r := strings.NewReplacer("'", "'\\''", "[", "\\[", "]", "\\]", ":", "\\:")
	return r.Replace(s)
}

// ---------------------------------------------------------------------------
// Fish
// ---------------------------------------------------------------------------

func generateFish(commands []commandDef) string {
	var b strings.Builder

	b.WriteString("# fish completion for cv2pdf\n\n")
	b.WriteString("function __fish_cv2pdf_needs_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -eq 1\n")
	b.WriteString("end\n\n")
	b.WriteString("function __fish_cv2pdf_using_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -gt 1; and test $cmd[2] = $argv[1]\n")
	b.WriteString("end\n\n")
	b.WriteString("complete -c cv2pdf -f\n\n")

	for _, c := range commands {
		fmt.Fprintf(&b, "complete -c cv2pdf -n __fish_cv2pdf_needs_command -a %s -d '%s'\n", c.Name, fishEscape(c.Desc))
	}
	b.WriteString("\n")

	for _, c := range commands {
		cond := fmt.Sprintf("'__fish_cv2pdf_using_command %s'", c.Name)
		for _, f := range c.Flags {
			b.WriteString(fishFlagLine(cond, f))
		}
		if len(c.Args) > 0 {
			fmt.Fprintf(&b, "complete -c cv2pdf -n %s -a '%s'\n", cond, strings.Join(c.Args, " "))
		}
	}

	// Build flags also apply before any command name.
	for _, f := range findCommand(commands, "build").Flags {
		b.WriteString(fishFlagLine("__fish_cv2pdf_needs_command", f))
	}

	return b.String()
}

func fishFlagLine(cond string, f flagDef) string {
	var b strings.Builder
	fmt.Fprintf(&b, "complete -c cv2pdf -n %s", cond)
	if f.Short != "" {
		fmt.Fprintf(&b, " -s %s", f.Short)
	}
	fmt.Fprintf(&b, " -l %s", f.Long)
	switch f.Type {
	case flagBool:
	case flagEnum:
		fmt.Fprintf(&b, " -x -a '%s'", strings.Join(f.Values, " "))
	case flagFile:
		b.WriteString(" -r -F")
	case flagDir:
		b.WriteString(" -x -a '(__fish_complete_directories)'")
	default:
		b.WriteString(" -x")
	}
	fmt.Fprintf(&b, " -d '%s'\n", fishEscape(f.Desc))
	return b.String()
}

func fishEscape(s string) string {
	return strings.ReplaceAll(s, "'", "\\'")
}

// ---------------------------------------------------------------------------
// PowerShell
// ---------------------------------------------------------------------------

func generatePowerShell(commands []commandDef) string {
	var b strings.Builder

	b.WriteString("# PowerShell completion for cv2pdf\n\n")
	b.WriteString("Register-ArgumentCompleter -Native -CommandName cv2pdf -ScriptBlock {\n")
	b.WriteString("    param($wordToComplete, $commandAst, $cursorPosition)\n\n")
	b.WriteString("    $elements = @($commandAst.CommandElements | ForEach-Object { $_.ToString() })\n")
	b.WriteString("    $command = ''\n")
	b.WriteString("    if ($elements.Count -gt 1 -and $elements[1] -ne $wordToComplete -and $elements[1] -notlike '-*') {\n")
	b.WriteString("        $command = $elements[1]\n")
	b.WriteString("    }\n\n")
	b.WriteString("    $candidates = switch ($command) {\n")
	for _, c := range commands {
		words := append(flagWords(c.Flags), c.Args...)
		fmt.Fprintf(&b, "        '%s' { @(%s) }\n", c.Name, psList(words))
	}
	build := findCommand(commands, "build")
	fmt.Fprintf(&b, "        default { @(%s) }\n", psList(append(commandNames(commands), flagWords(build.Flags)...)))
	b.WriteString("    }\n\n")
	b.WriteString("    $candidates | Where-Object { $_ -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("        [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)\n")
	b.WriteString("    }\n")
	b.WriteString("}\n")

	return b.String()
}

func psList(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = "'" + w + "'"
	}
	return strings.Join(quoted, ", ")
}
