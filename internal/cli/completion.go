package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/agbru/curriculum/internal/config"
)

// FlagCompletion describes a flag for completion script generation. Every
// generator reads flagRegistry, so a new flag only needs an entry there.
type FlagCompletion struct {
	Long      string   // long name without "--"
	Short     string   // short name without "-"
	Help      string   // description text
	Values    []string // static suggestions; nil for booleans
	ValueName string   // value label in zsh
	IsPath    bool     // completes file or directory names
	IsLesson  bool     // completes lesson names
}

var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message"},
	{Long: "version", Short: "V", Help: "Show version information"},
	{Long: "lesson", Short: "l", Help: "Lesson to run", IsLesson: true, ValueName: "lesson"},
	{Long: "list", Help: "List available lessons"},
	{Long: "seed", Help: "Seed of the random generator", ValueName: "number"},
	{Long: "sample-dir", Help: "Directory for the file lesson samples", IsPath: true, ValueName: "directory"},
	{Long: "jobs", Short: "j", Help: "Lessons run concurrently", Values: []string{"1", "2", "4", "8"}, ValueName: "jobs"},
	{Long: "timeout", Help: "Maximum duration of a run", Values: []string{"30s", "1m", "5m", "10m"}, ValueName: "duration"},
	{Long: "quiet", Short: "q", Help: "Suppress the run summary"},
	{Long: "verbose", Short: "v", Help: "Enable debug logging"},
	{Long: "no-color", Help: "Disable colored output"},
	{Long: "interactive", Short: "i", Help: "Start the interactive prompt"},
	{Long: "tui", Help: "Browse lessons in a terminal UI"},
	{Long: "metrics-file", Help: "Write run metrics to a file", IsPath: true, ValueName: "file"},
	{Long: "completion", Help: "Generate completion script", Values: config.SupportedShells, ValueName: "shell"},
}

// GenerateCompletion writes a completion script for shell, offering lessons
// as values of --lesson.
//
// Parameters:
//   - out: Destination of the script.
//   - shell: One of config.SupportedShells ("ps" is accepted for powershell).
//   - lessons: Registry names, in curriculum order.
//
// Returns:
//   - error: An error if the shell is not supported or out fails.
func GenerateCompletion(out io.Writer, shell string, lessons []string) error {
	var script string
	switch shell {
	case "bash":
		script = bashCompletion(lessons)
	case "zsh":
		script = zshCompletion(lessons)
	case "fish":
		script = fishCompletion(lessons)
	case "powershell", "ps":
		script = powerShellCompletion(lessons)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: %s)", shell, strings.Join(config.SupportedShells, ", "))
	}
	if _, err := io.WriteString(out, script); err != nil {
		return fmt.Errorf("completion %s generation failed: %w", shell, err)
	}
	return nil
}

// flagNames returns "--long" and "-s" forms of f, in that order.
func flagNames(f FlagCompletion) []string {
	var names []string
	if f.Long != "" {
		names = append(names, "--"+f.Long)
	}
	if f.Short != "" {
		names = append(names, "-"+f.Short)
	}
	return names
}

func bashCompletion(lessons []string) string {
	var opts []string
	var cases strings.Builder
	for _, f := range flagRegistry {
		opts = append(opts, flagNames(f)...)
		var body string
		switch {
		case f.IsLesson:
			body = `COMPREPLY=( $(compgen -W "${lessons}" -- "${cur}") )`
		case f.IsPath:
			body = `COMPREPLY=( $(compgen -f -- "${cur}") )`
		case len(f.Values) > 0:
			body = fmt.Sprintf(`COMPREPLY=( $(compgen -W "%s" -- "${cur}") )`, strings.Join(f.Values, " "))
		default:
			continue
		}
		fmt.Fprintf(&cases, "        %s)\n            %s\n            return 0\n            ;;\n", strings.Join(flagNames(f), "|"), body)
	}

	return fmt.Sprintf(`# Bash completion script for curriculum
# Add this to your ~/.bashrc or ~/.bash_completion

_curriculum_completions() {
    local cur prev opts lessons
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    opts="%s"
    lessons="%s all"

    case "${prev}" in
%s    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
}

complete -F _curriculum_completions curriculum
`, strings.Join(opts, " "), strings.Join(lessons, " "), cases.String())
}

func zshCompletion(lessons []string) string {
	args := make([]string, 0, len(flagRegistry))
	for _, f := range flagRegistry {
		args = append(args, zshArgEntry(f))
	}
	return fmt.Sprintf(`#compdef curriculum

# Zsh completion script for curriculum
# Place this file in your $fpath as _curriculum

_curriculum() {
    local -a lessons
    lessons=(%s all)

    _arguments -s \
%s
}

_curriculum "$@"
`, strings.Join(lessons, " "), strings.Join(args, " \\\n"))
}

func zshArgEntry(f FlagCompletion) string {
	value := ""
	switch {
	case f.IsPath:
		value = fmt.Sprintf(":%s:_files", f.ValueName)
	case f.IsLesson:
		value = fmt.Sprintf(":%s:($lessons)", f.ValueName)
	case len(f.Values) > 0:
		value = fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(f.Values, " "))
	case f.ValueName != "":
		value = fmt.Sprintf(":%s:", f.ValueName)
	}
	if f.Short != "" {
		return fmt.Sprintf("        '(-%s --%s)'{-%s,--%s}'[%s]%s'", f.Short, f.Long, f.Short, f.Long, f.Help, value)
	}
	return fmt.Sprintf("        '--%s[%s]%s'", f.Long, f.Help, value)
}

func fishCompletion(lessons []string) string {
	lines := []string{
		"# Fish completion script for curriculum",
		"# Add this to ~/.config/fish/completions/curriculum.fish",
		"",
		"complete -c curriculum -f",
	}
	for _, f := range flagRegistry {
		parts := []string{"complete -c curriculum"}
		if f.Short != "" {
			parts = append(parts, "-s "+f.Short)
		}
		parts = append(parts, "-l "+f.Long, fmt.Sprintf("-d '%s'", f.Help))
		switch {
		case f.IsPath:
			parts = append(parts, "-rF")
		case f.IsLesson:
			parts = append(parts, fmt.Sprintf("-xa '%s all'", strings.Join(lessons, " ")))
		case len(f.Values) > 0:
			parts = append(parts, fmt.Sprintf("-xa '%s'", strings.Join(f.Values, " ")))
		case f.ValueName != "":
			parts = append(parts, "-x")
		}
		lines = append(lines, strings.Join(parts, " "))
	}
	return strings.Join(lines, "\n") + "\n"
}

func powerShellCompletion(lessons []string) string {
	quote := func(vals []string) string {
		q := make([]string, len(vals))
		for i, v := range vals {
			q[i] = "'" + v + "'"
		}
		return strings.Join(q, ", ")
	}

	var options, switches []string
	for _, f := range flagRegistry {
		for _, name := range flagNames(f) {
			options = append(options, fmt.Sprintf("        @{Name = '%s'; Description = '%s' }", name, f.Help))
		}
		var values string
		switch {
		case f.IsLesson:
			values = "$curriculumLessons"
		case len(f.Values) > 0:
			values = "@(" + quote(f.Values) + ")"
		default:
			continue
		}
		switches = append(switches, fmt.Sprintf(`        { $_ -in @(%s) } {
            %s | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
            }
            return
        }`, quote(flagNames(f)), values))
	}

	return fmt.Sprintf(`# PowerShell completion script for curriculum
# Add this to your $PROFILE

$curriculumLessons = @(%s, 'all')

Register-ArgumentCompleter -CommandName 'curriculum' -Native -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $options = @(
%s
    )

    $elements = $commandAst.CommandElements
    $prevElement = if ($elements.Count -gt 2) { $elements[-2].ToString() } else { '' }

    switch ($prevElement) {
%s
    }

    $options | Where-Object { $_.Name -like "$wordToComplete*" } | ForEach-Object {
        [System.Management.Automation.CompletionResult]::new($_.Name, $_.Name, 'ParameterName', $_.Description)
    }
}
`, quote(lessons), strings.Join(options, "\n"), strings.Join(switches, "\n"))
}
