package main

import (
	"flag"
	"fmt"
	"os"
)

func completionCmd() {
	fs := flag.NewFlagSet("completion", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: dockfold completion <bash|zsh|fish>\n\n")
		fmt.Fprintf(os.Stderr, "Generate shell completion scripts.\n\n")
		fmt.Fprintf(os.Stderr, "Examples:\n")
		fmt.Fprintf(os.Stderr, "  # Bash\n")
		fmt.Fprintf(os.Stderr, "  dockfold completion bash > /usr/local/etc/bash_completion.d/dockfold\n")
		fmt.Fprintf(os.Stderr, "  # Zsh\n")
		fmt.Fprintf(os.Stderr, "  dockfold completion zsh > \"${fpath[1]}/_dockfold\"\n")
		fmt.Fprintf(os.Stderr, "  # Fish\n")
		fmt.Fprintf(os.Stderr, "  dockfold completion fish > ~/.config/fish/completions/dockfold.fish\n")
	}

	if err := fs.Parse(os.Args[2:]); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: shell name is required (bash, zsh, or fish)\n\n")
		fs.Usage()
		os.Exit(1)
	}

	shell := fs.Arg(0)
	switch shell {
	case "bash":
		fmt.Print(generateBashCompletion())
	case "zsh":
		fmt.Print(generateZshCompletion())
	case "fish":
		fmt.Print(generateFishCompletion())
	default:
		fmt.Fprintf(os.Stderr, "Error: unsupported shell %q (use bash, zsh, or fish)\n", shell)
		os.Exit(1)
	}
}

func generateBashCompletion() string {
	return `# bash completion for dockfold                           -*- shell-script -*-

_dockfold() {
    local cur prev words cword
    _init_completion || return

    local commands="state icons completion version help"

    # Flags per subcommand
    local tui_flags="--store --store-path --theme --log --version"
    local state_flags="--store --store-path --json --prefix"
    local icons_flags="--dir --size --color"

    local state_actions="show reset"
    local icons_actions="list preview export"
    local stores="memory sqlite file"
    local themes="catppuccin-mocha nord tokyo-night"
    local shells="bash zsh fish"

    # Complete flag values
    case "${prev}" in
        --store)
            COMPREPLY=($(compgen -W "${stores}" -- "${cur}"))
            return
            ;;
        --theme)
            COMPREPLY=($(compgen -W "${themes}" -- "${cur}"))
            return
            ;;
        --store-path|--log)
            _filedir
            return
            ;;
        --dir)
            _filedir -d
            return
            ;;
        --size|--color|--prefix)
            # These take user-provided values, no completion
            return
            ;;
    esac

    if [[ ${cword} -eq 1 ]]; then
        if [[ "${cur}" == -* ]]; then
            COMPREPLY=($(compgen -W "${tui_flags}" -- "${cur}"))
        else
            COMPREPLY=($(compgen -W "${commands}" -- "${cur}"))
        fi
        return
    fi

    local command="${words[1]}"

    # Complete actions and flags for each subcommand
    case "${command}" in
        state)
            if [[ "${cur}" == -* ]]; then
                COMPREPLY=($(compgen -W "${state_flags}" -- "${cur}"))
            elif [[ ${cword} -eq 2 ]]; then
                COMPREPLY=($(compgen -W "${state_actions}" -- "${cur}"))
            fi
            ;;
        icons)
            if [[ "${cur}" == -* ]]; then
                COMPREPLY=($(compgen -W "${icons_flags}" -- "${cur}"))
            elif [[ ${cword} -eq 2 ]]; then
                COMPREPLY=($(compgen -W "${icons_actions}" -- "${cur}"))
            fi
            ;;
        completion)
            COMPREPLY=($(compgen -W "${shells}" -- "${cur}"))
            ;;
        -*)
            COMPREPLY=($(compgen -W "${tui_flags}" -- "${cur}"))
            ;;
    esac
}

complete -F _dockfold dockfold
`
}

func generateZshCompletion() string {
	return `#compdef dockfold

# zsh completion for dockfold

_dockfold() {
    local -a commands
    commands=(
        'state:Show or reset the persisted panel layout'
        'icons:List, preview or export the vector icon set'
        'completion:Generate shell completion scripts'
        'version:Print version information'
        'help:Show help message'
    )

    _arguments -C \
        '--store[State store]:store:(memory sqlite file)' \
        '--store-path[Where the store keeps its data]:path:_files' \
        '--theme[Color theme]:theme:(catppuccin-mocha nord tokyo-night)' \
        '--log[Write a debug log to path]:log file:_files' \
        '--version[Print version and exit]' \
        '1:command:->command' \
        '*::arg:->args'

    case $state in
        command)
            _describe -t commands 'dockfold commands' commands
            ;;
        args)
            case $words[1] in
                state)
                    _arguments \
                        '1:action:(show reset)' \
                        '--store[State store]:store:(memory sqlite file)' \
                        '--store-path[Where the store keeps its data]:path:_files' \
                        '--json[Print stored values as JSON]' \
                        '--prefix[Only keys starting with prefix]:prefix:'
                    ;;
                icons)
                    _arguments \
                        '1:action:(list preview export)' \
                        '--dir[Output directory]:directory:_files -/' \
                        '--size[Icon size]:size:' \
                        '--color[Icon color as #rrggbb]:color:'
                    ;;
                completion)
                    _arguments \
                        '1:shell:(bash zsh fish)'
                    ;;
            esac
            ;;
    esac
}

_dockfold "$@"
`
}

func generateFishCompletion() string {
	return `# fish completion for dockfold

# Disable file completions by default
complete -c dockfold -f

# Subcommands
complete -c dockfold -n '__fish_use_subcommand' -a state -d 'Show or reset the persisted panel layout'
complete -c dockfold -n '__fish_use_subcommand' -a icons -d 'List, preview or export the vector icon set'
complete -c dockfold -n '__fish_use_subcommand' -a completion -d 'Generate shell completion scripts'
complete -c dockfold -n '__fish_use_subcommand' -a version -d 'Print version information'
complete -c dockfold -n '__fish_use_subcommand' -a help -d 'Show help message'

# TUI flags
complete -c dockfold -n '__fish_use_subcommand' -l store -d 'State store' -ra 'memory sqlite file'
complete -c dockfold -n '__fish_use_subcommand' -l store-path -d 'Where the store keeps its data' -rF
complete -c dockfold -n '__fish_use_subcommand' -l theme -d 'Color theme' -ra 'catppuccin-mocha nord tokyo-night'
complete -c dockfold -n '__fish_use_subcommand' -l log -d 'Write a debug log to path' -rF
complete -c dockfold -n '__fish_use_subcommand' -l version -d 'Print version and exit'

# state actions and flags
complete -c dockfold -n '__fish_seen_subcommand_from state; and not __fish_seen_subcommand_from show reset' -a 'show reset'
complete -c dockfold -n '__fish_seen_subcommand_from state' -l store -d 'State store' -ra 'memory sqlite file'
complete -c dockfold -n '__fish_seen_subcommand_from state' -l store-path -d 'Where the store keeps its data' -rF
complete -c dockfold -n '__fish_seen_subcommand_from state' -l json -d 'Print stored values as JSON'
complete -c dockfold -n '__fish_seen_subcommand_from state' -l prefix -d 'Only keys starting with prefix' -r

# icons actions and flags
complete -c dockfold -n '__fish_seen_subcommand_from icons; and not __fish_seen_subcommand_from list preview export' -a 'list preview export'
complete -c dockfold -n '__fish_seen_subcommand_from icons' -l dir -d 'Output directory' -ra '(__fish_complete_directories)'
complete -c dockfold -n '__fish_seen_subcommand_from icons' -l size -d 'Icon size' -r
complete -c dockfold -n '__fish_seen_subcommand_from icons' -l color -d 'Icon color as #rrggbb' -r

# completion - shell names
complete -c dockfold -n '__fish_seen_subcommand_from completion' -a 'bash zsh fish' -d 'Shell type'
`
}
