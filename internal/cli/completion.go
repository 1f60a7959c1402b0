package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// completionCommand creates the shell completion generator.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a completion script for your shell.

Load it for the current session or install it permanently:

  bash:
    source <(lighttable completion bash)
    # to install: lighttable completion bash > /etc/bash_completion.d/lighttable

  zsh:
    lighttable completion zsh > "${fpath[1]}/_lighttable"

  fish:
    lighttable completion fish | source
    # to install: lighttable completion fish > ~/.config/fish/completions/lighttable.fish

  powershell:
    lighttable completion powershell | Out-String | Invoke-Expression`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
}
