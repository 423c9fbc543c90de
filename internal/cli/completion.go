package cli

import (
	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for botion.

To load completions:

Bash:
  $ source <(botion completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ botion completion bash > /etc/bash_completion.d/botion
  # macOS:
  $ botion completion bash > $(brew --prefix)/etc/bash_completion.d/botion

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ botion completion zsh > "${fpath[1]}/_botion"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ botion completion fish | source

  # To load completions for each session, execute once:
  $ botion completion fish > ~/.config/fish/completions/botion.fish

PowerShell:
  PS> botion completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> botion completion powershell > botion.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(stdout, true)
			case "zsh":
				return root.GenZshCompletion(stdout)
			case "fish":
				return root.GenFishCompletion(stdout, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(stdout)
			}
			return nil
		},
	}

	return cmd
}
