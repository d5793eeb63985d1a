package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/arthur-debert/cigen/internal/cli"
	"github.com/arthur-debert/cigen/pkg/errors"
	"github.com/spf13/cobra"
)

var shells = []string{"bash", "zsh", "fish", "powershell"}

// completionFiles names each script the way its shell looks it up
var completionFiles = map[string]string{
	"bash":       "cigen.bash",
	"zsh":        "_cigen",
	"fish":       "cigen.fish",
	"powershell": "cigen.ps1",
}

func main() {
	if err := newCommand(cli.NewRootCmd()).Execute(); err != nil {
		cli.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

func newCommand(root *cobra.Command) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "cigen-completions <shell>...",
		Short: "Generate cigen completion scripts",
		Long: `Generate completion scripts for the cigen commands (args, pipeline,
config, version) and their flags.

With a single shell the script is printed to stdout. With --dir every
requested script is written to the directory under the file name its
shell expects (cigen.bash, _cigen, cigen.fish, cigen.ps1).`,
		Example: `  cigen-completions zsh > "${fpath[1]}/_cigen"
  cigen-completions --dir dist/completions bash zsh fish powershell`,
		ValidArgs:     shells,
		Args:          cobra.MatchAll(cobra.MinimumNArgs(1), cobra.OnlyValidArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir == "" {
				if len(args) > 1 {
					return errors.New(errors.ErrInvalidInput, "more than one shell needs --dir")
				}
				return generate(root, args[0], cmd.OutOrStdout())
			}

			if err := os.MkdirAll(dir, 0755); err != nil {
				return errors.Wrapf(err, errors.ErrFileWrite, "cannot create %s", dir).
					WithDetail("path", dir)
			}
			for _, shell := range args {
				var buf bytes.Buffer
				if err := generate(root, shell, &buf); err != nil {
					return err
				}
				path := filepath.Join(dir, completionFiles[shell])
				if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
					return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path).
						WithDetail("path", path)
				}
				cli.PrintNotice(cmd.ErrOrStderr(), fmt.Sprintf("Wrote %s", path))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Write scripts into this directory instead of stdout")
	return cmd
}

func generate(root *cobra.Command, shell string, w io.Writer) error {
	var err error
	switch shell {
	case "bash":
		err = root.GenBashCompletionV2(w, true)
	case "zsh":
		err = root.GenZshCompletion(w)
	case "fish":
		err = root.GenFishCompletion(w, true)
	case "powershell":
		err = root.GenPowerShellCompletionWithDesc(w)
	default:
		return errors.Newf(errors.ErrInvalidInput, "unsupported shell %q", shell).
			WithDetail("supported", shells)
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrInternal, "failed to generate %s completion", shell)
	}
	return nil
}
