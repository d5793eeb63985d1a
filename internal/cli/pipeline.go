package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/arthur-debert/cigen/internal/commands"
	"github.com/arthur-debert/cigen/pkg/errors"
	"github.com/arthur-debert/cigen/pkg/logging"
	"github.com/arthur-debert/cigen/pkg/textwriter"
	"github.com/arthur-debert/cigen/pkg/yamlgen"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newPipelineCmd(opts *globalOptions) *cobra.Command {
	var (
		file    string
		output  string
		headers []string
	)

	cmd := &cobra.Command{
		Use:     "pipeline -f <doc.yaml>",
		Short:   commands.MsgPipelineShort,
		Long:    commands.MsgPipelineLong,
		Example: commands.MsgPipelineExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cli.pipeline")
			defer logging.LogOperationStart(logger, "pipeline")()

			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			doc, err := readDocument(file)
			if err != nil {
				return err
			}

			// Rendered in memory first so a failure never leaves a partial file
			var buf bytes.Buffer
			w := textwriter.New(&buf, cfg.WriterOptions()...)
			if err := yamlgen.Emit(w, doc, yamlgen.Options{Header: headers}); err != nil {
				return errors.Wrapf(err, errors.GetErrorCode(err), "cannot emit %s", file).
					WithDetail("path", file)
			}

			logger.Info().
				Str("file", file).
				Int("indentFactor", w.Factor()).
				Int("bytes", buf.Len()).
				Msg("Document emitted")

			if output == "" {
				_, err = cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			if err := os.WriteFile(output, buf.Bytes(), 0644); err != nil {
				return errors.Wrapf(err, errors.ErrFileWrite, commands.MsgErrWriteOutput, output).
					WithDetail("path", output)
			}
			PrintNotice(cmd.ErrOrStderr(), fmt.Sprintf(commands.MsgWroteFile, output))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", commands.MsgFlagDocFile)
	cmd.Flags().StringVarP(&output, "output", "o", "", commands.MsgFlagOutput)
	cmd.Flags().StringArrayVar(&headers, "header", nil, commands.MsgFlagHeader)
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func readDocument(path string) (*yaml.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileNotFound, commands.MsgErrReadDoc, path).
			WithDetail("path", path)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, errors.ErrSpecParse, commands.MsgErrParseDoc, path).
			WithDetail("path", path)
	}
	if doc.Kind == 0 || (doc.Kind == yaml.DocumentNode && len(doc.Content) == 0) {
		return nil, errors.Newf(errors.ErrInvalidInput, commands.MsgErrEmptyDoc, path).
			WithDetail("path", path)
	}
	return &doc, nil
}
