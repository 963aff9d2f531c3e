// Copyright 2023 Lack (xingyys@gmail.com).
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vine-io/flow-editor/bpmn"
	"github.com/vine-io/flow-editor/codec"
	"github.com/vine-io/flow-editor/converter"
	log "github.com/vine-io/vine/lib/logger"
)

type app struct {
	configPath string
	verbose    bool
	cfg        *Config
	conv       *converter.Converter
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "flowconv",
		Short:        "Convert editor documents to BPMN 2.0 process definitions",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", defaultConfigPath, "path of the configuration file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "report informational diagnostics too")

	root.AddCommand(newNewCmd(a))
	root.AddCommand(newToXMLCmd(a))
	root.AddCommand(newRoundTripCmd(a))
	root.AddCommand(newValidateCmd(a))
	root.AddCommand(newBatchCmd(a))
	return root
}

func (a *app) setup() error {
	cfg, err := LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	conv, err := cfg.NewConverter()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.conv = conv
	return nil
}

func newNewCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "new <process name>",
		Short: "Write an editor document with a start event linked to an end event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := bpmn.NewBuilder(args[0]).Start().End().Out()
			if err != nil {
				return err
			}
			model.TargetNamespace = a.cfg.TargetNamespace

			doc, result := a.conv.ToJSON(model)
			a.report(cmd.ErrOrStderr(), args[0], result)
			data, err := codec.MarshalIndent(doc, a.cfg.Indent)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), output, data)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, stdout when empty")
	return cmd
}

func newToXMLCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "to-xml <document.json>",
		Short: "Convert an editor document to BPMN XML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := a.load(cmd.ErrOrStderr(), args[0])
			if err != nil {
				return err
			}
			data, err := model.WriteToBytes()
			if err != nil {
				return fmt.Errorf("write %s: %w", args[0], err)
			}
			return writeOutput(cmd.OutOrStdout(), output, data)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, stdout when empty")
	return cmd
}

func newRoundTripCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "roundtrip <document.json>",
		Short: "Convert an editor document to the process graph and back",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := a.load(cmd.ErrOrStderr(), args[0])
			if err != nil {
				return err
			}
			doc, result := a.conv.ToJSON(model)
			a.report(cmd.ErrOrStderr(), args[0], result)
			data, err := codec.MarshalIndent(doc, a.cfg.Indent)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), output, data)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, stdout when empty")
	return cmd
}

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <document.json>...",
		Short: "Check that editor documents convert to valid process graphs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			invalid := 0
			for _, path := range args {
				model, err := a.load(cmd.ErrOrStderr(), path)
				if err == nil {
					err = model.Validate()
				}
				if err != nil {
					invalid++
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
			}
			if invalid > 0 {
				return fmt.Errorf("%d of %d documents are invalid", invalid, len(args))
			}
			return nil
		},
	}
}

// load converts the document at path. Element errors fail the document.
func (a *app) load(w io.Writer, path string) (*bpmn.Model, error) {
	model, result, err := convertFile(a.conv, path)
	if err != nil {
		return nil, err
	}
	a.report(w, path, result)
	if result.Failed() {
		return nil, fmt.Errorf("%s: %d elements could not be converted", path, result.Count(converter.LevelError))
	}
	return model, nil
}

func (a *app) report(w io.Writer, path string, result converter.Result) {
	for _, item := range result.Diagnostics {
		if item.Level == converter.LevelInfo && !a.verbose {
			continue
		}
		fmt.Fprintf(w, "%s: %s\n", path, item)
	}
}

func convertFile(conv *converter.Converter, path string) (*bpmn.Model, converter.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, converter.Result{}, err
	}
	doc, err := codec.Parse(data)
	if err != nil {
		return nil, converter.Result{}, fmt.Errorf("%s: %w", path, err)
	}
	model, result := conv.ToDomain(doc)
	log.Debugf("converted %s with %d diagnostics", path, len(result.Diagnostics))
	return model, result, nil
}

func writeOutput(stdout io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// xmlName replaces the extension of a document path with the one of
// process definitions.
func xmlName(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".bpmn20.xml"
}
