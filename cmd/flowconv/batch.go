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
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/spf13/cobra"
	"github.com/vine-io/flow-editor/converter"
	log "github.com/vine-io/vine/lib/logger"
	"go.uber.org/atomic"
)

func newBatchCmd(a *app) *cobra.Command {
	var (
		outDir  string
		workers int
	)

	cmd := &cobra.Command{
		Use:   "batch <file or directory>...",
		Short: "Convert many editor documents to BPMN XML in parallel",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := collectDocuments(args)
			if err != nil {
				return err
			}
			if workers <= 0 {
				workers = a.cfg.Workers
			}

			report, err := runBatch(a.conv, docs, outDir, workers)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), report)
			if report.Failed > 0 {
				return fmt.Errorf("%d documents failed", report.Failed)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "directory of the converted files")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "number of parallel conversions, from the config when zero")
	return cmd
}

// BatchReport sums up a batch run.
type BatchReport struct {
	Converted int64
	Failed    int64
	Warnings  int64
}

func (r BatchReport) String() string {
	return fmt.Sprintf("converted %d, failed %d, warnings %d", r.Converted, r.Failed, r.Warnings)
}

// document is an editor document of a batch and the file its process
// definition is written to, relative to the output directory.
type document struct {
	path   string
	output string
}

// collectDocuments expands directories into the json files below them. The
// output of a file below a directory keeps its path relative to that
// directory.
func collectDocuments(paths []string) ([]document, error) {
	var docs []document
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			docs = append(docs, document{path: path, output: xmlName(filepath.Base(path))})
			continue
		}
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !strings.EqualFold(filepath.Ext(p), ".json") {
				return nil
			}
			rel, err := filepath.Rel(path, p)
			if err != nil {
				return err
			}
			docs = append(docs, document{path: p, output: xmlName(rel)})
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].path < docs[j].path })
	return docs, nil
}

// runBatch converts docs on a pool of workers and writes the process
// definitions into outDir. Documents whose output another document already
// claimed fail.
func runBatch(conv *converter.Converter, docs []document, outDir string, workers int) (BatchReport, error) {
	pool, err := ants.NewPool(workers)
	if err != nil {
		return BatchReport{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	if err = os.MkdirAll(outDir, 0o755); err != nil {
		return BatchReport{}, err
	}

	converted := atomic.NewInt64(0)
	failed := atomic.NewInt64(0)
	warnings := atomic.NewInt64(0)

	claimed := map[string]string{}
	wg := sync.WaitGroup{}
	for _, doc := range docs {
		doc := doc
		if other, ok := claimed[doc.output]; ok {
			log.Errorf("convert %s: %s is already written by %s", doc.path, doc.output, other)
			failed.Inc()
			continue
		}
		claimed[doc.output] = doc.path

		wg.Add(1)
		err = pool.Submit(func() {
			defer wg.Done()

			n, err := convertOne(conv, doc, outDir)
			warnings.Add(int64(n))
			if err != nil {
				log.Errorf("convert %s: %v", doc.path, err)
				failed.Inc()
				return
			}
			converted.Inc()
		})
		if err != nil {
			wg.Done()
			log.Errorf("submit %s: %v", doc.path, err)
			failed.Inc()
		}
	}
	wg.Wait()

	report := BatchReport{Converted: converted.Load(), Failed: failed.Load(), Warnings: warnings.Load()}
	log.Infof("batch of %d documents: %s", len(docs), report)
	return report, nil
}

// convertOne returns the number of warnings raised by the document.
func convertOne(conv *converter.Converter, doc document, outDir string) (int, error) {
	model, result, err := convertFile(conv, doc.path)
	if err != nil {
		return 0, err
	}
	warnings := result.Count(converter.LevelWarn)
	if result.Failed() {
		return warnings, fmt.Errorf("%d elements could not be converted", result.Count(converter.LevelError))
	}
	data, err := model.WriteToBytes()
	if err != nil {
		return warnings, err
	}
	return warnings, writeOutput(nil, filepath.Join(outDir, doc.output), data)
}
