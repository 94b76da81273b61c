// Copyright 2025 Tom Barlow
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

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/tombee/ndc-client-go/internal/log"
	"github.com/tombee/ndc-client-go/internal/tracing"
	"github.com/tombee/ndc-client-go/pkg/ndc"
)

func newCapabilitiesCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "capabilities",
		Short: "Fetch the connector's capability descriptor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(cmd, opts, "capabilities_get", func(ctx context.Context, rt *runtime) (any, error) {
				return rt.client.Capabilities(ctx)
			})
		},
	}
}

func newSchemaCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Fetch the connector's schema descriptor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(cmd, opts, "schema_get", func(ctx context.Context, rt *runtime) (any, error) {
				return rt.client.Schema(ctx)
			})
		},
	}
}

func newQueryCommand(opts *options) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Execute a query request against the connector",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			request, err := readRequest[ndc.QueryRequest](cmd, file)
			if err != nil {
				return err
			}
			return runOperation(cmd, opts, "query_post", func(ctx context.Context, rt *runtime) (any, error) {
				return rt.client.Query(ctx, request)
			})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "-", "JSON query request ('-' for stdin)")
	return cmd
}

func newMutationCommand(opts *options) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "mutation",
		Short: "Execute a mutation request against the connector",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			request, err := readRequest[ndc.MutationRequest](cmd, file)
			if err != nil {
				return err
			}
			return runOperation(cmd, opts, "mutation_post", func(ctx context.Context, rt *runtime) (any, error) {
				return rt.client.Mutation(ctx, request)
			})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "-", "JSON mutation request ('-' for stdin)")
	return cmd
}

func newExplainCommand(opts *options) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "explain",
		Short: "Ask the connector to explain a query",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			request, err := readRequest[ndc.QueryRequest](cmd, file)
			if err != nil {
				return err
			}
			return runOperation(cmd, opts, "explain_post", func(ctx context.Context, rt *runtime) (any, error) {
				return rt.client.Explain(ctx, request)
			})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "-", "JSON query request ('-' for stdin)")
	return cmd
}

// runOperation connects, issues one connector call, records its
// outcome, and prints the JSON result.
func runOperation(cmd *cobra.Command, opts *options, name string, call func(context.Context, *runtime) (any, error)) error {
	ctx := tracing.ToContext(cmd.Context(), tracing.NewCorrelationID())

	rt, cleanup, err := opts.connect(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	start := time.Now()
	result, err := call(ctx, rt)
	if rt.provider != nil {
		rt.provider.Metrics().RecordCall(ctx, name, time.Since(start), err)
	}

	if err != nil {
		if connErr, ok := ndc.AsConnectorError(err); ok {
			slog.Error("connector rejected the call",
				log.OperationKey, name,
				log.StatusKey, connErr.Status,
				log.EndpointKey, rt.cfg.Endpoint,
			)
		}
		return err
	}

	return printJSON(cmd, result)
}

// readRequest decodes a JSON request payload from a file or stdin.
func readRequest[T any](cmd *cobra.Command, path string) (*T, error) {
	var reader io.Reader
	if path == "" || path == "-" {
		reader = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open request file: %w", err)
		}
		defer f.Close()
		reader = f
	}

	var request T
	if err := json.NewDecoder(reader).Decode(&request); err != nil {
		return nil, fmt.Errorf("failed to parse request payload: %w", err)
	}
	return &request, nil
}

// printJSON writes v to the command's stdout as indented JSON.
func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
