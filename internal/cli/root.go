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

// Package cli implements the ndc command-line interface.
package cli

import (
	"time"

	"github.com/spf13/cobra"
)

// options holds the persistent flags shared by every subcommand.
type options struct {
	configPath    string
	endpoint      string
	headers       []string
	timeout       time.Duration
	trace         bool
	metricsListen string

	version string
}

// NewRootCommand creates the ndc root command.
func NewRootCommand(version string) *cobra.Command {
	opts := &options{version: version}

	cmd := &cobra.Command{
		Use:   "ndc",
		Short: "Exercise an NDC connector from the command line",
		Long: `ndc issues the connector protocol's operations (capabilities, schema,
query, mutation, explain) against a connector endpoint and prints the
JSON response. Request payloads for the POST operations are read from a
file or stdin.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")
	flags.StringVarP(&opts.endpoint, "endpoint", "e", "", "connector base URL (overrides config)")
	flags.StringArrayVarP(&opts.headers, "header", "H", nil, "additional request header as name=value (repeatable)")
	flags.DurationVar(&opts.timeout, "timeout", 0, "request timeout (overrides config)")
	flags.BoolVar(&opts.trace, "trace", false, "enable trace export (overrides config)")
	flags.StringVar(&opts.metricsListen, "metrics-listen", "", "serve Prometheus call metrics on this address while the command runs (overrides config)")

	cmd.AddCommand(
		newCapabilitiesCommand(opts),
		newSchemaCommand(opts),
		newQueryCommand(opts),
		newMutationCommand(opts),
		newExplainCommand(opts),
		newVersionCommand(opts),
	)

	return cmd
}
