/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dirpx.dev/locator"
	"dirpx.dev/locator/config"
	"dirpx.dev/locator/internal/demo"
	"dirpx.dev/locator/internal/logging"
	"dirpx.dev/locator/metrics"
)

// app is the state shared by all subcommands. It is populated in the root
// PersistentPreRunE.
type app struct {
	configPath  string
	logLevel    string
	logFormat   string
	dumpMetrics bool
	lazy        bool
	from        string

	log  *zap.Logger
	prom *prometheus.Registry
	loc  *locator.Locator
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "locatordemo",
		Short: "Wire and use services through a service locator",
		Long: `locatordemo registers an EmailService and a Logger, builds a
NotificationService from them with a factory, and uses it.

Examples:
  # Send a notification
  locatordemo notify alice@example.com "build finished"

  # Show the bindings, then the metrics they produced
  locatordemo entries --format json --metrics`,
		SilenceUsage:       true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to a YAML config file")
	flags.StringVar(&a.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flags.StringVar(&a.logFormat, "log-format", logging.FormatConsole, "log format (console, json)")
	flags.BoolVar(&a.dumpMetrics, "metrics", false, "print Prometheus metrics after the command")
	flags.BoolVar(&a.lazy, "lazy", false, "build the NotificationService on first use")
	flags.StringVar(&a.from, "from", "noreply@example.com", "sender address of the EmailService")

	cmd.AddCommand(newNotifyCmd(a), newEntriesCmd(a))
	return cmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	log, err := logging.New(cmd.ErrOrStderr(), a.logLevel, a.logFormat)
	if err != nil {
		return err
	}
	a.log = log

	a.prom = prometheus.NewRegistry()
	a.loc = locator.New(
		locator.WithConfig(cfg),
		locator.WithLogger(log),
		locator.WithMetrics(metrics.New(a.prom)),
	)

	opts := demo.Options{From: a.from, Prefix: "[" + cfg.Name + "]", Out: cmd.OutOrStdout(), Lazy: a.lazy}
	if err := demo.Wire(a.loc, opts); err != nil {
		return fmt.Errorf("wire services: %w", err)
	}
	log.Debug("services wired", zap.String("locator_id", a.loc.ID()), zap.Int("entries", a.loc.Count()))
	return nil
}

func (a *app) teardown(cmd *cobra.Command, _ []string) error {
	defer func() { _ = a.log.Sync() }()
	if !a.dumpMetrics {
		return nil
	}

	families, err := a.prom.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(cmd.OutOrStdout(), mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}
