package main

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Gunvolt24/agent_orders/config"
	cachemem "github.com/Gunvolt24/agent_orders/internal/cache/memory"
	"github.com/Gunvolt24/agent_orders/internal/orders"
	"github.com/Gunvolt24/agent_orders/internal/ports"
	"github.com/Gunvolt24/agent_orders/internal/transport/agentapi"
	"github.com/Gunvolt24/agent_orders/pkg/logger"
	"github.com/Gunvolt24/agent_orders/pkg/validate"
)

// deps — собранные на время одного запуска зависимости команд.
type deps struct {
	cfg       *config.Config
	log       ports.Logger
	mutations *orders.OrderMutations
	queries   *orders.OrderQueries
	forwarder *agentapi.Forwarder
	validator ports.OrderValidator
}

func newDeps(cfg *config.Config, verbose bool) *deps {
	var log ports.Logger = logger.Nop()
	if verbose {
		if zl, err := zap.NewDevelopment(); err == nil {
			log = logger.FromZap(zl)
		}
	}

	hc := agentapi.NewHTTPClient()
	transport := agentapi.NewClient(cfg.Agent.OrdersBaseURL,
		agentapi.WithHTTPClient(hc),
		agentapi.WithTimeout(cfg.Agent.RequestTimeout),
	)
	cache := cachemem.NewQueryCache(cfg.Cache.Capacity, cfg.Cache.TTL)
	validator := validate.NewOrderValidator()

	return &deps{
		cfg:       cfg,
		log:       log,
		mutations: orders.NewOrderMutations(transport, cache, validator, log),
		queries:   orders.NewOrderQueries(transport, cache, log),
		forwarder: agentapi.NewForwarder(agentapi.ForwarderConfig{
			AgentURL: cfg.Agent.URL,
			Target:   cfg.Agent.Target,
			Sender:   cfg.Agent.Sender,
			Timeout:  cfg.Agent.RequestTimeout,
		}, hc),
		validator: validator,
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	var (
		verbose bool
		noColor bool
		d       *deps
	)

	root := &cobra.Command{
		Use:           "orderctl",
		Short:         "Place and manage orders with the agent",
		Long:          `orderctl talks to the agent's order API and chat endpoint using the settings from ORDERS_* environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if noColor {
				pterm.DisableStyling()
			}
			d = newDeps(cfg, verbose)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log requests to stderr")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colors and styling")

	get := func() *deps { return d }
	root.AddCommand(newOrderCmd(get), newAgentCmd(get))
	return root
}
