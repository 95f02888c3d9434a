package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Gunvolt24/agent_orders/internal/domain"
	"github.com/Gunvolt24/agent_orders/internal/orders"
	"github.com/Gunvolt24/agent_orders/internal/ports"
	"github.com/Gunvolt24/agent_orders/pkg/validate"
)

func newOrderCmd(d func() *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Create, list, update and delete orders",
	}
	cmd.AddCommand(
		newOrderCreateCmd(d),
		newOrderListCmd(d),
		newOrderGetCmd(d),
		newOrderUpdateCmd(d),
		newOrderDeleteCmd(d),
		newOrderImportCmd(d),
		newOrderValidateCmd(d),
	)
	return cmd
}

func newOrderCreateCmd(d func() *deps) *cobra.Command {
	var item, agentID string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Place a new order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dp := d()
			if agentID == "" {
				agentID = dp.cfg.Agent.DefaultAgentID
			}
			out := cmd.OutOrStdout()

			_, err := dp.mutations.CreateOrder(cmd.Context(), domain.CreateOrderRequest{AgentID: agentID, Item: item},
				orders.Callbacks[domain.CreateOrderRequest, *domain.Order]{
					OnSuccess: func(_ context.Context, order *domain.Order, _ domain.CreateOrderRequest) {
						printOrderSuccess(out, order)
					},
					OnError: func(_ context.Context, err error, _ domain.CreateOrderRequest) {
						printOrderFailed(out, err)
					},
				})
			return err
		},
	}
	cmd.Flags().StringVar(&item, "item", "", "Ordered item")
	cmd.Flags().StringVar(&agentID, "agent-id", "", "Agent id (default from ORDERS_AGENT_DEFAULT_AGENT_ID)")
	return cmd
}

func newOrderListCmd(d func() *deps) *cobra.Command {
	var agentID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dp := d()
			var (
				list []domain.Order
				err  error
			)
			if agentID != "" {
				list, err = dp.queries.OrdersByAgent(cmd.Context(), agentID)
			} else {
				list, err = dp.queries.Orders(cmd.Context())
			}
			if err != nil {
				printOrderFailed(cmd.OutOrStdout(), err)
				return err
			}
			return printOrders(cmd.OutOrStdout(), list)
		},
	}
	cmd.Flags().StringVar(&agentID, "agent-id", "", "Only orders of this agent")
	return cmd
}

func newOrderGetCmd(d func() *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseOrderID(args[0])
			if err != nil {
				return err
			}
			order, err := d().queries.Order(cmd.Context(), id)
			if err != nil {
				printOrderFailed(cmd.OutOrStdout(), err)
				return err
			}
			return printOrders(cmd.OutOrStdout(), []domain.Order{*order})
		},
	}
}

func newOrderUpdateCmd(d func() *deps) *cobra.Command {
	var item, agentID string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change item or agent of an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseOrderID(args[0])
			if err != nil {
				return err
			}
			var req domain.UpdateOrderRequest
			if cmd.Flags().Changed("item") {
				req.Item = &item
			}
			if cmd.Flags().Changed("agent-id") {
				req.AgentID = &agentID
			}
			out := cmd.OutOrStdout()

			_, err = d().mutations.UpdateOrder(cmd.Context(), id, req,
				orders.Callbacks[orders.UpdateInput, *domain.Order]{
					OnSuccess: func(_ context.Context, order *domain.Order, _ orders.UpdateInput) {
						printOrderSuccess(out, order)
					},
					OnError: func(_ context.Context, err error, _ orders.UpdateInput) {
						printOrderFailed(out, err)
					},
				})
			return err
		},
	}
	cmd.Flags().StringVar(&item, "item", "", "New item")
	cmd.Flags().StringVar(&agentID, "agent-id", "", "New agent id")
	return cmd
}

func newOrderDeleteCmd(d func() *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseOrderID(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			return d().mutations.DeleteOrder(cmd.Context(), id, orders.Callbacks[int64, struct{}]{
				OnSuccess: func(_ context.Context, _ struct{}, id int64) {
					printDeleted(out, id)
				},
				OnError: func(_ context.Context, err error, _ int64) {
					printOrderFailed(out, err)
				},
			})
		},
	}
}

// import: JSONL с запросами на создание; невалидные строки пропускаются.
func newOrderImportCmd(d func() *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE.jsonl",
		Short: "Create orders from a JSONL file, one request per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dp := d()
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open %s: %w", args[0], err)
			}
			defer f.Close()

			out := cmd.OutOrStdout()
			create := dp.mutations.NewCreate()
			failed := 0

			v := defaultAgentValidator{OrderValidator: dp.validator, agentID: dp.cfg.Agent.DefaultAgentID}
			res, err := validate.ScanJSONL(cmd.Context(), v, f,
				func(line int, req *domain.CreateOrderRequest) error {
					order, err := create.Mutate(cmd.Context(), *req, orders.Callbacks[domain.CreateOrderRequest, *domain.Order]{})
					if err != nil {
						if errors.Is(err, domain.ErrTransportUnavailable) {
							return fmt.Errorf("line %d: %w", line, err)
						}
						failed++
						printLineFailed(out, line, err)
						return nil
					}
					printLineCreated(out, line, order)
					return nil
				},
				func(le validate.LineError) { printLineFailed(out, le.Line, le.Err) },
			)
			printImportSummary(out, res.ValidLinesCount-failed, res.InvalidLinesCount+failed)
			return err
		},
	}
}

// validate: проверка файла без сети; валидные запросы печатаются в каноническом виде.
func newOrderValidateCmd(d func() *deps) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "validate FILE",
		Short: "Check a JSON/JSONL file of create requests without sending anything",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := validate.ValidateFile(cmd.Context(), d().validator, args[0],
				validate.InputFormat(format), cmd.OutOrStdout())
			if err != nil {
				pterm.Fprintln(cmd.ErrOrStderr(), pterm.Error.Sprintf("validation: %v (%s)", err, summary))
				return err
			}
			pterm.Fprintln(cmd.ErrOrStderr(), pterm.Success.Sprintf("validation ok (%s)", summary))
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", string(validate.FormatAuto), "Input format: auto|json|jsonl")
	return cmd
}

// defaultAgentValidator — строки без agent_id получают агента по умолчанию до проверки.
type defaultAgentValidator struct {
	ports.OrderValidator
	agentID string
}

func (v defaultAgentValidator) ValidateCreate(ctx context.Context, req *domain.CreateOrderRequest) error {
	if req != nil && strings.TrimSpace(req.AgentID) == "" {
		req.AgentID = v.agentID
	}
	return v.OrderValidator.ValidateCreate(ctx, req)
}

func parseOrderID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid order id %q", s)
	}
	return id, nil
}
