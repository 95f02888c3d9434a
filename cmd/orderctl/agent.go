package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newAgentCmd(d func() *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agent",
		Short: "Talk to the agent",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "say MESSAGE...",
		Short: "Send a chat message to the agent",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dp := d()
			message := strings.Join(args, " ")

			reply, err := dp.forwarder.Forward(cmd.Context(), message)
			if err != nil {
				printAgentFailed(cmd.OutOrStdout(), err)
				return fmt.Errorf("failed to connect to agent: %w", err)
			}
			if !reply.OK() {
				printAgentRejected(cmd.OutOrStdout(), reply.StatusCode, string(reply.Body))
				return fmt.Errorf("agent request failed with status %d", reply.StatusCode)
			}
			printAgentReply(cmd.OutOrStdout(), dp.forwarder.Target(), reply.Body)
			return nil
		},
	})
	return cmd
}
