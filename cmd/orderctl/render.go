package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/Gunvolt24/agent_orders/internal/domain"
)

var (
	labelStyle = pterm.NewStyle(pterm.FgLightCyan)
	valueStyle = pterm.NewStyle(pterm.FgCyan, pterm.Bold)
)

func printOrderSuccess(w io.Writer, order *domain.Order) {
	body := labelStyle.Sprint("Order ID: ") + valueStyle.Sprint(order.ID) + "\n" +
		labelStyle.Sprint("Agent:    ") + valueStyle.Sprint(order.AgentID) + "\n" +
		labelStyle.Sprint("Item:     ") + valueStyle.Sprint(order.Item)
	pterm.Fprintln(w, pterm.DefaultBox.WithTitle(pterm.Green("Order success")).Sprint(body))
}

// printOrderFailed — для ошибок валидации выводит сообщения полей построчно.
func printOrderFailed(w io.Writer, err error) {
	pterm.Fprintln(w, pterm.Error.Sprint("Order failed"))

	var verr *domain.ValidationError
	if errors.As(err, &verr) && len(verr.Fields) > 0 {
		for _, f := range verr.Fields {
			pterm.Fprintln(w, "   "+f.Field+": "+f.Message)
		}
		return
	}
	pterm.Fprintln(w, "   "+err.Error())
}

func printDeleted(w io.Writer, id int64) {
	pterm.Fprintln(w, pterm.Success.Sprintf("Order %d deleted", id))
}

func printOrders(w io.Writer, list []domain.Order) error {
	if len(list) == 0 {
		pterm.Fprintln(w, "No orders yet")
		return nil
	}
	data := pterm.TableData{{"ID", "Agent", "Item"}}
	for _, o := range list {
		data = append(data, []string{strconv.FormatInt(o.ID, 10), o.AgentID, o.Item})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("render orders: %w", err)
	}
	pterm.Fprintln(w, table)
	return nil
}

func printLineCreated(w io.Writer, line int, order *domain.Order) {
	pterm.Fprintln(w, pterm.Success.Sprintf("line %d: order %d created (%s)", line, order.ID, order.Item))
}

func printLineFailed(w io.Writer, line int, err error) {
	pterm.Fprintln(w, pterm.Warning.Sprintf("line %d: %v", line, err))
}

func printImportSummary(w io.Writer, created, skipped int) {
	pterm.Fprintln(w)
	pterm.Fprintln(w, labelStyle.Sprint("Created: ")+valueStyle.Sprint(created)+
		labelStyle.Sprint("  Skipped: ")+valueStyle.Sprint(skipped))
}

func printAgentFailed(w io.Writer, err error) {
	pterm.Fprintln(w, pterm.Error.Sprint("Failed to connect to agent"))
	pterm.Fprintln(w, "   "+err.Error())
}

func printAgentRejected(w io.Writer, status int, details string) {
	pterm.Fprintln(w, pterm.Error.Sprintf("Agent request failed (status %d)", status))
	if details != "" {
		pterm.Fprintln(w, "   "+details)
	}
}

// printAgentReply — JSON-ответ печатается с отступами, текст как есть.
func printAgentReply(w io.Writer, target string, body []byte) {
	pterm.Fprintln(w, pterm.Success.Sprint("Message sent to agent successfully"))
	pterm.Fprintln(w, labelStyle.Sprint("Agent: ")+valueStyle.Sprint(target))

	var pretty bytes.Buffer
	if json.Valid(body) && json.Indent(&pretty, body, "", "  ") == nil {
		pterm.Fprintln(w, pretty.String())
		return
	}
	if len(body) > 0 {
		pterm.Fprintln(w, string(body))
	}
}
