package validate

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Gunvolt24/agent_orders/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestValidateCreate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		req        domain.CreateOrderRequest
		wantFields map[string]string
	}{
		{"ok", domain.CreateOrderRequest{AgentID: "a1", Item: "Matcha Latte"}, nil},
		{"item_missing", domain.CreateOrderRequest{AgentID: "a1"}, map[string]string{"item": "Item is required"}},
		{"item_spaces_only", domain.CreateOrderRequest{AgentID: "a1", Item: "   "}, map[string]string{"item": "Item is required"}},
		{"both_missing", domain.CreateOrderRequest{}, map[string]string{
			"item": "Item is required", "agent_id": "Agent ID is required",
		}},
		{"item_too_long", domain.CreateOrderRequest{AgentID: "a1", Item: strings.Repeat("x", 256)},
			map[string]string{"item": "Item must be at most 255 characters"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := tt.req
			err := NewOrderValidator().ValidateCreate(context.Background(), &req)
			if tt.wantFields == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var verr *domain.ValidationError
			if !errors.As(err, &verr) || !errors.Is(err, domain.ErrValidationFailed) {
				t.Fatalf("want *ValidationError, got %v", err)
			}
			got := verr.FieldMessages()
			if len(got) != len(tt.wantFields) {
				t.Fatalf("fields = %v, want %v", got, tt.wantFields)
			}
			for field, msg := range tt.wantFields {
				if got[field] != msg {
					t.Fatalf("field %s: got %q, want %q", field, got[field], msg)
				}
			}
		})
	}
}

func TestValidateCreate_TrimsInPlace(t *testing.T) {
	req := domain.CreateOrderRequest{AgentID: " a1 ", Item: "  tea "}
	if err := NewOrderValidator().ValidateCreate(context.Background(), &req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.AgentID != "a1" || req.Item != "tea" {
		t.Fatalf("request must be trimmed, got %+v", req)
	}
}

func TestValidateUpdate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       *domain.UpdateOrderRequest
		wantField string
	}{
		{"ok_item", &domain.UpdateOrderRequest{Item: strPtr("tea")}, ""},
		{"ok_agent", &domain.UpdateOrderRequest{AgentID: strPtr("a2")}, ""},
		{"nil", nil, "body"},
		{"empty", &domain.UpdateOrderRequest{}, "body"},
		{"blank_item", &domain.UpdateOrderRequest{Item: strPtr("  ")}, "item"},
		{"blank_agent", &domain.UpdateOrderRequest{AgentID: strPtr("")}, "agent_id"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := NewOrderValidator().ValidateUpdate(context.Background(), tt.req)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("want *ValidationError, got %v", err)
			}
			if _, ok := verr.FieldMessages()[tt.wantField]; !ok {
				t.Fatalf("want error on %s, got %v", tt.wantField, verr.Fields)
			}
		})
	}
}
