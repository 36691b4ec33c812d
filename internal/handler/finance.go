package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/daili-wash/partner-api/internal/analytics"
	"github.com/daili-wash/partner-api/internal/billing"
	"github.com/daili-wash/partner-api/internal/enum"
	"github.com/daili-wash/partner-api/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// FinanceHandler serves the statement table and the e-bill workflow.
type FinanceHandler struct {
	store OrderSource
	loc   *time.Location
}

// NewFinanceHandler creates a new FinanceHandler.
func NewFinanceHandler(store OrderSource, loc *time.Location) *FinanceHandler {
	return &FinanceHandler{store: store, loc: loc}
}

// RegisterRoutes registers finance endpoints.
func (h *FinanceHandler) RegisterRoutes(r chi.Router) {
	r.Get("/statement", h.Statement)
	r.Post("/invoices", h.CreateInvoice)
}

// --- Response types ---

type statementRowResponse struct {
	OrderID   string    `json:"order_id"`
	CreatedAt time.Time `json:"created_at"`
	Gross     string    `json:"gross"`
	GP        string    `json:"gp"`
	Tax       string    `json:"tax"`
	Net       string    `json:"net"`
}

type invoiceResponse struct {
	InvoiceNo   string          `json:"invoice_no"`
	IssuedAt    time.Time       `json:"issued_at"`
	Cycle       string          `json:"cycle"`
	Month       *int            `json:"month,omitempty"`
	OrderCount  int             `json:"order_count"`
	TotalGross  string          `json:"total_gross"`
	GP          string          `json:"gp"`
	Tax         string          `json:"tax"`
	Net         string          `json:"net"`
	Payee       payeeResponse   `json:"payee"`
	Orders      []orderResponse `json:"orders"`
}

type payeeResponse struct {
	Bank        string `json:"bank"`
	AccountNo   string `json:"account_no"`
	AccountName string `json:"account_name"`
	TaxID       string `json:"tax_id,omitempty"`
}

// --- Handlers ---

// Statement returns the per-order revenue split table. It applies the
// same free-text/status/sort rules as the order list, then drops
// cancelled orders since they carry no payout.
func (h *FinanceHandler) Statement(w http.ResponseWriter, r *http.Request) {
	query, status, sortMode, err := parseListParams(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	orders := analytics.FilterAndSort(h.store.List(), query, status, sortMode)

	rows := make([]statementRowResponse, 0, len(orders))
	for _, o := range orders {
		if o.Status == enum.OrderStatusCancelled {
			continue
		}
		fin := billing.Calculate(o.Price.Total)
		rows = append(rows, statementRowResponse{
			OrderID:   o.ID,
			CreatedAt: o.CreatedAt,
			Gross:     fin.Gross.StringFixed(2),
			GP:        fin.GP.StringFixed(2),
			Tax:       fin.Tax.StringFixed(2),
			Net:       fin.Net.StringFixed(2),
		})
	}

	writeJSON(w, http.StatusOK, rows)
}

type createInvoiceRequest struct {
	Cycle       string `json:"cycle"`
	Month       *int   `json:"month"`
	Bank        string `json:"bank"`
	AccountNo   string `json:"account_no"`
	AccountName string `json:"account_name"`
	TaxID       string `json:"tax_id"`
}

// CreateInvoice runs the e-bill workflow: restrict the non-cancelled
// orders to the selected payment cycle, split the total, and issue an
// invoice document. Requires payee details and a non-empty billable
// set.
func (h *FinanceHandler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	var req createInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if req.Cycle == "" {
		req.Cycle = enum.CycleMonthly
	}
	if req.Cycle != enum.CycleMonthly && req.Cycle != enum.CycleAll {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("unknown cycle %q", req.Cycle)})
		return
	}

	now := time.Now().In(h.loc)

	month := 0
	if req.Cycle == enum.CycleMonthly {
		if req.Month == nil {
			month = int(now.Month()) - 1
		} else if *req.Month < 0 || *req.Month > 11 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "month must be between 0 and 11"})
			return
		} else {
			month = *req.Month
		}
	}

	if req.Bank == "" || req.AccountNo == "" || req.AccountName == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bank, account_no and account_name are required"})
		return
	}

	billable := make([]store.Order, 0)
	for _, o := range h.store.List() {
		if o.Status != enum.OrderStatusCancelled {
			billable = append(billable, o)
		}
	}

	inv := billing.BuildInvoice(billable, req.Cycle, month, now)
	if len(inv.Orders) == 0 {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "no billable orders in the selected cycle"})
		return
	}

	resp := invoiceResponse{
		InvoiceNo:  newInvoiceNo(now),
		IssuedAt:   now,
		Cycle:      inv.Cycle,
		OrderCount: len(inv.Orders),
		TotalGross: inv.TotalGross.StringFixed(2),
		GP:         inv.GP.StringFixed(2),
		Tax:        inv.Tax.StringFixed(2),
		Net:        inv.Net.StringFixed(2),
		Payee: payeeResponse{
			Bank:        req.Bank,
			AccountNo:   req.AccountNo,
			AccountName: req.AccountName,
			TaxID:       req.TaxID,
		},
		Orders: toOrderResponses(inv.Orders),
	}
	if inv.Cycle == enum.CycleMonthly {
		m := inv.Month
		resp.Month = &m
	}

	writeJSON(w, http.StatusCreated, resp)
}

// newInvoiceNo generates a document number like INV-202608-1A2B3C4D.
func newInvoiceNo(now time.Time) string {
	suffix := strings.ToUpper(uuid.NewString()[:8])
	return fmt.Sprintf("INV-%s-%s", now.Format("200601"), suffix)
}
