package http

// Request bodies for the write-side endpoints. Identifier and actor fields
// always travel as canonical UUID strings.

type createOrderRequest struct {
	ProductID           string `json:"product_id"`
	Plan                string `json:"plan"`
	Quantity            int    `json:"quantity"`
	DesignFileURL       string `json:"design_file_url"`
	ValidationRequested bool   `json:"validation_requested"`
	ShippingAddress     string `json:"shipping_address"`
	CustomerNotes       string `json:"customer_notes"`
}

type updateOrderRequest struct {
	DesignFileURL   *string `json:"design_file_url"`
	ShippingAddress *string `json:"shipping_address"`
	CustomerNotes   *string `json:"customer_notes"`
}

type assignStaffRequest struct {
	Role       string `json:"role"`
	AssigneeID string `json:"assignee_id"`
}

type setOrderStatusRequest struct {
	Status       string `json:"status"`
	TrackingCode string `json:"tracking_code"`
}

type setAdminNotesRequest struct {
	Notes string `json:"notes"`
}

type markOrderFixedRequest struct {
	DesignFileURL string `json:"design_file_url"`
}

type submitValidationReportRequest struct {
	Outcome string                   `json:"outcome"`
	Issues  []validationIssueRequest `json:"issues"`
	FixCost int64                    `json:"fix_cost"`
	Notes   string                   `json:"notes"`
}

type validationIssueRequest struct {
	Kind        string `json:"kind"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
	Suggestion  string `json:"suggestion"`
}

type initiatePaymentRequest struct {
	PaymentType string `json:"payment_type"`
	Method      string `json:"method"`
	Description string `json:"description"`
}

type uploadReceiptRequest struct {
	ReceiptURL string `json:"receipt_url"`
}

type rejectPaymentRequest struct {
	Reason string `json:"reason"`
}
