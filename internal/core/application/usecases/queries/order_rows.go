package queries

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// orderColumns is the column list every order query selects, in the order
// scanOrderRow expects.
const orderColumns = `id, customer_id, product_id, plan, status, quantity,
		design_file_url, validation_requested, validation_status,
		revision_count, max_revisions,
		design_price, validation_price, fix_price, print_price, total_price,
		tracking_code, shipping_address, customer_notes, admin_notes,
		designer_id, assigned_validator_id, printshop_id,
		accepted_at, printed_at, shipped_at, delivered_at, cancelled_at,
		created_at`

func scanOrderRow(rows *sql.Rows) (OrderResponse, error) {
	var (
		id, customerID, productID                   uuid.UUID
		plan, status                                string
		quantity                                    int
		designFileURL                               sql.NullString
		validationRequested                         bool
		validationStatus                            sql.NullString
		revisionCount                               int
		maxRevisions                                sql.NullInt64
		designPrice, validationPrice                int64
		fixPrice, printPrice, totalPrice            int64
		trackingCode, shippingAddress               sql.NullString
		customerNotes, adminNotes                   sql.NullString
		designerID, validatorID, printshopID        uuid.NullUUID
		acceptedAt, printedAt, shippedAt            sql.NullTime
		deliveredAt, cancelledAt                    sql.NullTime
		createdAt                                   time.Time
	)

	err := rows.Scan(
		&id, &customerID, &productID, &plan, &status, &quantity,
		&designFileURL, &validationRequested, &validationStatus,
		&revisionCount, &maxRevisions,
		&designPrice, &validationPrice, &fixPrice, &printPrice, &totalPrice,
		&trackingCode, &shippingAddress, &customerNotes, &adminNotes,
		&designerID, &validatorID, &printshopID,
		&acceptedAt, &printedAt, &shippedAt, &deliveredAt, &cancelledAt,
		&createdAt,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	resp := OrderResponse{
		ID:                  id.String(),
		CustomerID:          customerID.String(),
		ProductID:           productID.String(),
		Plan:                plan,
		Status:              status,
		Quantity:            quantity,
		DesignFileURL:       designFileURL.String,
		ValidationRequested: validationRequested,
		ValidationStatus:    validationStatus.String,
		RevisionCount:       revisionCount,
		DesignPrice:         designPrice,
		ValidationPrice:     validationPrice,
		FixPrice:            fixPrice,
		PrintPrice:          printPrice,
		TotalPrice:          totalPrice,
		TrackingCode:        trackingCode.String,
		ShippingAddress:     shippingAddress.String,
		CustomerNotes:       customerNotes.String,
		AdminNotes:          adminNotes.String,
		CreatedAt:           createdAt,
	}
	if maxRevisions.Valid {
		limit := int(maxRevisions.Int64)
		resp.MaxRevisions = &limit
	}
	resp.DesignerID = nullUUIDString(designerID)
	resp.AssignedValidatorID = nullUUIDString(validatorID)
	resp.PrintshopID = nullUUIDString(printshopID)
	resp.AcceptedAt = nullTimePtr(acceptedAt)
	resp.PrintedAt = nullTimePtr(printedAt)
	resp.ShippedAt = nullTimePtr(shippedAt)
	resp.DeliveredAt = nullTimePtr(deliveredAt)
	resp.CancelledAt = nullTimePtr(cancelledAt)

	return resp, nil
}

func nullUUIDString(v uuid.NullUUID) *string {
	if !v.Valid {
		return nil
	}
	s := v.UUID.String()
	return &s
}

func nullTimePtr(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}
