package deliverynote

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"connector/internal/entities"
	"connector/internal/service/shipment"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, noteID string) (*entities.DeliveryNote, error) {
	query := `
		SELECT
			dn.id, dn.doc_status, dn.customer_name, dn.shipping_address_id,
			dn.shopify_order_id, dn.shopify_order_number, dn.shipping_carrier,
			dn.tracking_number, dn.label_url, dn.shipping_status,
			COALESCE((
				SELECT SUM(COALESCE(i.total_weight, 0))
				FROM delivery_note_items i
				WHERE i.delivery_note_id = dn.id
			), 0),
			dn.created_at, dn.updated_at
		FROM delivery_notes dn
		WHERE dn.id = $1
	`

	var noteDB DeliveryNoteDB
	err := r.querier.QueryRow(ctx, query, noteID).Scan(
		&noteDB.ID,
		&noteDB.DocStatus,
		&noteDB.CustomerName,
		&noteDB.ShippingAddressID,
		&noteDB.ShopifyOrderID,
		&noteDB.ShopifyOrderNumber,
		&noteDB.ShippingCarrier,
		&noteDB.TrackingNumber,
		&noteDB.LabelURL,
		&noteDB.ShippingStatus,
		&noteDB.TotalWeight,
		&noteDB.CreatedAt,
		&noteDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrNoteNotFound
		}
		return nil, fmt.Errorf("unexpected delivery note repository get error: %w", err)
	}

	return ToDomain(&noteDB), nil
}

func (r *Repository) GetAddress(ctx context.Context, addressID string) (*entities.Address, error) {
	query := `
		SELECT id, title, line1, line2, postal_code, city, country, phone, email
		FROM addresses
		WHERE id = $1
	`

	var addressDB AddressDB
	err := r.querier.QueryRow(ctx, query, addressID).Scan(
		&addressDB.ID,
		&addressDB.Title,
		&addressDB.Line1,
		&addressDB.Line2,
		&addressDB.PostalCode,
		&addressDB.City,
		&addressDB.Country,
		&addressDB.Phone,
		&addressDB.Email,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrMissingShippingAddress
		}
		return nil, fmt.Errorf("unexpected delivery note repository get address error: %w", err)
	}

	return ToAddressDomain(&addressDB), nil
}

func (r *Repository) GetCountryCode(ctx context.Context, country string) (string, error) {
	query := `
		SELECT code
		FROM countries
		WHERE name = $1
	`

	var code string
	err := r.querier.QueryRow(ctx, query, country).Scan(&code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", shipment.ErrCountryNotFound
		}
		return "", fmt.Errorf("unexpected delivery note repository get country code error: %w", err)
	}

	return code, nil
}

// SetShipmentResult attaches the carrier result to a note that has no
// tracking number yet. Zero affected rows means another request won the
// race, reported as ErrShipmentExists.
func (r *Repository) SetShipmentResult(ctx context.Context, noteModify entities.DeliveryNoteModify) error {
	noteModifyDB := FromDomainModify(&noteModify)

	builder := qb.
		Update("delivery_notes")

	if noteModifyDB.ShippingCarrier != nil {
		builder = builder.Set("shipping_carrier", noteModifyDB.ShippingCarrier)
	}
	if noteModifyDB.TrackingNumber != nil {
		builder = builder.Set("tracking_number", noteModifyDB.TrackingNumber)
	}
	if noteModifyDB.LabelURL != nil {
		builder = builder.Set("label_url", noteModifyDB.LabelURL)
	}
	if noteModifyDB.ShippingStatus != nil {
		builder = builder.Set("shipping_status", noteModifyDB.ShippingStatus)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": noteModifyDB.ID}).
		Where("tracking_number IS NULL")

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("unexpected delivery note repository set shipment result error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected delivery note repository set shipment result error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return shipment.ErrShipmentExists
	}

	return nil
}

// ListOpenShipments returns submitted notes still in transit. An empty
// shipping status counts as terminal; a missing carrier defaults to GLS.
func (r *Repository) ListOpenShipments(ctx context.Context, limit int) ([]entities.OpenShipment, error) {
	query := `
		SELECT id, tracking_number, COALESCE(shipping_carrier, 'GLS'), COALESCE(shipping_status, '')
		FROM delivery_notes
		WHERE doc_status = 'submitted'
		  AND tracking_number IS NOT NULL
		  AND COALESCE(shipping_status, '') NOT IN ('Delivered', 'Returned', '')
		ORDER BY updated_at ASC
		LIMIT $1
	`

	rows, err := r.querier.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery note repository list open shipments error: %w", err)
	}
	defer rows.Close()

	shipments := make([]entities.OpenShipment, 0, limit)
	for rows.Next() {
		var shipmentDB OpenShipmentDB
		err = rows.Scan(
			&shipmentDB.NoteID,
			&shipmentDB.TrackingNumber,
			&shipmentDB.Carrier,
			&shipmentDB.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected delivery note repository list open shipments error: %w", err)
		}
		shipments = append(shipments, ToOpenShipmentDomain(&shipmentDB))
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected delivery note repository list open shipments error: %w", err)
	}

	return shipments, nil
}

func (r *Repository) UpdateShippingStatus(ctx context.Context, noteID string, status entities.ShippingStatus) error {
	query := `
		UPDATE delivery_notes
		SET shipping_status = $2,
		    updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, noteID, string(status))
	if err != nil {
		return fmt.Errorf("unexpected delivery note repository update shipping status error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return shipment.ErrNoteNotFound
	}

	return nil
}
