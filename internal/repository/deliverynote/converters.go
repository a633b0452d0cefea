package deliverynote

import "connector/internal/entities"

func ToDomain(n *DeliveryNoteDB) *entities.DeliveryNote {
	if n == nil {
		return nil
	}
	note := &entities.DeliveryNote{
		ID:           n.ID,
		DocStatus:    entities.DocStatus(n.DocStatus),
		CustomerName: n.CustomerName,
		TotalWeight:  n.TotalWeight,
		CreatedAt:    n.CreatedAt,
		UpdatedAt:    n.UpdatedAt,
	}

	if n.ShippingAddressID != nil {
		note.ShippingAddressID = *n.ShippingAddressID
	}
	if n.ShopifyOrderID != nil {
		note.ShopifyOrderID = *n.ShopifyOrderID
	}
	if n.ShopifyOrderNumber != nil {
		note.ShopifyOrderNumber = *n.ShopifyOrderNumber
	}
	if n.ShippingCarrier != nil {
		note.ShippingCarrier = *n.ShippingCarrier
	}
	if n.TrackingNumber != nil {
		note.TrackingNumber = *n.TrackingNumber
	}
	if n.LabelURL != nil {
		note.LabelURL = *n.LabelURL
	}
	if n.ShippingStatus != nil {
		note.ShippingStatus = entities.ShippingStatus(*n.ShippingStatus)
	}

	return note
}

func FromDomainModify(n *entities.DeliveryNoteModify) *DeliveryNoteModifyDB {
	if n == nil {
		return nil
	}
	noteModifyDB := &DeliveryNoteModifyDB{}

	if n.ID != nil {
		noteModifyDB.ID = n.ID
	}
	if n.ShippingCarrier != nil {
		noteModifyDB.ShippingCarrier = n.ShippingCarrier
	}
	if n.TrackingNumber != nil {
		noteModifyDB.TrackingNumber = n.TrackingNumber
	}
	if n.LabelURL != nil {
		noteModifyDB.LabelURL = n.LabelURL
	}
	if n.ShippingStatus != nil {
		status := string(*n.ShippingStatus)
		noteModifyDB.ShippingStatus = &status
	}

	return noteModifyDB
}

func ToAddressDomain(a *AddressDB) *entities.Address {
	if a == nil {
		return nil
	}
	address := &entities.Address{
		ID:         a.ID,
		Line1:      a.Line1,
		PostalCode: a.PostalCode,
		City:       a.City,
		Country:    a.Country,
	}

	if a.Title != nil {
		address.Title = *a.Title
	}
	if a.Line2 != nil {
		address.Line2 = *a.Line2
	}
	if a.Phone != nil {
		address.Phone = *a.Phone
	}
	if a.Email != nil {
		address.Email = *a.Email
	}

	return address
}

func ToOpenShipmentDomain(s *OpenShipmentDB) entities.OpenShipment {
	return entities.OpenShipment{
		NoteID:         s.NoteID,
		TrackingNumber: s.TrackingNumber,
		Carrier:        s.Carrier,
		Status:         entities.ShippingStatus(s.Status),
	}
}
