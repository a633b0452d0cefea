package shopify

type fulfillmentOrdersResponseWire struct {
	FulfillmentOrders []fulfillmentOrderWire `json:"fulfillment_orders"`
}

type fulfillmentOrderWire struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

type fulfillmentRequestWire struct {
	Fulfillment fulfillmentWire `json:"fulfillment"`
}

type fulfillmentWire struct {
	LineItemsByFulfillmentOrder []lineItemsByFulfillmentOrderWire `json:"line_items_by_fulfillment_order"`
	TrackingInfo                trackingInfoWire                  `json:"tracking_info"`
	NotifyCustomer              bool                              `json:"notify_customer"`
}

type lineItemsByFulfillmentOrderWire struct {
	FulfillmentOrderID int64 `json:"fulfillment_order_id"`
}

type trackingInfoWire struct {
	Number  string `json:"number"`
	Company string `json:"company"`
	URL     string `json:"url"`
}
