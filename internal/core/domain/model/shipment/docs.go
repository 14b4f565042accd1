// Package shipment contains the Shipment aggregate: a consolidated group of
// parcels dispatched together under one freight quote.
package shipment
